package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/matratecnologia/site-backend/internal/api/router"
	"github.com/matratecnologia/site-backend/internal/auth"
	"github.com/matratecnologia/site-backend/internal/cache"
	"github.com/matratecnologia/site-backend/internal/clients"
	appconfig "github.com/matratecnologia/site-backend/internal/config"
	"github.com/matratecnologia/site-backend/internal/leads"
	"github.com/matratecnologia/site-backend/internal/notify"
	"github.com/matratecnologia/site-backend/internal/observability/metrics"
	"github.com/matratecnologia/site-backend/internal/products"
	"github.com/matratecnologia/site-backend/internal/team"
	"github.com/matratecnologia/site-backend/internal/testimonials"
	"github.com/matratecnologia/site-backend/pkg/logging"
)

func main() {
	_ = godotenv.Load()
	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting site-backend API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("database unreachable", "error", err)
		os.Exit(1)
	}

	// Redis is optional; without it content listings go straight to Postgres.
	var contentCache *cache.Cache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unreachable, caching disabled", "error", err)
		} else {
			contentCache = cache.New(rdb, cfg.CacheTTL, logger)
		}
	}

	var notifier leads.Notifier
	sender := notify.NewSendGridSender(notify.SendGridConfig{
		APIKey:    cfg.SendGridAPIKey,
		FromEmail: cfg.SendGridFromEmail,
		FromName:  cfg.SendGridFromName,
	}, logger)
	if sender != nil {
		if ln := notify.NewLeadNotifier(sender, cfg.LeadNotifyEmail, logger); ln != nil {
			notifier = ln
		}
	}
	if notifier == nil {
		logger.Info("lead email notifications disabled")
	}

	leadMetrics := metrics.NewLeadMetrics(prometheus.DefaultRegisterer)

	leadsHandler := leads.NewHandler(leads.NewPostgresRepository(pool), cfg.DefaultLeadOrigin, notifier, leadMetrics, logger)
	productsHandler := products.NewHandler(products.NewPostgresRepository(pool), contentCache, logger)
	clientsHandler := clients.NewHandler(clients.NewPostgresRepository(pool), contentCache, logger)
	testimonialsHandler := testimonials.NewHandler(testimonials.NewPostgresRepository(pool), contentCache, logger)
	teamHandler := team.NewHandler(team.NewPostgresRepository(pool), contentCache, logger)

	if cfg.AdminJWTSecret == "" {
		logger.Warn("ADMIN_JWT_SECRET not set, admin routes will reject every request")
	}

	r := router.New(&router.Config{
		Logger:              logger,
		LeadsHandler:        leadsHandler,
		ProductsHandler:     productsHandler,
		ClientsHandler:      clientsHandler,
		TestimonialsHandler: testimonialsHandler,
		TeamHandler:         teamHandler,
		Authenticator:       auth.NewJWTAuthenticator(cfg.AdminJWTSecret),
		MetricsHandler:      promhttp.Handler(),
		CORSAllowedOrigins:  cfg.CORSAllowedOrigins,
		IntakeRateLimit:     cfg.IntakeRateLimit,
		IntakeRateBurst:     cfg.IntakeRateBurst,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
