package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matratecnologia/site-backend/internal/auth"
	"github.com/matratecnologia/site-backend/internal/clients"
	httpmiddleware "github.com/matratecnologia/site-backend/internal/http/middleware"
	"github.com/matratecnologia/site-backend/internal/leads"
	"github.com/matratecnologia/site-backend/internal/products"
	"github.com/matratecnologia/site-backend/internal/team"
	"github.com/matratecnologia/site-backend/internal/testimonials"
	"github.com/matratecnologia/site-backend/pkg/logging"
)

// Config holds router configuration.
type Config struct {
	Logger              *logging.Logger
	LeadsHandler        *leads.Handler
	ProductsHandler     *products.Handler
	ClientsHandler      *clients.Handler
	TestimonialsHandler *testimonials.Handler
	TeamHandler         *team.Handler
	Authenticator       auth.Authenticator
	MetricsHandler      http.Handler
	CORSAllowedOrigins  []string

	// Intake throttling for the public contact form.
	IntakeRateLimit float64
	IntakeRateBurst int
}

// New creates a Chi router with all routes configured.
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	// Public endpoints: lead intake plus the content the site renders.
	r.Group(func(public chi.Router) {
		public.Get("/health", healthCheck)
		if cfg.MetricsHandler != nil {
			public.Handle("/metrics", cfg.MetricsHandler)
		}

		intake := public
		if cfg.IntakeRateLimit > 0 {
			intake = public.With(httpmiddleware.RateLimit(cfg.IntakeRateLimit, cfg.IntakeRateBurst))
		}
		intake.Post("/leads", cfg.LeadsHandler.Create)

		if cfg.ProductsHandler != nil {
			public.Get("/products", cfg.ProductsHandler.List)
			public.Get("/products/{productID}", cfg.ProductsHandler.Get)
		}
		if cfg.ClientsHandler != nil {
			public.Get("/clients", cfg.ClientsHandler.List)
			public.Get("/clients/{clientID}", cfg.ClientsHandler.Get)
		}
		if cfg.TestimonialsHandler != nil {
			public.Get("/testimonials", cfg.TestimonialsHandler.List)
			public.Get("/testimonials/{testimonialID}", cfg.TestimonialsHandler.Get)
		}
		if cfg.TeamHandler != nil {
			public.Get("/team", cfg.TeamHandler.List)
			public.Get("/team/{memberID}", cfg.TeamHandler.Get)
		}
	})

	// Admin console: lead management and content CRUD.
	r.Route("/admin", func(admin chi.Router) {
		admin.Use(auth.Require(cfg.Authenticator))

		admin.Route("/leads", func(r chi.Router) {
			r.Get("/", cfg.LeadsHandler.List)
			r.Get("/stats", cfg.LeadsHandler.Stats)
			r.Get("/{leadID}", cfg.LeadsHandler.Get)
			r.Patch("/{leadID}", cfg.LeadsHandler.Update)
			r.Delete("/{leadID}", cfg.LeadsHandler.Delete)
		})

		if cfg.ProductsHandler != nil {
			admin.Route("/products", func(r chi.Router) {
				r.Post("/", cfg.ProductsHandler.Create)
				r.Put("/{productID}", cfg.ProductsHandler.Update)
				r.Delete("/{productID}", cfg.ProductsHandler.Delete)
			})
		}
		if cfg.ClientsHandler != nil {
			admin.Route("/clients", func(r chi.Router) {
				r.Post("/", cfg.ClientsHandler.Create)
				r.Put("/{clientID}", cfg.ClientsHandler.Update)
				r.Delete("/{clientID}", cfg.ClientsHandler.Delete)
			})
		}
		if cfg.TestimonialsHandler != nil {
			admin.Route("/testimonials", func(r chi.Router) {
				r.Post("/", cfg.TestimonialsHandler.Create)
				r.Put("/{testimonialID}", cfg.TestimonialsHandler.Update)
				r.Delete("/{testimonialID}", cfg.TestimonialsHandler.Delete)
			})
		}
		if cfg.TeamHandler != nil {
			admin.Route("/team", func(r chi.Router) {
				r.Post("/", cfg.TeamHandler.Create)
				r.Put("/{memberID}", cfg.TeamHandler.Update)
				r.Delete("/{memberID}", cfg.TeamHandler.Delete)
			})
		}
	})

	return r
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status": "ok"}`))
}
