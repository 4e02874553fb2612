package leads

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matratecnologia/site-backend/internal/observability/metrics"
	"github.com/matratecnologia/site-backend/internal/validate"
	"github.com/matratecnologia/site-backend/pkg/logging"
)

// Notifier is told about every successfully stored lead. Implementations
// must not block the request for long and must never fail it.
type Notifier interface {
	LeadReceived(ctx context.Context, lead *Lead)
}

// Handler handles HTTP requests for leads.
type Handler struct {
	repo          Repository
	defaultOrigin string
	notifier      Notifier
	metrics       *metrics.LeadMetrics
	logger        *logging.Logger
}

// NewHandler creates a leads handler. notifier and m may be nil.
func NewHandler(repo Repository, defaultOrigin string, notifier Notifier, m *metrics.LeadMetrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if defaultOrigin == "" {
		defaultOrigin = "site"
	}
	return &Handler{
		repo:          repo,
		defaultOrigin: defaultOrigin,
		notifier:      notifier,
		metrics:       m,
		logger:        logger,
	}
}

// Create handles POST /leads, the public intake endpoint.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Origin == "" {
		req.Origin = h.defaultOrigin
	}

	lead, err := h.repo.Create(r.Context(), &req)
	if err != nil {
		if verr, ok := validate.As(err); ok {
			h.metrics.ObserveIntake(req.Origin, "invalid")
			writeJSON(w, http.StatusBadRequest, verr)
			return
		}
		h.logger.Error("failed to create lead", "error", err)
		h.metrics.ObserveIntake(req.Origin, "error")
		http.Error(w, "failed to create lead", http.StatusInternalServerError)
		return
	}

	h.logger.Info("lead created", "id", lead.ID, "origin", lead.Origin)
	h.metrics.ObserveIntake(lead.Origin, "created")
	if h.notifier != nil {
		h.notifier.LeadReceived(r.Context(), lead)
	}
	writeJSON(w, http.StatusCreated, lead)
}

// List handles GET /admin/leads with optional status and search params.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filter := ListFilter{Search: r.URL.Query().Get("search")}
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := Status(raw)
		if !status.Valid() {
			http.Error(w, "invalid status value", http.StatusBadRequest)
			return
		}
		filter.Status = status
	}

	leads, err := h.repo.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("failed to list leads", "error", err)
		http.Error(w, "failed to list leads", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, leads)
}

// Stats handles GET /admin/leads/stats. The counts always cover the
// full collection regardless of any list filter the console applies.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.repo.Stats(r.Context())
	if err != nil {
		h.logger.Error("failed to compute lead stats", "error", err)
		http.Error(w, "failed to compute stats", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// Get handles GET /admin/leads/{leadID}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "leadID")
	lead, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrLeadNotFound) {
			http.Error(w, "lead not found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to get lead", "error", err, "id", id)
		http.Error(w, "failed to get lead", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

// Update handles PATCH /admin/leads/{leadID} for status and notes.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "leadID")
	var req UpdateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	lead, err := h.repo.Update(r.Context(), id, &req)
	if err != nil {
		if verr, ok := validate.As(err); ok {
			writeJSON(w, http.StatusBadRequest, verr)
			return
		}
		if errors.Is(err, ErrLeadNotFound) {
			http.Error(w, "lead not found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to update lead", "error", err, "id", id)
		http.Error(w, "failed to update lead", http.StatusInternalServerError)
		return
	}

	h.metrics.ObserveConsoleMutation("update")
	writeJSON(w, http.StatusOK, lead)
}

// Delete handles DELETE /admin/leads/{leadID}. Deletion is permanent;
// asking the operator for confirmation is the console UI's job.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "leadID")
	if err := h.repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrLeadNotFound) {
			http.Error(w, "lead not found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to delete lead", "error", err, "id", id)
		http.Error(w, "failed to delete lead", http.StatusInternalServerError)
		return
	}

	h.logger.Info("lead deleted", "id", id)
	h.metrics.ObserveConsoleMutation("delete")
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
