package team

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matratecnologia/site-backend/internal/cache"
	"github.com/matratecnologia/site-backend/internal/validate"
	"github.com/matratecnologia/site-backend/pkg/logging"
)

const (
	cacheKeyActive = "team:active"
	cacheKeyAll    = "team:all"
)

// Handler handles HTTP requests for team members.
type Handler struct {
	repo   Repository
	cache  *cache.Cache
	logger *logging.Logger
}

func NewHandler(repo Repository, c *cache.Cache, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{repo: repo, cache: c, logger: logger}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"
	key := cacheKeyAll
	if activeOnly {
		key = cacheKeyActive
	}

	if payload, ok := h.cache.Get(r.Context(), key); ok {
		writeRawJSON(w, http.StatusOK, payload)
		return
	}

	members, err := h.repo.List(r.Context(), activeOnly)
	if err != nil {
		h.logger.Error("failed to list team members", "error", err)
		http.Error(w, "failed to list team members", http.StatusInternalServerError)
		return
	}

	payload, err := json.Marshal(members)
	if err != nil {
		http.Error(w, "failed to list team members", http.StatusInternalServerError)
		return
	}
	h.cache.Set(r.Context(), key, payload)
	writeRawJSON(w, http.StatusOK, payload)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "memberID")
	member, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			http.Error(w, "team member not found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to get team member", "error", err, "id", id)
		http.Error(w, "failed to get team member", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, member)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	member, err := h.repo.Create(r.Context(), &req)
	if err != nil {
		if verr, ok := validate.As(err); ok {
			writeJSON(w, http.StatusBadRequest, verr)
			return
		}
		h.logger.Error("failed to create team member", "error", err)
		http.Error(w, "failed to create team member", http.StatusInternalServerError)
		return
	}

	h.cache.Invalidate(r.Context(), cacheKeyActive, cacheKeyAll)
	h.logger.Info("team member created", "id", member.ID, "name", member.Name)
	writeJSON(w, http.StatusCreated, member)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "memberID")
	var req UpdateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	member, err := h.repo.Update(r.Context(), id, &req)
	if err != nil {
		if verr, ok := validate.As(err); ok {
			writeJSON(w, http.StatusBadRequest, verr)
			return
		}
		if errors.Is(err, ErrMemberNotFound) {
			http.Error(w, "team member not found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to update team member", "error", err, "id", id)
		http.Error(w, "failed to update team member", http.StatusInternalServerError)
		return
	}

	h.cache.Invalidate(r.Context(), cacheKeyActive, cacheKeyAll)
	writeJSON(w, http.StatusOK, member)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "memberID")
	if err := h.repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			http.Error(w, "team member not found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to delete team member", "error", err, "id", id)
		http.Error(w, "failed to delete team member", http.StatusInternalServerError)
		return
	}

	h.cache.Invalidate(r.Context(), cacheKeyActive, cacheKeyAll)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeRawJSON(w http.ResponseWriter, status int, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}
