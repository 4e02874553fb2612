package products

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
	cacheKeyActive = "products:active"
	cacheKeyAll    = "products:all"
)

// Handler handles HTTP requests for products.
type Handler struct {
	repo   Repository
	cache  *cache.Cache
	logger *logging.Logger
}

// NewHandler creates a products handler. c may be nil.
func NewHandler(repo Repository, c *cache.Cache, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{repo: repo, cache: c, logger: logger}
}

// List handles GET /products. ?active=true narrows to active entries,
// which is what the marketing site renders.
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

	products, err := h.repo.List(r.Context(), activeOnly)
	if err != nil {
		h.logger.Error("failed to list products", "error", err)
		http.Error(w, "failed to list products", http.StatusInternalServerError)
		return
	}

	payload, err := json.Marshal(products)
	if err != nil {
		http.Error(w, "failed to list products", http.StatusInternalServerError)
		return
	}
	h.cache.Set(r.Context(), key, payload)
	writeRawJSON(w, http.StatusOK, payload)
}

// Get handles GET /products/{productID}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productID")
	product, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to get product", "error", err, "id", id)
		http.Error(w, "failed to get product", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// Create handles POST /admin/products.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	product, err := h.repo.Create(r.Context(), &req)
	if err != nil {
		if verr, ok := validate.As(err); ok {
			writeJSON(w, http.StatusBadRequest, verr)
			return
		}
		h.logger.Error("failed to create product", "error", err)
		http.Error(w, "failed to create product", http.StatusInternalServerError)
		return
	}

	h.cache.Invalidate(r.Context(), cacheKeyActive, cacheKeyAll)
	h.logger.Info("product created", "id", product.ID, "name", product.Name)
	writeJSON(w, http.StatusCreated, product)
}

// Update handles PUT /admin/products/{productID}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productID")
	var req UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	product, err := h.repo.Update(r.Context(), id, &req)
	if err != nil {
		if verr, ok := validate.As(err); ok {
			writeJSON(w, http.StatusBadRequest, verr)
			return
		}
		if errors.Is(err, ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to update product", "error", err, "id", id)
		http.Error(w, "failed to update product", http.StatusInternalServerError)
		return
	}

	h.cache.Invalidate(r.Context(), cacheKeyActive, cacheKeyAll)
	writeJSON(w, http.StatusOK, product)
}

// Delete handles DELETE /admin/products/{productID}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productID")
	if err := h.repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to delete product", "error", err, "id", id)
		http.Error(w, "failed to delete product", http.StatusInternalServerError)
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
