package leads

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for lead storage.
type Repository interface {
	Create(ctx context.Context, req *CreateLeadRequest) (*Lead, error)
	GetByID(ctx context.Context, id string) (*Lead, error)
	List(ctx context.Context, filter ListFilter) ([]*Lead, error)
	Update(ctx context.Context, id string, req *UpdateLeadRequest) (*Lead, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*Stats, error)
}

// InMemoryRepository keeps leads in a map. Used by handler tests and
// local development without a database.
type InMemoryRepository struct {
	mu    sync.RWMutex
	leads map[string]*Lead
}

// NewInMemoryRepository creates an empty in-memory repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{leads: make(map[string]*Lead)}
}

// Create stores a new lead with status NOVO.
func (r *InMemoryRepository) Create(ctx context.Context, req *CreateLeadRequest) (*Lead, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	lead := &Lead{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Phone:     req.Phone,
		Message:   req.Message,
		Origin:    req.Origin,
		Status:    StatusNovo,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.Email != "" {
		email := req.Email
		lead.Email = &email
	}

	r.mu.Lock()
	r.leads[lead.ID] = lead
	r.mu.Unlock()

	return copyLead(lead), nil
}

// GetByID retrieves a lead by id.
func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lead, ok := r.leads[id]
	if !ok {
		return nil, ErrLeadNotFound
	}
	return copyLead(lead), nil
}

// List returns leads newest-first, narrowed by the filter. Status match
// is exact; search is a case-insensitive substring over name, email and
// message, combined with the status filter by AND.
func (r *InMemoryRepository) List(ctx context.Context, filter ListFilter) ([]*Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Lead, 0, len(r.leads))
	needle := strings.ToLower(filter.Search)
	for _, lead := range r.leads {
		if filter.Status != "" && lead.Status != filter.Status {
			continue
		}
		if needle != "" && !matchesSearch(lead, needle) {
			continue
		}
		out = append(out, copyLead(lead))
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func matchesSearch(lead *Lead, needle string) bool {
	if strings.Contains(strings.ToLower(lead.Name), needle) {
		return true
	}
	if lead.Email != nil && strings.Contains(strings.ToLower(*lead.Email), needle) {
		return true
	}
	return strings.Contains(strings.ToLower(lead.Message), needle)
}

// Update applies a status and/or notes change and refreshes updated_at.
func (r *InMemoryRepository) Update(ctx context.Context, id string, req *UpdateLeadRequest) (*Lead, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	lead, ok := r.leads[id]
	if !ok {
		return nil, ErrLeadNotFound
	}
	if req.Status != nil {
		lead.Status = *req.Status
	}
	if req.Notes != nil {
		notes := *req.Notes
		lead.Notes = &notes
	}
	lead.UpdatedAt = time.Now().UTC()
	return copyLead(lead), nil
}

// Delete removes a lead permanently.
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.leads[id]; !ok {
		return ErrLeadNotFound
	}
	delete(r.leads, id)
	return nil
}

// Stats counts leads per status over the full collection.
func (r *InMemoryRepository) Stats(ctx context.Context) (*Stats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := &Stats{ByStatus: make(map[Status]int64, len(Statuses))}
	for _, s := range Statuses {
		stats.ByStatus[s] = 0
	}
	for _, lead := range r.leads {
		stats.ByStatus[lead.Status]++
		stats.Total++
	}
	return stats, nil
}

func copyLead(lead *Lead) *Lead {
	out := *lead
	if lead.Email != nil {
		email := *lead.Email
		out.Email = &email
	}
	if lead.Notes != nil {
		notes := *lead.Notes
		out.Notes = &notes
	}
	return &out
}
