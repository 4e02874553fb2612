package leads

import (
	"strings"
	"time"

	"github.com/matratecnologia/site-backend/internal/validate"
)

// Status classifies a lead's sales-pipeline stage. The literals are
// wire-exact and case-sensitive.
type Status string

const (
	StatusNovo         Status = "NOVO"
	StatusContatado    Status = "CONTATADO"
	StatusEmNegociacao Status = "EM_NEGOCIACAO"
	StatusConvertido   Status = "CONVERTIDO"
	StatusPerdido      Status = "PERDIDO"
)

// Statuses lists every valid status in pipeline order.
var Statuses = []Status{
	StatusNovo,
	StatusContatado,
	StatusEmNegociacao,
	StatusConvertido,
	StatusPerdido,
}

// Valid reports whether s is a member of the status enumeration.
func (s Status) Valid() bool {
	switch s {
	case StatusNovo, StatusContatado, StatusEmNegociacao, StatusConvertido, StatusPerdido:
		return true
	}
	return false
}

// Lead represents one inbound sales inquiry submitted through the
// public contact form.
type Lead struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	Origin    string    `json:"origin"`
	Status    Status    `json:"status"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateLeadRequest is the public intake payload.
type CreateLeadRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
	Origin  string `json:"origin"`
}

// Validate checks the intake payload and returns every offending field.
// An empty email means "not provided" and is not an error.
func (r *CreateLeadRequest) Validate() error {
	var verr validate.Error
	if strings.TrimSpace(r.Name) == "" {
		verr.Add("name", "name is required")
	}
	if strings.TrimSpace(r.Phone) == "" {
		verr.Add("phone", "phone is required")
	}
	if strings.TrimSpace(r.Message) == "" {
		verr.Add("message", "message is required")
	}
	if r.Email != "" && !validate.Email(r.Email) {
		verr.Add("email", "email is malformed")
	}
	return verr.Err()
}

// UpdateLeadRequest is the admin PATCH payload. Nil fields are left
// untouched; notes may be set to the empty string.
type UpdateLeadRequest struct {
	Status *Status `json:"status,omitempty"`
	Notes  *string `json:"notes,omitempty"`
}

// Validate rejects status literals outside the enumeration and empty updates.
func (r *UpdateLeadRequest) Validate() error {
	var verr validate.Error
	if r.Status == nil && r.Notes == nil {
		verr.Add("body", "no fields to update")
	}
	if r.Status != nil && !r.Status.Valid() {
		verr.Add("status", "invalid status value")
	}
	return verr.Err()
}

// ListFilter narrows the admin list operation. Zero values mean no filter.
type ListFilter struct {
	Status Status
	Search string
}

// Stats aggregates per-status counts over the full collection.
type Stats struct {
	Total    int64            `json:"total"`
	ByStatus map[Status]int64 `json:"by_status"`
}
