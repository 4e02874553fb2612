package clients

import (
	"strings"
	"time"

	"github.com/matratecnologia/site-backend/internal/validate"
)

// Client is a company logo entry for the marketing site carousel.
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Logo      *string   `json:"logo"`
	Site      *string   `json:"site"`
	Position  int       `json:"position"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateClientRequest struct {
	Name     string  `json:"name"`
	Logo     *string `json:"logo"`
	Site     *string `json:"site"`
	Position int     `json:"position"`
	Active   *bool   `json:"active"`
}

func (r *CreateClientRequest) Validate() error {
	var verr validate.Error
	if strings.TrimSpace(r.Name) == "" {
		verr.Add("name", "name is required")
	}
	return verr.Err()
}

type UpdateClientRequest struct {
	Name     *string `json:"name"`
	Logo     *string `json:"logo"`
	Site     *string `json:"site"`
	Position *int    `json:"position"`
	Active   *bool   `json:"active"`
}

func (r *UpdateClientRequest) Validate() error {
	var verr validate.Error
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		verr.Add("name", "name cannot be blank")
	}
	return verr.Err()
}
