package products

import (
	"strings"
	"time"

	"github.com/matratecnologia/site-backend/internal/validate"
)

// Product is one portfolio entry shown on the marketing site.
type Product struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	LongDescription *string   `json:"long_description"`
	Icon            *string   `json:"icon"`
	Image           *string   `json:"image"`
	Images          []string  `json:"images"`
	Link            *string   `json:"link"`
	Technologies    []string  `json:"technologies"`
	Featured        bool      `json:"featured"`
	Position        int       `json:"position"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CreateProductRequest is the admin create payload.
type CreateProductRequest struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	LongDescription *string  `json:"long_description"`
	Icon            *string  `json:"icon"`
	Image           *string  `json:"image"`
	Images          []string `json:"images"`
	Link            *string  `json:"link"`
	Technologies    []string `json:"technologies"`
	Featured        bool     `json:"featured"`
	Position        int      `json:"position"`
	Active          *bool    `json:"active"`
}

func (r *CreateProductRequest) Validate() error {
	var verr validate.Error
	if strings.TrimSpace(r.Name) == "" {
		verr.Add("name", "name is required")
	}
	if strings.TrimSpace(r.Description) == "" {
		verr.Add("description", "description is required")
	}
	return verr.Err()
}

// UpdateProductRequest is the admin update payload; nil fields keep
// their stored value.
type UpdateProductRequest struct {
	Name            *string   `json:"name"`
	Description     *string   `json:"description"`
	LongDescription *string   `json:"long_description"`
	Icon            *string   `json:"icon"`
	Image           *string   `json:"image"`
	Images          *[]string `json:"images"`
	Link            *string   `json:"link"`
	Technologies    *[]string `json:"technologies"`
	Featured        *bool     `json:"featured"`
	Position        *int      `json:"position"`
	Active          *bool     `json:"active"`
}

func (r *UpdateProductRequest) Validate() error {
	var verr validate.Error
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		verr.Add("name", "name cannot be blank")
	}
	if r.Description != nil && strings.TrimSpace(*r.Description) == "" {
		verr.Add("description", "description cannot be blank")
	}
	return verr.Err()
}
