package team

import (
	"strings"
	"time"

	"github.com/matratecnologia/site-backend/internal/validate"
)

// Member is one staff profile shown on the about page.
type Member struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Bio       *string   `json:"bio"`
	Photo     *string   `json:"photo"`
	Email     *string   `json:"email"`
	LinkedIn  *string   `json:"linkedin"`
	GitHub    *string   `json:"github"`
	Position  int       `json:"position"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateMemberRequest struct {
	Name     string  `json:"name"`
	Role     string  `json:"role"`
	Bio      *string `json:"bio"`
	Photo    *string `json:"photo"`
	Email    *string `json:"email"`
	LinkedIn *string `json:"linkedin"`
	GitHub   *string `json:"github"`
	Position int     `json:"position"`
	Active   *bool   `json:"active"`
}

func (r *CreateMemberRequest) Validate() error {
	var verr validate.Error
	if strings.TrimSpace(r.Name) == "" {
		verr.Add("name", "name is required")
	}
	if strings.TrimSpace(r.Role) == "" {
		verr.Add("role", "role is required")
	}
	if r.Email != nil && *r.Email != "" && !validate.Email(*r.Email) {
		verr.Add("email", "email is invalid")
	}
	return verr.Err()
}

type UpdateMemberRequest struct {
	Name     *string `json:"name"`
	Role     *string `json:"role"`
	Bio      *string `json:"bio"`
	Photo    *string `json:"photo"`
	Email    *string `json:"email"`
	LinkedIn *string `json:"linkedin"`
	GitHub   *string `json:"github"`
	Position *int    `json:"position"`
	Active   *bool   `json:"active"`
}

func (r *UpdateMemberRequest) Validate() error {
	var verr validate.Error
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		verr.Add("name", "name cannot be blank")
	}
	if r.Role != nil && strings.TrimSpace(*r.Role) == "" {
		verr.Add("role", "role cannot be blank")
	}
	if r.Email != nil && *r.Email != "" && !validate.Email(*r.Email) {
		verr.Add("email", "email is invalid")
	}
	return verr.Err()
}
