package testimonials

import (
	"strings"
	"time"

	"github.com/matratecnologia/site-backend/internal/validate"
)

// Testimonial is a customer quote shown on the marketing site.
type Testimonial struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Company   string    `json:"company"`
	Text      string    `json:"text"`
	Avatar    *string   `json:"avatar"`
	Rating    int       `json:"rating"`
	Position  int       `json:"position"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateTestimonialRequest struct {
	Name     string  `json:"name"`
	Role     string  `json:"role"`
	Company  string  `json:"company"`
	Text     string  `json:"text"`
	Avatar   *string `json:"avatar"`
	Rating   *int    `json:"rating"`
	Position int     `json:"position"`
	Active   *bool   `json:"active"`
}

func (r *CreateTestimonialRequest) Validate() error {
	var verr validate.Error
	if strings.TrimSpace(r.Name) == "" {
		verr.Add("name", "name is required")
	}
	if strings.TrimSpace(r.Role) == "" {
		verr.Add("role", "role is required")
	}
	if strings.TrimSpace(r.Company) == "" {
		verr.Add("company", "company is required")
	}
	if strings.TrimSpace(r.Text) == "" {
		verr.Add("text", "text is required")
	}
	if r.Rating != nil && (*r.Rating < 1 || *r.Rating > 5) {
		verr.Add("rating", "rating must be between 1 and 5")
	}
	return verr.Err()
}

type UpdateTestimonialRequest struct {
	Name     *string `json:"name"`
	Role     *string `json:"role"`
	Company  *string `json:"company"`
	Text     *string `json:"text"`
	Avatar   *string `json:"avatar"`
	Rating   *int    `json:"rating"`
	Position *int    `json:"position"`
	Active   *bool   `json:"active"`
}

func (r *UpdateTestimonialRequest) Validate() error {
	var verr validate.Error
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		verr.Add("name", "name cannot be blank")
	}
	if r.Role != nil && strings.TrimSpace(*r.Role) == "" {
		verr.Add("role", "role cannot be blank")
	}
	if r.Company != nil && strings.TrimSpace(*r.Company) == "" {
		verr.Add("company", "company cannot be blank")
	}
	if r.Text != nil && strings.TrimSpace(*r.Text) == "" {
		verr.Add("text", "text cannot be blank")
	}
	if r.Rating != nil && (*r.Rating < 1 || *r.Rating > 5) {
		verr.Add("rating", "rating must be between 1 and 5")
	}
	return verr.Err()
}
