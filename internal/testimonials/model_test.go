package testimonials

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matratecnologia/site-backend/internal/validate"
)

func TestCreateTestimonialValidation(t *testing.T) {
	req := &CreateTestimonialRequest{
		Name:    "Carlos",
		Role:    "Diretor",
		Company: "Construtora Sul",
		Text:    "Atendimento excelente.",
	}
	assert.NoError(t, req.Validate())

	req.Text = "   "
	err := req.Validate()
	require.Error(t, err)
	verr, ok := validate.As(err)
	require.True(t, ok)
	assert.Equal(t, "text", verr.Fields[0].Field)
}

func TestCreateTestimonialRatingBounds(t *testing.T) {
	for rating, wantErr := range map[int]bool{0: true, 1: false, 5: false, 6: true} {
		req := &CreateTestimonialRequest{
			Name: "Carlos", Role: "Diretor", Company: "Construtora Sul", Text: "Otimo.",
			Rating: &rating,
		}
		err := req.Validate()
		if wantErr {
			assert.Error(t, err, "rating %d", rating)
		} else {
			assert.NoError(t, err, "rating %d", rating)
		}
	}
}

func TestUpdateTestimonialRejectsBlankFields(t *testing.T) {
	blank := " "
	err := (&UpdateTestimonialRequest{Company: &blank}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "company")
}
