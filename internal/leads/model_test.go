package leads

import (
	"testing"

	"github.com/matratecnologia/site-backend/internal/validate"
)

func TestCreateLeadRequestValidate(t *testing.T) {
	tests := []struct {
		name      string
		req       CreateLeadRequest
		wantField string
	}{
		{
			name: "valid full payload",
			req:  CreateLeadRequest{Name: "Ana", Email: "ana@example.com", Phone: "43999990000", Message: "Quero um orcamento"},
		},
		{
			name: "valid without email",
			req:  CreateLeadRequest{Name: "Ana", Phone: "43999990000", Message: "Quero um orcamento"},
		},
		{
			name: "empty email is not provided, not invalid",
			req:  CreateLeadRequest{Name: "Ana", Email: "", Phone: "43999990000", Message: "Oi"},
		},
		{
			name:      "missing name",
			req:       CreateLeadRequest{Phone: "43999990000", Message: "Oi"},
			wantField: "name",
		},
		{
			name:      "blank name",
			req:       CreateLeadRequest{Name: "   ", Phone: "43999990000", Message: "Oi"},
			wantField: "name",
		},
		{
			name:      "missing phone",
			req:       CreateLeadRequest{Name: "Ana", Message: "Oi"},
			wantField: "phone",
		},
		{
			name:      "missing message",
			req:       CreateLeadRequest{Name: "Ana", Phone: "43999990000"},
			wantField: "message",
		},
		{
			name:      "malformed email",
			req:       CreateLeadRequest{Name: "Ana", Email: "not-an-email", Phone: "43999990000", Message: "Oi"},
			wantField: "email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("expected valid, got %v", err)
				}
				return
			}
			verr, ok := validate.As(err)
			if !ok {
				t.Fatalf("expected validation error, got %v", err)
			}
			found := false
			for _, f := range verr.Fields {
				if f.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Fatalf("expected field %q in %v", tt.wantField, verr.Fields)
			}
		})
	}
}

func TestCreateLeadRequestValidateCollectsAllFields(t *testing.T) {
	req := CreateLeadRequest{Email: "broken"}
	verr, ok := validate.As(req.Validate())
	if !ok {
		t.Fatal("expected validation error")
	}
	if len(verr.Fields) != 4 {
		t.Fatalf("expected 4 field errors, got %d: %v", len(verr.Fields), verr.Fields)
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range Statuses {
		if !s.Valid() {
			t.Fatalf("expected %s to be valid", s)
		}
	}
	for _, s := range []Status{"", "novo", "NOVO ", "GANHO", "CONVERTIDO_X"} {
		if s.Valid() {
			t.Fatalf("expected %q to be invalid", s)
		}
	}
}

func TestUpdateLeadRequestValidate(t *testing.T) {
	good := StatusContatado
	bad := Status("CONTACTED")
	empty := ""

	if err := (&UpdateLeadRequest{Status: &good}).Validate(); err != nil {
		t.Fatalf("status-only update should be valid: %v", err)
	}
	if err := (&UpdateLeadRequest{Notes: &empty}).Validate(); err != nil {
		t.Fatalf("empty notes update should be valid: %v", err)
	}
	if err := (&UpdateLeadRequest{Status: &bad}).Validate(); err == nil {
		t.Fatal("expected invalid status literal to be rejected")
	}
	if err := (&UpdateLeadRequest{}).Validate(); err == nil {
		t.Fatal("expected empty update to be rejected")
	}
}
