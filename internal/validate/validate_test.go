package validate

import (
	"fmt"
	"testing"
)

func TestErrNilWhenClean(t *testing.T) {
	var verr Error
	if err := verr.Err(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestAddAndAs(t *testing.T) {
	var verr Error
	verr.Add("name", "name is required")
	verr.Add("email", "email is malformed")

	err := fmt.Errorf("create: %w", verr.Err())
	unwrapped, ok := As(err)
	if !ok {
		t.Fatal("expected As to find the validation error")
	}
	if len(unwrapped.Fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(unwrapped.Fields))
	}
	if unwrapped.Fields[0].Field != "name" {
		t.Fatalf("unexpected first field: %+v", unwrapped.Fields[0])
	}
}

func TestEmail(t *testing.T) {
	valid := []string{"ana@example.com", "a.b+c@sub.domain.dev"}
	invalid := []string{"", "not-an-email", "a@b", "a b@c.com", "@c.com"}

	for _, s := range valid {
		if !Email(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	for _, s := range invalid {
		if Email(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}
