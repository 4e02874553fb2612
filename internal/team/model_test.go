package team

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMemberValidation(t *testing.T) {
	req := &CreateMemberRequest{Name: "Marina", Role: "CTO"}
	assert.NoError(t, req.Validate())

	req.Role = ""
	require.Error(t, req.Validate())
}

func TestCreateMemberEmailOptionalButChecked(t *testing.T) {
	empty := ""
	req := &CreateMemberRequest{Name: "Marina", Role: "CTO", Email: &empty}
	assert.NoError(t, req.Validate())

	bad := "not-an-email"
	req.Email = &bad
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email is invalid")

	good := "marina@matratecnologia.com.br"
	req.Email = &good
	assert.NoError(t, req.Validate())
}

func TestUpdateMemberRejectsBlankRole(t *testing.T) {
	blank := "  "
	assert.Error(t, (&UpdateMemberRequest{Role: &blank}).Validate())
}
