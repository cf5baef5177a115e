package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type jobForm struct {
	Title        string `json:"title" validate:"required,min=3"`
	ContractType string `json:"contract_type" validate:"omitempty,is-contract-type"`
	Status       string `json:"status" validate:"omitempty,is-job-status"`
	Method       string `json:"application_method" validate:"omitempty,is-application-method"`
}

func TestValidate_ReportsJSONNames(t *testing.T) {
	v := New()

	err := v.Validate(&jobForm{Title: "", ContractType: "estágio", Status: "archived", Method: "telegram"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "This field is required", vErr.Errors["title"])
	assert.Equal(t, "Unknown contract type", vErr.Errors["contract_type"])
	assert.Equal(t, "Unknown status", vErr.Errors["status"])
	assert.Equal(t, "Must be one of: whatsapp, email, phone", vErr.Errors["application_method"])
}

func TestValidate_EnumsAcceptMembersAndEmpty(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&jobForm{Title: "Padeiro"}))
	assert.NoError(t, v.Validate(&jobForm{Title: "Padeiro", ContractType: "CLT", Status: "paused", Method: "whatsapp"}))
}

func TestValidateVar(t *testing.T) {
	v := New()
	assert.NoError(t, v.ValidateVar("rh@padaria.com", "required,email"))
	assert.Error(t, v.ValidateVar("rh.padaria.com", "required,email"))
}
