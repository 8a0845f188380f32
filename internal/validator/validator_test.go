package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	Email  string `json:"email" validate:"required,email"`
	Status string `json:"status" validate:"omitempty,oneof=pending approved rejected"`
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&sampleForm{Email: "not-an-email"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "Must be a valid email address", vErr.Errors["email"])
}

func TestValidate_OneOf(t *testing.T) {
	v := New()

	err := v.Validate(&sampleForm{Email: "a@b.com", Status: "archived"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors["status"], "Must be one of")
}

func TestValidate_Passes(t *testing.T) {
	v := New()
	assert.NoError(t, v.Validate(&sampleForm{Email: "a@b.com", Status: "approved"}))
}
