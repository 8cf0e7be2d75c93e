package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	Email string `json:"email" validate:"required,email"`
	Level int    `json:"level" validate:"gte=1,lte=5"`
}

func TestValidate_ReportsFieldsByJSONName(t *testing.T) {
	v := New()

	err := v.Validate(&sampleInput{Email: "not-an-email", Level: 9})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "email")
	assert.Contains(t, vErr.Errors, "level")
	assert.Equal(t, "Must be a valid email address", vErr.Errors["email"])
}

func TestValidate_PassesValidInput(t *testing.T) {
	v := New()
	assert.NoError(t, v.Validate(&sampleInput{Email: "ok@test.com", Level: 3}))
}
