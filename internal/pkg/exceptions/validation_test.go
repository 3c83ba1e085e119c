package exceptions

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginPayload struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required,min=6"`
}

func TestFormatAllValidationErrors(t *testing.T) {
	validate := validator.New()

	t.Run("collects every failing field", func(t *testing.T) {
		err := validate.Struct(loginPayload{})
		require.Error(t, err)

		fieldErrors := FormatAllValidationErrors(err)
		require.Len(t, fieldErrors, 2)
		assert.Equal(t, "is required", fieldErrors[0].Message)
		assert.Equal(t, "is required", fieldErrors[1].Message)
	})

	t.Run("substitutes tag parameters", func(t *testing.T) {
		err := validate.Struct(loginPayload{Email: "ana@example.com", Senha: "abc"})
		require.Error(t, err)

		fieldErrors := FormatAllValidationErrors(err)
		require.Len(t, fieldErrors, 1)
		assert.Equal(t, "must be at least 6 characters long", fieldErrors[0].Message)
	})

	t.Run("nil error yields nothing", func(t *testing.T) {
		assert.Nil(t, FormatAllValidationErrors(nil))
	})
}
