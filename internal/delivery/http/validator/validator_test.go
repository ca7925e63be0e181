package validator

import (
	"testing"

	domainerrors "indocafe/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=SUPER_ADMIN CASHIER"`
}

func TestCustomValidator_Valid(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&loginRequest{Email: "a@indocafe.id", Password: "x"}))
}

func TestCustomValidator_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&loginRequest{Email: "not-an-email", Role: "CHEF"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "email must be a valid email address; password is required; role must be one of SUPER_ADMIN CASHIER", appErr.Details())
}
