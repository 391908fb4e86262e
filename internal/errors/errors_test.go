package errors_test

import (
	"errors"
	"fmt"
	"testing"

	apperrors "notes-saas-backend/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestSentinelMessages(t *testing.T) {
	assert.Equal(t, "Tenant not found", apperrors.ErrTenantNotFound.Error())
	assert.Equal(t, "Note not found", apperrors.ErrNoteNotFound.Error())
	assert.Equal(t, "User already exists", apperrors.ErrUserExists.Error())
	assert.Equal(t, "Invalid credentials", apperrors.ErrInvalidCredentials.Error())
	assert.Equal(t, "Account suspended", apperrors.ErrAccountSuspended.Error())
	assert.Equal(t, "Access token required", apperrors.ErrTokenRequired.Error())
	assert.Equal(t, "Invalid or inactive user/tenant", apperrors.ErrInactiveUserOrTenant.Error())
	assert.Equal(t, "Admin access required", apperrors.ErrAdminRequired.Error())
	assert.Equal(t, "Note limit reached. Upgrade to Pro for unlimited notes.", apperrors.ErrNoteLimitReached.Error())
	assert.Equal(t, "Tenant is already on Pro plan", apperrors.ErrTenantAlreadyPro.Error())
	assert.Equal(t, "Current password is incorrect", apperrors.ErrCurrentPasswordIncorrect.Error())
}

func TestNotFoundComparison(t *testing.T) {
	err := fmt.Errorf("loading note: %w", apperrors.ErrNoteNotFound)

	assert.True(t, errors.Is(err, apperrors.ErrNoteNotFound))
	assert.False(t, errors.Is(err, apperrors.ErrTenantNotFound))
	assert.True(t, apperrors.IsNotFound(err))
}

func TestTypeCheckers(t *testing.T) {
	assert.True(t, apperrors.IsNotFound(apperrors.NewNotFoundError("Widget")))
	assert.True(t, apperrors.IsAlreadyExists(apperrors.ErrUserExists))
	assert.True(t, apperrors.IsValidation(apperrors.NewValidationError("", "bad input")))
	assert.True(t, apperrors.IsAuthentication(apperrors.ErrInvalidCredentials))
	assert.True(t, apperrors.IsAuthorization(apperrors.ErrAccessDenied))
	assert.True(t, apperrors.IsConflict(apperrors.ErrTenantAlreadyPro))

	assert.False(t, apperrors.IsNotFound(apperrors.ErrUserExists))
	assert.False(t, apperrors.IsValidation(errors.New("plain")))
	assert.False(t, apperrors.IsConflict(nil))
}

func TestValidationErrorMessage(t *testing.T) {
	withField := apperrors.NewValidationError("email", "must be valid")
	assert.Equal(t, "validation error: email - must be valid", withField.Error())

	withoutField := apperrors.NewValidationError("", "At least one field is required")
	assert.Equal(t, "validation error: At least one field is required", withoutField.Error())
}

func TestAlreadyExistsContext(t *testing.T) {
	err := apperrors.NewAlreadyExistsError("User", "in tenant")
	assert.Equal(t, "User already exists in tenant", err.Error())
}
