package auth_test

import (
	"testing"
	"time"

	"notes-saas-backend/internal/auth"
	apperrors "notes-saas-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndValidate(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret")
	userID := uuid.New()

	tokenString, err := tokens.Issue(userID)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := tokens.Validate(tokenString)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.WithinDuration(t, time.Now().Add(auth.TokenTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestValidateWrongSecret(t *testing.T) {
	tokenString, err := auth.NewTokenManager("secret-a").Issue(uuid.New())
	require.NoError(t, err)

	_, err = auth.NewTokenManager("secret-b").Validate(tokenString)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestValidateGarbage(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret")

	_, err := tokens.Validate("not.a.token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestValidateExpired(t *testing.T) {
	secret := "test-secret"
	claims := &auth.Claims{
		UserID: uuid.New().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = auth.NewTokenManager(secret).Validate(tokenString)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestValidateRejectsUnsignedToken(t *testing.T) {
	claims := &auth.Claims{
		UserID: uuid.New().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = auth.NewTokenManager("test-secret").Validate(tokenString)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
