package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/registrar/internal/pkg/apperrors"
)

func newTestResetTokenService(expiry time.Duration) *ResetTokenService {
	return NewResetTokenService(ResetTokenConfig{
		SecretKey: "test-secret",
		Expiry:    expiry,
		Issuer:    "test",
	})
}

func TestResetToken_RoundTrip(t *testing.T) {
	svc := newTestResetTokenService(time.Hour)

	token, err := svc.Generate(42, "jane@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
}

func TestResetToken_Expired(t *testing.T) {
	svc := newTestResetTokenService(-time.Minute)

	token, err := svc.Generate(42, "jane@example.com")
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, apperrors.ErrResetTokenInvalid)
}

func TestResetToken_WrongSecret(t *testing.T) {
	issuer := newTestResetTokenService(time.Hour)
	verifier := NewResetTokenService(ResetTokenConfig{
		SecretKey: "different-secret",
		Expiry:    time.Hour,
		Issuer:    "test",
	})

	token, err := issuer.Generate(42, "jane@example.com")
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.Error(t, err)
}

func TestResetToken_Garbage(t *testing.T) {
	svc := newTestResetTokenService(time.Hour)

	_, err := svc.Validate("not.a.token")
	assert.Error(t, err)
}
