package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/campushq/registrar/internal/app/models"
	"github.com/campushq/registrar/internal/pkg/apperrors"
	"github.com/campushq/registrar/internal/pkg/auth"
)

func newTestAuthService(userRepo *mockUserRepository, sessionRepo *mockSessionRepository) AuthService {
	resetTokens := auth.NewResetTokenService(auth.ResetTokenConfig{
		SecretKey: "test-secret",
		Expiry:    time.Hour,
		Issuer:    "test",
	})
	return NewAuthService(userRepo, sessionRepo, resetTokens, 24*time.Hour, zerolog.Nop())
}

func TestRegister_PasswordMismatch(t *testing.T) {
	userRepo := new(mockUserRepository)
	sessionRepo := new(mockSessionRepository)
	svc := newTestAuthService(userRepo, sessionRepo)

	err := svc.Register(context.Background(), "Jane Doe", "jane@example.com", "secret1", "secret2")

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	userRepo := new(mockUserRepository)
	sessionRepo := new(mockSessionRepository)
	svc := newTestAuthService(userRepo, sessionRepo)

	userRepo.On("ExistsByUsername", mock.Anything, "jane@example.com").Return(true, nil)

	err := svc.Register(context.Background(), "Jane Doe", "jane@example.com", "secret", "secret")

	assert.ErrorIs(t, err, apperrors.ErrAccountExists)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_HashesPasswordAndNormalizesEmail(t *testing.T) {
	userRepo := new(mockUserRepository)
	sessionRepo := new(mockSessionRepository)
	svc := newTestAuthService(userRepo, sessionRepo)

	userRepo.On("ExistsByUsername", mock.Anything, "jane@example.com").Return(false, nil)

	var created *models.User
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*models.User)
		}).
		Return(nil)

	err := svc.Register(context.Background(), "  Jane Doe  ", " Jane@Example.COM ", "secret", "secret")

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "jane@example.com", created.Username)
	assert.Equal(t, "jane@example.com", created.Email)
	assert.Equal(t, "Jane Doe", created.FirstName)
	assert.NotEqual(t, "secret", created.Password)
	assert.True(t, auth.CheckPassword(created.Password, "secret"))
}

func TestLogin_UnknownEmail(t *testing.T) {
	userRepo := new(mockUserRepository)
	sessionRepo := new(mockSessionRepository)
	svc := newTestAuthService(userRepo, sessionRepo)

	userRepo.On("GetByUsername", mock.Anything, "ghost@example.com").
		Return(nil, apperrors.ErrUserNotFound)

	session, user, err := svc.Login(context.Background(), "ghost@example.com", "whatever")

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.Nil(t, session)
	assert.Nil(t, user)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := new(mockUserRepository)
	sessionRepo := new(mockSessionRepository)
	svc := newTestAuthService(userRepo, sessionRepo)

	hashed, err := auth.HashPassword("correct-password")
	require.NoError(t, err)

	userRepo.On("GetByUsername", mock.Anything, "jane@example.com").
		Return(&models.User{ID: 1, Username: "jane@example.com", Password: hashed}, nil)

	session, _, err := svc.Login(context.Background(), "jane@example.com", "wrong-password")

	// Wrong password and unknown email must be indistinguishable.
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.Nil(t, session)
	sessionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin_CreatesSession(t *testing.T) {
	userRepo := new(mockUserRepository)
	sessionRepo := new(mockSessionRepository)
	svc := newTestAuthService(userRepo, sessionRepo)

	hashed, err := auth.HashPassword("correct-password")
	require.NoError(t, err)

	userRepo.On("GetByUsername", mock.Anything, "jane@example.com").
		Return(&models.User{ID: 42, Username: "jane@example.com", Password: hashed}, nil)
	sessionRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Session")).Return(nil)

	session, user, err := svc.Login(context.Background(), "Jane@Example.com", "correct-password")

	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, int64(42), session.UserID)
	assert.Equal(t, int64(42), user.ID)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), session.ExpiresAt, time.Minute)
	sessionRepo.AssertExpectations(t)
}

func TestForgotPassword_UnknownAccount(t *testing.T) {
	userRepo := new(mockUserRepository)
	sessionRepo := new(mockSessionRepository)
	svc := newTestAuthService(userRepo, sessionRepo)

	userRepo.On("GetByUsername", mock.Anything, "ghost@example.com").
		Return(nil, apperrors.ErrUserNotFound)

	token, err := svc.ForgotPassword(context.Background(), "ghost@example.com")

	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	assert.Empty(t, token)
}

func TestResetPassword_RoundTrip(t *testing.T) {
	userRepo := new(mockUserRepository)
	sessionRepo := new(mockSessionRepository)
	svc := newTestAuthService(userRepo, sessionRepo)

	userRepo.On("GetByUsername", mock.Anything, "jane@example.com").
		Return(&models.User{ID: 7, Username: "jane@example.com", Email: "jane@example.com"}, nil)

	token, err := svc.ForgotPassword(context.Background(), "jane@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	var storedHash string
	userRepo.On("UpdatePassword", mock.Anything, int64(7), mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) {
			storedHash = args.Get(2).(string)
		}).
		Return(nil)

	err = svc.ResetPassword(context.Background(), token, "new-password", "new-password")

	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(storedHash, "new-password"))
}

func TestResetPassword_InvalidToken(t *testing.T) {
	userRepo := new(mockUserRepository)
	sessionRepo := new(mockSessionRepository)
	svc := newTestAuthService(userRepo, sessionRepo)

	err := svc.ResetPassword(context.Background(), "not-a-token", "new-password", "new-password")

	assert.ErrorIs(t, err, apperrors.ErrResetTokenInvalid)
	userRepo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestResetPassword_Mismatch(t *testing.T) {
	userRepo := new(mockUserRepository)
	sessionRepo := new(mockSessionRepository)
	svc := newTestAuthService(userRepo, sessionRepo)

	err := svc.ResetPassword(context.Background(), "token", "one", "two")

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateProfile_RequiresFields(t *testing.T) {
	userRepo := new(mockUserRepository)
	sessionRepo := new(mockSessionRepository)
	svc := newTestAuthService(userRepo, sessionRepo)

	err := svc.UpdateProfile(context.Background(), 1, "  ", "jane@example.com")

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	userRepo.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateProfile_LeavesUsernameAlone(t *testing.T) {
	userRepo := new(mockUserRepository)
	sessionRepo := new(mockSessionRepository)
	svc := newTestAuthService(userRepo, sessionRepo)

	userRepo.On("UpdateProfile", mock.Anything, int64(1), "Jane Renamed", "new@example.com").Return(nil)

	err := svc.UpdateProfile(context.Background(), 1, " Jane Renamed ", " New@Example.com ")

	require.NoError(t, err)
	userRepo.AssertExpectations(t)
}
