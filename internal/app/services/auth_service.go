package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/campushq/registrar/internal/app/models"
	"github.com/campushq/registrar/internal/app/repositories"
	"github.com/campushq/registrar/internal/pkg/apperrors"
	"github.com/campushq/registrar/internal/pkg/auth"
)

type authService struct {
	userRepo    repositories.UserRepository
	sessionRepo repositories.SessionRepository
	resetTokens *auth.ResetTokenService
	sessionTTL  time.Duration
	logger      zerolog.Logger
}

// NewAuthService creates a new auth service instance.
func NewAuthService(
	userRepo repositories.UserRepository,
	sessionRepo repositories.SessionRepository,
	resetTokens *auth.ResetTokenService,
	sessionTTL time.Duration,
	logger zerolog.Logger,
) AuthService {
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		resetTokens: resetTokens,
		sessionTTL:  sessionTTL,
		logger:      logger,
	}
}

func (s *authService) Register(ctx context.Context, fullName, email, password, confirmPassword string) error {
	fullName = strings.TrimSpace(fullName)
	email = strings.TrimSpace(strings.ToLower(email))

	if fullName == "" || email == "" || password == "" {
		return apperrors.NewValidationError("all fields are required")
	}

	if password != confirmPassword {
		return apperrors.NewValidationError("passwords do not match")
	}

	exists, err := s.userRepo.ExistsByUsername(ctx, email)
	if err != nil {
		return fmt.Errorf("error checking account existence: %w", err)
	}
	if exists {
		return apperrors.ErrAccountExists
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username:  email,
		Password:  hashed,
		FirstName: fullName,
		Email:     email,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return err
	}

	s.logger.Info().Str("username", user.Username).Msg("Account registered")
	return nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.Session, *models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	// Unknown email and wrong password fail identically so callers cannot
	// probe for account existence.
	user, err := s.userRepo.GetByUsername(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, nil, apperrors.ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("error looking up account: %w", err)
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	session := &models.Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, nil, err
	}

	s.logger.Info().Int64("userId", user.ID).Msg("Login successful")
	return session, user, nil
}

func (s *authService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	return s.sessionRepo.Delete(ctx, sessionID)
}

func (s *authService) ForgotPassword(ctx context.Context, email string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.userRepo.GetByUsername(ctx, email)
	if err != nil {
		return "", err
	}

	token, err := s.resetTokens.Generate(user.ID, user.Email)
	if err != nil {
		return "", err
	}

	// No email delivery; the reset link is logged so an operator can hand
	// it over out of band.
	s.logger.Info().Int64("userId", user.ID).Str("resetToken", token).Msg("Password reset token issued")
	return token, nil
}

func (s *authService) ResetPassword(ctx context.Context, token, password, confirmPassword string) error {
	if password == "" {
		return apperrors.NewValidationError("password is required")
	}
	if password != confirmPassword {
		return apperrors.NewValidationError("passwords do not match")
	}

	claims, err := s.resetTokens.Validate(token)
	if err != nil {
		return apperrors.ErrResetTokenInvalid
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, claims.UserID, hashed); err != nil {
		return err
	}

	s.logger.Info().Int64("userId", claims.UserID).Msg("Password reset completed")
	return nil
}

func (s *authService) UpdateProfile(ctx context.Context, userID int64, fullName, email string) error {
	fullName = strings.TrimSpace(fullName)
	email = strings.TrimSpace(strings.ToLower(email))

	if fullName == "" || email == "" {
		return apperrors.NewValidationError("full name and email are required")
	}

	// The username (login identifier) is deliberately left untouched.
	return s.userRepo.UpdateProfile(ctx, userID, fullName, email)
}
