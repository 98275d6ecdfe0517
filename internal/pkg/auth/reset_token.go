package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/campushq/registrar/internal/pkg/apperrors"
)

const resetPurpose = "password_reset"

// ResetTokenConfig defines settings for password reset tokens.
type ResetTokenConfig struct {
	SecretKey string
	Expiry    time.Duration
	Issuer    string
}

// ResetTokenService issues and validates single-purpose password reset
// tokens. Delivery (email) is out of scope; the token is handed back to the
// caller.
type ResetTokenService struct {
	config ResetTokenConfig
}

// NewResetTokenService creates a new ResetTokenService.
func NewResetTokenService(config ResetTokenConfig) *ResetTokenService {
	return &ResetTokenService{config: config}
}

// ResetClaims defines reset token content.
type ResetClaims struct {
	UserID  int64  `json:"userId"`
	Email   string `json:"email"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// Generate creates a signed reset token for the given user.
func (s *ResetTokenService) Generate(userID int64, email string) (string, error) {
	now := time.Now()
	claims := &ResetClaims{
		UserID:  userID,
		Email:   email,
		Purpose: resetPurpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.Expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   fmt.Sprintf("%d", userID),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.SecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign reset token: %w", err)
	}
	return signed, nil
}

// Validate parses a reset token and returns its claims. Expired tokens,
// bad signatures and tokens issued for another purpose all map to
// apperrors.ErrResetTokenInvalid.
func (s *ResetTokenService) Validate(tokenString string) (*ResetClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ResetClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrResetTokenInvalid
		}
		return nil, fmt.Errorf("failed to parse reset token: %w", err)
	}

	claims, ok := token.Claims.(*ResetClaims)
	if !ok || !token.Valid || claims.Purpose != resetPurpose {
		return nil, apperrors.ErrResetTokenInvalid
	}
	return claims, nil
}
