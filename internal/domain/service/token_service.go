package service

import (
	"time"

	"thames/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID       uuid.UUID
	Role         entity.Role
	TokenVersion int    // Must match the user's current token version or the token is rejected.
	Type         string // "access" or "refresh"
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given user.
	// The user's token version is embedded so that bumping it invalidates all outstanding tokens.
	GenerateTokens(userID uuid.UUID, role entity.Role, tokenVersion int) (accessToken string, refreshToken string, err error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
