// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"thames/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterVendorInput defines the data required to register a new vendor account.
// The account starts in pending status and must be approved by an admin.
type RegisterVendorInput struct {
	Name        string
	Email       string
	Password    string
	CompanyName string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email     string
	Password  string
	IPAddress string
	UserAgent string
}

// RefreshInput defines the data required to rotate tokens.
type RefreshInput struct {
	RefreshToken string
	IPAddress    string
	UserAgent    string
}

// ChangePasswordInput defines the data required to change a password.
type ChangePasswordInput struct {
	UserID          uuid.UUID
	CurrentPassword string
	NewPassword     string
	IPAddress       string
	UserAgent       string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User   *entity.User
	Vendor *entity.Vendor
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// AuthUsecase defines the interface for authentication-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// RegisterVendor creates a pending user plus its vendor account.
	RegisterVendor(ctx context.Context, input RegisterVendorInput) (*RegisterOutput, error)

	// Login authenticates credentials and issues tokens. Only approved accounts may log in.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Refresh validates a refresh token and issues a fresh token pair.
	Refresh(ctx context.Context, input RefreshInput) (*LoginOutput, error)

	// Logout records the logout event. Tokens are stateless; the client discards them.
	Logout(ctx context.Context, userID uuid.UUID, ipAddress, userAgent string) error

	// ChangePassword verifies the current password, stores the new hash and bumps
	// the token version so every outstanding token is invalidated.
	ChangePassword(ctx context.Context, input ChangePasswordInput) error
}
