package middleware

import (
	"strings"

	"thames/internal/domain/entity"
	domainerrors "thames/internal/domain/errors"
	"thames/internal/domain/repository"
	"thames/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeyUserID   = "userID"
	ContextKeyRole     = "role"
	ContextKeyVendorID = "vendorID"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
// Every authenticated request checks the token version against the user's
// current one, so password changes and suspensions revoke outstanding tokens
// immediately instead of at expiry.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the bearer access token and loads the caller onto the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WithDetails("Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrUnauthorized.WithDetails("Authorization header must be a Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrTokenInvalid
		}
		if claims.Type != "access" {
			return domainerrors.ErrTokenInvalid.WithDetails("Refresh tokens cannot be used for API access")
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
		if err != nil {
			return domainerrors.ErrTokenInvalid
		}
		// A stale version means credentials were revoked after this token was issued.
		if user.TokenVersion != claims.TokenVersion {
			return domainerrors.ErrTokenInvalid
		}
		if user.Status != entity.AccountStatusApproved {
			return domainerrors.ErrAccountNotApproved
		}

		c.Set(ContextKeyUserID, user.ID)
		c.Set(ContextKeyRole, user.Role)
		if user.VendorID != nil {
			c.Set(ContextKeyVendorID, *user.VendorID)
		}

		return next(c)
	}
}

// RequireAdmin allows only admin users through. Must run after Authenticate.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if Role(c) != entity.RoleAdmin {
			return domainerrors.ErrForbidden.WithDetails("Administrator role required")
		}

		return next(c)
	}
}

// RequireVendor allows only users attached to a vendor account. Must run after Authenticate.
func (m *AuthMiddleware) RequireVendor(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := c.Get(ContextKeyVendorID).(uuid.UUID); !ok {
			return domainerrors.ErrForbidden.WithDetails("Vendor account required")
		}

		return next(c)
	}
}

// UserID returns the authenticated user's ID, or uuid.Nil when unauthenticated.
func UserID(c echo.Context) uuid.UUID {
	if id, ok := c.Get(ContextKeyUserID).(uuid.UUID); ok {
		return id
	}

	return uuid.Nil
}

// Role returns the authenticated user's role, or the empty role when unauthenticated.
func Role(c echo.Context) entity.Role {
	if role, ok := c.Get(ContextKeyRole).(entity.Role); ok {
		return role
	}

	return ""
}

// VendorID returns the vendor the authenticated user manages, or uuid.Nil for admins.
func VendorID(c echo.Context) uuid.UUID {
	if id, ok := c.Get(ContextKeyVendorID).(uuid.UUID); ok {
		return id
	}

	return uuid.Nil
}
