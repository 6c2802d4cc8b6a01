package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode"

	deliverycontext "thames/internal/delivery/context"
	"thames/internal/domain/entity"
	domainerrors "thames/internal/domain/errors"
	"thames/internal/domain/repository"
	"thames/internal/domain/service"
	"thames/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	vendorRepo   repository.VendorRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	VendorRepo   repository.VendorRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		vendorRepo:   params.VendorRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterVendor creates a pending user plus its vendor account in one transaction.
func (srv *authService) RegisterVendor(ctx context.Context, input usecase.RegisterVendorInput) (*usecase.RegisterOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || strings.TrimSpace(input.CompanyName) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email and company name are required")
	}
	if len(input.Password) < 8 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("password must be at least 8 characters")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed
	}

	var user *entity.User
	var vendor *entity.Vendor
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		vendorRepo := repoFactory.NewVendorRepository()

		if _, err := userRepo.FindByEmail(ctx, email); err == nil {
			return domainerrors.ErrUserAlreadyExists
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check existing email")
		}

		now := time.Now()
		vendor = &entity.Vendor{
			ID:           uuid.New(),
			CompanyName:  strings.TrimSpace(input.CompanyName),
			Slug:         slugify(input.CompanyName),
			ContactEmail: email,
			Tier:         entity.TierFree,
			Published:    false,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := vendorRepo.Create(ctx, vendor); err != nil {
			if errors.Is(err, repository.ErrDuplicateSlug) {
				// Disambiguate with the vendor id prefix and retry once.
				vendor.Slug = vendor.Slug + "-" + vendor.ID.String()[:8]

				return errors.Wrap(vendorRepo.Create(ctx, vendor), "failed to create vendor")
			}

			return errors.Wrap(err, "failed to create vendor")
		}

		user = &entity.User{
			ID:           uuid.New(),
			Email:        email,
			Name:         strings.TrimSpace(input.Name),
			Role:         entity.RoleVendor,
			Status:       entity.AccountStatusPending,
			VendorID:     &vendor.ID,
			PasswordHash: hashedPassword,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return domainerrors.ErrUserAlreadyExists
			}

			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Vendor registered",
		slog.String("userID", user.ID.String()),
		slog.String("vendorID", vendor.ID.String()))

	return &usecase.RegisterOutput{User: user, Vendor: vendor}, nil
}

// Login authenticates credentials and issues tokens.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.audit(ctx, entity.AuditLoginFailed, nil, email, input.IPAddress, input.UserAgent, map[string]any{"reason": "unknown email"})

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.audit(ctx, entity.AuditLoginFailed, &user.ID, email, input.IPAddress, input.UserAgent, map[string]any{"reason": "bad password"})

		return nil, domainerrors.ErrInvalidCredentials
	}

	if user.Status != entity.AccountStatusApproved {
		srv.audit(ctx, entity.AuditLoginFailed, &user.ID, email, input.IPAddress, input.UserAgent, map[string]any{"reason": "account " + user.Status.String()})

		return nil, domainerrors.ErrAccountNotApproved
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Role, user.TokenVersion)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.audit(ctx, entity.AuditLoginSuccess, &user.ID, email, input.IPAddress, input.UserAgent, nil)

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// Refresh validates a refresh token and issues a fresh token pair.
func (srv *authService) Refresh(ctx context.Context, input usecase.RefreshInput) (*usecase.LoginOutput, error) {
	claims, err := srv.tokenService.ValidateToken(input.RefreshToken)
	if err != nil || claims.Type != "refresh" {
		srv.audit(ctx, entity.AuditTokenRefreshFailed, nil, "", input.IPAddress, input.UserAgent, map[string]any{"reason": "invalid token"})

		return nil, domainerrors.ErrTokenInvalid
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.audit(ctx, entity.AuditTokenRefreshFailed, &claims.UserID, "", input.IPAddress, input.UserAgent, map[string]any{"reason": "unknown user"})

			return nil, domainerrors.ErrTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to find user for token refresh")
	}

	// A version bump (password change, suspension) kills every outstanding token.
	if claims.TokenVersion != user.TokenVersion {
		srv.audit(ctx, entity.AuditTokenRefreshFailed, &user.ID, user.Email, input.IPAddress, input.UserAgent, map[string]any{"reason": "stale token version"})

		return nil, domainerrors.ErrTokenInvalid
	}
	if user.Status != entity.AccountStatusApproved {
		srv.audit(ctx, entity.AuditTokenRefreshFailed, &user.ID, user.Email, input.IPAddress, input.UserAgent, map[string]any{"reason": "account " + user.Status.String()})

		return nil, domainerrors.ErrAccountNotApproved
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Role, user.TokenVersion)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.audit(ctx, entity.AuditTokenRefresh, &user.ID, user.Email, input.IPAddress, input.UserAgent, nil)

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// Logout records the logout event. Tokens are stateless; the client discards them.
func (srv *authService) Logout(ctx context.Context, userID uuid.UUID, ipAddress, userAgent string) error {
	srv.audit(ctx, entity.AuditLogout, &userID, "", ipAddress, userAgent, nil)

	return nil
}

// ChangePassword verifies the current password, stores the new hash and bumps
// the token version so every outstanding token is invalidated.
func (srv *authService) ChangePassword(ctx context.Context, input usecase.ChangePasswordInput) error {
	if len(input.NewPassword) < 8 {
		return domainerrors.ErrValidationFailed.WithDetails("password must be at least 8 characters")
	}

	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
		return domainerrors.ErrInvalidCredentials
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		srv.log(ctx).Error("Failed to hash new password", slog.Any("error", err))

		return domainerrors.ErrPasswordHashFailed
	}

	user.PasswordHash = hashedPassword
	user.TokenVersion++
	user.UpdatedAt = time.Now()

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to update password")
	}

	srv.audit(ctx, entity.AuditPasswordChanged, &user.ID, user.Email, input.IPAddress, input.UserAgent, nil)
	srv.log(ctx).Info("Password changed", slog.String("userID", user.ID.String()))

	return nil
}

// audit publishes an audit entry. The write is best-effort: dispatch failures
// are logged and never abort the primary operation.
func (srv *authService) audit(ctx context.Context, event entity.AuditEvent, userID *uuid.UUID, email, ipAddress, userAgent string, metadata map[string]any) {
	entry := &entity.AuditLogEntry{
		ID:        uuid.New(),
		Event:     event,
		UserID:    userID,
		Email:     email,
		IPAddress: ipAddress,
		UserAgent: userAgent,
		Metadata:  metadata,
		CreatedAt: time.Now(),
	}

	if err := srv.publisher.Publish(ctx, &service.DomainEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Name:      service.EventAuditRecorded,
		Audit:     entry,
	}); err != nil {
		srv.log(ctx).Error("Failed to publish audit event",
			slog.String("event", event.String()),
			slog.Any("error", err))
	}
}

// slugify converts a company name to a URL-safe slug.
func slugify(name string) string {
	var out strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			out.WriteRune(r)
			lastDash = false
		case !lastDash:
			out.WriteRune('-')
			lastDash = true
		}
	}

	return strings.Trim(out.String(), "-")
}
