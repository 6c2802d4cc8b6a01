package impl

import (
	"context"
	"testing"

	"thames/internal/domain/entity"
	domainerrors "thames/internal/domain/errors"
	"thames/internal/domain/repository"
	"thames/internal/domain/service"
	mockRepo "thames/internal/mocks/repository"
	mockSvc "thames/internal/mocks/service"
	"thames/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	vendorRepo   *mockRepo.MockVendorRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	publisher    *mockSvc.MockEventPublisher
	service      usecase.AuthUsecase
}

func newAuthFixture(t *testing.T) *authFixture {
	f := &authFixture{
		txManager:    mockRepo.NewMockTransactionManager(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		vendorRepo:   mockRepo.NewMockVendorRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}
	f.service = NewAuthService(AuthServiceParams{
		TxManager:    f.txManager,
		UserRepo:     f.userRepo,
		VendorRepo:   f.vendorRepo,
		Hasher:       f.hasher,
		TokenService: f.tokenService,
		Publisher:    f.publisher,
		Logger:       discardLogger(),
	})

	return f
}

// expectAudit matches the audit event the operation is expected to publish.
func expectAudit(f *authFixture, ctx context.Context, event entity.AuditEvent) {
	f.publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(ev *service.DomainEvent) bool {
			return ev.Name == service.EventAuditRecorded &&
				ev.Audit != nil && ev.Audit.Event == event
		})).
		Return(nil)
}

func TestAuthService_RegisterVendor(t *testing.T) {
	f := newAuthFixture(t)

	ctx := context.Background()

	f.hasher.EXPECT().
		Hash("s3cretpass").
		Return("hashed", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txVendorRepo := mockRepo.NewMockVendorRepository(t)

	txUserRepo.EXPECT().
		FindByEmail(ctx, "owner@riviera.example").
		Return(nil, repository.ErrUserNotFound)

	txVendorRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Vendor")).
		Return(nil)

	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(&stubRepoFactory{users: txUserRepo, vendors: txVendorRepo})
		})

	out, err := f.service.RegisterVendor(ctx, usecase.RegisterVendorInput{
		Name:        "Alex",
		Email:       "Owner@Riviera.example",
		Password:    "s3cretpass",
		CompanyName: "Riviera Charters & Co",
	})
	require.NoError(t, err)
	assert.Equal(t, "owner@riviera.example", out.User.Email)
	assert.Equal(t, entity.RoleVendor, out.User.Role)
	assert.Equal(t, entity.AccountStatusPending, out.User.Status)
	assert.Equal(t, entity.TierFree, out.Vendor.Tier)
	assert.False(t, out.Vendor.Published)
	assert.Equal(t, "riviera-charters-co", out.Vendor.Slug)
	require.NotNil(t, out.User.VendorID)
	assert.Equal(t, out.Vendor.ID, *out.User.VendorID)
}

func TestAuthService_RegisterVendor_ShortPassword(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.service.RegisterVendor(context.Background(), usecase.RegisterVendorInput{
		Email:       "owner@riviera.example",
		Password:    "short",
		CompanyName: "Riviera Charters",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
}

func TestAuthService_RegisterVendor_EmailTaken(t *testing.T) {
	f := newAuthFixture(t)

	ctx := context.Background()

	f.hasher.EXPECT().
		Hash("s3cretpass").
		Return("hashed", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.EXPECT().
		FindByEmail(ctx, "owner@riviera.example").
		Return(&entity.User{ID: uuid.New()}, nil)

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(&stubRepoFactory{users: txUserRepo})
		})

	_, err := f.service.RegisterVendor(ctx, usecase.RegisterVendorInput{
		Email:       "owner@riviera.example",
		Password:    "s3cretpass",
		CompanyName: "Riviera Charters",
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Login(t *testing.T) {
	f := newAuthFixture(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Email:        "owner@riviera.example",
		Role:         entity.RoleVendor,
		Status:       entity.AccountStatusApproved,
		PasswordHash: "hashed",
		TokenVersion: 2,
	}

	f.userRepo.EXPECT().
		FindByEmail(ctx, "owner@riviera.example").
		Return(user, nil)

	f.hasher.EXPECT().
		Check("s3cretpass", "hashed").
		Return(true)

	f.tokenService.EXPECT().
		GenerateTokens(userID, entity.RoleVendor, 2).
		Return("access", "refresh", nil)

	expectAudit(f, ctx, entity.AuditLoginSuccess)

	out, err := f.service.Login(ctx, usecase.LoginInput{
		Email:    "Owner@Riviera.example",
		Password: "s3cretpass",
	})
	require.NoError(t, err)
	assert.Equal(t, "access", out.AccessToken)
	assert.Equal(t, "refresh", out.RefreshToken)
	assert.Equal(t, userID, out.User.ID)
}

func TestAuthService_Login_BadPassword(t *testing.T) {
	f := newAuthFixture(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "owner@riviera.example",
		Status:       entity.AccountStatusApproved,
		PasswordHash: "hashed",
	}

	f.userRepo.EXPECT().
		FindByEmail(ctx, "owner@riviera.example").
		Return(user, nil)

	f.hasher.EXPECT().
		Check("wrong", "hashed").
		Return(false)

	expectAudit(f, ctx, entity.AuditLoginFailed)

	_, err := f.service.Login(ctx, usecase.LoginInput{
		Email:    "owner@riviera.example",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmailIndistinguishable(t *testing.T) {
	f := newAuthFixture(t)

	ctx := context.Background()
	f.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@riviera.example").
		Return(nil, repository.ErrUserNotFound)

	expectAudit(f, ctx, entity.AuditLoginFailed)

	_, err := f.service.Login(ctx, usecase.LoginInput{
		Email:    "nobody@riviera.example",
		Password: "whatever",
	})
	// Unknown email and bad password yield the same error.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_PendingAccount(t *testing.T) {
	f := newAuthFixture(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "owner@riviera.example",
		Status:       entity.AccountStatusPending,
		PasswordHash: "hashed",
	}

	f.userRepo.EXPECT().
		FindByEmail(ctx, "owner@riviera.example").
		Return(user, nil)

	f.hasher.EXPECT().
		Check("s3cretpass", "hashed").
		Return(true)

	expectAudit(f, ctx, entity.AuditLoginFailed)

	_, err := f.service.Login(ctx, usecase.LoginInput{
		Email:    "owner@riviera.example",
		Password: "s3cretpass",
	})
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotApproved)
}

func TestAuthService_Refresh_StaleTokenVersion(t *testing.T) {
	f := newAuthFixture(t)

	ctx := context.Background()
	userID := uuid.New()

	f.tokenService.EXPECT().
		ValidateToken("refresh-token").
		Return(&service.Claims{UserID: userID, TokenVersion: 1, Type: "refresh"}, nil)

	f.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{
			ID:           userID,
			Email:        "owner@riviera.example",
			Status:       entity.AccountStatusApproved,
			TokenVersion: 2, // Bumped since the token was issued.
		}, nil)

	expectAudit(f, ctx, entity.AuditTokenRefreshFailed)

	_, err := f.service.Refresh(ctx, usecase.RefreshInput{RefreshToken: "refresh-token"})
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	f := newAuthFixture(t)

	ctx := context.Background()

	f.tokenService.EXPECT().
		ValidateToken("access-token").
		Return(&service.Claims{UserID: uuid.New(), Type: "access"}, nil)

	expectAudit(f, ctx, entity.AuditTokenRefreshFailed)

	_, err := f.service.Refresh(ctx, usecase.RefreshInput{RefreshToken: "access-token"})
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAuthService_ChangePassword_BumpsTokenVersion(t *testing.T) {
	f := newAuthFixture(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Email:        "owner@riviera.example",
		Status:       entity.AccountStatusApproved,
		PasswordHash: "old-hash",
		TokenVersion: 1,
	}

	f.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(user, nil)

	f.hasher.EXPECT().
		Check("oldpassword", "old-hash").
		Return(true)

	f.hasher.EXPECT().
		Hash("newpassword").
		Return("new-hash", nil)

	f.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, updated *entity.User) {
			assert.Equal(t, "new-hash", updated.PasswordHash)
			assert.Equal(t, 2, updated.TokenVersion)
		}).
		Return(nil)

	expectAudit(f, ctx, entity.AuditPasswordChanged)

	err := f.service.ChangePassword(ctx, usecase.ChangePasswordInput{
		UserID:          userID,
		CurrentPassword: "oldpassword",
		NewPassword:     "newpassword",
	})
	require.NoError(t, err)
}

func TestAuthService_ChangePassword_WrongCurrentPassword(t *testing.T) {
	f := newAuthFixture(t)

	ctx := context.Background()
	userID := uuid.New()

	f.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, PasswordHash: "old-hash"}, nil)

	f.hasher.EXPECT().
		Check("wrong", "old-hash").
		Return(false)

	err := f.service.ChangePassword(ctx, usecase.ChangePasswordInput{
		UserID:          userID,
		CurrentPassword: "wrong",
		NewPassword:     "newpassword",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "riviera-charters-co", slugify("Riviera Charters & Co"))
	assert.Equal(t, "monaco-yachts", slugify("  Monaco   Yachts  "))
	assert.Equal(t, "a1-marine", slugify("A1 Marine!"))
	assert.Equal(t, "", slugify("&&&"))
}
