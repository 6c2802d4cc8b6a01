package impl

import (
	"context"
	"strings"
	"testing"

	"thames/internal/domain/entity"
	domainerrors "thames/internal/domain/errors"
	"thames/internal/domain/repository"
	"thames/internal/domain/service"
	mockRepo "thames/internal/mocks/repository"
	mockSvc "thames/internal/mocks/service"
	mockUC "thames/internal/mocks/usecase"
	"thames/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type importFixture struct {
	txManager    *mockRepo.MockTransactionManager
	vendorRepo   *mockRepo.MockVendorRepository
	entitlements *mockUC.MockEntitlementUsecase
	parser       *mockSvc.MockSheetParser
	service      usecase.ImportUsecase
}

func newImportFixture(t *testing.T) *importFixture {
	f := &importFixture{
		txManager:    mockRepo.NewMockTransactionManager(t),
		vendorRepo:   mockRepo.NewMockVendorRepository(t),
		entitlements: mockUC.NewMockEntitlementUsecase(t),
		parser:       mockSvc.NewMockSheetParser(t),
	}
	f.service = NewImportService(ImportServiceParams{
		TxManager:    f.txManager,
		VendorRepo:   f.vendorRepo,
		Entitlements: f.entitlements,
		Parser:       f.parser,
		Logger:       discardLogger(),
	})

	return f
}

func businessAccess() *usecase.EffectiveAccess {
	return &usecase.EffectiveAccess{
		Tier:         entity.TierBusiness,
		MaxLocations: 10,
		Features:     map[entity.FeatureKey]bool{entity.FeatureExcelImport: true},
	}
}

func sheetRow(number int, cells map[string]string) service.SheetRow {
	return service.SheetRow{Number: number, Columns: cells}
}

func TestImportService_Preview_MixedRows(t *testing.T) {
	f := newImportFixture(t)

	ctx := context.Background()
	userID := uuid.New()
	vendorID := uuid.New()

	f.entitlements.EXPECT().
		RequireFeature(ctx, userID, vendorID, entity.FeatureExcelImport).
		Return(businessAccess(), nil)

	upload := strings.NewReader("xlsx bytes")
	f.parser.EXPECT().
		ParseLocationSheet(upload).
		Return([]service.SheetRow{
			sheetRow(2, map[string]string{
				"name": "Monaco Office", "address": "7 Quai Antoine 1er",
				"city": "Monaco", "country": "Monaco",
				"latitude": "43.7384", "longitude": "7.4246",
			}),
			sheetRow(3, map[string]string{
				"address": "10 Promenade des Anglais", "city": "Nice",
				"country": "France", "latitude": "not-a-number", "longitude": "7.2620",
			}),
			sheetRow(4, map[string]string{
				"address": "", "city": "Cannes", "country": "France",
				"latitude": "43.55", "longitude": "7.01",
			}),
		}, nil)

	preview, err := f.service.Preview(ctx, userID, vendorID, upload)
	require.NoError(t, err)
	assert.NotEmpty(t, preview.Token)
	assert.Equal(t, 1, preview.ValidCount)
	assert.Equal(t, 2, preview.ErrorCount)
	require.Len(t, preview.Rows, 3)

	assert.NotNil(t, preview.Rows[0].Location)
	assert.Equal(t, "Monaco Office", preview.Rows[0].Location.LocationName)

	assert.Nil(t, preview.Rows[1].Location)
	assert.Contains(t, preview.Rows[1].Errors, "latitude is not a number")

	assert.Nil(t, preview.Rows[2].Location)
	assert.Contains(t, preview.Rows[2].Errors, "address is required")
}

func TestImportService_Preview_EmptySheet(t *testing.T) {
	f := newImportFixture(t)

	ctx := context.Background()
	userID := uuid.New()
	vendorID := uuid.New()

	f.entitlements.EXPECT().
		RequireFeature(ctx, userID, vendorID, entity.FeatureExcelImport).
		Return(businessAccess(), nil)

	upload := strings.NewReader("xlsx bytes")
	f.parser.EXPECT().
		ParseLocationSheet(upload).
		Return([]service.SheetRow{}, nil)

	_, err := f.service.Preview(ctx, userID, vendorID, upload)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
}

func TestImportService_Preview_TierGated(t *testing.T) {
	f := newImportFixture(t)

	ctx := context.Background()
	userID := uuid.New()
	vendorID := uuid.New()

	f.entitlements.EXPECT().
		RequireFeature(ctx, userID, vendorID, entity.FeatureExcelImport).
		Return(nil, domainerrors.ErrTierRestricted)

	_, err := f.service.Preview(ctx, userID, vendorID, strings.NewReader(""))
	assert.ErrorIs(t, err, domainerrors.ErrTierRestricted)
}

func TestImportService_Execute_SkipsRowsPastLocationLimit(t *testing.T) {
	f := newImportFixture(t)

	ctx := context.Background()
	userID := uuid.New()
	vendorID := uuid.New()

	access := &usecase.EffectiveAccess{
		Tier:         entity.TierBusiness,
		MaxLocations: 3,
		Features:     map[entity.FeatureKey]bool{entity.FeatureExcelImport: true},
	}

	f.entitlements.EXPECT().
		RequireFeature(ctx, userID, vendorID, entity.FeatureExcelImport).
		Return(access, nil).
		Twice()

	upload := strings.NewReader("xlsx bytes")
	f.parser.EXPECT().
		ParseLocationSheet(upload).
		Return([]service.SheetRow{
			sheetRow(2, map[string]string{
				"address": "Addr 1", "city": "Monaco", "country": "Monaco",
				"latitude": "43.73", "longitude": "7.42",
			}),
			sheetRow(3, map[string]string{
				"address": "Addr 2", "city": "Nice", "country": "France",
				"latitude": "43.71", "longitude": "7.26",
			}),
			sheetRow(4, map[string]string{
				"address": "Addr 3", "city": "Cannes", "country": "France",
				"latitude": "43.55", "longitude": "7.01",
			}),
		}, nil)

	preview, err := f.service.Preview(ctx, userID, vendorID, upload)
	require.NoError(t, err)
	require.Equal(t, 3, preview.ValidCount)

	txVendorRepo := mockRepo.NewMockVendorRepository(t)

	// Two existing locations leave room for one more under the cap of three.
	txVendorRepo.EXPECT().
		CountLocations(ctx, vendorID).
		Return(int64(2), nil)

	txVendorRepo.EXPECT().
		CreateLocation(ctx, mock.AnythingOfType("*entity.VendorLocation")).
		Return(nil).
		Once()

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(&stubRepoFactory{vendors: txVendorRepo})
		})

	result, err := f.service.Execute(ctx, userID, vendorID, preview.Token)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 2, result.Skipped)
}

func TestImportService_Execute_FirstImportedLocationBecomesHQ(t *testing.T) {
	f := newImportFixture(t)

	ctx := context.Background()
	userID := uuid.New()
	vendorID := uuid.New()

	f.entitlements.EXPECT().
		RequireFeature(ctx, userID, vendorID, entity.FeatureExcelImport).
		Return(businessAccess(), nil).
		Twice()

	upload := strings.NewReader("xlsx bytes")
	f.parser.EXPECT().
		ParseLocationSheet(upload).
		Return([]service.SheetRow{
			sheetRow(2, map[string]string{
				"address": "Addr 1", "city": "Monaco", "country": "Monaco",
				"latitude": "43.73", "longitude": "7.42",
			}),
			sheetRow(3, map[string]string{
				"address": "Addr 2", "city": "Nice", "country": "France",
				"latitude": "43.71", "longitude": "7.26",
			}),
		}, nil)

	preview, err := f.service.Preview(ctx, userID, vendorID, upload)
	require.NoError(t, err)

	txVendorRepo := mockRepo.NewMockVendorRepository(t)

	txVendorRepo.EXPECT().
		CountLocations(ctx, vendorID).
		Return(int64(0), nil)

	var created []*entity.VendorLocation
	txVendorRepo.EXPECT().
		CreateLocation(ctx, mock.AnythingOfType("*entity.VendorLocation")).
		Run(func(_ context.Context, location *entity.VendorLocation) {
			created = append(created, location)
		}).
		Return(nil).
		Times(2)

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(&stubRepoFactory{vendors: txVendorRepo})
		})

	result, err := f.service.Execute(ctx, userID, vendorID, preview.Token)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Created)

	require.Len(t, created, 2)
	assert.True(t, created[0].IsHQ)
	assert.False(t, created[1].IsHQ)
}

func TestImportService_Execute_UnknownToken(t *testing.T) {
	f := newImportFixture(t)

	ctx := context.Background()
	userID := uuid.New()
	vendorID := uuid.New()

	f.entitlements.EXPECT().
		RequireFeature(ctx, userID, vendorID, entity.FeatureExcelImport).
		Return(businessAccess(), nil)

	_, err := f.service.Execute(ctx, userID, vendorID, uuid.New().String())
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.ErrorCode())
}

func TestImportService_Execute_WrongVendorToken(t *testing.T) {
	f := newImportFixture(t)

	ctx := context.Background()
	userID := uuid.New()
	ownerID := uuid.New()
	otherID := uuid.New()

	f.entitlements.EXPECT().
		RequireFeature(ctx, userID, ownerID, entity.FeatureExcelImport).
		Return(businessAccess(), nil)

	upload := strings.NewReader("xlsx bytes")
	f.parser.EXPECT().
		ParseLocationSheet(upload).
		Return([]service.SheetRow{
			sheetRow(2, map[string]string{
				"address": "Addr 1", "city": "Monaco", "country": "Monaco",
				"latitude": "43.73", "longitude": "7.42",
			}),
		}, nil)

	preview, err := f.service.Preview(ctx, userID, ownerID, upload)
	require.NoError(t, err)

	f.entitlements.EXPECT().
		RequireFeature(ctx, userID, otherID, entity.FeatureExcelImport).
		Return(businessAccess(), nil)

	_, err = f.service.Execute(ctx, userID, otherID, preview.Token)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestImportService_Execute_TokenIsSingleUse(t *testing.T) {
	f := newImportFixture(t)

	ctx := context.Background()
	userID := uuid.New()
	vendorID := uuid.New()

	f.entitlements.EXPECT().
		RequireFeature(ctx, userID, vendorID, entity.FeatureExcelImport).
		Return(businessAccess(), nil).
		Times(3)

	upload := strings.NewReader("xlsx bytes")
	f.parser.EXPECT().
		ParseLocationSheet(upload).
		Return([]service.SheetRow{
			sheetRow(2, map[string]string{
				"address": "Addr 1", "city": "Monaco", "country": "Monaco",
				"latitude": "43.73", "longitude": "7.42",
			}),
		}, nil)

	preview, err := f.service.Preview(ctx, userID, vendorID, upload)
	require.NoError(t, err)

	txVendorRepo := mockRepo.NewMockVendorRepository(t)
	txVendorRepo.EXPECT().
		CountLocations(ctx, vendorID).
		Return(int64(0), nil)
	txVendorRepo.EXPECT().
		CreateLocation(ctx, mock.AnythingOfType("*entity.VendorLocation")).
		Return(nil)

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(&stubRepoFactory{vendors: txVendorRepo})
		})

	_, err = f.service.Execute(ctx, userID, vendorID, preview.Token)
	require.NoError(t, err)

	_, err = f.service.Execute(ctx, userID, vendorID, preview.Token)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.ErrorCode())
}
