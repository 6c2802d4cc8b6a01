package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

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

const (
	// Previews not executed within this window are discarded.
	previewTTL = 30 * time.Minute

	maxImportRows = 500
)

// importService implements the ImportUsecase interface.
// Previews are held in memory; an executed or expired preview is gone.
type importService struct {
	txManager    repository.TransactionManager
	vendorRepo   repository.VendorRepository
	entitlements usecase.EntitlementUsecase
	parser       service.SheetParser
	logger       *slog.Logger

	mu       sync.Mutex
	previews map[string]*storedPreview
}

type storedPreview struct {
	vendorID  uuid.UUID
	rows      []usecase.ImportRow
	expiresAt time.Time
}

// ImportServiceParams holds dependencies for ImportService, injected by Fx.
type ImportServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	VendorRepo   repository.VendorRepository
	Entitlements usecase.EntitlementUsecase
	Parser       service.SheetParser
	Logger       *slog.Logger
}

// NewImportService is the constructor for importService.
func NewImportService(params ImportServiceParams) usecase.ImportUsecase {
	return &importService{
		txManager:    params.TxManager,
		vendorRepo:   params.VendorRepo,
		entitlements: params.Entitlements,
		parser:       params.Parser,
		logger:       params.Logger,
		previews:     make(map[string]*storedPreview),
	}
}

func (srv *importService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Preview parses an .xlsx upload and validates every row without writing.
func (srv *importService) Preview(ctx context.Context, userID, vendorID uuid.UUID, r io.Reader) (*usecase.ImportPreview, error) {
	if _, err := srv.entitlements.RequireFeature(ctx, userID, vendorID, entity.FeatureExcelImport); err != nil {
		return nil, err
	}

	sheetRows, err := srv.parser.ParseLocationSheet(r)
	if err != nil {
		srv.log(ctx).Warn("Failed to parse import upload",
			slog.String("vendorID", vendorID.String()),
			slog.Any("error", err))

		return nil, domainerrors.ErrImportFileInvalid.WithDetails(err.Error())
	}
	if len(sheetRows) == 0 {
		return nil, domainerrors.ErrImportFileInvalid.WithDetails("no data rows found")
	}
	if len(sheetRows) > maxImportRows {
		return nil, domainerrors.ErrImportFileInvalid.WithDetails(
			fmt.Sprintf("at most %d rows per import", maxImportRows))
	}

	rows := make([]usecase.ImportRow, 0, len(sheetRows))
	validCount := 0
	for _, sheetRow := range sheetRows {
		row := validateImportRow(vendorID, sheetRow)
		if row.Location != nil {
			validCount++
		}
		rows = append(rows, row)
	}

	token := uuid.New().String()
	srv.mu.Lock()
	srv.prunePreviewsLocked(time.Now())
	srv.previews[token] = &storedPreview{
		vendorID:  vendorID,
		rows:      rows,
		expiresAt: time.Now().Add(previewTTL),
	}
	srv.mu.Unlock()

	return &usecase.ImportPreview{
		Token:      token,
		Rows:       rows,
		ValidCount: validCount,
		ErrorCount: len(rows) - validCount,
	}, nil
}

// Execute commits the valid rows of a previous preview in one transaction.
func (srv *importService) Execute(ctx context.Context, userID, vendorID uuid.UUID, token string) (*usecase.ImportResult, error) {
	access, err := srv.entitlements.RequireFeature(ctx, userID, vendorID, entity.FeatureExcelImport)
	if err != nil {
		return nil, err
	}

	srv.mu.Lock()
	preview, ok := srv.previews[token]
	if ok {
		delete(srv.previews, token)
	}
	srv.mu.Unlock()

	if !ok || time.Now().After(preview.expiresAt) {
		return nil, domainerrors.ErrNotFound.WithDetails("import preview expired or unknown")
	}
	if preview.vendorID != vendorID {
		return nil, domainerrors.ErrForbidden
	}

	result := &usecase.ImportResult{}
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		vendorRepo := repoFactory.NewVendorRepository()

		count, err := vendorRepo.CountLocations(ctx, vendorID)
		if err != nil {
			return errors.Wrap(err, "failed to count vendor locations")
		}

		hasHQ := count > 0
		for _, row := range preview.rows {
			if row.Location == nil {
				continue
			}
			// Rows past the tier's location limit are skipped, not failed.
			if !access.IsAdmin && count >= int64(access.MaxLocations) {
				result.Skipped++

				continue
			}

			location := *row.Location
			location.ID = uuid.New()
			now := time.Now()
			location.CreatedAt = now
			location.UpdatedAt = now
			if !hasHQ {
				location.IsHQ = true
				hasHQ = true
			}

			if err := vendorRepo.CreateLocation(ctx, &location); err != nil {
				return errors.Wrapf(err, "failed to import row %d", row.RowNumber)
			}
			count++
			result.Created++
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Location import executed",
		slog.String("vendorID", vendorID.String()),
		slog.Int("created", result.Created),
		slog.Int("skipped", result.Skipped))

	return result, nil
}

// prunePreviewsLocked drops expired previews. Caller holds the mutex.
func (srv *importService) prunePreviewsLocked(now time.Time) {
	for token, preview := range srv.previews {
		if now.After(preview.expiresAt) {
			delete(srv.previews, token)
		}
	}
}

func validateImportRow(vendorID uuid.UUID, sheetRow service.SheetRow) usecase.ImportRow {
	row := usecase.ImportRow{RowNumber: sheetRow.Number}
	cell := func(key string) string {
		return strings.TrimSpace(sheetRow.Columns[key])
	}

	for _, required := range []string{"address", "city", "country"} {
		if cell(required) == "" {
			row.Errors = append(row.Errors, required+" is required")
		}
	}

	latitude, err := strconv.ParseFloat(cell("latitude"), 64)
	if err != nil {
		row.Errors = append(row.Errors, "latitude is not a number")
	}
	longitude, err := strconv.ParseFloat(cell("longitude"), 64)
	if err != nil {
		row.Errors = append(row.Errors, "longitude is not a number")
	}
	if len(row.Errors) == 0 {
		probe := entity.VendorLocation{Latitude: latitude, Longitude: longitude}
		if !probe.HasValidCoordinates() {
			row.Errors = append(row.Errors, "coordinates out of range")
		}
	}

	if len(row.Errors) > 0 {
		return row
	}

	row.Location = &entity.VendorLocation{
		VendorID:     vendorID,
		LocationName: cell("name"),
		Address:      cell("address"),
		City:         cell("city"),
		State:        cell("state"),
		Country:      cell("country"),
		PostalCode:   cell("postalcode"),
		Latitude:     latitude,
		Longitude:    longitude,
	}

	return row
}
