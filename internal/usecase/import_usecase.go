package usecase

import (
	"context"
	"io"

	"thames/internal/domain/entity"

	"github.com/google/uuid"
)

// ImportRow is one parsed spreadsheet row with its validation outcome.
type ImportRow struct {
	RowNumber int
	Location  *entity.VendorLocation // Nil when the row failed validation.
	Errors    []string
}

// ImportPreview is the result of the validation phase of a bulk import.
type ImportPreview struct {
	Token      string // Opaque token passed back to Execute to run this preview.
	Rows       []ImportRow
	ValidCount int
	ErrorCount int
}

// ImportResult is the outcome of an executed bulk import.
type ImportResult struct {
	Created int
	Skipped int
}

// ImportUsecase defines two-phase spreadsheet import of vendor locations.
// Phase one parses and validates, phase two commits previously validated rows.
// The feature is gated on the spreadsheet-import tier.
type ImportUsecase interface {
	// Preview parses an .xlsx upload and validates every row without writing.
	Preview(ctx context.Context, userID, vendorID uuid.UUID, r io.Reader) (*ImportPreview, error)

	// Execute commits the valid rows of a previous preview in one transaction.
	// Rows exceeding the tier's location limit are skipped, not failed.
	Execute(ctx context.Context, userID, vendorID uuid.UUID, token string) (*ImportResult, error)
}
