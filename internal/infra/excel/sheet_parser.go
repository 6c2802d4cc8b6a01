package excel

import (
	"io"
	"strings"

	domainerrors "thames/internal/domain/errors"
	"thames/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// SheetParser reads .xlsx uploads with excelize.
type SheetParser struct{}

// NewSheetParser creates a SheetParser.
func NewSheetParser() service.SheetParser {
	return &SheetParser{}
}

// ParseLocationSheet reads the first sheet of the workbook. The first row is
// treated as the header; cells are keyed by their lower-cased, trimmed header.
// Rows with no non-empty cell are skipped.
func (p *SheetParser) ParseLocationSheet(r io.Reader) ([]service.SheetRow, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrImportFileInvalid, err.Error())
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.Wrap(domainerrors.ErrImportFileInvalid, "workbook has no sheets")
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrImportFileInvalid, err.Error())
	}
	if len(rows) < 2 {
		return nil, errors.Wrap(domainerrors.ErrImportFileInvalid, "sheet has no data rows")
	}

	headers := make([]string, len(rows[0]))
	for i, cell := range rows[0] {
		headers[i] = strings.ToLower(strings.TrimSpace(cell))
	}

	parsed := make([]service.SheetRow, 0, len(rows)-1)
	for i, row := range rows[1:] {
		columns := make(map[string]string, len(headers))
		empty := true
		for j, cell := range row {
			if j >= len(headers) || headers[j] == "" {
				continue
			}
			value := strings.TrimSpace(cell)
			if value != "" {
				empty = false
			}
			columns[headers[j]] = value
		}
		if empty {
			continue
		}

		// Row numbers are 1-based and include the header, matching the
		// spreadsheet the user is looking at.
		parsed = append(parsed, service.SheetRow{
			Number:  i + 2,
			Columns: columns,
		})
	}

	return parsed, nil
}
