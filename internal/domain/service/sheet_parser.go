package service

import "io"

// SheetRow is one data row of an uploaded spreadsheet, keyed by the
// lower-cased header of each column. Row numbers are 1-based and include
// the header row, matching what the spreadsheet shows the user.
type SheetRow struct {
	Number  int
	Columns map[string]string
}

// SheetParser defines the interface for reading tabular uploads.
// Parsing is format-only; the caller owns validation of the cell values.
type SheetParser interface {
	// ParseLocationSheet reads the first sheet of an .xlsx stream.
	ParseLocationSheet(r io.Reader) ([]SheetRow, error)
}
