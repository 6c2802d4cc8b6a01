package excel

import (
	"bytes"
	"strings"
	"testing"

	domainerrors "thames/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// buildWorkbook writes the rows to the first sheet of an in-memory workbook.
func buildWorkbook(t *testing.T, rows [][]string) *bytes.Buffer {
	t.Helper()

	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)
	for i, row := range rows {
		for j, cell := range row {
			name, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, file.SetCellValue(sheet, name, cell))
		}
	}

	buf, err := file.WriteToBuffer()
	require.NoError(t, err)

	return buf
}

func TestSheetParser_ParseLocationSheet(t *testing.T) {
	parser := NewSheetParser()

	buf := buildWorkbook(t, [][]string{
		{"Name", "Address", "City", "Country", "Latitude", "Longitude"},
		{"Monaco Office", "7 Quai Antoine 1er", "Monaco", "Monaco", "43.7384", "7.4246"},
		{"", "10 Promenade des Anglais", "Nice", "France", "43.7102", "7.2620"},
	})

	rows, err := parser.ParseLocationSheet(buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Row numbers match what the spreadsheet shows, header included.
	assert.Equal(t, 2, rows[0].Number)
	assert.Equal(t, 3, rows[1].Number)

	// Headers are lower-cased.
	assert.Equal(t, "Monaco Office", rows[0].Columns["name"])
	assert.Equal(t, "43.7384", rows[0].Columns["latitude"])
	assert.Equal(t, "Nice", rows[1].Columns["city"])
	assert.Equal(t, "", rows[1].Columns["name"])
}

func TestSheetParser_SkipsEmptyRows(t *testing.T) {
	parser := NewSheetParser()

	buf := buildWorkbook(t, [][]string{
		{"Address", "City"},
		{"", ""},
		{"7 Quai Antoine 1er", "Monaco"},
	})

	rows, err := parser.ParseLocationSheet(buf)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 3, rows[0].Number)
	assert.Equal(t, "Monaco", rows[0].Columns["city"])
}

func TestSheetParser_HeaderOnly(t *testing.T) {
	parser := NewSheetParser()

	buf := buildWorkbook(t, [][]string{
		{"Address", "City"},
	})

	_, err := parser.ParseLocationSheet(buf)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrImportFileInvalid))
}

func TestSheetParser_NotAWorkbook(t *testing.T) {
	parser := NewSheetParser()

	_, err := parser.ParseLocationSheet(strings.NewReader("this is not an xlsx file"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrImportFileInvalid))
}
