package sheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format is the container of an uploaded statement.
type Format string

const (
	FormatXLS  Format = "xls"
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// ErrNoSheets is returned for workbooks without any worksheet.
var ErrNoSheets = errors.New("no sheets found in workbook")

// maxRows bounds how many rows are read from a workbook.
const maxRows = 100000

// Detect determines the container from magic bytes, falling back to the
// filename extension.
func Detect(data []byte, filename string) Format {
	switch {
	case bytes.HasPrefix(data, []byte{0x50, 0x4B, 0x03, 0x04}):
		return FormatXLSX
	case bytes.HasPrefix(data, []byte{0xD0, 0xCF, 0x11, 0xE0}):
		return FormatXLS
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return FormatXLSX
	case ".xls":
		return FormatXLS
	}
	return FormatCSV
}

// Read decodes the first sheet of a statement into a grid.
func Read(data []byte, filename string) (Grid, error) {
	switch Detect(data, filename) {
	case FormatXLSX:
		return ReadXLSX(data)
	case FormatXLS:
		return ReadXLS(data)
	default:
		return ReadCSV(data)
	}
}

// ReadCSV decodes comma-separated text. Every non-blank value is a text cell.
func ReadCSV(data []byte) (Grid, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	return FromStrings(records), nil
}
