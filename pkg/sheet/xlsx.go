package sheet

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX decodes the first worksheet of an Office Open XML workbook.
// Numeric cells keep their stored literal; numeric cells carrying a date
// number format become date cells.
func ReadXLSX(data []byte) (Grid, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}
	name := sheets[0]

	display, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read xlsx rows: %w", err)
	}
	raw, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read xlsx rows: %w", err)
	}

	grid := make(Grid, 0, len(display))
	for i := 0; i < len(display) && i < maxRows; i++ {
		width := len(display[i])
		if i < len(raw) && len(raw[i]) > width {
			width = len(raw[i])
		}
		cells := make([]Cell, width)
		for j := range cells {
			cells[j] = xlsxCell(f, name, i, j, at(display, i, j), at(raw, i, j))
		}
		grid = append(grid, cells)
	}
	return grid, nil
}

func at(rows [][]string, i, j int) string {
	if i >= len(rows) || j >= len(rows[i]) {
		return ""
	}
	return rows[i][j]
}

func xlsxCell(f *excelize.File, sheetName string, row, col int, display, raw string) Cell {
	if isWhitespace(raw) && isWhitespace(display) {
		return Cell{}
	}
	if _, err := strconv.ParseFloat(raw, 64); err != nil {
		return TextCell(display)
	}

	axis, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return NumberCell(raw, display)
	}
	if typ, err := f.GetCellType(sheetName, axis); err == nil && (typ == excelize.CellTypeSharedString || typ == excelize.CellTypeInlineString) {
		return TextCell(display)
	}
	if hasDateFormat(f, sheetName, axis) {
		serial, _ := strconv.ParseFloat(raw, 64)
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return DateCell(t, display)
		}
	}
	return NumberCell(raw, display)
}

// hasDateFormat reports whether the cell's number format renders a date.
func hasDateFormat(f *excelize.File, sheetName, axis string) bool {
	idx, err := f.GetCellStyle(sheetName, axis)
	if err != nil || idx == 0 {
		return false
	}
	style, err := f.GetStyle(idx)
	if err != nil || style == nil {
		return false
	}
	if style.CustomNumFmt != nil {
		return isDatePattern(*style.CustomNumFmt)
	}
	switch {
	case style.NumFmt >= 14 && style.NumFmt <= 22:
		return true
	case style.NumFmt >= 45 && style.NumFmt <= 47:
		return true
	}
	return false
}

// isDatePattern looks for day, month or year tokens outside quoted literals
// and bracketed sections of a custom number format.
func isDatePattern(format string) bool {
	var b strings.Builder
	quoted, bracket := false, false
	for _, r := range format {
		switch {
		case r == '"':
			quoted = !quoted
		case r == '[' && !quoted:
			bracket = true
		case r == ']' && !quoted:
			bracket = false
		case !quoted && !bracket:
			b.WriteRune(r)
		}
	}
	return strings.ContainsAny(strings.ToLower(b.String()), "dy") ||
		strings.Contains(strings.ToLower(b.String()), "mmm")
}
