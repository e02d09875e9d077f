package sheet

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/extrame/xls"
	"github.com/shopspring/decimal"
)

// ReadXLS decodes the first worksheet of a legacy Excel workbook. The xls
// reader only exposes formatted text, so native values are recovered from
// that text by xlsCell.
func ReadXLS(data []byte) (Grid, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("error creating workbook: %w", err)
	}
	if workbook.NumSheets() == 0 {
		return nil, ErrNoSheets
	}

	ws := workbook.GetSheet(0)
	if ws == nil {
		return nil, ErrNoSheets
	}

	var grid Grid
	for i := 0; i <= int(ws.MaxRow) && i < maxRows; i++ {
		row := ws.Row(i)
		if row == nil {
			grid = append(grid, nil)
			continue
		}
		cells := make([]Cell, row.LastCol())
		for j := range cells {
			cells[j] = xlsCell(row.Col(j))
		}
		grid = append(grid, cells)
	}
	return grid, nil
}

// xlsCell types a value rendered by the xls reader. Numeric cells, including
// date serials, come back as plain numbers and custom date formats as
// RFC3339; anything else stays text.
func xlsCell(s string) Cell {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Cell{}
	}
	if _, err := decimal.NewFromString(trimmed); err == nil {
		return NumberCell(trimmed, s)
	}
	if t, err := time.Parse(time.RFC3339, trimmed); err == nil {
		return DateCell(t, s)
	}
	return TextCell(s)
}
