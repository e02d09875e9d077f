package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/yurifrl/overdraft/pkg/models"
)

const sheetName = "Interest"

// WriteXLSX writes the report as a single-sheet workbook with a bold header.
// Balances and interest are stored as numbers; the TOTAL row leaves the
// balance cell empty.
func WriteXLSX(r *models.Report, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := []interface{}{r.DateColumn, r.BalanceColumn, "daily_interest"}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", "C1", bold); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for i, row := range r.Rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := []interface{}{
			row.Date.Format("2006-01-02"),
			row.Balance.InexactFloat64(),
			row.DailyInterest.InexactFloat64(),
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	totalCell, _ := excelize.CoordinatesToCellName(1, len(r.Rows)+2)
	total := []interface{}{r.Total.Label, nil, r.Total.DailyInterest.InexactFloat64()}
	if err := f.SetSheetRow(sheetName, totalCell, &total); err != nil {
		return fmt.Errorf("failed to write total: %w", err)
	}

	for i, name := range []string{r.DateColumn, r.BalanceColumn, "daily_interest"} {
		col, _ := excelize.ColumnNumberToName(i + 1)
		width := float64(len(name) + 4)
		if width < 14 {
			width = 14
		}
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return err
		}
	}

	return f.Write(w)
}
