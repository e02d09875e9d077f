// Package report assembles the final interest report and renders it for
// people: a display total and an xlsx workbook.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/yurifrl/overdraft/pkg/models"
)

// Build projects accrual results onto the exported columns and closes the
// report with the TOTAL row.
func Build(inst models.Institution, dateColumn, balanceColumn string, results []models.AccrualResult, total decimal.Decimal) *models.Report {
	rows := make([]models.ReportRow, len(results))
	for i, r := range results {
		rows[i] = models.ReportRow{
			Date:          r.Date,
			Balance:       r.Balance,
			DailyInterest: r.DailyInterest,
		}
	}
	return &models.Report{
		Institution:   inst,
		DateColumn:    dateColumn,
		BalanceColumn: balanceColumn,
		Rows:          rows,
		Total:         models.TotalRow{Label: models.TotalLabel, DailyInterest: total},
	}
}

// FormatTotal renders the total with two decimals for display.
func FormatTotal(total decimal.Decimal) string {
	return total.StringFixed(2)
}
