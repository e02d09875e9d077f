package csv

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/yurifrl/overdraft/pkg/models"
)

// DateFormat is the date layout used in exported rows.
const DateFormat = "2006-01-02"

// Create renders a report as comma-separated text: the institution's date and
// balance column names plus daily_interest, one row per ledger entry, then
// the TOTAL row with an empty balance.
func Create(r *models.Report) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{r.DateColumn, r.BalanceColumn, "daily_interest"}); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range r.Rows {
		record := []string{
			row.Date.Format(DateFormat),
			row.Balance.String(),
			row.DailyInterest.String(),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	if err := w.Write([]string{r.Total.Label, "", r.Total.DailyInterest.String()}); err != nil {
		return nil, fmt.Errorf("failed to write csv total: %w", err)
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
