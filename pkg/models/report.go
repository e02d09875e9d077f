package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TotalLabel is written in the date column of the summary row.
const TotalLabel = "TOTAL"

// ReportRow is the exported projection of an AccrualResult.
type ReportRow struct {
	Date          time.Time
	Balance       decimal.Decimal
	DailyInterest decimal.Decimal
}

// Weekday names the day the row's balance was recorded, shown next to the
// date in previews.
func (r ReportRow) Weekday() time.Weekday {
	return r.Date.Weekday()
}

// TotalRow closes a report. Its balance cell is always blank.
type TotalRow struct {
	Label         string
	DailyInterest decimal.Decimal
}

// Report is the finished output of one run.
type Report struct {
	Institution   Institution
	DateColumn    string
	BalanceColumn string
	Rows          []ReportRow
	Total         TotalRow
}

// AccrualConfig holds the annual rate as a fraction.
type AccrualConfig struct {
	AnnualRate decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// NewAccrualConfig converts a percentage in [0, 100] to an AccrualConfig.
func NewAccrualConfig(percent decimal.Decimal) (AccrualConfig, error) {
	if percent.IsNegative() || percent.GreaterThan(hundred) {
		return AccrualConfig{}, fmt.Errorf("annual rate %s%% out of range [0, 100]", percent)
	}
	return AccrualConfig{AnnualRate: percent.Div(hundred)}, nil
}
