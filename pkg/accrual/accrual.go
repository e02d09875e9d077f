// Package accrual charges simple daily interest on overdrawn balances.
package accrual

import (
	"github.com/shopspring/decimal"

	"github.com/yurifrl/overdraft/pkg/models"
)

var daysInYear = decimal.NewFromInt(365)

// Interest returns the charge for a balance held for days at an annual rate.
// Non-negative balances accrue nothing.
func Interest(balance decimal.Decimal, days int, cfg models.AccrualConfig) decimal.Decimal {
	if !balance.IsNegative() || days <= 0 {
		return decimal.Zero
	}
	return balance.Neg().Mul(cfg.AnnualRate).Mul(decimal.NewFromInt(int64(days))).Div(daysInYear)
}

// Calculate applies Interest to every entry and returns the results with
// their exact sum. Nothing is rounded here.
func Calculate(entries []models.GapEntry, cfg models.AccrualConfig) ([]models.AccrualResult, decimal.Decimal) {
	results := make([]models.AccrualResult, len(entries))
	total := decimal.Zero
	for i, e := range entries {
		interest := Interest(e.Balance, e.DayGap, cfg)
		results[i] = models.AccrualResult{
			Date:          e.Date,
			Balance:       e.Balance,
			DayGap:        e.DayGap,
			DailyInterest: interest,
		}
		total = total.Add(interest)
	}
	return results, total
}
