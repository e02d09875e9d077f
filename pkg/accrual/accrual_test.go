package accrual

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yurifrl/overdraft/pkg/models"
)

func eightPercent(t *testing.T) models.AccrualConfig {
	t.Helper()
	cfg, err := models.NewAccrualConfig(decimal.NewFromInt(8))
	require.NoError(t, err)
	return cfg
}

func entry(date string, balance string, gap int) models.GapEntry {
	d, _ := time.Parse("2006-01-02", date)
	return models.GapEntry{
		LedgerEntry: models.LedgerEntry{Date: d, Balance: decimal.RequireFromString(balance)},
		DayGap:      gap,
	}
}

func TestInterest_Formula(t *testing.T) {
	got := Interest(decimal.NewFromInt(-1000), 3, eightPercent(t))
	assert.Equal(t, "0.657534", got.Round(6).String())
}

func TestInterest_NonNegativeBalance(t *testing.T) {
	cfg := eightPercent(t)
	for _, b := range []string{"0", "0.01", "125000"} {
		assert.True(t, Interest(decimal.RequireFromString(b), 30, cfg).IsZero(), b)
	}
}

func TestInterest_ZeroDays(t *testing.T) {
	assert.True(t, Interest(decimal.NewFromInt(-1000), 0, eightPercent(t)).IsZero())
}

func TestCalculate_TwoEntries(t *testing.T) {
	results, total := Calculate([]models.GapEntry{
		entry("2024-01-01", "-500", 4),
		entry("2024-01-05", "200", 1),
	}, eightPercent(t))

	require.Len(t, results, 2)
	assert.Equal(t, "0.4384", results[0].DailyInterest.Round(4).String())
	assert.True(t, results[1].DailyInterest.IsZero())
	assert.Equal(t, 4, results[0].DayGap)
	assert.Equal(t, "0.4384", total.Round(4).String())
}

func TestCalculate_TotalIsExactSum(t *testing.T) {
	results, total := Calculate([]models.GapEntry{
		entry("2024-01-01", "-1234.56", 3),
		entry("2024-01-04", "-99.99", 1),
		entry("2024-01-05", "50", 2),
		entry("2024-01-07", "-0.01", 1),
	}, eightPercent(t))

	sum := decimal.Zero
	for _, r := range results {
		sum = sum.Add(r.DailyInterest)
	}
	assert.True(t, sum.Equal(total), "sum %s != total %s", sum, total)
}

func TestCalculate_Empty(t *testing.T) {
	results, total := Calculate(nil, eightPercent(t))
	assert.Empty(t, results)
	assert.True(t, total.IsZero())
}

func TestNewAccrualConfigRange(t *testing.T) {
	_, err := models.NewAccrualConfig(decimal.NewFromInt(-1))
	assert.Error(t, err)
	_, err = models.NewAccrualConfig(decimal.NewFromInt(101))
	assert.Error(t, err)

	cfg, err := models.NewAccrualConfig(decimal.NewFromInt(100))
	require.NoError(t, err)
	assert.True(t, cfg.AnnualRate.Equal(decimal.NewFromInt(1)))
}
