package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yurifrl/overdraft/pkg/models"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func row(date string, balance int64) models.RawRow {
	return models.RawRow{Date: day(date), Balance: decimal.NewFromInt(balance)}
}

func TestBuild_LastRowWins(t *testing.T) {
	l := Build([]models.RawRow{
		row("2024-01-01", 10),
		row("2024-01-02", 20),
		row("2024-01-01", 30),
	})

	require.Len(t, l, 2)
	assert.Equal(t, day("2024-01-02"), l[0].Date)
	assert.Equal(t, "20", l[0].Balance.String())
	assert.Equal(t, day("2024-01-01"), l[1].Date)
	assert.Equal(t, "30", l[1].Balance.String())
}

func TestBuild_SameDayKeepsEndOfDay(t *testing.T) {
	l := Build([]models.RawRow{
		row("2024-01-01", 100),
		row("2024-01-03", -50),
		row("2024-01-03", -80),
		row("2024-01-03", -20),
		row("2024-01-04", 5),
	})

	require.Len(t, l, 3)
	assert.Equal(t, "-20", l[1].Balance.String())
}

func TestBuild_DatesAreUnique(t *testing.T) {
	rows := []models.RawRow{
		row("2024-03-01", 1), row("2024-03-01", 2), row("2024-03-02", 3),
		row("2024-03-05", 4), row("2024-03-02", 5), row("2024-03-05", 6),
	}
	// Same date with a time of day still collapses.
	withTime := row("2024-03-05", 7)
	withTime.Date = withTime.Date.Add(15 * time.Hour)
	rows = append(rows, withTime)

	seen := map[time.Time]bool{}
	for _, e := range Build(rows) {
		assert.False(t, seen[e.Date], "duplicate date %s", e.Date)
		seen[e.Date] = true
	}
	assert.Len(t, seen, 3)
}

func TestBuild_Empty(t *testing.T) {
	assert.Empty(t, Build(nil))
	assert.Empty(t, DayGaps(nil))
}

func TestDayGaps(t *testing.T) {
	gaps := DayGaps(Build([]models.RawRow{
		row("2024-01-01", -500),
		row("2024-01-05", 200),
	}))

	require.Len(t, gaps, 2)
	assert.Equal(t, 4, gaps[0].DayGap)
	assert.Equal(t, 1, gaps[1].DayGap)
	assert.Equal(t, "-500", gaps[0].Balance.String())
}

func TestDayGaps_LastEntryIsOneDay(t *testing.T) {
	gaps := DayGaps(models.Ledger{
		{Date: day("2024-01-01")},
		{Date: day("2024-01-31")},
	})
	assert.Equal(t, 30, gaps[0].DayGap)
	assert.Equal(t, 1, gaps[1].DayGap)
}

func TestDayGaps_AcrossMonthAndLeapDay(t *testing.T) {
	gaps := DayGaps(models.Ledger{
		{Date: day("2024-02-27")},
		{Date: day("2024-03-01")},
	})
	assert.Equal(t, 3, gaps[0].DayGap)
}

func TestDayGaps_ZeroAndNegative(t *testing.T) {
	gaps := DayGaps(models.Ledger{
		{Date: day("2024-01-02")},
		{Date: day("2024-01-02")},
		{Date: day("2024-01-01")},
	})
	assert.Equal(t, 0, gaps[0].DayGap)
	assert.Equal(t, 0, gaps[1].DayGap)
	assert.Equal(t, 1, gaps[2].DayGap)
}
