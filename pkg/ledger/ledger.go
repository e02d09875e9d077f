// Package ledger turns parsed statement rows into a deduplicated balance
// history and measures how long each balance held.
package ledger

import (
	"time"

	"github.com/yurifrl/overdraft/pkg/models"
)

// Build keeps one entry per calendar date. When several rows share a date
// the last one in input order wins and stays at its own position, so the
// result follows the order the rows were given in.
func Build(rows []models.RawRow) models.Ledger {
	last := make(map[time.Time]int, len(rows))
	for i, row := range rows {
		last[dateKey(row.Date)] = i
	}

	ledger := make(models.Ledger, 0, len(last))
	for i, row := range rows {
		if last[dateKey(row.Date)] != i {
			continue
		}
		ledger = append(ledger, models.LedgerEntry{
			Date:    dateKey(row.Date),
			Balance: row.Balance,
		})
	}
	return ledger
}

// DayGaps returns the number of whole days each balance held until the
// next entry. The final entry is charged a single day.
func DayGaps(l models.Ledger) []models.GapEntry {
	out := make([]models.GapEntry, len(l))
	for i, entry := range l {
		gap := 1
		if i < len(l)-1 {
			gap = daysBetween(entry.Date, l[i+1].Date)
		}
		out[i] = models.GapEntry{LedgerEntry: entry, DayGap: gap}
	}
	return out
}

func daysBetween(from, to time.Time) int {
	days := int(dateKey(to).Sub(dateKey(from)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

func dateKey(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
