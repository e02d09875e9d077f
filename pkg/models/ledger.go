package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Institution identifies a bank export layout.
type Institution string

const (
	Axis              Institution = "axis"
	StandardChartered Institution = "sc"
	HDFC              Institution = "hdfc"
)

// RawRow is one balance record read from a statement after its columns have
// been resolved. Extra holds the remaining columns by normalized name.
type RawRow struct {
	Date    time.Time
	Balance decimal.Decimal
	Extra   map[string]string
	Line    int // 1-based row in the source sheet
}

// LedgerEntry is the end-of-day balance for one calendar date.
type LedgerEntry struct {
	Date    time.Time
	Balance decimal.Decimal
}

// Ledger is ordered chronologically with one entry per date.
type Ledger []LedgerEntry

// GapEntry is a ledger entry with the number of days its balance held.
type GapEntry struct {
	LedgerEntry
	DayGap int
}

// AccrualResult carries the interest charged for one ledger entry.
type AccrualResult struct {
	Date          time.Time
	Balance       decimal.Decimal
	DayGap        int
	DailyInterest decimal.Decimal
}
