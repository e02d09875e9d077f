package parser

import (
	"github.com/yurifrl/overdraft/pkg/models"
	"github.com/yurifrl/overdraft/pkg/sheet"
)

const (
	hdfcTransactionDate   = "transaction_date"
	hdfcTransactionLayout = "2/1/2006 15:04:05"
)

// HDFCAdapter reads HDFC Bank exports: a clean header on the first row,
// newest transaction first, balances keyed by value date.
type HDFCAdapter struct{}

func (HDFCAdapter) Institution() models.Institution { return models.HDFC }
func (HDFCAdapter) Name() string                    { return "HDFC Bank" }

func (HDFCAdapter) LocateHeader(g sheet.Grid) (int, error) {
	if g.IsBlank() {
		return 0, ErrEmptySheet
	}
	return 0, nil
}

func (HDFCAdapter) DateColumn() string    { return "value_date" }
func (HDFCAdapter) DateLayout() string    { return "2/1/2006" }
func (HDFCAdapter) BalanceColumn() string { return "running_balance" }
func (HDFCAdapter) NewestFirst() bool     { return true }

func (HDFCAdapter) RequiredColumns() []string { return []string{hdfcTransactionDate} }

// ValidateRow checks the transaction timestamp, which carries a time of day.
func (HDFCAdapter) ValidateRow(t *Table, row TableRow) error {
	cell := row.Get(t.Index(hdfcTransactionDate))
	if _, err := cell.Time(hdfcTransactionLayout); err != nil {
		return &DateFormatError{Line: row.Line, Column: hdfcTransactionDate, Value: cell.String(), Layout: hdfcTransactionLayout}
	}
	return nil
}
