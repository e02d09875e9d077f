package executors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/yurifrl/overdraft/pkg/accrual"
	"github.com/yurifrl/overdraft/pkg/ledger"
	"github.com/yurifrl/overdraft/pkg/models"
	"github.com/yurifrl/overdraft/pkg/parser"
	"github.com/yurifrl/overdraft/pkg/report"
	"github.com/yurifrl/overdraft/pkg/sheet"
)

// Process runs the whole pipeline over one statement file held in memory.
// A sheet without data rows is not an error: it yields a report holding
// only the TOTAL row.
func (e *Executor) Process(data []byte, filename string, inst models.Institution, cfg models.AccrualConfig) (*models.Report, error) {
	adapter, err := e.parser.Adapter(inst)
	if err != nil {
		return nil, err
	}

	grid, err := sheet.Read(data, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	rows, err := e.parser.Parse(grid, inst)
	switch {
	case errors.Is(err, parser.ErrEmptySheet):
		e.logger.Warn("statement has no data rows", "file", filename, "institution", adapter.Name())
		rows = nil
	case err != nil:
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	l := ledger.Build(rows)
	results, total := accrual.Calculate(ledger.DayGaps(l), cfg)
	e.logger.Debug("computed interest", "file", filename, "rows", len(rows), "entries", len(l), "total", total)

	return report.Build(inst, adapter.DateColumn(), adapter.BalanceColumn(), results, total), nil
}

// Run reads a statement from disk and processes it.
func (e *Executor) Run(statement *models.Statement) (*models.Report, error) {
	cfg, err := statement.Accrual()
	if err != nil {
		return nil, err
	}
	data, err := statement.Read()
	if err != nil {
		return nil, err
	}
	return e.Process(data, statement.FilePath, statement.Institution, cfg)
}

// overdrawnDays counts report rows carrying interest.
func overdrawnDays(r *models.Report) int {
	n := 0
	for _, row := range r.Rows {
		if row.DailyInterest.GreaterThan(decimal.Zero) {
			n++
		}
	}
	return n
}
