package executors

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/yurifrl/overdraft/pkg/csv"
	"github.com/yurifrl/overdraft/pkg/models"
	"github.com/yurifrl/overdraft/pkg/report"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	negativeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // red
	interestStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // yellow
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))  // gray
	borderStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
)

// Plan processes a statement and prints the report without writing files.
func (e *Executor) Plan(statement *models.Statement) (*models.Report, error) {
	e.logger.Debug("planning statement", "file", statement.FilePath)

	r, err := e.Run(statement)
	if err != nil {
		return nil, err
	}
	e.Render(statement.FilePath, r)
	return r, nil
}

// Render prints a report as a table followed by the total.
func (e *Executor) Render(title string, r *models.Report) {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style { return cellStyle }).
		Headers(
			headerStyle.Render(r.DateColumn),
			headerStyle.Render("day"),
			headerStyle.Render(r.BalanceColumn),
			headerStyle.Render("daily_interest"),
		)

	for _, row := range r.Rows {
		balance := row.Balance.StringFixed(2)
		if row.Balance.IsNegative() {
			balance = negativeStyle.Render(balance)
		}
		interest := mutedStyle.Render(row.DailyInterest.StringFixed(4))
		if !row.DailyInterest.IsZero() {
			interest = interestStyle.Render(row.DailyInterest.StringFixed(4))
		}
		t.Row(row.Date.Format(csv.DateFormat), row.Weekday().String(), balance, interest)
	}
	t.Row(headerStyle.Render(r.Total.Label), "", "", headerStyle.Render(r.Total.DailyInterest.StringFixed(4)))

	fmt.Fprintln(e.out, headerStyle.Render(title))
	fmt.Fprintln(e.out, t.String())
	fmt.Fprintf(e.out, "\n%d ledger entries, %d overdrawn\n", len(r.Rows), overdrawnDays(r))
	fmt.Fprintf(e.out, "Total month's interest: %s\n", report.FormatTotal(r.Total.DailyInterest))
}
