package parser

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/yurifrl/overdraft/pkg/models"
	"github.com/yurifrl/overdraft/pkg/sheet"
)

type Parser struct {
	logger   *log.Logger
	adapters map[models.Institution]Adapter
}

// New returns a parser with every built-in institution registered.
func New(logger *log.Logger) *Parser {
	p := &Parser{
		logger:   logger,
		adapters: make(map[models.Institution]Adapter),
	}
	p.Register(AxisAdapter{})
	p.Register(StandardCharteredAdapter{})
	p.Register(HDFCAdapter{})
	return p
}

// Register adds an adapter. Panics on a duplicate institution.
func (p *Parser) Register(a Adapter) {
	if _, ok := p.adapters[a.Institution()]; ok {
		panic("duplicate adapter: " + string(a.Institution()))
	}
	p.adapters[a.Institution()] = a
}

// Adapter returns the adapter for an institution.
func (p *Parser) Adapter(inst models.Institution) (Adapter, error) {
	a, ok := p.adapters[inst]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownInstitution, inst)
	}
	return a, nil
}

// Adapters lists the registered adapters ordered by institution tag.
func (p *Parser) Adapters() []Adapter {
	out := make([]Adapter, 0, len(p.adapters))
	for _, a := range p.adapters {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Institution() < out[j].Institution() })
	return out
}

var institutionAliases = map[string]models.Institution{
	"a":                  models.Axis,
	"axis":               models.Axis,
	"axis bank":          models.Axis,
	"b":                  models.StandardChartered,
	"sc":                 models.StandardChartered,
	"scb":                models.StandardChartered,
	"standard chartered": models.StandardChartered,
	"c":                  models.HDFC,
	"hdfc":               models.HDFC,
	"hdfc bank":          models.HDFC,
}

// ParseInstitution resolves a tag, letter or bank name to an institution.
func ParseInstitution(s string) (models.Institution, error) {
	key := strings.Join(strings.Fields(strings.ToLower(strings.ReplaceAll(s, "_", " "))), " ")
	if inst, ok := institutionAliases[key]; ok {
		return inst, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownInstitution, s)
}

// ProcessBytes decodes a statement file and parses it for an institution.
func (p *Parser) ProcessBytes(data []byte, filename string, inst models.Institution) ([]models.RawRow, error) {
	grid, err := sheet.Read(data, filename)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("read sheet", "filename", filename, "format", sheet.Detect(data, filename), "rows", len(grid))
	return p.Parse(grid, inst)
}

// Table locates the header and returns the normalized, trimmed data region.
// The returned table may have no rows.
func (p *Parser) Table(grid sheet.Grid, inst models.Institution) (*Table, error) {
	a, err := p.Adapter(inst)
	if err != nil {
		return nil, err
	}

	header, err := a.LocateHeader(grid)
	if err != nil {
		return nil, err
	}
	t := newTable(grid, header)
	p.logger.Debug("located header", "institution", inst, "row", header+1, "columns", t.Columns, "rows", len(t.Rows))
	return t, nil
}

// Parse converts a grid into chronologically ascending raw rows.
func (p *Parser) Parse(grid sheet.Grid, inst models.Institution) ([]models.RawRow, error) {
	a, err := p.Adapter(inst)
	if err != nil {
		return nil, err
	}
	t, err := p.Table(grid, inst)
	if err != nil {
		return nil, err
	}

	required := []string{a.DateColumn(), a.BalanceColumn()}
	validator, hasValidator := a.(RowValidator)
	if hasValidator {
		required = append(required, validator.RequiredColumns()...)
	}
	for _, col := range required {
		if t.Index(col) < 0 {
			return nil, &SchemaError{Institution: inst, Column: col, Found: t.Columns}
		}
	}

	if len(t.Rows) == 0 {
		return nil, ErrEmptySheet
	}
	if a.NewestFirst() {
		t.reverse()
	}

	dateIdx, balanceIdx := t.Index(a.DateColumn()), t.Index(a.BalanceColumn())
	rows := make([]models.RawRow, 0, len(t.Rows))
	for _, tr := range t.Rows {
		if tr.isBlank() {
			p.logger.Debug("skipping blank row", "line", tr.Line)
			continue
		}

		dateCell := tr.Get(dateIdx)
		date, err := dateCell.Time(a.DateLayout())
		if err != nil {
			return nil, &DateFormatError{Line: tr.Line, Column: a.DateColumn(), Value: dateCell.String(), Layout: a.DateLayout()}
		}
		if hasValidator {
			if err := validator.ValidateRow(t, tr); err != nil {
				return nil, err
			}
		}

		balanceCell := tr.Get(balanceIdx)
		balance, err := balanceCell.Decimal()
		if err != nil {
			return nil, &CoercionError{Line: tr.Line, Column: a.BalanceColumn(), Value: balanceCell.String(), Err: err}
		}

		rows = append(rows, models.RawRow{
			Date:    civilDate(date),
			Balance: balance,
			Extra:   extras(t, tr, dateIdx, balanceIdx),
			Line:    tr.Line,
		})
	}

	p.logger.Debug("parsed statement", "institution", inst, "rows", len(rows))
	return rows, nil
}

// extras keeps the institution-specific columns of a row as text.
func extras(t *Table, tr TableRow, dateIdx, balanceIdx int) map[string]string {
	out := make(map[string]string)
	for i, name := range t.Columns {
		if i == dateIdx || i == balanceIdx {
			continue
		}
		if c := tr.Get(i); !c.IsBlank() {
			out[name] = c.String()
		}
	}
	return out
}

// civilDate drops the time of day so entries compare by calendar date.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
