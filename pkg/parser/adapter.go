package parser

import (
	"github.com/yurifrl/overdraft/pkg/models"
	"github.com/yurifrl/overdraft/pkg/sheet"
)

// Adapter describes one institution's export layout.
type Adapter interface {
	Institution() models.Institution
	Name() string
	// LocateHeader returns the sheet row holding the column headers.
	LocateHeader(g sheet.Grid) (int, error)
	DateColumn() string
	DateLayout() string
	BalanceColumn() string
	// NewestFirst reports whether the export lists the latest row first.
	NewestFirst() bool
}

// RowValidator is implemented by adapters that check columns beyond the
// date and balance.
type RowValidator interface {
	RequiredColumns() []string
	ValidateRow(t *Table, row TableRow) error
}

// Default marker column: exports start with a few title rows that leave the
// third column empty until the header.
const defaultMarker = 2

func locateByMarker(inst models.Institution, g sheet.Grid, marker int) (int, error) {
	row, ok := markerHeader(g, marker)
	if ok {
		return row, nil
	}
	if g.IsBlank() {
		return 0, ErrEmptySheet
	}
	return 0, &SchemaError{Institution: inst, Marker: marker}
}
