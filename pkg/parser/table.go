package parser

import (
	"regexp"
	"strings"

	"github.com/yurifrl/overdraft/pkg/sheet"
)

// Table is the tabular region of a sheet with normalized column names.
type Table struct {
	Columns []string
	Rows    []TableRow
}

// TableRow is a data row; Line is its 1-based position in the sheet.
type TableRow struct {
	Line  int
	Cells []sheet.Cell
}

// Get returns the cell in column i, blank when out of range.
func (r TableRow) Get(i int) sheet.Cell {
	if i < 0 || i >= len(r.Cells) {
		return sheet.Cell{}
	}
	return r.Cells[i]
}

func (r TableRow) isBlank() bool {
	for _, c := range r.Cells {
		if !c.IsBlank() {
			return false
		}
	}
	return true
}

// Index returns the position of a column, or -1.
func (t *Table) Index(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	nonIdentifier = regexp.MustCompile(`[^a-z0-9_]`)
)

// NormalizeColumn lowercases a header, turns whitespace runs into a single
// underscore and drops anything outside [a-z0-9_].
func NormalizeColumn(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = whitespaceRun.ReplaceAllString(s, "_")
	return nonIdentifier.ReplaceAllString(s, "")
}

// markerHeader returns the first row whose marker column holds a value.
func markerHeader(g sheet.Grid, marker int) (int, bool) {
	for r := range g {
		if !g.Cell(r, marker).IsBlank() {
			return r, true
		}
	}
	return 0, false
}

// newTable builds a table from the header at headerRow and everything below
// it. Columns with a blank name are dropped; when two headers normalize to
// the same name the first one is kept.
func newTable(g sheet.Grid, headerRow int) *Table {
	var (
		t    Table
		keep []int
		seen = map[string]bool{}
	)
	for c := 0; c < g.Width(); c++ {
		name := NormalizeColumn(g.Cell(headerRow, c).String())
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		t.Columns = append(t.Columns, name)
		keep = append(keep, c)
	}

	for r := headerRow + 1; r < len(g); r++ {
		cells := make([]sheet.Cell, len(keep))
		for i, c := range keep {
			cells[i] = g.Cell(r, c)
		}
		t.Rows = append(t.Rows, TableRow{Line: r + 1, Cells: cells})
	}
	t.trim()
	return &t
}

// trim drops leading and trailing rows where every cell is blank.
func (t *Table) trim() {
	first, last := -1, -1
	for i, row := range t.Rows {
		if row.isBlank() {
			continue
		}
		if first < 0 {
			first = i
		}
		last = i
	}
	if first < 0 {
		t.Rows = nil
		return
	}
	t.Rows = t.Rows[first : last+1]
}

// reverse flips row order in place.
func (t *Table) reverse() {
	for i, j := 0, len(t.Rows)-1; i < j; i, j = i+1, j-1 {
		t.Rows[i], t.Rows[j] = t.Rows[j], t.Rows[i]
	}
}
