package sheet

// Grid is a sheet as rows of cells. Rows may have different lengths; missing
// trailing cells are blank.
type Grid [][]Cell

// Width returns the length of the longest row.
func (g Grid) Width() int {
	w := 0
	for _, row := range g {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// Cell returns the cell at row r, column c, or a blank cell when out of range.
func (g Grid) Cell(r, c int) Cell {
	if r < 0 || r >= len(g) || c < 0 || c >= len(g[r]) {
		return Cell{}
	}
	return g[r][c]
}

// RowIsBlank reports whether every cell in row r is blank.
func (g Grid) RowIsBlank(r int) bool {
	if r < 0 || r >= len(g) {
		return true
	}
	for _, c := range g[r] {
		if !c.IsBlank() {
			return false
		}
	}
	return true
}

// IsBlank reports whether the grid holds no data at all.
func (g Grid) IsBlank() bool {
	for r := range g {
		if !g.RowIsBlank(r) {
			return false
		}
	}
	return true
}

// FromStrings builds a grid of text cells.
func FromStrings(rows [][]string) Grid {
	g := make(Grid, len(rows))
	for i, row := range rows {
		g[i] = make([]Cell, len(row))
		for j, v := range row {
			g[i][j] = TextCell(v)
		}
	}
	return g
}
