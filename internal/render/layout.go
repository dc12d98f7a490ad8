package render

// Layout describes calendar-style cell geometry: square cells of Cell pixels
// separated by Gap pixels.
type Layout struct {
	Cols, Rows int
	Cell, Gap  int
}

// NewLayout normalizes the geometry so cells are at least one pixel wide.
func NewLayout(cols, rows, cell, gap int) Layout {
	if cell <= 0 {
		cell = 1
	}
	if gap < 0 {
		gap = 0
	}
	return Layout{Cols: cols, Rows: rows, Cell: cell, Gap: gap}
}

// CellAt maps a point relative to the grid origin to a cell coordinate.
// Points on gaps or outside the grid report false.
func (l Layout) CellAt(px, py int) (int, int, bool) {
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	pitch := l.Cell + l.Gap
	x, y := px/pitch, py/pitch
	if x >= l.Cols || y >= l.Rows || px%pitch >= l.Cell || py%pitch >= l.Cell {
		return 0, 0, false
	}
	return x, y, true
}

// Size returns the pixel dimensions of the whole grid.
func (l Layout) Size() (int, int) {
	pitch := l.Cell + l.Gap
	return l.Cols*pitch - l.Gap, l.Rows*pitch - l.Gap
}
