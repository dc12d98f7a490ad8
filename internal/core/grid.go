package core

// Grid stores a bounded 2D grid of cell states in row-major order. Each entry
// is 0 (dead) or 1 (alive); the dimensions never change after construction.
type Grid struct {
	W, H int
	data []uint8
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]uint8, w*h)}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so callers can read/write values directly.
// Written values must stay 0 or 1.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Alive reads a cell without bounds checking. Out-of-range coordinates panic.
func (g *Grid) Alive(x, y int) bool { return g.data[y*g.W+x] != 0 }

// Get returns the state of the cell at (x, y).
func (g *Grid) Get(x, y int) (bool, error) {
	if !g.InBounds(x, y) {
		return false, g.outOfBounds(x, y)
	}
	return g.Alive(x, y), nil
}

// Set overwrites the state of a single cell.
func (g *Grid) Set(x, y int, alive bool) error {
	if !g.InBounds(x, y) {
		return g.outOfBounds(x, y)
	}
	g.data[g.Index(x, y)] = boolToCell(alive)
	return nil
}

// Toggle flips the cell at (x, y) and returns its new state.
func (g *Grid) Toggle(x, y int) (bool, error) {
	if !g.InBounds(x, y) {
		return false, g.outOfBounds(x, y)
	}
	idx := g.Index(x, y)
	g.data[idx] ^= 1
	return g.data[idx] == 1, nil
}

// CountLive scans the grid and returns the number of alive cells.
func (g *Grid) CountLive() int {
	n := 0
	for _, c := range g.data {
		n += int(c)
	}
	return n
}

// Clear sets every cell to dead.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{W: g.W, H: g.H, data: make([]uint8, len(g.data))}
	copy(c.data, g.data)
	return c
}

// Equal reports whether both grids have the same size and cell states.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.W != other.W || g.H != other.H {
		return false
	}
	for i := range g.data {
		if g.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

func (g *Grid) outOfBounds(x, y int) error {
	return &OutOfBoundsError{X: x, Y: y, Size: g.Size()}
}

func boolToCell(alive bool) uint8 {
	if alive {
		return 1
	}
	return 0
}
