// Package life implements Conway's Game of Life on a bounded grid.
package life

import "gh-life/internal/core"

// NeighborCount returns the number of alive cells in the Moore neighborhood
// of (x, y). Offsets falling outside the grid contribute nothing.
func NeighborCount(g *core.Grid, x, y int) int {
	neighbors := 0
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= g.H {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := x + dx
			if nx < 0 || nx >= g.W {
				continue
			}
			if g.Alive(nx, ny) {
				neighbors++
			}
		}
	}
	return neighbors
}

// Next applies the B3/S23 rule to a single cell.
func Next(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// Advance computes the generation following g and returns it with its live
// cell count. g is not modified.
func Advance(g *core.Grid) (*core.Grid, int) {
	next := core.NewGrid(g.W, g.H)
	live := AdvanceInto(next, g, nil)
	return next, live
}

// AdvanceInto writes the generation following src into dst and returns the
// live cell count of dst. Neighbor counts are read from src only, so every
// cell sees the same prior generation. onChange, when non-nil, is called for
// each cell whose state differs between src and dst. dst and src must be
// distinct grids of the same size.
func AdvanceInto(dst, src *core.Grid, onChange func(x, y int, alive bool)) int {
	if dst == src {
		panic("life: AdvanceInto requires distinct buffers")
	}
	if dst.W != src.W || dst.H != src.H {
		panic("life: AdvanceInto size mismatch")
	}
	w, h := src.W, src.H
	cur, nxt := src.Cells(), dst.Cells()
	live := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			alive := cur[idx] == 1
			next := Next(alive, NeighborCount(src, x, y))
			nxt[idx] = 0
			if next {
				nxt[idx] = 1
				live++
			}
			if next != alive && onChange != nil {
				onChange(x, y, next)
			}
		}
	}
	return live
}
