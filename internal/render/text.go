package render

import (
	"strings"

	"gh-life/internal/core"
)

// FormatGrid renders g as text, one line per row, '#' for alive cells and
// '.' for dead ones.
func FormatGrid(g *core.Grid) string {
	var b strings.Builder
	b.Grow((g.W + 1) * g.H)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.Alive(x, y) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// FlipCounter is a Sink counting cell changes since the last Reset.
type FlipCounter struct {
	Flips int
}

func (f *FlipCounter) CellChanged(int, int, bool) { f.Flips++ }
func (f *FlipCounter) GenerationChanged(int)      {}
func (f *FlipCounter) LiveCountChanged(int)       {}

// Reset zeroes the counter.
func (f *FlipCounter) Reset() { f.Flips = 0 }
