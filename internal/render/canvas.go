package render

import "gh-life/internal/core"

// Canvas is a Sink that mirrors a session as palette shades and counters.
// Alive cells get a random hue from the palette each time they change; the
// hue is purely cosmetic. Canvas is not safe for concurrent use.
type Canvas struct {
	w, h       int
	shades     []uint8
	hues       uint8
	rng        *core.RNG
	live       int
	generation int
	dirty      bool
}

// NewCanvas returns a canvas for a w*h grid choosing among hues alive shades.
func NewCanvas(w, h int, hues int, seed int64) *Canvas {
	if hues <= 0 || hues > 255 {
		hues = len(ActiveHex)
	}
	return &Canvas{
		w:      w,
		h:      h,
		shades: make([]uint8, w*h),
		hues:   uint8(hues),
		rng:    core.NewRNG(seed),
		dirty:  true,
	}
}

// Load paints a whole grid, typically the session's initial snapshot.
func (c *Canvas) Load(g *core.Grid) {
	for y := 0; y < g.H && y < c.h; y++ {
		for x := 0; x < g.W && x < c.w; x++ {
			c.paint(x, y, g.Alive(x, y))
		}
	}
	c.live = g.CountLive()
	c.dirty = true
}

func (c *Canvas) CellChanged(x, y int, alive bool) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	c.paint(x, y, alive)
	c.dirty = true
}

func (c *Canvas) GenerationChanged(n int) {
	c.generation = n
	c.dirty = true
}

func (c *Canvas) LiveCountChanged(n int) {
	c.live = n
	c.dirty = true
}

// Size returns the canvas dimensions in cells.
func (c *Canvas) Size() core.Size { return core.Size{W: c.w, H: c.h} }

// Shade returns the palette index of the cell at (x, y); 0 means dead.
func (c *Canvas) Shade(x, y int) uint8 { return c.shades[y*c.w+x] }

// Shades exposes the row-major shade buffer.
func (c *Canvas) Shades() []uint8 { return c.shades }

// Live returns the last reported live cell count.
func (c *Canvas) Live() int { return c.live }

// Generation returns the last reported generation.
func (c *Canvas) Generation() int { return c.generation }

// TakeDirty reports whether anything changed since the previous call.
func (c *Canvas) TakeDirty() bool {
	d := c.dirty
	c.dirty = false
	return d
}

func (c *Canvas) paint(x, y int, alive bool) {
	idx := y*c.w + x
	if !alive {
		c.shades[idx] = 0
		return
	}
	c.shades[idx] = 1 + c.rng.Uint8n(c.hues)
}
