//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from a Canvas, drawing each cell
// as a square with a gap around it like a contribution calendar.
type GridPainter struct {
	Layout
	img     *ebiten.Image
	buf     []byte
	palette []color.RGBA
	bg      color.RGBA
}

// NewGridPainter allocates a painter for the given layout.
func NewGridPainter(l Layout) *GridPainter {
	gp := &GridPainter{Layout: l, palette: CalendarPalette}
	gp.bg = mustPalette([]string{BackgroundHex})[0]
	w, h := l.Size()
	gp.buf = make([]byte, 4*w*h)
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit draws the painter image at (x, y). When dirty is set the canvas is
// uploaded first.
func (gp *GridPainter) Blit(dst *ebiten.Image, c *Canvas, x, y float64, dirty bool) {
	if len(c.Shades()) != gp.Cols*gp.Rows {
		return
	}
	if dirty {
		fillBlockRGBA(gp.buf, c.Shades(), gp.Cols, gp.Cell, gp.Gap, gp.palette, gp.bg)
		gp.img.WritePixels(gp.buf)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	dst.DrawImage(gp.img, op)
}
