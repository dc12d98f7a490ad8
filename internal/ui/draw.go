//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"gh-life/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const borderWidth = 2

var (
	panelBackground = color.RGBA{R: 246, G: 248, B: 250, A: 255}
	labelColor      = color.RGBA{R: 36, G: 41, B: 46, A: 255}
	buttonText      = color.White
)

// Painter draws a Panel onto an ebiten image.
type Painter struct {
	panel *Panel
	pixel *ebiten.Image
}

// NewPainter prepares drawing resources for p.
func NewPainter(p *Panel) *Painter {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &Painter{panel: p, pixel: pixel}
}

// Draw paints the panel with its top edge at offsetY.
func (d *Painter) Draw(dst *ebiten.Image, offsetY int, running bool, live, generation int) {
	d.fillRect(dst, image.Rect(0, offsetY, d.panel.Width(), offsetY+PanelHeight), panelBackground)

	face := basicfont.Face7x13
	for _, b := range d.panel.Buttons(running) {
		rect := b.Rect.Add(image.Pt(0, offsetY))
		d.fillRect(dst, rect, hexColor(b.Border))
		d.fillRect(dst, rect.Inset(borderWidth), hexColor(b.Fill))

		bounds := text.BoundString(face, b.Label)
		x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
		y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
		text.Draw(dst, b.Label, face, x, y, buttonText)
	}

	origin := d.panel.StatusOrigin().Add(image.Pt(0, offsetY))
	lineHeight := face.Metrics().Height.Ceil() + 4
	for i, line := range StatusLines(live, generation) {
		text.Draw(dst, line, face, origin.X, origin.Y+(i+1)*lineHeight, labelColor)
	}
}

func (d *Painter) fillRect(dst *ebiten.Image, rect image.Rectangle, c color.Color) {
	if rect.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(d.pixel, op)
}

func hexColor(s string) color.RGBA {
	c, err := render.ParseHex(s)
	if err != nil {
		return color.RGBA{A: 255}
	}
	return c
}
