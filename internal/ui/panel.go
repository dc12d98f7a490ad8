// Package ui lays out the control panel shown under the grid.
package ui

import (
	"fmt"
	"image"

	"gh-life/internal/sim"
)

const (
	panelPadding = 10
	buttonWidth  = 65
	buttonHeight = 35
	buttonGap    = 10
	statusGap    = 20
	statusWidth  = 170

	// PanelHeight is the vertical space the panel occupies.
	PanelHeight = buttonHeight + 2*panelPadding
)

// Button is one clickable control.
type Button struct {
	Label  string
	Cmd    sim.Command
	Rect   image.Rectangle
	Fill   string
	Border string
}

// Panel holds the play/pause, step and clear buttons and the counters.
type Panel struct {
	width   int
	buttons []Button
}

// NewPanel lays out the controls for a panel of the given pixel width.
func NewPanel(width int) *Panel {
	p := &Panel{width: width}
	defs := []Button{
		{Label: "Play", Cmd: sim.CmdPlayPause, Fill: "#66ff33", Border: "#208000"},
		{Label: "Step", Cmd: sim.CmdStep, Fill: "#0066ff", Border: "#003380"},
		{Label: "Clear", Cmd: sim.CmdClear, Fill: "#e6e600", Border: "#b3b300"},
	}
	x := panelPadding
	for _, b := range defs {
		b.Rect = image.Rect(x, panelPadding, x+buttonWidth, panelPadding+buttonHeight)
		p.buttons = append(p.buttons, b)
		x += buttonWidth + buttonGap
	}
	return p
}

// Width returns the panel width; it is at least wide enough for the buttons
// and counters.
func (p *Panel) Width() int {
	need := p.StatusOrigin().X + 2*statusWidth
	if p.width < need {
		return need
	}
	return p.width
}

// Buttons returns the controls with the play button reflecting running.
func (p *Panel) Buttons(running bool) []Button {
	out := append([]Button(nil), p.buttons...)
	if running {
		out[0].Label = "Pause"
		out[0].Fill = "#ff4d4d"
		out[0].Border = "#cc0000"
	}
	return out
}

// HitTest maps a point in panel coordinates to the command of the button
// under it.
func (p *Panel) HitTest(x, y int) (sim.Command, bool) {
	pt := image.Pt(x, y)
	for _, b := range p.buttons {
		if pt.In(b.Rect) {
			return b.Cmd, true
		}
	}
	return 0, false
}

// StatusOrigin is the top-left corner of the counters.
func (p *Panel) StatusOrigin() image.Point {
	last := p.buttons[len(p.buttons)-1].Rect
	return image.Pt(last.Max.X+statusGap, panelPadding)
}

// StatusLines formats the counters shown next to the buttons.
func StatusLines(live, generation int) []string {
	return []string{
		fmt.Sprintf("Live Cell Count: %d", live),
		fmt.Sprintf("Generation: %d", generation),
	}
}
