package app

import (
	"fmt"

	"gh-life/internal/render"
	"gh-life/internal/sim"
	"gh-life/internal/ui"
)

const (
	margin  = 16
	cellGap = 2
)

// click routes a left click at window coordinates to the grid or the panel
// below it. Clicks on gaps and margins do nothing.
func click(session *sim.Session, grid render.Layout, panel *ui.Panel, mx, my int) error {
	if x, y, ok := grid.CellAt(mx-margin, my-margin); ok {
		if _, err := session.ToggleCell(x, y); err != nil {
			return fmt.Errorf("toggle cell: %w", err)
		}
		return nil
	}
	_, gh := grid.Size()
	if cmd, ok := panel.HitTest(mx, my-gh-2*margin); ok {
		if _, err := session.Apply(cmd); err != nil {
			return fmt.Errorf("panel %v: %w", cmd, err)
		}
	}
	return nil
}
