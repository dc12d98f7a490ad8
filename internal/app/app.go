//go:build ebiten

package app

import (
	"image/color"

	"gh-life/internal/core"
	"gh-life/internal/render"
	"gh-life/internal/sim"
	"gh-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var background = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Game adapts a simulation session to the ebiten.Game interface. Sweeps run
// from Update through a FrameScheduler, so the session is only ever touched
// from ebiten's game goroutine.
type Game struct {
	session *sim.Session
	sched   *core.FrameScheduler
	canvas  *render.Canvas
	painter *render.GridPainter
	panel   *ui.Panel
	chrome  *ui.Painter

	width, height int
}

// New seeds a session from snap and wires it to the ebiten host.
func New(cfg *Config, snap core.Snapshot) (*Game, error) {
	sched := core.NewFrameScheduler()
	canvas := render.NewCanvas(snap.Size.W, snap.Size.H, len(render.ActiveHex), cfg.RNG)

	sc := cfg.SessionConfig()
	sc.Scheduler = sched
	sc.Sink = canvas
	session, err := sim.New(snap, sc)
	if err != nil {
		return nil, err
	}
	canvas.Load(session.Snapshot())

	layout := render.NewLayout(snap.Size.W, snap.Size.H, cfg.Scale, cellGap)
	gw, gh := layout.Size()
	panel := ui.NewPanel(gw + 2*margin)
	g := &Game{
		session: session,
		sched:   sched,
		canvas:  canvas,
		painter: render.NewGridPainter(layout),
		panel:   panel,
		chrome:  ui.NewPainter(panel),
		width:   panel.Width(),
		height:  gh + 2*margin + ui.PanelHeight,
	}
	return g, nil
}

// Size returns the window size in pixels.
func (g *Game) Size() (int, int) { return g.width, g.height }

// Update handles input and advances the simulation timer.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.session.Close()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.session.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.session.Clear()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if err := click(g.session, g.painter.Layout, g.panel, mx, my); err != nil {
			g.session.Close()
			return err
		}
	}

	g.sched.Pump()
	return nil
}

// Draw renders the grid and the control panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.painter.Blit(screen, g.canvas, margin, margin, g.canvas.TakeDirty())
	_, gh := g.painter.Size()
	g.chrome.Draw(screen, gh+2*margin, g.session.Running(), g.canvas.Live(), g.canvas.Generation())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
