// Package term runs a session in a terminal using tcell.
package term

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gh-life/internal/render"
	"gh-life/internal/sim"
	"gh-life/internal/ui"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

const cellWidth = 2

var errQuit = errors.New("quit")

// Host draws a session on a tcell screen and feeds keyboard and mouse input
// back into it. Session events arrive through a Queue and are applied to the
// canvas on the render goroutine.
type Host struct {
	screen  tcell.Screen
	session *sim.Session
	queue   *render.Queue
	canvas  *render.Canvas
	styles  []tcell.Style

	finiOnce    sync.Once
	lastButtons tcell.ButtonMask
}

// New builds a host. queue must be the session's sink.
func New(screen tcell.Screen, session *sim.Session, queue *render.Queue, canvas *render.Canvas) *Host {
	h := &Host{screen: screen, session: session, queue: queue, canvas: canvas}
	for _, c := range render.CalendarPalette {
		bg := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
		h.styles = append(h.styles, tcell.StyleDefault.Background(bg))
	}
	return h
}

// Run draws and processes input until ctx is done or the user quits. The
// screen must be initialized; Run finalizes it before returning.
func (h *Host) Run(ctx context.Context) error {
	defer h.fini()
	h.screen.EnableMouse()
	h.canvas.Load(h.session.Snapshot())
	h.draw()

	g, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event)

	g.Go(func() error {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		// PollEvent only returns once the screen is finalized.
		defer h.fini()
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev := <-events:
				if err := h.handle(ev); err != nil {
					return err
				}
				h.flush()
			case <-h.queue.Notify():
				h.flush()
			}
		}
	})

	err := g.Wait()
	h.session.Close()
	h.queue.Close()
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

func (h *Host) fini() {
	h.finiOnce.Do(h.screen.Fini)
}

func (h *Host) flush() {
	h.queue.DrainInto(h.canvas)
	if h.canvas.TakeDirty() {
		h.draw()
	}
}

func (h *Host) handle(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.key(ev)
	case *tcell.EventMouse:
		return h.mouse(ev)
	case *tcell.EventResize:
		h.screen.Sync()
		h.draw()
	}
	return nil
}

func (h *Host) key(ev *tcell.EventKey) error {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return errQuit
	case tcell.KeyEnter:
		h.session.Toggle()
		h.draw()
		return nil
	case tcell.KeyRune:
	default:
		return nil
	}
	switch ev.Rune() {
	case 'q', 'Q':
		return errQuit
	case ' ', 'p':
		h.session.Toggle()
		h.draw()
	case 'n', 's':
		h.session.Step()
	case 'c':
		h.session.Clear()
	}
	return nil
}

// mouse toggles the cell under the cursor on button press; drags are ignored.
func (h *Host) mouse(ev *tcell.EventMouse) error {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && h.lastButtons&tcell.Button1 == 0
	h.lastButtons = buttons
	if !pressed {
		return nil
	}
	sx, sy := ev.Position()
	size := h.canvas.Size()
	x, y := sx/cellWidth, sy
	if x >= size.W || y >= size.H {
		return nil
	}
	if _, err := h.session.ToggleCell(x, y); err != nil {
		return fmt.Errorf("toggle cell: %w", err)
	}
	return nil
}

func (h *Host) draw() {
	h.screen.Clear()
	size := h.canvas.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			style := h.styles[0]
			if s := int(h.canvas.Shade(x, y)); s < len(h.styles) {
				style = h.styles[s]
			}
			for i := 0; i < cellWidth; i++ {
				h.screen.SetContent(x*cellWidth+i, y, ' ', nil, style)
			}
		}
	}

	state := "stopped"
	if h.session.Running() {
		state = "running"
	}
	lines := ui.StatusLines(h.canvas.Live(), h.canvas.Generation())
	status := fmt.Sprintf("%s   %s   [%s]", lines[0], lines[1], state)
	h.text(0, size.H+1, status)
	h.text(0, size.H+2, "space play/pause  n step  c clear  click toggle  q quit")
	h.screen.Show()
}

func (h *Host) text(x, y int, s string) {
	for i, r := range s {
		h.screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}
