package core

import (
	"errors"
	"fmt"
)

// CalendarDepth is the fixed grid height: one row per weekday.
const CalendarDepth = 7

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

// Snapshot is an initial grid description supplied by an input source.
// Coordinates missing from Cells start dead.
type Snapshot struct {
	Size  Size
	Cells map[Cell]bool
}

// NewSnapshot returns an empty snapshot of the given size.
func NewSnapshot(w, h int) Snapshot {
	return Snapshot{Size: Size{W: w, H: h}, Cells: map[Cell]bool{}}
}

// Live returns the number of alive entries in the snapshot.
func (s Snapshot) Live() int {
	n := 0
	for _, alive := range s.Cells {
		if alive {
			n++
		}
	}
	return n
}

// Grid materializes the snapshot. Entries outside Size yield an
// OutOfBoundsError.
func (s Snapshot) Grid() (*Grid, error) {
	g := NewGrid(s.Size.W, s.Size.H)
	for c, alive := range s.Cells {
		if err := g.Set(c.X, c.Y, alive); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// ErrOutOfBounds is matched by every OutOfBoundsError.
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// OutOfBoundsError reports a coordinate access outside the grid extents.
type OutOfBoundsError struct {
	X, Y int
	Size Size
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("cell (%d,%d) outside %dx%d grid", e.X, e.Y, e.Size.W, e.Size.H)
}

// Is makes errors.Is(err, ErrOutOfBounds) succeed.
func (e *OutOfBoundsError) Is(target error) bool { return target == ErrOutOfBounds }

// Sink consumes state changes emitted by a simulation session. Calls arrive
// serialized; implementations must not call back into the session.
type Sink interface {
	CellChanged(x, y int, alive bool)
	GenerationChanged(n int)
	LiveCountChanged(n int)
}

// Sinks fans events out to every contained sink in order.
type Sinks []Sink

func (s Sinks) CellChanged(x, y int, alive bool) {
	for _, sink := range s {
		sink.CellChanged(x, y, alive)
	}
}

func (s Sinks) GenerationChanged(n int) {
	for _, sink := range s {
		sink.GenerationChanged(n)
	}
}

func (s Sinks) LiveCountChanged(n int) {
	for _, sink := range s {
		sink.LiveCountChanged(n)
	}
}

// Discard is a Sink that drops every event.
var Discard Sink = discard{}

type discard struct{}

func (discard) CellChanged(int, int, bool) {}
func (discard) GenerationChanged(int)      {}
func (discard) LiveCountChanged(int)       {}
