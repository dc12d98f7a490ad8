// Package sim drives a Game of Life grid through play, pause, step and clear
// commands.
package sim

import (
	"sync"
	"time"

	"gh-life/internal/core"
	"gh-life/internal/life"
)

// DefaultInterval is the delay between automatic sweeps.
const DefaultInterval = 150 * time.Millisecond

// State is the controller state.
type State int

const (
	// Stopped means no timer drives sweeps.
	Stopped State = iota
	// Running means a scheduled task sweeps the grid every interval.
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// ClearPolicy decides what Clear does to a running simulation.
type ClearPolicy int

const (
	// ContinueOnClear keeps the timer running; sweeps resume on the empty grid.
	ContinueOnClear ClearPolicy = iota
	// StopOnClear pauses the simulation before clearing.
	StopOnClear
)

// Config tunes a Session.
type Config struct {
	Interval    time.Duration
	ClearPolicy ClearPolicy
	Scheduler   core.Scheduler
	Sink        core.Sink
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Interval: DefaultInterval, Scheduler: core.TickerScheduler{}}
}

// Session owns a grid, its generation counter and the play state. All
// methods are safe for concurrent use; every call, including timer
// callbacks, is serialized so sweeps commit as a unit.
type Session struct {
	mu sync.Mutex

	size       core.Size
	cur, nxt   *core.Grid
	generation int
	live       int

	policy ClearPolicy
	run    State
	task   core.Task
	epoch  uint64
	flips  []core.Cell

	interval time.Duration
	sched    core.Scheduler
	sink     core.Sink
}

// New builds a session seeded from snap. It returns an OutOfBoundsError when
// the snapshot names cells outside its own size.
func New(snap core.Snapshot, cfg Config) (*Session, error) {
	g, err := snap.Grid()
	if err != nil {
		return nil, err
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = core.TickerScheduler{}
	}
	if cfg.Sink == nil {
		cfg.Sink = core.Discard
	}
	return &Session{
		size:     g.Size(),
		cur:      g,
		nxt:      core.NewGrid(g.W, g.H),
		live:     g.CountLive(),
		policy:   cfg.ClearPolicy,
		interval: cfg.Interval,
		sched:    cfg.Scheduler,
		sink:     cfg.Sink,
	}, nil
}

// Play starts automatic sweeps. It reports false when already running.
func (s *Session) Play() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playLocked()
}

// Pause stops automatic sweeps. It reports false when already stopped.
func (s *Session) Pause() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pauseLocked()
}

// Toggle flips between Running and Stopped and returns true if the session
// is now running.
func (s *Session) Toggle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.run == Running {
		s.pauseLocked()
		return false
	}
	s.playLocked()
	return true
}

// Step performs exactly one sweep. It is rejected while running so a manual
// sweep never interleaves with the timer.
func (s *Session) Step() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.run == Running {
		return false
	}
	s.sweepLocked()
	return true
}

// Clear kills every cell and resets the generation counter. Whether a
// running timer keeps going depends on the configured ClearPolicy.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.policy == StopOnClear {
		s.pauseLocked()
	}
	w, h := s.cur.W, s.cur.H
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if s.cur.Alive(x, y) {
				s.sink.CellChanged(x, y, false)
			}
		}
	}
	s.cur.Clear()
	s.generation = 0
	s.live = 0
	s.sink.GenerationChanged(0)
	s.sink.LiveCountChanged(0)
}

// ToggleCell flips a single cell and returns its new state.
func (s *Session) ToggleCell(x, y int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	alive, err := s.cur.Toggle(x, y)
	if err != nil {
		return false, err
	}
	s.live = s.cur.CountLive()
	s.sink.CellChanged(x, y, alive)
	s.sink.LiveCountChanged(s.live)
	return alive, nil
}

// Close cancels any scheduled sweeps and leaves the session stopped.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pauseLocked()
}

// Cell returns the state of a single cell.
func (s *Session) Cell(x, y int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur.Get(x, y)
}

// Generation returns the number of sweeps since start or the last Clear.
func (s *Session) Generation() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// LiveCount returns the number of alive cells.
func (s *Session) LiveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.live
}

// State returns the current controller state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.run
}

// Running reports whether automatic sweeps are active.
func (s *Session) Running() bool { return s.State() == Running }

// Size returns the grid dimensions, which are fixed at construction.
func (s *Session) Size() core.Size { return s.size }

// Snapshot returns a copy of the current grid.
func (s *Session) Snapshot() *core.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur.Clone()
}

func (s *Session) playLocked() bool {
	if s.run == Running {
		return false
	}
	if s.task != nil {
		s.task.Stop()
	}
	s.epoch++
	epoch := s.epoch
	s.run = Running
	s.task = s.sched.Every(s.interval, func() { s.tick(epoch) })
	return true
}

func (s *Session) pauseLocked() bool {
	if s.run != Running {
		return false
	}
	s.run = Stopped
	s.epoch++
	if s.task != nil {
		s.task.Stop()
		s.task = nil
	}
	return true
}

func (s *Session) tick(epoch uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.run != Running || epoch != s.epoch {
		return
	}
	s.sweepLocked()
}

func (s *Session) sweepLocked() {
	s.flips = s.flips[:0]
	s.live = life.AdvanceInto(s.nxt, s.cur, func(x, y int, _ bool) {
		s.flips = append(s.flips, core.Cell{X: x, Y: y})
	})
	s.cur, s.nxt = s.nxt, s.cur
	s.generation++
	for _, c := range s.flips {
		s.sink.CellChanged(c.X, c.Y, s.cur.Alive(c.X, c.Y))
	}
	s.sink.GenerationChanged(s.generation)
	s.sink.LiveCountChanged(s.live)
}
