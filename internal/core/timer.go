package core

import (
	"sync"
	"time"
)

// FixedStep helps run simulation updates at a steady rate from a frame loop.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedInterval constructs a FixedStep that fires once per interval. The
// first interval has to elapse before ShouldStepAt reports true.
func NewFixedInterval(d time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetInterval(d)
	return fs
}

// SetInterval changes the step length directly.
func (f *FixedStep) SetInterval(d time.Duration) {
	if d <= 0 {
		d = time.Second / 60
	}
	f.step = d
}

// ShouldStepAt reports whether a full interval has accumulated by now.
func (f *FixedStep) ShouldStepAt(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// Task is a handle to a recurring callback created by a Scheduler.
type Task interface {
	// Stop prevents future callbacks. A callback already running is not
	// interrupted, so owners must tolerate one late call.
	Stop()
}

// Scheduler runs a callback repeatedly at a fixed interval.
type Scheduler interface {
	Every(d time.Duration, fn func()) Task
}

// TickerScheduler runs each task on its own goroutine driven by a time.Ticker.
type TickerScheduler struct{}

// Every starts a goroutine that calls fn once per interval until stopped.
func (TickerScheduler) Every(d time.Duration, fn func()) Task {
	t := &tickerTask{done: make(chan struct{})}
	ticker := time.NewTicker(d)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-t.done:
				return
			case <-ticker.C:
				select {
				case <-t.done:
					return
				default:
				}
				fn()
			}
		}
	}()
	return t
}

type tickerTask struct {
	once sync.Once
	done chan struct{}
}

func (t *tickerTask) Stop() {
	t.once.Do(func() { close(t.done) })
}

// FrameScheduler runs tasks from a host frame loop. Pump must be called from
// the same goroutine that owns the tasks' targets, which keeps every callback
// on one thread of control.
type FrameScheduler struct {
	tasks []*frameTask
	now   func() time.Time
}

// NewFrameScheduler returns a scheduler reading the wall clock.
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{now: time.Now}
}

// Every registers fn to run whenever its interval has accumulated.
func (s *FrameScheduler) Every(d time.Duration, fn func()) Task {
	t := &frameTask{step: NewFixedInterval(d), fn: fn}
	t.step.ShouldStepAt(s.now())
	s.tasks = append(s.tasks, t)
	return t
}

// Pump fires at most one callback per live task and drops stopped tasks.
func (s *FrameScheduler) Pump() {
	now := s.now()
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if t.stopped {
			continue
		}
		live = append(live, t)
	}
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live
	for _, t := range live {
		if !t.stopped && t.step.ShouldStepAt(now) {
			t.fn()
		}
	}
}

// Len reports the number of tasks that have not been stopped.
func (s *FrameScheduler) Len() int {
	n := 0
	for _, t := range s.tasks {
		if !t.stopped {
			n++
		}
	}
	return n
}

type frameTask struct {
	step    *FixedStep
	fn      func()
	stopped bool
}

func (t *frameTask) Stop() { t.stopped = true }

// ManualScheduler records tasks and fires them only on request.
type ManualScheduler struct {
	mu    sync.Mutex
	tasks []*manualTask
}

// Every records the task; it never fires on its own.
func (m *ManualScheduler) Every(d time.Duration, fn func()) Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &manualTask{interval: d, fn: fn}
	m.tasks = append(m.tasks, t)
	return t
}

// Fire invokes every task that has not been stopped, in creation order, and
// returns how many ran.
func (m *ManualScheduler) Fire() int {
	m.mu.Lock()
	tasks := append([]*manualTask(nil), m.tasks...)
	m.mu.Unlock()
	n := 0
	for _, t := range tasks {
		if t.isStopped() {
			continue
		}
		t.fn()
		n++
	}
	return n
}

// FireAll invokes every task ever created, including stopped ones. It
// simulates callbacks that were already in flight when Stop was called.
func (m *ManualScheduler) FireAll() {
	m.mu.Lock()
	tasks := append([]*manualTask(nil), m.tasks...)
	m.mu.Unlock()
	for _, t := range tasks {
		t.fn()
	}
}

// Active reports the number of tasks that have not been stopped.
func (m *ManualScheduler) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.tasks {
		if !t.isStopped() {
			n++
		}
	}
	return n
}

// Intervals returns the requested interval of every recorded task.
func (m *ManualScheduler) Intervals() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]time.Duration, len(m.tasks))
	for i, t := range m.tasks {
		out[i] = t.interval
	}
	return out
}

type manualTask struct {
	mu       sync.Mutex
	interval time.Duration
	fn       func()
	stopped  bool
}

func (t *manualTask) Stop() {
	t.mu.Lock()
	t.stopped = true
	t.mu.Unlock()
}

func (t *manualTask) isStopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}
