package render

import (
	"sync"

	"gh-life/internal/core"
)

// Event is a single state change emitted by a session.
type Event interface {
	// Deliver forwards the event to sink.
	Deliver(sink core.Sink)
}

// CellChanged reports a cell flip.
type CellChanged struct {
	Cell  core.Cell
	Alive bool
}

func (e CellChanged) Deliver(sink core.Sink) { sink.CellChanged(e.Cell.X, e.Cell.Y, e.Alive) }

// GenerationChanged reports a completed sweep or a reset counter.
type GenerationChanged struct {
	Generation int
}

func (e GenerationChanged) Deliver(sink core.Sink) { sink.GenerationChanged(e.Generation) }

// LiveCountChanged reports the live cell count after a mutation.
type LiveCountChanged struct {
	Live int
}

func (e LiveCountChanged) Deliver(sink core.Sink) { sink.LiveCountChanged(e.Live) }

// Queue is a threadsafe FIFO sink. Sessions push into it from any goroutine
// and a host drains it on its render goroutine.
type Queue struct {
	mu     sync.Mutex
	closed bool
	events []Event
	notify chan struct{}
}

// NewQueue constructs an empty Queue.
func NewQueue() *Queue {
	return &Queue{notify: make(chan struct{}, 1)}
}

func (q *Queue) CellChanged(x, y int, alive bool) {
	q.Push(CellChanged{Cell: core.Cell{X: x, Y: y}, Alive: alive})
}

func (q *Queue) GenerationChanged(n int) { q.Push(GenerationChanged{Generation: n}) }

func (q *Queue) LiveCountChanged(n int) { q.Push(LiveCountChanged{Live: n}) }

// Push appends a new event to the queue.
func (q *Queue) Push(event Event) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.events = append(q.events, event)
	select {
	case q.notify <- struct{}{}:
	default:
	}
}

// Notify returns a channel that receives a value whenever events are pushed.
// Bursts are coalesced into a single notification.
func (q *Queue) Notify() <-chan struct{} { return q.notify }

// Drain removes and returns all queued events without blocking.
// The boolean indicates whether the queue is closed and now empty.
func (q *Queue) Drain() ([]Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return nil, q.closed
	}
	events := append([]Event(nil), q.events...)
	q.events = q.events[:0]
	return events, q.closed
}

// DrainInto delivers every queued event to sink and returns how many there
// were.
func (q *Queue) DrainInto(sink core.Sink) int {
	events, _ := q.Drain()
	for _, e := range events {
		e.Deliver(sink)
	}
	return len(events)
}

// Close marks the queue as closed. Later pushes are dropped.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
}
