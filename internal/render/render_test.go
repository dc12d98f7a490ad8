package render

import (
	"image/color"
	"testing"

	"gh-life/internal/core"
)

func TestQueuePreservesOrder(t *testing.T) {
	q := NewQueue()
	q.CellChanged(1, 2, true)
	q.GenerationChanged(3)
	q.LiveCountChanged(4)

	events, closed := q.Drain()
	if closed {
		t.Fatal("queue should be open")
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, expected 3", len(events))
	}
	if e, ok := events[0].(CellChanged); !ok || e.Cell != (core.Cell{X: 1, Y: 2}) || !e.Alive {
		t.Fatalf("unexpected first event %#v", events[0])
	}
	if e, ok := events[1].(GenerationChanged); !ok || e.Generation != 3 {
		t.Fatalf("unexpected second event %#v", events[1])
	}
	if e, ok := events[2].(LiveCountChanged); !ok || e.Live != 4 {
		t.Fatalf("unexpected third event %#v", events[2])
	}
	if more, _ := q.Drain(); more != nil {
		t.Fatal("drain should empty the queue")
	}
}

func TestQueueNotifyCoalesces(t *testing.T) {
	q := NewQueue()
	q.GenerationChanged(1)
	q.GenerationChanged(2)
	select {
	case <-q.Notify():
	default:
		t.Fatal("expected a notification")
	}
	select {
	case <-q.Notify():
		t.Fatal("bursts should produce a single notification")
	default:
	}
}

func TestQueueDropsPushesAfterClose(t *testing.T) {
	q := NewQueue()
	q.LiveCountChanged(1)
	q.Close()
	q.LiveCountChanged(2)
	q.Close()

	events, closed := q.Drain()
	if !closed {
		t.Fatal("drained queue should report closed")
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, expected 1 (pushes after close are dropped)", len(events))
	}
}

func TestQueueDrainIntoCanvas(t *testing.T) {
	q := NewQueue()
	c := NewCanvas(3, 3, 0, 1)
	c.TakeDirty()

	sink := core.Sinks{q}
	sink.CellChanged(0, 0, true)
	sink.GenerationChanged(5)
	sink.LiveCountChanged(1)

	if n := q.DrainInto(c); n != 3 {
		t.Fatalf("delivered %d events, expected 3", n)
	}
	if c.Shade(0, 0) == 0 || c.Generation() != 5 || c.Live() != 1 {
		t.Fatalf("canvas shade=%d gen=%d live=%d", c.Shade(0, 0), c.Generation(), c.Live())
	}
	if !c.TakeDirty() || c.TakeDirty() {
		t.Fatal("dirty flag should be set once and then consumed")
	}
}

func TestCanvasHuesStayCosmetic(t *testing.T) {
	c := NewCanvas(4, 1, len(ActiveHex), 7)
	seen := map[uint8]bool{}
	for i := 0; i < 200; i++ {
		c.CellChanged(i%4, 0, true)
		s := c.Shade(i%4, 0)
		if s < 1 || int(s) > len(ActiveHex) {
			t.Fatalf("alive shade %d out of range", s)
		}
		seen[s] = true
	}
	if len(seen) < 2 {
		t.Fatal("alive cells should use several hues")
	}

	c.CellChanged(2, 0, false)
	if c.Shade(2, 0) != 0 {
		t.Fatal("dead cells always use shade 0")
	}
	c.CellChanged(9, 9, true)
}

func TestCanvasLoad(t *testing.T) {
	g := core.NewGrid(3, 2)
	_ = g.Set(1, 1, true)
	c := NewCanvas(3, 2, 0, 1)
	c.Load(g)
	if c.Live() != 1 || c.Shade(1, 1) == 0 || c.Shade(0, 0) != 0 {
		t.Fatalf("canvas did not load grid: live=%d shades=%v", c.Live(), c.Shades())
	}
}

func TestFillBlockRGBAGaps(t *testing.T) {
	shades := []uint8{1, 0}
	palette := []color.RGBA{{R: 10, A: 255}, {R: 200, A: 255}}
	bg := color.RGBA{B: 99, A: 255}
	l := NewLayout(2, 1, 2, 1)
	w, h := l.Size()
	if w != 5 || h != 2 {
		t.Fatalf("layout size %dx%d, expected 5x2", w, h)
	}
	buf := make([]byte, 4*w*h)
	fillBlockRGBA(buf, shades, l.Cols, l.Cell, l.Gap, palette, bg)

	px := func(x, y int) color.RGBA {
		b := (y*w + x) * 4
		return color.RGBA{R: buf[b], G: buf[b+1], B: buf[b+2], A: buf[b+3]}
	}
	if px(0, 0).R != 200 || px(1, 1).R != 200 {
		t.Fatal("first cell should be alive")
	}
	if px(2, 0).B != 99 {
		t.Fatal("gap column should use the background")
	}
	if px(3, 0).R != 10 || px(4, 1).R != 10 {
		t.Fatal("second cell should be dead")
	}
}

func TestLayoutCellAt(t *testing.T) {
	l := NewLayout(3, core.CalendarDepth, 10, 2)
	cases := []struct {
		px, py int
		x, y   int
		ok     bool
	}{
		{0, 0, 0, 0, true},
		{9, 9, 0, 0, true},
		{10, 0, 0, 0, false},
		{12, 24, 1, 2, true},
		{33, 81, 2, 6, true},
		{36, 0, 0, 0, false},
		{0, 84, 0, 0, false},
		{-1, 5, 0, 0, false},
	}
	for _, tc := range cases {
		x, y, ok := l.CellAt(tc.px, tc.py)
		if ok != tc.ok || (ok && (x != tc.x || y != tc.y)) {
			t.Fatalf("CellAt(%d,%d) = (%d,%d,%v), expected (%d,%d,%v)", tc.px, tc.py, x, y, ok, tc.x, tc.y, tc.ok)
		}
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#1e6823")
	if err != nil {
		t.Fatal(err)
	}
	if c != (color.RGBA{R: 0x1e, G: 0x68, B: 0x23, A: 255}) {
		t.Fatalf("unexpected color %v", c)
	}
	for _, bad := range []string{"#fff", "zzzzzz", ""} {
		if _, err := ParseHex(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
	if len(CalendarPalette) != 1+len(ActiveHex) {
		t.Fatalf("palette has %d entries", len(CalendarPalette))
	}
}

func TestFormatGrid(t *testing.T) {
	g := core.NewGrid(3, 2)
	_ = g.Set(0, 0, true)
	_ = g.Set(2, 1, true)
	if got := FormatGrid(g); got != "#..\n..#\n" {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestFlipCounter(t *testing.T) {
	var f FlipCounter
	sink := core.Sinks{&f, core.Discard}
	sink.CellChanged(0, 0, true)
	sink.CellChanged(1, 0, false)
	sink.GenerationChanged(1)
	if f.Flips != 2 {
		t.Fatalf("flips=%d, expected 2", f.Flips)
	}
	f.Reset()
	if f.Flips != 0 {
		t.Fatal("reset should zero the counter")
	}
}
