package life

import (
	"testing"

	"gh-life/internal/core"
)

func gridWith(w, h int, alive ...[2]int) *core.Grid {
	g := core.NewGrid(w, h)
	for _, c := range alive {
		if err := g.Set(c[0], c[1], true); err != nil {
			panic(err)
		}
	}
	return g
}

func expectAlive(t *testing.T, g *core.Grid, expects map[[2]int]bool) {
	t.Helper()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			alive := g.Alive(x, y)
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	start := gridWith(5, 5, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})

	next, live := Advance(start)
	if live != 3 {
		t.Fatalf("live=%d, expected 3", live)
	}
	expectAlive(t, next, map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	})

	back, _ := Advance(next)
	if !back.Equal(start) {
		t.Fatal("blinker should return to its start after two generations")
	}
}

func TestVerticalBlinkerOnTightGrid(t *testing.T) {
	g := gridWith(3, 3, [2]int{1, 0}, [2]int{1, 1}, [2]int{1, 2})
	next, live := Advance(g)
	if live != 3 {
		t.Fatalf("live=%d, expected 3", live)
	}
	expectAlive(t, next, map[[2]int]bool{
		{0, 1}: true,
		{1, 1}: true,
		{2, 1}: true,
	})
}

func TestAllDeadStaysDead(t *testing.T) {
	for _, size := range []core.Size{{W: 1, H: 1}, {W: 3, H: 3}, {W: 53, H: core.CalendarDepth}} {
		g := core.NewGrid(size.W, size.H)
		next, live := Advance(g)
		if live != 0 || next.CountLive() != 0 {
			t.Fatalf("%dx%d: spontaneous life appeared", size.W, size.H)
		}
	}
}

func TestLonelyCellsDie(t *testing.T) {
	single := gridWith(5, 5, [2]int{2, 2})
	if _, live := Advance(single); live != 0 {
		t.Fatalf("isolated cell survived, live=%d", live)
	}

	pair := gridWith(5, 5, [2]int{2, 2}, [2]int{3, 2})
	if _, live := Advance(pair); live != 0 {
		t.Fatalf("cells with one neighbor survived, live=%d", live)
	}
}

func TestBlockIsStillLife(t *testing.T) {
	block := gridWith(6, 6, [2]int{2, 2}, [2]int{3, 2}, [2]int{2, 3}, [2]int{3, 3})
	g := block
	for i := 0; i < 5; i++ {
		var live int
		g, live = Advance(g)
		if live != 4 {
			t.Fatalf("generation %d live=%d, expected 4", i+1, live)
		}
		if !g.Equal(block) {
			t.Fatalf("block changed at generation %d", i+1)
		}
	}
}

func TestBlockInCornerIsStillLife(t *testing.T) {
	block := gridWith(4, 4, [2]int{0, 0}, [2]int{1, 0}, [2]int{0, 1}, [2]int{1, 1})
	next, _ := Advance(block)
	if !next.Equal(block) {
		t.Fatal("corner block should be stable without wraparound")
	}
}

func TestOvercrowdingKills(t *testing.T) {
	// Center has four neighbors and must die; the plus arms each see three.
	g := gridWith(5, 5, [2]int{2, 2}, [2]int{1, 2}, [2]int{3, 2}, [2]int{2, 1}, [2]int{2, 3})
	next, _ := Advance(g)
	if next.Alive(2, 2) {
		t.Fatal("cell with four neighbors should die")
	}
	if !next.Alive(1, 1) || !next.Alive(3, 3) {
		t.Fatal("dead cells with three neighbors should be born")
	}
}

func TestNeighborCountCorners(t *testing.T) {
	full := core.NewGrid(4, core.CalendarDepth)
	for i := range full.Cells() {
		full.Cells()[i] = 1
	}
	corners := [][2]int{{0, 0}, {3, 0}, {0, 6}, {3, 6}}
	for _, c := range corners {
		if n := NeighborCount(full, c[0], c[1]); n != 3 {
			t.Fatalf("corner (%d,%d) count=%d, expected 3", c[0], c[1], n)
		}
	}
	if n := NeighborCount(full, 0, 3); n != 5 {
		t.Fatalf("edge count=%d, expected 5", n)
	}
	if n := NeighborCount(full, 1, 1); n != 8 {
		t.Fatalf("interior count=%d, expected 8", n)
	}

	// A 1x1 grid has no in-bounds neighbors at all.
	if n := NeighborCount(gridWith(1, 1, [2]int{0, 0}), 0, 0); n != 0 {
		t.Fatalf("1x1 count=%d, expected 0", n)
	}
}

func TestNeighborCountIgnoresSelf(t *testing.T) {
	g := gridWith(3, 3, [2]int{1, 1})
	if n := NeighborCount(g, 1, 1); n != 0 {
		t.Fatalf("count=%d, cell must not count itself", n)
	}
	if n := NeighborCount(g, 0, 0); n != 1 {
		t.Fatalf("count=%d, expected 1", n)
	}
}

// An in-place sweep would let (0,0) dying change (1,1)'s count; the
// snapshot sweep must match a per-cell evaluation against the prior grid.
func TestAdvanceUsesPriorGeneration(t *testing.T) {
	g := gridWith(4, 4, [2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}, [2]int{0, 1}, [2]int{2, 2})
	prior := g.Clone()

	next, _ := Advance(g)
	if !g.Equal(prior) {
		t.Fatal("Advance must not modify its input")
	}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			want := Next(prior.Alive(x, y), NeighborCount(prior, x, y))
			if next.Alive(x, y) != want {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, next.Alive(x, y), want)
			}
		}
	}
}

func TestAdvanceIntoReportsFlips(t *testing.T) {
	src := gridWith(3, 3, [2]int{1, 0}, [2]int{1, 1}, [2]int{1, 2})
	dst := core.NewGrid(3, 3)

	flips := map[[2]int]bool{}
	live := AdvanceInto(dst, src, func(x, y int, alive bool) {
		if _, dup := flips[[2]int{x, y}]; dup {
			t.Fatalf("cell (%d,%d) reported twice", x, y)
		}
		flips[[2]int{x, y}] = alive
	})
	if live != 3 {
		t.Fatalf("live=%d, expected 3", live)
	}
	want := map[[2]int]bool{
		{1, 0}: false,
		{1, 2}: false,
		{0, 1}: true,
		{2, 1}: true,
	}
	if len(flips) != len(want) {
		t.Fatalf("got %d flips, expected %d: %v", len(flips), len(want), flips)
	}
	for c, alive := range want {
		if got, ok := flips[c]; !ok || got != alive {
			t.Fatalf("flip at %v = %v (reported %v), expected %v", c, got, ok, alive)
		}
	}
}

func TestAdvanceIntoRejectsAliasedBuffers(t *testing.T) {
	g := core.NewGrid(2, 2)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for aliased buffers")
		}
	}()
	AdvanceInto(g, g, nil)
}
