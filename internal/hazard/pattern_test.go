package hazard

import (
	"math/rand"
	"testing"

	"github.com/jrichson/time-mission-magma-mayhem/internal/grid"
)

var allKinds = []Kind{
	KindHorizontalSweep, KindVerticalSweep, KindWave, KindRing,
	KindSnake, KindBlinker, KindDiagonalSweep, KindRowMarch,
	KindColumnMarch, KindRotatingCross, KindSpiral, KindGrayPulse,
	KindCheckerPulse, KindRollingX,
}

func TestEvaluateStaysInBounds(t *testing.T) {
	g := grid.New(12, 16)

	for _, kind := range allKinds {
		rng := rand.New(rand.NewSource(42))
		p := New(kind, Params{}, g, rng)
		dst := grid.NewSet()

		// Sweep an awkward spread of times, including ones far past any
		// modulo period.
		for _, now := range []int64{0, 1, 137, 900, 1500, 2999, 10000, 60000, 3600000} {
			dst.Clear()
			p.Evaluate(dst, now, 900)
			dst.Each(func(c grid.Coord) {
				if !g.InBounds(c) {
					t.Errorf("%s at t=%d produced out-of-bounds cell %v", kind, now, c)
				}
			})
		}
	}
}

func TestEvaluateIdempotentAtFixedTime(t *testing.T) {
	g := grid.New(12, 16)

	for _, kind := range allKinds {
		rng := rand.New(rand.NewSource(7))
		p := New(kind, Params{}, g, rng)

		// Warm up stateful kinds, then evaluate the same instant twice.
		warm := grid.NewSet()
		p.Evaluate(warm, 5000, 900)

		a := grid.NewSet()
		b := grid.NewSet()
		p.Evaluate(a, 7500, 900)
		p.Evaluate(b, 7500, 900)

		if a.Len() != b.Len() {
			t.Errorf("%s: repeat evaluation at same time changed cell count: %d vs %d",
				kind, a.Len(), b.Len())
			continue
		}
		a.Each(func(c grid.Coord) {
			if !b.Has(c) {
				t.Errorf("%s: repeat evaluation missing cell %v", kind, c)
			}
		})
	}
}

func TestCheckerPulsePhases(t *testing.T) {
	g := grid.New(12, 16)
	p := New(KindCheckerPulse, Params{IntervalMs: 1500}, g, rand.New(rand.NewSource(1)))

	dst := grid.NewSet()
	p.Evaluate(dst, 0, 900)
	if !dst.Has(grid.C(0, 0)) || !dst.Has(grid.C(2, 4)) {
		t.Error("at t=0 even-parity cells should be hazardous")
	}
	if dst.Has(grid.C(1, 0)) {
		t.Error("at t=0 odd-parity cells should be clear")
	}

	dst.Clear()
	p.Evaluate(dst, 1500, 900)
	if !dst.Has(grid.C(1, 0)) || !dst.Has(grid.C(0, 3)) {
		t.Error("at t=1500 odd-parity cells should be hazardous")
	}
	if dst.Has(grid.C(0, 0)) {
		t.Error("at t=1500 even-parity cells should be clear")
	}
}

func TestGrayPulseAllOrNothing(t *testing.T) {
	g := grid.New(12, 16)
	p := New(KindGrayPulse, Params{IntervalMs: 1800}, g, rand.New(rand.NewSource(1)))

	on := grid.NewSet()
	p.Evaluate(on, 900, 900) // sin(0.5*pi) > 0
	if on.Len() != 12*16 {
		t.Errorf("on-phase should cover the whole board, got %d cells", on.Len())
	}

	off := grid.NewSet()
	p.Evaluate(off, 2700, 900) // sin(1.5*pi) < 0
	if off.Len() != 0 {
		t.Errorf("off-phase should cover nothing, got %d cells", off.Len())
	}
}

func TestHorizontalSweepLeavesBoard(t *testing.T) {
	g := grid.New(12, 16)
	rng := rand.New(rand.NewSource(3))
	p := New(KindHorizontalSweep, Params{Width: 2}, g, rng)
	p.offsetMs = 0 // pin the phase for the assertion

	// The position runs modulo playableH+width, so for part of the cycle
	// the bar is entirely off the board.
	sawEmpty := false
	sawFull := false
	for now := int64(0); now < 16*900; now += 450 {
		dst := grid.NewSet()
		p.Evaluate(dst, now, 900)
		switch dst.Len() {
		case 0:
			sawEmpty = true
		case 2 * g.W:
			sawFull = true
		}
	}
	if !sawFull {
		t.Error("sweep never showed its full two-row bar")
	}
	if !sawEmpty {
		t.Error("sweep never fully exited the board")
	}
}

func TestSweepsAvoidStartZone(t *testing.T) {
	g := grid.New(12, 16)
	sweepers := []Kind{
		KindHorizontalSweep, KindVerticalSweep, KindDiagonalSweep,
		KindRowMarch, KindColumnMarch, KindRollingX, KindWave, KindSnake,
	}

	for _, kind := range sweepers {
		rng := rand.New(rand.NewSource(99))
		p := New(kind, Params{}, g, rng)
		for now := int64(0); now < 30000; now += 250 {
			dst := grid.NewSet()
			p.Evaluate(dst, now, 900)
			dst.Each(func(c grid.Coord) {
				if c.Z >= g.PlayableH() {
					t.Fatalf("%s at t=%d entered start zone at %v", kind, now, c)
				}
			})
		}
	}
}

func TestSnakeBodyLengthAndAdjacency(t *testing.T) {
	g := grid.New(12, 16)
	rng := rand.New(rand.NewSource(11))
	p := New(KindSnake, Params{Width: 5}, g, rng)

	dst := grid.NewSet()
	p.Evaluate(dst, 60000, 900)

	if len(p.snakeBody) != 5 {
		t.Errorf("snake body length = %d, want 5", len(p.snakeBody))
	}
	for i := 1; i < len(p.snakeBody); i++ {
		if p.snakeBody[i-1].Manhattan(p.snakeBody[i]) != 1 {
			t.Errorf("body segments %d and %d are not adjacent: %v %v",
				i-1, i, p.snakeBody[i-1], p.snakeBody[i])
		}
	}
}

func TestSnakeDeterministicPerSeed(t *testing.T) {
	g := grid.New(12, 16)
	p1 := New(KindSnake, Params{}, g, rand.New(rand.NewSource(5)))
	p2 := New(KindSnake, Params{}, g, rand.New(rand.NewSource(5)))

	for now := int64(0); now <= 30000; now += 500 {
		a := grid.NewSet()
		b := grid.NewSet()
		p1.Evaluate(a, now, 900)
		p2.Evaluate(b, now, 900)
		if p1.snakeHead != p2.snakeHead {
			t.Fatalf("snake heads diverged at t=%d: %v vs %v", now, p1.snakeHead, p2.snakeHead)
		}
	}
}

func TestBlinkerResamplesBetweenOnPhases(t *testing.T) {
	g := grid.New(12, 16)
	rng := rand.New(rand.NewSource(21))
	p := New(KindBlinker, Params{Width: 8, IntervalMs: 1000}, g, rng)
	p.offsetMs = 0

	first := grid.NewSet()
	p.Evaluate(first, 0, 900)
	if first.Len() != 8 {
		t.Fatalf("on-phase cell count = %d, want 8", first.Len())
	}

	dark := grid.NewSet()
	p.Evaluate(dark, 1000, 900)
	if dark.Len() != 0 {
		t.Errorf("off-phase cell count = %d, want 0", dark.Len())
	}

	second := grid.NewSet()
	p.Evaluate(second, 2000, 900)
	if second.Len() != 8 {
		t.Fatalf("second on-phase cell count = %d, want 8", second.Len())
	}

	same := true
	first.Each(func(c grid.Coord) {
		if !second.Has(c) {
			same = false
		}
	})
	if same {
		t.Error("blinker should scatter fresh cells for each on-phase")
	}
}

func TestSpeedScalesWithBase(t *testing.T) {
	g := grid.New(12, 16)
	slow := New(KindVerticalSweep, Params{Width: 1}, g, rand.New(rand.NewSource(8)))
	fast := New(KindVerticalSweep, Params{Width: 1}, g, rand.New(rand.NewSource(8)))
	slow.offsetMs = 0
	fast.offsetMs = 0

	// A level-11 base speed (900 - 10*40 = 500ms) must put the bar
	// further along than the level-1 base at the same wall time.
	posAt := func(p *Pattern, base float64) int {
		dst := grid.NewSet()
		p.Evaluate(dst, 1800, base)
		max := -1
		dst.Each(func(c grid.Coord) {
			if c.X > max {
				max = c.X
			}
		})
		return max
	}

	if posAt(fast, 500) <= posAt(slow, 900) {
		t.Error("lower base speed should move the sweep further at equal time")
	}
}
