package hazard

import (
	"math/rand"

	"github.com/jrichson/time-mission-magma-mayhem/internal/grid"
)

// Params carries the tuning knobs a pattern instance needs. Zero values
// are replaced with per-kind defaults in New.
type Params struct {
	Speed      float64 // multiplier on the level base speed
	Width      int     // bar thickness, arm length, body length, or cell count
	IntervalMs int64   // cadence for the pulse and blink kinds
	Reverse    bool    // flips the traversal direction of sweeps and marches
}

// Pattern is a single active hazard instance. Most kinds are a closed-form
// function of time; the snake and blinker keep the small state their motion
// needs between evaluations.
type Pattern struct {
	kind Kind
	Params
	g        grid.Grid
	offsetMs int64 // per-instance phase, fixed at creation

	// snake state
	snakeHead  grid.Coord
	snakeDir   grid.Coord
	snakeBody  []grid.Coord
	snakeSteps int64

	// blinker state
	blinkCells []grid.Coord
	blinkEpoch int64

	rng *rand.Rand
}

// New creates a pattern instance on the given grid. The rng seeds the
// one-time random phase offset and drives the snake/blinker state; it is
// not consulted by the closed-form kinds after creation.
func New(kind Kind, p Params, g grid.Grid, rng *rand.Rand) *Pattern {
	if p.Speed == 0 {
		p.Speed = 1.0
	}
	if p.Width == 0 {
		p.Width = defaultWidth(kind)
	}
	if p.IntervalMs == 0 {
		p.IntervalMs = 1500
	}

	pat := &Pattern{
		kind:   kind,
		Params: p,
		g:      g,
		rng:    rng,
	}

	switch kind {
	case KindHorizontalSweep, KindVerticalSweep, KindDiagonalSweep, KindRollingX:
		pat.offsetMs = rng.Int63n(5000)
	case KindBlinker:
		pat.offsetMs = rng.Int63n(5000)
		pat.blinkEpoch = -1
	case KindSnake:
		pat.snakeHead = g.Center()
		pat.snakeDir = cardinals[rng.Intn(len(cardinals))]
		pat.snakeBody = []grid.Coord{pat.snakeHead}
	}

	return pat
}

// Kind returns the pattern's motion law.
func (p *Pattern) Kind() Kind {
	return p.kind
}

func defaultWidth(kind Kind) int {
	switch kind {
	case KindHorizontalSweep, KindVerticalSweep:
		return 2
	case KindWave:
		return 3
	case KindSnake:
		return 5
	case KindBlinker:
		return 8
	case KindDiagonalSweep:
		return 3
	case KindRowMarch, KindColumnMarch:
		return 1
	case KindRotatingCross:
		return 6
	default:
		return 1
	}
}

var cardinals = []grid.Coord{{X: 1, Z: 0}, {X: -1, Z: 0}, {X: 0, Z: 1}, {X: 0, Z: -1}}

// Evaluate projects the pattern at nowMs into dst. baseSpeedMs is the
// level-scaled cadence every moving kind divides its clock by. Coordinates
// off the board are dropped before insertion; dst is never cleared here,
// the resolver owns that.
func (p *Pattern) Evaluate(dst *grid.Set, nowMs int64, baseSpeedMs float64) {
	switch p.kind {
	case KindHorizontalSweep:
		p.evalHorizontalSweep(dst, nowMs, baseSpeedMs)
	case KindVerticalSweep:
		p.evalVerticalSweep(dst, nowMs, baseSpeedMs)
	case KindWave:
		p.evalWave(dst, nowMs, baseSpeedMs)
	case KindRing:
		p.evalRing(dst, nowMs, baseSpeedMs)
	case KindSnake:
		p.evalSnake(dst, nowMs, baseSpeedMs)
	case KindBlinker:
		p.evalBlinker(dst, nowMs)
	case KindDiagonalSweep:
		p.evalDiagonalSweep(dst, nowMs, baseSpeedMs)
	case KindRowMarch:
		p.evalRowMarch(dst, nowMs, baseSpeedMs)
	case KindColumnMarch:
		p.evalColumnMarch(dst, nowMs, baseSpeedMs)
	case KindRotatingCross:
		p.evalRotatingCross(dst, nowMs)
	case KindSpiral:
		p.evalSpiral(dst, nowMs)
	case KindGrayPulse:
		p.evalGrayPulse(dst, nowMs)
	case KindCheckerPulse:
		p.evalCheckerPulse(dst, nowMs)
	case KindRollingX:
		p.evalRollingX(dst, nowMs, baseSpeedMs)
	}
}

// add inserts a coordinate after a bounds check. Pattern math is allowed
// to wander off the board; the board never is.
func (p *Pattern) add(dst *grid.Set, c grid.Coord) {
	if p.g.InBounds(c) {
		dst.Add(c)
	}
}
