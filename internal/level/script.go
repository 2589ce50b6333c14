package level

import (
	"math/rand"

	"github.com/jrichson/time-mission-magma-mayhem/internal/grid"
	"github.com/jrichson/time-mission-magma-mayhem/internal/hazard"
)

// patternSpec is one scripted pattern instance with hand-tuned parameters.
type patternSpec struct {
	kind   hazard.Kind
	params hazard.Params
}

// script is the canonical per-level hazard table. Later levels stack more
// patterns and higher speed factors; the all-or-nothing pulse styles are
// reserved for the closing stretch.
var script = [Count][]patternSpec{
	{ // 1
		{hazard.KindHorizontalSweep, hazard.Params{Speed: 1.0, Width: 2}},
	},
	{ // 2
		{hazard.KindVerticalSweep, hazard.Params{Speed: 1.0, Width: 2}},
		{hazard.KindBlinker, hazard.Params{Width: 8, IntervalMs: 1200}},
	},
	{ // 3
		{hazard.KindHorizontalSweep, hazard.Params{Speed: 1.1, Width: 2}},
		{hazard.KindVerticalSweep, hazard.Params{Speed: 1.0, Width: 2}},
	},
	{ // 4
		{hazard.KindRollingX, hazard.Params{Speed: 1.0}},
		{hazard.KindRowMarch, hazard.Params{Speed: 0.9, Width: 1}},
	},
	{ // 5
		{hazard.KindWave, hazard.Params{Speed: 1.1, Width: 3}},
		{hazard.KindColumnMarch, hazard.Params{Speed: 1.0, Width: 1}},
	},
	{ // 6
		{hazard.KindRing, hazard.Params{Speed: 1.2}},
		{hazard.KindDiagonalSweep, hazard.Params{Speed: 1.0, Width: 3}},
	},
	{ // 7
		{hazard.KindSnake, hazard.Params{Speed: 1.2, Width: 6}},
		{hazard.KindHorizontalSweep, hazard.Params{Speed: 1.2, Width: 2}},
	},
	{ // 8
		{hazard.KindRotatingCross, hazard.Params{Speed: 1.1, Width: 6}},
		{hazard.KindBlinker, hazard.Params{Width: 10, IntervalMs: 1000}},
	},
	{ // 9
		{hazard.KindDiagonalSweep, hazard.Params{Speed: 1.1, Width: 3}},
		{hazard.KindDiagonalSweep, hazard.Params{Speed: 1.1, Width: 3, Reverse: true}},
		{hazard.KindSpiral, hazard.Params{Speed: 1.0}},
	},
	{ // 10
		{hazard.KindCheckerPulse, hazard.Params{IntervalMs: 1500}},
		{hazard.KindSnake, hazard.Params{Speed: 1.3, Width: 7}},
	},
	{ // 11
		{hazard.KindSpiral, hazard.Params{Speed: 1.2}},
		{hazard.KindRotatingCross, hazard.Params{Speed: 1.2, Width: 7}},
		{hazard.KindVerticalSweep, hazard.Params{Speed: 1.3, Width: 2}},
	},
	{ // 12
		{hazard.KindGrayPulse, hazard.Params{IntervalMs: 1800}},
		{hazard.KindRing, hazard.Params{Speed: 1.3}},
	},
}

// buildPatterns instantiates the scripted patterns for a level.
func buildPatterns(level int, g grid.Grid, rng *rand.Rand) []*hazard.Pattern {
	specs := script[clampLevel(level)-1]
	patterns := make([]*hazard.Pattern, 0, len(specs))
	for _, s := range specs {
		patterns = append(patterns, hazard.New(s.kind, s.params, g, rng))
	}
	return patterns
}

// PatternKinds returns the scripted kinds for a level, for display and tests.
func PatternKinds(level int) []hazard.Kind {
	specs := script[clampLevel(level)-1]
	kinds := make([]hazard.Kind, len(specs))
	for i, s := range specs {
		kinds[i] = s.kind
	}
	return kinds
}
