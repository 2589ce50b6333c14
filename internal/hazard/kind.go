// Package hazard implements the lava pattern library: time-parameterized
// generators that each project one motion law onto the board as a set of
// occupied coordinates. Patterns never touch shared game state; they only
// write into the destination set they are handed.
package hazard

// Kind identifies a pattern's motion law. The set is closed: every kind
// has exactly one evaluator and dispatch is an exhaustive switch.
type Kind int

const (
	KindHorizontalSweep Kind = iota
	KindVerticalSweep
	KindWave
	KindRing
	KindSnake
	KindBlinker
	KindDiagonalSweep
	KindRowMarch
	KindColumnMarch
	KindRotatingCross
	KindSpiral
	KindGrayPulse
	KindCheckerPulse
	KindRollingX
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindHorizontalSweep:
		return "horizontal_sweep"
	case KindVerticalSweep:
		return "vertical_sweep"
	case KindWave:
		return "wave"
	case KindRing:
		return "ring"
	case KindSnake:
		return "snake"
	case KindBlinker:
		return "blinker"
	case KindDiagonalSweep:
		return "diagonal_sweep"
	case KindRowMarch:
		return "row_march"
	case KindColumnMarch:
		return "column_march"
	case KindRotatingCross:
		return "rotating_cross"
	case KindSpiral:
		return "spiral"
	case KindGrayPulse:
		return "gray_pulse"
	case KindCheckerPulse:
		return "checker_pulse"
	case KindRollingX:
		return "rolling_x"
	default:
		return "unknown"
	}
}
