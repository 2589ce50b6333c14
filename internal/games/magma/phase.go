package magma

// Phase is the progression state of a run. Exactly one phase is active at
// a time; pausing is a separate toggle that only applies while playing.
type Phase int

const (
	PhaseCountdown Phase = iota
	PhasePlaying
	PhaseLevelComplete
	PhaseGameOver
	PhaseWon
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseCountdown:
		return "countdown"
	case PhasePlaying:
		return "playing"
	case PhaseLevelComplete:
		return "level_complete"
	case PhaseGameOver:
		return "game_over"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}
