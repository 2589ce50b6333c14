package core

// RuntimeConfig is passed to games at initialization. Games use it to
// adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means the platform picks one
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is the game status the platform reads after each tick.
type GameState struct {
	Score    int  // Banked score across completed levels
	Level    int  // Current level number (1-based)
	Lives    int  // Lives remaining
	GameOver bool // Whether the run has ended (lost or won)
	Won      bool // Whether the run ended by clearing the final level
	Paused   bool // Whether the game is paused
}

// Event is a discrete gameplay occurrence emitted for presentational
// collaborators (sound, HUD flashes). Events carry no core semantics;
// dropping them changes nothing about the simulation.
type Event int

const (
	EventNone Event = iota
	EventHop
	EventHit
	EventCollect
	EventCountdownTick
	EventLevelComplete
	EventWin
	EventGameOver
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventHop:
		return "hop"
	case EventHit:
		return "hit"
	case EventCollect:
		return "collect"
	case EventCountdownTick:
		return "countdown_tick"
	case EventLevelComplete:
		return "level_complete"
	case EventWin:
		return "win"
	case EventGameOver:
		return "game_over"
	default:
		return "none"
	}
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
