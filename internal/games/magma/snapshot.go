package magma

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Tick         uint64
	Mode         string
	Phase        string
	Level        int
	TotalScore   int
	LevelScore   int
	Lives        int
	PlayerX      int
	PlayerZ      int
	Hopping      bool
	Collectibles int
	Hazards      int
	ClockMs      int64
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:         g.tick,
		Mode:         string(g.mode),
		Phase:        g.phase.String(),
		Level:        g.levelNum,
		TotalScore:   g.totalScore,
		LevelScore:   g.levelScore,
		Lives:        g.pl.lives,
		PlayerX:      g.pl.pos.X,
		PlayerZ:      g.pl.pos.Z,
		Hopping:      g.pl.hopping,
		Collectibles: g.collectibles.Len(),
		Hazards:      g.hazards.Len(),
		ClockMs:      g.nowMs(),
	}
}
