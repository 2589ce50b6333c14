// Package magma implements Magma Mayhem: a hopping arcade game where the
// player crosses a tile board through twelve levels of animated lava
// patterns, collecting gems against a time-decaying score.
package magma

import (
	"math/rand"

	"github.com/jrichson/time-mission-magma-mayhem/internal/config"
	"github.com/jrichson/time-mission-magma-mayhem/internal/core"
	"github.com/jrichson/time-mission-magma-mayhem/internal/grid"
	"github.com/jrichson/time-mission-magma-mayhem/internal/hazard"
	"github.com/jrichson/time-mission-magma-mayhem/internal/level"
	"github.com/jrichson/time-mission-magma-mayhem/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// player holds the movement and survival state of the hopper.
type player struct {
	pos               grid.Coord
	hopping           bool
	hopFrom           grid.Coord
	hopTo             grid.Coord
	hopStartMs        int64
	lives             int
	invincibleUntilMs int64
}

// Game implements the magma arcade game.
type Game struct {
	mode Mode
	cfg  config.MagmaConfig
	rng  *rand.Rand
	tick uint64

	tickMs  float64 // simulated milliseconds per platform tick
	screenW int
	screenH int

	board grid.Grid
	spawn grid.Coord

	phase   Phase
	paused  bool
	clockMs float64 // level clock, frozen outside unpaused play
	phaseMs float64 // time spent in the current countdown/transition phase

	levelNum   int // 1-based; keeps counting in endless mode
	totalScore int
	levelScore int // current potential award, recomputed each tick

	safe         *grid.Set
	collectibles *grid.Set
	hazards      *grid.Set
	patterns     []*hazard.Pattern

	pl player

	events   []core.Event
	tooSmall bool
}

// Package-level knobs set by the CLI before game creation.
var (
	configPath       string
	difficultyPreset string
	selectedLevel    int
)

// SetConfigPath sets the gameplay config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset name.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetStartLevel sets the starting level (1-12). 0 starts from the beginning.
func SetStartLevel(lvl int) {
	selectedLevel = lvl
}

// New creates a campaign mode game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates an endless mode game: the twelve-level script cycles
// with an extra speedup per completed cycle and no win state.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

func init() {
	registry.Register("magma", func() registry.Game {
		return New()
	})
	registry.Register("magma_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "magma_endless"
	}
	return "magma"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Magma Mayhem (Endless)"
	}
	return "Magma Mayhem"
}

// Reset initializes or restarts the run.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.LoadMagma(configPath)
	if err != nil {
		cfg = config.DefaultMagmaConfig()
	}
	config.ApplyPreset(&cfg, config.DifficultyPreset(difficultyPreset))
	g.cfg = cfg

	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.tick = 0
	tickRate := rt.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.tickMs = 1000.0 / float64(tickRate)
	g.screenW = rt.ScreenW
	g.screenH = rt.ScreenH

	g.board = grid.New(cfg.Board.Width, cfg.Board.Height)
	g.spawn = grid.C(cfg.Board.SpawnX, cfg.Board.SpawnZ)

	g.totalScore = 0
	g.paused = false
	g.levelNum = 1
	if g.mode == ModeCampaign && selectedLevel > 0 && selectedLevel <= level.Count {
		g.levelNum = selectedLevel
		selectedLevel = 0
	}

	g.safe = grid.NewSet()
	g.collectibles = grid.NewSet()
	g.hazards = grid.NewSet()
	g.events = nil

	g.checkScreenSize()
	g.startLevel()
}

// effectiveLevel maps the running level number onto the 1..12 script,
// wrapping in endless mode.
func (g *Game) effectiveLevel() int {
	if g.mode == ModeEndless {
		return (g.levelNum-1)%level.Count + 1
	}
	return g.levelNum
}

// endlessCycle returns how many full script cycles an endless run has
// completed.
func (g *Game) endlessCycle() int {
	if g.mode != ModeEndless {
		return 0
	}
	return (g.levelNum - 1) / level.Count
}

// baseSpeedMs returns the level-scaled pattern cadence: the level 1 base
// minus a fixed cut per level, floored, with an extra cut per endless cycle.
func (g *Game) baseSpeedMs() float64 {
	base := g.cfg.Timing.BaseSpeedMs - (g.effectiveLevel()-1)*g.cfg.Timing.SpeedDecreaseMs
	base -= g.endlessCycle() * g.cfg.Timing.EndlessSpeedupMs
	if base < g.cfg.Timing.MinSpeedMs {
		base = g.cfg.Timing.MinSpeedMs
	}
	return float64(base)
}

// startLevel regenerates the board for the current level and begins the
// countdown. Lives refill here: a fresh level always starts at full
// strength, while a mid-level respawn never does.
func (g *Game) startLevel() {
	layout := level.Generate(g.effectiveLevel(), g.board, g.spawn, g.rng)
	g.safe = layout.Safe
	g.collectibles = layout.Collectibles
	g.patterns = layout.Patterns
	g.hazards.Clear()

	g.pl = player{pos: g.spawn, lives: g.cfg.Player.Lives}
	g.clockMs = 0
	g.levelScore = g.cfg.Scoring.MaxLevelScore
	g.phase = PhaseCountdown
	g.phaseMs = 0
}

// countdownTotalMs is the full 3-2-1-GO duration.
func (g *Game) countdownTotalMs() float64 {
	return float64(3*g.cfg.Timing.CountdownStepMs + g.cfg.Timing.CountdownGoMs)
}

// Step advances the simulation by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++
	g.events = g.events[:0]

	if input.Has(core.ActionRestart) && (g.phase == PhaseGameOver || g.phase == PhaseWon) {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: int(1000.0 / g.tickMs),
		})
		return g.result()
	}

	if input.Has(core.ActionPause) && g.phase == PhasePlaying {
		g.paused = !g.paused
	}

	if g.tooSmall {
		return g.result()
	}

	switch g.phase {
	case PhaseCountdown:
		g.stepCountdown()
	case PhasePlaying:
		if !g.paused {
			g.stepPlaying(input)
		}
	case PhaseLevelComplete:
		g.stepLevelComplete()
	}

	return g.result()
}

// stepCountdown advances the 3-2-1-GO sequence. The layout is already on
// the board; the level clock stays at zero until GO, so the score timer
// and every pattern start together.
func (g *Game) stepCountdown() {
	step := float64(g.cfg.Timing.CountdownStepMs)
	before := int(g.phaseMs / step)
	g.phaseMs += g.tickMs
	after := int(g.phaseMs / step)
	if after != before && after <= 3 {
		g.emit(core.EventCountdownTick)
	}
	if g.phaseMs >= g.countdownTotalMs() {
		g.phase = PhasePlaying
	}
}

// stepPlaying runs one simulation tick of active play. Order matters:
// hazard occupancy is fully recomputed before any collision question is
// asked, and a landing hop resolves pickup before the hazard check.
func (g *Game) stepPlaying(input core.InputFrame) {
	g.clockMs += g.tickMs
	now := g.nowMs()

	g.resolveHazards(now)
	g.levelScore = g.potentialScore(now)

	if g.pl.hopping && now-g.pl.hopStartMs >= int64(g.cfg.Timing.HopDurationMs) {
		g.completeHop(now)
		if g.phase != PhasePlaying {
			return
		}
	}

	if !g.pl.hopping {
		for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
			if !input.Has(a) {
				continue
			}
			dx, dz, _ := a.Move()
			if g.tryHop(dx, dz, now) {
				break
			}
		}
	}

	g.checkHit(now)
}

// stepLevelComplete holds the score popup and banner, then advances.
func (g *Game) stepLevelComplete() {
	g.phaseMs += g.tickMs
	hold := float64(g.cfg.Timing.CompleteDelayMs + g.cfg.Timing.CompleteBannerMs)
	if g.phaseMs < hold {
		return
	}

	if g.mode == ModeCampaign && g.levelNum >= level.Count {
		g.phase = PhaseWon
		g.emit(core.EventWin)
		return
	}
	g.levelNum++
	g.startLevel()
}

// completeLevel banks the current potential award and schedules the
// transition. Called when the last collectible is picked up.
func (g *Game) completeLevel() {
	award := g.levelScore
	if award < 1 {
		award = 1
	}
	g.totalScore += award
	g.emit(core.EventLevelComplete)
	g.phase = PhaseLevelComplete
	g.phaseMs = 0
}

func (g *Game) nowMs() int64 {
	return int64(g.clockMs)
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

func (g *Game) result() core.StepResult {
	res := core.StepResult{State: g.State()}
	if len(g.events) > 0 {
		res.Events = append([]core.Event(nil), g.events...)
	}
	return res
}

// checkScreenSize verifies the terminal can fit the board plus HUD.
func (g *Game) checkScreenSize() {
	requiredW := g.board.W*2 + 2 // two characters per cell
	requiredH := g.board.H + hudRows + 1
	g.tooSmall = g.screenW < requiredW || g.screenH < requiredH
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.totalScore,
		Level:    g.levelNum,
		Lives:    g.pl.lives,
		GameOver: g.phase == PhaseGameOver || g.phase == PhaseWon,
		Won:      g.phase == PhaseWon,
		Paused:   g.paused,
	}
}
