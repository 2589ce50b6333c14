package magma

import (
	"testing"

	"github.com/jrichson/time-mission-magma-mayhem/internal/core"
	"github.com/jrichson/time-mission-magma-mayhem/internal/grid"
	"github.com/jrichson/time-mission-magma-mayhem/internal/level"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:     12345,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// stepN advances the game n ticks with no input.
func stepN(g *Game, n int) {
	input := core.NewInputFrame()
	for i := 0; i < n; i++ {
		g.Step(input)
	}
}

// skipCountdown runs ticks until play begins.
func skipCountdown(t *testing.T, g *Game) {
	t.Helper()
	input := core.NewInputFrame()
	for i := 0; i < 600; i++ {
		if g.phase == PhasePlaying {
			return
		}
		g.Step(input)
	}
	t.Fatal("countdown never finished")
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	cfg := testConfig()

	g1 := New()
	g1.Reset(cfg)

	g2 := New()
	g2.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 500; i++ {
		input.Clear()
		if i == 250 {
			input.Set(core.ActionUp)
		}
		if i == 300 {
			input.Set(core.ActionLeft)
		}

		g1.Step(input)
		g2.Step(input)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()

	if snap1 != snap2 {
		t.Errorf("snapshot mismatch:\n%+v\n%+v", snap1, snap2)
	}
}

func TestCountdownFreezesClock(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	if g.phase != PhaseCountdown {
		t.Fatalf("expected countdown phase, got %v", g.phase)
	}

	// The layout must already be on the board during the countdown.
	if g.collectibles.Len() == 0 {
		t.Error("collectibles should be placed before the countdown ends")
	}
	if g.safe.Len() == 0 {
		t.Error("safe islands should be placed before the countdown ends")
	}

	stepN(g, 30)
	if g.nowMs() != 0 {
		t.Errorf("level clock advanced during countdown: %d ms", g.nowMs())
	}
	if g.levelScore != g.cfg.Scoring.MaxLevelScore {
		t.Errorf("score should hold at max during countdown, got %d", g.levelScore)
	}
}

func TestCountdownDuration(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	input := core.NewInputFrame()
	ticks := 0
	for g.phase == PhaseCountdown {
		g.Step(input)
		ticks++
		if ticks > 1000 {
			t.Fatal("countdown never finished")
		}
	}

	// 3 steps of 800ms plus a 400ms GO at ~16.67ms per tick.
	totalMs := float64(ticks) * g.tickMs
	want := g.countdownTotalMs()
	if totalMs < want || totalMs > want+2*g.tickMs {
		t.Errorf("countdown lasted %.0fms, want about %.0fms", totalMs, want)
	}
}

func TestScoreDecay(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	max := g.cfg.Scoring.MaxLevelScore
	grace := int64(g.cfg.Scoring.GracePeriodMs)
	window := int64(g.cfg.Scoring.DecayWindowMs)

	if got := g.potentialScore(0); got != max {
		t.Errorf("at t=0 want %d, got %d", max, got)
	}
	if got := g.potentialScore(grace); got != max {
		t.Errorf("at grace boundary want %d, got %d", max, got)
	}
	if got := g.potentialScore(grace + window); got != 1 {
		t.Errorf("after full decay want 1, got %d", got)
	}
	if got := g.potentialScore(grace + 10*window); got != 1 {
		t.Errorf("long after decay want 1, got %d", got)
	}

	// Monotonically non-increasing across the whole timeline.
	prev := max
	for ms := int64(0); ms <= grace+window+5000; ms += 137 {
		cur := g.potentialScore(ms)
		if cur > prev {
			t.Fatalf("score rose from %d to %d at t=%dms", prev, cur, ms)
		}
		if cur < 1 {
			t.Fatalf("score fell below floor at t=%dms: %d", ms, cur)
		}
		prev = cur
	}
}

func TestHopCommits(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	skipCountdown(t, g)

	input := core.NewInputFrame()
	input.Set(core.ActionUp)
	g.Step(input)

	if !g.pl.hopping {
		t.Fatal("expected hop to start")
	}
	target := g.pl.hopTo

	// Contradictory input mid-hop must be ignored.
	input.Clear()
	input.Set(core.ActionLeft)
	g.Step(input)
	if g.pl.hopTo != target {
		t.Errorf("hop target changed mid-hop: %v -> %v", target, g.pl.hopTo)
	}

	// After the hop duration the player stands on the target.
	stepN(g, int(float64(g.cfg.Timing.HopDurationMs)/g.tickMs)+2)
	if g.pl.hopping {
		t.Error("hop should have landed")
	}
	if g.pl.pos != target {
		t.Errorf("player at %v, want %v", g.pl.pos, target)
	}
}

func TestHopMovesPositionImmediately(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	skipCountdown(t, g)

	from := g.pl.pos
	input := core.NewInputFrame()
	input.Set(core.ActionUp)
	g.Step(input)

	// The authoritative cell changes the moment the hop is accepted,
	// not when the animation lands.
	if !g.pl.hopping {
		t.Fatal("expected hop to start")
	}
	if want := from.Add(0, -1); g.pl.pos != want {
		t.Errorf("position = %v mid-hop, want %v", g.pl.pos, want)
	}
	if g.pl.hopFrom != from {
		t.Errorf("hop origin = %v, want %v", g.pl.hopFrom, from)
	}
}

func TestHopOffBoardRejected(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	skipCountdown(t, g)

	// Spawn is on the bottom start row; hopping down leaves the board.
	g.pl.pos = grid.C(g.spawn.X, g.board.H-1)
	input := core.NewInputFrame()
	input.Set(core.ActionDown)
	g.Step(input)

	if g.pl.hopping {
		t.Error("hop off the board should be rejected")
	}
}

func TestPickupResolvesBeforeHazard(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	skipCountdown(t, g)

	// Land on a cell that is both the last collectible and lit by lava.
	// The pickup must win: the level completes and no life is lost.
	target := g.pl.pos.Add(0, -1)
	g.collectibles.Clear()
	g.collectibles.Add(target)
	g.patterns = nil

	g.pl.hopping = true
	g.pl.hopFrom = g.pl.pos
	g.pl.hopTo = target
	g.pl.pos = target
	g.pl.hopStartMs = g.nowMs() - int64(g.cfg.Timing.HopDurationMs)
	g.hazards.Add(target)

	livesBefore := g.pl.lives
	g.completeHop(g.nowMs())

	if g.pl.lives != livesBefore {
		t.Errorf("lost a life on a pickup landing: %d -> %d", livesBefore, g.pl.lives)
	}
	if g.phase != PhaseLevelComplete {
		t.Errorf("expected level complete, got %v", g.phase)
	}
}

func TestHitCostsLifeAndRespawns(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	skipCountdown(t, g)

	g.pl.pos = grid.C(2, 5)
	g.hazards.Add(g.pl.pos)
	g.checkHit(g.nowMs())

	if g.pl.lives != g.cfg.Player.Lives-1 {
		t.Errorf("lives = %d, want %d", g.pl.lives, g.cfg.Player.Lives-1)
	}
	if g.pl.pos != g.spawn {
		t.Errorf("player should respawn at %v, got %v", g.spawn, g.pl.pos)
	}
	if g.pl.invincibleUntilMs <= g.nowMs() {
		t.Error("respawn should grant an invincibility window")
	}
}

func TestInvincibilityBlocksHit(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	skipCountdown(t, g)

	now := g.nowMs()
	g.pl.invincibleUntilMs = now + 1000
	g.hazards.Add(g.pl.pos)

	lives := g.pl.lives
	g.checkHit(now)
	if g.pl.lives != lives {
		t.Error("invincible player should not lose a life")
	}

	// The window expires.
	g.checkHit(now + 1001)
	if g.pl.lives != lives-1 {
		t.Error("hit should land once invincibility expires")
	}
}

func TestAirborneIgnoresHazards(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	skipCountdown(t, g)

	g.pl.hopping = true
	g.hazards.Add(g.pl.pos)

	lives := g.pl.lives
	g.checkHit(g.nowMs())
	if g.pl.lives != lives {
		t.Error("hopping player should not be hit on the departed cell")
	}
}

func TestGameOverOnLastLife(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	skipCountdown(t, g)

	g.pl.lives = 1
	g.hazards.Add(g.pl.pos)
	g.checkHit(g.nowMs())

	if g.phase != PhaseGameOver {
		t.Errorf("expected game over, got %v", g.phase)
	}
	if !g.State().GameOver {
		t.Error("State().GameOver should be true")
	}
	if g.State().Won {
		t.Error("a lost run must not report Won")
	}
}

func TestResolverKeepsClassesDisjoint(t *testing.T) {
	for lvl := 1; lvl <= level.Count; lvl++ {
		g := New()
		SetStartLevel(lvl)
		g.Reset(testConfig())
		skipCountdown(t, g)

		input := core.NewInputFrame()
		for i := 0; i < 400; i++ {
			g.Step(input)
			if g.phase != PhasePlaying {
				break
			}
			if g.hazards.Intersects(g.safe) {
				t.Fatalf("level %d: lava overlaps a safe island at tick %d", lvl, i)
			}
			if g.hazards.Intersects(g.collectibles) {
				t.Fatalf("level %d: lava overlaps a collectible at tick %d", lvl, i)
			}
		}
	}
}

func TestLevelCompleteBanksScore(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	skipCountdown(t, g)

	g.levelScore = 7
	before := g.totalScore
	g.completeLevel()

	if g.totalScore != before+7 {
		t.Errorf("total score = %d, want %d", g.totalScore, before+7)
	}

	// The transition holds for the popup delay plus the banner, then the
	// next level starts its countdown with lives refilled.
	g.pl.lives = 1
	hold := float64(g.cfg.Timing.CompleteDelayMs+g.cfg.Timing.CompleteBannerMs) / g.tickMs
	stepN(g, int(hold)+2)

	if g.phase != PhaseCountdown {
		t.Fatalf("expected next level countdown, got %v", g.phase)
	}
	if g.levelNum != 2 {
		t.Errorf("level = %d, want 2", g.levelNum)
	}
	if g.pl.lives != g.cfg.Player.Lives {
		t.Errorf("lives should refill on a new level, got %d", g.pl.lives)
	}
	if g.nowMs() != 0 {
		t.Error("level clock should reset for the new level")
	}
}

func TestCampaignWinsAfterFinalLevel(t *testing.T) {
	g := New()
	SetStartLevel(level.Count)
	g.Reset(testConfig())
	skipCountdown(t, g)

	g.completeLevel()
	hold := float64(g.cfg.Timing.CompleteDelayMs+g.cfg.Timing.CompleteBannerMs) / g.tickMs
	stepN(g, int(hold)+2)

	if g.phase != PhaseWon {
		t.Fatalf("expected won, got %v", g.phase)
	}
	st := g.State()
	if !st.GameOver || !st.Won {
		t.Errorf("final state = %+v, want GameOver and Won", st)
	}
}

func TestEndlessCyclesScript(t *testing.T) {
	g := NewEndless()
	g.Reset(testConfig())

	g.levelNum = level.Count
	if got := g.effectiveLevel(); got != level.Count {
		t.Errorf("level %d maps to %d, want %d", g.levelNum, got, level.Count)
	}
	g.levelNum = level.Count + 1
	if got := g.effectiveLevel(); got != 1 {
		t.Errorf("level %d maps to %d, want 1", g.levelNum, got)
	}
	if g.endlessCycle() != 1 {
		t.Errorf("cycle = %d, want 1", g.endlessCycle())
	}

	// Each completed cycle cuts the cadence beyond the per-level ramp.
	g.levelNum = 1
	first := g.baseSpeedMs()
	g.levelNum = level.Count + 1
	second := g.baseSpeedMs()
	if second >= first {
		t.Errorf("cycle 2 cadence %.0f should be faster than cycle 1 %.0f", second, first)
	}
}

func TestEndlessNeverWins(t *testing.T) {
	g := NewEndless()
	g.Reset(testConfig())
	skipCountdown(t, g)

	g.levelNum = level.Count
	g.completeLevel()
	hold := float64(g.cfg.Timing.CompleteDelayMs+g.cfg.Timing.CompleteBannerMs) / g.tickMs
	stepN(g, int(hold)+2)

	if g.phase == PhaseWon {
		t.Fatal("endless mode must not win")
	}
	if g.levelNum != level.Count+1 {
		t.Errorf("level = %d, want %d", g.levelNum, level.Count+1)
	}
}

func TestPauseFreezesEverything(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	skipCountdown(t, g)

	stepN(g, 60)
	clockBefore := g.nowMs()
	scoreBefore := g.levelScore

	input := core.NewInputFrame()
	input.Set(core.ActionPause)
	g.Step(input)
	if !g.paused {
		t.Fatal("expected paused")
	}

	stepN(g, 120)
	if g.nowMs() != clockBefore {
		t.Error("level clock advanced while paused")
	}
	if g.levelScore != scoreBefore {
		t.Error("score decayed while paused")
	}

	input.Clear()
	input.Set(core.ActionPause)
	g.Step(input)
	stepN(g, 60)
	if g.nowMs() <= clockBefore {
		t.Error("level clock should resume after unpause")
	}
}

func TestSpeedRampPerLevel(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	g.levelNum = 1
	l1 := g.baseSpeedMs()
	g.levelNum = 5
	l5 := g.baseSpeedMs()
	if l5 >= l1 {
		t.Errorf("level 5 cadence %.0f should be faster than level 1 %.0f", l5, l1)
	}

	// Floored regardless of level.
	g.levelNum = 12
	g.cfg.Timing.SpeedDecreaseMs = 500
	if got := g.baseSpeedMs(); got != float64(g.cfg.Timing.MinSpeedMs) {
		t.Errorf("cadence should floor at %d, got %.0f", g.cfg.Timing.MinSpeedMs, got)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	skipCountdown(t, g)

	g.totalScore = 55
	g.phase = PhaseGameOver

	input := core.NewInputFrame()
	input.Set(core.ActionRestart)
	g.Step(input)

	if g.phase != PhaseCountdown {
		t.Fatalf("expected a fresh countdown, got %v", g.phase)
	}
	if g.totalScore != 0 {
		t.Errorf("score should reset, got %d", g.totalScore)
	}
	if g.levelNum != 1 {
		t.Errorf("level should reset to 1, got %d", g.levelNum)
	}
}

func TestRenderDoesNotPanic(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	screen := core.NewScreen(80, 24)
	input := core.NewInputFrame()
	for i := 0; i < 400; i++ {
		g.Step(input)
		g.Render(screen)
	}

	// Tiny screens fall back to the resize overlay.
	small := New()
	small.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 10, ScreenH: 5, TickRate: 60})
	tiny := core.NewScreen(10, 5)
	small.Step(input)
	small.Render(tiny)
}
