package magma

import "github.com/jrichson/time-mission-magma-mayhem/internal/core"

// tryHop starts a hop toward the adjacent cell if it is in bounds. The
// authoritative position moves to the target immediately; the hop commits
// and input is ignored until the animation lands.
func (g *Game) tryHop(dx, dz int, nowMs int64) bool {
	target := g.pl.pos.Add(dx, dz)
	if !g.board.InBounds(target) {
		return false
	}
	g.pl.hopping = true
	g.pl.hopFrom = g.pl.pos
	g.pl.hopTo = target
	g.pl.pos = target
	g.pl.hopStartMs = nowMs
	g.emit(core.EventHop)
	return true
}

// completeHop lands the player. Pickup resolves before the hazard check:
// landing on a lit collectible cell still collects it.
func (g *Game) completeHop(nowMs int64) {
	g.pl.hopping = false

	if g.collectibles.Has(g.pl.pos) {
		g.collectibles.Remove(g.pl.pos)
		g.emit(core.EventCollect)
		if g.collectibles.Len() == 0 {
			g.completeLevel()
			return
		}
	}
	g.checkHit(nowMs)
}

// checkHit applies hazard contact on the player's standing cell. Hopping
// players are airborne, and a fresh respawn is invincible for a window.
func (g *Game) checkHit(nowMs int64) {
	if g.phase != PhasePlaying || g.pl.hopping {
		return
	}
	if nowMs < g.pl.invincibleUntilMs {
		return
	}
	if !g.hazards.Has(g.pl.pos) {
		return
	}

	g.pl.lives--
	g.emit(core.EventHit)
	if g.pl.lives <= 0 {
		g.phase = PhaseGameOver
		g.emit(core.EventGameOver)
		return
	}
	g.respawn(nowMs)
}

// respawn returns the player to the spawn cell with temporary
// invincibility. Collectibles and the level clock are untouched.
func (g *Game) respawn(nowMs int64) {
	g.pl.pos = g.spawn
	g.pl.hopping = false
	g.pl.invincibleUntilMs = nowMs + int64(g.cfg.Timing.InvincibilityMs)
}
