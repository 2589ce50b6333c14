package magma

// resolveHazards recomputes the lava occupancy for the current instant.
// Every pattern contributes its lit cells, then safe islands and
// collectible cells are carved out, so the three cell classes never
// overlap no matter what the patterns produce.
func (g *Game) resolveHazards(nowMs int64) {
	g.hazards.Clear()
	base := g.baseSpeedMs()
	for _, p := range g.patterns {
		p.Evaluate(g.hazards, nowMs, base)
	}
	g.hazards.Subtract(g.safe)
	g.hazards.Subtract(g.collectibles)
}
