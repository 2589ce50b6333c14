package magma

// potentialScore returns the award the current level is still worth at the
// given level-clock instant. Full value holds through a grace period, then
// decays linearly across the decay window down to a floor of one point.
// Speed pays: clearing faster banks more.
func (g *Game) potentialScore(nowMs int64) int {
	max := g.cfg.Scoring.MaxLevelScore
	grace := int64(g.cfg.Scoring.GracePeriodMs)
	window := int64(g.cfg.Scoring.DecayWindowMs)

	if nowMs <= grace {
		return max
	}
	elapsed := nowMs - grace
	if window <= 0 || elapsed >= window {
		return 1
	}
	span := float64(max - 1)
	decayed := max - int(span*float64(elapsed)/float64(window))
	if decayed < 1 {
		decayed = 1
	}
	return decayed
}

// MaxCampaignScore is the highest total a campaign run can bank, used by
// leaderboard validation.
func MaxCampaignScore(maxLevelScore, levels int) int {
	return maxLevelScore * levels
}
