// Package level encodes the campaign's difficulty curve: per-level safe
// island composition, collectible counts, and hazard pattern scripts are
// fixed lookup tables, not formulas.
package level

import (
	"math/rand"

	"github.com/jrichson/time-mission-magma-mayhem/internal/grid"
	"github.com/jrichson/time-mission-magma-mayhem/internal/hazard"
)

// Count is the number of campaign levels.
const Count = 12

// placementAttempts caps the reject-and-retry sampling for random cells.
const placementAttempts = 300

// spawnExclusion is the Chebyshev radius around the spawn cell that
// collectibles keep clear.
const spawnExclusion = 2

// collectibleCounts maps level (1-based index-1) to the number of items
// the player must collect. One extra point of earnable ceiling per level.
var collectibleCounts = [Count]int{6, 7, 7, 8, 8, 8, 9, 9, 9, 9, 10, 10}

// Layout is the generated board state for one level.
type Layout struct {
	Safe         *grid.Set
	Collectibles *grid.Set
	Patterns     []*hazard.Pattern
}

// CollectibleCount returns the item count for a level (1-based, clamped).
func CollectibleCount(level int) int {
	return collectibleCounts[clampLevel(level)-1]
}

func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > Count {
		return Count
	}
	return level
}

// Generate builds the safe islands, collectible placement, and active
// hazard patterns for a level. The composition tables are deterministic;
// scattered islands, collectible cells, and per-pattern phase offsets draw
// from rng, so a fixed seed reproduces the whole layout.
func Generate(level int, g grid.Grid, spawn grid.Coord, rng *rand.Rand) Layout {
	level = clampLevel(level)

	safe := grid.NewSet()
	buildSafeIslands(level, g, safe, rng)
	addStartZone(g, spawn, safe)

	collectibles := grid.NewSet()
	placeCollectibles(CollectibleCount(level), g, spawn, safe, collectibles, rng)

	return Layout{
		Safe:         safe,
		Collectibles: collectibles,
		Patterns:     buildPatterns(level, g, rng),
	}
}

// buildSafeIslands applies the per-level composition table.
func buildSafeIslands(level int, g grid.Grid, safe *grid.Set, rng *rand.Rand) {
	switch level {
	case 1, 2, 3:
		addCorners(g, safe)
		addCenterCross(g, safe)
	case 4:
		addPerimeter(g, safe)
	case 5, 6:
		addDiagonalStones(g, safe)
		addCorners(g, safe)
	case 7:
		addScattered(6, g, safe, rng)
	case 8:
		addCorners(g, safe)
	case 9:
		addDiagonalStones(g, safe)
		addScattered(4, g, safe, rng)
	case 10:
		addScattered(5, g, safe, rng)
	case 11:
		addCorners(g, safe)
		addScattered(3, g, safe, rng)
	case 12:
		addCorners(g, safe)
	}
}

// addStartZone marks the fixed 3x3 zone around the spawn cell, present on
// every level regardless of composition.
func addStartZone(g grid.Grid, spawn grid.Coord, safe *grid.Set) {
	for dz := -1; dz <= 1; dz++ {
		for dx := -1; dx <= 1; dx++ {
			c := spawn.Add(dx, dz)
			if g.InBounds(c) {
				safe.Add(c)
			}
		}
	}
}

// addCorners places 2x2 islands in the four corners of the playable area.
func addCorners(g grid.Grid, safe *grid.Set) {
	playH := g.PlayableH()
	for _, base := range []grid.Coord{
		grid.C(0, 0),
		grid.C(g.W-2, 0),
		grid.C(0, playH-2),
		grid.C(g.W-2, playH-2),
	} {
		for dz := 0; dz < 2; dz++ {
			for dx := 0; dx < 2; dx++ {
				safe.Add(base.Add(dx, dz))
			}
		}
	}
}

// addCenterCross places the center cell and its four orthogonal neighbors.
func addCenterCross(g grid.Grid, safe *grid.Set) {
	c := g.Center()
	safe.Add(c)
	for _, d := range []grid.Coord{{X: 1}, {X: -1}, {Z: 1}, {Z: -1}} {
		n := c.Add(d.X, d.Z)
		if g.InBounds(n) {
			safe.Add(n)
		}
	}
}

// addPerimeter rings the playable area border.
func addPerimeter(g grid.Grid, safe *grid.Set) {
	playH := g.PlayableH()
	for x := 0; x < g.W; x++ {
		safe.Add(grid.C(x, 0))
		safe.Add(grid.C(x, playH-1))
	}
	for z := 0; z < playH; z++ {
		safe.Add(grid.C(0, z))
		safe.Add(grid.C(g.W-1, z))
	}
}

// addDiagonalStones places stepping stones every other cell along the
// main diagonal of the playable area.
func addDiagonalStones(g grid.Grid, safe *grid.Set) {
	playH := g.PlayableH()
	limit := g.W
	if playH < limit {
		limit = playH
	}
	for i := 0; i < limit; i += 2 {
		safe.Add(grid.C(i, i))
	}
}

// addScattered places n random single-cell islands in the playable area.
func addScattered(n int, g grid.Grid, safe *grid.Set, rng *rand.Rand) {
	placed := 0
	for attempt := 0; attempt < placementAttempts && placed < n; attempt++ {
		c := grid.C(rng.Intn(g.W), rng.Intn(g.PlayableH()))
		if safe.Has(c) {
			continue
		}
		safe.Add(c)
		placed++
	}
}

// placeCollectibles samples random cells, rejecting safe islands, already
// placed items, and the exclusion box around spawn.
func placeCollectibles(count int, g grid.Grid, spawn grid.Coord, safe, dst *grid.Set, rng *rand.Rand) {
	for attempt := 0; attempt < placementAttempts && dst.Len() < count; attempt++ {
		c := grid.C(rng.Intn(g.W), rng.Intn(g.PlayableH()))
		if safe.Has(c) || dst.Has(c) {
			continue
		}
		if c.Chebyshev(spawn) <= spawnExclusion {
			continue
		}
		dst.Add(c)
	}
}
