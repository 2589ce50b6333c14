package level

import (
	"math/rand"
	"testing"

	"github.com/jrichson/time-mission-magma-mayhem/internal/grid"
)

var (
	testGrid  = grid.New(12, 16)
	testSpawn = grid.C(6, 14)
)

func TestGenerateAllLevels(t *testing.T) {
	for lvl := 1; lvl <= Count; lvl++ {
		rng := rand.New(rand.NewSource(int64(lvl)))
		layout := Generate(lvl, testGrid, testSpawn, rng)

		if layout.Collectibles.Len() != CollectibleCount(lvl) {
			t.Errorf("level %d: placed %d collectibles, want %d",
				lvl, layout.Collectibles.Len(), CollectibleCount(lvl))
		}
		if len(layout.Patterns) == 0 {
			t.Errorf("level %d: no hazard patterns scripted", lvl)
		}

		// Safe islands and collectibles are disjoint.
		if layout.Safe.Intersects(layout.Collectibles) {
			t.Errorf("level %d: collectible placed on a safe island", lvl)
		}

		// Everything generated is on the board.
		for _, s := range []*grid.Set{layout.Safe, layout.Collectibles} {
			s.Each(func(c grid.Coord) {
				if !testGrid.InBounds(c) {
					t.Errorf("level %d: generated cell %v out of bounds", lvl, c)
				}
			})
		}
	}
}

func TestStartZoneAlwaysSafe(t *testing.T) {
	for lvl := 1; lvl <= Count; lvl++ {
		rng := rand.New(rand.NewSource(77))
		layout := Generate(lvl, testGrid, testSpawn, rng)
		for dz := -1; dz <= 1; dz++ {
			for dx := -1; dx <= 1; dx++ {
				c := testSpawn.Add(dx, dz)
				if testGrid.InBounds(c) && !layout.Safe.Has(c) {
					t.Errorf("level %d: start zone cell %v not safe", lvl, c)
				}
			}
		}
	}
}

func TestCollectiblesAvoidSpawnBox(t *testing.T) {
	for lvl := 1; lvl <= Count; lvl++ {
		rng := rand.New(rand.NewSource(int64(lvl) * 31))
		layout := Generate(lvl, testGrid, testSpawn, rng)
		layout.Collectibles.Each(func(c grid.Coord) {
			if c.Chebyshev(testSpawn) <= spawnExclusion {
				t.Errorf("level %d: collectible %v inside spawn exclusion box", lvl, c)
			}
		})
	}
}

func TestCollectibleCountsTable(t *testing.T) {
	want := []int{6, 7, 7, 8, 8, 8, 9, 9, 9, 9, 10, 10}
	for i, w := range want {
		if got := CollectibleCount(i + 1); got != w {
			t.Errorf("CollectibleCount(%d) = %d, want %d", i+1, got, w)
		}
	}
	// Earnable ceiling across the campaign matches the leaderboard cap.
	if got := CollectibleCount(0); got != 6 {
		t.Errorf("CollectibleCount clamps low, got %d", got)
	}
	if got := CollectibleCount(99); got != 10 {
		t.Errorf("CollectibleCount clamps high, got %d", got)
	}
}

func TestGenerateDeterministicPerSeed(t *testing.T) {
	a := Generate(9, testGrid, testSpawn, rand.New(rand.NewSource(123)))
	b := Generate(9, testGrid, testSpawn, rand.New(rand.NewSource(123)))

	if a.Safe.Len() != b.Safe.Len() || a.Collectibles.Len() != b.Collectibles.Len() {
		t.Fatal("same seed should produce identical layouts")
	}
	a.Safe.Each(func(c grid.Coord) {
		if !b.Safe.Has(c) {
			t.Errorf("safe sets diverge at %v", c)
		}
	})
	a.Collectibles.Each(func(c grid.Coord) {
		if !b.Collectibles.Has(c) {
			t.Errorf("collectible sets diverge at %v", c)
		}
	})
}

func TestScriptDifficultyRamp(t *testing.T) {
	// Level 1 is a single pattern; the closing stretch stacks more.
	if n := len(PatternKinds(1)); n != 1 {
		t.Errorf("level 1 should have one pattern, got %d", n)
	}
	for lvl := 8; lvl <= Count; lvl++ {
		if n := len(PatternKinds(lvl)); n < 2 {
			t.Errorf("level %d should have at least two patterns, got %d", lvl, n)
		}
	}
}
