package hazard

import (
	"math"

	"github.com/jrichson/time-mission-magma-mayhem/internal/grid"
)

// evalGrayPulse flags the whole board on a sine half-period: everything is
// hazardous, then nothing is. Safe islands and collectibles survive the
// "everything" half through resolver precedence, which turns the level
// into hold-still-or-sprint play.
func (p *Pattern) evalGrayPulse(dst *grid.Set, nowMs int64) {
	on := math.Sin(float64(nowMs)/float64(p.IntervalMs)*math.Pi) > 0
	if !on {
		return
	}
	for z := 0; z < p.g.H; z++ {
		for x := 0; x < p.g.W; x++ {
			dst.Add(grid.C(x, z))
		}
	}
}

// evalCheckerPulse alternates the two cell parities. At time zero the even
// parity is hazardous; the phase flips every IntervalMs.
func (p *Pattern) evalCheckerPulse(dst *grid.Set, nowMs int64) {
	phase := int((nowMs / p.IntervalMs) % 2)
	for z := 0; z < p.g.H; z++ {
		for x := 0; x < p.g.W; x++ {
			if (x+z)%2 == phase {
				dst.Add(grid.C(x, z))
			}
		}
	}
}

// evalBlinker lights a scattered handful of cells for one interval, goes
// dark for the next, and re-scatters for every fresh on-phase. Width is
// the cell count.
func (p *Pattern) evalBlinker(dst *grid.Set, nowMs int64) {
	cycle := (nowMs + p.offsetMs) / p.IntervalMs
	epoch := cycle / 2
	if epoch != p.blinkEpoch {
		p.blinkEpoch = epoch
		p.resampleBlinkCells()
	}
	if cycle%2 != 0 {
		return
	}
	for _, c := range p.blinkCells {
		p.add(dst, c)
	}
}

func (p *Pattern) resampleBlinkCells() {
	playH := p.g.PlayableH()
	p.blinkCells = p.blinkCells[:0]
	for len(p.blinkCells) < p.Width {
		c := grid.C(p.rng.Intn(p.g.W), p.rng.Intn(playH))
		dup := false
		for _, existing := range p.blinkCells {
			if existing == c {
				dup = true
				break
			}
		}
		if !dup {
			p.blinkCells = append(p.blinkCells, c)
		}
	}
}
