package hazard

import (
	"math"

	"github.com/jrichson/time-mission-magma-mayhem/internal/grid"
)

// evalWave traces a sine line across the board, one cell per column.
// Width acts as the amplitude in cells.
func (p *Pattern) evalWave(dst *grid.Set, nowMs int64, baseSpeedMs float64) {
	playH := p.g.PlayableH()
	mid := float64(playH) / 2
	phase := float64(nowMs) / baseSpeedMs * p.Speed
	for x := 0; x < p.g.W; x++ {
		z := int(math.Round(mid + math.Sin(float64(x)*0.6+phase)*float64(p.Width)))
		if z >= 0 && z < playH {
			p.add(dst, grid.C(x, z))
		}
	}
}

// evalRing expands a circle from the board center, restarting from zero
// once the radius clears the far corner.
func (p *Pattern) evalRing(dst *grid.Set, nowMs int64, baseSpeedMs float64) {
	playH := p.g.PlayableH()
	c := p.g.Center()
	maxR := float64(maxInt(p.g.W, playH))/2 + 2
	r := math.Mod(float64(nowMs)/baseSpeedMs*p.Speed, maxR)
	for z := 0; z < playH; z++ {
		for x := 0; x < p.g.W; x++ {
			d := math.Hypot(float64(x-c.X), float64(z-c.Z))
			if math.Abs(d-r) < 0.6 {
				p.add(dst, grid.C(x, z))
			}
		}
	}
}

// evalRotatingCross rotates two perpendicular arms about the board center.
// Width is the arm length in cells.
func (p *Pattern) evalRotatingCross(dst *grid.Set, nowMs int64) {
	c := p.g.Center()
	angle := float64(nowMs) / 3000.0 * p.Speed * 2 * math.Pi
	p.add(dst, c)
	for q := 0; q < 4; q++ {
		a := angle + float64(q)*math.Pi/2
		dx, dz := math.Cos(a), math.Sin(a)
		for t := 1; t <= p.Width; t++ {
			x := c.X + int(math.Round(dx*float64(t)))
			z := c.Z + int(math.Round(dz*float64(t)))
			p.add(dst, grid.C(x, z))
		}
	}
}

// evalSpiral samples 20 points along an Archimedean spiral whose arms
// rotate with time.
func (p *Pattern) evalSpiral(dst *grid.Set, nowMs int64) {
	c := p.g.Center()
	progress := float64(nowMs) / 1000.0 * p.Speed
	for i := 0; i < 20; i++ {
		t := float64(i)
		angle := progress + t*0.3
		r := t * 0.4
		x := c.X + int(math.Round(math.Cos(angle)*r))
		z := c.Z + int(math.Round(math.Sin(angle)*r))
		p.add(dst, grid.C(x, z))
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
