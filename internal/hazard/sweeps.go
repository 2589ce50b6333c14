package hazard

import "github.com/jrichson/time-mission-magma-mayhem/internal/grid"

// Bar sweeps run their position modulo (dimension + width) so the bar
// fully leaves the board before re-entering, and stay out of the start
// zone rows.

func (p *Pattern) evalHorizontalSweep(dst *grid.Set, nowMs int64, baseSpeedMs float64) {
	playH := p.g.PlayableH()
	pos := int(float64(nowMs+p.offsetMs)/baseSpeedMs*p.Speed) % (playH + p.Width)
	for i := 0; i < p.Width; i++ {
		z := pos - i
		if z < 0 || z >= playH {
			continue
		}
		if p.Reverse {
			z = playH - 1 - z
		}
		for x := 0; x < p.g.W; x++ {
			p.add(dst, grid.C(x, z))
		}
	}
}

func (p *Pattern) evalVerticalSweep(dst *grid.Set, nowMs int64, baseSpeedMs float64) {
	playH := p.g.PlayableH()
	pos := int(float64(nowMs+p.offsetMs)/baseSpeedMs*p.Speed) % (p.g.W + p.Width)
	for i := 0; i < p.Width; i++ {
		x := pos - i
		if x < 0 || x >= p.g.W {
			continue
		}
		if p.Reverse {
			x = p.g.W - 1 - x
		}
		for z := 0; z < playH; z++ {
			p.add(dst, grid.C(x, z))
		}
	}
}

// Marches wrap in place modulo the dimension instead of exiting, and run
// on a shorter divisor than the bars, which gives them a different visual
// cadence at the same nominal speed.

func (p *Pattern) evalRowMarch(dst *grid.Set, nowMs int64, baseSpeedMs float64) {
	playH := p.g.PlayableH()
	pos := int(float64(nowMs)/(baseSpeedMs*0.75)*p.Speed) % playH
	for i := 0; i < p.Width; i++ {
		z := (pos + i) % playH
		if p.Reverse {
			z = playH - 1 - z
		}
		for x := 0; x < p.g.W; x++ {
			p.add(dst, grid.C(x, z))
		}
	}
}

func (p *Pattern) evalColumnMarch(dst *grid.Set, nowMs int64, baseSpeedMs float64) {
	playH := p.g.PlayableH()
	pos := int(float64(nowMs)/(baseSpeedMs*0.75)*p.Speed) % p.g.W
	for i := 0; i < p.Width; i++ {
		x := (pos + i) % p.g.W
		if p.Reverse {
			x = p.g.W - 1 - x
		}
		for z := 0; z < playH; z++ {
			p.add(dst, grid.C(x, z))
		}
	}
}

// evalDiagonalSweep moves a band of constant x+z across the board.
// Reverse runs the band along the anti-diagonal instead.
func (p *Pattern) evalDiagonalSweep(dst *grid.Set, nowMs int64, baseSpeedMs float64) {
	playH := p.g.PlayableH()
	period := p.g.W + playH + p.Width
	d := int(float64(nowMs+p.offsetMs)/baseSpeedMs*p.Speed) % period
	for i := 0; i < p.Width; i++ {
		target := d - i
		for x := 0; x < p.g.W; x++ {
			z := target - x
			if z < 0 || z >= playH {
				continue
			}
			if p.Reverse {
				z = playH - 1 - z
			}
			p.add(dst, grid.C(x, z))
		}
	}
}

// evalRollingX overlays both diagonals at the same offset, so the two
// lines cross and the X rolls as one shape.
func (p *Pattern) evalRollingX(dst *grid.Set, nowMs int64, baseSpeedMs float64) {
	playH := p.g.PlayableH()
	period := p.g.W + playH
	d := int(float64(nowMs+p.offsetMs)/baseSpeedMs*p.Speed) % period
	for x := 0; x < p.g.W; x++ {
		z := d - x
		if z >= 0 && z < playH {
			p.add(dst, grid.C(x, z))
		}
		za := playH - 1 - (d - x)
		if za >= 0 && za < playH {
			p.add(dst, grid.C(x, za))
		}
	}
}
