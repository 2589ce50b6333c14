package hazard

import "github.com/jrichson/time-mission-magma-mayhem/internal/grid"

// snakeTurnChance is the per-step probability of a random 90-degree turn.
const snakeTurnChance = 0.15

// evalSnake advances the head to the step count the clock implies, then
// occupies the body trail. The catch-up loop makes evaluation idempotent
// at a fixed nowMs: a second call finds no steps owed and returns the
// same cells.
func (p *Pattern) evalSnake(dst *grid.Set, nowMs int64, baseSpeedMs float64) {
	stepMs := int64(baseSpeedMs / p.Speed)
	if stepMs < 1 {
		stepMs = 1
	}
	steps := nowMs / stepMs
	for p.snakeSteps < steps {
		p.snakeSteps++
		p.stepSnake()
	}
	for _, c := range p.snakeBody {
		p.add(dst, c)
	}
}

func (p *Pattern) stepSnake() {
	if p.rng.Float64() < snakeTurnChance {
		// Perpendicular turn, either hand.
		if p.rng.Intn(2) == 0 {
			p.snakeDir = grid.C(-p.snakeDir.Z, p.snakeDir.X)
		} else {
			p.snakeDir = grid.C(p.snakeDir.Z, -p.snakeDir.X)
		}
	}

	next := p.snakeHead.Add(p.snakeDir.X, p.snakeDir.Z)
	if !p.inSnakeArea(next) {
		// Bounce off the wall by reversing.
		p.snakeDir = grid.C(-p.snakeDir.X, -p.snakeDir.Z)
		next = p.snakeHead.Add(p.snakeDir.X, p.snakeDir.Z)
		if !p.inSnakeArea(next) {
			return
		}
	}

	p.snakeHead = next
	p.snakeBody = append([]grid.Coord{next}, p.snakeBody...)
	if len(p.snakeBody) > p.Width {
		p.snakeBody = p.snakeBody[:p.Width]
	}
}

func (p *Pattern) inSnakeArea(c grid.Coord) bool {
	return c.X >= 0 && c.X < p.g.W && c.Z >= 0 && c.Z < p.g.PlayableH()
}
