package grid

// Grid defines the addressable coordinate space for a session.
// It holds no mutable cell state; the truth about what occupies a cell
// lives in the coordinate Sets owned by the game.
type Grid struct {
	W int // Width of the board in cells
	H int // Height of the board in cells
}

// StartZoneRows is the number of rows at the bottom of the board reserved
// for the start zone. Sweeping hazard patterns stay out of these rows.
const StartZoneRows = 2

// New creates a grid with the given dimensions.
func New(w, h int) Grid {
	return Grid{W: w, H: h}
}

// InBounds returns true if the coordinate is on the board.
func (g Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Z >= 0 && c.Z < g.H
}

// PlayableH returns the height of the sub-grid hazards may sweep across.
func (g Grid) PlayableH() int {
	return g.H - StartZoneRows
}

// Center returns the center cell of the playable sub-grid.
func (g Grid) Center() Coord {
	return Coord{X: g.W / 2, Z: g.PlayableH() / 2}
}
