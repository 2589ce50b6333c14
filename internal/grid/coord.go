// Package grid provides the fixed coordinate space for the magma board and
// the membership sets that hold the authoritative cell state (safe islands,
// collectibles, hazard occupancy).
package grid

import "fmt"

// Coord represents a cell on the board.
// X increases to the right, Z increases toward the player's start zone.
type Coord struct {
	X int
	Z int
}

// C is a convenience constructor for Coord.
func C(x, z int) Coord {
	return Coord{X: x, Z: z}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Z)
}

// Add returns a new Coord offset by (dx, dz).
func (c Coord) Add(dx, dz int) Coord {
	return Coord{X: c.X + dx, Z: c.Z + dz}
}

// Manhattan returns the Manhattan distance to another coordinate.
func (c Coord) Manhattan(other Coord) int {
	dx := c.X - other.X
	dz := c.Z - other.Z
	if dx < 0 {
		dx = -dx
	}
	if dz < 0 {
		dz = -dz
	}
	return dx + dz
}

// Chebyshev returns the chessboard distance to another coordinate.
func (c Coord) Chebyshev(other Coord) int {
	dx := c.X - other.X
	dz := c.Z - other.Z
	if dx < 0 {
		dx = -dx
	}
	if dz < 0 {
		dz = -dz
	}
	if dx > dz {
		return dx
	}
	return dz
}
