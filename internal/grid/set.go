package grid

// Set is a membership-only collection of coordinates, keyed by the
// coordinate pair itself rather than a formatted string.
type Set struct {
	cells map[Coord]struct{}
}

// NewSet creates an empty coordinate set.
func NewSet() *Set {
	return &Set{cells: make(map[Coord]struct{})}
}

// Add inserts a coordinate into the set.
func (s *Set) Add(c Coord) {
	s.cells[c] = struct{}{}
}

// Remove deletes a coordinate from the set. Absent coordinates are a no-op.
func (s *Set) Remove(c Coord) {
	delete(s.cells, c)
}

// Has returns true if the coordinate is a member.
func (s *Set) Has(c Coord) bool {
	_, ok := s.cells[c]
	return ok
}

// Len returns the number of members.
func (s *Set) Len() int {
	return len(s.cells)
}

// Clear removes all members, keeping the allocation.
func (s *Set) Clear() {
	for c := range s.cells {
		delete(s.cells, c)
	}
}

// Each calls fn for every member. Iteration order is unspecified.
func (s *Set) Each(fn func(Coord)) {
	for c := range s.cells {
		fn(c)
	}
}

// Coords returns the members as a slice. Order is unspecified.
func (s *Set) Coords() []Coord {
	out := make([]Coord, 0, len(s.cells))
	for c := range s.cells {
		out = append(out, c)
	}
	return out
}

// Subtract removes every member of other from this set.
func (s *Set) Subtract(other *Set) {
	for c := range other.cells {
		delete(s.cells, c)
	}
}

// Intersects returns true if the two sets share any coordinate.
func (s *Set) Intersects(other *Set) bool {
	a, b := s, other
	if b.Len() < a.Len() {
		a, b = b, a
	}
	for c := range a.cells {
		if b.Has(c) {
			return true
		}
	}
	return false
}
