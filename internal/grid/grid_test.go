package grid

import "testing"

func TestInBounds(t *testing.T) {
	g := New(12, 16)

	cases := []struct {
		c    Coord
		want bool
	}{
		{C(0, 0), true},
		{C(11, 15), true},
		{C(6, 14), true},
		{C(-1, 0), false},
		{C(0, -1), false},
		{C(12, 0), false},
		{C(0, 16), false},
	}

	for _, tc := range cases {
		if got := g.InBounds(tc.c); got != tc.want {
			t.Errorf("InBounds(%v) = %v, want %v", tc.c, got, tc.want)
		}
	}
}

func TestPlayableH(t *testing.T) {
	g := New(12, 16)
	if g.PlayableH() != 14 {
		t.Errorf("PlayableH() = %d, want 14", g.PlayableH())
	}
}

func TestSetMembership(t *testing.T) {
	s := NewSet()

	if s.Has(C(3, 4)) {
		t.Error("empty set should not contain (3,4)")
	}

	s.Add(C(3, 4))
	s.Add(C(3, 4)) // duplicate insert
	s.Add(C(5, 6))

	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if !s.Has(C(3, 4)) || !s.Has(C(5, 6)) {
		t.Error("set should contain both added coordinates")
	}

	s.Remove(C(3, 4))
	if s.Has(C(3, 4)) {
		t.Error("removed coordinate should not be a member")
	}
	s.Remove(C(9, 9)) // absent remove is a no-op
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestSetSubtract(t *testing.T) {
	a := NewSet()
	b := NewSet()
	for x := 0; x < 5; x++ {
		a.Add(C(x, 0))
	}
	b.Add(C(1, 0))
	b.Add(C(3, 0))
	b.Add(C(8, 8)) // not in a

	a.Subtract(b)

	if a.Len() != 3 {
		t.Errorf("Len() after Subtract = %d, want 3", a.Len())
	}
	if a.Has(C(1, 0)) || a.Has(C(3, 0)) {
		t.Error("subtracted coordinates should be gone")
	}
	if !a.Has(C(0, 0)) || !a.Has(C(2, 0)) || !a.Has(C(4, 0)) {
		t.Error("unrelated coordinates should survive Subtract")
	}
}

func TestSetIntersects(t *testing.T) {
	a := NewSet()
	b := NewSet()
	a.Add(C(1, 1))
	b.Add(C(2, 2))

	if a.Intersects(b) {
		t.Error("disjoint sets should not intersect")
	}

	b.Add(C(1, 1))
	if !a.Intersects(b) {
		t.Error("sets sharing (1,1) should intersect")
	}
}

func TestSetClearKeepsNothing(t *testing.T) {
	s := NewSet()
	for x := 0; x < 10; x++ {
		s.Add(C(x, x))
	}
	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", s.Len())
	}
}

func TestCoordDistances(t *testing.T) {
	a := C(2, 3)
	b := C(5, 1)

	if d := a.Manhattan(b); d != 5 {
		t.Errorf("Manhattan = %d, want 5", d)
	}
	if d := a.Chebyshev(b); d != 3 {
		t.Errorf("Chebyshev = %d, want 3", d)
	}
}
