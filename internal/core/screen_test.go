package core

import "testing"

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '@')
	if got := s.Get(3, 2); got != '@' {
		t.Errorf("Get(3,2) = %q, want '@'", got)
	}

	// Out-of-bounds writes are dropped, reads return space.
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, want space", got)
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(8, 4)
	s.SetColored(2, 1, '#', ColorOrange)

	cell := s.GetCell(2, 1)
	if cell.Rune != '#' || cell.Color != ColorOrange {
		t.Errorf("GetCell(2,1) = %+v, want '#' in orange", cell)
	}

	s.Clear()
	cell = s.GetCell(2, 1)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("Clear should reset cells, got %+v", cell)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(1, 1, 'a')
	s.Set(9, 4, 'b')

	s.Resize(6, 3)
	if got := s.Get(1, 1); got != 'a' {
		t.Errorf("content inside new bounds should survive, got %q", got)
	}

	s.Resize(12, 6)
	if got := s.Get(1, 1); got != 'a' {
		t.Errorf("content should survive growth, got %q", got)
	}
	if got := s.Get(9, 4); got != ' ' {
		t.Errorf("content clipped by shrink should be gone, got %q", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(7, 1, "hello") // clips at the edge

	if got := s.Row(1); got != "       hel" {
		t.Errorf("Row(1) = %q, want %q", got, "       hel")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	if got := s.String(); got != "a  \n  b" {
		t.Errorf("String() = %q", got)
	}
}
