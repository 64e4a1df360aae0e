package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')  // Should not panic
	s.Set(100, 0, 'A') // Should not panic
	s.Set(0, -1, 'A')  // Should not panic
	s.Set(0, 100, 'A') // Should not panic

	// Out of bounds get should return space
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenSetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(3, 3, '@', ColorRed)
	cell := s.GetCell(3, 3)
	if cell.Rune != '@' {
		t.Errorf("Rune = %q, expected '@'", cell.Rune)
	}
	if cell.Color != ColorRed {
		t.Errorf("Color = %v, expected red", cell.Color)
	}

	// Out of bounds returns a blank default cell
	blank := s.GetCell(-1, -1)
	if blank.Rune != ' ' || blank.Color != ColorDefault {
		t.Errorf("Out of bounds GetCell = %+v", blank)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, 'X', ColorGreen)
	s.Clear()

	if s.Get(5, 5) != ' ' {
		t.Error("Clear should erase the rune")
	}
	if s.GetCell(5, 5).Color != ColorDefault {
		t.Error("Clear should reset the color")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "Hi")
	if s.Get(2, 1) != 'H' || s.Get(3, 1) != 'i' {
		t.Error("DrawText did not place the runes")
	}

	// Clipped text should not panic
	s.DrawText(8, 1, "Hello")
	if s.Get(8, 1) != 'H' || s.Get(9, 1) != 'e' {
		t.Error("DrawText should place runes up to the edge")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)

	s.DrawTextCentered(1, "abc")
	if s.Get(4, 1) != 'a' || s.Get(5, 1) != 'b' || s.Get(6, 1) != 'c' {
		t.Errorf("Centered text misplaced: %q", s.Row(1))
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(2, 2, 'X')

	s.Resize(20, 5)
	if s.Width() != 20 || s.Height() != 5 {
		t.Errorf("Resize to (20,5) got (%d,%d)", s.Width(), s.Height())
	}

	// Content within the overlapping region survives
	if s.Get(2, 2) != 'X' {
		t.Error("Resize should preserve surviving content")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	got := s.String()
	want := "a  \n  b"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if !strings.HasPrefix(s.Row(0), "a") {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
	if s.Row(100) != "   " {
		t.Errorf("Out of bounds Row = %q", s.Row(100))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' {
		t.Error("Box top corners misplaced")
	}
	if s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Error("Box bottom corners misplaced")
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("Box edges misplaced")
	}
}

func TestScreenDrawLines(t *testing.T) {
	s := NewScreen(10, 10)

	s.DrawHLine(1, 1, 3, '-')
	if s.Get(1, 1) != '-' || s.Get(3, 1) != '-' || s.Get(4, 1) == '-' {
		t.Error("DrawHLine misplaced")
	}

	s.DrawVLine(5, 2, 3, '|')
	if s.Get(5, 2) != '|' || s.Get(5, 4) != '|' || s.Get(5, 5) == '|' {
		t.Error("DrawVLine misplaced")
	}
}
