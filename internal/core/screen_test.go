package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	if s.String() != "      \n      \n      " {
		t.Errorf("String() = %q, expected blank rows", s.String())
	}
}

func TestScreenCellsClipSilently(t *testing.T) {
	s := NewScreen(4, 2)

	s.SetCell(1, 1, Cell{Rune: '█', Color: ColorRed})
	s.SetCell(-1, 0, Cell{Rune: 'x'})
	s.SetCell(4, 0, Cell{Rune: 'x'})
	s.SetCell(0, 2, Cell{Rune: 'x'})

	if got := s.GetCell(1, 1); got.Rune != '█' || got.Color != ColorRed {
		t.Errorf("GetCell(1, 1) = %+v, expected red tile", got)
	}
	if got := s.GetCell(9, 9); got != blankCell {
		t.Errorf("GetCell off screen = %+v, expected blank", got)
	}
	if strings.ContainsRune(s.String(), 'x') {
		t.Error("off-screen writes should be dropped")
	}
}

func TestScreenText(t *testing.T) {
	tests := []struct {
		name     string
		draw     func(s *Screen)
		expected string
	}{
		{"plain", func(s *Screen) { s.DrawText(1, 0, "Score") }, " Score    "},
		{"clipped", func(s *Screen) { s.DrawText(7, 0, "Moves") }, "       Mov"},
		{"centered", func(s *Screen) { s.DrawTextCentered(0, "Hi") }, "    Hi    "},
		{"wide runes", func(s *Screen) { s.DrawTextCentered(0, "▒▒") }, "    ▒▒    "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(10, 1)
			tt.draw(s)
			if got := s.Row(0); got != tt.expected {
				t.Errorf("Row(0) = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(5, 1)
	s.DrawTextColored(0, 0, "ab", ColorGreen)

	if s.GetCell(1, 0).Color != ColorGreen {
		t.Errorf("cell color = %v, expected green", s.GetCell(1, 0).Color)
	}
	if s.GetCell(2, 0).Color != ColorDefault {
		t.Error("cells after the text should keep the default color")
	}
}

func TestScreenDrawBoxAroundBoard(t *testing.T) {
	s := NewScreen(8, 4)
	s.DrawRect(NewRect(0, 0, 8, 4), '#')
	s.DrawBoxColored(NewRect(1, 0, 6, 4), ColorGray)

	expected := []string{
		"#┌────┐#",
		"#│####│#",
		"#│####│#",
		"#└────┘#",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, expected %q", y, got, want)
		}
	}
	if s.GetCell(1, 0).Color != ColorGray {
		t.Error("frame should use the given color")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawRect(NewRect(0, 0, 3, 2), '█')
	s.SetCell(0, 0, Cell{Rune: '▒', Reverse: true})

	s.Clear()
	for y := range 2 {
		for x := range 3 {
			if got := s.GetCell(x, y); got != blankCell {
				t.Errorf("GetCell(%d, %d) = %+v after Clear, expected blank", x, y, got)
			}
		}
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(10, 4)
	s.DrawText(0, 0, "Score: 3")
	s.DrawText(0, 3, "bottom")

	s.Resize(5, 2)
	if s.Row(0) != "Score" {
		t.Errorf("Row(0) after shrink = %q, expected %q", s.Row(0), "Score")
	}

	s.Resize(12, 5)
	if !strings.HasPrefix(s.Row(0), "Score") {
		t.Errorf("Row(0) after grow = %q, expected prefix Score", s.Row(0))
	}
	if strings.TrimSpace(s.Row(3)) != "" {
		t.Errorf("Row(3) = %q, expected content lost by the shrink", s.Row(3))
	}
	if s.Row(-1) != strings.Repeat(" ", 12) {
		t.Error("Row off screen should be blank")
	}
}
