package core

import (
	"strings"
)

// Cell is one character position on the screen.
type Cell struct {
	Rune    rune
	Color   Color
	Reverse bool // swap foreground and background, used for the cursor
}

var blankCell = Cell{Rune: ' '}

// Screen is a fixed-size grid of cells that games draw into. The platform
// turns it into terminal output. Cells are stored row by row in one slice.
// Writes outside the screen are dropped.
type Screen struct {
	width  int
	height int
	cells  []Cell
}

// NewScreen creates a blank screen.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Width returns the screen width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen size. Content in the top-left corner that
// still fits is kept.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if s.cells != nil && width == s.width && height == s.height {
		return
	}

	old, oldW := s.cells, s.width
	oldH := s.height

	s.width, s.height = width, height
	s.cells = make([]Cell, width*height)
	s.Clear()

	copyW := min(oldW, width)
	for y := range min(oldH, height) {
		copy(s.cells[y*width:y*width+copyW], old[y*oldW:y*oldW+copyW])
	}
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blankCell
	}
}

// index returns the slice index of (x, y), or -1 off screen.
func (s *Screen) index(x, y int) int {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return -1
	}
	return y*s.width + x
}

// Set places an uncolored rune.
func (s *Screen) Set(x, y int, r rune) {
	s.SetCell(x, y, Cell{Rune: r})
}

// SetCell places a full cell.
func (s *Screen) SetCell(x, y int, cell Cell) {
	if i := s.index(x, y); i >= 0 {
		s.cells[i] = cell
	}
}

// GetCell returns the cell at (x, y), blank off screen.
func (s *Screen) GetCell(x, y int) Cell {
	if i := s.index(x, y); i >= 0 {
		return s.cells[i]
	}
	return blankCell
}

// Get returns the rune at (x, y), a space off screen.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// DrawText writes text left to right from (x, y), one rune per cell.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColored(x, y, text, ColorDefault)
}

// DrawTextColored writes text in color c.
func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	for _, r := range text {
		s.SetCell(x, y, Cell{Rune: r, Color: c})
		x++
	}
}

// DrawTextCentered writes text centered on row y.
func (s *Screen) DrawTextCentered(y int, text string) {
	s.DrawText((s.width-len([]rune(text)))/2, y, text)
}

// DrawRect fills r with an uncolored rune.
func (s *Screen) DrawRect(r Rect, fill rune) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.Set(x, y, fill)
		}
	}
}

// DrawBox outlines r with box-drawing characters.
func (s *Screen) DrawBox(r Rect) {
	s.DrawBoxColored(r, ColorDefault)
}

// DrawBoxColored outlines r in color c.
func (s *Screen) DrawBoxColored(r Rect, c Color) {
	if r.W < 2 || r.H < 2 {
		return
	}
	put := func(x, y int, ch rune) {
		s.SetCell(x, y, Cell{Rune: ch, Color: c})
	}

	right, bottom := r.Right()-1, r.Bottom()-1
	for x := r.X + 1; x < right; x++ {
		put(x, r.Y, '─')
		put(x, bottom, '─')
	}
	for y := r.Y + 1; y < bottom; y++ {
		put(r.X, y, '│')
		put(right, y, '│')
	}
	put(r.X, r.Y, '┌')
	put(right, r.Y, '┐')
	put(r.X, bottom, '└')
	put(right, bottom, '┘')
}

// Row returns row y as plain text, blank off screen.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	sb.Grow(s.width)
	for _, c := range s.cells[y*s.width : (y+1)*s.width] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// String returns the whole screen as plain text, rows joined by newlines.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range s.height {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
