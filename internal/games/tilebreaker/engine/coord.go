package engine

import "fmt"

// OutOfBounds is the key returned by Hash for any cell outside the board.
// Valid keys start at 1, so it never aliases an in-bounds cell.
const OutOfBounds = 0

// Pos is a cell position on the board.
// Row 0 is the bottom row; rows grow upward. Col 0 is the leftmost column.
type Pos struct {
	Row int
	Col int
}

// P is a convenience constructor for Pos.
func P(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

// String returns a string representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// neighbors lists the four orthogonal offsets: up, right, down, left.
var neighbors = [4]Pos{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// InBounds reports whether (row, col) lies on a width x width board.
func InBounds(width, row, col int) bool {
	return row >= 0 && row < width && col >= 0 && col < width
}

// Hash maps an in-bounds cell to a unique key in [1, width*width].
// Every out-of-bounds cell maps to OutOfBounds.
func Hash(width, row, col int) int {
	if !InBounds(width, row, col) {
		return OutOfBounds
	}
	return row*width + col + 1
}
