package engine

// IsValidMove reports whether clicking (row, col) clears anything: the cell
// must hold a tile with at least one orthogonal neighbor of the same color.
func (b *Board) IsValidMove(row, col int) bool {
	color := b.ColorAt(row, col)
	if color == ColorEmpty {
		return false
	}
	for _, d := range neighbors {
		if b.ColorAt(row+d.Row, col+d.Col) == color {
			return true
		}
	}
	return false
}

// Region returns the maximal 4-connected set of same-colored tiles that
// contains (row, col). It returns nil for an empty or off-board cell.
// The board is not modified. Order of the result is unspecified.
func (b *Board) Region(row, col int) []Pos {
	color := b.ColorAt(row, col)
	if color == ColorEmpty {
		return nil
	}

	visited := make([]bool, len(b.slots))
	visited[b.Hash(row, col)] = true
	stack := []Pos{{Row: row, Col: col}}
	var region []Pos

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		region = append(region, cur)

		for _, d := range neighbors {
			nr, nc := cur.Row+d.Row, cur.Col+d.Col
			key := b.Hash(nr, nc)
			if key == OutOfBounds || visited[key] {
				continue
			}
			if b.ColorAt(nr, nc) != color {
				continue
			}
			visited[key] = true
			stack = append(stack, Pos{Row: nr, Col: nc})
		}
	}
	return region
}

// ResolveMove clears the region containing (row, col) and returns the
// cleared positions. It does nothing and returns nil unless the move is valid.
func (b *Board) ResolveMove(row, col int) []Pos {
	if !b.IsValidMove(row, col) {
		return nil
	}
	region := b.Region(row, col)
	for _, p := range region {
		b.Remove(p.Row, p.Col)
	}
	return region
}
