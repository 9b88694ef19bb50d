package engine

// Fall drops tiles into empty cells below them until no tile in any column
// floats above a gap. Columns are independent and keep their vertical order.
// Returns the number of single-cell moves made.
func (b *Board) Fall() int {
	moves := 0
	for col := range b.width {
		moves += b.fallColumn(col)
	}
	return moves
}

// fallColumn repeats top-down passes over col until a pass moves nothing.
func (b *Board) fallColumn(col int) int {
	moves := 0
	for {
		moved := false
		for row := b.width - 1; row >= 1; row-- {
			if b.Has(row, col) && !b.Has(row-1, col) {
				b.MoveDown(row, col)
				moved = true
				moves++
			}
		}
		if !moved {
			return moves
		}
	}
}

// ShiftLeft moves non-empty columns left over empty ones until all empty
// columns sit at the high-index end. Relative column order is preserved.
// Returns the number of swaps made.
func (b *Board) ShiftLeft() int {
	swaps := 0
	for {
		swapped := false
		for col := b.width - 1; col >= 1; col-- {
			if !b.IsColumnEmpty(col) && b.IsColumnEmpty(col-1) {
				b.SwapColumns(col, col-1)
				swapped = true
				swaps++
			}
		}
		if !swapped {
			return swaps
		}
	}
}

// EmptyColumns counts columns with no tiles.
func (b *Board) EmptyColumns() int {
	n := 0
	for col := range b.width {
		if b.IsColumnEmpty(col) {
			n++
		}
	}
	return n
}

// RefillEmptyColumns fills every empty column with fresh tiles and returns
// how many columns were filled.
func (b *Board) RefillEmptyColumns() int {
	n := 0
	for col := range b.width {
		if b.IsColumnEmpty(col) {
			b.FillColumnRandom(col)
			n++
		}
	}
	return n
}
