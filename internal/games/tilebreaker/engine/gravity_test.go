package engine

import "testing"

// assertNoFloating fails if any tile sits above an empty cell.
func assertNoFloating(t *testing.T, b *Board) {
	t.Helper()
	for col := range b.Width() {
		for row := 1; row < b.Width(); row++ {
			if b.Has(row, col) && !b.Has(row-1, col) {
				t.Errorf("tile at (%d,%d) floats over an empty cell", row, col)
			}
		}
	}
}

// assertLeftPacked fails if an empty column has a non-empty column to its right.
func assertLeftPacked(t *testing.T, b *Board) {
	t.Helper()
	seenEmpty := false
	for col := range b.Width() {
		empty := b.IsColumnEmpty(col)
		if seenEmpty && !empty {
			t.Errorf("column %d is non-empty but an earlier column is empty", col)
		}
		seenEmpty = seenEmpty || empty
	}
}

func columnColors(b *Board, col int) []Color {
	out := make([]Color, b.Width())
	for row := range b.Width() {
		out[row] = b.ColorAt(row, col)
	}
	return out
}

func TestFallStackedGaps(t *testing.T) {
	b := boardFrom([][]Color{
		{0, 1, 0, 2},
		{0, 0, 0, 3},
		{3, 2, 0, 0},
		{4, 0, 0, 1},
	})

	b.Fall()

	tests := []struct {
		col  int
		want []Color
	}{
		{0, []Color{3, 4, 0, 0}},
		{1, []Color{1, 2, 0, 0}},
		{2, []Color{0, 0, 0, 0}},
		{3, []Color{2, 3, 1, 0}},
	}
	for _, tc := range tests {
		got := columnColors(b, tc.col)
		for row := range got {
			if got[row] != tc.want[row] {
				t.Errorf("column %d = %v, expected %v", tc.col, got, tc.want)
				break
			}
		}
	}
	assertNoFloating(t, b)
}

func TestFallIdempotent(t *testing.T) {
	b := boardFrom([][]Color{
		{1, 0, 2},
		{0, 0, 0},
		{2, 3, 1},
	})

	if moves := b.Fall(); moves == 0 {
		t.Fatal("first Fall() should move tiles")
	}
	if moves := b.Fall(); moves != 0 {
		t.Errorf("second Fall() made %d moves, expected 0", moves)
	}
	assertNoFloating(t, b)
}

func TestShiftLeft(t *testing.T) {
	// Columns: A, empty, B, empty, C
	b := boardFrom([][]Color{
		{1, 0, 2, 0, 3},
		{1, 0, 0, 0, 3},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
	})

	b.ShiftLeft()

	assertLeftPacked(t, b)
	want := [][]Color{
		{1, 2, 3, 0, 0},
		{1, 0, 3, 0, 0},
	}
	for row, cells := range want {
		for col, c := range cells {
			if got := b.ColorAt(row, col); got != c {
				t.Errorf("ColorAt(%d, %d) = %d, expected %d", row, col, got, c)
			}
		}
	}
	if b.EmptyColumns() != 2 {
		t.Errorf("EmptyColumns() = %d, expected 2", b.EmptyColumns())
	}
}

func TestShiftLeftLeadingEmptyColumns(t *testing.T) {
	b := boardFrom([][]Color{
		{0, 0, 0, 4},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	b.ShiftLeft()

	if b.ColorAt(0, 0) != 4 {
		t.Errorf("ColorAt(0, 0) = %d, expected 4", b.ColorAt(0, 0))
	}
	assertLeftPacked(t, b)
}

func TestRefillEmptyColumns(t *testing.T) {
	src := NewSequenceSource(2)
	b := NewBoard(3, src)
	b.Put(Tile{Row: 0, Col: 0, Color: 1})

	filled := b.RefillEmptyColumns()

	if filled != 2 {
		t.Errorf("RefillEmptyColumns() = %d, expected 2", filled)
	}
	if src.Drawn() != 6 {
		t.Errorf("Drawn() = %d, expected 6", src.Drawn())
	}
	if b.Has(1, 0) {
		t.Error("non-empty column 0 should not be refilled")
	}
	if b.EmptyColumns() != 0 {
		t.Errorf("EmptyColumns() = %d after refill, expected 0", b.EmptyColumns())
	}
}
