package engine

// Board is the set of tiles currently on a width x width grid.
// Tiles are stored in a flat slice indexed by Hash; slot 0 belongs to
// OutOfBounds and is never occupied, so off-board lookups read as empty.
type Board struct {
	width int
	slots []*Tile
	src   ColorSource
	count int
}

// NewBoard creates an empty board. New tiles take their color from src.
func NewBoard(width int, src ColorSource) *Board {
	return &Board{
		width: width,
		slots: make([]*Tile, width*width+1),
		src:   src,
	}
}

// Width returns the board dimension.
func (b *Board) Width() int {
	return b.width
}

// Len returns the number of occupied cells.
func (b *Board) Len() int {
	return b.count
}

// InBounds reports whether (row, col) is on the board.
func (b *Board) InBounds(row, col int) bool {
	return InBounds(b.width, row, col)
}

// Hash returns the storage key for (row, col), or OutOfBounds.
func (b *Board) Hash(row, col int) int {
	return Hash(b.width, row, col)
}

// Put inserts the tile at its own position, replacing any occupant.
// Tiles positioned off the board or colored ColorEmpty are dropped.
func (b *Board) Put(t Tile) {
	key := b.Hash(t.Row, t.Col)
	if key == OutOfBounds || t.Color == ColorEmpty {
		return
	}
	if b.slots[key] == nil {
		b.count++
	}
	tile := t
	b.slots[key] = &tile
}

// Get returns a copy of the tile at (row, col).
func (b *Board) Get(row, col int) (Tile, bool) {
	t := b.slots[b.Hash(row, col)]
	if t == nil {
		return Tile{}, false
	}
	return *t, true
}

// Has reports whether (row, col) is occupied.
func (b *Board) Has(row, col int) bool {
	return b.slots[b.Hash(row, col)] != nil
}

// ColorAt returns the color at (row, col), or ColorEmpty.
func (b *Board) ColorAt(row, col int) Color {
	t := b.slots[b.Hash(row, col)]
	if t == nil {
		return ColorEmpty
	}
	return t.Color
}

// Remove clears (row, col). Removing an empty cell is a no-op.
func (b *Board) Remove(row, col int) {
	key := b.Hash(row, col)
	if key == OutOfBounds || b.slots[key] == nil {
		return
	}
	b.slots[key] = nil
	b.count--
}

// MoveDown moves the tile at (row, col) one cell toward row 0.
// The destination is not checked; the caller guarantees it is empty.
// A tile already on row 0 stays put.
func (b *Board) MoveDown(row, col int) {
	key := b.Hash(row, col)
	t := b.slots[key]
	if t == nil || row == 0 {
		return
	}
	b.slots[key] = nil
	b.count--

	t.Row--
	b.place(t)
}

// place indexes an owned tile at its current position.
func (b *Board) place(t *Tile) {
	key := b.Hash(t.Row, t.Col)
	if key == OutOfBounds {
		return
	}
	if b.slots[key] == nil {
		b.count++
	}
	b.slots[key] = t
}

// FillColumnRandom puts a fresh tile in every row of col, overwriting
// whatever was there.
func (b *Board) FillColumnRandom(col int) {
	if !b.InBounds(0, col) {
		return
	}
	for row := range b.width {
		b.Put(Tile{Row: row, Col: col, Color: b.src.NextColor()})
	}
}

// IsColumnEmpty reports whether no row of col is occupied.
func (b *Board) IsColumnEmpty(col int) bool {
	for row := range b.width {
		if b.Has(row, col) {
			return false
		}
	}
	return true
}

// SwapColumns exchanges the full contents of columns a and b row by row.
// A missing tile on one side leaves the matching cell on the other side empty.
func (b *Board) SwapColumns(a, c int) {
	if !b.InBounds(0, a) || !b.InBounds(0, c) || a == c {
		return
	}
	for row := range b.width {
		ka, kc := b.Hash(row, a), b.Hash(row, c)
		ta, tc := b.slots[ka], b.slots[kc]
		if ta != nil {
			ta.Col = c
		}
		if tc != nil {
			tc.Col = a
		}
		b.slots[ka], b.slots[kc] = tc, ta
	}
}

// Tiles returns a snapshot of all occupied cells in row-major order.
func (b *Board) Tiles() []Tile {
	tiles := make([]Tile, 0, b.count)
	for _, t := range b.slots[1:] {
		if t != nil {
			tiles = append(tiles, *t)
		}
	}
	return tiles
}

// Grid returns the board as rows of colors, row 0 first.
// Empty cells are ColorEmpty.
func (b *Board) Grid() [][]Color {
	grid := make([][]Color, b.width)
	for row := range b.width {
		grid[row] = make([]Color, b.width)
		for col := range b.width {
			grid[row][col] = b.ColorAt(row, col)
		}
	}
	return grid
}
