// Package engine implements the TileBreaker board and move resolution:
// region discovery, gravity, column compaction, scoring and the terminal
// state check. It has no I/O and no dependency on any frontend.
package engine

// Color identifies a tile color. Valid tile colors are 1..K; ColorEmpty
// marks an empty cell in snapshots and is never stored in a Tile.
type Color uint8

// ColorEmpty is the color reported for unoccupied cells.
const ColorEmpty Color = 0

// Tile is one colored unit on the board.
type Tile struct {
	Row   int
	Col   int
	Color Color
}

// Pos returns the tile's position.
func (t Tile) Pos() Pos {
	return Pos{Row: t.Row, Col: t.Col}
}
