package engine

import (
	"errors"
	"fmt"
	"time"
)

const (
	// DefaultColors is the color count used when none is configured.
	DefaultColors = 5
	// MinColors is the smallest color count that still allows non-trivial play.
	MinColors = 2
	// MaxColors is the largest color count a Color can hold.
	MaxColors = 255
	// MaxWidth bounds the board so it fits a terminal at two cells per tile.
	MaxWidth = 26
)

var (
	// ErrInvalidWidth is returned for a board width outside [1, MaxWidth].
	ErrInvalidWidth = errors.New("engine: invalid board width")
	// ErrInvalidColorCount is returned for fewer than MinColors colors.
	ErrInvalidColorCount = errors.New("engine: invalid color count")
	// ErrInvalidColor is raised when a ColorSource yields a color outside
	// 1..K. NewGame reports it as an error; during a move it panics.
	ErrInvalidColor = errors.New("engine: color source out of range")
	// ErrInvalidGrid is returned when a hand-built layout is malformed.
	ErrInvalidGrid = errors.New("engine: invalid grid")
	// ErrNoGame is returned when moving on a session not created by NewGame.
	ErrNoGame = errors.New("engine: no game in progress")
)

// Session is one game: a board plus the running score.
// It is not safe for concurrent use.
type Session struct {
	board  *Board
	colors int
	score  int
	moves  int
}

// Option customizes a new Session.
type Option func(*options)

type options struct {
	colors int
	src    ColorSource
}

// WithColors sets the number of tile colors.
func WithColors(k int) Option {
	return func(o *options) {
		o.colors = k
	}
}

// WithColorSource sets where new tile colors come from.
func WithColorSource(src ColorSource) Option {
	return func(o *options) {
		o.src = src
	}
}

func buildOptions(opts []Option) (options, error) {
	o := options{colors: DefaultColors}
	for _, opt := range opts {
		opt(&o)
	}
	if o.colors < MinColors || o.colors > MaxColors {
		return o, fmt.Errorf("%w: %d (must be %d..%d)", ErrInvalidColorCount, o.colors, MinColors, MaxColors)
	}
	if o.src == nil {
		o.src = NewRandomSource(time.Now().UnixNano(), o.colors)
	}
	o.src = checkedSource{src: o.src, colors: o.colors}
	return o, nil
}

// checkedSource panics with ErrInvalidColor when src leaves 1..colors, so
// an empty or out-of-palette tile never reaches the board.
type checkedSource struct {
	src    ColorSource
	colors int
}

func (s checkedSource) NextColor() Color {
	c := s.src.NextColor()
	if c == ColorEmpty || int(c) > s.colors {
		panic(fmt.Errorf("%w: got %d, want 1..%d", ErrInvalidColor, c, s.colors))
	}
	return c
}

// fillBoard fills every column, turning a bad source color into an error.
func fillBoard(board *Board) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok || !errors.Is(e, ErrInvalidColor) {
				panic(r)
			}
			err = e
		}
	}()
	for col := range board.Width() {
		board.FillColumnRandom(col)
	}
	return nil
}

func checkWidth(width int) error {
	if width < 1 || width > MaxWidth {
		return fmt.Errorf("%w: %d (must be 1..%d)", ErrInvalidWidth, width, MaxWidth)
	}
	return nil
}

// NewGame starts a game on a width x width board with every column filled.
func NewGame(width int, opts ...Option) (*Session, error) {
	if err := checkWidth(width); err != nil {
		return nil, err
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	board := NewBoard(width, o.src)
	if err := fillBoard(board); err != nil {
		return nil, err
	}
	return &Session{board: board, colors: o.colors}, nil
}

// NewGameFromGrid starts a game from a fixed layout. grid[row][col] holds
// the color at that cell, row 0 being the bottom row; ColorEmpty leaves the
// cell empty. The grid must be square. Refills use the configured source.
func NewGameFromGrid(grid [][]Color, opts ...Option) (*Session, error) {
	width := len(grid)
	if err := checkWidth(width); err != nil {
		return nil, err
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	board := NewBoard(width, o.src)
	for row, cells := range grid {
		if len(cells) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidGrid, row, len(cells), width)
		}
		for col, c := range cells {
			if int(c) > o.colors {
				return nil, fmt.Errorf("%w: color %d at %v exceeds %d colors", ErrInvalidGrid, c, P(row, col), o.colors)
			}
			if c != ColorEmpty {
				board.Put(Tile{Row: row, Col: col, Color: c})
			}
		}
	}
	return &Session{board: board, colors: o.colors}, nil
}

// Score returns the number of columns cleared so far.
func (s *Session) Score() int {
	return s.score
}

// Moves returns the number of applied moves.
func (s *Session) Moves() int {
	return s.moves
}

// Width returns the board dimension, or 0 for a session without a board.
func (s *Session) Width() int {
	if s.board == nil {
		return 0
	}
	return s.board.Width()
}

// Colors returns the number of tile colors in play.
func (s *Session) Colors() int {
	return s.colors
}

// Tiles returns a snapshot of every occupied cell. Each call builds a new
// slice, so callers may iterate it once per frame.
func (s *Session) Tiles() []Tile {
	if s.board == nil {
		return nil
	}
	return s.board.Tiles()
}

// ColorAt returns the color at (row, col), or ColorEmpty.
func (s *Session) ColorAt(row, col int) Color {
	if s.board == nil {
		return ColorEmpty
	}
	return s.board.ColorAt(row, col)
}

// Snapshot returns the board as rows of colors, row 0 first.
func (s *Session) Snapshot() [][]Color {
	if s.board == nil {
		return nil
	}
	return s.board.Grid()
}

// IsValidMove reports whether clicking (row, col) would clear a region.
func (s *Session) IsValidMove(row, col int) bool {
	if s.board == nil {
		return false
	}
	return s.board.IsValidMove(row, col)
}

// RegionSize returns how many tiles a click on (row, col) would clear,
// or 0 if the move is not valid.
func (s *Session) RegionSize(row, col int) int {
	if !s.IsValidMove(row, col) {
		return 0
	}
	return len(s.board.Region(row, col))
}

// MoveResult describes what a single PerformMove did.
type MoveResult struct {
	Applied    bool  // false when the click was not a valid move
	Cleared    []Pos // cells removed by the click, before gravity
	ScoreDelta int   // columns left empty after compaction
	Refilled   int   // columns refilled; always equals ScoreDelta
}

// PerformMove clicks (row, col). An invalid click changes nothing and
// returns a zero MoveResult. A valid click clears the region, lets tiles
// fall, compacts columns left, scores the empty columns and refills them.
func (s *Session) PerformMove(row, col int) (MoveResult, error) {
	if s.board == nil {
		return MoveResult{}, ErrNoGame
	}
	if !s.board.IsValidMove(row, col) {
		return MoveResult{}, nil
	}

	cleared := s.board.ResolveMove(row, col)
	s.board.Fall()
	s.board.ShiftLeft()

	gained := s.board.EmptyColumns()
	s.score += gained
	refilled := s.board.RefillEmptyColumns()
	s.moves++

	return MoveResult{
		Applied:    true,
		Cleared:    cleared,
		ScoreDelta: gained,
		Refilled:   refilled,
	}, nil
}

// HasValidMoves reports whether any two orthogonally adjacent tiles share a
// color. Checking the right and upper neighbor of every tile covers each
// adjacent pair once.
func (s *Session) HasValidMoves() bool {
	if s.board == nil {
		return false
	}
	b := s.board
	for _, t := range b.slots[1:] {
		if t == nil {
			continue
		}
		if b.ColorAt(t.Row, t.Col+1) == t.Color || b.ColorAt(t.Row+1, t.Col) == t.Color {
			return true
		}
	}
	return false
}
