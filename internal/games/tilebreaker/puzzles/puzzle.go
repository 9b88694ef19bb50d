// Package puzzles loads hand-made starting boards from YAML files.
// This package depends on engine but engine does not depend on puzzles.
package puzzles

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tilebreaker/internal/games/tilebreaker/engine"
)

// ErrInvalidPuzzle wraps every parse and validation failure.
var ErrInvalidPuzzle = errors.New("puzzles: invalid puzzle")

// emptyCell marks an unoccupied cell in a row string.
const emptyCell = '.'

// yamlPuzzle is the on-disk layout. Rows are listed top row first, the
// way the board is drawn; each character is a color digit or '.'.
type yamlPuzzle struct {
	ID     string   `yaml:"id"`
	Name   string   `yaml:"name"`
	Colors int      `yaml:"colors,omitempty"`
	Rows   []string `yaml:"rows"`
}

// Puzzle is a parsed starting board.
type Puzzle struct {
	ID     string
	Name   string
	Colors int
	// Grid is indexed [row][col] with row 0 at the bottom.
	Grid     [][]engine.Color
	FilePath string
}

// Width returns the board width.
func (p Puzzle) Width() int {
	return len(p.Grid)
}

// Layout returns the key scores for this puzzle are grouped by.
func (p Puzzle) Layout() string {
	return "puzzle-" + p.ID
}

// NewSession starts a game on the puzzle's board. Cleared columns are
// refilled from src.
func (p Puzzle) NewSession(src engine.ColorSource) (*engine.Session, error) {
	return engine.NewGameFromGrid(p.Grid,
		engine.WithColors(p.Colors),
		engine.WithColorSource(src),
	)
}

// ParseYAML parses a puzzle file. A missing color count is taken from the
// highest color used on the board.
func ParseYAML(data []byte) (Puzzle, error) {
	var yp yamlPuzzle
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return Puzzle{}, fmt.Errorf("%w: yaml unmarshal: %v", ErrInvalidPuzzle, err)
	}
	if yp.ID == "" {
		return Puzzle{}, fmt.Errorf("%w: missing id", ErrInvalidPuzzle)
	}

	width := len(yp.Rows)
	if width < 1 || width > engine.MaxWidth {
		return Puzzle{}, fmt.Errorf("%w: %d rows (must be 1..%d)", ErrInvalidPuzzle, width, engine.MaxWidth)
	}

	grid := make([][]engine.Color, width)
	highest := 0
	for i, line := range yp.Rows {
		line = strings.TrimSpace(line)
		if len(line) != width {
			return Puzzle{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidPuzzle, i+1, len(line), width)
		}

		row := width - 1 - i
		grid[row] = make([]engine.Color, width)
		for col, ch := range line {
			if ch == emptyCell {
				continue
			}
			if ch < '1' || ch > '9' {
				return Puzzle{}, fmt.Errorf("%w: row %d: bad cell %q", ErrInvalidPuzzle, i+1, ch)
			}
			c := int(ch - '0')
			grid[row][col] = engine.Color(c)
			highest = max(highest, c)
		}
	}

	colors := yp.Colors
	if colors == 0 {
		colors = max(highest, engine.MinColors)
	}
	if colors < engine.MinColors || colors < highest {
		return Puzzle{}, fmt.Errorf("%w: colors %d (board uses %d, minimum %d)", ErrInvalidPuzzle, colors, highest, engine.MinColors)
	}

	name := yp.Name
	if name == "" {
		name = yp.ID
	}

	return Puzzle{
		ID:     yp.ID,
		Name:   name,
		Colors: colors,
		Grid:   grid,
	}, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
