// Package config provides YAML-based configuration loading for TileBreaker.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tilebreaker/internal/core"
	"github.com/vovakirdan/tilebreaker/internal/games/tilebreaker/engine"
	"github.com/vovakirdan/tilebreaker/internal/storage"
)

// TileBreakerConfig contains all configuration for a TileBreaker game.
type TileBreakerConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Palette []string      `yaml:"palette"`
	Display DisplayConfig `yaml:"display"`
}

// BoardConfig defines the board layout.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Colors int `yaml:"colors"`
}

// DisplayConfig defines how tiles are drawn.
type DisplayConfig struct {
	TileRune   string `yaml:"tile_rune"`
	FrameColor string `yaml:"frame_color"`
}

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid tilebreaker config")

// Validate checks the config for values the game cannot run with.
func (c TileBreakerConfig) Validate() error {
	if c.Board.Width < 1 || c.Board.Width > engine.MaxWidth {
		return fmt.Errorf("%w: board.width %d must be between 1 and %d", ErrInvalidConfig, c.Board.Width, engine.MaxWidth)
	}
	if c.Board.Colors < engine.MinColors {
		return fmt.Errorf("%w: board.colors %d must be at least %d", ErrInvalidConfig, c.Board.Colors, engine.MinColors)
	}
	if len(c.Palette) < c.Board.Colors {
		return fmt.Errorf("%w: palette has %d colors, board needs %d", ErrInvalidConfig, len(c.Palette), c.Board.Colors)
	}
	for i, name := range c.Palette {
		if _, err := core.ParseColor(name); err != nil {
			return fmt.Errorf("%w: palette[%d]: %v", ErrInvalidConfig, i, err)
		}
	}
	if c.Display.FrameColor != "" {
		if _, err := core.ParseColor(c.Display.FrameColor); err != nil {
			return fmt.Errorf("%w: display.frame_color: %v", ErrInvalidConfig, err)
		}
	}
	if n := len([]rune(c.Display.TileRune)); n > 1 {
		return fmt.Errorf("%w: display.tile_rune must be a single character", ErrInvalidConfig)
	}
	return nil
}

// PaletteColors returns the screen color for each tile color, indexed by
// tile color (index 0 is the empty cell). Call Validate first.
func (c TileBreakerConfig) PaletteColors() []core.Color {
	colors := make([]core.Color, c.Board.Colors+1)
	for i := 0; i < c.Board.Colors && i < len(c.Palette); i++ {
		colors[i+1], _ = core.ParseColor(c.Palette[i])
	}
	return colors
}

// TileRune returns the rune used to draw a tile.
func (c TileBreakerConfig) TileRune() rune {
	for _, r := range c.Display.TileRune {
		return r
	}
	return '█'
}

// FrameColor returns the color of the board frame.
func (c TileBreakerConfig) FrameColor() core.Color {
	color, err := core.ParseColor(c.Display.FrameColor)
	if err != nil {
		return core.ColorDefault
	}
	return color
}

// Layout returns a short key describing the board, e.g. "10x5"
// for a 10x10 board with 5 colors. Scores are kept per layout.
func (c TileBreakerConfig) Layout() string {
	return storage.LayoutKey(c.Board.Width, c.Board.Colors)
}

// ApplyOverrides replaces board settings with non-zero CLI values.
func (c *TileBreakerConfig) ApplyOverrides(width, colors int) {
	if width != 0 {
		c.Board.Width = width
	}
	if colors != 0 {
		c.Board.Colors = colors
	}
}
