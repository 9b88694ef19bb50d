package config

import (
	_ "embed"
)

//go:embed defaults/tilebreaker.yaml
var defaultTileBreakerYAML []byte

// DefaultTileBreakerConfig returns the built-in TileBreaker configuration:
// a 10x10 board with five colors.
func DefaultTileBreakerConfig() TileBreakerConfig {
	return TileBreakerConfig{
		Board: BoardConfig{
			Width:  10,
			Colors: 5,
		},
		Palette: []string{"red", "blue", "green", "yellow", "orange"},
		Display: DisplayConfig{
			TileRune:   "█",
			FrameColor: "gray",
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultTileBreakerYAML
}
