package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tilebreaker/internal/core"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tilebreaker.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg TileBreakerConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}

	def := DefaultTileBreakerConfig()
	if cfg.Board != def.Board {
		t.Errorf("embedded board = %+v, expected %+v", cfg.Board, def.Board)
	}
	if len(cfg.Palette) != len(def.Palette) {
		t.Errorf("embedded palette has %d colors, expected %d", len(cfg.Palette), len(def.Palette))
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded default is invalid: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := writeConfig(t, `
board:
  width: 6
  colors: 3
palette: [cyan, magenta, white]
`)

	cfg, source, err := LoadTileBreaker(path)
	if err != nil {
		t.Fatalf("LoadTileBreaker() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Board.Width != 6 || cfg.Board.Colors != 3 {
		t.Errorf("Board = %+v, expected 6x3", cfg.Board)
	}
	// Unset values keep their defaults
	if cfg.TileRune() != '█' {
		t.Errorf("TileRune() = %q, expected default block", cfg.TileRune())
	}

	want := []core.Color{core.ColorDefault, core.ColorCyan, core.ColorMagenta, core.ColorWhite}
	got := cfg.PaletteColors()
	if len(got) != len(want) {
		t.Fatalf("PaletteColors() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("PaletteColors()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, _, err := LoadTileBreaker(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("missing custom config should fail")
	}
}

func TestLoadCustomPathMalformed(t *testing.T) {
	path := writeConfig(t, "board: [not, a, map")
	if _, _, err := LoadTileBreaker(path); err == nil {
		t.Error("malformed YAML should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TileBreakerConfig)
		ok     bool
	}{
		{"default", func(*TileBreakerConfig) {}, true},
		{"zero width", func(c *TileBreakerConfig) { c.Board.Width = 0 }, false},
		{"too wide", func(c *TileBreakerConfig) { c.Board.Width = 100 }, false},
		{"one color", func(c *TileBreakerConfig) { c.Board.Colors = 1 }, false},
		{"short palette", func(c *TileBreakerConfig) { c.Board.Colors = 6 }, false},
		{"unknown palette color", func(c *TileBreakerConfig) { c.Palette[0] = "mauve" }, false},
		{"unknown frame color", func(c *TileBreakerConfig) { c.Display.FrameColor = "plaid" }, false},
		{"long tile rune", func(c *TileBreakerConfig) { c.Display.TileRune = "##" }, false},
		{"empty tile rune", func(c *TileBreakerConfig) { c.Display.TileRune = "" }, true},
		{"minimum board", func(c *TileBreakerConfig) { c.Board.Width = 1; c.Board.Colors = 2 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTileBreakerConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tc.ok {
				t.Fatalf("Validate() = %v, expected ok=%v", err, tc.ok)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error %v does not wrap ErrInvalidConfig", err)
			}
		})
	}
}

func TestApplyOverridesAndLayout(t *testing.T) {
	cfg := DefaultTileBreakerConfig()
	if cfg.Layout() != "10x5" {
		t.Errorf("Layout() = %q, expected 10x5", cfg.Layout())
	}

	cfg.ApplyOverrides(8, 0)
	if cfg.Board.Width != 8 || cfg.Board.Colors != 5 {
		t.Errorf("Board = %+v after width override", cfg.Board)
	}
	cfg.ApplyOverrides(0, 4)
	if cfg.Layout() != "8x4" {
		t.Errorf("Layout() = %q, expected 8x4", cfg.Layout())
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault() failed: %v", err)
	}
	if err := WriteDefault(path); err == nil {
		t.Error("WriteDefault() should refuse to overwrite")
	}

	cfg, _, err := LoadTileBreaker(path)
	if err != nil {
		t.Fatalf("written default does not load: %v", err)
	}
	if cfg.Layout() != "10x5" {
		t.Errorf("Layout() = %q, expected 10x5", cfg.Layout())
	}
}
