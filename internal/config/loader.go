package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const (
	configFileName = "tilebreaker.yaml"
	userConfigRel  = "tilebreaker/" + configFileName
	localConfig    = "configs/" + configFileName
)

// SourceEmbedded names the built-in config in LoadTileBreaker results.
const SourceEmbedded = "embedded default"

// LoadTileBreaker loads and validates the TileBreaker configuration.
// Search order: customPath -> $XDG_CONFIG_HOME/tilebreaker/tilebreaker.yaml
// (and XDG_CONFIG_DIRS) -> ./configs/tilebreaker.yaml -> embedded default.
// Values missing from a file keep their defaults. Returns the config and
// the path it was read from.
func LoadTileBreaker(customPath string) (TileBreakerConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, cfg.Validate()
	}

	// Try user config directory
	if userPath, err := xdg.SearchConfigFile(userConfigRel); err == nil {
		cfg, err := loadFile(userPath)
		if err != nil {
			return cfg, userPath, err
		}
		return cfg, userPath, cfg.Validate()
	}

	// Try local configs directory
	if _, err := os.Stat(localConfig); err == nil {
		cfg, err := loadFile(localConfig)
		if err != nil {
			return cfg, localConfig, err
		}
		return cfg, localConfig, cfg.Validate()
	}

	// Use embedded default YAML
	cfg := DefaultTileBreakerConfig()
	if err := yaml.Unmarshal(defaultTileBreakerYAML, &cfg); err != nil {
		return DefaultTileBreakerConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, cfg.Validate()
}

// loadFile reads a YAML config on top of the defaults.
func loadFile(path string) (TileBreakerConfig, error) {
	cfg := DefaultTileBreakerConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("config: %s does not exist", path)
		}
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// UserConfigPath returns where a user config file is expected, creating
// the parent directory if needed.
func UserConfigPath() (string, error) {
	return xdg.ConfigFile(userConfigRel)
}

// WriteDefault writes the embedded default config to path, refusing to
// overwrite an existing file.
func WriteDefault(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("config: cannot create %s: %w", path, err)
	}
	if _, err := f.Write(defaultTileBreakerYAML); err != nil {
		f.Close()
		return fmt.Errorf("config: cannot write %s: %w", path, err)
	}
	return f.Close()
}
