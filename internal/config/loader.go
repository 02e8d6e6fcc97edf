package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath returns the standard config file location,
// $XDG_CONFIG_HOME/tidewl/config.yaml.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "tidewl", "config.yaml")
}

// Load reads the config file from the standard location, merged over the
// builtin defaults. A missing file is not an error: the defaults apply.
func Load() (*Config, error) {
	return LoadFromPath(DefaultConfigPath())
}

// LoadFromPath reads and merges a config file at an explicit path.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var overlay Config
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	merge(cfg, &overlay)
	return cfg, nil
}

// merge applies non-zero overlay scalars over the defaults and merges the
// binding tables entry-wise, so a file binding replaces the builtin for the
// same keysym without discarding the rest of the table.
func merge(dst, overlay *Config) {
	if overlay.Modifier != "" {
		dst.Modifier = overlay.Modifier
	}
	if overlay.BorderWidth > 0 {
		dst.BorderWidth = overlay.BorderWidth
	}
	if overlay.RepeatRate > 0 {
		dst.RepeatRate = overlay.RepeatRate
	}
	if overlay.RepeatDelay > 0 {
		dst.RepeatDelay = overlay.RepeatDelay
	}
	for name, command := range overlay.Programs {
		if command == "" {
			delete(dst.Programs, name)
			continue
		}
		dst.Programs[name] = command
	}
	for name, action := range overlay.Actions {
		if action == "" {
			delete(dst.Actions, name)
			continue
		}
		dst.Actions[name] = action
	}
}
