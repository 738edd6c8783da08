// Package config loads the optional user configuration file. A missing file
// is normal and yields the zero configuration; only an unreadable or
// unparsable file is an error.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/csmaptools/mapinstall/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

// Config holds user defaults that pre-fill CLI flags and arguments.
type Config struct {
	// GamePath is the default game installation root.
	GamePath string `toml:"game_path"`
	// GameType is the default game, "czero" or "cstrike".
	GameType string `toml:"game_type"`
	// Replace makes installs overwrite existing files by default.
	Replace bool `toml:"replace"`
	// Verbosity is the default log verbosity when no -v flags are given.
	Verbosity int `toml:"verbosity"`
}

// DefaultPath returns the config file location under the XDG config
// directory.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "mapinstall", "config.toml")
}

// Load reads the config file at path, or at DefaultPath when path is empty.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read %s", path)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to parse %s", path)
	}
	return &cfg, nil
}
