// Package config loads the optional tavscrape config file. Every value has
// a default, so running without a config file works out of the box.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds paths and tuning for the scraper and the sync relay.
type Config struct {
	// DataDir is where the JSON output lives: gear/ act files, builds.json,
	// and locations.json.
	DataDir string `yaml:"data_dir"`
	// FetchLogPath is the SQLite fetch log location.
	FetchLogPath string `yaml:"fetch_log"`
	// ScriptExtenderDir is where the game-side script drops its files.
	ScriptExtenderDir string `yaml:"script_extender_dir"`
	// RelayAddr is the listen address of the party sync relay.
	RelayAddr string `yaml:"relay_addr"`
	// GearDelayMS is the politeness delay between wiki requests.
	GearDelayMS int `yaml:"gear_delay_ms"`
	// BuildDelayMS is the politeness delay between guide-site requests.
	BuildDelayMS int `yaml:"build_delay_ms"`
}

// Default returns the built-in configuration. The Script Extender path is
// the usual WSL view of the Windows AppData location.
func Default() Config {
	return Config{
		DataDir:           "data",
		FetchLogPath:      filepath.Join("data", "fetchlog.db"),
		ScriptExtenderDir: "/mnt/c/Users/Owner/AppData/Local/Larian Studios/Baldur's Gate 3/Script Extender",
		RelayAddr:         "127.0.0.1:3457",
		GearDelayMS:       1500,
		BuildDelayMS:      2000,
	}
}

// Load reads a YAML config file and overlays it on the defaults. With an
// empty path, ~/.tavscrape/config.yaml is tried; a missing file is not an
// error, it just means defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(homeDir, ".tavscrape", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// GearDir returns the directory holding the per-act gear files.
func (c Config) GearDir() string {
	return filepath.Join(c.DataDir, "gear")
}

// BuildsPath returns the builds collection file path.
func (c Config) BuildsPath() string {
	return filepath.Join(c.DataDir, "builds.json")
}

// CommunityBuildsPath returns the hand-maintained extra builds file path.
func (c Config) CommunityBuildsPath() string {
	return filepath.Join(c.DataDir, "community_builds.json")
}

// LocationsPath returns the area-to-act table file path.
func (c Config) LocationsPath() string {
	return filepath.Join(c.DataDir, "locations.json")
}
