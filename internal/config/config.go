package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/ripple/internal/appstate"
)

// Config holds the on-disk configuration. Everything here seeds the
// settings substate at startup; runtime changes go through the dispatch
// loop and are persisted by the store, not written back to this file.
type Config struct {
	AudioQuality  string `koanf:"audio_quality"` // "normal", "high", or "best"
	Gapless       *bool  `koanf:"gapless"`       // gapless playback (default: true)
	Normalization bool   `koanf:"normalization"` // volume normalization
	Theme         string `koanf:"theme"`
	Notifications *bool  `koanf:"notifications"` // desktop notifications (default: true)

	// Backend holds the connection to the playback daemon.
	Backend BackendConfig `koanf:"backend"`
}

// BackendConfig points at the daemon that does the actual streaming.
type BackendConfig struct {
	Socket string `koanf:"socket"` // unix socket path, ~ expanded
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.Backend.Socket != "" {
		cfg.Backend.Socket = expandPath(cfg.Backend.Socket)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/ripple/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "ripple", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// Settings translates the file values into the settings substate's form,
// applying defaults for anything unset.
func (c *Config) Settings() appstate.UserSettings {
	s := appstate.DefaultSettings()

	switch strings.ToLower(c.AudioQuality) {
	case "normal":
		s.AudioQuality = appstate.QualityNormal
	case "high":
		s.AudioQuality = appstate.QualityHigh
	case "best":
		s.AudioQuality = appstate.QualityBest
	}
	if c.Gapless != nil {
		s.Gapless = *c.Gapless
	}
	s.Normalization = c.Normalization
	if c.Theme != "" {
		s.Theme = c.Theme
	}
	if c.Notifications != nil {
		s.Notifications = *c.Notifications
	}

	return s
}
