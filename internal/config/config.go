package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	// Padding is the total number of rows/cols reserved around the
	// text area, split evenly between the sides.
	Padding int `toml:"padding"`
	// MinRows/MinCols are the smallest content area the pager will
	// render into; anything smaller is a fatal startup error.
	MinRows  int    `toml:"min_rows"`
	MinCols  int    `toml:"min_cols"`
	DebugLog string `toml:"debug_log"`
}

func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Padding:  4,
		MinRows:  1,
		MinCols:  10,
		DebugLog: "pager.log",
	}

	cfgPath := filepath.Join(home, ".config", "pager", "config.toml")
	if _, err := os.Stat(cfgPath); err == nil {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	cfg.DebugLog = expandHome(cfg.DebugLog, home)

	if cfg.Padding < 0 {
		cfg.Padding = 0
	}
	if cfg.MinRows < 1 {
		cfg.MinRows = 1
	}
	if cfg.MinCols < 1 {
		cfg.MinCols = 1
	}

	return cfg, nil
}

func expandHome(path, home string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
