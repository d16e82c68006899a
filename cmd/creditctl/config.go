package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// cliConfig mirrors the contract's fee settings so quotes computed offline
// match what the contract will charge.
type cliConfig struct {
	Asset  string `toml:"asset"`
	FeeBps uint64 `toml:"fee_bps"`
}

func defaultConfig() cliConfig {
	return cliConfig{Asset: "hive", FeeBps: 100}
}

// loadConfig reads creditctl.toml. A missing file is not an error, the
// defaults apply; a malformed file is.
func loadConfig(path string) (cliConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, ".creditctl.toml")
		if _, err := os.Stat(path); err != nil {
			return cfg, nil
		}
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}
