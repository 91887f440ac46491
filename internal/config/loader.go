package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// configNames lists the file names probed in each search directory.
var configNames = []string{"catch.yaml", "catch.yml", "catch.toml"}

// Load loads the round configuration.
// Search order: customPath -> ~/.starcatch/configs/catch.{yaml,yml,toml}
// -> ./configs/catch.{yaml,yml,toml} -> embedded default.
// Only a broken customPath is reported as an error; unreadable files in
// the search directories are skipped.
func Load(customPath string) (CatchConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, dir := range searchDirs() {
		for _, name := range configNames {
			cfg, err := loadFile(filepath.Join(dir, name))
			if err != nil {
				continue
			}
			if cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	cfg := DefaultCatchConfig()
	if err := yaml.Unmarshal(defaultCatchYAML, &cfg); err != nil {
		return DefaultCatchConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile decodes a single file on top of the defaults, so partial files
// only override the keys they name. Format is chosen by extension.
func loadFile(path string) (CatchConfig, error) {
	cfg := DefaultCatchConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}
	return cfg, nil
}

// searchDirs returns the implicit config directories in priority order.
func searchDirs() []string {
	dirs := make([]string, 0, 2)
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".starcatch", "configs"))
	}
	return append(dirs, "configs")
}
