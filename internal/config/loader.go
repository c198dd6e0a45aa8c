package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const ballSortFile = "ballsort.yaml"

// LoadBallSort loads Ball Sort configuration.
// Search order: customPath -> ~/.ballsort/configs/ballsort.yaml -> ./configs/ballsort.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names. A custom path that cannot be read, parsed or validated is an
// error; the other locations are skipped when unusable.
func LoadBallSort(customPath string) (BallSortConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := decodeFile(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(ballSortFile), filepath.Join("configs", ballSortFile)} {
		if path == "" {
			continue
		}
		if cfg, err := decodeFile(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultBallSortConfig()
	if err := yaml.Unmarshal(defaultBallSortYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultBallSortConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func decodeFile(path string) (BallSortConfig, error) {
	cfg := DefaultBallSortConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// HomeDir returns ~/.ballsort, or empty if home is unavailable.
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ballsort")
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := HomeDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}
