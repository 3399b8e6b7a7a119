package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMaze loads the maze configuration.
// Search order: customPath -> ~/.slidemaze/configs/maze.yaml ->
// ./configs/maze.yaml -> embedded default.
// A custom path that cannot be read or parsed is an error; the other
// locations are skipped when absent or broken.
func LoadMaze(customPath string) (MazeConfig, error) {
	if customPath != "" {
		cfg, err := readMaze(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	for _, path := range []string{userConfigPath("maze.yaml"), filepath.Join("configs", "maze.yaml")} {
		if path == "" {
			continue
		}
		if cfg, err := readMaze(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	cfg := DefaultMazeConfig()
	if err := yaml.Unmarshal(defaultMazeYAML, &cfg); err != nil {
		return DefaultMazeConfig(), nil
	}
	return cfg, nil
}

// readMaze parses one file on top of the built-in defaults, so a partial
// file only overrides the keys it names.
func readMaze(path string) (MazeConfig, error) {
	cfg := DefaultMazeConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".slidemaze", "configs", filename)
}
