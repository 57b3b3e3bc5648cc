package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const invadersFile = "invaders.yaml"

// LoadInvaders loads the invaders configuration.
// Search order: customPath -> ~/.arcade/configs/invaders.yaml -> ./configs/invaders.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides what it names.
func LoadInvaders(customPath string) (InvadersConfig, error) {
	// Try custom path first; errors here are the user's to see
	if customPath != "" {
		cfg, err := decodeFile(customPath)
		if err != nil {
			return DefaultInvadersConfig(), err
		}
		if err := cfg.Validate(); err != nil {
			return DefaultInvadersConfig(), fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	candidates := []string{userConfigPath(invadersFile), filepath.Join("configs", invadersFile)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := decodeFile(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultInvadersConfig()
	if err := yaml.Unmarshal(defaultInvadersYAML, &cfg); err != nil {
		return DefaultInvadersConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decodeFile reads a YAML file over the default configuration.
func decodeFile(path string) (InvadersConfig, error) {
	cfg := DefaultInvadersConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
