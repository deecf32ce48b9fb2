package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source describes where a configuration was loaded from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// localConfigPath is checked relative to the working directory.
const localConfigPath = "configs/pathfind.yaml"

// LoadDemo loads the demo configuration.
// Search order: customPath -> ~/.pathfind/config.yaml -> ./configs/pathfind.yaml -> embedded default.
// Files are decoded over the defaults, so a file only needs the keys it changes.
func LoadDemo(customPath string) (DemoConfig, Source, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, SourceCustom, err
		}
		return cfg, SourceCustom, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil {
			return cfg, SourceUser, nil
		}
	}

	// Try local configs directory
	if cfg, err := loadFile(localConfigPath); err == nil {
		return cfg, SourceLocal, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultDemoYAML)
	if err != nil {
		return DefaultDemoConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (DemoConfig, error) {
	cfg := DefaultDemoConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg DemoConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode yaml: %w", err)
	}
	return data, nil
}

// loadFile reads and parses a single config file.
func loadFile(path string) (DemoConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultDemoConfig(), fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pathfind", filename)
}
