package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in the user and local config directories.
const FileName = "dash.yaml"

// Load loads the GNU Dash configuration and validates it.
// Search order: customPath -> ~/.gnudash/dash.yaml -> ./configs/dash.yaml -> embedded default
func Load(customPath string) (DashConfig, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: invalid %s: %w", describe(customPath), err)
	}
	return cfg, nil
}

func load(customPath string) (DashConfig, error) {
	// Try custom path first
	if customPath != "" {
		return LoadFile(customPath)
	}

	// Try user config directory
	if userCfgPath := UserConfigPath(); userCfgPath != "" {
		if cfg, err := LoadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := LoadFile(filepath.Join("configs", FileName)); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultDashYAML)
	if err != nil {
		return DefaultDashConfig(), nil
	}
	return cfg, nil
}

// LoadFile reads and parses a single config file without validating it.
func LoadFile(path string) (DashConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DashConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the hardcoded defaults, so partial files
// only override the keys they mention.
func Parse(data []byte) (DashConfig, error) {
	cfg := DefaultDashConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes a config as YAML.
func Marshal(cfg DashConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// UserConfigPath returns the path to the user config file, or empty if home is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gnudash", FileName)
}

func describe(customPath string) string {
	if customPath == "" {
		return "config"
	}
	return customPath
}
