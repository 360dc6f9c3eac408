package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadArkanoid loads Arkanoid configuration.
// Search order: customPath -> ~/.arkanoid/arkanoid.yaml -> ./configs/arkanoid.yaml -> embedded default
//
// Files ending in .toml are decoded as TOML, everything else as YAML.
// Fields missing from a file keep their default values.
func LoadArkanoid(customPath string) (ArkanoidConfig, error) {
	cfg := DefaultArkanoidConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := decode(customPath, data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("arkanoid.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := decode(userCfgPath, data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultArkanoidConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/arkanoid.yaml"); err == nil {
		if err := decode("configs/arkanoid.yaml", data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultArkanoidConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultArkanoidYAML, &cfg); err != nil {
		return DefaultArkanoidConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode unmarshals data into cfg, choosing the format from the file extension.
func decode(path string, data []byte, cfg *ArkanoidConfig) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		_, err := toml.Decode(string(data), cfg)
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg ArkanoidConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arkanoid", filename)
}
