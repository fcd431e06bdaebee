package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMirrorb loads mirr/orb configuration.
// Search order: customPath -> ~/.mirrorb/configs/mirrorb.yaml -> ./configs/mirrorb.yaml -> embedded default
func LoadMirrorb(customPath string) (MirrorbConfig, error) {
	// Keys missing from a file keep their defaults
	cfg := DefaultMirrorbConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		cfg.Normalize()
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("mirrorb.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if c, ok := parse(data); ok {
				return c, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "mirrorb.yaml")); err == nil {
		if c, ok := parse(data); ok {
			return c, nil
		}
	}

	// Use embedded default YAML
	if c, ok := parse(defaultMirrorbYAML); ok {
		return c, nil
	}
	return DefaultMirrorbConfig(), nil // Fallback to hardcoded if embed fails
}

func parse(data []byte) (MirrorbConfig, bool) {
	cfg := DefaultMirrorbConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	cfg.Normalize()
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mirrorb", "configs", filename)
}
