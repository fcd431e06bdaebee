package config

import (
	_ "embed"
)

//go:embed defaults/mirrorb.yaml
var defaultMirrorbYAML []byte

// DefaultMirrorbConfig returns the default mirr/orb configuration.
func DefaultMirrorbConfig() MirrorbConfig {
	return MirrorbConfig{
		Levels: LevelsConfig{
			Path:  "",
			Watch: false,
		},
		Beam: BeamConfig{
			StepsPerTick: 4,
			FadeStep:     0.05, // Fully faded after 20 ticks
		},
		Input: InputConfig{
			ClickDelayTicks: 12, // 0.2s at 60fps
		},
		Display: DisplayConfig{
			Theme:       ThemeUnicode,
			ShowVersion: true,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultMirrorbYAML
}
