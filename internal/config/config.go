// Package config provides YAML-based configuration loading for mirr/orb.
package config

// MirrorbConfig contains all configuration for the mirr/orb game.
type MirrorbConfig struct {
	Levels  LevelsConfig  `yaml:"levels"`
	Beam    BeamConfig    `yaml:"beam"`
	Input   InputConfig   `yaml:"input"`
	Display DisplayConfig `yaml:"display"`
}

// LevelsConfig selects the level catalog.
type LevelsConfig struct {
	Path  string `yaml:"path"`  // Empty uses the built-in catalog
	Watch bool   `yaml:"watch"` // Reload the file when it changes
}

// BeamConfig tunes how the beam is animated.
type BeamConfig struct {
	StepsPerTick int     `yaml:"steps_per_tick"` // 0 settles the beam each tick
	FadeStep     float64 `yaml:"fade_step"`      // Alpha lost per tick after release
}

// InputConfig tunes pointer handling.
type InputConfig struct {
	ClickDelayTicks int `yaml:"click_delay_ticks"`
}

// DisplayConfig selects how the board is drawn.
type DisplayConfig struct {
	Theme       string `yaml:"theme"` // "unicode" or "ascii"
	ShowVersion bool   `yaml:"show_version"`
}

// Theme names accepted by DisplayConfig.
const (
	ThemeUnicode = "unicode"
	ThemeASCII   = "ascii"
)

// Normalize replaces out-of-range values with defaults.
func (c *MirrorbConfig) Normalize() {
	def := DefaultMirrorbConfig()
	if c.Beam.StepsPerTick < 0 {
		c.Beam.StepsPerTick = def.Beam.StepsPerTick
	}
	if c.Beam.FadeStep <= 0 || c.Beam.FadeStep > 1 {
		c.Beam.FadeStep = def.Beam.FadeStep
	}
	if c.Input.ClickDelayTicks < 0 {
		c.Input.ClickDelayTicks = def.Input.ClickDelayTicks
	}
	if c.Display.Theme != ThemeUnicode && c.Display.Theme != ThemeASCII {
		c.Display.Theme = def.Display.Theme
	}
}
