package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBreakout loads Breakout configuration.
// Search order: customPath -> ~/.breakout/configs/breakout.yaml -> ./configs/breakout.yaml -> embedded default
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	var cfg BreakoutConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return Normalize(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("breakout.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return Normalize(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/breakout.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return Normalize(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultBreakoutYAML, &cfg); err != nil {
		return DefaultBreakoutConfig(), nil // Fallback to hardcoded if embed fails
	}
	return Normalize(cfg), nil
}

// Normalize replaces missing or out-of-range values with defaults so that a
// partial YAML file still yields a playable game.
func Normalize(cfg BreakoutConfig) BreakoutConfig {
	def := DefaultBreakoutConfig()

	orF := func(v *float64, d float64) {
		if *v <= 0 {
			*v = d
		}
	}
	orI := func(v *int, d int) {
		if *v <= 0 {
			*v = d
		}
	}

	orF(&cfg.Canvas.Width, def.Canvas.Width)
	orF(&cfg.Canvas.Height, def.Canvas.Height)
	orF(&cfg.Ball.Radius, def.Ball.Radius)
	orF(&cfg.Ball.Speed, def.Ball.Speed)
	orF(&cfg.Paddle.Width, def.Paddle.Width)
	orF(&cfg.Paddle.Height, def.Paddle.Height)
	orF(&cfg.Paddle.Speed, def.Paddle.Speed)
	orF(&cfg.Paddle.BottomOffset, def.Paddle.BottomOffset)
	orI(&cfg.Layout.Rows, def.Layout.Rows)
	orI(&cfg.Layout.Cols, def.Layout.Cols)
	orF(&cfg.Layout.BrickHeight, def.Layout.BrickHeight)
	orI(&cfg.Gameplay.Lives, def.Gameplay.Lives)

	if cfg.Layout.MaxExtraRows < 0 {
		cfg.Layout.MaxExtraRows = 0
	}
	if cfg.Layout.Padding < 0 {
		cfg.Layout.Padding = 0
	}
	if cfg.Layout.OffsetTop < 0 {
		cfg.Layout.OffsetTop = 0
	}
	if cfg.Layout.OffsetLeft < 0 {
		cfg.Layout.OffsetLeft = 0
	}
	if cfg.Gameplay.RespawnDelayMs < 0 {
		cfg.Gameplay.RespawnDelayMs = 0
	}
	if cfg.Paddle.Width > cfg.Canvas.Width {
		cfg.Paddle.Width = cfg.Canvas.Width
	}
	if cfg.Difficulty.Progression.Type == "" {
		cfg.Difficulty.Progression.Type = "none"
	}

	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breakout", "configs", filename)
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 120
		cfg.Ball.Speed = 4
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 80
		cfg.Ball.Speed = 6
	}
}
