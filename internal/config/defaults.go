package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Canvas: BreakoutCanvas{
			Width:  800,
			Height: 600,
		},
		Ball: BreakoutBall{
			Radius: 10,
			Speed:  5,
		},
		Paddle: BreakoutPaddle{
			Width:        100,
			Height:       15,
			Speed:        8,
			BottomOffset: 30,
		},
		Layout: BreakoutLayout{
			Rows:         5,
			Cols:         8,
			MaxExtraRows: 3,
			Padding:      10,
			OffsetTop:    60,
			OffsetLeft:   30,
			BrickHeight:  25,
		},
		Gameplay: BreakoutGameplay{
			Lives:          3,
			RespawnDelayMs: 2000,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.4,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "breakout", "breakout_random":
		return defaultBreakoutYAML
	default:
		return nil
	}
}
