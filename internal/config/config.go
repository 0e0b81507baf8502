// Package config provides YAML-based game configuration loading and
// difficulty management for the breakout platform.
package config

// BreakoutConfig contains all configuration for the Breakout game.
type BreakoutConfig struct {
	Canvas     BreakoutCanvas   `yaml:"canvas"`
	Ball       BreakoutBall     `yaml:"ball"`
	Paddle     BreakoutPaddle   `yaml:"paddle"`
	Layout     BreakoutLayout   `yaml:"layout"`
	Gameplay   BreakoutGameplay `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BreakoutCanvas defines the logical play field, in canvas units.
type BreakoutCanvas struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BreakoutBall defines ball parameters.
type BreakoutBall struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"` // Canvas units per tick
}

// BreakoutPaddle defines paddle parameters.
type BreakoutPaddle struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`         // Keyboard step per tick
	BottomOffset float64 `yaml:"bottom_offset"` // Distance from paddle top to canvas bottom
}

// BreakoutLayout defines the brick grid.
type BreakoutLayout struct {
	Rows         int      `yaml:"rows"`
	Cols         int      `yaml:"cols"`
	MaxExtraRows int      `yaml:"max_extra_rows"` // Rows added as levels progress
	Padding      float64  `yaml:"padding"`
	OffsetTop    float64  `yaml:"offset_top"`
	OffsetLeft   float64  `yaml:"offset_left"`
	BrickHeight  float64  `yaml:"brick_height"`
	Random       bool     `yaml:"random"`  // Random layout on every level
	Pattern      []string `yaml:"pattern"` // Optional first-level ASCII layout
}

// BreakoutGameplay defines rules.
type BreakoutGameplay struct {
	Lives          int `yaml:"lives"`
	RespawnDelayMs int `yaml:"respawn_delay_ms"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level" or "none"
	MaxAt int    `yaml:"max_at"` // Level at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to ball speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
