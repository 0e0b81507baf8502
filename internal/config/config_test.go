package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg BreakoutConfig
	if err := yaml.Unmarshal(GetDefaultYAML("breakout"), &cfg); err != nil {
		t.Fatalf("embedded YAML should parse: %v", err)
	}

	def := DefaultBreakoutConfig()
	if cfg.Canvas != def.Canvas {
		t.Errorf("canvas: embedded %+v, hardcoded %+v", cfg.Canvas, def.Canvas)
	}
	if cfg.Ball != def.Ball {
		t.Errorf("ball: embedded %+v, hardcoded %+v", cfg.Ball, def.Ball)
	}
	if cfg.Paddle != def.Paddle {
		t.Errorf("paddle: embedded %+v, hardcoded %+v", cfg.Paddle, def.Paddle)
	}
	if cfg.Gameplay != def.Gameplay {
		t.Errorf("gameplay: embedded %+v, hardcoded %+v", cfg.Gameplay, def.Gameplay)
	}
	if cfg.Layout.Rows != def.Layout.Rows || cfg.Layout.Cols != def.Layout.Cols {
		t.Errorf("layout: embedded %dx%d, hardcoded %dx%d",
			cfg.Layout.Rows, cfg.Layout.Cols, def.Layout.Rows, def.Layout.Cols)
	}

	if GetDefaultYAML("unknown") != nil {
		t.Error("unknown game should have no default YAML")
	}
}

func TestLoadBreakoutCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("ball:\n  speed: 7\nlayout:\n  rows: 2\n  cols: 4\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout() failed: %v", err)
	}

	if cfg.Ball.Speed != 7 {
		t.Errorf("Ball.Speed = %v, expected 7", cfg.Ball.Speed)
	}
	if cfg.Layout.Rows != 2 || cfg.Layout.Cols != 4 {
		t.Errorf("Layout = %dx%d, expected 2x4", cfg.Layout.Rows, cfg.Layout.Cols)
	}

	// Missing fields are filled from defaults
	if cfg.Canvas.Width != 800 || cfg.Ball.Radius != 10 || cfg.Gameplay.Lives != 3 {
		t.Errorf("partial config should be normalized, got %+v", cfg)
	}
}

func TestLoadBreakoutErrors(t *testing.T) {
	if _, err := LoadBreakout(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should return an error")
	}

	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("ball: [not, a, map"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadBreakout(path); err == nil {
		t.Error("malformed config should return an error")
	}
}

func TestNormalizeClamps(t *testing.T) {
	cfg := Normalize(BreakoutConfig{
		Canvas: BreakoutCanvas{Width: 300, Height: 200},
		Paddle: BreakoutPaddle{Width: 500},
		Layout: BreakoutLayout{Padding: -3, MaxExtraRows: -1},
	})

	if cfg.Paddle.Width != 300 {
		t.Errorf("paddle wider than canvas should clamp, got %v", cfg.Paddle.Width)
	}
	if cfg.Layout.Padding != 0 || cfg.Layout.MaxExtraRows != 0 {
		t.Errorf("negative layout values should clamp to 0, got %+v", cfg.Layout)
	}
	if cfg.Difficulty.Progression.Type != "none" {
		t.Errorf("empty progression should become none, got %q", cfg.Difficulty.Progression.Type)
	}
}

func TestApplyBreakoutPreset(t *testing.T) {
	cfg := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&cfg, DifficultyEasy)
	if cfg.Gameplay.Lives != 5 || cfg.Paddle.Width != 120 || cfg.Ball.Speed != 4 {
		t.Errorf("easy preset not applied: %+v", cfg)
	}

	cfg = DefaultBreakoutConfig()
	ApplyBreakoutPreset(&cfg, DifficultyHard)
	if cfg.Gameplay.Lives != 2 || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset not applied: %+v", cfg)
	}

	cfg = DefaultBreakoutConfig()
	ApplyBreakoutPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	if ParsePreset("bogus") != "" {
		t.Error("unknown preset should parse to empty")
	}
	if ParsePreset("hard") != DifficultyHard {
		t.Error("hard should parse")
	}
}

func TestDifficultySpeed(t *testing.T) {
	d := NewDifficultyManager(DefaultBreakoutConfig().Difficulty)

	if got := d.Speed(5, 1); got != 5 {
		t.Errorf("level 1 speed = %v, expected base 5", got)
	}
	if got := d.Speed(5, 11); math.Abs(got-7) > 1e-9 {
		t.Errorf("max level speed = %v, expected 7", got)
	}
	if got := d.Speed(5, 50); math.Abs(got-7) > 1e-9 {
		t.Errorf("speed should cap at max difficulty, got %v", got)
	}

	d.SetEnabled(false)
	if got := d.Speed(5, 11); got != 5 {
		t.Errorf("disabled progression should keep base speed, got %v", got)
	}
}
