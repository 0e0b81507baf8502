// Package breakout implements the breakout simulation and its adapter to the
// game registry.
package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// CellSize is the number of canvas units one terminal column spans.
const CellSize = 10

// Minimum terminal size the game can be played in.
const (
	MinScreenW = 30
	MinScreenH = 15
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game adapts a State to the registry.Game interface: it maps input actions
// onto paddle setters and state commands and drives one Step per tick.
type Game struct {
	random bool

	sim        *State
	runtime    core.RuntimeConfig
	cfg        config.BreakoutConfig
	difficulty *config.DifficultyManager

	tickCount      uint64
	screenTooSmall bool
}

// New creates a breakout game with fixed layouts.
func New() *Game {
	return &Game{}
}

// NewRandom creates a breakout game with a random layout on every level.
func NewRandom() *Game {
	return &Game{random: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.random {
		return "breakout_random"
	}
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.random {
		return "Breakout (Random)"
	}
	return "Breakout"
}

// CanvasForScreen returns the canvas bounds for a terminal size.
// The width is capped at maxW and the height keeps the configured aspect.
func CanvasForScreen(screenW int, maxW, aspect float64) (float64, float64) {
	w := maxW
	if screenW > 0 {
		w = min(maxW, float64(screenW*CellSize))
	}
	return w, w * aspect
}

// OptionsFromConfig builds simulation options from a loaded config.
func OptionsFromConfig(cfg config.BreakoutConfig, tickRate int, seed int64) Options {
	if tickRate <= 0 {
		tickRate = core.DefaultTickRate
	}
	layout := DefaultLayoutOptions(cfg.Canvas.Width)
	layout.Padding = cfg.Layout.Padding
	layout.OffsetTop = cfg.Layout.OffsetTop
	layout.OffsetLeft = cfg.Layout.OffsetLeft
	layout.BrickHeight = cfg.Layout.BrickHeight

	return Options{
		CanvasWidth:        cfg.Canvas.Width,
		CanvasHeight:       cfg.Canvas.Height,
		BallRadius:         cfg.Ball.Radius,
		BallSpeed:          cfg.Ball.Speed,
		PaddleWidth:        cfg.Paddle.Width,
		PaddleHeight:       cfg.Paddle.Height,
		PaddleSpeed:        cfg.Paddle.Speed,
		PaddleBottomOffset: cfg.Paddle.BottomOffset,
		Rows:               cfg.Layout.Rows,
		Cols:               cfg.Layout.Cols,
		MaxExtraRows:       cfg.Layout.MaxExtraRows,
		Layout:             layout,
		Random:             cfg.Layout.Random,
		Pattern:            cfg.Layout.Pattern,
		Lives:              cfg.Gameplay.Lives,
		RespawnDelayTicks:  cfg.Gameplay.RespawnDelayMs * tickRate / 1000,
		Seed:               seed,
	}
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadBreakout(configPath)
	if err != nil {
		cfg = config.DefaultBreakoutConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyBreakoutPreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	opts := OptionsFromConfig(cfg, runtime.TickRate, runtime.Seed)
	if g.random {
		opts.Random = true
	}
	opts.SpeedScale = g.difficulty.Speed

	g.sim = NewState(opts)
	g.tickCount = 0
	g.Resize(runtime.ScreenW, runtime.ScreenH)
}

// Resize adapts the game to a new terminal size. The configured canvas is
// kept while it fits; narrower terminals reconfigure to a smaller canvas.
// Below the minimum screen size the canvas is left as it is.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
	g.screenTooSmall = screenW < MinScreenW || screenH < MinScreenH
	if g.sim == nil || g.screenTooSmall {
		return
	}

	aspect := g.cfg.Canvas.Height / g.cfg.Canvas.Width
	w, h := CanvasForScreen(screenW, g.cfg.Canvas.Width, aspect)
	if cw, ch := g.sim.CanvasSize(); cw == w && ch == h {
		return
	}
	g.sim.Reconfigure(w, h)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionRestart):
		g.sim.Restart()
	case in.Has(core.ActionLaunch):
		switch g.sim.Status() {
		case StatusNotStarted:
			g.sim.Start()
		case StatusGameOver:
			g.sim.Restart()
		}
	case in.Has(core.ActionPause):
		g.sim.TogglePause()
	case in.Has(core.ActionRandomize):
		g.sim.Randomize()
	}

	g.updatePaddle(in)

	events := g.sim.Step()
	g.tickCount++
	return core.StepResult{State: g.State(), Events: events}
}

// updatePaddle applies pointer and keyboard movement.
func (g *Game) updatePaddle(in core.InputFrame) {
	if in.HasPointer {
		g.sim.MovePaddleCenter(in.PointerX)
	}
	if g.sim.Status() != StatusRunning {
		return
	}

	speed := g.sim.Paddle().Speed()
	if in.Has(core.ActionLeft) {
		g.sim.NudgePaddle(-speed)
	}
	if in.Has(core.ActionRight) {
		g.sim.NudgePaddle(speed)
	}
}

// Sim returns the underlying simulation.
func (g *Game) Sim() *State {
	return g.sim
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.sim.Score(),
		Lives:    g.sim.Lives(),
		Level:    g.sim.Level(),
		Started:  g.sim.Status() != StatusNotStarted,
		GameOver: g.sim.Status() == StatusGameOver,
		Paused:   g.sim.Status() == StatusPaused,
	}
}

// Register the games with the registry
func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
	registry.Register("breakout_random", func() registry.Game {
		return NewRandom()
	})
}
