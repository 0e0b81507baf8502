package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Status is the lifecycle phase of a State.
type Status int

const (
	StatusNotStarted Status = iota // Layout ready, waiting for Start
	StatusRunning                  // Ball in play
	StatusPaused                   // Manual pause or respawn delay
	StatusGameOver                 // No lives left, terminal until Restart
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not-started"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Options configures a State.
type Options struct {
	CanvasWidth  float64
	CanvasHeight float64

	BallRadius float64
	BallSpeed  float64

	PaddleWidth        float64
	PaddleHeight       float64
	PaddleSpeed        float64
	PaddleBottomOffset float64

	Rows         int
	Cols         int
	MaxExtraRows int // Rows added as levels progress
	Layout       LayoutOptions
	Random       bool     // Every level uses a random layout
	Pattern      []string // Optional first-level layout

	Lives             int
	RespawnDelayTicks int

	Seed int64

	// SpeedScale returns the ball speed for a level. Nil keeps base.
	SpeedScale func(base float64, level int) float64
}

// DefaultOptions returns the standard 800x600 game.
func DefaultOptions() Options {
	return Options{
		CanvasWidth:        800,
		CanvasHeight:       600,
		BallRadius:         10,
		BallSpeed:          5,
		PaddleWidth:        100,
		PaddleHeight:       15,
		PaddleSpeed:        8,
		PaddleBottomOffset: 30,
		Rows:               5,
		Cols:               8,
		MaxExtraRows:       3,
		Layout:             DefaultLayoutOptions(800),
		Lives:              3,
		RespawnDelayTicks:  120,
		Seed:               1,
	}
}

// State owns one game: ball, paddle, bricks, score, lives and level.
// All mutation goes through Step and the command methods.
type State struct {
	opts Options

	rng    *SimpleRNG
	layout *Layout
	ball   *Ball
	paddle *Paddle
	bricks []*Brick

	gridCols   int  // Column count of the current brick grid
	randomized bool // Layout replaced by Randomize
	baseRows  int
	baseCols  int
	baseSpeed float64

	score        int
	lives        int
	level        int
	status       Status
	respawnTicks int
	ticks        uint64
}

// NewState creates a game in StatusNotStarted with a fresh first-level layout.
func NewState(opts Options) *State {
	opts = normalizeOptions(opts)
	rng := NewSimpleRNG(opts.Seed)
	layoutOpts := opts.Layout
	layoutOpts.CanvasWidth = opts.CanvasWidth

	s := &State{
		opts:      opts,
		rng:       rng,
		layout:    NewLayout(layoutOpts, rng),
		baseRows:  opts.Rows,
		baseCols:  opts.Cols,
		baseSpeed: opts.BallSpeed,
	}
	s.paddle = NewPaddle(opts.CanvasWidth, opts.CanvasHeight, opts.PaddleWidth, opts.PaddleHeight,
		opts.PaddleSpeed, opts.PaddleBottomOffset)
	s.ball = NewBall(opts.CanvasWidth, opts.CanvasHeight, opts.BallRadius, opts.BallSpeed, rng)
	s.reset()
	s.status = StatusNotStarted
	return s
}

func normalizeOptions(opts Options) Options {
	def := DefaultOptions()
	if opts.CanvasWidth <= 0 {
		opts.CanvasWidth = def.CanvasWidth
	}
	if opts.CanvasHeight <= 0 {
		opts.CanvasHeight = def.CanvasHeight
	}
	if opts.BallRadius <= 0 {
		opts.BallRadius = def.BallRadius
	}
	if opts.BallSpeed <= 0 {
		opts.BallSpeed = def.BallSpeed
	}
	if opts.PaddleWidth <= 0 {
		opts.PaddleWidth = def.PaddleWidth
	}
	if opts.PaddleHeight <= 0 {
		opts.PaddleHeight = def.PaddleHeight
	}
	if opts.PaddleSpeed <= 0 {
		opts.PaddleSpeed = def.PaddleSpeed
	}
	if opts.PaddleBottomOffset <= 0 {
		opts.PaddleBottomOffset = def.PaddleBottomOffset
	}
	if opts.Rows <= 0 {
		opts.Rows = def.Rows
	}
	if opts.Cols <= 0 {
		opts.Cols = def.Cols
	}
	if opts.MaxExtraRows < 0 {
		opts.MaxExtraRows = 0
	}
	if opts.Layout.BrickHeight <= 0 {
		opts.Layout = DefaultLayoutOptions(opts.CanvasWidth)
	}
	if opts.Lives <= 0 {
		opts.Lives = def.Lives
	}
	if opts.RespawnDelayTicks < 0 {
		opts.RespawnDelayTicks = 0
	}
	return opts
}

// reset restores score, lives and level and lays out level one.
func (s *State) reset() {
	s.score = 0
	s.lives = s.opts.Lives
	s.level = 1
	s.respawnTicks = 0
	s.ticks = 0
	s.ball.SetSpeed(s.levelSpeed())
	s.layOut()
	s.ball.Reset()
	s.paddle.Reset()
}

// layOut builds the bricks for the current level. The configured pattern
// only applies to level one.
func (s *State) layOut() {
	s.randomized = false
	if s.level == 1 && len(s.opts.Pattern) > 0 {
		s.bricks = s.layout.GeneratePattern(s.opts.Pattern)
		s.gridCols = PatternColumns(s.opts.Pattern)
		return
	}
	s.regenerate()
}

// levelRows is the row count for the current level.
func (s *State) levelRows() int {
	return s.baseRows + min(s.opts.MaxExtraRows, s.level-1)
}

func (s *State) levelSpeed() float64 {
	if s.opts.SpeedScale == nil {
		return s.baseSpeed
	}
	return s.opts.SpeedScale(s.baseSpeed, s.level)
}

// regenerate replaces the bricks with a new grid for the current level.
func (s *State) regenerate() {
	rows, cols := s.levelRows(), s.baseCols
	if s.opts.Random {
		s.bricks = s.layout.GenerateRandom(rows, cols)
	} else {
		s.bricks = s.layout.GenerateFixed(rows, cols)
	}
	s.gridCols = cols
}

// Step runs one simulation tick and returns the events it produced.
// Outside StatusRunning nothing but the respawn countdown moves.
func (s *State) Step() []core.Event {
	switch s.status {
	case StatusRunning:
	case StatusPaused:
		if s.respawnTicks > 0 {
			s.respawnTicks--
			if s.respawnTicks == 0 {
				s.resume()
			}
		}
		return nil
	default:
		return nil
	}

	s.ticks++
	events := s.ball.Update(s.paddle, s.bricks)
	for _, e := range events {
		switch e.Kind {
		case core.EventBrickHit:
			s.score += e.Points
		case core.EventLifeLost:
			s.loseLife()
		}
	}

	if s.status == StatusGameOver {
		return append(events, core.Event{Kind: core.EventGameOver, X: s.ball.X, Y: s.ball.Y, Points: s.score})
	}

	if CountVisible(s.bricks) == 0 {
		s.clearLevel()
		events = append(events, core.Event{Kind: core.EventLevelCleared, Points: s.score})
	}
	return events
}

func (s *State) loseLife() {
	s.lives--
	if s.lives <= 0 {
		s.lives = 0
		s.status = StatusGameOver
		return
	}

	if s.opts.RespawnDelayTicks == 0 {
		s.resume()
		return
	}
	s.status = StatusPaused
	s.respawnTicks = s.opts.RespawnDelayTicks
}

// resume ends a respawn delay.
func (s *State) resume() {
	s.respawnTicks = 0
	s.paddle.Reset()
	s.status = StatusRunning
}

// clearLevel advances to the next level and waits for Start.
func (s *State) clearLevel() {
	s.level++
	s.respawnTicks = 0
	s.ball.SetSpeed(s.levelSpeed())
	s.layOut()
	s.ball.Reset()
	s.paddle.Reset()
	s.status = StatusNotStarted
}

// Start begins play from StatusNotStarted.
func (s *State) Start() {
	if s.status == StatusNotStarted {
		s.respawnTicks = 0
		s.status = StatusRunning
	}
}

// TogglePause switches between running and paused. It does nothing during a
// respawn delay, before the start or after game over.
func (s *State) TogglePause() {
	switch {
	case s.respawnTicks > 0:
	case s.status == StatusRunning:
		s.status = StatusPaused
	case s.status == StatusPaused:
		s.status = StatusRunning
	}
}

// Restart begins a new game from level one and starts it.
func (s *State) Restart() {
	s.reset()
	s.status = StatusRunning
}

// Randomize replaces the layout with a random one. Only allowed before the
// level starts.
func (s *State) Randomize() bool {
	if s.status != StatusNotStarted {
		return false
	}
	s.bricks = s.layout.GenerateRandom(s.levelRows(), s.baseCols)
	s.gridCols = s.baseCols
	s.randomized = true
	return true
}

// Reconfigure adapts the game to new canvas bounds. Ball and paddle sizes
// scale with the width, both are reset, and the grid size is recomputed.
// A level in play or a randomized layout keeps its bricks, refit to the new
// width; otherwise the level's layout is rebuilt.
//
// Bricks stay inside the margins only while the canvas is wider than
// twice OffsetLeft plus one column.
func (s *State) Reconfigure(canvasW, canvasH float64) {
	if canvasW <= 0 || canvasH <= 0 {
		return
	}
	s.opts.CanvasWidth = canvasW
	s.opts.CanvasHeight = canvasH
	s.layout.SetCanvasWidth(canvasW)

	s.baseSpeed = core.ClampF(canvasW/120, 4, 7)
	s.ball.Configure(canvasW, canvasH, core.ClampF(canvasW/70, 8, 12), s.levelSpeed())

	s.paddle.SetSpeed(core.ClampF(canvasW/100, 5, 10))
	s.paddle.Configure(canvasW, canvasH, core.ClampF(canvasW/7, 70, 120), core.ClampF(canvasW/50, 10, 15))

	s.baseRows = 5
	if canvasW < 400 {
		s.baseRows = 4
	}
	s.baseCols = min(max(4, int(math.Floor(canvasW/100))), s.layout.MaxCols())

	inPlay := s.status == StatusRunning || s.status == StatusPaused
	if (inPlay && CountVisible(s.bricks) > 0) || s.randomized {
		s.layout.Refit(s.bricks, s.gridCols)
		return
	}
	s.layOut()
}

// SetPaddleX moves the paddle's left edge, clamped.
func (s *State) SetPaddleX(x float64) {
	s.paddle.SetX(x)
}

// MovePaddleCenter centres the paddle on a pointer position.
func (s *State) MovePaddleCenter(x float64) {
	s.paddle.MoveCenterTo(x)
}

// NudgePaddle moves the paddle by dx, clamped.
func (s *State) NudgePaddle(dx float64) {
	s.paddle.Nudge(dx)
}

// Ball returns the ball. Callers must treat it as read-only.
func (s *State) Ball() *Ball { return s.ball }

// Paddle returns the paddle. Callers must treat it as read-only.
func (s *State) Paddle() *Paddle { return s.paddle }

// Bricks returns the bricks in generation order. Callers must treat them as
// read-only.
func (s *State) Bricks() []*Brick { return s.bricks }

// Score returns the current score.
func (s *State) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *State) Lives() int { return s.lives }

// Level returns the current level, starting at 1.
func (s *State) Level() int { return s.level }

// Status returns the lifecycle phase.
func (s *State) Status() Status { return s.status }

// Respawning reports whether a life-loss delay is running.
func (s *State) Respawning() bool { return s.respawnTicks > 0 }

// RespawnTicks returns the ticks left in the respawn delay.
func (s *State) RespawnTicks() int { return s.respawnTicks }

// Ticks returns the number of running ticks since the last restart.
func (s *State) Ticks() uint64 { return s.ticks }

// CanvasSize returns the canvas bounds.
func (s *State) CanvasSize() (float64, float64) {
	return s.opts.CanvasWidth, s.opts.CanvasHeight
}

// VisibleBricks returns the number of bricks still in play.
func (s *State) VisibleBricks() int {
	return CountVisible(s.bricks)
}
