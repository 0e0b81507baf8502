package breakout

import "math"

// Snapshot contains the simulation state for replay and determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick         uint64
	Score        int
	Lives        int
	Level        int
	Status       int
	RespawnTicks int

	BallX, BallY   float64
	BallDX, BallDY float64
	BallSpeed      float64
	PaddleX        float64
	PaddleWidth    float64

	// Brick states in generation order, 2 ints each: Visible, Durability
	BrickCount int
	BrickData  []int

	// RNG state shared by ball launches and random layouts
	RNGState uint64
}

// Snapshot returns the current simulation state.
func (s *State) Snapshot() Snapshot {
	brickData := make([]int, len(s.bricks)*2)
	for i, b := range s.bricks {
		if b.Visible() {
			brickData[i*2] = 1
		}
		brickData[i*2+1] = b.Durability()
	}

	return Snapshot{
		Tick:         s.ticks,
		Score:        s.score,
		Lives:        s.lives,
		Level:        s.level,
		Status:       int(s.status),
		RespawnTicks: s.respawnTicks,

		BallX:       s.ball.X,
		BallY:       s.ball.Y,
		BallDX:      s.ball.DX,
		BallDY:      s.ball.DY,
		BallSpeed:   s.ball.Speed(),
		PaddleX:     s.paddle.X(),
		PaddleWidth: s.paddle.Width(),

		BrickCount: len(s.bricks),
		BrickData:  brickData,
		RNGState:   s.rng.state,
	}
}

// ApplySnapshot restores simulation state from a snapshot taken on the same
// layout. Brick states are skipped when the brick count differs.
func (s *State) ApplySnapshot(snap Snapshot) {
	s.ticks = snap.Tick
	s.score = snap.Score
	s.lives = snap.Lives
	s.level = snap.Level
	s.status = Status(snap.Status)
	s.respawnTicks = snap.RespawnTicks

	s.ball.X, s.ball.Y = snap.BallX, snap.BallY
	s.ball.DX, s.ball.DY = snap.BallDX, snap.BallDY
	s.ball.speed = snap.BallSpeed
	s.paddle.SetX(snap.PaddleX)

	if snap.BrickCount == len(s.bricks) && len(snap.BrickData) == snap.BrickCount*2 {
		for i, b := range s.bricks {
			b.visible = snap.BrickData[i*2] == 1
			b.durability = snap.BrickData[i*2+1]
		}
	}

	s.rng.state = snap.RNGState
}

// Snapshot returns the state of the underlying simulation.
func (g *Game) Snapshot() Snapshot {
	return g.sim.Snapshot()
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Status)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.RespawnTicks) //#nosec G115 -- hash computation

	for _, f := range []float64{
		snap.BallX, snap.BallY, snap.BallDX, snap.BallDY,
		snap.BallSpeed, snap.PaddleX, snap.PaddleWidth,
	} {
		h = h*31 + math.Float64bits(f)
	}

	h = h*31 + uint64(snap.BrickCount) //#nosec G115 -- hash computation
	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState

	return h
}
