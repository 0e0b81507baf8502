package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Launch geometry.
const (
	// LaunchHeight is the distance from the canvas bottom the ball respawns at.
	LaunchHeight = 80

	// Launch angles are drawn from [135°, 225°], measured from straight
	// down, so 180° is straight up.
	launchAngleMin  = 0.75 * math.Pi
	launchAngleSpan = 0.5 * math.Pi

	// Paddle deflection spans ±63° from vertical.
	paddleDeflectSpan = 0.7 * math.Pi
)

// Ball is the moving circle. X, Y is the centre.
//
// Invariant: the velocity magnitude stays equal to Speed(). Reflections
// flip a sign and paddle deflection rebuilds the vector from an angle.
type Ball struct {
	X, Y   float64
	DX, DY float64

	radius  float64
	speed   float64
	canvasW float64
	canvasH float64
	rng     *SimpleRNG
}

// NewBall creates a ball and places it at the launch position.
func NewBall(canvasW, canvasH, radius, speed float64, rng *SimpleRNG) *Ball {
	if rng == nil {
		rng = NewSimpleRNG(1)
	}
	b := &Ball{rng: rng}
	b.Configure(canvasW, canvasH, radius, speed)
	return b
}

// Configure applies new canvas bounds, radius and speed, then resets.
func (b *Ball) Configure(canvasW, canvasH, radius, speed float64) {
	b.canvasW = canvasW
	b.canvasH = canvasH
	b.radius = radius
	b.speed = speed
	b.Reset()
}

// SetSpeed changes the speed, rescaling the current velocity.
func (b *Ball) SetSpeed(speed float64) {
	if cur := math.Hypot(b.DX, b.DY); cur > 0 {
		b.DX *= speed / cur
		b.DY *= speed / cur
	}
	b.speed = speed
}

// Radius returns the ball radius.
func (b *Ball) Radius() float64 { return b.radius }

// Speed returns the velocity magnitude.
func (b *Ball) Speed() float64 { return b.speed }

// Bounds returns the bounding square used for collisions.
func (b *Ball) Bounds() core.Rect {
	return core.SquareAround(b.X, b.Y, b.radius)
}

// Reset recentres the ball above the paddle and launches it upward at a
// random angle.
func (b *Ball) Reset() {
	b.X = b.canvasW / 2
	b.Y = b.canvasH - LaunchHeight

	angle := launchAngleMin + b.rng.Float64()*launchAngleSpan
	b.DX = b.speed * math.Sin(angle)
	b.DY = b.speed * math.Cos(angle)
}

// Update advances the ball one tick and resolves walls, the paddle and the
// first overlapping brick in that order. The returned events describe every
// collision that happened.
func (b *Ball) Update(paddle *Paddle, bricks []*Brick) []core.Event {
	b.X += b.DX
	b.Y += b.DY

	var events []core.Event
	events = b.collideWalls(events)
	if paddle != nil {
		events = b.collidePaddle(paddle, events)
	}
	events = b.collideBricks(bricks, events)
	return events
}

func (b *Ball) collideWalls(events []core.Event) []core.Event {
	if b.X-b.radius < 0 || b.X+b.radius > b.canvasW {
		b.DX = -b.DX
		events = append(events, core.Event{Kind: core.EventWallHit, X: b.X, Y: b.Y})
	}

	if b.Y-b.radius < 0 {
		b.DY = -b.DY
		events = append(events, core.Event{Kind: core.EventWallHit, X: b.X, Y: b.Y})
	} else if b.Y+b.radius > b.canvasH {
		events = append(events, core.Event{Kind: core.EventLifeLost, X: b.X, Y: b.Y})
		b.Reset()
	}
	return events
}

func (b *Ball) collidePaddle(p *Paddle, events []core.Event) []core.Event {
	if !b.Bounds().Intersects(p.Bounds()) {
		return events
	}

	hit := core.ClampF((b.X-p.X())/p.Width(), 0, 1)
	angle := (hit - 0.5) * paddleDeflectSpan
	b.DX = b.speed * math.Sin(angle)
	b.DY = -b.speed * math.Cos(angle)
	b.Y = p.Y() - b.radius

	return append(events, core.Event{Kind: core.EventPaddleHit, X: b.X, Y: b.Y})
}

func (b *Ball) collideBricks(bricks []*Brick, events []core.Event) []core.Event {
	box := b.Bounds()
	for _, brick := range bricks {
		if !brick.Visible() || !box.Intersects(brick.Bounds()) {
			continue
		}

		// The axis with the larger offset from the brick centre is the one hit.
		cx, cy := brick.Center()
		if math.Abs(b.X-cx) > math.Abs(b.Y-cy) {
			b.DX = -b.DX
		} else {
			b.DY = -b.DY
		}

		brick.Hit()
		return append(events, core.Event{
			Kind:   core.EventBrickHit,
			X:      b.X,
			Y:      b.Y,
			Points: brick.Points(),
			Color:  brick.Color,
		})
	}
	return events
}
