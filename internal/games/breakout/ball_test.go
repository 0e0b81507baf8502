package breakout

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

const eps = 1e-9

// newTestBall returns a ball on the standard 800x600 canvas with speed 5.
func newTestBall() *Ball {
	return NewBall(800, 600, 10, 5, NewSimpleRNG(99))
}

func newTestPaddle() *Paddle {
	return NewPaddle(800, 600, 100, 15, 8, 30)
}

func TestBallResetLaunchesUpward(t *testing.T) {
	b := newTestBall()
	cone := b.Speed() * math.Sqrt2 / 2

	for i := range 1000 {
		b.Reset()
		if b.X != 400 || b.Y != 520 {
			t.Fatalf("reset %d: expected (400, 520), got (%v, %v)", i, b.X, b.Y)
		}
		// Angle in [135°, 225°] keeps the ball within 45° of straight up
		if b.DY > -cone+eps {
			t.Fatalf("reset %d: expected upward launch, got dy=%v", i, b.DY)
		}
		if math.Abs(b.DX) > cone+eps {
			t.Errorf("reset %d: dx=%v outside launch cone", i, b.DX)
		}
		if got := math.Hypot(b.DX, b.DY); math.Abs(got-b.Speed()) > eps {
			t.Errorf("reset %d: expected speed %v, got %v", i, b.Speed(), got)
		}
	}
}

func TestBallWallReflection(t *testing.T) {
	tests := []struct {
		name           string
		x, y, dx, dy   float64
		wantDX, wantDY float64
	}{
		{"left", 12, 300, -3, 4, 3, 4},
		{"right", 788, 300, 3, 4, -3, 4},
		{"top", 300, 12, 3, -4, 3, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBall()
			b.X, b.Y, b.DX, b.DY = tt.x, tt.y, tt.dx, tt.dy

			events := b.Update(nil, nil)

			if b.DX != tt.wantDX || b.DY != tt.wantDY {
				t.Errorf("expected velocity (%v, %v), got (%v, %v)", tt.wantDX, tt.wantDY, b.DX, b.DY)
			}
			if n := core.CountEvents(events, core.EventWallHit); n != 1 {
				t.Errorf("expected 1 wall-hit event, got %d", n)
			}
		})
	}
}

func TestBallCornerReflectsBothAxes(t *testing.T) {
	b := newTestBall()
	b.X, b.Y, b.DX, b.DY = 12, 12, -3, -4

	events := b.Update(nil, nil)

	if b.DX != 3 || b.DY != 4 {
		t.Errorf("expected velocity (3, 4), got (%v, %v)", b.DX, b.DY)
	}
	if n := core.CountEvents(events, core.EventWallHit); n != 2 {
		t.Errorf("expected 2 wall-hit events, got %d", n)
	}
}

func TestBallBottomLosesLife(t *testing.T) {
	b := newTestBall()
	b.X, b.Y, b.DX, b.DY = 200, 588, 3, 4

	events := b.Update(nil, nil)

	if n := core.CountEvents(events, core.EventLifeLost); n != 1 {
		t.Fatalf("expected 1 life-lost event, got %d", n)
	}
	if b.X != 400 || b.Y != 520 || b.DY >= 0 {
		t.Errorf("expected reset ball, got (%v, %v) dy=%v", b.X, b.Y, b.DY)
	}
}

func TestBallPaddleCentreHit(t *testing.T) {
	p := newTestPaddle()
	if p.X() != 350 || p.Y() != 570 {
		t.Fatalf("expected paddle at (350, 570), got (%v, %v)", p.X(), p.Y())
	}

	b := newTestBall()
	b.X, b.Y, b.DX, b.DY = 400, 558, 0, 5 // Lands at (400, 563)

	events := b.Update(p, nil)

	if n := core.CountEvents(events, core.EventPaddleHit); n != 1 {
		t.Fatalf("expected 1 paddle-hit event, got %d", n)
	}
	if b.DX != 0 || b.DY != -5 {
		t.Errorf("expected straight-up velocity (0, -5), got (%v, %v)", b.DX, b.DY)
	}
	if b.Y != 560 {
		t.Errorf("expected ball snapped to y=560, got %v", b.Y)
	}
}

func TestBallPaddleDeflection(t *testing.T) {
	tests := []struct {
		name  string
		x     float64
		wantX float64 // Expected sign of dx
	}{
		{"left edge", 355, -1},
		{"right edge", 445, 1},
		{"overhang clamps", 345, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPaddle()
			b := newTestBall()
			b.X, b.Y, b.DX, b.DY = tt.x, 558, 0, 5

			b.Update(p, nil)

			if math.Signbit(b.DX) != math.Signbit(tt.wantX) || b.DX == 0 {
				t.Errorf("expected dx with sign %v, got %v", tt.wantX, b.DX)
			}
			if b.DY >= 0 {
				t.Errorf("expected upward dy, got %v", b.DY)
			}
			if got := math.Hypot(b.DX, b.DY); math.Abs(got-5) > eps {
				t.Errorf("expected speed 5, got %v", got)
			}
		})
	}

	// Deflection never exceeds 63° from vertical, even past the paddle end
	p := newTestPaddle()
	b := newTestBall()
	b.X, b.Y, b.DX, b.DY = 345, 558, 0, 5
	b.Update(p, nil)
	if want := 5 * math.Sin(-0.35*math.Pi); math.Abs(b.DX-want) > eps {
		t.Errorf("expected clamped dx %v, got %v", want, b.DX)
	}
}

func TestBallBrickFromBelow(t *testing.T) {
	brick := NewBrick(100, 100, 80, 25, "#e74c3c", 1)
	b := newTestBall()
	b.X, b.Y, b.DX, b.DY = 140, 135, 0, -5 // Lands at (140, 130)

	events := b.Update(nil, []*Brick{brick})

	if b.DY != 5 || b.DX != 0 {
		t.Errorf("expected vertical reflection (0, 5), got (%v, %v)", b.DX, b.DY)
	}
	if brick.Visible() {
		t.Error("expected brick destroyed")
	}
	if len(events) != 1 || events[0].Kind != core.EventBrickHit {
		t.Fatalf("expected one brick-hit event, got %v", events)
	}
	if events[0].Points != 10 || events[0].Color != "#e74c3c" {
		t.Errorf("expected 10 points in #e74c3c, got %d in %s", events[0].Points, events[0].Color)
	}
	if events[0].X != 140 || events[0].Y != 130 {
		t.Errorf("expected event at ball position (140, 130), got (%v, %v)", events[0].X, events[0].Y)
	}
}

func TestBallBrickFromSide(t *testing.T) {
	brick := NewBrick(100, 100, 80, 25, "#e74c3c", 2)
	b := newTestBall()
	b.X, b.Y, b.DX, b.DY = 192, 112, -5, 0 // Lands at (187, 112)

	b.Update(nil, []*Brick{brick})

	if b.DX != 5 || b.DY != 0 {
		t.Errorf("expected horizontal reflection (5, 0), got (%v, %v)", b.DX, b.DY)
	}
	if !brick.Visible() || brick.Durability() != 1 {
		t.Errorf("expected brick with 1 durability left, got visible=%v durability=%d", brick.Visible(), brick.Durability())
	}
}

func TestBallBrickFirstMatchOnly(t *testing.T) {
	first := NewBrick(100, 100, 40, 25, "", 1)
	second := NewBrick(140, 100, 40, 25, "", 1)
	b := newTestBall()
	b.X, b.Y, b.DX, b.DY = 140, 135, 0, -5 // Box straddles both bricks

	events := b.Update(nil, []*Brick{first, second})

	if n := core.CountEvents(events, core.EventBrickHit); n != 1 {
		t.Errorf("expected exactly one brick hit, got %d", n)
	}
	if first.Visible() || !second.Visible() {
		t.Errorf("expected only the first brick hit, got first=%v second=%v", first.Visible(), second.Visible())
	}
}

func TestBallIgnoresInvisibleBricks(t *testing.T) {
	brick := NewBrick(100, 100, 80, 25, "", 1)
	brick.Hit()
	b := newTestBall()
	b.X, b.Y, b.DX, b.DY = 140, 135, 0, -5

	events := b.Update(nil, []*Brick{brick})

	if len(events) != 0 || b.DY != -5 {
		t.Errorf("expected ball to pass through, got events=%v dy=%v", events, b.DY)
	}
}

func TestBallSetSpeedKeepsDirection(t *testing.T) {
	b := newTestBall()
	b.DX, b.DY = 3, -4

	b.SetSpeed(10)

	if math.Abs(b.DX-6) > eps || math.Abs(b.DY+8) > eps {
		t.Errorf("expected (6, -8), got (%v, %v)", b.DX, b.DY)
	}
}
