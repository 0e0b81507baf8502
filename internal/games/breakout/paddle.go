package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Paddle is the player's horizontally constrained rectangle.
//
// Invariant: 0 <= X() <= canvasW - Width(). Every setter clamps.
type Paddle struct {
	x, y          float64
	width, height float64
	speed         float64 // Keyboard step per tick
	bottomOffset  float64
	canvasW       float64
	canvasH       float64
}

// NewPaddle creates a centred paddle whose top edge sits bottomOffset above
// the canvas bottom.
func NewPaddle(canvasW, canvasH, width, height, speed, bottomOffset float64) *Paddle {
	p := &Paddle{speed: speed, bottomOffset: bottomOffset}
	p.Configure(canvasW, canvasH, width, height)
	return p
}

// Configure applies new canvas bounds and paddle size, then recentres.
func (p *Paddle) Configure(canvasW, canvasH, width, height float64) {
	p.canvasW = canvasW
	p.canvasH = canvasH
	p.width = core.ClampF(width, 1, max(canvasW, 1))
	p.height = height
	p.Reset()
}

// Reset centres the paddle horizontally.
func (p *Paddle) Reset() {
	p.y = p.canvasH - p.bottomOffset
	p.SetX((p.canvasW - p.width) / 2)
}

// SetX moves the left edge to x, clamped to the canvas.
func (p *Paddle) SetX(x float64) {
	p.x = core.ClampF(x, 0, p.canvasW-p.width)
}

// MoveCenterTo centres the paddle on x. Positions outside the canvas are
// ignored, as a pointer leaving the play field should not drag the paddle.
func (p *Paddle) MoveCenterTo(x float64) {
	if x <= 0 || x >= p.canvasW {
		return
	}
	p.SetX(x - p.width/2)
}

// Nudge moves the paddle by dx, clamped.
func (p *Paddle) Nudge(dx float64) {
	p.SetX(p.x + dx)
}

// SetSpeed changes the keyboard step.
func (p *Paddle) SetSpeed(speed float64) {
	p.speed = speed
}

// X returns the left edge.
func (p *Paddle) X() float64 { return p.x }

// Y returns the top edge.
func (p *Paddle) Y() float64 { return p.y }

// Width returns the paddle width.
func (p *Paddle) Width() float64 { return p.width }

// Height returns the paddle height.
func (p *Paddle) Height() float64 { return p.height }

// Speed returns the keyboard step per tick.
func (p *Paddle) Speed() float64 { return p.speed }

// CenterX returns the horizontal centre.
func (p *Paddle) CenterX() float64 {
	return p.x + p.width/2
}

// Bounds returns the paddle rectangle.
func (p *Paddle) Bounds() core.Rect {
	return core.NewRect(p.x, p.y, p.width, p.height)
}
