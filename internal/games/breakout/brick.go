package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// PointsPerDurability is the score value of one point of starting durability.
const PointsPerDurability = 10

// Brick is a destructible rectangle in canvas coordinates.
//
// Invariant: Visible() == (Durability() > 0). Once a brick is invisible it
// never changes again.
type Brick struct {
	X, Y          float64
	Width, Height float64
	Row, Col      int // Grid cell the brick was generated in
	Color         core.Color

	durability    int
	maxDurability int
	visible       bool
}

// NewBrick creates a visible brick. An empty colour resolves to the neutral
// default and durability below 1 resolves to 1.
func NewBrick(x, y, width, height float64, color core.Color, durability int) *Brick {
	if durability < 1 {
		durability = 1
	}
	return &Brick{
		X:             x,
		Y:             y,
		Width:         width,
		Height:        height,
		Color:         color.OrDefault(),
		durability:    durability,
		maxDurability: durability,
		visible:       true,
	}
}

// Hit removes one point of durability and hides the brick when none is left.
// Hitting an invisible brick does nothing.
func (b *Brick) Hit() {
	if !b.visible {
		return
	}
	b.durability--
	if b.durability <= 0 {
		b.durability = 0
		b.visible = false
	}
}

// Points returns the score value, fixed at construction.
func (b *Brick) Points() int {
	return b.maxDurability * PointsPerDurability
}

// Durability returns the remaining hit points.
func (b *Brick) Durability() int {
	return b.durability
}

// MaxDurability returns the starting hit points.
func (b *Brick) MaxDurability() int {
	return b.maxDurability
}

// Visible reports whether the brick is still in play.
func (b *Brick) Visible() bool {
	return b.visible
}

// Bounds returns the brick rectangle.
func (b *Brick) Bounds() core.Rect {
	return core.NewRect(b.X, b.Y, b.Width, b.Height)
}

// Center returns the brick centre.
func (b *Brick) Center() (float64, float64) {
	return b.Bounds().Center()
}

// BorderColor is the brick colour darkened for outlines.
func (b *Brick) BorderColor() core.Color {
	return b.Color.Darken(20)
}

// HighlightColor is the brick colour lightened for highlights.
func (b *Brick) HighlightColor() core.Color {
	return b.Color.Lighten(30)
}

// CountVisible returns the number of bricks still in play.
func CountVisible(bricks []*Brick) int {
	count := 0
	for _, b := range bricks {
		if b.Visible() {
			count++
		}
	}
	return count
}
