package breakout

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestBrickHitsToDestroy(t *testing.T) {
	for durability := 1; durability <= 3; durability++ {
		b := NewBrick(0, 0, 50, 20, "#e74c3c", durability)
		points := b.Points()

		for i := 1; i < durability; i++ {
			b.Hit()
			if !b.Visible() {
				t.Fatalf("durability %d: brick invisible after %d hits", durability, i)
			}
		}
		b.Hit()
		if b.Visible() {
			t.Errorf("durability %d: brick still visible after %d hits", durability, durability)
		}
		if b.Durability() != 0 {
			t.Errorf("durability %d: expected 0 remaining, got %d", durability, b.Durability())
		}
		if b.Points() != points {
			t.Errorf("durability %d: points changed from %d to %d", durability, points, b.Points())
		}
		if points != durability*10 {
			t.Errorf("durability %d: expected %d points, got %d", durability, durability*10, points)
		}
	}
}

func TestBrickHitInvisibleIsNoop(t *testing.T) {
	b := NewBrick(0, 0, 50, 20, "#3498db", 1)
	b.Hit()
	b.Hit()
	b.Hit()

	if b.Visible() || b.Durability() != 0 {
		t.Errorf("expected inert invisible brick, got visible=%v durability=%d", b.Visible(), b.Durability())
	}
	if b.MaxDurability() != 1 {
		t.Errorf("expected max durability 1, got %d", b.MaxDurability())
	}
}

func TestNewBrickDefaults(t *testing.T) {
	b := NewBrick(0, 0, 50, 20, "", 0)
	if b.Color != core.ColorNeutral {
		t.Errorf("expected neutral colour, got %q", b.Color)
	}
	if b.Durability() != 1 {
		t.Errorf("expected durability 1, got %d", b.Durability())
	}
	if !b.Visible() {
		t.Error("new brick should be visible")
	}
}

func TestBrickShades(t *testing.T) {
	b := NewBrick(0, 0, 50, 20, "#e74c3c", 1)
	if got := b.BorderColor(); got != "#b41909" {
		t.Errorf("expected border #b41909, got %s", got)
	}
	if got := b.HighlightColor(); got == b.Color || got == core.ColorLight {
		t.Errorf("expected a lighter shade of %s, got %s", b.Color, got)
	}

	bad := &Brick{Color: "nope"}
	if bad.BorderColor() != core.ColorDark {
		t.Errorf("expected dark fallback, got %s", bad.BorderColor())
	}
	if bad.HighlightColor() != core.ColorLight {
		t.Errorf("expected light fallback, got %s", bad.HighlightColor())
	}
}

func TestCountVisible(t *testing.T) {
	bricks := []*Brick{
		NewBrick(0, 0, 10, 10, "", 1),
		NewBrick(20, 0, 10, 10, "", 2),
		NewBrick(40, 0, 10, 10, "", 1),
	}
	bricks[0].Hit()
	bricks[1].Hit()

	if got := CountVisible(bricks); got != 2 {
		t.Errorf("expected 2 visible bricks, got %d", got)
	}
}
