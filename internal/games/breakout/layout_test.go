package breakout

import (
	"slices"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func assertInsideAndDisjoint(t *testing.T, bricks []*Brick, canvasW float64) {
	t.Helper()
	for i, a := range bricks {
		if a.X < 0 || a.X+a.Width > canvasW {
			t.Errorf("brick %d out of bounds: x=%v w=%v canvas=%v", i, a.X, a.Width, canvasW)
		}
		for j := i + 1; j < len(bricks); j++ {
			if a.Bounds().Intersects(bricks[j].Bounds()) {
				t.Errorf("bricks %d and %d overlap", i, j)
			}
		}
	}
}

func TestGenerateFixed(t *testing.T) {
	l := NewLayout(DefaultLayoutOptions(800), NewSimpleRNG(1))
	bricks := l.GenerateFixed(5, 8)

	if len(bricks) != 40 {
		t.Fatalf("expected 40 bricks, got %d", len(bricks))
	}
	assertInsideAndDisjoint(t, bricks, 800)

	if w := l.BrickWidth(8); w != 83.75 {
		t.Errorf("expected brick width 83.75, got %v", w)
	}

	first := bricks[0]
	if first.X != 30 || first.Y != 60 {
		t.Errorf("expected first brick at (30, 60), got (%v, %v)", first.X, first.Y)
	}
	last := bricks[7]
	if right := last.X + last.Width; right != 770 {
		t.Errorf("expected row to end at 770, got %v", right)
	}

	for _, b := range bricks {
		expected := 1
		switch b.Row {
		case 0:
			expected = 3
		case 1:
			expected = 2
		}
		if b.Durability() != expected {
			t.Errorf("row %d: expected durability %d, got %d", b.Row, expected, b.Durability())
		}
		if b.Color != core.FixedPalette[b.Row%len(core.FixedPalette)] {
			t.Errorf("row %d: unexpected colour %s", b.Row, b.Color)
		}
	}
}

func TestGenerateFixedEmpty(t *testing.T) {
	l := NewLayout(DefaultLayoutOptions(800), nil)
	if got := l.GenerateFixed(0, 8); len(got) != 0 {
		t.Errorf("expected no bricks for zero rows, got %d", len(got))
	}
	if got := l.GenerateFixed(5, 0); len(got) != 0 {
		t.Errorf("expected no bricks for zero cols, got %d", len(got))
	}
}

func TestGenerateRandom(t *testing.T) {
	l := NewLayout(DefaultLayoutOptions(800), NewSimpleRNG(42))

	for range 50 {
		bricks := l.GenerateRandom(5, 8)
		if len(bricks) > 40 {
			t.Fatalf("expected at most 40 bricks, got %d", len(bricks))
		}
		assertInsideAndDisjoint(t, bricks, 800)

		d := l.LastDensity()
		if d < 0.6 || d >= 1.0 {
			t.Errorf("density %v outside [0.6, 1.0)", d)
		}
		for _, b := range bricks {
			if b.Durability() < 1 || b.Durability() > 3 {
				t.Errorf("durability %d outside 1..3", b.Durability())
			}
			if !slices.Contains(core.ExtendedPalette, b.Color) {
				t.Errorf("colour %s not in extended palette", b.Color)
			}
		}
	}
}

func TestGenerateRandomDensity(t *testing.T) {
	l := NewLayout(DefaultLayoutOptions(800), NewSimpleRNG(7))

	const layouts = 300
	total := 0
	for range layouts {
		total += len(l.GenerateRandom(5, 8))
	}

	// Density is uniform on [0.6, 1.0), so about 80% of cells are filled
	fill := float64(total) / float64(layouts*40)
	if fill < 0.75 || fill > 0.85 {
		t.Errorf("expected mean fill near 0.8, got %.3f", fill)
	}
}

func TestGeneratePattern(t *testing.T) {
	l := NewLayout(DefaultLayoutOptions(800), nil)
	bricks := l.GeneratePattern([]string{
		"3#.",
		"1 2",
	})

	if len(bricks) != 4 {
		t.Fatalf("expected 4 bricks, got %d", len(bricks))
	}

	expected := []struct{ row, col, durability int }{
		{0, 0, 3},
		{0, 1, 1},
		{1, 0, 1},
		{1, 2, 2},
	}
	for i, e := range expected {
		b := bricks[i]
		if b.Row != e.row || b.Col != e.col || b.Durability() != e.durability {
			t.Errorf("brick %d: expected (%d,%d) durability %d, got (%d,%d) durability %d",
				i, e.row, e.col, e.durability, b.Row, b.Col, b.Durability())
		}
	}
	assertInsideAndDisjoint(t, bricks, 800)

	if got := l.GeneratePattern(nil); got != nil {
		t.Errorf("expected nil for empty pattern, got %d bricks", len(got))
	}
}

func TestLayoutRefit(t *testing.T) {
	l := NewLayout(DefaultLayoutOptions(800), nil)
	bricks := l.GenerateFixed(3, 8)

	l.SetCanvasWidth(400)
	l.Refit(bricks, 8)

	assertInsideAndDisjoint(t, bricks, 400)
	last := bricks[7]
	if right := last.X + last.Width; right != 370 {
		t.Errorf("expected refit row to end at 370, got %v", right)
	}
}

func TestLayoutMaxCols(t *testing.T) {
	tests := []struct {
		width    float64
		expected int
	}{
		{800, 68},
		{80, 2},
		{50, 1},
	}

	for _, tt := range tests {
		l := NewLayout(DefaultLayoutOptions(tt.width), nil)
		if got := l.MaxCols(); got != tt.expected {
			t.Errorf("MaxCols() at width %v = %d, expected %d", tt.width, got, tt.expected)
		}
	}

	l := NewLayout(DefaultLayoutOptions(80), nil)
	bricks := l.GenerateFixed(1, l.MaxCols())
	assertInsideAndDisjoint(t, bricks, 80)
	if last := bricks[len(bricks)-1]; last.X+last.Width > 50 {
		t.Errorf("expected grid inside margins, right edge at %v", last.X+last.Width)
	}
}
