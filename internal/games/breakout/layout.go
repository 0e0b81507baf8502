package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// LayoutOptions describes the brick grid geometry in canvas units.
type LayoutOptions struct {
	CanvasWidth   float64
	Padding       float64 // Gap between neighbouring bricks
	OffsetTop     float64 // Distance from the canvas top to the first row
	OffsetLeft    float64 // Margin on both sides of the grid
	BrickHeight   float64
	Palette       []core.Color // Row colours for fixed layouts
	RandomPalette []core.Color // Per-brick colours for random layouts
}

// DefaultLayoutOptions returns the standard grid geometry for a canvas width.
func DefaultLayoutOptions(canvasWidth float64) LayoutOptions {
	return LayoutOptions{
		CanvasWidth:   canvasWidth,
		Padding:       10,
		OffsetTop:     60,
		OffsetLeft:    30,
		BrickHeight:   25,
		Palette:       core.FixedPalette,
		RandomPalette: core.ExtendedPalette,
	}
}

// Layout generates brick grids.
type Layout struct {
	opts        LayoutOptions
	rng         *SimpleRNG
	lastDensity float64
}

// NewLayout creates a layout generator. rng drives random layouts.
func NewLayout(opts LayoutOptions, rng *SimpleRNG) *Layout {
	if len(opts.Palette) == 0 {
		opts.Palette = core.FixedPalette
	}
	if len(opts.RandomPalette) == 0 {
		opts.RandomPalette = core.ExtendedPalette
	}
	if rng == nil {
		rng = NewSimpleRNG(1)
	}
	return &Layout{opts: opts, rng: rng}
}

// Options returns the current geometry.
func (l *Layout) Options() LayoutOptions {
	return l.opts
}

// SetCanvasWidth changes the width subsequent grids are laid out on.
func (l *Layout) SetCanvasWidth(w float64) {
	l.opts.CanvasWidth = w
}

// BrickWidth returns the width of one brick for a grid of cols columns.
func (l *Layout) BrickWidth(cols int) float64 {
	if cols < 1 {
		cols = 1
	}
	w := (l.opts.CanvasWidth - 2*l.opts.OffsetLeft - l.opts.Padding*float64(cols-1)) / float64(cols)
	if w < 1 {
		w = 1
	}
	return w
}

// MaxCols returns the widest grid whose bricks are at least one unit wide
// and fit between the margins.
func (l *Layout) MaxCols() int {
	n := (l.opts.CanvasWidth - 2*l.opts.OffsetLeft + l.opts.Padding) / (1 + l.opts.Padding)
	return max(1, int(math.Floor(n)))
}

// cell returns the top-left corner of grid cell (row, col).
func (l *Layout) cell(row, col int, brickWidth float64) (float64, float64) {
	x := l.opts.OffsetLeft + float64(col)*(brickWidth+l.opts.Padding)
	y := l.opts.OffsetTop + float64(row)*(l.opts.BrickHeight+l.opts.Padding)
	return x, y
}

func (l *Layout) place(row, col int, brickWidth float64, color core.Color, durability int) *Brick {
	x, y := l.cell(row, col, brickWidth)
	b := NewBrick(x, y, brickWidth, l.opts.BrickHeight, color, durability)
	b.Row = row
	b.Col = col
	return b
}

// fixedDurability gives the top rows extra hit points.
func fixedDurability(row int) int {
	switch row {
	case 0:
		return 3
	case 1:
		return 2
	default:
		return 1
	}
}

// GenerateFixed fills every cell of a rows x cols grid, row by row.
// Row 0 takes three hits, row 1 two, the rest one. Colours cycle per row.
func (l *Layout) GenerateFixed(rows, cols int) []*Brick {
	if rows <= 0 || cols <= 0 {
		return nil
	}

	bw := l.BrickWidth(cols)
	bricks := make([]*Brick, 0, rows*cols)
	for r := range rows {
		color := l.opts.Palette[r%len(l.opts.Palette)]
		for c := range cols {
			bricks = append(bricks, l.place(r, c, bw, color, fixedDurability(r)))
		}
	}
	return bricks
}

// GenerateRandom fills a rows x cols grid sparsely. A density in [0.6, 1.0)
// is drawn once and each cell is kept with that probability, getting a
// random colour and a durability of 1 to 3.
func (l *Layout) GenerateRandom(rows, cols int) []*Brick {
	l.lastDensity = 0.6 + l.rng.Float64()*0.4
	if rows <= 0 || cols <= 0 {
		return nil
	}

	bw := l.BrickWidth(cols)
	bricks := make([]*Brick, 0, rows*cols)
	for r := range rows {
		for c := range cols {
			if l.rng.Float64() >= l.lastDensity {
				continue
			}
			color := l.opts.RandomPalette[l.rng.Intn(len(l.opts.RandomPalette))]
			durability := l.rng.Intn(3) + 1
			bricks = append(bricks, l.place(r, c, bw, color, durability))
		}
	}
	return bricks
}

// LastDensity returns the density drawn by the most recent GenerateRandom.
func (l *Layout) LastDensity() float64 {
	return l.lastDensity
}

// GeneratePattern builds a grid from an ASCII map.
// Characters:
//
//	'1'-'3' = brick with that durability
//	'#'     = brick with durability 1
//	'.',' ' = empty
//
// The widest line sets the column count. Colours cycle per row.
func (l *Layout) GeneratePattern(lines []string) []*Brick {
	cols := PatternColumns(lines)
	if cols == 0 {
		return nil
	}

	bw := l.BrickWidth(cols)
	var bricks []*Brick
	for r, line := range lines {
		color := l.opts.Palette[r%len(l.opts.Palette)]
		for c := range len(line) {
			ch := line[c]
			var durability int
			switch {
			case ch >= '1' && ch <= '3':
				durability = int(ch - '0')
			case ch == '#':
				durability = 1
			default:
				continue
			}
			bricks = append(bricks, l.place(r, c, bw, color, durability))
		}
	}
	return bricks
}

// PatternColumns returns the column count GeneratePattern uses for lines.
func PatternColumns(lines []string) int {
	cols := 0
	for _, line := range lines {
		cols = max(cols, len(line))
	}
	return cols
}

// Refit moves existing bricks onto the current geometry by their grid cell.
// cols is the column count of the grid the bricks were generated in.
func (l *Layout) Refit(bricks []*Brick, cols int) {
	bw := l.BrickWidth(cols)
	for _, b := range bricks {
		b.X, b.Y = l.cell(b.Row, b.Col, bw)
		b.Width = bw
		b.Height = l.opts.BrickHeight
	}
}
