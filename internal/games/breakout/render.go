package breakout

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar  = '='
	BallChar    = '●'
	BorderHoriz = '─'
)

// hudRows is the number of screen rows above the play field.
const hudRows = 2

// BrickGlyphs maps remaining durability to a glyph, densest first.
var BrickGlyphs = map[int]rune{
	3: '█',
	2: '▓',
	1: '▒',
}

// projection maps canvas units onto terminal cells below the HUD.
type projection struct {
	sx, sy float64
	top    int
}

func newProjection(dst *core.Screen, canvasW, canvasH float64) projection {
	return projection{
		sx:  float64(dst.Width()) / canvasW,
		sy:  float64(dst.Height()-hudRows) / canvasH,
		top: hudRows,
	}
}

func (p projection) x(v float64) int { return int(v * p.sx) }
func (p projection) y(v float64) int { return p.top + int(v*p.sy) }

// span returns the first cell and the number of cells a canvas interval
// covers, at least one.
func (p projection) span(from, length float64) (int, int) {
	start := p.x(from)
	end := p.x(from + length)
	return start, max(1, end-start)
}

// CanvasX maps a terminal column to the canvas x of the column's centre.
// It reports false when the game has no canvas to map onto.
func (g *Game) CanvasX(col int) (float64, bool) {
	if g.sim == nil || g.runtime.ScreenW <= 0 {
		return 0, false
	}
	cw, _ := g.sim.CanvasSize()
	return (float64(col) + 0.5) * cw / float64(g.runtime.ScreenW), true
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall || g.sim == nil {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	cw, ch := g.sim.CanvasSize()
	proj := newProjection(dst, cw, ch)

	g.renderHUD(dst)
	g.renderBricks(dst, proj)
	g.renderPaddle(dst, proj)
	g.renderBall(dst, proj)
	g.renderOverlay(dst)
}

// renderHUD draws the score, lives, and level indicator.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.sim.Score()))
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", g.sim.Lives()))

	levelText := fmt.Sprintf("Level: %d", g.sim.Level())
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)

	dst.DrawHLine(0, 1, dst.Width(), BorderHoriz)
}

// renderBricks draws all visible bricks, shaded by remaining durability.
func (g *Game) renderBricks(dst *core.Screen, proj projection) {
	for _, b := range g.sim.Bricks() {
		if !b.Visible() {
			continue
		}
		glyph, ok := BrickGlyphs[b.Durability()]
		if !ok {
			glyph = BrickGlyphs[1]
		}

		x, w := proj.span(b.X, b.Width)
		y := proj.y(b.Y)
		// Leave a one-cell gap so neighbours stay distinguishable
		if w > 1 {
			w--
		}
		for dx := range w {
			dst.SetColored(x+dx, y, glyph, b.Color)
		}
	}
}

// renderPaddle draws the player's paddle.
func (g *Game) renderPaddle(dst *core.Screen, proj projection) {
	p := g.sim.Paddle()
	x, w := proj.span(p.X(), p.Width())
	y := proj.y(p.Y())
	for dx := range w {
		dst.SetColored(x+dx, y, PaddleChar, core.ColorPaddle)
	}
}

// renderBall draws the ball.
func (g *Game) renderBall(dst *core.Screen, proj projection) {
	b := g.sim.Ball()
	dst.SetColored(proj.x(b.X), proj.y(b.Y), BallChar, core.ColorBall)
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.sim.Status() {
	case StatusNotStarted:
		hint := "Press SPACE to start"
		if g.sim.Level() == 1 {
			hint += "  |  X for random bricks"
		}
		dst.DrawTextCentered(dst.Height()-1, hint)

	case StatusPaused:
		if g.sim.Respawning() {
			g.drawCenteredBox(dst, "LIFE LOST", fmt.Sprintf("Lives remaining: %d", g.sim.Lives()))
			return
		}
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StatusGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.sim.Score())
		g.drawCenteredBox(dst, "GAME OVER", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
