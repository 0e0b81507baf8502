// Package tui provides the Bubble Tea front-end for breakout: the game loop,
// key bindings, menus, the scoreboard and SSH hosting.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// framesPerTick is how many frames are scheduled per simulation tick.
// Frames arrive jittery; sampling faster than the tick rate lets the
// simulation clock pick frames that keep the tick cadence steady.
const framesPerTick = 2

// FrameMsg is a display frame. The model's clock decides whether it runs a
// simulation tick.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that delivers the next frame.
func frameCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate*framesPerTick)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
