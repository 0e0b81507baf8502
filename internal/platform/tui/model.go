package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// helpRows is the number of terminal rows reserved below the game.
const helpRows = 1

// steerHoldTicks is how long a left/right key press keeps steering.
// Terminals report key repeats, not key releases, so a press is treated
// as held until the next repeat is due.
const steerHoldTicks = 8

// pointerGame is implemented by games that accept pointer steering.
type pointerGame interface {
	CanvasX(col int) (float64, bool)
}

// GameModel is the Bubble Tea model for one running game.
// It is used both by the local runner and by SSH sessions.
type GameModel struct {
	game     registry.Game
	screen   *core.Screen
	renderer *ScreenRenderer
	store    *storage.Store
	config   core.RuntimeConfig
	player   string

	keys GameKeyMap
	help help.Model

	clock      *core.SimulationClock
	inputFrame core.InputFrame
	steer      core.Action
	steerTicks int

	gameState  core.GameState
	quitting   bool
	backToMenu bool
	quitOnBack bool // standalone programs exit when leaving the game
	scoreSaved bool
}

// NewGameModel creates a game model. A nil renderer uses the local terminal.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string, r *lipgloss.Renderer) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultTickRate
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(0, cfg.ScreenH-helpRows)),
		renderer:   NewScreenRenderer(r),
		store:      store,
		config:     cfg,
		player:     player,
		keys:       DefaultGameKeyMap(),
		help:       h,
		clock:      core.NewSimulationClock(cfg.TickRate),
		inputFrame: core.NewInputFrame(),
	}
}

// Init resets the game and starts the frame loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	return frameCmd(m.config.TickRate)
}

// gameConfig returns the runtime config with the help rows removed.
func (m GameModel) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = max(0, cfg.ScreenH-helpRows)
	return cfg
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Back):
		if !m.gameState.Started || m.gameState.Paused || m.gameState.GameOver {
			m.backToMenu = true
			if m.quitOnBack {
				return m, tea.Quit
			}
			return m, nil
		}
		// Esc while playing pauses instead
		m.inputFrame.Set(core.ActionPause)
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight:
		m.steer = action
		m.steerTicks = steerHoldTicks
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleMouse turns pointer motion into paddle steering and clicks into launches.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	pg, ok := m.game.(pointerGame)
	if !ok {
		return m, nil
	}
	if x, ok := pg.CanvasX(msg.X); ok {
		m.inputFrame.Point(x)
	}
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && !m.gameState.Started {
		m.inputFrame.Set(core.ActionLaunch)
	}
	return m, nil
}

// handleResize adapts the screen and the game to the new terminal size.
// The game keeps its progress.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	gameH := max(0, msg.Height-helpRows)
	m.screen.Resize(msg.Width, gameH)
	m.game.Resize(msg.Width, gameH)
	m.help.Width = msg.Width
	return m, nil
}

// handleFrame runs one simulation tick when the clock grants it.
func (m GameModel) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}
	if !m.clock.Advance(now) {
		return m, frameCmd(m.config.TickRate)
	}

	if m.steerTicks > 0 {
		m.inputFrame.Set(m.steer)
		m.steerTicks--
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		if m.store != nil && m.gameState.Score > 0 {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.game.ID(), m.player, m.gameState.Score, m.gameState.Level)
		}
		m.scoreSaved = true
	}
	if !m.gameState.GameOver {
		m.scoreSaved = false
	}

	m.inputFrame.Clear()
	return m, frameCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".breakout", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.renderer.Render(m.screen) + "\n" + m.help.View(m.keys)
}

// State returns the last stepped game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Config returns the current runtime config (may have been updated by resize).
func (m GameModel) Config() core.RuntimeConfig {
	return m.config
}

// GameResult holds the outcome of a local game run.
type GameResult struct {
	State      core.GameState
	Config     core.RuntimeConfig
	BackToMenu bool
}

// Run starts the Bubble Tea program for one game and blocks until it exits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string) (GameResult, error) {
	model := NewGameModel(game, store, cfg, player, nil)
	model.quitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return GameResult{Config: cfg}, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return GameResult{Config: cfg}, nil
	}
	return GameResult{
		State:      m.State(),
		Config:     m.Config(),
		BackToMenu: m.BackToMenu(),
	}, nil
}
