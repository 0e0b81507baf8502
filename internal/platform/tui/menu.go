package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// MenuItem is one breakout mode with its score summary.
type MenuItem struct {
	GameID     string
	Title      string
	HighScore  int
	PlayerBest int
	Games      int
}

// loadMenuItems reads every registered mode and its scores for player.
func loadMenuItems(store *storage.Store, player string) []MenuItem {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		item := MenuItem{GameID: g.ID, Title: g.Title}
		if store != nil {
			if stats, err := store.GetGameStats(g.ID); err == nil {
				item.HighScore = stats.HighScore
				item.Games = stats.GamesCount
			}
			if best, err := store.PlayerBest(g.ID, player); err == nil {
				item.PlayerBest = best
			}
		}
		items = append(items, item)
	}
	return items
}

// MenuModel is the Bubble Tea model for the mode picker.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	player   string
	config   core.RuntimeConfig
	renderer *lipgloss.Renderer
	keys     MenuKeyMap
	help     help.Model

	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel creates the menu for player. A nil renderer uses the local
// terminal.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, player string, r *lipgloss.Renderer) MenuModel {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	h := help.New()
	h.Width = cfg.ScreenW

	return MenuModel{
		items:    loadMenuItems(store, player),
		player:   player,
		config:   cfg,
		renderer: r,
		keys:     DefaultMenuKeyMap(),
		help:     h,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.cursor = max(0, m.cursor-1)
	case MenuActionDown:
		m.cursor = max(0, min(len(m.items)-1, m.cursor+1))
	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}
	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	dim := m.renderer.NewStyle().Foreground(lipgloss.Color("241"))
	active := m.renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(m.center(m.title()))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = active.Render("> " + item.Title)
		}
		b.WriteString(m.center(line))
		b.WriteString("\n")
		if summary := item.summary(m.player); summary != "" {
			b.WriteString(m.center(dim.Render(summary)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(m.center(dim.Render(m.help.View(m.keys))))
	b.WriteString("\n")
	return b.String()
}

// title spells BREAKOUT in the brick row colours.
func (m MenuModel) title() string {
	letters := make([]string, 0, len("BREAKOUT"))
	for i, r := range "BREAKOUT" {
		c := core.FixedPalette[i%len(core.FixedPalette)]
		letters = append(letters, m.renderer.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(string(c))).
			Render(string(r)))
	}
	return strings.Join(letters, " ")
}

func (m MenuModel) center(s string) string {
	return m.renderer.PlaceHorizontal(m.config.ScreenW, lipgloss.Center, s)
}

// summary describes the mode's scores, or nothing before the first game.
func (it MenuItem) summary(player string) string {
	if it.Games == 0 {
		return ""
	}
	s := fmt.Sprintf("%d played  |  best %d", it.Games, it.HighScore)
	if player != "" && it.PlayerBest > 0 {
		s += fmt.Sprintf("  |  yours %d", it.PlayerBest)
	}
	return s
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, player string) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(store, cfg, player, nil),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.GameID = m.Selected().GameID
	default:
		result.Quit = true
	}
	return result, nil
}
