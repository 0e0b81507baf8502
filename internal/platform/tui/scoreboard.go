package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

const (
	scoreboardLimit = 50 // Games loaded per mode

	// Columns other than Player, cell padding and the frame.
	scoreboardFixedWidth = 49
)

// scoreRow is a finished game with its rank within the mode.
type scoreRow struct {
	rank  int
	entry storage.ScoreEntry
}

type scoreboardStyles struct {
	title     lipgloss.Style
	tab       lipgloss.Style
	activeTab lipgloss.Style
	frame     lipgloss.Style
	dim       lipgloss.Style
}

func newScoreboardStyles(r *lipgloss.Renderer) scoreboardStyles {
	return scoreboardStyles{
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		tab:   r.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1),
		activeTab: r.NewStyle().Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1),
		frame: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		dim: r.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// ScoreboardModel lists the best finished games of each breakout mode.
// The viewing player's games are starred and can be shown on their own.
type ScoreboardModel struct {
	modes    []registry.GameInfo
	mode     int
	store    *storage.Store
	player   string
	mineOnly bool

	rows  []scoreRow
	stats *storage.GameStats

	renderer *lipgloss.Renderer
	styles   scoreboardStyles
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap

	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates the scoreboard for player. A nil renderer uses
// the local terminal.
func NewScoreboardModel(store *storage.Store, player string, width, height int, r *lipgloss.Renderer) ScoreboardModel {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	h := help.New()
	h.Width = width

	m := ScoreboardModel{
		modes:    registry.List(),
		store:    store,
		player:   player,
		renderer: r,
		styles:   newScoreboardStyles(r),
		help:     h,
		keys:     DefaultScoreboardKeyMap(),
		width:    width,
		height:   height,
	}
	m.table = m.newTable()
	m.load()
	return m
}

func (m ScoreboardModel) newTable() table.Model {
	s := table.DefaultStyles()
	s.Header = m.renderer.NewStyle().
		Bold(true).
		Padding(0, 1).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true)
	s.Cell = m.renderer.NewStyle().Padding(0, 1)
	s.Selected = m.renderer.NewStyle().
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))

	return table.New(
		table.WithColumns(m.columns()),
		table.WithHeight(m.tableHeight()),
		table.WithFocused(true),
		table.WithStyles(s),
	)
}

// columns gives Player whatever width the terminal leaves.
func (m ScoreboardModel) columns() []table.Column {
	return []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Player", Width: core.Clamp(m.width-scoreboardFixedWidth, 8, 20)},
		{Title: "Score", Width: 8},
		{Title: "Level", Width: 6},
		{Title: "Date", Width: 12},
	}
}

// tableHeight leaves room for the title, the tabs, the stats and the help.
func (m ScoreboardModel) tableHeight() int {
	return max(3, m.height-10)
}

// load reads the current mode's games from the store.
func (m *ScoreboardModel) load() {
	m.rows, m.stats = nil, nil
	if m.store != nil && len(m.modes) > 0 {
		id := m.modes[m.mode].ID
		if entries, err := m.store.TopScores(id, scoreboardLimit); err == nil {
			for i, e := range entries {
				m.rows = append(m.rows, scoreRow{rank: i + 1, entry: e})
			}
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}
	m.refresh()
}

// visible returns the rows shown under the current filter.
func (m ScoreboardModel) visible() []scoreRow {
	if !m.mineOnly {
		return m.rows
	}
	var mine []scoreRow
	for _, r := range m.rows {
		if r.entry.Player == m.player {
			mine = append(mine, r)
		}
	}
	return mine
}

// refresh rebuilds the table rows.
func (m *ScoreboardModel) refresh() {
	shown := m.visible()
	rows := make([]table.Row, len(shown))
	for i, r := range shown {
		rank := "#" + strconv.Itoa(r.rank)
		if m.player != "" && r.entry.Player == m.player {
			rank += "*"
		}
		rows[i] = table.Row{
			rank,
			playerName(r.entry.Player),
			strconv.Itoa(r.entry.Score),
			strconv.Itoa(r.entry.Level),
			r.entry.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func playerName(p string) string {
	if p == "" {
		return "-"
	}
	return p
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Mode):
			if n := len(m.modes); n > 1 {
				step := 1
				if s := msg.String(); s == "left" || s == "h" {
					step = n - 1
				}
				m.mode = (m.mode + step) % n
				m.load()
			}
			return m, nil
		case key.Matches(msg, m.keys.Mine):
			m.mineOnly = !m.mineOnly
			m.refresh()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table.SetColumns(m.columns())
		m.table.SetHeight(m.tableHeight())
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "HIGH SCORES"
	if m.mineOnly {
		title += " - " + playerName(m.player)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(m.center(m.styles.title.Render(title)))
	b.WriteString("\n\n")
	b.WriteString(m.center(m.modeTabs()))
	b.WriteString("\n\n")
	b.WriteString(m.center(m.styles.frame.Render(m.body())))
	b.WriteString("\n")
	if stats := m.statsLine(); stats != "" {
		b.WriteString(m.center(m.styles.dim.Render(stats)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.center(m.styles.dim.Render(m.help.View(m.keys))))
	return b.String()
}

func (m ScoreboardModel) center(s string) string {
	return m.renderer.PlaceHorizontal(m.width, lipgloss.Center, s)
}

func (m ScoreboardModel) modeTabs() string {
	tabs := make([]string, len(m.modes))
	for i, g := range m.modes {
		if i == m.mode {
			tabs[i] = m.styles.activeTab.Render(g.Title)
		} else {
			tabs[i] = m.styles.tab.Render(g.Title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m ScoreboardModel) body() string {
	if len(m.visible()) > 0 {
		return m.table.View()
	}
	text := "No games recorded yet."
	if m.mineOnly {
		text = fmt.Sprintf("No games recorded for %s yet.", playerName(m.player))
	}
	return m.styles.dim.Italic(true).Padding(1, 2).Render(text)
}

// statsLine summarises every game played in the mode, not only the listed ones.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("%d games  |  best %d  |  avg %.0f  |  level %d",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore, m.stats.BestLevel)
}

// Mode returns the ID of the mode on display.
func (m ScoreboardModel) Mode() string {
	if len(m.modes) == 0 {
		return ""
	}
	return m.modes[m.mode].ID
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, player string, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(store, player, width, height, nil),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
