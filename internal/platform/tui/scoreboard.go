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

	"github.com/vovakirdan/tilebreaker/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the layout sidebar
	sidebarWidth       = 16  // Width of the layout sidebar
	maxScores          = 100 // Max scores to load
)

// ScoreReader is the subset of storage the scoreboard reads from.
type ScoreReader interface {
	TopScores(layout string, limit int) ([]storage.ScoreRecord, error)
	Layouts() ([]string, error)
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextLayout key.Binding
	PrevLayout key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextLayout, k.PrevLayout, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextLayout, k.PrevLayout},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		NextLayout: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/tab", "next board"),
		),
		PrevLayout: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←", "prev board"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the high score screen.
// Scores are grouped by board layout.
type ScoreboardModel struct {
	layouts     []string
	cursor      int
	store       ScoreReader
	scores      []storage.ScoreRecord
	loadErr     error
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	embedded    bool // back returns to the caller instead of quitting
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewScoreboardModel creates a scoreboard opened on the given layout.
// The layout is listed even when it has no scores yet.
func NewScoreboardModel(store ScoreReader, width, height int, layout string) ScoreboardModel {
	h := help.New()
	h.Width = width

	m := ScoreboardModel{
		store:       store,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	if store != nil {
		layouts, err := store.Layouts()
		if err != nil {
			m.loadErr = err
		}
		m.layouts = layouts
	}
	if layout != "" {
		m.cursor = m.ensureLayout(layout)
	}

	m.table = m.createTable()
	m.loadScores()
	return m
}

// ensureLayout returns the index of layout, adding it if missing.
func (m *ScoreboardModel) ensureLayout(layout string) int {
	for i, l := range m.layouts {
		if l == layout {
			return i
		}
	}
	m.layouts = append(m.layouts, layout)
	return len(m.layouts) - 1
}

// createTable creates a new table sized to the window.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Player", Width: 12},
		{Title: "Score", Width: 6},
		{Title: "Moves", Width: 6},
		{Title: "Date", Width: 13},
	}

	tableWidth := m.width - 4
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	if extra := tableWidth - 52; extra > 0 {
		columns[1].Width += min(extra, 12)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadScores loads scores for the selected layout.
func (m *ScoreboardModel) loadScores() {
	m.scores = nil
	if m.store != nil && len(m.layouts) > 0 {
		scores, err := m.store.TopScores(m.layouts[m.cursor], maxScores)
		if err != nil {
			m.loadErr = err
		} else {
			m.scores = scores
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current scores.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		player := s.Player
		if player == "" {
			player = "-"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			player,
			strconv.Itoa(s.Score),
			strconv.Itoa(s.Moves),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.embedded {
				return m, nil
			}
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextLayout):
			if len(m.layouts) > 0 {
				m.cursor = (m.cursor + 1) % len(m.layouts)
				m.loadScores()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevLayout):
			if len(m.layouts) > 0 {
				m.cursor = (m.cursor - 1 + len(m.layouts)) % len(m.layouts)
				m.loadScores()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Layout returns the selected layout, or "" when there is none.
func (m ScoreboardModel) Layout() string {
	if len(m.layouts) == 0 {
		return ""
	}
	return m.layouts[m.cursor]
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || (m.goingBack && !m.embedded) {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := "HIGH SCORES"
	if l := m.Layout(); l != "" {
		title = fmt.Sprintf("HIGH SCORES - %s", describeLayout(l))
	}
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	if m.loadErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		b.WriteString(errStyle.Render("error: " + m.loadErr.Error()))
		b.WriteString("\n")
	}
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the sidebar of layouts next to the table.
func (m ScoreboardModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Boards\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, l := range m.layouts {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + l))
		sidebar.WriteString("\n")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()),
		"  ",
		tableBoxStyle().Render(m.renderTableContent()),
	)
}

// renderNarrowLayout renders the selected layout above the table.
func (m ScoreboardModel) renderNarrowLayout() string {
	var b strings.Builder

	if l := m.Layout(); l != "" {
		b.WriteString(centerText(fmt.Sprintf("< %s >", l), m.width))
		b.WriteString("\n\n")
	}
	b.WriteString(centerText(tableBoxStyle().Render(m.renderTableContent()), m.width))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.scores) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No scores recorded yet.\nClear a column to get on the board!")
	}
	return m.table.View()
}

func tableBoxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
}

// describeLayout turns "10x5" into "10x10, 5 colors".
func describeLayout(layout string) string {
	var width, colors int
	if n, _ := fmt.Sscanf(layout, "%dx%d", &width, &colors); n != 2 {
		return layout
	}
	return fmt.Sprintf("%dx%d, %d colors", width, width, colors)
}

// centerText centers a block horizontally.
func centerText(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

// IsGoingBack returns true if the user left with the back key.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard as its own program.
func RunScoreboard(store ScoreReader, width, height int, layout string) error {
	model := NewScoreboardModel(store, width, height, layout)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
