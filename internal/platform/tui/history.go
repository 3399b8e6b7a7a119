package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/slide-maze/internal/registry"
	"github.com/vovakirdan/slide-maze/internal/storage"
)

// History layout constants
const (
	minWidthForSidebar = 90  // Minimum width to show the variant sidebar
	sidebarWidth       = 26  // Width of the variant sidebar
	maxRuns            = 100 // Runs loaded per variant
)

// HistoryKeyMap defines the key bindings for the history view.
type HistoryKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.PrevGame, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next variant"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev variant"),
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

// HistoryModel is the Bubble Tea model for the run history screen.
type HistoryModel struct {
	games       []registry.GameInfo
	gameCursor  int
	store       *storage.Store
	runs        []storage.Run
	stats       storage.GameStats
	loadErr     error
	table       table.Model
	help        help.Model
	keys        HistoryKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewHistoryModel creates a history view over every registered variant.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	m := HistoryModel{
		games:       registry.List(),
		store:       store,
		keys:        DefaultHistoryKeyMap(),
		help:        help.New(),
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	if len(m.games) > 0 {
		m.loadRuns(m.games[0].ID)
	}
	return m
}

// createTable builds the runs table sized for the current window.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "When", Width: 12},
		{Title: "Seed", Width: 20},
		{Title: "Size", Width: 4},
		{Title: "Steps", Width: 5},
		{Title: "Drags", Width: 5},
		{Title: "Solved", Width: 6},
		{Title: "Time", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
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

// loadRuns loads runs and stats for one variant.
func (m *HistoryModel) loadRuns(gameID string) {
	m.runs, m.stats, m.loadErr = nil, storage.GameStats{}, nil
	if m.store != nil {
		m.runs, m.loadErr = m.store.RecentRuns(gameID, maxRuns)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.GameStats(gameID)
		}
	}
	m.updateTableRows()
}

// updateTableRows fills the table from the loaded runs.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		solved := "-"
		if r.Solved {
			solved = "yes"
		}
		rows[i] = table.Row{
			r.CreatedAt.Local().Format("Jan 02 15:04"),
			fmt.Sprintf("%d", r.Seed),
			fmt.Sprintf("%d", r.Size),
			fmt.Sprintf("%d", r.Steps),
			fmt.Sprintf("%d", r.Drags),
			solved,
			formatDuration(r.Duration),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// formatDuration renders seconds as m:ss.
func formatDuration(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history view.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + 1) % len(m.games)
				m.loadRuns(m.games[m.gameCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor - 1 + len(m.games)) % len(m.games)
				m.loadRuns(m.games[m.gameCursor].ID)
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

// View renders the history view.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "RUN HISTORY"
	if len(m.games) > 0 {
		title = fmt.Sprintf("RUN HISTORY - %s", m.games[m.gameCursor].Title)
	}
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	content := lipgloss.JoinVertical(lipgloss.Left, m.renderStats(), "", m.renderTableContent())
	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render(content)

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", panel))
	} else {
		b.WriteString(centerText(m.renderTabs(), m.width))
		b.WriteString("\n\n")
		b.WriteString(panel)
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderSidebar renders the variant list.
func (m HistoryModel) renderSidebar() string {
	var sb strings.Builder
	sb.WriteString("Variants\n")
	sb.WriteString(strings.Repeat("─", sidebarWidth-4))
	sb.WriteString("\n")

	for i, g := range m.games {
		if i == m.gameCursor {
			sb.WriteString(selectedStyle.Render("> " + g.Title))
		} else {
			sb.WriteString("  " + g.Title)
		}
		sb.WriteString("\n")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1).
		Render(sb.String())
}

// renderTabs shows the current variant on narrow screens.
func (m HistoryModel) renderTabs() string {
	if len(m.games) == 0 {
		return ""
	}
	return fmt.Sprintf("< %s >", m.games[m.gameCursor].Title)
}

// renderStats renders the aggregate line for the current variant.
func (m HistoryModel) renderStats() string {
	st := m.stats
	line := fmt.Sprintf("Runs %d   Solved %d   Steps %d   Drags %d", st.Runs, st.Solved, st.TotalSteps, st.TotalDrags)
	if st.BestSteps > 0 {
		line += fmt.Sprintf("   Best %d steps", st.BestSteps)
	}
	return line
}

// renderTableContent renders the table or an empty message.
func (m HistoryModel) renderTableContent() string {
	empty := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(1, 4)

	switch {
	case m.store == nil:
		return empty.Render("Run history is unavailable.")
	case m.loadErr != nil:
		return empty.Render(fmt.Sprintf("Could not load runs: %v", m.loadErr))
	case len(m.runs) == 0:
		return empty.Render("No runs recorded yet.\nSolve a board to start the history!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// RunHistory runs the history screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunHistory(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewHistoryModel(store, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("tui: history: %w", err)
	}
	m, ok := final.(HistoryModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
