package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/storage"
)

// maxReplays is how many replays the browser loads at once.
const maxReplays = 100

// ReplayBrowserKeyMap defines the key bindings for the replay browser.
type ReplayBrowserKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Watch  key.Binding
	Delete key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ReplayBrowserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Watch, k.Delete, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ReplayBrowserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Watch, k.Delete},
		{k.Back, k.Quit},
	}
}

// DefaultReplayBrowserKeyMap returns default key bindings.
func DefaultReplayBrowserKeyMap() ReplayBrowserKeyMap {
	return ReplayBrowserKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Watch: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "watch"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
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

// ReplayBrowserModel is the Bubble Tea model for the replay list.
type ReplayBrowserModel struct {
	store     *storage.Store
	entries   []storage.ReplayEntry
	table     table.Model
	help      help.Model
	keys      ReplayBrowserKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
	selected  int64 // ID of the replay to watch, 0 if none
}

// NewReplayBrowserModel creates a new replay browser model.
func NewReplayBrowserModel(store *storage.Store, width, height int) ReplayBrowserModel {
	h := help.New()
	h.ShowAll = false

	m := ReplayBrowserModel{
		store:  store,
		keys:   DefaultReplayBrowserKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}

	m.table = m.createTable()
	m.loadReplays()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *ReplayBrowserModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 5},
		{Title: "Mode", Width: 11},
		{Title: "Difficulty", Width: 10},
		{Title: "Score", Width: 8},
		{Title: "Winner", Width: 7},
		{Title: "Date", Width: 16},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-8), // Leave room for header, help, and margins
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

// loadReplays reloads the replay list from storage.
func (m *ReplayBrowserModel) loadReplays() {
	if m.store == nil {
		m.entries = nil
		m.updateTableRows()
		return
	}

	entries, err := m.store.Replays(maxReplays)
	if err != nil {
		m.entries = nil
	} else {
		m.entries = entries
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the current replay list.
func (m *ReplayBrowserModel) updateTableRows() {
	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rows[i] = table.Row{
			strconv.FormatInt(e.ID, 10),
			e.Mode,
			e.Difficulty,
			fmt.Sprintf("%d-%d", e.LeftScore, e.RightScore),
			e.Winner,
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// currentEntry returns the replay under the cursor, or nil.
func (m *ReplayBrowserModel) currentEntry() *storage.ReplayEntry {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.entries) {
		return nil
	}
	return &m.entries[i]
}

// Init initializes the replay browser model.
func (m ReplayBrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the replay browser.
func (m ReplayBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

		case key.Matches(msg, m.keys.Watch):
			if e := m.currentEntry(); e != nil {
				m.selected = e.ID
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if e := m.currentEntry(); e != nil && m.store != nil {
				//nolint:errcheck // Best-effort delete, list reload shows the result
				m.store.DeleteReplay(e.ID)
				m.loadReplays()
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the replay browser.
func (m ReplayBrowserModel) View() string {
	if m.quitting || m.goingBack || m.selected != 0 {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	var content string
	if len(m.entries) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		content = emptyStyle.Render("No replays recorded yet.\nFinish a match to record one!")
	} else {
		content = m.table.View()
	}

	return titleStyle.Render(centerText("REPLAYS", m.width)) + "\n\n" +
		centerText(tableStyle.Render(content), m.width) + "\n" +
		helpStyle.Render(m.help.View(m.keys))
}

// SelectedID returns the ID of the replay chosen for playback, 0 if none.
func (m ReplayBrowserModel) SelectedID() int64 {
	return m.selected
}

// IsGoingBack returns true if user wants to go back to the menu.
func (m ReplayBrowserModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ReplayBrowserModel) IsQuitting() bool {
	return m.quitting
}

// RunReplayBrowser runs the replay browser screen.
// Returns the chosen replay ID (0 if none) and whether to go back to the menu.
func RunReplayBrowser(store *storage.Store, width, height int) (id int64, goBack bool, err error) {
	model := NewReplayBrowserModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return 0, false, err
	}

	m, ok := finalModel.(ReplayBrowserModel)
	if !ok {
		return 0, false, nil
	}

	return m.SelectedID(), m.IsGoingBack(), nil
}
