package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gnu-dash/internal/storage"
)

// boardLimit caps how many runs the board lists.
const boardLimit = 100

var runColumns = []table.Column{
	{Title: "#", Width: 4},
	{Title: "Freedom", Width: 8},
	{Title: "Distance", Width: 9},
	{Title: "Shields lost", Width: 12},
	{Title: "Preset", Width: 7},
	{Title: "Seed", Width: 20},
	{Title: "Time", Width: 8},
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("2")).Padding(0, 1)
	boardEmptyStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).Padding(1, 4)
)

func runTableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.Bold(true).Foreground(lipgloss.Color("10")).
		BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(lipgloss.Color("2"))
	s.Selected = s.Selected.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("10"))
	return s
}

// runRow formats one stored run for the board.
func runRow(rank int, r storage.Run) table.Row {
	preset := r.Preset
	if preset == "" {
		preset = "-"
	}
	return table.Row{
		strconv.Itoa(rank),
		strconv.Itoa(r.Freedom),
		strconv.Itoa(r.Distance),
		strconv.Itoa(r.ShieldsLost),
		preset,
		strconv.FormatInt(r.Seed, 10),
		r.CreatedAt.Format("15:04:05"),
	}
}

// ScoreboardModel lists the best runs of the current session.
type ScoreboardModel struct {
	runs      []storage.Run
	stats     storage.Stats
	err       error
	table     table.Model
	help      help.Model
	keys      MenuKeyMap
	width     int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel reads the board from store. A nil store shows an
// empty board.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		keys:  DefaultMenuKeyMap(),
		help:  help.New(),
		width: width,
	}
	if store != nil {
		m.runs, m.err = store.TopRuns(boardLimit)
		if m.err == nil {
			m.stats, m.err = store.Stats()
		}
	}

	rows := make([]table.Row, 0, len(m.runs))
	for i, r := range m.runs {
		rows = append(rows, runRow(i+1, r))
	}
	m.table = table.New(
		table.WithColumns(runColumns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithStyles(runTableStyles()),
	)
	m.resize(width, height)
	return m
}

func (m *ScoreboardModel) resize(width, height int) {
	m.width = width
	m.help.Width = width
	m.table.SetHeight(max(height-9, 3))
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles navigation and leaving the board.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keys.Action(msg) {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionBack, MenuActionSelect:
			m.goingBack = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the board, or a note when there is nothing to show.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var body string
	switch {
	case m.err != nil:
		body = boardFrameStyle.Render("Could not load runs: " + m.err.Error())
	case len(m.runs) == 0:
		body = boardFrameStyle.Render(boardEmptyStyle.Render("No runs yet.\nRuns vanish when the program exits."))
	default:
		body = boardFrameStyle.Render(m.table.View()) + "\n" + subtleStyle.Render(fmt.Sprintf(
			"%d runs  |  best freedom %d  |  average %.1f  |  longest run %d",
			m.stats.Runs, m.stats.BestFreedom, m.stats.AvgFreedom, m.stats.MaxDistance))
	}

	return strings.Join([]string{
		"",
		centerText(boardTitleStyle.Render("SESSION RUNS"), m.width),
		"",
		body,
		subtleStyle.Render(m.help.View(m.keys)),
	}, "\n")
}

// IsGoingBack reports whether the board was left towards the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// RunScoreboard shows the run board. Reports whether the user went back to
// the menu rather than quitting.
func RunScoreboard(store *storage.Store, width, height int) (bool, error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, fmt.Errorf("tui: scoreboard: %w", err)
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
