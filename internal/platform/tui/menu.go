package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gnu-dash/internal/core"
	"github.com/vovakirdan/gnu-dash/internal/storage"
)

// MenuChoice is an entry of the main menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceDemo
	ChoiceRuns
	ChoiceQuit
)

type menuItem struct {
	choice MenuChoice
	label  string
	hint   string
}

var menuItems = []menuItem{
	{ChoicePlay, "Play", "run for freedom"},
	{ChoiceDemo, "Demo", "watch the autopilot"},
	{ChoiceRuns, "Session runs", "best runs so far"},
	{ChoiceQuit, "Quit", ""},
}

var (
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	cursor   int
	width    int
	height   int
	store    *storage.Store
	config   core.RuntimeConfig
	keys     MenuKeyMap
	help     help.Model
	selected MenuChoice
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		store:  store,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case MenuActionQuit, MenuActionBack:
		m.selected = ChoiceQuit
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.selected = menuItems[m.cursor].choice
		return m, tea.Quit
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.selected != ChoiceNone {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(bannerStyle.Render("G N U   D A S H"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(subtleStyle.Render(m.sessionLine()), m.width))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		line := "  " + item.label
		if i == m.cursor {
			line = cursorStyle.Render("> " + item.label)
			if item.hint != "" {
				line += subtleStyle.Render("  " + item.hint)
			}
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")
	return b.String()
}

func (m MenuModel) sessionLine() string {
	if m.store == nil {
		return "Collect source code. Keep your liberty shields."
	}
	runs, err := m.store.RunCount()
	if err != nil || runs == 0 {
		return "Collect source code. Keep your liberty shields."
	}
	best, _ := m.store.BestFreedom()
	return fmt.Sprintf("Runs this session: %d  |  Best freedom: %d", runs, best)
}

// Selected returns the chosen entry, ChoiceNone while the menu is open.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within width, measuring the printed width so
// styled strings line up.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	Config core.RuntimeConfig
}

// RunMenu shows the main menu and returns the user's choice.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return MenuResult{Choice: ChoiceQuit, Config: cfg}, fmt.Errorf("tui: menu: %w", err)
	}

	m, ok := final.(MenuModel)
	if !ok || m.Selected() == ChoiceNone {
		return MenuResult{Choice: ChoiceQuit, Config: cfg}, nil
	}
	return MenuResult{Choice: m.Selected(), Config: m.Config()}, nil
}
