package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap holds the in-game key bindings.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Jump       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Back       key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Pause, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump},
		{k.Pause, k.Restart, k.Back, k.Quit, k.Screenshot},
	}
}

// DefaultKeyMap returns the default in-game bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w", "k"),
			key.WithHelp("space/↑", "jump"),
		),
		Pause: key.NewBinding(
			key.WithKeys("esc", "p"),
			key.WithHelp("esc/p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MenuKeyMap holds the bindings shared by the menu and the run board.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp implements help.KeyMap.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Select}, {k.Back, k.Quit}}
}

// DefaultMenuKeyMap returns the default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
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

// Action translates a key message to a menu action.
func (k MenuKeyMap) Action(msg tea.KeyMsg) MenuAction {
	switch {
	case key.Matches(msg, k.Quit):
		return MenuActionQuit
	case key.Matches(msg, k.Up):
		return MenuActionUp
	case key.Matches(msg, k.Down):
		return MenuActionDown
	case key.Matches(msg, k.Select):
		return MenuActionSelect
	case key.Matches(msg, k.Back):
		return MenuActionBack
	}
	return MenuActionNone
}
