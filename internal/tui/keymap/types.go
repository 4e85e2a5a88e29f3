// Package keymap provides key binding definitions and lookup for the TUI.
// Bindings are declared once and resolved to named commands, so Update
// dispatches on what a key means rather than which key it is.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Command represents a named action that can be triggered by a key binding.
type Command string

const (
	// Navigation
	CmdUp    Command = "up"
	CmdDown  Command = "down"
	CmdLeft  Command = "left"
	CmdRight Command = "right"

	// Selection
	CmdToggle    Command = "toggle"
	CmdSelectAll Command = "select_all"
	CmdReset     Command = "reset"

	// Program
	CmdToggleHelp Command = "toggle_help"
	CmdConfirm    Command = "confirm"
	CmdCancel     Command = "cancel"
)

// Keymap holds every binding of the checkbox group.
// It implements help.KeyMap.
type Keymap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Toggle    key.Binding
	SelectAll key.Binding
	Reset     key.Binding
	Help      key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
}

// Default returns the default key bindings.
func Default() *Keymap {
	return &Keymap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/h", "prev column"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/l", "next column"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "toggle"),
		),
		SelectAll: key.NewBinding(
			key.WithKeys("a", "ctrl+a"),
			key.WithHelp("a", "select all"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "cancel"),
		),
	}
}

// entries pairs each binding with its command in lookup order.
func (k *Keymap) entries() []struct {
	binding key.Binding
	cmd     Command
} {
	return []struct {
		binding key.Binding
		cmd     Command
	}{
		{k.Up, CmdUp},
		{k.Down, CmdDown},
		{k.Left, CmdLeft},
		{k.Right, CmdRight},
		{k.Toggle, CmdToggle},
		{k.SelectAll, CmdSelectAll},
		{k.Reset, CmdReset},
		{k.Help, CmdToggleHelp},
		{k.Confirm, CmdConfirm},
		{k.Cancel, CmdCancel},
	}
}

// Lookup resolves a key press to its command. Disabled bindings never match.
func (k *Keymap) Lookup(msg tea.KeyMsg) (Command, bool) {
	for _, e := range k.entries() {
		if key.Matches(msg, e.binding) {
			return e.cmd, true
		}
	}
	return "", false
}

// SetResetEnabled shows or hides the reset binding. It only makes sense when
// a baseline was supplied.
func (k *Keymap) SetResetEnabled(enabled bool) {
	k.Reset.SetEnabled(enabled)
}

// ShortHelp implements help.KeyMap.
func (k *Keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.SelectAll, k.Confirm, k.Cancel, k.Help}
}

// FullHelp implements help.KeyMap.
func (k *Keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Toggle, k.SelectAll, k.Reset},
		{k.Confirm, k.Cancel, k.Help},
	}
}
