package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestLookup(t *testing.T) {
	km := Default()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Command
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, CmdUp},
		{"k", runeKey('k'), CmdUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, CmdDown},
		{"j", runeKey('j'), CmdDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, CmdLeft},
		{"shift+tab", tea.KeyMsg{Type: tea.KeyShiftTab}, CmdLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, CmdRight},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, CmdRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, CmdToggle},
		{"x", runeKey('x'), CmdToggle},
		{"a", runeKey('a'), CmdSelectAll},
		{"ctrl+a", tea.KeyMsg{Type: tea.KeyCtrlA}, CmdSelectAll},
		{"r", runeKey('r'), CmdReset},
		{"?", runeKey('?'), CmdToggleHelp},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, CmdConfirm},
		{"q", runeKey('q'), CmdCancel},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, CmdCancel},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, CmdCancel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := km.Lookup(tt.msg)
			if !ok {
				t.Fatalf("Lookup(%q) found nothing", tt.msg.String())
			}
			if got != tt.want {
				t.Errorf("Lookup(%q) = %q, want %q", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestLookup_Unbound(t *testing.T) {
	km := Default()
	for _, msg := range []tea.KeyMsg{runeKey('z'), {Type: tea.KeyCtrlD}} {
		if cmd, ok := km.Lookup(msg); ok {
			t.Errorf("Lookup(%q) = %q, want no match", msg.String(), cmd)
		}
	}
}

func TestSetResetEnabled(t *testing.T) {
	km := Default()
	km.SetResetEnabled(false)
	if _, ok := km.Lookup(runeKey('r')); ok {
		t.Error("disabled reset binding should not match")
	}
	km.SetResetEnabled(true)
	if cmd, ok := km.Lookup(runeKey('r')); !ok || cmd != CmdReset {
		t.Errorf("Lookup(r) = %q, %v after re-enabling", cmd, ok)
	}
}

func TestKeymap_ImplementsHelp(t *testing.T) {
	var km help.KeyMap = Default()

	if got := len(km.ShortHelp()); got != 5 {
		t.Errorf("ShortHelp() has %d bindings, want 5", got)
	}
	total := 0
	for _, group := range km.FullHelp() {
		total += len(group)
	}
	if total != 10 {
		t.Errorf("FullHelp() has %d bindings, want 10", total)
	}
}
