package tui

import (
	"strings"

	"github.com/Iron-Ham/multicheck/internal/tui/view"
)

// View renders the checkbox group, status line, and help bar. Once the
// program is done only the group is drawn, without a cursor.
func (m Model) View() string {
	state := &view.MultiCheckState{
		Label:         m.label,
		Columns:       m.columns,
		IsSelected:    m.controller.IsSelected,
		AllSelected:   m.controller.AllSelected(),
		ColumnGap:     m.columnGap,
		MaxLabelWidth: m.labelBudget(),
	}
	if !m.done() {
		cursor := m.cursor
		state.Cursor = &cursor
	}

	var b strings.Builder
	b.WriteString(view.RenderMultiCheck(state, m.styles))
	b.WriteString("\n")

	if m.done() {
		return b.String()
	}

	switch {
	case m.errorMessage != "":
		b.WriteString("\n" + m.styles.Error.Render(m.errorMessage) + "\n")
	case m.statusMessage != "":
		b.WriteString("\n" + m.styles.Warning.Render(m.statusMessage) + "\n")
	}

	if m.showHelp {
		b.WriteString("\n" + m.help.View(m.keymap) + "\n")
	}
	return b.String()
}

// labelBudget is the widest label that still fits every column on screen.
func (m Model) labelBudget() int {
	return view.LabelBudget(m.width, len(m.columns), m.columnGap)
}
