package tui

import (
	"slices"

	"github.com/Iron-Ham/multicheck/internal/tui/view"
)

// position is the cursor's index among the visible rows of its column, with
// -1 standing for the Select All control.
func (m Model) position() int {
	if m.cursor.OnSelectAll() {
		return -1
	}
	rows := m.visibleRows(m.cursor.Column)
	if i := slices.Index(rows, m.cursor.Row); i >= 0 {
		return i
	}
	return 0
}

func (m Model) visibleRows(column int) []int {
	if column < 0 || column >= len(m.columns) {
		return nil
	}
	return view.VisibleRows(m.columns[column])
}

func (m *Model) moveUp() {
	if m.cursor.OnSelectAll() {
		return
	}
	rows := m.visibleRows(m.cursor.Column)
	pos := m.position()
	switch {
	case pos > 0:
		m.cursor.Row = rows[pos-1]
	case m.cursor.Column == 0:
		m.cursor.Row = view.SelectAllRow
	}
}

func (m *Model) moveDown() {
	rows := m.visibleRows(m.cursor.Column)
	pos := m.position()
	if pos+1 < len(rows) {
		m.cursor.Row = rows[pos+1]
	}
}

// moveColumn shifts the cursor by delta columns, skipping columns that hold
// no checkbox, and keeps the row position where the target column allows.
func (m *Model) moveColumn(delta int) {
	pos := m.position()
	for col := m.cursor.Column + delta; col >= 0 && col < len(m.columns); col += delta {
		rows := m.visibleRows(col)
		if col == 0 && len(rows) == 0 {
			m.cursor = view.Cursor{Column: 0, Row: view.SelectAllRow}
			return
		}
		if len(rows) == 0 {
			continue
		}
		target := min(max(pos, 0), len(rows)-1)
		m.cursor = view.Cursor{Column: col, Row: rows[target]}
		return
	}
}
