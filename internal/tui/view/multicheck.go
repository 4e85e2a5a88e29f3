package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/multicheck/internal/multicheck"
	"github.com/Iron-Ham/multicheck/internal/tui/styles"
	"github.com/Iron-Ham/multicheck/internal/util"
)

// SelectAllRow is the cursor row of the Select All control in column 0.
const SelectAllRow = -1

// Cursor addresses one checkbox in the column grid.
type Cursor struct {
	Column int
	Row    int
}

// OnSelectAll reports whether the cursor is on the Select All control.
func (c Cursor) OnSelectAll() bool {
	return c.Column == 0 && c.Row == SelectAllRow
}

// MultiCheckState holds everything needed to render the checkbox group.
type MultiCheckState struct {
	// Label is the group header; empty renders no header
	Label string

	// Columns is the padded layout from multicheck.SplitIntoColumns
	Columns [][]multicheck.Option

	// IsSelected reports whether the option with the given value is checked
	IsSelected func(value string) bool

	// AllSelected is the checked state of Select All
	AllSelected bool

	// Cursor is the focused checkbox; nil renders without a cursor gutter
	Cursor *Cursor

	// ColumnGap is the number of blank cells between columns
	ColumnGap int

	// MaxLabelWidth truncates labels wider than this; 0 disables truncation
	MaxLabelWidth int
}

// NewMultiCheckState builds render state from a controller and a column count.
func NewMultiCheckState(label string, c *multicheck.Controller, columns int) *MultiCheckState {
	return &MultiCheckState{
		Label:       label,
		Columns:     multicheck.SplitIntoColumns(c.Options(), columns),
		IsSelected:  c.IsSelected,
		AllSelected: c.AllSelected(),
		ColumnGap:   2,
	}
}

// RenderMultiCheck renders the header followed by the columns side by side.
// Select All leads column 0; placeholder entries produce no line.
func RenderMultiCheck(state *MultiCheckState, s *styles.Styles) string {
	if state == nil {
		return ""
	}
	if s == nil {
		s = styles.Plain()
	}

	var b strings.Builder
	if state.Label != "" {
		b.WriteString(s.Header.Render(state.Label))
		b.WriteString("\n")
	}

	blocks := make([]string, 0, len(state.Columns)*2)
	gap := strings.Repeat(" ", max(state.ColumnGap, 0))
	for col, options := range state.Columns {
		if col > 0 && gap != "" {
			blocks = append(blocks, gap)
		}
		blocks = append(blocks, renderColumn(state, s, col, options))
	}
	if len(blocks) == 0 {
		// No columns at all still shows the aggregate control
		blocks = append(blocks, renderColumn(state, s, 0, nil))
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, blocks...))
	return b.String()
}

func renderColumn(state *MultiCheckState, s *styles.Styles, col int, options []multicheck.Option) string {
	var lines []string

	if col == 0 {
		focused := state.Cursor != nil && state.Cursor.OnSelectAll()
		lines = append(lines, renderLine(state, s, focused, state.AllSelected, s.SelectAll.Render(multicheck.SelectAllLabel)))
	}

	for row, opt := range options {
		if opt.IsPlaceholder() {
			continue
		}
		focused := state.Cursor != nil && state.Cursor.Column == col && state.Cursor.Row == row
		label := util.TruncateLabel(opt.Label, state.MaxLabelWidth)
		if focused {
			label = s.Focused.Render(label)
		} else {
			label = s.Label.Render(label)
		}
		checked := state.IsSelected != nil && state.IsSelected(opt.Value)
		lines = append(lines, renderLine(state, s, focused, checked, label))
	}

	return strings.Join(lines, "\n")
}

func renderLine(state *MultiCheckState, s *styles.Styles, focused, checked bool, label string) string {
	line := s.Mark(checked) + " " + label
	if state.Cursor == nil {
		return line
	}
	gutter := " "
	if focused {
		gutter = s.Cursor.Render(styles.CursorMark)
	}
	return gutter + " " + line
}

// VisibleRows returns the rows of column that render a checkbox, in order.
func VisibleRows(column []multicheck.Option) []int {
	rows := make([]int, 0, len(column))
	for i, opt := range column {
		if !opt.IsPlaceholder() {
			rows = append(rows, i)
		}
	}
	return rows
}

// MinLabelWidth keeps labels legible on very narrow terminals.
const MinLabelWidth = 8

// LabelBudget is the widest label that still fits columns side by side in
// width cells, with a cursor gutter. Zero width means unknown and disables
// truncation.
func LabelBudget(width, columns, gap int) int {
	if width <= 0 || columns <= 0 {
		return 0
	}
	// cursor gutter + marker + spaces
	const chrome = len("> [x] ")
	perColumn := (width-max(gap, 0)*(columns-1))/columns - chrome
	return max(perColumn, MinLabelWidth)
}
