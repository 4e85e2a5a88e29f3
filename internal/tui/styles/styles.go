// Package styles builds the lipgloss styles the checkbox group is drawn with.
package styles

import "github.com/charmbracelet/lipgloss"

// Checkbox markers. Both are three cells wide so columns stay aligned.
const (
	CheckedMark   = "[x]"
	UncheckedMark = "[ ]"
	CursorMark    = ">"
)

// Styles contains all the lipgloss styles built from a color palette.
type Styles struct {
	Theme ThemeName

	// Header is the group label above the columns
	Header lipgloss.Style

	// Checkbox markers
	Checked   lipgloss.Style
	Unchecked lipgloss.Style

	// Label is an option label; Focused is the label under the cursor
	Label   lipgloss.Style
	Focused lipgloss.Style
	Cursor  lipgloss.Style

	// SelectAll is the label of the aggregate control
	SelectAll lipgloss.Style

	// Help bar
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
	HelpSeparator lipgloss.Style

	// Status line messages
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// New creates Styles for the named theme. Unknown names get the default theme.
func New(name ThemeName) *Styles {
	if !IsValidTheme(string(name)) {
		name = ThemeDefault
	}
	return NewFromPalette(name, GetPalette(name))
}

// NewFromPalette creates Styles from an explicit palette.
func NewFromPalette(name ThemeName, p *ColorPalette) *Styles {
	s := &Styles{Theme: name}

	s.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary).
		MarginBottom(1)

	s.Checked = lipgloss.NewStyle().Foreground(p.Checked).Bold(true)
	s.Unchecked = lipgloss.NewStyle().Foreground(p.Muted)

	s.Label = lipgloss.NewStyle().Foreground(p.Text)
	s.Focused = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	s.Cursor = lipgloss.NewStyle().Foreground(p.Primary).Bold(true)

	s.SelectAll = lipgloss.NewStyle().
		Foreground(p.Accent).
		Italic(true)

	s.HelpKey = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)
	s.HelpDesc = lipgloss.NewStyle().Foreground(p.Muted)
	s.HelpSeparator = lipgloss.NewStyle().Foreground(p.Border)

	s.Warning = lipgloss.NewStyle().Foreground(p.Warning)
	s.Error = lipgloss.NewStyle().Foreground(p.Error).Bold(true)

	return s
}

// Plain returns Styles that add no escape codes, for non-terminal output.
func Plain() *Styles {
	none := lipgloss.NewStyle()
	return &Styles{
		Theme:         ThemeDefault,
		Header:        none.MarginBottom(1),
		Checked:       none,
		Unchecked:     none,
		Label:         none,
		Focused:       none,
		Cursor:        none,
		SelectAll:     none,
		HelpKey:       none,
		HelpDesc:      none,
		HelpSeparator: none,
		Warning:       none,
		Error:         none,
	}
}

// Mark returns the styled checkbox marker for the given state.
func (s *Styles) Mark(checked bool) string {
	if checked {
		return s.Checked.Render(CheckedMark)
	}
	return s.Unchecked.Render(UncheckedMark)
}
