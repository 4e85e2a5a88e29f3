package styles

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// ThemeName represents a named color theme.
type ThemeName string

// Available theme names.
const (
	ThemeDefault ThemeName = "default" // Purple/green dark theme
	ThemeMonokai ThemeName = "monokai" // Classic Monokai editor colors
	ThemeDracula ThemeName = "dracula" // Dracula theme colors
	ThemeNord    ThemeName = "nord"    // Nord theme - cool blue-gray
)

// BuiltinThemes returns all built-in theme names.
func BuiltinThemes() []string {
	return []string{
		string(ThemeDefault),
		string(ThemeMonokai),
		string(ThemeDracula),
		string(ThemeNord),
	}
}

// IsValidTheme checks if a theme name is known.
func IsValidTheme(name string) bool {
	return slices.Contains(BuiltinThemes(), name)
}

// ColorPalette defines the color scheme for a theme.
// All colors should meet WCAG AA contrast requirements (4.5:1 ratio).
type ColorPalette struct {
	// Primary accent color (header, cursor)
	Primary lipgloss.Color
	// Checked is used for selected checkbox markers
	Checked lipgloss.Color
	// Warning color (baseline reload problems)
	Warning lipgloss.Color
	// Error color
	Error lipgloss.Color
	// Muted color (unchecked markers, help descriptions)
	Muted lipgloss.Color
	// Text color (option labels)
	Text lipgloss.Color
	// Border color (help separator)
	Border lipgloss.Color
	// Accent is used for the Select All control
	Accent lipgloss.Color
}

// DefaultPalette returns the default purple/green dark theme palette.
func DefaultPalette() *ColorPalette {
	return &ColorPalette{
		Primary: lipgloss.Color("#A78BFA"), // Purple (violet-400)
		Checked: lipgloss.Color("#10B981"), // Green
		Warning: lipgloss.Color("#F59E0B"), // Amber
		Error:   lipgloss.Color("#F87171"), // Red (red-400)
		Muted:   lipgloss.Color("#9CA3AF"), // Gray
		Text:    lipgloss.Color("#F9FAFB"), // Light text
		Border:  lipgloss.Color("#6B7280"), // Gray-500
		Accent:  lipgloss.Color("#60A5FA"), // Blue
	}
}

// MonokaiPalette returns the classic Monokai editor theme palette.
func MonokaiPalette() *ColorPalette {
	return &ColorPalette{
		Primary: lipgloss.Color("#F92672"), // Monokai pink/magenta
		Checked: lipgloss.Color("#A6E22E"), // Monokai green
		Warning: lipgloss.Color("#E6DB74"), // Monokai yellow
		Error:   lipgloss.Color("#F92672"), // Monokai pink (same as primary)
		Muted:   lipgloss.Color("#75715E"), // Monokai comment gray
		Text:    lipgloss.Color("#F8F8F2"), // Monokai foreground
		Border:  lipgloss.Color("#49483E"), // Monokai selection
		Accent:  lipgloss.Color("#66D9EF"), // Cyan
	}
}

// DraculaPalette returns the Dracula theme palette.
func DraculaPalette() *ColorPalette {
	return &ColorPalette{
		Primary: lipgloss.Color("#BD93F9"), // Dracula purple
		Checked: lipgloss.Color("#50FA7B"), // Dracula green
		Warning: lipgloss.Color("#F1FA8C"), // Dracula yellow
		Error:   lipgloss.Color("#FF5555"), // Dracula red
		Muted:   lipgloss.Color("#6272A4"), // Dracula comment
		Text:    lipgloss.Color("#F8F8F2"), // Dracula foreground
		Border:  lipgloss.Color("#44475A"), // Dracula selection
		Accent:  lipgloss.Color("#8BE9FD"), // Cyan
	}
}

// NordPalette returns the Nord theme palette.
func NordPalette() *ColorPalette {
	return &ColorPalette{
		Primary: lipgloss.Color("#88C0D0"), // Nord frost (cyan)
		Checked: lipgloss.Color("#A3BE8C"), // Nord aurora green
		Warning: lipgloss.Color("#EBCB8B"), // Nord aurora yellow
		Error:   lipgloss.Color("#BF616A"), // Nord aurora red
		Muted:   lipgloss.Color("#4C566A"), // Nord polar night 3
		Text:    lipgloss.Color("#ECEFF4"), // Nord snow storm 2
		Border:  lipgloss.Color("#3B4252"), // Nord polar night 1
		Accent:  lipgloss.Color("#81A1C1"), // Frost blue
	}
}

// GetPalette returns the color palette for the given theme name.
// Returns the default palette for unknown theme names.
func GetPalette(name ThemeName) *ColorPalette {
	switch name {
	case ThemeMonokai:
		return MonokaiPalette()
	case ThemeDracula:
		return DraculaPalette()
	case ThemeNord:
		return NordPalette()
	default:
		return DefaultPalette()
	}
}
