// Package util provides width-aware string helpers for terminal rendering.
package util

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// TruncateLabel truncates s to maxWidth visual columns, ending in Ellipsis when
// anything was cut. Escape codes and wide characters are measured correctly.
// A non-positive maxWidth disables truncation.
func TruncateLabel(s string, maxWidth int) string {
	if maxWidth <= 0 || lipgloss.Width(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return Ellipsis
	}
	// ansi.Truncate counts the tail towards maxWidth
	return ansi.Truncate(s, maxWidth, Ellipsis)
}
