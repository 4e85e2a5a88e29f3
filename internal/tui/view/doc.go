// Package view renders the checkbox group for the terminal.
//
// Rendering is stateless: callers build a [MultiCheckState] from the
// selection controller and pass it to [RenderMultiCheck] together with a
// [styles.Styles]. The same renderer backs the interactive program and the
// non-interactive layout command; the latter leaves [MultiCheckState.Cursor]
// nil so no cursor gutter is drawn.
//
// # Layout
//
// Options are split round-robin into columns by multicheck.SplitIntoColumns.
// The Select All control always leads column 0, and columns are joined side
// by side and top-aligned. Placeholder padding never produces a line.
//
// # Cursor
//
// A [Cursor] addresses a column and a row within it. Row [SelectAllRow] of
// column 0 is the Select All control. [VisibleRows] lists the rows that
// hold a real checkbox, which is what cursor movement walks over.
package view
