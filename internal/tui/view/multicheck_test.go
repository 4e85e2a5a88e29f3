package view

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Iron-Ham/multicheck/internal/multicheck"
	"github.com/Iron-Ham/multicheck/internal/tui/styles"
)

var nineOptions = []multicheck.Option{
	{Label: "aaa", Value: "111"},
	{Label: "bbb", Value: "222"},
	{Label: "ccc", Value: "333"},
	{Label: "ddd", Value: "444"},
	{Label: "eee", Value: "555"},
	{Label: "fff", Value: "666"},
	{Label: "ggg", Value: "777"},
	{Label: "hhh", Value: "888"},
	{Label: "iii", Value: "999"},
}

// renderLines renders with plain styles and strips the padding lipgloss adds.
func renderLines(state *MultiCheckState) []string {
	out := RenderMultiCheck(state, styles.Plain())
	lines := strings.Split(out, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return lines
}

func TestRenderMultiCheck_TwoColumns(t *testing.T) {
	c := multicheck.New(nineOptions, []string{"111", "444"})
	state := NewMultiCheckState("", c, 2)

	want := []string{
		"[ ] Select All  [ ] bbb",
		"[x] aaa         [x] ddd",
		"[ ] ccc         [ ] fff",
		"[ ] eee         [ ] hhh",
		"[ ] ggg",
		"[ ] iii",
	}
	if diff := cmp.Diff(want, renderLines(state)); diff != "" {
		t.Errorf("render mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderMultiCheck_Header(t *testing.T) {
	c := multicheck.New(nineOptions[:2], nil)

	t.Run("label renders a header", func(t *testing.T) {
		lines := renderLines(NewMultiCheckState("Numbers", c, 1))
		if lines[0] != "Numbers" {
			t.Errorf("first line = %q, want header", lines[0])
		}
		if !strings.Contains(strings.Join(lines, "\n"), "[ ] Select All") {
			t.Error("Select All missing below header")
		}
	})

	t.Run("empty label renders none", func(t *testing.T) {
		lines := renderLines(NewMultiCheckState("", c, 1))
		if lines[0] != "[ ] Select All" {
			t.Errorf("first line = %q, want Select All", lines[0])
		}
	})
}

func TestRenderMultiCheck_SelectAllOnlyInFirstColumn(t *testing.T) {
	c := multicheck.New(nineOptions, nil)
	out := RenderMultiCheck(NewMultiCheckState("", c, 3), styles.Plain())

	if n := strings.Count(out, multicheck.SelectAllLabel); n != 1 {
		t.Errorf("Select All rendered %d times, want 1", n)
	}
	for _, opt := range nineOptions {
		if n := strings.Count(out, opt.Label); n != 1 {
			t.Errorf("label %q rendered %d times, want 1", opt.Label, n)
		}
	}
}

func TestRenderMultiCheck_AllSelected(t *testing.T) {
	c := multicheck.New(nineOptions[:3], nil)
	c.SetAll(true)
	lines := renderLines(NewMultiCheckState("", c, 1))

	want := []string{
		"[x] Select All",
		"[x] aaa",
		"[x] bbb",
		"[x] ccc",
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("render mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderMultiCheck_EmptyOptions(t *testing.T) {
	c := multicheck.New(nil, nil)
	lines := renderLines(NewMultiCheckState("", c, 2))

	// Vacuously all selected
	if lines[0] != "[x] Select All" {
		t.Errorf("first line = %q, want checked Select All", lines[0])
	}
	if len(lines) != 1 {
		t.Errorf("got %d lines, want 1: %q", len(lines), lines)
	}
}

func TestRenderMultiCheck_MoreColumnsThanOptions(t *testing.T) {
	c := multicheck.New(nineOptions[:2], nil)
	lines := renderLines(NewMultiCheckState("", c, 4))

	want := []string{
		"[ ] Select All  [ ] bbb",
		"[ ] aaa",
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("render mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderMultiCheck_Cursor(t *testing.T) {
	c := multicheck.New(nineOptions[:4], nil)
	state := NewMultiCheckState("", c, 2)

	state.Cursor = &Cursor{Column: 0, Row: SelectAllRow}
	lines := renderLines(state)
	if !strings.HasPrefix(lines[0], "> [ ] Select All") {
		t.Errorf("cursor not on Select All: %q", lines[0])
	}

	state.Cursor = &Cursor{Column: 1, Row: 1}
	lines = renderLines(state)
	want := []string{
		"  [ ] Select All    [ ] bbb",
		"  [ ] aaa         > [ ] ddd",
		"  [ ] ccc",
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("render mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderMultiCheck_TruncatesLabels(t *testing.T) {
	c := multicheck.New([]multicheck.Option{{Label: "a very long label", Value: "1"}}, nil)
	state := NewMultiCheckState("", c, 1)
	state.MaxLabelWidth = 6

	lines := renderLines(state)
	if lines[1] != "[ ] a ver…" {
		t.Errorf("truncated line = %q", lines[1])
	}
}

func TestRenderMultiCheck_Nil(t *testing.T) {
	if got := RenderMultiCheck(nil, nil); got != "" {
		t.Errorf("RenderMultiCheck(nil) = %q, want empty", got)
	}
}

func TestVisibleRows(t *testing.T) {
	columns := multicheck.SplitIntoColumns(nineOptions, 2)
	if diff := cmp.Diff([]int{0, 1, 2, 3, 4}, VisibleRows(columns[0])); diff != "" {
		t.Errorf("column 0 rows (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 1, 2, 3}, VisibleRows(columns[1])); diff != "" {
		t.Errorf("column 1 rows (-want +got):\n%s", diff)
	}

	gappy := []multicheck.Option{{Label: "a", Value: "1"}, {Label: "", Value: "2"}, {Label: "c", Value: "3"}}
	if diff := cmp.Diff([]int{0, 2}, VisibleRows(gappy)); diff != "" {
		t.Errorf("gappy rows (-want +got):\n%s", diff)
	}
}

func TestLabelBudget(t *testing.T) {
	tests := []struct {
		name                string
		width, columns, gap int
		want                int
	}{
		{"unknown width", 0, 2, 2, 0},
		{"no columns", 80, 0, 2, 0},
		{"single column", 40, 1, 2, 34},
		{"two columns", 80, 2, 2, 33},
		{"negative gap treated as zero", 40, 2, -5, 14},
		{"narrow terminal", 10, 3, 2, MinLabelWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LabelBudget(tt.width, tt.columns, tt.gap); got != tt.want {
				t.Errorf("LabelBudget(%d, %d, %d) = %d, want %d", tt.width, tt.columns, tt.gap, got, tt.want)
			}
		})
	}
}
