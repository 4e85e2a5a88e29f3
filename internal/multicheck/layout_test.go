package multicheck

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalizeColumns(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{-5, 1},
		{-1, 1},
		{0, 1},
		{1, 1},
		{2, 2},
		{10, 10},
		{250, 250},
	}
	for _, tt := range tests {
		if got := NormalizeColumns(tt.in); got != tt.want {
			t.Errorf("NormalizeColumns(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSplitIntoColumns(t *testing.T) {
	abc := []Option{
		{Label: "a", Value: "1"},
		{Label: "b", Value: "2"},
		{Label: "c", Value: "3"},
	}

	tests := []struct {
		name    string
		options []Option
		columns int
		want    [][]Option
	}{
		{
			name:    "single column keeps order",
			options: abc,
			columns: 1,
			want:    [][]Option{abc},
		},
		{
			name:    "round robin with padding",
			options: abc,
			columns: 2,
			want: [][]Option{
				{abc[0], abc[2]},
				{abc[1], Placeholder},
			},
		},
		{
			name:    "exact fit",
			options: abc,
			columns: 3,
			want:    [][]Option{{abc[0]}, {abc[1]}, {abc[2]}},
		},
		{
			name:    "more columns than options",
			options: abc,
			columns: 5,
			want:    [][]Option{{abc[0]}, {abc[1]}, {abc[2]}, {Placeholder}, {Placeholder}},
		},
		{
			name:    "empty options",
			options: nil,
			columns: 3,
			want:    [][]Option{{}, {}, {}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitIntoColumns(tt.options, tt.columns)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SplitIntoColumns mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSplitIntoColumns_InvalidCountsMatchOne(t *testing.T) {
	want := SplitIntoColumns(nineOptions, 1)
	for _, columns := range []int{0, -1, -100} {
		got := SplitIntoColumns(nineOptions, columns)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("columns=%d should behave like 1 (-want +got):\n%s", columns, diff)
		}
	}
}

func TestSplitIntoColumns_NineOverTwo(t *testing.T) {
	got := SplitIntoColumns(nineOptions, 2)

	if len(got) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(got))
	}
	if len(got[0]) != 5 || len(got[1]) != 5 {
		t.Fatalf("expected both columns to have 5 rows, got %d and %d", len(got[0]), len(got[1]))
	}

	countReal := func(col []Option) int {
		n := 0
		for _, o := range col {
			if !o.IsPlaceholder() {
				n++
			}
		}
		return n
	}
	if countReal(got[0]) != 5 || countReal(got[1]) != 4 {
		t.Errorf("expected 5 and 4 real items, got %d and %d", countReal(got[0]), countReal(got[1]))
	}
	if got[1][4] != Placeholder {
		t.Errorf("shortfall should be padded with a placeholder, got %v", got[1][4])
	}

	// Column 0 holds even indices, column 1 odd ones.
	for i, o := range nineOptions {
		if got[i%2][i/2] != o {
			t.Errorf("option %d expected at column %d row %d", i, i%2, i/2)
		}
	}
}

func TestSplitIntoColumns_Rectangular(t *testing.T) {
	for n := 0; n <= len(nineOptions); n++ {
		for columns := 1; columns <= 11; columns++ {
			got := SplitIntoColumns(nineOptions[:n], columns)
			if len(got) != columns {
				t.Fatalf("n=%d columns=%d: got %d columns", n, columns, len(got))
			}
			rows := RowCount(n, columns)
			count := 0
			for _, col := range got {
				if len(col) != rows {
					t.Fatalf("n=%d columns=%d: column length %d, want %d", n, columns, len(col), rows)
				}
				for _, o := range col {
					if !o.IsPlaceholder() {
						count++
					}
				}
			}
			if count != n {
				t.Errorf("n=%d columns=%d: %d real items, want %d", n, columns, count, n)
			}
		}
	}
}

func TestSplitIntoColumns_DoesNotMutateInput(t *testing.T) {
	options := append([]Option(nil), nineOptions[:3]...)
	_ = SplitIntoColumns(options, 2)
	if diff := cmp.Diff(nineOptions[:3], options); diff != "" {
		t.Errorf("input mutated (-want +got):\n%s", diff)
	}
}

func TestRowCount(t *testing.T) {
	tests := []struct {
		n, columns, want int
	}{
		{0, 3, 0},
		{1, 3, 1},
		{9, 2, 5},
		{9, 3, 3},
		{10, 3, 4},
		{5, 0, 5},
	}
	for _, tt := range tests {
		if got := RowCount(tt.n, tt.columns); got != tt.want {
			t.Errorf("RowCount(%d, %d) = %d, want %d", tt.n, tt.columns, got, tt.want)
		}
	}
}
