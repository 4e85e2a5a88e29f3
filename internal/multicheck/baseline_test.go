package multicheck

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBaselineTracker_Sync(t *testing.T) {
	tests := []struct {
		name    string
		initial []string
		next    []string
		want    bool
	}{
		{"absent to absent", nil, nil, false},
		{"absent to empty", nil, []string{}, true},
		{"empty to absent", []string{}, nil, true},
		{"empty to empty", []string{}, []string{}, false},
		{"same contents", []string{"111", "222"}, []string{"111", "222"}, false},
		{"different contents", []string{"111"}, []string{"222"}, true},
		{"reordered", []string{"111", "222"}, []string{"222", "111"}, true},
		{"present to absent", []string{"111"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			c := New(nineOptions, tt.initial, WithOnChange(rec.onChange))
			tracker := NewBaselineTracker(c, tt.initial)

			if got := tracker.Sync(tt.next); got != tt.want {
				t.Errorf("Sync() = %v, want %v", got, tt.want)
			}

			wantCalls := 1
			if tt.want {
				wantCalls = 2
			}
			if len(rec.calls) != wantCalls {
				t.Errorf("expected %d notifications, got %d", wantCalls, len(rec.calls))
			}
			wantPresent := tt.initial != nil
			if tt.want {
				wantPresent = tt.next != nil
			}
			if tracker.Present() != wantPresent {
				t.Errorf("Present() = %v, want %v", tracker.Present(), wantPresent)
			}
		})
	}
}

func TestBaselineTracker_ResetDiscardsEdits(t *testing.T) {
	c := New(nineOptions, []string{"111"})
	tracker := NewBaselineTracker(c, []string{"111"})

	c.Toggle("222")

	// Same baseline again: no reset, edits survive.
	if tracker.Sync([]string{"111"}) {
		t.Fatal("unchanged baseline should not reset")
	}
	if !c.IsSelected("222") {
		t.Error("user edit should survive an unchanged baseline")
	}

	if !tracker.Sync([]string{"333"}) {
		t.Fatal("new baseline should reset")
	}
	want := []Option{nineOptions[2]}
	if diff := cmp.Diff(want, c.Selected()); diff != "" {
		t.Errorf("selection after reset (-want +got):\n%s", diff)
	}
}

func TestBaselineTracker_CopiesInput(t *testing.T) {
	baseline := []string{"111"}
	c := New(nineOptions, baseline)
	tracker := NewBaselineTracker(c, baseline)

	baseline[0] = "222"

	if !tracker.Changed([]string{"222"}) {
		t.Error("tracker should not alias the caller's slice")
	}
}

func TestBaselineTracker_Reset(t *testing.T) {
	t.Run("restores the last baseline", func(t *testing.T) {
		c := New(nineOptions, []string{"111"})
		tracker := NewBaselineTracker(c, []string{"111"})
		c.Toggle("111")
		c.Toggle("555")

		if !tracker.Reset() {
			t.Fatal("Reset() = false with a baseline present")
		}
		if diff := cmp.Diff([]Option{nineOptions[0]}, c.Selected()); diff != "" {
			t.Errorf("selection after Reset (-want +got):\n%s", diff)
		}
	})

	t.Run("empty baseline clears", func(t *testing.T) {
		c := New(nineOptions, []string{})
		tracker := NewBaselineTracker(c, []string{})
		c.SetAll(true)

		if !tracker.Reset() {
			t.Fatal("Reset() = false with an empty baseline present")
		}
		if got := c.Selected(); len(got) != 0 {
			t.Errorf("Selected() = %v, want empty", got)
		}
	})

	t.Run("uncontrolled is a no-op", func(t *testing.T) {
		c := New(nineOptions, nil)
		tracker := NewBaselineTracker(c, nil)
		c.Toggle("222")

		if tracker.Reset() {
			t.Error("Reset() = true without a baseline")
		}
		if !c.IsSelected("222") {
			t.Error("Reset without a baseline should keep edits")
		}
	})
}
