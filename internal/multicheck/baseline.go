package multicheck

import "slices"

// BaselineTracker remembers the last baseline handed to a Controller and
// re-applies only when a newly supplied one differs from it.
//
// Presence matters: going from no baseline to an empty one, or back, counts
// as a change even though both select nothing.
type BaselineTracker struct {
	controller *Controller
	last       []string
	present    bool
}

// NewBaselineTracker records baseline as already applied to c. Pass the same
// baseline that c was constructed with.
func NewBaselineTracker(c *Controller, baseline []string) *BaselineTracker {
	return &BaselineTracker{
		controller: c,
		last:       slices.Clone(baseline),
		present:    baseline != nil,
	}
}

// Sync applies next to the controller when it differs from the last applied
// baseline, comparing presence and then contents in order. It reports
// whether the controller was reset.
func (t *BaselineTracker) Sync(next []string) bool {
	if !t.Changed(next) {
		return false
	}
	t.last = slices.Clone(next)
	t.present = next != nil
	t.controller.ApplyBaseline(next)
	return true
}

// Changed reports whether next differs from the last applied baseline.
func (t *BaselineTracker) Changed(next []string) bool {
	if (next != nil) != t.present {
		return true
	}
	return !slices.Equal(next, t.last)
}

// Present reports whether the last applied baseline was supplied at all.
func (t *BaselineTracker) Present() bool {
	return t.present
}

// Reset re-applies the last baseline, discarding edits made since. It is a
// no-op when no baseline was ever supplied and reports whether it applied.
func (t *BaselineTracker) Reset() bool {
	if !t.present {
		return false
	}
	t.controller.ApplyBaseline(slices.Clone(t.last))
	return true
}
