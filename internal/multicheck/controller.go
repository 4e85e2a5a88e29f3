package multicheck

import (
	"github.com/Iron-Ham/multicheck/internal/logging"
)

// Reason identifies which operation produced a change notification.
type Reason string

const (
	ReasonBaseline  Reason = "baseline"
	ReasonToggle    Reason = "toggle"
	ReasonSelectAll Reason = "select_all"
)

// ChangeFunc receives the selected options, in option order, after every change.
type ChangeFunc func(selected []Option)

// Change is a notification together with the operation that caused it.
type Change struct {
	Reason   Reason
	Selected []Option
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithOnChange registers the owner's change callback.
func WithOnChange(fn ChangeFunc) ControllerOption {
	return func(c *Controller) {
		c.onChange = fn
	}
}

// WithObserver registers a callback that also learns why each change happened.
// It is invoked after the OnChange callback.
func WithObserver(fn func(Change)) ControllerOption {
	return func(c *Controller) {
		c.observer = fn
	}
}

// WithLogger sets the logger used for debug traces and duplicate warnings.
func WithLogger(logger *logging.Logger) ControllerOption {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Controller owns the working selection set of one checkbox group.
type Controller struct {
	options  []Option
	selected map[string]struct{}
	onChange ChangeFunc
	observer func(Change)
	logger   *logging.Logger
}

// New creates a Controller for options and applies baseline as its first
// selection. A nil baseline starts with nothing selected. The initial
// selection is reported to the change callback like any other change.
//
// Options sharing a value or label with an earlier option are dropped.
func New(options []Option, baseline []string, opts ...ControllerOption) *Controller {
	c := &Controller{
		selected: make(map[string]struct{}),
		logger:   logging.NopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.WithComponent("multicheck")

	kept, dropped := Dedupe(options)
	for _, o := range dropped {
		c.logger.Warn("dropping duplicate option", "label", o.Label, "value", o.Value)
	}
	c.options = kept

	c.ApplyBaseline(baseline)
	return c
}

// Options returns a copy of the options the controller was built with.
func (c *Controller) Options() []Option {
	return append([]Option(nil), c.options...)
}

// ApplyBaseline replaces the working selection with baseline, discarding any
// edits since the previous baseline. It always notifies, even when the
// resulting selection is empty or unchanged.
func (c *Controller) ApplyBaseline(baseline []string) {
	c.selected = make(map[string]struct{}, len(baseline))
	for _, v := range baseline {
		c.selected[v] = struct{}{}
	}
	c.emit(ReasonBaseline)
}

// Toggle flips the membership of value. Values that match no option are
// tracked too; they simply never show up in notifications.
func (c *Controller) Toggle(value string) {
	if _, ok := c.selected[value]; ok {
		delete(c.selected, value)
	} else {
		c.selected[value] = struct{}{}
	}
	c.emit(ReasonToggle)
}

// SetAll selects every option when checked is true and clears the selection
// otherwise.
func (c *Controller) SetAll(checked bool) {
	c.selected = make(map[string]struct{}, len(c.options))
	if checked {
		for _, o := range c.options {
			c.selected[o.Value] = struct{}{}
		}
	}
	c.emit(ReasonSelectAll)
}

// AllSelected reports whether every option is selected. It is true for an
// empty option list. Selected values that match no option do not count.
func (c *Controller) AllSelected() bool {
	for _, o := range c.options {
		if _, ok := c.selected[o.Value]; !ok {
			return false
		}
	}
	return true
}

// IsSelected reports whether value is in the working selection.
func (c *Controller) IsSelected(value string) bool {
	_, ok := c.selected[value]
	return ok
}

// Selected returns the selected options in option order.
func (c *Controller) Selected() []Option {
	out := make([]Option, 0, len(c.selected))
	for _, o := range c.options {
		if _, ok := c.selected[o.Value]; ok {
			out = append(out, o)
		}
	}
	return out
}

// emit delivers the current selection to the registered callbacks. With no
// callbacks registered it only traces.
func (c *Controller) emit(reason Reason) {
	if c.onChange == nil && c.observer == nil {
		c.logger.Debug("selection changed without observer", "reason", string(reason))
		return
	}

	selected := c.Selected()
	c.logger.Debug("selection changed", "reason", string(reason), "selected", len(selected))

	if c.onChange != nil {
		c.onChange(selected)
	}
	if c.observer != nil {
		c.observer(Change{Reason: reason, Selected: append([]Option(nil), selected...)})
	}
}
