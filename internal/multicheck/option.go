package multicheck

import (
	"fmt"
	"strings"
)

// SelectAllLabel is the label of the aggregate control rendered ahead of the options.
const SelectAllLabel = "Select All"

// Option is one selectable item. Value is its identity key; Label is its
// display text and also the key the rendering layer associates a checkbox with.
type Option struct {
	Label string `json:"label" yaml:"label" mapstructure:"label"`
	Value string `json:"value" yaml:"value" mapstructure:"value"`
}

// Placeholder is the blank entry used to pad layout columns.
var Placeholder = Option{}

// IsPlaceholder reports whether the option must not produce a checkbox.
// Padding entries are blank in both fields, but any option missing either
// field is suppressed the same way.
func (o Option) IsPlaceholder() bool {
	return o.Label == "" || o.Value == ""
}

// String renders the option as "label=value".
func (o Option) String() string {
	return o.Label + "=" + o.Value
}

// ParseOption parses the "label=value" form used on the command line.
// An argument without "=" uses the same text for both fields.
func ParseOption(raw string) (Option, error) {
	label, value, found := strings.Cut(raw, "=")
	label = strings.TrimSpace(label)
	value = strings.TrimSpace(value)
	if !found {
		value = label
	}
	if label == "" || value == "" {
		return Option{}, fmt.Errorf("option %q must have the form label=value", raw)
	}
	return Option{Label: label, Value: value}, nil
}

// Values returns the identity keys of options in order.
func Values(options []Option) []string {
	values := make([]string, len(options))
	for i, o := range options {
		values[i] = o.Value
	}
	return values
}

// Dedupe drops every option whose value or label was already seen, keeping
// the first occurrence. It returns the kept options and the dropped ones.
func Dedupe(options []Option) (kept, dropped []Option) {
	seenValues := make(map[string]bool, len(options))
	seenLabels := make(map[string]bool, len(options))
	kept = make([]Option, 0, len(options))

	for _, o := range options {
		if seenValues[o.Value] || seenLabels[o.Label] {
			dropped = append(dropped, o)
			continue
		}
		seenValues[o.Value] = true
		seenLabels[o.Label] = true
		kept = append(kept, o)
	}
	return kept, dropped
}
