// Package event defines the events multicheck publishes and a synchronous
// bus to deliver them. The checkbox group reports changes through a plain
// callback; the command layer turns those callbacks into events so several
// consumers can observe them independently.
package event

import (
	"time"

	"github.com/Iron-Ham/multicheck/internal/multicheck"
)

// Event is the interface that all events must implement.
type Event interface {
	// EventType returns a string identifier for this event type.
	// Convention: "category.action" (e.g., "selection.changed").
	EventType() string

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// Event type identifiers.
const (
	TypeSelectionChanged   = "selection.changed"
	TypeSelectionConfirmed = "selection.confirmed"
	TypeBaselineReloaded   = "baseline.reloaded"
	TypeBaselineFailed     = "baseline.failed"
)

type baseEvent struct {
	eventType string
	timestamp time.Time
}

func (e baseEvent) EventType() string    { return e.eventType }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }

func newBaseEvent(eventType string) baseEvent {
	return baseEvent{
		eventType: eventType,
		timestamp: time.Now(),
	}
}

// SelectionChangedEvent is published for every notification the checkbox
// group emits, including baseline resets.
type SelectionChangedEvent struct {
	baseEvent
	Reason   multicheck.Reason
	Selected []multicheck.Option
}

// NewSelectionChangedEvent creates a SelectionChangedEvent.
func NewSelectionChangedEvent(change multicheck.Change) SelectionChangedEvent {
	return SelectionChangedEvent{
		baseEvent: newBaseEvent(TypeSelectionChanged),
		Reason:    change.Reason,
		Selected:  change.Selected,
	}
}

// SelectionConfirmedEvent is published when the user accepts the selection.
type SelectionConfirmedEvent struct {
	baseEvent
	Selected []multicheck.Option
}

// NewSelectionConfirmedEvent creates a SelectionConfirmedEvent.
func NewSelectionConfirmedEvent(selected []multicheck.Option) SelectionConfirmedEvent {
	return SelectionConfirmedEvent{
		baseEvent: newBaseEvent(TypeSelectionConfirmed),
		Selected:  selected,
	}
}

// BaselineReloadedEvent is published when a watched values file yields a new baseline.
type BaselineReloadedEvent struct {
	baseEvent
	Path   string
	Values []string
}

// NewBaselineReloadedEvent creates a BaselineReloadedEvent.
func NewBaselineReloadedEvent(path string, values []string) BaselineReloadedEvent {
	return BaselineReloadedEvent{
		baseEvent: newBaseEvent(TypeBaselineReloaded),
		Path:      path,
		Values:    values,
	}
}

// BaselineFailedEvent is published when a watched values file cannot be used.
type BaselineFailedEvent struct {
	baseEvent
	Path string
	Err  error
}

// NewBaselineFailedEvent creates a BaselineFailedEvent.
func NewBaselineFailedEvent(path string, err error) BaselineFailedEvent {
	return BaselineFailedEvent{
		baseEvent: newBaseEvent(TypeBaselineFailed),
		Path:      path,
		Err:       err,
	}
}
