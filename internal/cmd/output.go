package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/Iron-Ham/multicheck/internal/event"
	"github.com/Iron-Ham/multicheck/internal/multicheck"
)

// writeSelection prints the confirmed options in the configured format.
// json and yaml print {label, value} records; text prints one value per line.
func writeSelection(w io.Writer, format string, selected []multicheck.Option) error {
	if selected == nil {
		selected = []multicheck.Option{}
	}

	switch format {
	case "json", "":
		return json.NewEncoder(w).Encode(selected)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(selected); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		for _, opt := range selected {
			if _, err := fmt.Fprintln(w, opt.Value); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// changeLine is one change notification in the JSON-lines stream.
type changeLine struct {
	Reason   multicheck.Reason   `json:"reason"`
	Selected []multicheck.Option `json:"selected"`
}

func writeChangeLine(w io.Writer, e event.SelectionChangedEvent) error {
	selected := e.Selected
	if selected == nil {
		selected = []multicheck.Option{}
	}
	return json.NewEncoder(w).Encode(changeLine{Reason: e.Reason, Selected: selected})
}

// changeRecorder collects change notifications while the picker owns the
// terminal, to be printed once it exits.
type changeRecorder struct {
	mu      sync.Mutex
	changes []event.SelectionChangedEvent
}

func (r *changeRecorder) record(e event.Event) {
	if ce, ok := e.(event.SelectionChangedEvent); ok {
		r.mu.Lock()
		r.changes = append(r.changes, ce)
		r.mu.Unlock()
	}
}

func (r *changeRecorder) writeTo(w io.Writer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ce := range r.changes {
		if err := writeChangeLine(w, ce); err != nil {
			return err
		}
	}
	return nil
}
