package cmd

import (
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/multicheck/internal/event"
	"github.com/Iron-Ham/multicheck/internal/multicheck"
)

type selectAction int

const (
	actionToggle selectAction = iota
	actionSelectAll
	actionClear
)

type selectStep struct {
	action selectAction
	value  string
}

// toggleFlag appends a toggle step each time --toggle is given.
type toggleFlag struct{ steps *[]selectStep }

func (f toggleFlag) String() string { return "" }
func (f toggleFlag) Type() string   { return "value" }
func (f toggleFlag) Set(v string) error {
	*f.steps = append(*f.steps, selectStep{action: actionToggle, value: v})
	return nil
}

// actionFlag is a boolean flag that appends its action when set to true.
type actionFlag struct {
	steps  *[]selectStep
	action selectAction
}

func (f actionFlag) String() string   { return "false" }
func (f actionFlag) Type() string     { return "bool" }
func (f actionFlag) IsBoolFlag() bool { return true }
func (f actionFlag) Set(v string) error {
	on, err := strconv.ParseBool(v)
	if err != nil {
		return err
	}
	if on {
		*f.steps = append(*f.steps, selectStep{action: f.action})
	}
	return nil
}

func newSelectCmd() *cobra.Command {
	var steps []selectStep

	selectCmd := &cobra.Command{
		Use:   "select",
		Short: "Apply scripted toggles and print the result",
		Long: `Build the checkbox group, apply --toggle, --select-all, and --clear in the
order given, and print every change notification as a JSON line followed by
the final selection in the configured output format.

The first line is always the initial notification the group emits when it
is created.`,
		Example: `  multicheck select -o aaa=1 -o bbb=2 -o ccc=3 --toggle 1 --select-all --toggle 2`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSelect(cmd, steps)
		},
	}

	flags := selectCmd.Flags()
	flags.Var(toggleFlag{steps: &steps}, "toggle", "toggle the option with this value (repeatable)")
	flags.VarPF(actionFlag{steps: &steps, action: actionSelectAll}, "select-all", "", "check every option").NoOptDefVal = "true"
	flags.VarPF(actionFlag{steps: &steps, action: actionClear}, "clear", "", "uncheck every option").NoOptDefVal = "true"
	return selectCmd
}

func runSelect(cmd *cobra.Command, steps []selectStep) error {
	s, err := openSession(cmd, false)
	if err != nil {
		return err
	}
	defer s.close()

	out := cmd.OutOrStdout()
	var (
		writeErr error
		streamID string
	)
	// The first failed write ends the stream; the remaining steps still run.
	streamID = s.bus.Subscribe(event.TypeSelectionChanged, func(e event.Event) {
		ce, ok := e.(event.SelectionChangedEvent)
		if !ok {
			return
		}
		if err := writeChangeLine(out, ce); err != nil {
			writeErr = err
			s.bus.Unsubscribe(streamID)
			s.logger.Warn("change stream closed", "error", err.Error())
		}
	})

	c := s.newController()
	known := multicheck.Values(c.Options())
	for _, step := range steps {
		switch step.action {
		case actionToggle:
			if !slices.Contains(known, step.value) {
				s.logger.Warn("toggling a value that matches no option", "value", step.value)
			}
			c.Toggle(step.value)
		case actionSelectAll:
			c.SetAll(true)
		case actionClear:
			c.SetAll(false)
		}
	}
	if writeErr != nil {
		return writeErr
	}

	selected := c.Selected()
	s.bus.Publish(event.NewSelectionConfirmedEvent(selected))
	return writeSelection(out, s.cfg.Output.Format, selected)
}
