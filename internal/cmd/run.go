package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Iron-Ham/multicheck/internal/errors"
	"github.com/Iron-Ham/multicheck/internal/event"
	"github.com/Iron-Ham/multicheck/internal/tui"
	"github.com/Iron-Ham/multicheck/internal/tui/styles"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Pick options interactively (default command)",
		Long: `Open the checkbox group in the terminal.

Move with the arrow keys or h/j/k/l, toggle with space, press a to select or
clear everything, r to restore the preselected values, and enter to confirm.
The confirmed options are printed to stdout; the picker itself draws on
stderr so the result can be piped. Cancelling exits with status 1.`,
		Args: cobra.NoArgs,
		RunE: runInteractive,
	}
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd, true)
	if err != nil {
		return err
	}
	defer s.close()

	cfg := s.cfg
	var changes changeRecorder
	if cfg.Output.EmitChanges {
		s.bus.Subscribe(event.TypeSelectionChanged, changes.record)
	}

	model := tui.NewModel(tui.ModelConfig{
		Label:     cfg.MultiCheck.Label,
		Options:   cfg.MultiCheck.Options,
		Columns:   cfg.MultiCheck.ColumnCount(),
		Baseline:  s.baseline,
		Theme:     styles.ThemeName(cfg.TUI.Theme),
		ShowHelp:  cfg.TUI.ShowHelp,
		ColumnGap: cfg.TUI.ColumnGap,
		Observer:  s.publishChange,
		Logger:    s.logger,
	})

	opts := []tui.AppOption{
		tui.WithIO(cmd.InOrStdin(), cmd.ErrOrStderr()),
		tui.WithAltScreen(cfg.TUI.AltScreen),
		tui.WithEventBus(s.bus),
		tui.WithAppLogger(s.logger),
	}
	if cfg.MultiCheck.WatchValuesFile {
		opts = append(opts, tui.WithBaselineFile(cfg.MultiCheck.ValuesFile))
	}

	final, err := tui.New(model, opts...).Run(cmd.Context())
	if err != nil {
		return errors.Wrap(err, "checkbox group")
	}

	if cfg.Output.EmitChanges {
		if err := changes.writeTo(cmd.ErrOrStderr()); err != nil {
			return err
		}
	}

	if !final.Confirmed() {
		return errors.ErrCancelled
	}

	selected := final.Selected()
	s.bus.Publish(event.NewSelectionConfirmedEvent(selected))
	return writeSelection(cmd.OutOrStdout(), cfg.Output.Format, selected)
}
