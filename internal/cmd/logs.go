package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/multicheck/internal/config"
	"github.com/Iron-Ham/multicheck/internal/logging"
)

func newLogsCmd() *cobra.Command {
	logsCmd := &cobra.Command{
		Use:   "logs",
		Short: "Show entries from the multicheck log file",
		Long: `Read multicheck.log from logging.dir, including rotated and compressed
backups, and print the entries oldest first.

Examples:
  multicheck logs --log-dir ~/.local/state/multicheck --level warn
  multicheck logs --component multicheck --since 1h --export-format csv`,
		Args: cobra.NoArgs,
		RunE: runLogs,
	}

	flags := logsCmd.Flags()
	flags.String("level", "", "minimum level to show (debug, info, warn, error)")
	flags.String("component", "", "only show entries from this component")
	flags.String("grep", "", "only show entries whose message contains this text")
	flags.Duration("since", 0, "only show entries newer than this (e.g. 30m, 2h)")
	flags.IntP("tail", "n", 0, "only show the last N matching entries")
	flags.String("export-format", "text", "output format: "+strings.Join(logging.ExportFormats(), ", "))
	return logsCmd
}

func runLogs(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Current()
	if err != nil {
		return err
	}
	if cfg.Logging.Dir == "" {
		return fmt.Errorf("logging.dir is not set; logs are only kept on disk when a directory is configured")
	}

	flags := cmd.Flags()
	level, _ := flags.GetString("level")
	component, _ := flags.GetString("component")
	grep, _ := flags.GetString("grep")
	since, _ := flags.GetDuration("since")
	tail, _ := flags.GetInt("tail")
	format, _ := flags.GetString("export-format")

	filter := logging.LogFilter{
		Level:           level,
		Component:       component,
		MessageContains: grep,
	}
	if since > 0 {
		filter.Since = time.Now().Add(-since)
	}

	entries, err := logging.AggregateLogs(cfg.Logging.Dir)
	if err != nil {
		return err
	}
	entries = logging.FilterLogs(entries, filter)
	if tail > 0 && len(entries) > tail {
		entries = entries[len(entries)-tail:]
	}

	return logging.WriteLogEntries(cmd.OutOrStdout(), entries, format)
}
