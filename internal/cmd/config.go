package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Iron-Ham/multicheck/internal/config"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "View multicheck configuration",
		Long: `View multicheck configuration.

Without arguments, displays the effective configuration: defaults, the
config file, MULTICHECK_* environment variables, and flags merged together.`,
		Args: cobra.NoArgs,
		RunE: runConfigShow,
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	})
	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show the config file path",
		Args:  cobra.NoArgs,
		RunE:  runConfigPath,
	})
	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create a commented config file",
		Long:  `Create a config file at ~/.config/multicheck/config.yaml with every available setting.`,
		Args:  cobra.NoArgs,
		RunE:  runConfigInit,
	})
	return configCmd
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Current()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	// Show where config is being read from
	if used := viper.ConfigFileUsed(); used != "" {
		fmt.Fprintf(out, "# config file: %s\n", used)
	} else {
		fmt.Fprintln(out, "# config file: (none - using defaults)")
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), config.ConfigFile())
	return err
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	configDir := config.ConfigDir()
	configFile := config.ConfigFile()

	// Check if config file already exists
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s", configFile)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(configFile, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created config file at %s\n", configFile)
	return nil
}

const configTemplate = `# multicheck configuration

multicheck:
  # Header rendered above the group
  label: ""

  # Selectable items in display order. Values and labels must be unique.
  options:
    - label: Apples
      value: apples
    - label: Pears
      value: pears
    - label: Plums
      value: plums

  # Number of layout columns. Anything below 1 means 1.
  columns: 1

  # Preselected values. Leave unset for a group that starts empty and is
  # never reset; an empty list is a baseline that selects nothing.
  # values: [apples]

  # Or read the preselected values from a YAML/JSON file, and optionally
  # re-apply them whenever the file changes
  values_file: ""
  watch_values_file: false

tui:
  # Options: default, monokai, dracula, nord
  theme: default
  show_help: true
  alt_screen: false
  column_gap: 2

output:
  # Options: json, yaml, text
  format: json
  # Print every change as a JSON line on stderr after the picker exits
  emit_changes: false

logging:
  enabled: false
  # Options: debug, info, warn, error
  level: info
  # Directory for multicheck.log; empty logs to stderr, except while the
  # interactive picker runs
  dir: ""
  # Rotate multicheck.log at this size (0 never rotates), keeping this many
  # older files, optionally gzipped
  max_size_mb: 10
  max_backups: 3
  compress: false
`
