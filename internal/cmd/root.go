package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/multicheck/internal/config"
	"github.com/Iron-Ham/multicheck/internal/errors"
	"github.com/Iron-Ham/multicheck/internal/multicheck"
)

// flagBindings maps scalar flags onto their configuration keys.
var flagBindings = map[string]string{
	"label":        "multicheck.label",
	"columns":      "multicheck.columns",
	"values-file":  "multicheck.values_file",
	"watch":        "multicheck.watch_values_file",
	"theme":        "tui.theme",
	"show-help":    "tui.show_help",
	"alt-screen":   "tui.alt_screen",
	"column-gap":   "tui.column_gap",
	"format":       "output.format",
	"emit-changes": "output.emit_changes",
	"log":          "logging.enabled",
	"log-level":    "logging.level",
	"log-dir":      "logging.dir",
}

// NewRootCmd builds the multicheck command tree. Each call returns a fresh
// tree, so flag values never carry over between executions.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "multicheck",
		Short: "Pick any number of options from a checkbox group",
		Long: `multicheck shows a group of checkboxes laid out in columns, with a
Select All control, and prints the options you confirm.

Options come from the config file or from repeated --option flags. The
initial selection comes from --value, --values-file, or multicheck.values;
without one the group starts empty and is left entirely to you.`,
		Example: `  multicheck --option Apples=apples --option Pears=pears --columns 2
  multicheck --values-file picked.yaml --watch --format text
  multicheck select --option a=1 --option b=2 --toggle 1 --select-all`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: initConfig,
		RunE:              runInteractive,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is $HOME/.config/multicheck/config.yaml)")
	flags.StringP("label", "l", "", "header rendered above the group")
	flags.StringArrayP("option", "o", nil, "option as label=value, repeatable (replaces configured options)")
	flags.String("columns", "", "number of layout columns (default 1)")
	flags.StringArray("value", nil, "preselected value, repeatable; --value '' preselects nothing")
	flags.String("values-file", "", "YAML or JSON file listing the preselected values")
	flags.Bool("watch", false, "re-apply --values-file whenever it changes")
	flags.String("theme", "default", "color theme: "+strings.Join(config.ValidThemes(), ", "))
	flags.Bool("show-help", true, "show the key binding help bar")
	flags.Bool("alt-screen", false, "run in the alternate screen buffer")
	flags.Int("column-gap", 2, "blank cells between columns")
	flags.StringP("format", "f", "json", "selection output format: "+strings.Join(config.ValidOutputFormats(), ", "))
	flags.Bool("emit-changes", false, "print every change as a JSON line on stderr")
	flags.Bool("log", false, "enable structured logging")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("log-dir", "", "directory for multicheck.log (default stderr, off while the picker runs)")

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newLayoutCmd())
	rootCmd.AddCommand(newSelectCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLogsCmd())

	return rootCmd
}

// Execute runs the root command. Errors other than a cancelled selection are
// reported on stderr.
func Execute() error {
	err := NewRootCmd().Execute()
	if err != nil && !errors.Is(err, errors.ErrCancelled) {
		reportError(os.Stderr, err)
	}
	return err
}

// reportError prints err prefixed by its severity. Errors that were not
// built for the user, such as flag parsing failures, get a usage hint.
func reportError(w io.Writer, err error) {
	prefix := "Error:"
	if errors.GetSeverity(err) <= errors.SeverityWarning {
		prefix = "Warning:"
	}
	fmt.Fprintln(w, prefix, err)
	if !errors.IsUserFacing(err) {
		fmt.Fprintln(w, "Run 'multicheck --help' for usage.")
	}
}

func initConfig(cmd *cobra.Command, _ []string) error {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	flags := cmd.Flags()
	cfgFile, _ := flags.GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("MULTICHECK")
	// Replace dots with underscores for nested keys in env vars
	// e.g., MULTICHECK_OUTPUT_FORMAT for output.format
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// A missing default config file is fine; an explicit or broken one is not
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return errors.NewConfigError("failed to read config file", err).WithFile(viper.ConfigFileUsed())
		}
	}

	for name, key := range flagBindings {
		if f := flags.Lookup(name); f != nil {
			if err := viper.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}
	return applyListFlags(flags)
}

// applyListFlags overrides the options and values lists when their flags
// were given. Lists are set directly instead of bound so that an explicitly
// empty --value still yields a present, empty baseline.
func applyListFlags(flags *pflag.FlagSet) error {
	if flags.Changed("option") {
		raws, err := flags.GetStringArray("option")
		if err != nil {
			return err
		}
		options := make([]map[string]any, 0, len(raws))
		for _, raw := range raws {
			opt, err := multicheck.ParseOption(raw)
			if err != nil {
				return errors.NewValidationError(err.Error()).WithField("--option").WithValue(raw)
			}
			options = append(options, map[string]any{"label": opt.Label, "value": opt.Value})
		}
		viper.Set("multicheck.options", options)
	}

	if flags.Changed("value") {
		raw, err := flags.GetStringArray("value")
		if err != nil {
			return err
		}
		values := make([]string, 0, len(raw))
		for _, v := range raw {
			if v = strings.TrimSpace(v); v != "" {
				values = append(values, v)
			}
		}
		viper.Set("multicheck.values", values)
	}
	return nil
}
