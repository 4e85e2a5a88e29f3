package config

import (
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/Iron-Ham/multicheck/internal/baseline"
	"github.com/Iron-Ham/multicheck/internal/errors"
	"github.com/Iron-Ham/multicheck/internal/logging"
	"github.com/Iron-Ham/multicheck/internal/multicheck"
)

// Config represents the complete multicheck configuration
type Config struct {
	MultiCheck MultiCheckConfig `mapstructure:"multicheck" yaml:"multicheck"`
	TUI        TUIConfig        `mapstructure:"tui" yaml:"tui"`
	Output     OutputConfig     `mapstructure:"output" yaml:"output"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging"`
}

// MultiCheckConfig describes the checkbox group itself
type MultiCheckConfig struct {
	// Label is the optional header rendered above the group
	Label string `mapstructure:"label" yaml:"label"`
	// Options are the selectable items in display order
	Options []multicheck.Option `mapstructure:"options" yaml:"options"`
	// Columns is the number of layout columns. Any value is accepted and
	// normalized by ParseColumns (default: 1)
	Columns any `mapstructure:"columns" yaml:"columns"`
	// Values is an inline baseline. Leaving it unset keeps the group
	// uncontrolled; an empty list is a baseline that selects nothing
	Values []string `mapstructure:"values" yaml:"values"`
	// ValuesFile reads the baseline from a YAML/JSON file instead of Values
	ValuesFile string `mapstructure:"values_file" yaml:"values_file"`
	// WatchValuesFile re-applies the baseline whenever ValuesFile changes
	WatchValuesFile bool `mapstructure:"watch_values_file" yaml:"watch_values_file"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// Theme is the color theme for the TUI (default: "default")
	// Options: "default", "monokai", "dracula", "nord"
	Theme string `mapstructure:"theme" yaml:"theme"`
	// ShowHelp renders the key binding help bar (default: true)
	ShowHelp bool `mapstructure:"show_help" yaml:"show_help"`
	// AltScreen runs the TUI in the alternate screen buffer (default: false)
	AltScreen bool `mapstructure:"alt_screen" yaml:"alt_screen"`
	// ColumnGap is the number of blank cells between columns (default: 2)
	ColumnGap int `mapstructure:"column_gap" yaml:"column_gap"`
}

// OutputConfig controls how results are printed
type OutputConfig struct {
	// Format is the selection output format: "json", "yaml", or "text" (default: "json")
	Format string `mapstructure:"format" yaml:"format"`
	// EmitChanges prints every change notification as a JSON line on stderr
	EmitChanges bool `mapstructure:"emit_changes" yaml:"emit_changes"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether logging is enabled (default: false)
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level" yaml:"level"`
	// Dir is the directory for multicheck.log. Empty logs to stderr
	Dir string `mapstructure:"dir" yaml:"dir"`
	// MaxSizeMB rotates multicheck.log once it reaches this size; 0 never rotates (default: 10)
	MaxSizeMB int `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	// MaxBackups is the number of rotated files kept (default: 3)
	MaxBackups int `mapstructure:"max_backups" yaml:"max_backups"`
	// Compress gzips rotated files (default: false)
	Compress bool `mapstructure:"compress" yaml:"compress"`
}

// Rotation returns the log file rotation policy.
func (c LoggingConfig) Rotation() logging.RotationConfig {
	return logging.RotationConfig{
		MaxSizeMB:  c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
		Compress:   c.Compress,
	}
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		MultiCheck: MultiCheckConfig{
			Label:           "",
			Options:         []multicheck.Option{},
			Columns:         1,
			Values:          nil, // Uncontrolled
			ValuesFile:      "",
			WatchValuesFile: false,
		},
		TUI: TUIConfig{
			Theme:     "default",
			ShowHelp:  true,
			AltScreen: false,
			ColumnGap: 2,
		},
		Output: OutputConfig{
			Format:      "json",
			EmitChanges: false,
		},
		Logging: LoggingConfig{
			Enabled:    false,
			Level:      "info",
			Dir:        "",
			MaxSizeMB:  logging.DefaultRotationConfig().MaxSizeMB,
			MaxBackups: logging.DefaultRotationConfig().MaxBackups,
			Compress:   false,
		},
	}
}

// SetDefaults registers default values with viper.
// multicheck.values is deliberately left unregistered so that an unset key
// stays distinguishable from an empty list.
func SetDefaults() {
	defaults := Default()

	// MultiCheck defaults
	viper.SetDefault("multicheck.label", defaults.MultiCheck.Label)
	viper.SetDefault("multicheck.options", defaults.MultiCheck.Options)
	viper.SetDefault("multicheck.columns", defaults.MultiCheck.Columns)
	viper.SetDefault("multicheck.values_file", defaults.MultiCheck.ValuesFile)
	viper.SetDefault("multicheck.watch_values_file", defaults.MultiCheck.WatchValuesFile)

	// TUI defaults
	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.show_help", defaults.TUI.ShowHelp)
	viper.SetDefault("tui.alt_screen", defaults.TUI.AltScreen)
	viper.SetDefault("tui.column_gap", defaults.TUI.ColumnGap)

	// Output defaults
	viper.SetDefault("output.format", defaults.Output.Format)
	viper.SetDefault("output.emit_changes", defaults.Output.EmitChanges)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	viper.SetDefault("logging.compress", defaults.Logging.Compress)
}

// Current reads the effective configuration from viper without validating it
func Current() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.NewConfigError("failed to decode configuration", err).WithFile(viper.ConfigFileUsed())
	}

	// An explicitly configured empty list must stay non-nil
	if viper.IsSet("multicheck.values") && cfg.MultiCheck.Values == nil {
		cfg.MultiCheck.Values = []string{}
	}
	return &cfg, nil
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	cfg, err := Current()
	if err != nil {
		return nil, err
	}

	// Validate the configuration
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, errors.NewConfigError("invalid configuration", ValidationErrors(errs)).WithFile(viper.ConfigFileUsed())
	}

	return cfg, nil
}

// ColumnCount returns the normalized layout column count.
func (c *MultiCheckConfig) ColumnCount() int {
	return ParseColumns(c.Columns)
}

// ResolveBaseline returns the baseline to construct the group with.
// ValuesFile wins over Values. A nil result means no baseline was supplied.
func (c *MultiCheckConfig) ResolveBaseline() ([]string, error) {
	if c.ValuesFile != "" {
		values, err := baseline.Load(c.ValuesFile)
		if err != nil {
			return nil, errors.NewConfigError("cannot load preselected values", err).WithKey("multicheck.values_file")
		}
		return values, nil
	}
	return c.Values, nil
}

// MaxColumns caps the column count. Every column is allocated and padded.
const MaxColumns = 256

// ParseColumns converts a loosely typed column setting (from YAML, env, or
// flags) to a usable count. Anything that is not a positive finite number
// becomes 1; fractional values are truncated and counts above MaxColumns
// become MaxColumns.
func ParseColumns(v any) int {
	var n float64
	switch c := v.(type) {
	case nil:
		return 1
	case int:
		n = float64(c)
	case int8:
		n = float64(c)
	case int16:
		n = float64(c)
	case int32:
		n = float64(c)
	case int64:
		n = float64(c)
	case uint:
		n = float64(c)
	case uint8:
		n = float64(c)
	case uint16:
		n = float64(c)
	case uint32:
		n = float64(c)
	case uint64:
		n = float64(c)
	case float32:
		n = float64(c)
	case float64:
		n = c
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(c), 64)
		if err != nil {
			return 1
		}
		n = f
	default:
		return 1
	}

	if math.IsNaN(n) || math.IsInf(n, 0) || n < 1 {
		return 1
	}
	if n > MaxColumns {
		return MaxColumns
	}
	return multicheck.NormalizeColumns(int(n))
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "multicheck")
	}
	// Fall back to ~/.config/multicheck
	home, err := os.UserHomeDir()
	if err != nil {
		return ".multicheck"
	}
	return filepath.Join(home, ".config", "multicheck")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// ValidThemes returns the list of valid theme names
func ValidThemes() []string {
	return []string{"default", "monokai", "dracula", "nord"}
}

// ValidOutputFormats returns the list of valid selection output formats
func ValidOutputFormats() []string {
	return []string{"json", "yaml", "text"}
}
