package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Iron-Ham/multicheck/internal/errors"
	"github.com/Iron-Ham/multicheck/internal/logging"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "multicheck.options[2].value")
	Value   any    // The invalid value
	Message string // Human-readable error description
	Err     error  // Sentinel the failure matches, if any
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// Unwrap returns the sentinel, falling back to errors.ErrInvalidInput.
func (e ValidationError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return errors.ErrInvalidInput
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Unwrap exposes every failure to errors.Is and errors.As.
func (e ValidationErrors) Unwrap() []error {
	errs := make([]error, len(e))
	for i, v := range e {
		errs[i] = v
	}
	return errs
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError

	// Validate MultiCheck config
	errs = append(errs, c.validateMultiCheck()...)

	// Validate TUI config
	errs = append(errs, c.validateTUI()...)

	// Validate Output config
	errs = append(errs, c.validateOutput()...)

	// Validate Logging config
	errs = append(errs, c.validateLogging()...)

	return errs
}

// validateMultiCheck validates the MultiCheckConfig. Columns are not checked
// because every value normalizes to a usable count.
func (c *Config) validateMultiCheck() []ValidationError {
	var errs []ValidationError

	if len(c.MultiCheck.Options) == 0 {
		errs = append(errs, ValidationError{
			Field:   "multicheck.options",
			Value:   0,
			Message: "at least one option is required",
			Err:     errors.ErrNoOptions,
		})
		return errs
	}

	seenValues := make(map[string]int, len(c.MultiCheck.Options))
	seenLabels := make(map[string]int, len(c.MultiCheck.Options))
	for i, opt := range c.MultiCheck.Options {
		field := fmt.Sprintf("multicheck.options[%d]", i)

		if strings.TrimSpace(opt.Label) == "" {
			errs = append(errs, ValidationError{
				Field:   field + ".label",
				Value:   opt.Label,
				Message: "must not be empty",
				Err:     errors.ErrInvalidOption,
			})
		}
		if strings.TrimSpace(opt.Value) == "" {
			errs = append(errs, ValidationError{
				Field:   field + ".value",
				Value:   opt.Value,
				Message: "must not be empty",
				Err:     errors.ErrInvalidOption,
			})
		}

		if first, ok := seenValues[opt.Value]; ok && opt.Value != "" {
			errs = append(errs, ValidationError{
				Field:   field + ".value",
				Value:   opt.Value,
				Message: fmt.Sprintf("duplicates multicheck.options[%d].value", first),
				Err:     errors.ErrDuplicateOption,
			})
		} else {
			seenValues[opt.Value] = i
		}
		if first, ok := seenLabels[opt.Label]; ok && opt.Label != "" {
			errs = append(errs, ValidationError{
				Field:   field + ".label",
				Value:   opt.Label,
				Message: fmt.Sprintf("duplicates multicheck.options[%d].label", first),
				Err:     errors.ErrDuplicateOption,
			})
		} else {
			seenLabels[opt.Label] = i
		}
	}

	if c.MultiCheck.WatchValuesFile && c.MultiCheck.ValuesFile == "" {
		errs = append(errs, ValidationError{
			Field:   "multicheck.watch_values_file",
			Value:   true,
			Message: "requires multicheck.values_file",
		})
	}

	return errs
}

// validateTUI validates the TUIConfig
func (c *Config) validateTUI() []ValidationError {
	var errs []ValidationError

	if c.TUI.Theme != "" && !slices.Contains(ValidThemes(), c.TUI.Theme) {
		errs = append(errs, ValidationError{
			Field:   "tui.theme",
			Value:   c.TUI.Theme,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidThemes(), ", ")),
		})
	}

	if c.TUI.ColumnGap < 0 {
		errs = append(errs, ValidationError{
			Field:   "tui.column_gap",
			Value:   c.TUI.ColumnGap,
			Message: "must be non-negative",
		})
	}

	// Reasonable upper bound so a typo does not push columns off screen
	const maxColumnGap = 20
	if c.TUI.ColumnGap > maxColumnGap {
		errs = append(errs, ValidationError{
			Field:   "tui.column_gap",
			Value:   c.TUI.ColumnGap,
			Message: fmt.Sprintf("exceeds maximum of %d", maxColumnGap),
		})
	}

	return errs
}

// validateOutput validates the OutputConfig
func (c *Config) validateOutput() []ValidationError {
	var errs []ValidationError

	if c.Output.Format != "" && !slices.Contains(ValidOutputFormats(), c.Output.Format) {
		errs = append(errs, ValidationError{
			Field:   "output.format",
			Value:   c.Output.Format,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidOutputFormats(), ", ")),
		})
	}

	return errs
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errs []ValidationError

	level := strings.ToUpper(c.Logging.Level)
	if c.Logging.Level != "" && !slices.Contains(logging.ValidLevels(), level) {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	if c.Logging.MaxSizeMB < 0 {
		errs = append(errs, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: "must be non-negative",
		})
	}
	if c.Logging.MaxBackups < 0 {
		errs = append(errs, ValidationError{
			Field:   "logging.max_backups",
			Value:   c.Logging.MaxBackups,
			Message: "must be non-negative",
		})
	}

	return errs
}
