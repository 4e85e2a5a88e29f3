// Package errors provides centralized error definitions and error handling utilities
// for multicheck. It defines domain-specific errors, semantic error types, error
// constructors with context wrapping, and error classification helpers.
//
// # Error Types
//
// Domain-specific errors represent errors from specific subsystems:
//   - ConfigError: errors loading or interpreting configuration
//   - BaselineError: errors reading or watching a baseline values file
//
// Semantic errors represent common error conditions:
//   - NotFoundError: resource not found
//   - ValidationError: invalid input or state
//
// The checkbox group itself never fails; these types only appear at the
// edges of the program (configuration, files, terminal).
//
// # Usage
//
//	err := errors.NewBaselineError("cannot parse values file", errors.ErrBaselineMalformed).
//	    WithPath("values.yaml")
//
//	if errors.Is(err, errors.ErrBaselineMalformed) { ... }
//
//	var baselineErr *errors.BaselineError
//	if errors.As(err, &baselineErr) { ... }
//
//	if errors.IsUserFacing(err) { ... }
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityDebug is for errors that are useful for debugging but not critical.
	SeverityDebug Severity = iota
	// SeverityInfo is for informational errors that don't indicate a problem.
	SeverityInfo
	// SeverityWarning is for errors that might indicate a problem but aren't critical.
	SeverityWarning
	// SeverityError is for errors that indicate a real problem.
	SeverityError
	// SeverityCritical is for errors that require immediate attention.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Option-related sentinel errors
var (
	// ErrNoOptions indicates that a checkbox group was configured without options.
	ErrNoOptions = New("no options configured")
	// ErrDuplicateOption indicates two options share a value or a label.
	ErrDuplicateOption = New("duplicate option")
	// ErrInvalidOption indicates an option with an empty label or value.
	ErrInvalidOption = New("invalid option")
)

// Baseline-related sentinel errors
var (
	// ErrBaselineUnreadable indicates the values file could not be read.
	ErrBaselineUnreadable = New("baseline file unreadable")
	// ErrBaselineMalformed indicates the values file is not a list of strings.
	ErrBaselineMalformed = New("baseline file malformed")
)

// General sentinel errors
var (
	// ErrInvalidInput indicates that provided input is invalid.
	ErrInvalidInput = New("invalid input")
	// ErrNotFound indicates that a requested resource was not found.
	ErrNotFound = New("not found")
	// ErrCancelled indicates that the user dismissed the widget without confirming.
	ErrCancelled = New("selection cancelled")
)

// -----------------------------------------------------------------------------
// Base Error Interface
// -----------------------------------------------------------------------------

// MulticheckError is the base interface for all multicheck errors.
type MulticheckError interface {
	error

	// Unwrap returns the underlying error, if any.
	Unwrap() error

	// Is reports whether this error matches the target error.
	Is(target error) bool

	// Severity returns the severity level of this error.
	Severity() Severity

	// IsRetryable returns true if the operation may succeed on retry.
	IsRetryable() bool

	// IsUserFacing returns true if the error message is safe to display
	// to end users.
	IsUserFacing() bool
}

// baseError provides common functionality for all error types.
type baseError struct {
	message    string
	cause      error
	severity   Severity
	retryable  bool
	userFacing bool
}

func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *baseError) Unwrap() error {
	return e.cause
}

func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

func (e *baseError) Severity() Severity {
	return e.severity
}

func (e *baseError) IsRetryable() bool {
	return e.retryable
}

func (e *baseError) IsUserFacing() bool {
	return e.userFacing
}

// format renders "prefix [k=v, ...]: message: cause".
func (e *baseError) format(prefix string, parts []string) string {
	if len(parts) > 0 {
		prefix = fmt.Sprintf("%s [%s]", prefix, strings.Join(parts, ", "))
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// -----------------------------------------------------------------------------
// Domain-Specific Errors
// -----------------------------------------------------------------------------

// ConfigError represents errors loading or interpreting configuration.
//
// Example:
//
//	err := errors.NewConfigError("failed to read config", cause).WithFile("/etc/multicheck.yaml")
//	fmt.Println(err) // "config error [file=/etc/multicheck.yaml]: failed to read config: ..."
type ConfigError struct {
	baseError
	Key  string
	File string
}

// NewConfigError creates a new ConfigError.
func NewConfigError(message string, cause error) *ConfigError {
	return &ConfigError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityError,
			userFacing: true,
		},
	}
}

// WithKey adds the offending config key.
func (e *ConfigError) WithKey(key string) *ConfigError {
	e.Key = key
	return e
}

// WithFile adds the config file path.
func (e *ConfigError) WithFile(path string) *ConfigError {
	e.File = path
	return e
}

// Error returns the formatted error message.
func (e *ConfigError) Error() string {
	var parts []string
	if e.Key != "" {
		parts = append(parts, fmt.Sprintf("key=%s", e.Key))
	}
	if e.File != "" {
		parts = append(parts, fmt.Sprintf("file=%s", e.File))
	}
	return e.format("config error", parts)
}

// Is checks if this error matches the target.
func (e *ConfigError) Is(target error) bool {
	if _, ok := target.(*ConfigError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// BaselineError represents errors reading or watching a baseline values file.
//
// Example:
//
//	err := errors.NewBaselineError("cannot read values", errors.ErrBaselineUnreadable).WithPath("values.yaml")
type BaselineError struct {
	baseError
	Path string
}

// NewBaselineError creates a new BaselineError. File system hiccups while an
// editor rewrites the file are common, so baseline errors are retryable.
func NewBaselineError(message string, cause error) *BaselineError {
	return &BaselineError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityWarning,
			retryable:  true,
			userFacing: true,
		},
	}
}

// WithPath adds the values file path.
func (e *BaselineError) WithPath(path string) *BaselineError {
	e.Path = path
	return e
}

// WithRetryable sets whether the error is retryable.
func (e *BaselineError) WithRetryable(r bool) *BaselineError {
	e.retryable = r
	return e
}

// Error returns the formatted error message.
func (e *BaselineError) Error() string {
	var parts []string
	if e.Path != "" {
		parts = append(parts, fmt.Sprintf("path=%s", e.Path))
	}
	return e.format("baseline error", parts)
}

// Is checks if this error matches the target.
func (e *BaselineError) Is(target error) bool {
	if _, ok := target.(*BaselineError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Semantic Errors
// -----------------------------------------------------------------------------

// NotFoundError represents a resource that could not be found.
type NotFoundError struct {
	baseError
	ResourceType string
	ResourceID   string
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(resourceType, resourceID string) *NotFoundError {
	return &NotFoundError{
		baseError: baseError{
			message:    fmt.Sprintf("%s not found: %s", resourceType, resourceID),
			severity:   SeverityWarning,
			userFacing: true,
		},
		ResourceType: resourceType,
		ResourceID:   resourceID,
	}
}

// WithCause adds a cause to the error.
func (e *NotFoundError) WithCause(cause error) *NotFoundError {
	e.cause = cause
	return e
}

// Is checks if this error matches the target.
func (e *NotFoundError) Is(target error) bool {
	if _, ok := target.(*NotFoundError); ok {
		return true
	}
	if errors.Is(target, ErrNotFound) {
		return true
	}
	return e.baseError.Is(target)
}

// ValidationError represents invalid input or state.
//
// Example:
//
//	err := errors.NewValidationError("label cannot be empty")
//	err = err.WithField("multicheck.options[2].label").WithValue("")
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a new ValidationError. Invalid input stops the
// command, so it is reported as an error.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:    message,
			severity:   SeverityError,
			userFacing: true,
		},
	}
}

// WithField adds a field name to the error context.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue adds the invalid value to the error context.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// WithCause adds a cause to the error.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}
	return e.format("validation error", parts)
}

// Is checks if this error matches the target.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	if errors.Is(target, ErrInvalidInput) {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Classification Helpers
// -----------------------------------------------------------------------------

// IsRetryable returns true if the error is transient and the operation may
// succeed on retry.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var mcErr MulticheckError
	if As(err, &mcErr) {
		return mcErr.IsRetryable()
	}
	return false
}

// IsUserFacing returns true if the error message is safe to display to end users.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	var mcErr MulticheckError
	if As(err, &mcErr) {
		return mcErr.IsUserFacing()
	}
	return false
}

// GetSeverity returns the severity level of the error.
// Returns SeverityError for errors that don't implement MulticheckError.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityDebug
	}
	var mcErr MulticheckError
	if As(err, &mcErr) {
		return mcErr.Severity()
	}
	return SeverityError
}

// -----------------------------------------------------------------------------
// Convenience Constructors
// -----------------------------------------------------------------------------

// Wrap wraps an error with additional context message.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
