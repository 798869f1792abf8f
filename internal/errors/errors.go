package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the
// application, signalling the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags
// or values. It indicates that the application cannot proceed due to
// incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ValidationError represents an option validation failure. It identifies
// which option failed and preserves the underlying cause.
type ValidationError struct {
	// Option is the name of the option that failed validation.
	Option string
	// Cause is the underlying validation failure.
	Cause error
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid option %q: %v", e.Option, e.Cause)
}

// Unwrap returns the underlying cause, supporting errors.Is and errors.As.
func (e ValidationError) Unwrap() error { return e.Cause }

// NewValidationError wraps a validation failure for the named option.
func NewValidationError(option string, cause error) error {
	return ValidationError{Option: option, Cause: cause}
}

// ExitCodeFor maps an error to the process exit code for it.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var cfgErr ConfigError
	var valErr ValidationError
	switch {
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	case errors.As(err, &cfgErr), errors.As(err, &valErr):
		return ExitErrorConfig
	}
	return ExitErrorGeneric
}
