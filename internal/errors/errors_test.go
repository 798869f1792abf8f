package apperrors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestConfigError(t *testing.T) {
	t.Parallel()
	err := NewConfigError("unknown kind %q", "int128")

	if got := err.Error(); got != `unknown kind "int128"` {
		t.Errorf("Error() = %q", got)
	}

	var cfgErr ConfigError
	if !errors.As(err, &cfgErr) {
		t.Error("errors.As should match ConfigError")
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()
	cause := errors.New("group separator must not be the decimal point")
	err := NewValidationError("separator", cause)

	if got := err.Error(); got != `invalid option "separator": group separator must not be the decimal point` {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should see through Unwrap to the cause")
	}
}

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"generic", errors.New("boom"), ExitErrorGeneric},
		{"config", NewConfigError("bad flag"), ExitErrorConfig},
		{"validation", NewValidationError("places", errors.New("negative")), ExitErrorConfig},
		{"wrapped validation", fmt.Errorf("parsing: %w", NewValidationError("sep", errors.New("digit"))), ExitErrorConfig},
		{"canceled", context.Canceled, ExitErrorCanceled},
		{"wrapped canceled", fmt.Errorf("run: %w", context.Canceled), ExitErrorCanceled},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCodeFor(tt.err); got != tt.want {
				t.Errorf("ExitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
