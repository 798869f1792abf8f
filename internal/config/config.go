// Package config holds the application configuration: flag parsing,
// environment variable overrides, and the translation from textual settings
// into validated core formatting options.
package config

import (
	"flag"
	"fmt"
	"io"
	"unicode/utf8"

	apperrors "github.com/agbru/numfield/internal/errors"
	"github.com/agbru/numfield/internal/numfmt"
)

// EnvPrefix is prepended to every environment variable read by this
// package (NUMFIELD_KIND, NUMFIELD_SEPARATOR, ...).
const EnvPrefix = "NUMFIELD_"

// AppConfig holds the complete application configuration as parsed from
// flags and the environment. Priority: CLI flags > environment > defaults.
type AppConfig struct {
	// Kind is the numeric kind of batch-mode values: int32, int64,
	// float32 or float64.
	Kind string
	// Separator is the digit group separator, a single character.
	Separator string
	// AbbrevThreshold is the minimum absolute magnitude that produces a
	// magnitude abbreviation.
	AbbrevThreshold float64
	// AbbrevPlaces is the decimal precision of the abbreviated form.
	AbbrevPlaces int
	// OverflowPolicy is "clamp" or "reject".
	OverflowPolicy string
	// Theme is the color theme name: dark, light or none.
	Theme string
	// NoColor disables all color output.
	NoColor bool
	// TUI forces the interactive inspector even when values are given.
	TUI bool
	// Verbose enables structured logging of every operation.
	Verbose bool
	// Quiet suppresses everything but the formatted output.
	Quiet bool
	// ShowMetrics dumps the collected counters at exit.
	ShowMetrics bool
	// Values are the positional batch-mode inputs.
	Values []string
}

// DefaultConfig returns the stock configuration matching
// numfmt.DefaultOptions.
func DefaultConfig() AppConfig {
	return AppConfig{
		Kind:            numfmt.Float64.String(),
		Separator:       string(numfmt.DefaultGroupSeparator),
		AbbrevThreshold: numfmt.DefaultAbbrevThreshold,
		AbbrevPlaces:    numfmt.DefaultAbbrevDecimalPlaces,
		OverflowPolicy:  numfmt.OverflowClamp.String(),
		Theme:           "dark",
	}
}

// ParseConfig parses command-line arguments into an AppConfig, applying
// environment variable overrides for flags not explicitly set.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := DefaultConfig()

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.StringVar(&cfg.Kind, "kind", cfg.Kind, "numeric kind of batch values: int32, int64, float32, float64")
	fs.StringVar(&cfg.Separator, "separator", cfg.Separator, "digit group separator (single character)")
	fs.StringVar(&cfg.Separator, "sep", cfg.Separator, "alias for -separator")
	fs.Float64Var(&cfg.AbbrevThreshold, "abbrev-threshold", cfg.AbbrevThreshold, "minimum magnitude that gets an abbreviation")
	fs.IntVar(&cfg.AbbrevPlaces, "abbrev-places", cfg.AbbrevPlaces, "decimal places of the abbreviated form")
	fs.StringVar(&cfg.OverflowPolicy, "overflow", cfg.OverflowPolicy, "overflow policy on parse: clamp or reject")
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme, "color theme: dark, light, none")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable color output")
	fs.BoolVar(&cfg.TUI, "tui", cfg.TUI, "open the interactive inspector")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "log every operation")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "alias for -verbose")
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "print only formatted output")
	fs.BoolVar(&cfg.Quiet, "q", cfg.Quiet, "alias for -quiet")
	fs.BoolVar(&cfg.ShowMetrics, "show-metrics", cfg.ShowMetrics, "dump collected counters at exit")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	applyEnvOverrides(&cfg, fs)
	cfg.Values = fs.Args()
	return cfg, nil
}

// FieldKind resolves the configured kind name.
func (c AppConfig) FieldKind() (numfmt.Kind, error) {
	kind, ok := numfmt.ParseKind(c.Kind)
	if !ok {
		return 0, apperrors.NewConfigError("unknown kind %q (want int32, int64, float32 or float64)", c.Kind)
	}
	return kind, nil
}

// Options translates the textual configuration into validated core options.
func (c AppConfig) Options() (numfmt.Options, error) {
	opts := numfmt.DefaultOptions()

	if utf8.RuneCountInString(c.Separator) != 1 {
		return opts, apperrors.NewValidationError("separator",
			fmt.Errorf("must be exactly one character, got %q", c.Separator))
	}
	sep, _ := utf8.DecodeRuneInString(c.Separator)
	opts.GroupSeparator = sep

	opts.AbbrevThreshold = c.AbbrevThreshold
	opts.AbbrevDecimalPlaces = c.AbbrevPlaces

	policy, ok := numfmt.ParseOverflowPolicy(c.OverflowPolicy)
	if !ok {
		return opts, apperrors.NewConfigError("unknown overflow policy %q (want clamp or reject)", c.OverflowPolicy)
	}
	opts.OverflowPolicy = policy

	if err := opts.Validate(); err != nil {
		return opts, apperrors.NewValidationError("format options", err)
	}
	return opts, nil
}
