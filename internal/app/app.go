// Package app wires configuration, logging, metrics and the two run modes
// (batch formatting and the interactive inspector) into one application
// object with a testable entry point.
package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/agbru/numfield/internal/config"
	apperrors "github.com/agbru/numfield/internal/errors"
	"github.com/agbru/numfield/internal/logging"
	"github.com/agbru/numfield/internal/metrics"
	"github.com/agbru/numfield/internal/ui"
)

// Application represents the numfield application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	Stdin     io.Reader
	Logger    logging.Logger
	Collector *metrics.Collector
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithStdin sets the reader used for "-" batch inputs. Defaults to
// os.Stdin.
func WithStdin(r io.Reader) AppOption {
	return func(a *Application) { a.Stdin = r }
}

// WithLogger sets a custom logger, replacing the stderr default.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Stdin == nil {
		app.Stdin = os.Stdin
	}

	programName := "numfield"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	app.Config = cfg
	if app.Logger == nil {
		app.Logger = logging.NewLogger(errWriter, "numfield")
	}
	app.Collector = metrics.NewCollector()
	return app, nil
}

// Run executes the application based on the configured mode: the
// interactive inspector when no values were given (or -tui forces it),
// batch formatting otherwise.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	a.configureLogging()
	a.configureTheme()

	opts, err := a.Config.Options()
	if err != nil {
		a.Logger.Error("invalid configuration", err)
		return apperrors.ExitCodeFor(err)
	}
	kind, err := a.Config.FieldKind()
	if err != nil {
		a.Logger.Error("invalid configuration", err)
		return apperrors.ExitCodeFor(err)
	}

	if a.Config.TUI || len(a.Config.Values) == 0 {
		return a.runInspector(ctx, out, opts)
	}
	return a.runBatch(ctx, out, kind, opts)
}

// configureLogging maps the verbosity flags onto the global zerolog level.
// Quiet wins over verbose so piped output stays clean.
func (a *Application) configureLogging() {
	switch {
	case a.Config.Quiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case a.Config.Verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func (a *Application) configureTheme() {
	ui.InitTheme(a.Config.NoColor)
	// InitTheme already disables colors for -no-color and NO_COLOR; only
	// then may the named theme be applied on top.
	if ui.GetCurrentTheme().Name != "none" {
		ui.SetTheme(a.Config.Theme)
	}
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
