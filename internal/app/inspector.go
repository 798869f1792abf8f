package app

import (
	"context"
	"io"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	apperrors "github.com/agbru/numfield/internal/errors"
	"github.com/agbru/numfield/internal/inspector"
	"github.com/agbru/numfield/internal/logging"
	"github.com/agbru/numfield/internal/numfmt"
)

// demoFields builds the inspector's starting fields, one per numeric kind,
// so every formatting path is visible interactively.
func demoFields() []inspector.Field {
	return []inspector.Field{
		inspector.NewField("Health", inspector.NewMemorySlot(numfmt.Int32Value(100))),
		inspector.NewField("Population", inspector.NewMemorySlot(numfmt.Int64Value(7_950_000_000))),
		inspector.NewField("Mass", inspector.NewMemorySlot(numfmt.Float32Value(72.5))),
		inspector.NewField("Balance", inspector.NewMemorySlot(numfmt.Float64Value(1234567.89))),
	}
}

// runInspector launches the interactive field editor. The TUI owns the
// terminal, so logging is muted for the duration of the program.
func (a *Application) runInspector(ctx context.Context, out io.Writer, opts numfmt.Options) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	model := inspector.New(demoFields(), opts, logging.NewNopLogger(), a.Collector)
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithOutput(out),
	)

	if _, err := program.Run(); err != nil {
		if ctx.Err() != nil {
			return apperrors.ExitErrorCanceled
		}
		a.Logger.Error("inspector terminated", err)
		return apperrors.ExitErrorGeneric
	}

	if a.Config.ShowMetrics {
		if err := a.Collector.WriteText(out); err != nil {
			a.Logger.Error("writing metrics", err)
		}
	}
	return apperrors.ExitSuccess
}
