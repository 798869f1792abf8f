package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/numfield/internal/cli"
	apperrors "github.com/agbru/numfield/internal/errors"
	"github.com/agbru/numfield/internal/format"
	"github.com/agbru/numfield/internal/logging"
	"github.com/agbru/numfield/internal/metrics"
	"github.com/agbru/numfield/internal/numfmt"
)

// tracerName identifies batch spans in whatever tracer provider the host
// process installed. With none installed the spans are no-ops.
const tracerName = "github.com/agbru/numfield/internal/app"

// runBatch parses and formats every positional value, printing one line per
// input in order. Inputs never fail the run; a malformed value is printed
// as its fallback with a marker and the process still exits zero unless the
// run was interrupted.
func (a *Application) runBatch(ctx context.Context, out io.Writer, kind numfmt.Kind, opts numfmt.Options) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	inputs, err := a.expandValues()
	if err != nil {
		a.Logger.Error("reading stdin values", err)
		return apperrors.ExitErrorGeneric
	}

	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "batch")
	span.SetAttributes(
		attribute.Int("values", len(inputs)),
		attribute.String("kind", kind.String()),
	)
	defer span.End()

	start := time.Now()
	lines, err := a.processValues(ctx, inputs, kind, opts)
	if err != nil {
		a.Logger.Error("batch interrupted", err)
		return apperrors.ExitCodeFor(err)
	}

	for _, l := range lines {
		cli.DisplayLine(out, l, a.Config.Quiet)
	}

	if a.Config.Verbose {
		snap := metrics.NewMemoryCollector().Snapshot()
		a.Logger.Debug("batch complete",
			logging.Int("values", len(lines)),
			logging.String("elapsed", format.Duration(time.Since(start))),
			logging.Uint64("heap_alloc_bytes", snap.HeapAlloc),
			logging.Uint64("heap_objects", snap.HeapObjects))
	}

	if a.Config.ShowMetrics {
		fmt.Fprintln(out)
		if err := a.Collector.WriteText(out); err != nil {
			a.Logger.Error("writing metrics", err)
		}
	}

	return apperrors.ExitSuccess
}

// expandValues resolves the positional inputs, splicing the lines read
// from stdin in place of the first "-" token. Stdin is consumed once;
// further "-" tokens are dropped.
func (a *Application) expandValues() ([]string, error) {
	var inputs []string
	stdinDone := false
	for _, v := range a.Config.Values {
		if v != "-" {
			inputs = append(inputs, v)
			continue
		}
		if stdinDone {
			continue
		}
		stdinDone = true
		scanner := bufio.NewScanner(a.Stdin)
		for scanner.Scan() {
			inputs = append(inputs, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}
	return inputs, nil
}

// processValues parses and formats the inputs concurrently, keeping the
// results in input order. The only error out of here is context
// cancellation; individual values carry their outcome in the Line status.
func (a *Application) processValues(ctx context.Context, inputs []string, kind numfmt.Kind, opts numfmt.Options) ([]cli.Line, error) {
	lines := make([]cli.Line, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, status := numfmt.ParseText(input, kind, numfmt.ZeroValue(kind), opts)
			a.Collector.ObserveParse(status)
			res := numfmt.Format(v, opts)
			a.Collector.ObserveFormat()
			lines[i] = cli.Line{Input: input, Status: status, Result: res}

			a.Logger.Debug("value processed",
				logging.String("input", input),
				logging.String("status", status.String()),
				logging.String("display", res.Display))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return lines, nil
}
