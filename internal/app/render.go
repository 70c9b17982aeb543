package app

import (
	"context"
	"errors"

	"tiretemp/internal/service"
)

// Render drives a fixed number of readings through the pipeline without
// waiting for the clock, then writes the panels, an optional trace and a
// summary table.
func (a *App) Render(ctx context.Context, opts RenderOptions) error {
	samples := a.Config.ResolveSamples(opts.Samples)
	if samples <= 0 {
		return errors.New("number of samples must be greater than zero")
	}

	outDir := opts.OutDir
	if outDir == "" {
		outDir = a.Config.Export.SnapshotDir
	}

	source, closeSource, err := a.newSource(samples)
	if err != nil {
		return err
	}
	if closeSource != nil {
		defer closeSource()
	}

	p := a.newPipeline()
	trace := &traceRecorder{}
	svc := service.New(service.Options{
		SnapshotDir: outDir,
		MetricsPath: a.Config.Export.MetricsPath,
		Render:      a.Config.RenderOptions(),
		Observer:    trace.Observe,
	}, nil, source, p.monitor, p.display, p.metrics, a.Logger)

	processed, err := svc.Prefill(ctx, samples)
	if err != nil {
		return err
	}
	if processed == 0 {
		return errors.New("sensor produced no samples")
	}

	if err := svc.Flush(); err != nil {
		return err
	}
	a.Logger.Info().Int("samples", processed).Str("dir", outDir).Msg("panels rendered")

	if opts.TracePath != "" {
		if err := writeTraceCSV(opts.TracePath, a.RunID, trace.ticks); err != nil {
			return err
		}
		a.Logger.Info().Str("path", opts.TracePath).Msg("trace exported")
	}

	return printSummary(a.Out, summarize(trace.ticks))
}
