package app

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"tiretemp/internal/scheduler"
	"tiretemp/internal/service"
)

// Run executes the long-running monitoring loop.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	prefill := a.Config.Sensor.Prefill
	if opts.NoPrefill {
		prefill = 0
	}

	source, closeSource, err := a.newSource(prefill)
	if err != nil {
		return err
	}
	if closeSource != nil {
		defer closeSource()
	}

	p := a.newPipeline()
	sched := scheduler.New(scheduler.Options{
		Interval:     a.Config.Scheduler.Interval,
		AlignToStart: a.Config.Scheduler.AlignToBucket,
		StartupDelay: a.Config.Scheduler.StartupDelay,
		MaxTicks:     opts.Ticks,
	}, a.Logger)

	svc := service.New(service.Options{
		SnapshotDir:   a.Config.Export.SnapshotDir,
		SnapshotEvery: a.Config.Export.SnapshotEvery,
		MetricsPath:   a.Config.Export.MetricsPath,
		Render:        a.Config.RenderOptions(),
	}, sched, source, p.monitor, p.display, p.metrics, a.Logger)

	if prefill > 0 {
		if _, err := svc.Prefill(ctx, prefill); err != nil {
			return err
		}
	}

	a.Logger.Info().
		Dur("interval", a.Config.Scheduler.Interval).
		Int("window", a.Config.Monitor.WindowSize).
		Str("sensor", a.Config.Sensor.Kind).
		Msg("starting monitoring service")

	err = svc.Run(ctx)
	if flushErr := svc.Flush(); flushErr != nil {
		a.Logger.Error().Err(flushErr).Msg("failed to write final snapshot")
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		a.Logger.Error().Err(err).Msg("service terminated with error")
		return err
	}

	a.Logger.Info().Int("ticks", svc.Ticks()).Msg("monitoring service stopped")
	return nil
}
