package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"tiretemp/internal/display"
	"tiretemp/internal/metrics"
	"tiretemp/internal/scheduler"
	"tiretemp/internal/sensor"
	"tiretemp/internal/trend"
)

// Observer is told about every accepted tick.
type Observer func(tick trend.Tick)

// Options configure snapshot output and tick observation.
type Options struct {
	SnapshotDir   string
	SnapshotEvery int
	MetricsPath   string
	Render        display.RenderOptions
	Observer      Observer
}

// Service feeds readings from a source through the monitor and keeps the
// display, metrics and snapshots up to date.
type Service struct {
	scheduler *scheduler.Scheduler
	source    sensor.Source
	monitor   *trend.Monitor
	display   *display.Display
	metrics   *metrics.Metrics
	opts      Options
	logger    zerolog.Logger

	ticks int
}

// New constructs the monitoring service. The monitor must have been built
// with disp's panels as its sinks; disp and m may be nil.
func New(opts Options, sched *scheduler.Scheduler, source sensor.Source, monitor *trend.Monitor, disp *display.Display, m *metrics.Metrics, logger zerolog.Logger) *Service {
	return &Service{
		scheduler: sched,
		source:    source,
		monitor:   monitor,
		display:   disp,
		metrics:   m,
		opts:      opts,
		logger:    logger.With().Str("component", "service").Logger(),
	}
}

// Run begins the live sampling loop.
func (s *Service) Run(ctx context.Context) error {
	if s.scheduler == nil {
		return fmt.Errorf("scheduler not configured")
	}
	return s.scheduler.Run(ctx, s.ProcessTick)
}

// Prefill pushes up to n readings through the pipeline without waiting for
// the scheduler. It returns how many were processed; a finite source may end
// early without error.
func (s *Service) Prefill(ctx context.Context, n int) (int, error) {
	processed := 0
	for processed < n {
		reading, err := s.source.Next(ctx)
		if errors.Is(err, sensor.ErrExhausted) {
			break
		}
		if err != nil {
			return processed, fmt.Errorf("prefill reading %d: %w", processed+1, err)
		}
		if _, err := s.Step(reading); err != nil {
			return processed, err
		}
		processed++
	}
	s.logger.Info().Int("requested", n).Int("processed", processed).Msg("history prefilled")
	return processed, nil
}

// ProcessTick handles one scheduled tick: read, process, snapshot.
func (s *Service) ProcessTick(ctx context.Context, at time.Time) error {
	reading, err := s.source.Next(ctx)
	if errors.Is(err, sensor.ErrExhausted) {
		return fmt.Errorf("%w: %w", scheduler.ErrStop, err)
	}
	if err != nil {
		return fmt.Errorf("read sensor: %w", err)
	}

	if _, err := s.Step(reading); err != nil {
		return err
	}

	if s.opts.SnapshotEvery > 0 && s.ticks%s.opts.SnapshotEvery == 0 {
		if err := s.Flush(); err != nil {
			s.logger.Error().Err(err).Time("at", at).Msg("failed to write snapshot")
		}
	}
	return nil
}

// Step runs one reading through the monitor.
func (s *Service) Step(reading sensor.Reading) (trend.Tick, error) {
	tick, err := s.monitor.OnSample(reading.Front, reading.Rear)
	if err != nil {
		if s.metrics != nil {
			s.metrics.Reject()
		}
		return trend.Tick{}, fmt.Errorf("process sample: %w", err)
	}
	s.ticks++

	if s.metrics != nil {
		s.metrics.Observe(tick)
	}
	if s.opts.Observer != nil {
		s.opts.Observer(tick)
	}

	for _, u := range tick.Updates() {
		event := s.logger.Debug()
		if u.Transitioned {
			event = s.logger.Info()
		}
		event.Str("channel", string(u.Channel)).
			Int("tick", s.ticks).
			Float64("sample", u.Sample).
			Str("average", u.Label).
			Str("direction", u.Direction.String()).
			Bool("transitioned", u.Transitioned).
			Msg("sample processed")
	}
	return tick, nil
}

// Flush writes the display snapshot and the metrics textfile when configured.
func (s *Service) Flush() error {
	if s.display != nil && s.opts.SnapshotDir != "" {
		paths, err := s.display.WriteSnapshot(s.opts.SnapshotDir, s.opts.Render)
		if err != nil && !errors.Is(err, display.ErrNoData) {
			return err
		}
		s.logger.Debug().Strs("paths", paths).Msg("snapshot written")
	}
	if s.metrics != nil && s.opts.MetricsPath != "" {
		if err := s.metrics.WriteTextfile(s.opts.MetricsPath); err != nil {
			return err
		}
	}
	return nil
}

// Ticks reports how many sample pairs were accepted.
func (s *Service) Ticks() int { return s.ticks }
