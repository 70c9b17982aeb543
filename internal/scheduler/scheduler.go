package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
)

// ErrStop ends Run without an error when returned (or wrapped) by a tick.
var ErrStop = errors.New("scheduler: stop")

// TickFunc is invoked on every interval with the tick's nominal time.
type TickFunc func(ctx context.Context, at time.Time) error

// Options tune scheduler behaviour.
type Options struct {
	Interval     time.Duration
	AlignToStart bool
	StartupDelay time.Duration
	// MaxTicks stops the loop after that many ticks; zero runs until cancelled.
	MaxTicks int
}

// Scheduler drives periodic sampling. Ticks run strictly one after another
// on the goroutine that called Run.
type Scheduler struct {
	opts   Options
	logger zerolog.Logger
}

// New constructs a Scheduler instance.
func New(opts Options, logger zerolog.Logger) *Scheduler {
	if opts.Interval <= 0 {
		panic("scheduler interval must be positive")
	}
	return &Scheduler{opts: opts, logger: logger.With().Str("component", "scheduler").Logger()}
}

// Run blocks, invoking tick at each interval until ctx is cancelled, MaxTicks
// is reached, or tick returns ErrStop.
func (s *Scheduler) Run(ctx context.Context, tick TickFunc) error {
	if s.opts.StartupDelay > 0 {
		timer := time.NewTimer(s.opts.StartupDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	next := s.nextTick(time.Now().UTC())
	for count := 0; s.opts.MaxTicks == 0 || count < s.opts.MaxTicks; count++ {
		delay := time.Until(next)
		if delay < 0 {
			skipped := -delay / s.opts.Interval
			s.logger.Warn().Int64("skipped", int64(skipped)).Msg("tick overran interval")
			next = s.nextTick(time.Now().UTC())
			delay = time.Until(next)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		at := s.bucketStart(next)
		s.logger.Trace().Time("at", at).Msg("executing scheduled tick")

		if err := tick(ctx, at); err != nil {
			if errors.Is(err, ErrStop) {
				s.logger.Info().Int("ticks", count+1).Msg("tick source requested stop")
				return nil
			}
			s.logger.Error().Err(err).Time("at", at).Msg("tick execution failed")
		}

		next = next.Add(s.opts.Interval)
	}

	s.logger.Info().Int("ticks", s.opts.MaxTicks).Msg("tick limit reached")
	return nil
}

func (s *Scheduler) nextTick(now time.Time) time.Time {
	if !s.opts.AlignToStart {
		return now.Add(s.opts.Interval)
	}
	bucket := now.Truncate(s.opts.Interval)
	if !bucket.After(now) {
		bucket = bucket.Add(s.opts.Interval)
	}
	return bucket
}

func (s *Scheduler) bucketStart(t time.Time) time.Time {
	if !s.opts.AlignToStart {
		return t
	}
	return t.Truncate(s.opts.Interval)
}
