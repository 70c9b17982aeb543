package sensor

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"
)

// SimulatorOptions describe the synthetic tire temperature curves: a slow sine
// between MinTemp and MaxTemp with a faster oscillation on top. The rear
// oscillation is shifted by RearPhase.
type SimulatorOptions struct {
	TrendPeriod          time.Duration
	OscillationPeriod    time.Duration
	MinTemp              float64
	MaxTemp              float64
	OscillationAmplitude float64
	RearPhase            float64 // radians
	Step                 time.Duration
	// Start is the simulated clock before the first reading. A negative
	// start lets prefill readings end at zero.
	Start time.Duration
}

// Simulator is a deterministic Source driven by a simulated clock.
type Simulator struct {
	opts   SimulatorOptions
	clock  time.Duration
	logger zerolog.Logger
}

// NewSimulator constructs a Simulator.
func NewSimulator(opts SimulatorOptions, logger zerolog.Logger) *Simulator {
	if opts.Step <= 0 {
		opts.Step = time.Second
	}
	return &Simulator{
		opts:   opts,
		clock:  opts.Start,
		logger: logger.With().Str("component", "simulator").Logger(),
	}
}

// Next advances the clock by one step and returns the reading there.
func (s *Simulator) Next(ctx context.Context) (Reading, error) {
	if err := ctx.Err(); err != nil {
		return Reading{}, err
	}
	s.clock += s.opts.Step
	r := s.At(s.clock)
	s.logger.Trace().Dur("t", s.clock).Float64("front", r.Front).Float64("rear", r.Rear).Msg("simulated reading")
	return r, nil
}

// At evaluates both curves at simulated time t.
func (s *Simulator) At(t time.Duration) Reading {
	sec := t.Seconds()
	center := (s.opts.MaxTemp + s.opts.MinTemp) / 2
	amplitude := (s.opts.MaxTemp - s.opts.MinTemp) / 2

	base := center + amplitude*math.Sin(2*math.Pi*sec/s.opts.TrendPeriod.Seconds())
	phase := 2 * math.Pi * sec / s.opts.OscillationPeriod.Seconds()

	return Reading{
		Front: base + s.opts.OscillationAmplitude*math.Sin(phase),
		Rear:  base + s.opts.OscillationAmplitude*math.Sin(phase+s.opts.RearPhase),
	}
}

// Clock returns the simulated time of the last reading.
func (s *Simulator) Clock() time.Duration { return s.clock }

var _ Source = (*Simulator)(nil)
