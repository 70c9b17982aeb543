package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"tiretemp/internal/config"
	"tiretemp/internal/display"
	"tiretemp/internal/metrics"
	"tiretemp/internal/sensor"
	"tiretemp/internal/trend"
)

// App aggregates configuration and shared dependencies for the CLI commands.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
	RunID  string
	Out    io.Writer
}

// NewApp constructs a new application handle.
func NewApp(cfg *config.Config, logger zerolog.Logger) *App {
	runID := uuid.NewString()
	return &App{
		Config: cfg,
		Logger: logger.With().Str("component", "app").Str("run_id", runID).Logger(),
		RunID:  runID,
		Out:    os.Stdout,
	}
}

// pipeline is one display with the monitor feeding it.
type pipeline struct {
	display *display.Display
	monitor *trend.Monitor
	metrics *metrics.Metrics
}

func (a *App) newPipeline() pipeline {
	disp := display.New(a.Config.Display.PointCount)
	return pipeline{
		display: disp,
		monitor: trend.NewMonitor(a.Config.Monitor.WindowSize, disp.Front.Sinks(), disp.Rear.Sinks()),
		metrics: metrics.New(a.RunID),
	}
}

// newSource opens the configured sensor. prefill is the number of readings
// that will be consumed before live ticks, so the simulated clock reaches
// zero exactly when prefill ends.
func (a *App) newSource(prefill int) (sensor.Source, func(), error) {
	switch a.Config.Sensor.Kind {
	case config.SensorCSV:
		replay, err := sensor.OpenReplay(a.Config.Sensor.CSVPath, a.Logger)
		if err != nil {
			return nil, nil, err
		}
		closer := func() {
			if err := replay.Close(); err != nil {
				a.Logger.Warn().Err(err).Msg("failed to close replay file")
			}
		}
		return replay, closer, nil
	case config.SensorSimulator:
		opts := a.Config.SimulatorOptions()
		opts.Start = -time.Duration(prefill) * opts.Step
		return sensor.NewSimulator(opts, a.Logger), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown sensor kind %q", a.Config.Sensor.Kind)
	}
}

// RunOptions configure the live loop.
type RunOptions struct {
	Ticks     int
	NoPrefill bool
}

// RenderOptions configure an offline render.
type RenderOptions struct {
	Samples   int
	OutDir    string
	TracePath string
}
