package config

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"tiretemp/internal/display"
	"tiretemp/internal/logging"
	"tiretemp/internal/sensor"
)

// Config materialises application configuration.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Logging   logging.Config  `mapstructure:"logging"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Monitor   MonitorConfig   `mapstructure:"monitor"`
	Display   DisplayConfig   `mapstructure:"display"`
	Sensor    SensorConfig    `mapstructure:"sensor"`
	Export    ExportConfig    `mapstructure:"export"`
}

// AppConfig general metadata.
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
}

// SchedulerConfig governs sampling cadence.
type SchedulerConfig struct {
	Interval      time.Duration `mapstructure:"interval"`
	AlignToBucket bool          `mapstructure:"align_to_bucket"`
	StartupDelay  time.Duration `mapstructure:"startup_delay"`
}

// MonitorConfig sizes the moving average.
type MonitorConfig struct {
	WindowSize int `mapstructure:"window_size"`
}

// DisplayConfig describes the chart panels.
type DisplayConfig struct {
	PointCount int     `mapstructure:"point_count"`
	YMin       float64 `mapstructure:"y_min"`
	YMax       float64 `mapstructure:"y_max"`
	Width      int     `mapstructure:"width"`
	Height     int     `mapstructure:"height"`
	LineWidth  float64 `mapstructure:"line_width"`
}

// SensorConfig selects and tunes the sample source.
type SensorConfig struct {
	Kind                 string        `mapstructure:"kind"`
	CSVPath              string        `mapstructure:"csv_path"`
	Prefill              int           `mapstructure:"prefill"`
	TrendPeriod          time.Duration `mapstructure:"trend_period"`
	OscillationPeriod    time.Duration `mapstructure:"oscillation_period"`
	MinTemp              float64       `mapstructure:"min_temp"`
	MaxTemp              float64       `mapstructure:"max_temp"`
	OscillationAmplitude float64       `mapstructure:"oscillation_amplitude"`
	RearPhaseDeg         float64       `mapstructure:"rear_phase_deg"`
	Step                 time.Duration `mapstructure:"step"`
}

// ExportConfig sets snapshot and metrics output.
type ExportConfig struct {
	SnapshotDir   string `mapstructure:"snapshot_dir"`
	SnapshotEvery int    `mapstructure:"snapshot_every"`
	MetricsPath   string `mapstructure:"metrics_path"`
}

// Sensor kinds.
const (
	SensorSimulator = "simulator"
	SensorCSV       = "csv"
)

// Load builds configuration from file, environment, and defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("TIRETEMP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, decodeHook()); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "tiretemp")
	v.SetDefault("app.environment", "development")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output", "stderr")

	v.SetDefault("scheduler.interval", "1s")
	v.SetDefault("scheduler.align_to_bucket", false)
	v.SetDefault("scheduler.startup_delay", "0s")

	v.SetDefault("monitor.window_size", 120)

	v.SetDefault("display.point_count", 200)
	v.SetDefault("display.y_min", 150.0)
	v.SetDefault("display.y_max", 600.0)
	v.SetDefault("display.width", 640)
	v.SetDefault("display.height", 240)
	v.SetDefault("display.line_width", 3.0)

	v.SetDefault("sensor.kind", SensorSimulator)
	v.SetDefault("sensor.prefill", 300)
	v.SetDefault("sensor.trend_period", "10m")
	v.SetDefault("sensor.oscillation_period", "2m")
	v.SetDefault("sensor.min_temp", 20.0)
	v.SetDefault("sensor.max_temp", 50.0)
	v.SetDefault("sensor.oscillation_amplitude", 3.0)
	v.SetDefault("sensor.rear_phase_deg", 60.0)
	v.SetDefault("sensor.step", "1s")

	v.SetDefault("export.snapshot_dir", "snapshots")
	v.SetDefault("export.snapshot_every", 10)
	v.SetDefault("export.metrics_path", "")
}

func decodeHook() viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}
}

// Validate performs basic sanity checks on the configuration values.
func (c *Config) Validate() error {
	if c.Scheduler.Interval <= 0 {
		return fmt.Errorf("scheduler.interval must be greater than zero")
	}
	if c.Monitor.WindowSize <= 0 {
		return fmt.Errorf("monitor.window_size must be greater than zero")
	}
	if c.Display.PointCount < 2 {
		return fmt.Errorf("display.point_count must be at least 2")
	}
	if c.Display.YMax <= c.Display.YMin {
		return fmt.Errorf("display.y_max must be greater than display.y_min")
	}
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("display.width and display.height must be greater than zero")
	}
	if c.Sensor.Prefill < 0 {
		return fmt.Errorf("sensor.prefill cannot be negative")
	}
	if c.Export.SnapshotEvery < 0 {
		return fmt.Errorf("export.snapshot_every cannot be negative")
	}

	switch c.Sensor.Kind {
	case SensorSimulator:
		if c.Sensor.TrendPeriod <= 0 || c.Sensor.OscillationPeriod <= 0 {
			return fmt.Errorf("sensor periods must be greater than zero")
		}
		if c.Sensor.Step <= 0 {
			return fmt.Errorf("sensor.step must be greater than zero")
		}
		if c.Sensor.MaxTemp < c.Sensor.MinTemp {
			return fmt.Errorf("sensor.max_temp must not be below sensor.min_temp")
		}
	case SensorCSV:
		if c.Sensor.CSVPath == "" {
			return fmt.Errorf("sensor.csv_path is required when sensor.kind is %q", SensorCSV)
		}
	default:
		return fmt.Errorf("unknown sensor.kind %q", c.Sensor.Kind)
	}
	return nil
}

// RenderOptions converts the display section for the renderer.
func (c *Config) RenderOptions() display.RenderOptions {
	return display.RenderOptions{
		Width:     c.Display.Width,
		Height:    c.Display.Height,
		LineWidth: c.Display.LineWidth,
		YMin:      c.Display.YMin,
		YMax:      c.Display.YMax,
	}
}

// SimulatorOptions converts the sensor section. The simulated clock starts
// prefill steps before zero.
func (c *Config) SimulatorOptions() sensor.SimulatorOptions {
	s := c.Sensor
	return sensor.SimulatorOptions{
		TrendPeriod:          s.TrendPeriod,
		OscillationPeriod:    s.OscillationPeriod,
		MinTemp:              s.MinTemp,
		MaxTemp:              s.MaxTemp,
		OscillationAmplitude: s.OscillationAmplitude,
		RearPhase:            s.RearPhaseDeg * math.Pi / 180,
		Step:                 s.Step,
		Start:                -time.Duration(s.Prefill) * s.Step,
	}
}

// ResolveSamples returns either the CLI override or the prefill default.
func (c *Config) ResolveSamples(override int) int {
	if override > 0 {
		return override
	}
	return c.Sensor.Prefill
}
