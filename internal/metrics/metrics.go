package metrics

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"

	"tiretemp/internal/trend"
)

// Metrics holds the per-channel collectors of the monitor.
type Metrics struct {
	registry *prometheus.Registry

	sample      *prometheus.GaugeVec   // latest raw reading
	average     *prometheus.GaugeVec   // moving average
	rising      *prometheus.GaugeVec   // 1 while the average trends up
	transitions *prometheus.CounterVec // direction changes, by new direction
	ticks       prometheus.Counter
	rejected    prometheus.Counter
}

// New registers all collectors on a private registry labelled with runID.
func New(runID string) *Metrics {
	reg := prometheus.NewRegistry()
	constLabels := prometheus.Labels{"run_id": runID}

	m := &Metrics{
		registry: reg,
		sample: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "tiretemp_sample_celsius",
			Help:        "Latest raw tire temperature reading",
			ConstLabels: constLabels,
		}, []string{"channel"}),
		average: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "tiretemp_average_celsius",
			Help:        "Moving average of the tire temperature",
			ConstLabels: constLabels,
		}, []string{"channel"}),
		rising: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "tiretemp_trend_rising",
			Help:        "1 if the moving average is rising, 0 if falling",
			ConstLabels: constLabels,
		}, []string{"channel"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "tiretemp_trend_transitions_total",
			Help:        "Number of trend direction changes",
			ConstLabels: constLabels,
		}, []string{"channel", "direction"}),
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "tiretemp_ticks_total",
			Help:        "Sample pairs processed",
			ConstLabels: constLabels,
		}),
		rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "tiretemp_rejected_samples_total",
			Help:        "Sample pairs rejected as invalid",
			ConstLabels: constLabels,
		}),
	}

	reg.MustRegister(m.sample, m.average, m.rising, m.transitions, m.ticks, m.rejected)
	return m
}

// Observe records both channel updates of a tick.
func (m *Metrics) Observe(tick trend.Tick) {
	m.ticks.Inc()
	for _, u := range tick.Updates() {
		ch := string(u.Channel)
		m.sample.WithLabelValues(ch).Set(u.Sample)
		m.average.WithLabelValues(ch).Set(u.Average)

		rising := 0.0
		if u.Direction == trend.Rising {
			rising = 1
		}
		m.rising.WithLabelValues(ch).Set(rising)

		if u.Transitioned {
			m.transitions.WithLabelValues(ch, u.Direction.String()).Inc()
		}
	}
}

// Reject counts a sample pair the monitor refused.
func (m *Metrics) Reject() { m.rejected.Inc() }

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// WriteTextfile dumps the current values in the node-exporter textfile format.
func (m *Metrics) WriteTextfile(path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
