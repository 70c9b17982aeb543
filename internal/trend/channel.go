package trend

import (
	"fmt"
	"math"
)

// Channel names one of the two independent measurement streams.
type Channel string

const (
	Front Channel = "front"
	Rear  Channel = "rear"
)

// Scale converts a temperature into the chart's fixed-point unit: tenths of a
// degree, truncated toward zero.
func Scale(v float64) int {
	return int(v * 10)
}

// FormatLabel renders an average the way the label shows it.
func FormatLabel(avg float64) string {
	return fmt.Sprintf("%.1f°", avg)
}

// Update records what a channel emitted for one sample.
type Update struct {
	Channel       Channel
	Sample        float64
	Average       float64
	Scaled        int
	ScaledAverage int
	Direction     Direction
	Transitioned  bool
	Rising        Point
	Falling       Point
	Label         string
}

// Pipeline is the per-channel state: window, classifier and sinks.
type Pipeline struct {
	name       Channel
	window     *Window
	classifier Classifier
	sinks      Sinks
}

// NewPipeline builds a channel pipeline. Nil sinks are skipped.
func NewPipeline(name Channel, capacity int, sinks Sinks) *Pipeline {
	return &Pipeline{
		name:   name,
		window: NewWindow(capacity),
		sinks:  sinks,
	}
}

// Name returns the channel the pipeline serves.
func (p *Pipeline) Name() Channel { return p.name }

// Process runs one sample through the window, classifier and emitter and
// publishes the result to the sinks.
func (p *Pipeline) Process(sample float64) (Update, error) {
	if err := checkFinite(p.name, sample); err != nil {
		return Update{}, err
	}

	avg := p.window.Insert(sample)
	scaledAvg := Scale(avg)
	dir, transitioned := p.classifier.Classify(scaledAvg)
	rising, falling := Emit(scaledAvg, dir, transitioned)

	u := Update{
		Channel:       p.name,
		Sample:        sample,
		Average:       avg,
		Scaled:        Scale(sample),
		ScaledAverage: scaledAvg,
		Direction:     dir,
		Transitioned:  transitioned,
		Rising:        rising,
		Falling:       falling,
		Label:         FormatLabel(avg),
	}
	p.publish(u)
	return u, nil
}

func (p *Pipeline) publish(u Update) {
	if c := p.sinks.Chart; c != nil {
		c.PushPoint(SeriesMain, Value(u.Scaled))
		c.PushPoint(SeriesRising, u.Rising)
		c.PushPoint(SeriesFalling, u.Falling)
	}
	if l := p.sinks.Label; l != nil {
		l.SetColor(u.Direction)
		l.SetText(u.Label)
	}
}

func checkFinite(name Channel, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s sample %v: %w", name, v, ErrNonFiniteSample)
	}
	return nil
}
