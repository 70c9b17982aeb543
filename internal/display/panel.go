package display

import (
	"fmt"

	"tiretemp/internal/trend"
)

// PlaceholderText is shown before the first sample arrives.
const PlaceholderText = "--.-°"

// Label is the average readout of one channel.
type Label struct {
	Text  string
	Color trend.Direction
	// Set becomes true after the first colour update; until then the label
	// is drawn in the neutral colour.
	Set bool
}

// Panel models one chart with its three series and its label. It implements
// trend.ChartSink and trend.LabelSink.
type Panel struct {
	Channel trend.Channel
	Main    *Series
	Rising  *Series
	Falling *Series
	Label   Label
}

// NewPanel builds an empty panel with pointCount positions per series.
func NewPanel(ch trend.Channel, pointCount int) *Panel {
	return &Panel{
		Channel: ch,
		Main:    NewSeries(pointCount),
		Rising:  NewSeries(pointCount),
		Falling: NewSeries(pointCount),
		Label:   Label{Text: PlaceholderText},
	}
}

// PushPoint implements trend.ChartSink.
func (p *Panel) PushPoint(series trend.Series, pt trend.Point) {
	switch series {
	case trend.SeriesMain:
		p.Main.Push(pt)
	case trend.SeriesRising:
		p.Rising.Push(pt)
	case trend.SeriesFalling:
		p.Falling.Push(pt)
	}
}

// SetText implements trend.LabelSink.
func (p *Panel) SetText(text string) { p.Label.Text = text }

// SetColor implements trend.LabelSink.
func (p *Panel) SetColor(dir trend.Direction) {
	p.Label.Color = dir
	p.Label.Set = true
}

// Sinks exposes the panel as the channel's collaborators.
func (p *Panel) Sinks() trend.Sinks {
	return trend.Sinks{Chart: p, Label: p}
}

// Timespan is the caption under the chart, e.g. "-200s" for 200 one-second points.
func (p *Panel) Timespan() string {
	return fmt.Sprintf("-%ds", p.Main.Len())
}

// Display holds the front and rear panels.
type Display struct {
	Front *Panel
	Rear  *Panel
}

// New builds both panels.
func New(pointCount int) *Display {
	return &Display{
		Front: NewPanel(trend.Front, pointCount),
		Rear:  NewPanel(trend.Rear, pointCount),
	}
}

// Panels returns the panels in front, rear order.
func (d *Display) Panels() []*Panel {
	return []*Panel{d.Front, d.Rear}
}

var (
	_ trend.ChartSink = (*Panel)(nil)
	_ trend.LabelSink = (*Panel)(nil)
)
