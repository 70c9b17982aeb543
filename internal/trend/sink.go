package trend

import "strconv"

// Series names one of the three point series a channel feeds.
type Series uint8

const (
	SeriesMain Series = iota
	SeriesRising
	SeriesFalling
)

func (s Series) String() string {
	switch s {
	case SeriesMain:
		return "main"
	case SeriesRising:
		return "rising"
	case SeriesFalling:
		return "falling"
	default:
		return "series(" + strconv.Itoa(int(s)) + ")"
	}
}

// Point is a chart coordinate in scaled units, or the absence of one.
type Point struct {
	value int
	valid bool
}

// None marks a position with no plotted point.
var None = Point{}

// Value wraps a scaled coordinate.
func Value(v int) Point { return Point{value: v, valid: true} }

// Get returns the coordinate and whether one is present.
func (p Point) Get() (int, bool) { return p.value, p.valid }

// IsNone reports whether p carries no coordinate.
func (p Point) IsNone() bool { return !p.valid }

func (p Point) String() string {
	if !p.valid {
		return "none"
	}
	return strconv.Itoa(p.value)
}

// ChartSink receives one point per series per tick.
type ChartSink interface {
	PushPoint(series Series, p Point)
}

// LabelSink shows the current average and its trend colour.
type LabelSink interface {
	SetText(text string)
	SetColor(dir Direction)
}

// Sinks bundles the collaborators of a single channel.
type Sinks struct {
	Chart ChartSink
	Label LabelSink
}
