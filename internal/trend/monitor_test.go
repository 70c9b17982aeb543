package trend

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingChart struct {
	points map[Series][]Point
}

func newRecordingChart() *recordingChart {
	return &recordingChart{points: make(map[Series][]Point)}
}

func (r *recordingChart) PushPoint(series Series, p Point) {
	r.points[series] = append(r.points[series], p)
}

type recordingLabel struct {
	texts  []string
	colors []Direction
}

func (r *recordingLabel) SetText(text string) { r.texts = append(r.texts, text) }

func (r *recordingLabel) SetColor(dir Direction) { r.colors = append(r.colors, dir) }

func TestMonitorEndToEndScenario(t *testing.T) {
	chart := newRecordingChart()
	label := &recordingLabel{}
	m := NewMonitor(3, Sinks{Chart: chart, Label: label}, Sinks{})

	// Raw samples chosen so the capacity-3 averages scale to 10, 20, 20, 15, 30.
	raw := []float64{1.0, 3.0, 2.0, -0.5, 7.5}
	var dirs []Direction
	var trans []bool
	var averages []int
	for _, s := range raw {
		tick, err := m.OnSample(s, 30)
		require.NoError(t, err)
		dirs = append(dirs, tick.Front.Direction)
		trans = append(trans, tick.Front.Transitioned)
		averages = append(averages, tick.Front.ScaledAverage)
	}

	assert.Equal(t, []int{10, 20, 20, 15, 30}, averages)
	assert.Equal(t, []Direction{Rising, Rising, Rising, Falling, Rising}, dirs)
	assert.Equal(t, []bool{false, false, false, true, true}, trans)
	assert.Equal(t, []Point{Value(10), Value(20), Value(20), Value(15), Value(30)}, chart.points[SeriesRising])
	assert.Equal(t, []Point{None, None, None, Value(15), Value(30)}, chart.points[SeriesFalling])
	assert.Equal(t, []Point{Value(10), Value(30), Value(20), Value(-5), Value(75)}, chart.points[SeriesMain])
	assert.Equal(t, []Direction{Rising, Rising, Rising, Falling, Rising}, label.colors)
	assert.Equal(t, []string{"1.0°", "2.0°", "2.0°", "1.5°", "3.0°"}, label.texts)
}

func TestMonitorLabelFormatting(t *testing.T) {
	label := &recordingLabel{}
	m := NewMonitor(1, Sinks{Label: label}, Sinks{})

	_, err := m.OnSample(30.0, 0)
	require.NoError(t, err)
	tick, err := m.OnSample(37.46, 0)
	require.NoError(t, err)

	assert.Equal(t, "37.5°", tick.Front.Label)
	assert.Equal(t, "37.5°", label.texts[len(label.texts)-1])
	assert.Equal(t, Rising, label.colors[len(label.colors)-1])
}

func TestMonitorChannelsAreIndependent(t *testing.T) {
	front := newRecordingChart()
	rear := newRecordingChart()
	m := NewMonitor(1, Sinks{Chart: front}, Sinks{Chart: rear})

	pairs := [][2]float64{{10, 50}, {20, 40}, {30, 30}}
	for _, p := range pairs {
		_, err := m.OnSample(p[0], p[1])
		require.NoError(t, err)
	}

	assert.Equal(t, []Point{None, None, None}, front.points[SeriesFalling])
	assert.Equal(t, []Point{None, Value(400), Value(300)}, rear.points[SeriesFalling])
	assert.Equal(t, []Point{Value(500), Value(400), None}, rear.points[SeriesRising])
}

func TestMonitorRejectsNonFinite(t *testing.T) {
	chart := newRecordingChart()
	m := NewMonitor(3, Sinks{Chart: chart}, Sinks{Chart: chart})

	for _, pair := range [][2]float64{{math.NaN(), 1}, {1, math.Inf(1)}, {math.Inf(-1), 1}} {
		_, err := m.OnSample(pair[0], pair[1])
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNonFiniteSample))
	}
	assert.Empty(t, chart.points)

	tick, err := m.OnSample(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2.0, tick.Front.Average)
	assert.False(t, tick.Front.Transitioned)
}

func TestScaleTruncatesTowardZero(t *testing.T) {
	assert.Equal(t, 374, Scale(37.46))
	assert.Equal(t, 374, Scale(37.49))
	assert.Equal(t, -374, Scale(-37.49))
	assert.Equal(t, 0, Scale(-0.05))
}

func TestWindowCycleDirectionMatchesFreshScan(t *testing.T) {
	m := NewMonitor(DefaultWindowSize, Sinks{}, Sinks{})
	samples := make([]float64, 0, 3*DefaultWindowSize)
	for i := 0; i < 3*DefaultWindowSize; i++ {
		samples = append(samples, 35+15*math.Sin(float64(i)/37.0)+0.1*float64(i%7))
	}

	for i, s := range samples {
		tick, err := m.OnSample(s, s)
		require.NoError(t, err)

		lo := i + 1 - DefaultWindowSize
		if lo < 0 {
			lo = 0
		}
		var sum float64
		for _, v := range samples[lo : i+1] {
			sum += v
		}
		want := sum / float64(i+1-lo)
		require.InDelta(t, want, tick.Front.Average, 1e-9, "step %d", i)
	}
}
