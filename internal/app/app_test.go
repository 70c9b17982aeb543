package app

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tiretemp/internal/config"
	"tiretemp/internal/trend"
)

func testConfig(dir string) *config.Config {
	return &config.Config{
		App:       config.AppConfig{Name: "tiretemp", Environment: "test"},
		Scheduler: config.SchedulerConfig{Interval: time.Millisecond},
		Monitor:   config.MonitorConfig{WindowSize: 120},
		Display: config.DisplayConfig{
			PointCount: 200, YMin: 150, YMax: 600, Width: 320, Height: 120, LineWidth: 3,
		},
		Sensor: config.SensorConfig{
			Kind:                 config.SensorSimulator,
			Prefill:              300,
			TrendPeriod:          10 * time.Minute,
			OscillationPeriod:    2 * time.Minute,
			MinTemp:              20,
			MaxTemp:              50,
			OscillationAmplitude: 3,
			RearPhaseDeg:         60,
			Step:                 time.Second,
		},
		Export: config.ExportConfig{
			SnapshotDir: filepath.Join(dir, "snapshots"),
			MetricsPath: filepath.Join(dir, "metrics", "tiretemp.prom"),
		},
	}
}

func newTestApp(t *testing.T) (*App, *bytes.Buffer, string) {
	t.Helper()
	dir := t.TempDir()
	a := NewApp(testConfig(dir), zerolog.Nop())
	out := &bytes.Buffer{}
	a.Out = out
	return a, out, dir
}

func TestRenderSimulator(t *testing.T) {
	a, out, dir := newTestApp(t)
	tracePath := filepath.Join(dir, "trace", "ticks.csv")

	err := a.Render(context.Background(), RenderOptions{TracePath: tracePath})
	require.NoError(t, err)

	for _, name := range []string{"snapshots/front.png", "snapshots/rear.png", "metrics/tiretemp.prom"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}

	file, err := os.Open(tracePath)
	require.NoError(t, err)
	defer file.Close()
	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1+2*300)
	assert.Equal(t, "run_id", records[0][0])
	assert.Equal(t, a.RunID, records[1][0])
	assert.Equal(t, "front", records[1][2])
	assert.Equal(t, "rear", records[2][2])

	summary := out.String()
	assert.Contains(t, summary, "Channel")
	assert.Contains(t, summary, "front")
	assert.Contains(t, summary, "rear")
}

func TestRenderReplay(t *testing.T) {
	a, out, dir := newTestApp(t)
	csvPath := filepath.Join(dir, "laps.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("front,rear\n30,40\n31,39\n30.5,41\n"), 0o644))
	a.Config.Sensor.Kind = config.SensorCSV
	a.Config.Sensor.CSVPath = csvPath

	require.NoError(t, a.Render(context.Background(), RenderOptions{Samples: 10}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "front")
	assert.Contains(t, lines[1], "30.5°")
	assert.Contains(t, lines[2], "40.0°")
}

func TestRenderEmptyReplay(t *testing.T) {
	a, _, dir := newTestApp(t)
	csvPath := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("front,rear\n"), 0o644))
	a.Config.Sensor.Kind = config.SensorCSV
	a.Config.Sensor.CSVPath = csvPath

	assert.Error(t, a.Render(context.Background(), RenderOptions{}))
}

func TestRunBounded(t *testing.T) {
	a, _, dir := newTestApp(t)
	a.Config.Sensor.Prefill = 5
	a.Config.Export.SnapshotEvery = 2

	require.NoError(t, a.Run(context.Background(), RunOptions{Ticks: 3}))
	_, err := os.Stat(filepath.Join(dir, "snapshots", "front.png"))
	assert.NoError(t, err)
}

func TestSummarize(t *testing.T) {
	mon := trend.NewMonitor(1, trend.Sinks{}, trend.Sinks{})
	var ticks []trend.Tick
	for _, pair := range [][2]float64{{30, 40}, {32, 40}, {31, 40}, {33, 40}} {
		tick, err := mon.OnSample(pair[0], pair[1])
		require.NoError(t, err)
		ticks = append(ticks, tick)
	}

	rows := summarize(ticks)
	require.Len(t, rows, 2)

	front := rows[0]
	assert.Equal(t, trend.Front, front.Channel)
	assert.Equal(t, 4, front.Samples)
	assert.Equal(t, 33.0, front.Last)
	assert.Equal(t, 30.0, front.Min)
	assert.Equal(t, 33.0, front.Max)
	assert.InDelta(t, 31.5, front.Mean, 1e-12)
	assert.Equal(t, 2, front.Transitions)
	assert.InDelta(t, 0.75, front.RisingShare, 1e-12)

	rear := rows[1]
	assert.Equal(t, 0, rear.Transitions)
	assert.Equal(t, 0.0, rear.StdDev)
	assert.Equal(t, 1.0, rear.RisingShare)

	var buf bytes.Buffer
	require.NoError(t, printSummary(&buf, rows))
	assert.Contains(t, buf.String(), "33.0°")
	assert.Contains(t, buf.String(), "31.50")
}

func TestSummarizeEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printSummary(&buf, summarize(nil)))
	assert.Equal(t, "no samples processed\n", buf.String())
}

func TestPointField(t *testing.T) {
	assert.Equal(t, "", pointField(trend.None))
	assert.Equal(t, "0", pointField(trend.Value(0)))
}
