package display

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"tiretemp/internal/trend"
)

// ErrNoData is returned when a panel has nothing to draw yet.
var ErrNoData = errors.New("display: panel has no data")

// Colours of the three series. Rising and falling are material red and blue.
var (
	MainColor       = drawing.ColorWhite
	RisingColor     = drawing.ColorFromHex("F44336")
	FallingColor    = drawing.ColorFromHex("2196F3")
	backgroundColor = drawing.ColorBlack
	axisColor       = drawing.ColorFromHex("404040")
)

// RenderOptions size the rendered chart. YMin and YMax are in scaled units;
// when both are zero the range is derived from the data.
type RenderOptions struct {
	Width     int
	Height    int
	LineWidth float64
	YMin      float64
	YMax      float64
}

// ColorFor maps a trend direction to its series colour.
func ColorFor(dir trend.Direction) drawing.Color {
	if dir == trend.Falling {
		return FallingColor
	}
	return RisingColor
}

// Render draws the panel as a PNG.
func Render(w io.Writer, p *Panel, opts RenderOptions) error {
	mainRuns := Runs(p.Main.Points())
	if len(mainRuns) == 0 {
		return ErrNoData
	}

	series := make([]chart.Series, 0, len(mainRuns)+8)
	series = appendRuns(series, "main", mainRuns, MainColor, opts.LineWidth)
	series = appendRuns(series, "rising", Runs(p.Rising.Points()), RisingColor, opts.LineWidth)
	series = appendRuns(series, "falling", Runs(p.Falling.Points()), FallingColor, opts.LineWidth)

	labelColor := MainColor
	if p.Label.Set {
		labelColor = ColorFor(p.Label.Color)
	}

	xMax := float64(p.Main.Len() - 1)
	if xMax < 1 {
		xMax = 1
	}

	graph := chart.Chart{
		Title:      fmt.Sprintf("%s %s", p.Channel, p.Label.Text),
		TitleStyle: chart.Style{FontColor: labelColor, FontSize: 14},
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{
			FillColor: backgroundColor,
			Padding:   chart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10},
		},
		Canvas: chart.Style{FillColor: backgroundColor},
		XAxis: chart.XAxis{
			Name:           p.Timespan(),
			NameStyle:      chart.Style{FontColor: MainColor},
			Style:          chart.Style{FontColor: MainColor, StrokeColor: axisColor},
			Range:          &chart.ContinuousRange{Min: 0, Max: xMax},
			ValueFormatter: func(v interface{}) string { return "" },
		},
		YAxis: chart.YAxis{
			Style:          chart.Style{FontColor: MainColor, StrokeColor: axisColor},
			ValueFormatter: tenthsFormatter,
		},
		Series: series,
	}
	if opts.YMin != 0 || opts.YMax != 0 {
		graph.YAxis.Range = &chart.ContinuousRange{Min: opts.YMin, Max: opts.YMax}
	}

	return graph.Render(chart.PNG, w)
}

// WritePNG renders the panel into path, creating parent directories.
func WritePNG(path string, p *Panel, opts RenderOptions) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := Render(file, p, opts); err != nil {
		return fmt.Errorf("render %s panel: %w", p.Channel, err)
	}
	return nil
}

// WriteSnapshot writes <dir>/front.png and <dir>/rear.png. It returns the
// written paths.
func (d *Display) WriteSnapshot(dir string, opts RenderOptions) ([]string, error) {
	paths := make([]string, 0, 2)
	for _, p := range d.Panels() {
		path := filepath.Join(dir, string(p.Channel)+".png")
		if err := WritePNG(path, p, opts); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func appendRuns(series []chart.Series, name string, runs []Run, color drawing.Color, width float64) []chart.Series {
	for i, run := range runs {
		xs := make([]float64, len(run.Values))
		for j := range xs {
			xs[j] = float64(run.Start + j)
		}

		style := chart.Style{StrokeColor: color, StrokeWidth: width}
		if len(run.Values) == 1 {
			style = chart.Style{StrokeWidth: 0, DotColor: color, DotWidth: width}
		}

		series = append(series, chart.ContinuousSeries{
			Name:    fmt.Sprintf("%s-%d", name, i),
			Style:   style,
			XValues: xs,
			YValues: run.Values,
		})
	}
	return series
}

func tenthsFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.0f°", f/10)
	}
	return ""
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
