package app

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"tiretemp/internal/trend"
)

type traceRecorder struct {
	ticks []trend.Tick
}

func (r *traceRecorder) Observe(tick trend.Tick) {
	r.ticks = append(r.ticks, tick)
}

func writeTraceCSV(path, runID string, ticks []trend.Tick) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"run_id", "tick", "channel", "sample", "average", "scaled_sample", "scaled_average", "direction", "transitioned", "rising", "falling", "label"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for i, tick := range ticks {
		for _, u := range tick.Updates() {
			record := []string{
				runID,
				strconv.Itoa(i + 1),
				string(u.Channel),
				strconv.FormatFloat(u.Sample, 'f', -1, 64),
				strconv.FormatFloat(u.Average, 'f', -1, 64),
				strconv.Itoa(u.Scaled),
				strconv.Itoa(u.ScaledAverage),
				u.Direction.String(),
				strconv.FormatBool(u.Transitioned),
				pointField(u.Rising),
				pointField(u.Falling),
				u.Label,
			}
			if err := writer.Write(record); err != nil {
				return err
			}
		}
	}

	writer.Flush()
	return writer.Error()
}

func pointField(p trend.Point) string {
	v, ok := p.Get()
	if !ok {
		return ""
	}
	return strconv.Itoa(v)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
