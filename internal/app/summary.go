package app

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"tiretemp/internal/trend"
)

type channelSummary struct {
	Channel     trend.Channel
	Samples     int
	Last        float64
	Min         float64
	Max         float64
	Mean        float64
	StdDev      float64
	Transitions int
	RisingShare float64
	Direction   trend.Direction
}

func summarize(ticks []trend.Tick) []channelSummary {
	if len(ticks) == 0 {
		return nil
	}

	out := make([]channelSummary, 0, 2)
	for _, pick := range []func(trend.Tick) trend.Update{
		func(t trend.Tick) trend.Update { return t.Front },
		func(t trend.Tick) trend.Update { return t.Rear },
	} {
		averages := make([]float64, len(ticks))
		var transitions, rising int
		for i, tick := range ticks {
			u := pick(tick)
			averages[i] = u.Average
			if u.Transitioned {
				transitions++
			}
			if u.Direction == trend.Rising {
				rising++
			}
		}

		last := pick(ticks[len(ticks)-1])
		mean, std := stat.MeanStdDev(averages, nil)
		if len(averages) < 2 {
			std = 0
		}
		out = append(out, channelSummary{
			Channel:     last.Channel,
			Samples:     len(averages),
			Last:        last.Average,
			Min:         floats.Min(averages),
			Max:         floats.Max(averages),
			Mean:        mean,
			StdDev:      std,
			Transitions: transitions,
			RisingShare: float64(rising) / float64(len(averages)),
			Direction:   last.Direction,
		})
	}
	return out
}

func printSummary(w io.Writer, rows []channelSummary) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "no samples processed")
		return err
	}

	writer := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "Channel\tSamples\tAverage\tTrend\tMin\tMax\tMean\tStdDev\tTransitions\tRising%")
	for _, row := range rows {
		fmt.Fprintf(
			writer,
			"%s\t%d\t%s°\t%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
			row.Channel,
			row.Samples,
			formatFloat(row.Last, 1),
			row.Direction,
			formatFloat(row.Min, 1),
			formatFloat(row.Max, 1),
			formatFloat(row.Mean, 2),
			formatFloat(row.StdDev, 2),
			row.Transitions,
			formatFloat(row.RisingShare*100, 1),
		)
	}
	return writer.Flush()
}

func formatFloat(v float64, places int32) string {
	return decimal.NewFromFloat(v).StringFixed(places)
}
