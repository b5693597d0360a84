package trace

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
)

// Series selects what to plot for a ball.
type Series string

const (
	SeriesX     Series = "x"
	SeriesY     Series = "y"
	SeriesSpeed Series = "speed"
)

func ParseSeries(s string) (Series, error) {
	switch Series(s) {
	case SeriesX, SeriesY, SeriesSpeed:
		return Series(s), nil
	}
	return "", fmt.Errorf("trace: unknown series %q (want x, y or speed)", s)
}

// Values extracts one series of ball i.
func (t *Trace) Values(i int, series Series) ([]float64, error) {
	if i < 0 || i >= len(t.Samples) {
		return nil, fmt.Errorf("%w: %d", ErrNoBall, i)
	}
	out := make([]float64, len(t.Samples[i]))
	for f, s := range t.Samples[i] {
		switch series {
		case SeriesX:
			out[f] = s.Center.X
		case SeriesY:
			out[f] = s.Center.Y
		default:
			out[f] = s.Speed
		}
	}
	return out, nil
}

// Plot renders one series of ball i as an ascii chart.
func (t *Trace) Plot(i int, series Series, width, height int) (string, error) {
	data, err := t.Values(i, series)
	if err != nil {
		return "", err
	}
	caption := fmt.Sprintf("%s: %s over %d frames", t.Labels[i], series, len(data))
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	), nil
}

// PlotAll overlays one series of every ball.
func (t *Trace) PlotAll(series Series, width, height int) (string, error) {
	all := make([][]float64, len(t.Samples))
	colors := make([]asciigraph.AnsiColor, len(t.Samples))
	palette := []asciigraph.AnsiColor{
		asciigraph.Red, asciigraph.Green, asciigraph.Yellow, asciigraph.Blue,
		asciigraph.Magenta, asciigraph.Cyan, asciigraph.White,
	}
	for i := range t.Samples {
		data, err := t.Values(i, series)
		if err != nil {
			return "", err
		}
		all[i] = data
		colors[i] = palette[i%len(palette)]
	}
	return asciigraph.PlotMany(all,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.SeriesColors(colors...),
		asciigraph.Caption(fmt.Sprintf("%s of %d balls", series, len(all))),
	), nil
}
