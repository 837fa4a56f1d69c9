package record

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"cavis/internal/stats"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrTooFewSamples is returned when a series cannot be plotted.
var ErrTooFewSamples = errors.New("need at least two samples to chart")

// WriteChart renders the live and changed cell counts of s as a PNG line chart.
func WriteChart(w io.Writer, title string, s stats.Series, width, height int) error {
	if s.Len() < 2 {
		return ErrTooFewSamples
	}
	top := max(slices.Max(s.Alive), slices.Max(s.Changed))
	if top <= 0 {
		top = 1
	}

	graph := chart.Chart{
		Title:  title,
		Width:  width,
		Height: height,
		XAxis: chart.XAxis{
			Name:  "tick",
			Style: chart.Style{FontSize: 10.0},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name:  "cells",
			Style: chart.Style{FontSize: 10.0},
			Range: &chart.ContinuousRange{Min: 0, Max: top * 1.05},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "alive",
				XValues: s.Ticks,
				YValues: s.Alive,
				Style:   chart.Style{StrokeColor: drawing.Color{R: 0x69, G: 0xff, B: 0xd2, A: 255}, StrokeWidth: 2.0},
			},
			chart.ContinuousSeries{
				Name:    "changed",
				XValues: s.Ticks,
				YValues: s.Changed,
				Style:   chart.Style{StrokeColor: drawing.Color{R: 0x54, G: 0x06, B: 0x22, A: 255}, StrokeWidth: 2.0},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("record: render chart: %w", err)
	}
	return nil
}
