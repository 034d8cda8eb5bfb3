package record

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"elements-ca/internal/sims/elements"
)

// ErrTooFewSamples is returned when a history is too short to plot.
var ErrTooFewSamples = errors.New("record: need at least two census samples")

// stateStroke reuses the render palette for line colors.
var stateStroke = func() map[elements.State]drawing.Color {
	out := make(map[elements.State]drawing.Color, elements.NumStates)
	for _, s := range elements.States() {
		c := s.Color()
		out[s] = drawing.Color{R: c.R, G: c.G, B: c.B, A: 255}
	}
	return out
}()

// WriteCensusChart renders the share of each state per tick as a PNG line
// chart of the given pixel size.
func WriteCensusChart(w io.Writer, history []elements.Census, width, height int) error {
	if len(history) < 2 {
		return ErrTooFewSamples
	}
	if width <= 0 {
		width = 800
	}
	if height <= 0 {
		height = 300
	}

	ticks := make([]float64, len(history))
	for i := range ticks {
		ticks[i] = float64(i)
	}

	series := make([]chart.Series, 0, elements.NumStates)
	for _, s := range elements.States() {
		series = append(series, chart.ContinuousSeries{
			Name:    s.String(),
			XValues: ticks,
			YValues: elements.Series(history, s),
			Style:   chart.Style{StrokeColor: stateStroke[s], StrokeWidth: 2.0},
		})
	}

	graph := chart.Chart{
		Width:  width,
		Height: height,
		XAxis: chart.XAxis{
			Name:  "tick",
			Style: chart.Style{FontSize: 9.0},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return strconv.Itoa(int(f))
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			Name:  "share",
			Style: chart.Style{FontSize: 9.0},
			Range: &chart.ContinuousRange{Min: 0, Max: 1},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("record: render census chart: %w", err)
	}
	return nil
}
