// Package charts renders count series as SVG bar and pie charts.
package charts

import (
	"errors"
	"fmt"
	"html"
	"io"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	KindBar = "bar"
	KindPie = "pie"

	width  = 720
	height = 400
)

var ErrNoData = errors.New("charts: no data to plot")

// Point is one labelled count.
type Point struct {
	Label string
	Count int
}

// RenderSVG writes a chart of points to w. kind is KindBar or KindPie.
func RenderSVG(w io.Writer, kind, title string, points []Point) error {
	total := 0
	for _, p := range points {
		total += p.Count
	}
	if total == 0 {
		return ErrNoData
	}

	switch kind {
	case KindBar:
		return renderBar(w, title, points)
	case KindPie:
		return renderPie(w, title, points)
	default:
		return fmt.Errorf("charts: unknown chart kind %q", kind)
	}
}

func renderBar(w io.Writer, title string, points []Point) error {
	bars := make([]chart.Value, 0, len(points))
	maxCount := 0
	for i, p := range points {
		bars = append(bars, chart.Value{
			Label: p.Label,
			Value: float64(p.Count),
			Style: chart.Style{FillColor: palette(i), StrokeColor: palette(i)},
		})
		if p.Count > maxCount {
			maxCount = p.Count
		}
	}

	bc := chart.BarChart{
		Title:      title,
		Width:      width,
		Height:     height,
		BarWidth:   barWidth(len(points)),
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16}},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: float64(maxCount)},
			Ticks: countTicks(maxCount),
		},
		Bars: bars,
	}
	if err := bc.Render(escapedSVG, w); err != nil {
		return fmt.Errorf("charts: render bar chart: %w", err)
	}
	return nil
}

func renderPie(w io.Writer, title string, points []Point) error {
	values := make([]chart.Value, 0, len(points))
	for i, p := range points {
		if p.Count == 0 {
			continue
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%d)", p.Label, p.Count),
			Value: float64(p.Count),
			Style: chart.Style{FillColor: palette(i)},
		})
	}

	pc := chart.PieChart{
		Title:  title,
		Width:  width,
		Height: height,
		Values: values,
	}
	if err := pc.Render(escapedSVG, w); err != nil {
		return fmt.Errorf("charts: render pie chart: %w", err)
	}
	return nil
}

// escapingRenderer escapes text as it is written. go-chart's SVG canvas emits
// text nodes verbatim, and measuring and wrapping must still see the raw text.
type escapingRenderer struct {
	chart.Renderer
}

func (r escapingRenderer) Text(body string, x, y int) {
	r.Renderer.Text(html.EscapeString(body), x, y)
}

func escapedSVG(width, height int) (chart.Renderer, error) {
	r, err := chart.SVG(width, height)
	if err != nil {
		return nil, err
	}
	return escapingRenderer{Renderer: r}, nil
}

// countTicks yields whole-number ticks from 0 to maxCount, at most six.
func countTicks(maxCount int) []chart.Tick {
	step := int(math.Ceil(float64(maxCount) / 5))
	if step < 1 {
		step = 1
	}
	var ticks []chart.Tick
	for v := 0; v < maxCount; v += step {
		ticks = append(ticks, chart.Tick{Value: float64(v), Label: fmt.Sprintf("%d", v)})
	}
	return append(ticks, chart.Tick{Value: float64(maxCount), Label: fmt.Sprintf("%d", maxCount)})
}

func barWidth(n int) int {
	if n < 1 {
		return 60
	}
	bw := (width - 120) / (n * 2)
	switch {
	case bw > 60:
		return 60
	case bw < 8:
		return 8
	default:
		return bw
	}
}

func palette(i int) drawing.Color {
	return chart.GetDefaultColor(i)
}
