package render

import (
	"bytes"
	"fmt"
	"html"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"

	"launch_dashboard/internal/domain"
	"launch_dashboard/internal/domain/entity"
	"launch_dashboard/pkg/errcodes"
)

const (
	defaultWidth  = 960
	defaultHeight = 480
	dotWidth      = 5
	minXPadding   = 1.0
	xPaddingRatio = 0.05
)

// Renderer turns figures into SVG documents.
type Renderer struct {
	width  int
	height int
}

func NewRenderer(width, height int) Renderer {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	return Renderer{width: width, height: height}
}

func (r Renderer) Render(figure entity.Figure) ([]byte, error) {
	switch f := figure.(type) {
	case entity.PieChart:
		return r.Pie(f)
	case entity.ScatterChart:
		return r.Scatter(f)
	default:
		return nil, domain.NewError(errcodes.ChartRenderFailed, fmt.Sprintf("unsupported figure %T", figure))
	}
}

func (r Renderer) Pie(figure entity.PieChart) ([]byte, error) {
	if figure.IsEmpty() {
		return r.placeholder(figure.Title), nil
	}

	values := make([]chart.Value, len(figure.Slices))
	for i, slice := range figure.Slices {
		values[i] = chart.Value{
			Value: float64(slice.Value),
			Label: fmt.Sprintf("%s (%d)", slice.Label, slice.Value),
		}
	}

	pie := chart.PieChart{
		Title:  figure.Title,
		Width:  r.height,
		Height: r.height,
		Values: values,
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.SVG, &buf); err != nil {
		return nil, domain.WrapError(err, errcodes.ChartRenderFailed, "render pie chart")
	}

	return buf.Bytes(), nil
}

// Scatter draws one dot-only series per booster category. The y axis is
// pinned to the two outcome values.
func (r Renderer) Scatter(figure entity.ScatterChart) ([]byte, error) {
	if figure.IsEmpty() {
		return r.placeholder(figure.Title), nil
	}

	series := make([]chart.Series, 0, len(figure.Series))
	xMin, xMax := math.Inf(1), math.Inf(-1)

	for i, s := range figure.Series {
		xs := make([]float64, len(s.Points))
		ys := make([]float64, len(s.Points))

		for j, p := range s.Points {
			xs[j], ys[j] = p.X, p.Y
			xMin, xMax = math.Min(xMin, p.X), math.Max(xMax, p.X)
		}

		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style:   pointStyle(i),
		})
	}

	pad := math.Max(minXPadding, (xMax-xMin)*xPaddingRatio)

	ch := chart.Chart{
		Title:  figure.Title,
		Width:  r.width,
		Height: r.height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis: chart.XAxis{
			Name:  figure.XLabel,
			Range: &chart.ContinuousRange{Min: math.Max(0, xMin-pad), Max: xMax + pad},
		},
		YAxis: chart.YAxis{
			Name:  figure.YLabel,
			Range: &chart.ContinuousRange{Min: -0.25, Max: 1.25},
			Ticks: []chart.Tick{{Value: 0, Label: "0"}, {Value: 1, Label: "1"}},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.SVG, &buf); err != nil {
		return nil, domain.WrapError(err, errcodes.ChartRenderFailed, "render scatter chart")
	}

	return buf.Bytes(), nil
}

func pointStyle(index int) chart.Style {
	color := chart.GetDefaultColor(index)

	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    dotWidth,
		DotColor:    color,
		StrokeColor: color,
	}
}

// go-chart refuses to draw without values, so empty figures get a titled
// blank canvas.
func (r Renderer) placeholder(title string) []byte {
	return []byte(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+
			`<rect width="100%%" height="100%%" fill="#ffffff"/>`+
			`<text x="50%%" y="32" text-anchor="middle" font-family="sans-serif" font-size="16">%s</text>`+
			`<text x="50%%" y="50%%" text-anchor="middle" font-family="sans-serif" font-size="13" fill="#888888">No data</text>`+
			`</svg>`,
		r.width, r.height, r.width, r.height, html.EscapeString(title),
	))
}
