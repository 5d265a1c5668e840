package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"launch_dashboard/internal/domain/entity"
	"launch_dashboard/internal/infrastructure/render"
)

func TestRendererRender(t *testing.T) {
	rq := require.New(t)

	renderer := render.NewRenderer(0, 0)

	testCases := []struct {
		name        string
		figure      entity.Figure
		placeholder bool
	}{
		{
			name: "Pie with several slices",
			figure: entity.PieChart{
				Title: "Total Successful Launches by Site",
				Slices: []entity.PieSlice{
					{Key: "KSC LC-39A", Label: "KSC LC-39A", Value: 10},
					{Key: "CCAFS LC-40", Label: "CCAFS LC-40", Value: 7},
				},
			},
		},
		{
			name: "Pie with one slice",
			figure: entity.PieChart{
				Title:  "Success vs. Failure for VAFB SLC-4E",
				Slices: []entity.PieSlice{{Key: "0", Label: "failure", Value: 3}},
			},
		},
		{
			name:        "Empty pie",
			figure:      entity.PieChart{Title: "Success vs. Failure for Boca Chica", Slices: []entity.PieSlice{}},
			placeholder: true,
		},
		{
			name: "Scatter",
			figure: entity.ScatterChart{
				Title:  "Payload Mass vs. Success by Booster Version Category",
				XLabel: "Payload Mass (kg)",
				YLabel: "Success (1) / Failure (0)",
				Series: []entity.ScatterSeries{
					{Name: "FT", Points: []entity.ScatterPoint{{X: 2490, Y: 1}, {X: 5300, Y: 0}}},
					{Name: "B5", Points: []entity.ScatterPoint{{X: 9600, Y: 1}}},
				},
			},
		},
		{
			name: "Scatter with a single point",
			figure: entity.ScatterChart{
				Title:  "Payload Mass vs. Success by Booster Version Category",
				Series: []entity.ScatterSeries{{Name: "v1.0", Points: []entity.ScatterPoint{{X: 0, Y: 0}}}},
			},
		},
		{
			name:        "Empty scatter",
			figure:      entity.ScatterChart{Title: "Payload <none>", Series: []entity.ScatterSeries{}},
			placeholder: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			out, err := renderer.Render(tc.figure)
			rq.NoError(err)

			svg := string(out)
			rq.True(strings.HasPrefix(svg, "<svg"), svg)
			rq.Contains(svg, "</svg>")

			if tc.placeholder {
				rq.Contains(svg, "No data")
			} else {
				rq.NotContains(svg, "No data")
			}
		})
	}
}

func TestPlaceholderEscapesTitle(t *testing.T) {
	rq := require.New(t)

	out, err := render.NewRenderer(320, 200).Scatter(entity.ScatterChart{Title: "<b>&"})
	rq.NoError(err)

	rq.Contains(string(out), "&lt;b&gt;&amp;")
	rq.Contains(string(out), `width="320" height="200"`)
}
