package server

import (
	"fmt"

	"launch_dashboard/internal/domain/entity"
	"launch_dashboard/internal/domain/value"
	"launch_dashboard/internal/transport/callback"
	"launch_dashboard/pkg/lox"
	"launch_dashboard/pkg/rest"
)

func newRESTLayout(layout entity.Layout, callbacks []callback.Callback) rest.Layout {
	return rest.Layout{
		Title: layout.Title,
		SiteDropdown: rest.Dropdown{
			ID: layout.SiteDropdown.ID,
			Options: lox.Map(layout.SiteDropdown.Options, func(o entity.Option) rest.Option {
				return rest.Option{Label: o.Label, Value: o.Value}
			}),
			Value:       layout.SiteDropdown.Value,
			Placeholder: layout.SiteDropdown.Placeholder,
			Searchable:  layout.SiteDropdown.Searchable,
		},
		PieGraph: rest.Graph{ID: layout.PieGraph.ID},
		PayloadSlider: rest.RangeSlider{
			ID:    layout.PayloadSlider.ID,
			Label: layout.PayloadSlider.Label,
			Min:   layout.PayloadSlider.Min,
			Max:   layout.PayloadSlider.Max,
			Step:  layout.PayloadSlider.Step,
			Marks: lox.Map(layout.PayloadSlider.Marks, func(m entity.SliderMark) rest.SliderMark {
				return rest.SliderMark{Value: m.Value, Label: m.Label}
			}),
			Value: layout.PayloadSlider.Value[:],
		},
		ScatterGraph: rest.Graph{ID: layout.ScatterGraph.ID},
		Callbacks:    newRESTCallbacks(callbacks),
	}
}

func newRESTCallbacks(callbacks []callback.Callback) []rest.Callback {
	return lox.Map(callbacks, func(cb callback.Callback) rest.Callback {
		return rest.Callback{
			Output:   string(cb.Output),
			Triggers: lox.Map(cb.Triggers, func(t callback.ControlID) string { return string(t) }),
		}
	})
}

func newSnapshot(request rest.CallbackRequest) (callback.Snapshot, error) {
	payload, err := value.NewPayloadRange(request.PayloadRange)
	if err != nil {
		return callback.Snapshot{}, fmt.Errorf("value.NewPayloadRange: %w", err)
	}

	return callback.Snapshot{
		Site:    value.SiteSelection(request.Site),
		Payload: payload,
	}, nil
}

func newRESTFigure(figure entity.Figure) rest.Figure {
	switch f := figure.(type) {
	case entity.PieChart:
		return rest.Figure{
			Kind:  string(f.Kind()),
			Title: f.Title,
			Empty: f.IsEmpty(),
			Slices: lox.Map(f.Slices, func(s entity.PieSlice) rest.PieSlice {
				return rest.PieSlice{Key: s.Key, Label: s.Label, Value: s.Value}
			}),
		}
	case entity.ScatterChart:
		series := lox.Map(f.Series, func(s entity.ScatterSeries) rest.ScatterSeries {
			return rest.ScatterSeries{
				Name: s.Name,
				Points: lox.Map(s.Points, func(p entity.ScatterPoint) rest.ScatterPoint {
					return rest.ScatterPoint{X: p.X, Y: p.Y}
				}),
			}
		})

		return rest.Figure{
			Kind:   string(f.Kind()),
			Title:  f.Title,
			Empty:  f.IsEmpty(),
			XLabel: f.XLabel,
			YLabel: f.YLabel,
			Series: series,
		}
	default:
		return rest.Figure{Kind: string(figure.Kind()), Empty: figure.IsEmpty()}
	}
}
