package callback

import (
	"context"
	"fmt"

	"launch_dashboard/internal/domain/entity"
	"launch_dashboard/internal/domain/value"
)

type dashboardService interface {
	SuccessPie(site value.SiteSelection) entity.PieChart
	PayloadScatter(site value.SiteSelection, payload value.PayloadRange) entity.ScatterChart
}

// RegisterDashboard binds the two dashboard graphs to their controls: the pie
// follows the site dropdown, the scatter follows the dropdown and the payload
// slider.
func RegisterDashboard(r *Registry, dash dashboardService) error {
	callbacks := []Callback{
		{
			Output:   entity.SuccessPieChartID,
			Triggers: []ControlID{entity.SiteDropdownID},
			Handle: func(_ context.Context, s Snapshot) (entity.Figure, error) {
				return dash.SuccessPie(s.Site), nil
			},
		},
		{
			Output:   entity.PayloadScatterChartID,
			Triggers: []ControlID{entity.SiteDropdownID, entity.PayloadSliderID},
			Handle: func(_ context.Context, s Snapshot) (entity.Figure, error) {
				return dash.PayloadScatter(s.Site, s.Payload), nil
			},
		},
	}

	for _, cb := range callbacks {
		if err := r.Register(cb); err != nil {
			return fmt.Errorf("registry.Register: %w", err)
		}
	}

	return nil
}
