package application

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"launch_dashboard/internal/config"
	"launch_dashboard/internal/domain/entity"
)

// Stats prints one row per launch site plus a totals footer.
func Stats(ctx context.Context, cfg config.Config, w io.Writer) error {
	launches, err := LoadTable(ctx, cfg)
	if err != nil {
		return fmt.Errorf("LoadTable: %w", err)
	}

	stats := newDashboard(cfg.Dataset, launches).SiteStats()

	if _, err = io.WriteString(w, renderStats(stats)+"\n"); err != nil {
		return fmt.Errorf("io.WriteString: %w", err)
	}

	return nil
}

func renderStats(stats []entity.SiteStats) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Site", "Launches", "Successes", "Failures", "Success rate", "Min kg", "Max kg", "Mean kg"})

	var launches, successes, failures int

	for _, s := range stats {
		tw.AppendRow(table.Row{
			s.Site,
			s.Launches,
			s.Successes,
			s.Failures,
			percent(s.SuccessRate),
			kilograms(s.MinPayloadKg),
			kilograms(s.MaxPayloadKg),
			kilograms(s.MeanPayloadKg),
		})

		launches += s.Launches
		successes += s.Successes
		failures += s.Failures
	}

	rate := 0.0
	if launches > 0 {
		rate = float64(successes) / float64(launches)
	}

	tw.AppendFooter(table.Row{"Total", launches, successes, failures, percent(rate)})

	right := make([]table.ColumnConfig, 0)
	for column := 2; column <= 8; column++ {
		right = append(right, table.ColumnConfig{Number: column, Align: text.AlignRight}) //nolint:exhaustruct
	}

	tw.SetColumnConfigs(right)

	return tw.Render()
}

func percent(ratio float64) string {
	return strconv.FormatFloat(ratio*100, 'f', 1, 64) + "%" //nolint:mnd
}

func kilograms(mass float64) string {
	return strconv.FormatFloat(mass, 'f', 0, 64)
}
