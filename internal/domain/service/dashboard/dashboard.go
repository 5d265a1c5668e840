package dashboard

import (
	"cmp"
	"math"
	"slices"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/samber/lo"

	"launch_dashboard/internal/domain/entity"
	"launch_dashboard/internal/domain/value"
)

const (
	pageTitle         = "SpaceX Launch Records Dashboard"
	allSitesPieTitle  = "Total Successful Launches by Site"
	siteSlicesTitle   = "Success vs. Failure for "
	scatterTitle      = "Payload Mass vs. Success by Booster Version Category"
	scatterXLabel     = "Payload Mass (kg)"
	scatterYLabel     = "Success (1) / Failure (0)"
	sliderLabel       = "Payload range (Kg):"
	allSitesLabel     = "All Sites"
	sitePlaceholder   = "Select a Launch Site here"
	cacheCleanupRatio = 2
	maxSliderMarks    = 1000

	defaultPayloadMin  = 0
	defaultPayloadMax  = 10000
	defaultPayloadStep = 1000
)

// Dashboard computes every figure of the page from an immutable table. All
// figure methods are pure: the same inputs always give the same figure.
type Dashboard struct {
	table  *entity.Table
	slider SliderBounds
	memo   *cache.Cache
}

type SliderBounds struct {
	Min  float64
	Max  float64
	Step float64
}

func New(table *entity.Table) *Dashboard {
	return &Dashboard{
		table: table,
		slider: SliderBounds{
			Min:  defaultPayloadMin,
			Max:  defaultPayloadMax,
			Step: defaultPayloadStep,
		},
	}
}

func (d *Dashboard) WithSlider(bounds SliderBounds) *Dashboard {
	d.slider = bounds
	return d
}

// WithCache memoizes figures for ttl. A non-positive ttl leaves memoization
// off.
func (d *Dashboard) WithCache(ttl time.Duration) *Dashboard {
	if ttl > 0 {
		d.memo = cache.New(ttl, cacheCleanupRatio*ttl)
	}
	return d
}

func (d *Dashboard) Table() *entity.Table {
	return d.table
}

// SuccessPie aggregates outcomes for the pie chart. For AllSites it counts
// successful launches per site, otherwise it counts outcomes of the selected
// site. Categories with no records produce no slice.
func (d *Dashboard) SuccessPie(site value.SiteSelection) entity.PieChart {
	key := "pie|" + strconv.Quote(site.String())

	return memoized(d, key, entity.PieChart.Clone, func() entity.PieChart {
		if site.IsAll() {
			return d.successesBySite()
		}

		return d.outcomesForSite(site)
	})
}

func (d *Dashboard) successesBySite() entity.PieChart {
	successes := d.table.Filter(func(r entity.LaunchRecord) bool {
		return r.Outcome == value.OutcomeSuccess
	})

	counts := lo.CountValuesBy(successes, func(r entity.LaunchRecord) string {
		return r.LaunchSite
	})

	return entity.PieChart{
		Title: allSitesPieTitle,
		Slices: sortSlices(lo.MapToSlice(counts, func(site string, count int) entity.PieSlice {
			return entity.PieSlice{Key: site, Label: site, Value: count}
		})),
	}
}

func (d *Dashboard) outcomesForSite(site value.SiteSelection) entity.PieChart {
	records := d.table.Filter(func(r entity.LaunchRecord) bool {
		return r.LaunchSite == site.String()
	})

	counts := lo.CountValuesBy(records, func(r entity.LaunchRecord) value.Outcome {
		return r.Outcome
	})

	return entity.PieChart{
		Title: siteSlicesTitle + site.String(),
		Slices: sortSlices(lo.MapToSlice(counts, func(outcome value.Outcome, count int) entity.PieSlice {
			return entity.PieSlice{Key: outcome.Key(), Label: outcome.Label(), Value: count}
		})),
	}
}

// Largest slice first, ties broken by key so that map iteration order never
// leaks into the figure.
func sortSlices(pie []entity.PieSlice) []entity.PieSlice {
	slices.SortFunc(pie, func(a, b entity.PieSlice) int {
		if c := cmp.Compare(b.Value, a.Value); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})

	return pie
}

// PayloadScatter plots outcome against payload mass for the records of the
// selected site whose payload lies in payload (bounds inclusive). Points are
// grouped by booster version category in order of first appearance.
func (d *Dashboard) PayloadScatter(site value.SiteSelection, payload value.PayloadRange) entity.ScatterChart {
	key := "scatter|" + strconv.Quote(site.String()) + "|" +
		strconv.FormatFloat(payload.Min, 'g', -1, 64) + "|" +
		strconv.FormatFloat(payload.Max, 'g', -1, 64)

	return memoized(d, key, entity.ScatterChart.Clone, func() entity.ScatterChart {
		records := d.table.Filter(func(r entity.LaunchRecord) bool {
			return site.Matches(r.LaunchSite) && payload.Contains(r.PayloadMassKg)
		})

		category := func(r entity.LaunchRecord) string { return r.BoosterVersionCategory }
		groups := lo.GroupBy(records, category)

		series := lo.Map(lo.Uniq(lo.Map(records, func(r entity.LaunchRecord, _ int) string {
			return category(r)
		})), func(name string, _ int) entity.ScatterSeries {
			return entity.ScatterSeries{
				Name: name,
				Points: lo.Map(groups[name], func(r entity.LaunchRecord, _ int) entity.ScatterPoint {
					return entity.ScatterPoint{X: r.PayloadMassKg, Y: r.Outcome.Float64()}
				}),
			}
		})

		return entity.ScatterChart{
			Title:  scatterTitle,
			XLabel: scatterXLabel,
			YLabel: scatterYLabel,
			Series: series,
		}
	})
}

// Layout describes the controls and graph placeholders of the page.
func (d *Dashboard) Layout() entity.Layout {
	options := []entity.Option{{Label: allSitesLabel, Value: value.AllSites}}
	for _, site := range d.table.Sites() {
		options = append(options, entity.Option{Label: site, Value: site})
	}

	return entity.Layout{
		Title: pageTitle,
		SiteDropdown: entity.Dropdown{
			ID:          entity.SiteDropdownID,
			Options:     options,
			Value:       value.AllSites,
			Placeholder: sitePlaceholder,
			Searchable:  true,
		},
		PieGraph: entity.Graph{ID: entity.SuccessPieChartID},
		PayloadSlider: entity.RangeSlider{
			ID:    entity.PayloadSliderID,
			Label: sliderLabel,
			Min:   d.slider.Min,
			Max:   d.slider.Max,
			Step:  d.slider.Step,
			Marks: sliderMarks(d.slider),
			Value: [2]float64{d.slider.Min, d.slider.Max},
		},
		ScatterGraph: entity.Graph{ID: entity.PayloadScatterChartID},
	}
}

func sliderMarks(bounds SliderBounds) []entity.SliderMark {
	mark := func(v float64) entity.SliderMark {
		return entity.SliderMark{Value: v, Label: strconv.FormatFloat(v, 'f', -1, 64)}
	}

	// Floor is NaN or +Inf for non-finite bounds; both fail the check.
	steps := math.Floor((bounds.Max - bounds.Min) / bounds.Step)
	if bounds.Step <= 0 || bounds.Max < bounds.Min || !(steps < maxSliderMarks) {
		return []entity.SliderMark{mark(bounds.Min), mark(bounds.Max)}
	}

	marks := make([]entity.SliderMark, 0, int(steps)+1)
	for i := 0; i <= int(steps); i++ {
		marks = append(marks, mark(bounds.Min+float64(i)*bounds.Step))
	}

	return marks
}

// SiteStats summarises every site in order of first appearance.
func (d *Dashboard) SiteStats() []entity.SiteStats {
	bySite := lo.GroupBy(d.table.Records(), func(r entity.LaunchRecord) string {
		return r.LaunchSite
	})

	return lo.Map(d.table.Sites(), func(site string, _ int) entity.SiteStats {
		records := bySite[site]
		payloads := lo.Map(records, func(r entity.LaunchRecord, _ int) float64 { return r.PayloadMassKg })
		successes := lo.CountBy(records, func(r entity.LaunchRecord) bool {
			return r.Outcome == value.OutcomeSuccess
		})

		return entity.SiteStats{
			Site:          site,
			Launches:      len(records),
			Successes:     successes,
			Failures:      len(records) - successes,
			SuccessRate:   float64(successes) / float64(len(records)),
			MinPayloadKg:  lo.Min(payloads),
			MaxPayloadKg:  lo.Max(payloads),
			MeanPayloadKg: lo.Mean(payloads),
		}
	})
}

// memoized hands out clones so that callers never share slices with the
// cached figure.
func memoized[F entity.Figure](d *Dashboard, key string, clone func(F) F, compute func() F) F {
	if d.memo == nil {
		return compute()
	}

	if cached, ok := d.memo.Get(key); ok {
		if figure, ok := cached.(F); ok {
			return clone(figure)
		}
	}

	figure := compute()
	d.memo.SetDefault(key, clone(figure))

	return figure
}
