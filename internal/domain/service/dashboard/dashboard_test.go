package dashboard_test

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"launch_dashboard/internal/domain/entity"
	"launch_dashboard/internal/domain/service/dashboard"
	"launch_dashboard/internal/domain/value"
	"launch_dashboard/pkg/tests"
)

const (
	siteLC40  = "CCAFS LC-40"
	siteSLC4E = "VAFB SLC-4E"
	siteLC39A = "KSC LC-39A"
	siteSLC40 = "CCAFS SLC-40"
)

func record(site string, payload float64, booster string, outcome value.Outcome) entity.LaunchRecord {
	return entity.LaunchRecord{
		LaunchSite:             site,
		PayloadMassKg:          payload,
		BoosterVersionCategory: booster,
		Outcome:                outcome,
	}
}

// Ten rows, three of them at CCAFS LC-40 with outcomes 1, 1, 0.
func fixtureTable(t *testing.T) *entity.Table {
	t.Helper()

	table, err := entity.NewTable([]entity.LaunchRecord{
		record(siteLC40, 0, "v1.0", value.OutcomeSuccess),
		record(siteLC40, 525, "v1.0", value.OutcomeSuccess),
		record(siteSLC4E, 500, "v1.1", value.OutcomeFailure),
		record(siteLC39A, 2490, "FT", value.OutcomeSuccess),
		record(siteLC39A, 5300, "FT", value.OutcomeSuccess),
		record(siteLC40, 4700, "v1.1", value.OutcomeFailure),
		record(siteSLC40, 3600, "FT", value.OutcomeSuccess),
		record(siteSLC40, 9600, "B4", value.OutcomeFailure),
		record(siteSLC4E, 9600, "B5", value.OutcomeSuccess),
		record(siteLC39A, 10000, "B5", value.OutcomeFailure),
	})
	require.NoError(t, err)

	return table
}

func TestSuccessPieAllSites(t *testing.T) {
	rq := require.New(t)

	dash := dashboard.New(fixtureTable(t))

	got := dash.SuccessPie(value.AllSites)

	want := entity.PieChart{
		Title: "Total Successful Launches by Site",
		Slices: []entity.PieSlice{
			{Key: siteLC40, Label: siteLC40, Value: 2},
			{Key: siteLC39A, Label: siteLC39A, Value: 2},
			{Key: siteSLC40, Label: siteSLC40, Value: 1},
			{Key: siteSLC4E, Label: siteSLC4E, Value: 1},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("SuccessPie(ALL) mismatch (-want +got):\n%s", diff)
	}

	rq.Equal(6, got.Total())
}

func TestSuccessPieSingleSite(t *testing.T) {
	rq := require.New(t)

	dash := dashboard.New(fixtureTable(t))

	got := dash.SuccessPie(siteLC40)

	rq.Equal("Success vs. Failure for CCAFS LC-40", got.Title)
	rq.Equal([]entity.PieSlice{
		{Key: "1", Label: "success", Value: 2},
		{Key: "0", Label: "failure", Value: 1},
	}, got.Slices)
	rq.Equal(3, got.Total())
}

func TestSuccessPieUnknownSite(t *testing.T) {
	rq := require.New(t)

	dash := dashboard.New(fixtureTable(t))

	for _, site := range []value.SiteSelection{"Boca Chica", "", "all"} {
		got := dash.SuccessPie(site)

		rq.True(got.IsEmpty(), "site %q", site)
		rq.NotNil(got.Slices)
		rq.Zero(got.Total())
	}
}

func TestPayloadScatter(t *testing.T) {
	rq := require.New(t)

	dash := dashboard.New(fixtureTable(t))

	testCases := []struct {
		name    string
		site    value.SiteSelection
		payload value.PayloadRange
		want    []entity.ScatterSeries
	}{
		{
			name:    "All sites full range",
			site:    value.AllSites,
			payload: value.PayloadRange{Min: 0, Max: 10000},
			want: []entity.ScatterSeries{
				{Name: "v1.0", Points: []entity.ScatterPoint{{X: 0, Y: 1}, {X: 525, Y: 1}}},
				{Name: "v1.1", Points: []entity.ScatterPoint{{X: 500, Y: 0}, {X: 4700, Y: 0}}},
				{Name: "FT", Points: []entity.ScatterPoint{{X: 2490, Y: 1}, {X: 5300, Y: 1}, {X: 3600, Y: 1}}},
				{Name: "B4", Points: []entity.ScatterPoint{{X: 9600, Y: 0}}},
				{Name: "B5", Points: []entity.ScatterPoint{{X: 9600, Y: 1}, {X: 10000, Y: 0}}},
			},
		},
		{
			name:    "Bounds are inclusive",
			site:    siteLC40,
			payload: value.PayloadRange{Min: 525, Max: 4700},
			want: []entity.ScatterSeries{
				{Name: "v1.0", Points: []entity.ScatterPoint{{X: 525, Y: 1}}},
				{Name: "v1.1", Points: []entity.ScatterPoint{{X: 4700, Y: 0}}},
			},
		},
		{
			name:    "Inverted range",
			site:    value.AllSites,
			payload: value.PayloadRange{Min: 10000, Max: 0},
			want:    []entity.ScatterSeries{},
		},
		{
			name:    "Unknown site",
			site:    "Boca Chica",
			payload: value.PayloadRange{Min: 0, Max: 10000},
			want:    []entity.ScatterSeries{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := dash.PayloadScatter(tc.site, tc.payload)

			rq.Equal("Payload Mass vs. Success by Booster Version Category", got.Title)
			rq.Equal("Payload Mass (kg)", got.XLabel)
			rq.Equal("Success (1) / Failure (0)", got.YLabel)

			if diff := cmp.Diff(tc.want, got.Series); diff != "" {
				t.Fatalf("PayloadScatter series mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPayloadScatterAllRowsInFullRange(t *testing.T) {
	rq := require.New(t)

	table := fixtureTable(t)
	dash := dashboard.New(table)

	got := dash.PayloadScatter(value.AllSites, value.PayloadRange{Min: 0, Max: 10000})

	rq.Equal(table.Len(), got.PointCount())
}

// Checks the aggregation invariants over random tables and control values.
func TestFiguresProperties(t *testing.T) {
	const (
		seed       = 20261018
		iterations = 200
	)

	rq := require.New(t)
	random := tests.NewSeededRandomizer(seed)

	sites := []string{siteLC40, siteSLC4E, siteLC39A, siteSLC40}
	boosters := []string{"v1.0", "v1.1", "FT", "B4", "B5"}
	selections := []value.SiteSelection{value.AllSites, siteLC40, siteSLC4E, siteLC39A, siteSLC40, "nowhere"}

	for i := 0; i < iterations; i++ {
		records := make([]entity.LaunchRecord, random.Intn(40))
		for j := range records {
			outcome := value.OutcomeFailure
			if random.Bool() {
				outcome = value.OutcomeSuccess
			}

			records[j] = record(
				tests.Pick(random, sites),
				float64(random.Intn(10001)),
				tests.Pick(random, boosters),
				outcome,
			)
		}

		table, err := entity.NewTable(records)
		rq.NoError(err)

		dash := dashboard.New(table)
		site := tests.Pick(random, selections)
		lo, hi := float64(random.Intn(10001)), float64(random.Intn(10001))
		payload := value.PayloadRange{Min: lo, Max: hi}

		pie := dash.SuccessPie(site)

		if site.IsAll() {
			successes := table.Filter(func(r entity.LaunchRecord) bool { return r.Outcome == value.OutcomeSuccess })
			rq.Equal(len(successes), pie.Total(), "seed %d iteration %d", seed, i)
		} else {
			atSite := table.Filter(func(r entity.LaunchRecord) bool { return r.LaunchSite == site.String() })
			rq.Equal(len(atSite), pie.Total(), "seed %d iteration %d", seed, i)
			rq.LessOrEqual(len(pie.Slices), 2)

			for _, slice := range pie.Slices {
				rq.Contains([]string{"0", "1"}, slice.Key)
			}
		}

		scatter := dash.PayloadScatter(site, payload)

		matching := table.Filter(func(r entity.LaunchRecord) bool {
			return site.Matches(r.LaunchSite) && r.PayloadMassKg >= lo && r.PayloadMassKg <= hi
		})
		rq.Equal(len(matching), scatter.PointCount(), "seed %d iteration %d", seed, i)

		for _, series := range scatter.Series {
			for _, point := range series.Points {
				rq.GreaterOrEqual(point.X, lo)
				rq.LessOrEqual(point.X, hi)
			}
		}

		rq.Equal(pie, dash.SuccessPie(site))
		rq.Equal(scatter, dash.PayloadScatter(site, payload))
	}
}

func TestCachedFiguresMatchUncached(t *testing.T) {
	rq := require.New(t)

	table := fixtureTable(t)
	plain := dashboard.New(table)
	cached := dashboard.New(table).WithCache(time.Minute)

	payload := value.PayloadRange{Min: 1000, Max: 9600}

	for _, site := range []value.SiteSelection{value.AllSites, siteLC39A, "nowhere"} {
		rq.Equal(plain.SuccessPie(site), cached.SuccessPie(site))
		rq.Equal(cached.SuccessPie(site), cached.SuccessPie(site))
		rq.Equal(plain.PayloadScatter(site, payload), cached.PayloadScatter(site, payload))
		rq.Equal(cached.PayloadScatter(site, payload), cached.PayloadScatter(site, payload))
	}

	// Editing a returned figure must not leak into later calls.
	pie := cached.SuccessPie(value.AllSites)
	rq.Equal(6, pie.Total())
	pie.Slices[0].Value = 999
	pie.Slices = append(pie.Slices, entity.PieSlice{Key: "x", Label: "x", Value: 1})
	rq.Equal(6, cached.SuccessPie(value.AllSites).Total())
	rq.Equal(plain.SuccessPie(value.AllSites), cached.SuccessPie(value.AllSites))

	scatter := cached.PayloadScatter(value.AllSites, payload)
	rq.NotEmpty(scatter.Series)
	scatter.Series[0].Points[0].X = -1
	scatter.Series[0].Name = "tampered"
	rq.Equal(plain.PayloadScatter(value.AllSites, payload), cached.PayloadScatter(value.AllSites, payload))
}

func TestLayout(t *testing.T) {
	rq := require.New(t)

	layout := dashboard.New(fixtureTable(t)).Layout()

	rq.Equal("SpaceX Launch Records Dashboard", layout.Title)
	rq.Equal(entity.SiteDropdownID, layout.SiteDropdown.ID)
	rq.Equal(value.AllSites, layout.SiteDropdown.Value)
	rq.True(layout.SiteDropdown.Searchable)
	rq.Equal([]entity.Option{
		{Label: "All Sites", Value: "ALL"},
		{Label: siteLC40, Value: siteLC40},
		{Label: siteSLC4E, Value: siteSLC4E},
		{Label: siteLC39A, Value: siteLC39A},
		{Label: siteSLC40, Value: siteSLC40},
	}, layout.SiteDropdown.Options)

	slider := layout.PayloadSlider
	rq.Equal(entity.PayloadSliderID, slider.ID)
	rq.Equal([2]float64{0, 10000}, slider.Value)
	rq.Equal(1000.0, slider.Step)
	rq.Len(slider.Marks, 11)
	rq.Equal(entity.SliderMark{Value: 10000, Label: "10000"}, slider.Marks[10])

	rq.Equal(entity.SuccessPieChartID, layout.PieGraph.ID)
	rq.Equal(entity.PayloadScatterChartID, layout.ScatterGraph.ID)
}

func TestLayoutCustomSlider(t *testing.T) {
	rq := require.New(t)

	layout := dashboard.New(fixtureTable(t)).
		WithSlider(dashboard.SliderBounds{Min: 0, Max: 2500, Step: 0}).
		Layout()

	rq.Equal([]entity.SliderMark{{Value: 0, Label: "0"}, {Value: 2500, Label: "2500"}}, layout.PayloadSlider.Marks)
}

func TestLayoutSliderMarks(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name   string
		bounds dashboard.SliderBounds
		want   int
	}{
		{name: "Partial last step", bounds: dashboard.SliderBounds{Min: 0, Max: 2500, Step: 1000}, want: 3},
		{name: "Exactly at cap", bounds: dashboard.SliderBounds{Min: 0, Max: 999, Step: 1}, want: 1000},
		{name: "Above cap", bounds: dashboard.SliderBounds{Min: 0, Max: 10000, Step: 1e-9}, want: 2},
		{name: "Infinite max", bounds: dashboard.SliderBounds{Min: 0, Max: math.Inf(1), Step: 1000}, want: 2},
		{name: "NaN step", bounds: dashboard.SliderBounds{Min: 0, Max: 10000, Step: math.NaN()}, want: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			layout := dashboard.New(fixtureTable(t)).WithSlider(tc.bounds).Layout()
			rq.Len(layout.PayloadSlider.Marks, tc.want)
		})
	}
}

func TestSiteStats(t *testing.T) {
	rq := require.New(t)

	stats := dashboard.New(fixtureTable(t)).SiteStats()

	rq.Len(stats, 4)
	rq.Equal(entity.SiteStats{
		Site:          siteLC40,
		Launches:      3,
		Successes:     2,
		Failures:      1,
		SuccessRate:   2.0 / 3.0,
		MinPayloadKg:  0,
		MaxPayloadKg:  4700,
		MeanPayloadKg: (0 + 525 + 4700) / 3.0,
	}, stats[0])
	rq.Equal(siteSLC40, stats[3].Site)
}
