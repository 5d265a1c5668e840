package application

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"launch_dashboard/internal/config"
	"launch_dashboard/internal/domain/entity"
	"launch_dashboard/pkg/metrics"
)

func testConfig() config.Config {
	return config.Config{
		App: config.App{Name: "launchdash", Version: "test", Debug: true, LogFieldMaxLen: 4096},
		Dataset: config.Dataset{
			Source:      config.DatasetSourceFile,
			Path:        "../infrastructure/dataset/testdata/launches.csv",
			Delimiter:   ",",
			PayloadMin:  0,
			PayloadMax:  10000,
			PayloadStep: 1000,
		},
	}
}

func TestLoadTableFromFile(t *testing.T) {
	rq := require.New(t)

	table, err := LoadTable(context.Background(), testConfig())
	rq.NoError(err)
	rq.Equal(16, table.Len())
	rq.Equal([]string{"CCAFS LC-40", "VAFB SLC-4E", "KSC LC-39A", "CCAFS SLC-40"}, table.Sites())
}

func TestLoadTableMissingFile(t *testing.T) {
	cfg := testConfig()
	cfg.Dataset.Path = "testdata/missing.csv"

	_, err := LoadTable(context.Background(), cfg)
	require.Error(t, err)
}

func TestHandler(t *testing.T) {
	rq := require.New(t)

	table, err := LoadTable(context.Background(), testConfig())
	rq.NoError(err)

	registry := prometheus.NewRegistry()
	collectors := metrics.NewCollectors(registry)

	handler, err := newHandler(context.Background(), testConfig(), table, collectors)
	rq.NoError(err)

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	resp, err := ts.Client().Post(
		ts.URL+"/api/v1/callbacks/"+entity.SuccessPieChartID,
		"application/json",
		strings.NewReader(`{"site":"ALL","payloadRange":[0,10000]}`),
	)
	rq.NoError(err)
	body, err := io.ReadAll(resp.Body)
	rq.NoError(err)
	rq.NoError(resp.Body.Close())

	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Contains(string(body), `"title":"Total Successful Launches by Site"`)
	rq.NotEmpty(resp.Header.Get("X-Trace-Id"))

	resp, err = ts.Client().Get(ts.URL + "/charts/" + entity.PayloadScatterChartID + ".svg?min=2000&max=6000")
	rq.NoError(err)
	rq.NoError(resp.Body.Close())
	rq.Equal(http.StatusOK, resp.StatusCode)

	invocations, err := testutil.GatherAndCount(registry, "launchdash_callback_invocations_total")
	rq.NoError(err)
	rq.Equal(2, invocations)

	requests, err := testutil.GatherAndCount(registry, "launchdash_http_requests_total")
	rq.NoError(err)
	rq.Equal(2, requests)
}

func TestRenderStats(t *testing.T) {
	rq := require.New(t)

	out := renderStats([]entity.SiteStats{
		{
			Site: "CCAFS LC-40", Launches: 4, Successes: 3, Failures: 1, SuccessRate: 0.75,
			MinPayloadKg: 0, MaxPayloadKg: 4700, MeanPayloadKg: 1306.25,
		},
		{
			Site: "KSC LC-39A", Launches: 1, Successes: 1, SuccessRate: 1,
			MinPayloadKg: 2490, MaxPayloadKg: 2490, MeanPayloadKg: 2490,
		},
	})

	rq.Contains(out, "CCAFS LC-40")
	rq.Contains(out, "KSC LC-39A")
	rq.Contains(out, "75.0%")
	rq.Contains(out, "80.0%")
	rq.Contains(out, "1306")
}
