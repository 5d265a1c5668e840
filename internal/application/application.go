package application

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"launch_dashboard/internal/config"
	"launch_dashboard/internal/domain/entity"
	"launch_dashboard/internal/domain/service/dashboard"
	"launch_dashboard/internal/infrastructure/dataset"
	"launch_dashboard/internal/infrastructure/persistence"
	"launch_dashboard/internal/infrastructure/render"
	"launch_dashboard/internal/server"
	"launch_dashboard/internal/transport/callback"
	"launch_dashboard/pkg/application/connectors"
	"launch_dashboard/pkg/application/modules"
	"launch_dashboard/pkg/contextx"
	"launch_dashboard/pkg/logx"
	"launch_dashboard/pkg/metrics"
	"launch_dashboard/pkg/middlewarex"
)

const httpServerReadHeaderTimeout = 5 * time.Second

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Run loads the dataset once and serves the dashboard until ctx is done. A
// dataset that fails to load stops startup before any server listens.
func Run(ctx context.Context, cfg config.Config) error {
	table, err := LoadTable(ctx, cfg)
	if err != nil {
		return fmt.Errorf("LoadTable: %w", err)
	}

	collectors := metrics.NewCollectors(prometheus.DefaultRegisterer)
	collectors.SetDatasetRows(table.Len())

	handler, err := newHandler(ctx, cfg, table, collectors)
	if err != nil {
		return fmt.Errorf("newHandler: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}.Run(ctx, g, &http.Server{
		//nolint:exhaustruct
		Addr:              cfg.HTTP.ListenAddress,
		Handler:           handler,
		ReadHeaderTimeout: httpServerReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	})

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.HTTP.ProbeListenAddress,
		DatasetRows:   table.Len(),
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.HTTP.MetricsListenAddress,
		Gatherer:      prometheus.DefaultGatherer,
	}.Run(ctx, g)

	logger(ctx).Info(
		"application started",
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	)

	if err = g.Wait(); err != nil {
		return fmt.Errorf("errgroup.Wait: %w", err)
	}

	return nil
}

// LoadTable reads the dataset from the configured source.
func LoadTable(ctx context.Context, cfg config.Config) (*entity.Table, error) {
	if cfg.Dataset.Source == config.DatasetSourcePostgres {
		pg := newPostgres(cfg.Postgres)
		defer pg.Close(ctx)

		table, err := persistence.NewLaunchRecordRepository(pg.Client(ctx)).Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("launchRecordRepository.Load: %w", err)
		}

		return table, nil
	}

	table, err := newCSVLoader(cfg.Dataset).Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("csvLoader.Load: %w", err)
	}

	return table, nil
}

// Import copies the CSV dataset into the launch_records table and returns the
// number of rows written.
func Import(ctx context.Context, cfg config.Config) (int, error) {
	table, err := newCSVLoader(cfg.Dataset).Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("csvLoader.Load: %w", err)
	}

	pg := newPostgres(cfg.Postgres)
	defer pg.Close(ctx)

	if err = persistence.NewLaunchRecordRepository(pg.Client(ctx)).Insert(ctx, table.Records()); err != nil {
		return 0, fmt.Errorf("launchRecordRepository.Insert: %w", err)
	}

	return table.Len(), nil
}

func newHandler(
	ctx context.Context,
	cfg config.Config,
	table *entity.Table,
	collectors *metrics.Collectors,
) (http.Handler, error) {
	dash := newDashboard(cfg.Dataset, table)

	registry := callback.NewRegistry(collectors)
	if err := callback.RegisterDashboard(registry, dash); err != nil {
		return nil, fmt.Errorf("callback.RegisterDashboard: %w", err)
	}

	srv := server.NewServer(
		server.NewDashboardServer(dash, registry, render.NewRenderer(0, 0)),
	)

	router := chi.NewRouter()
	router.Use(
		middlewarex.TraceID,
		middlewarex.Logger(logger(ctx)),
		middlewarex.Recovery,
		middlewarex.Metrics(collectors),
	)

	if cfg.App.Debug {
		masker := logx.NewSensitiveDataMasker()

		router.Use(
			middlewarex.RequestLogging(masker, cfg.App.LogFieldMaxLen),
			middlewarex.ResponseLogging(masker, cfg.App.LogFieldMaxLen),
		)
	}

	srv.RegisterRoutes(router)

	return router, nil
}

func newDashboard(cfg config.Dataset, table *entity.Table) *dashboard.Dashboard {
	return dashboard.New(table).
		WithSlider(dashboard.SliderBounds{
			Min:  cfg.PayloadMin,
			Max:  cfg.PayloadMax,
			Step: cfg.PayloadStep,
		}).
		WithCache(cfg.ChartCacheTTL)
}

func newCSVLoader(cfg config.Dataset) dataset.CSVLoader {
	return dataset.NewCSVLoader(cfg.Path, dataset.WithDelimiter(cfg.DelimiterRune()))
}

func newPostgres(cfg config.Postgres) *connectors.Postgres {
	return &connectors.Postgres{
		DSN:             cfg.DSN,
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	}
}
