package modules

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"launch_dashboard/pkg/probe"
)

type ProbeServer struct {
	Name          string
	Version       string
	ListenAddress string
	DatasetRows   int
}

func (p ProbeServer) Run(ctx context.Context, g *errgroup.Group) {
	probeServer := probe.NewServer(
		p.ListenAddress,
		probe.Options{
			Name:        p.Name,
			Version:     p.Version,
			DatasetRows: p.DatasetRows,
		},
	)

	g.Go(func() error {
		if err := probeServer.Run(ctx); err != nil {
			return fmt.Errorf("probeServer.Run: %w", err)
		}

		return nil
	})
}
