package fetchcache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/explorer/internal/adapters/config"
	"go.trai.ch/explorer/internal/adapters/logger"
	"go.trai.ch/explorer/internal/adapters/stacksapi"
	"go.trai.ch/explorer/internal/adapters/telemetry"
	"go.trai.ch/explorer/internal/core/domain"
	"go.trai.ch/explorer/internal/core/ports"
	"go.trai.ch/explorer/internal/engine/reactive"
)

// NodeID is the unique identifier for the fetch cache Graft node.
const NodeID graft.ID = "adapter.fetchcache"

func init() {
	graft.Register(graft.Node[*Cache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.ConfigNodeID,
			logger.NodeID,
			stacksapi.NodeID,
			telemetry.GraphNodeID,
		},
		Run: func(ctx context.Context) (*Cache, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			fetcher, err := graft.Dep[ports.ChainFetcher](ctx)
			if err != nil {
				return nil, err
			}

			g, err := graft.Dep[*reactive.Graph](ctx)
			if err != nil {
				return nil, err
			}

			return New(g, fetcher, log, cfg.CacheSize)
		},
	})
}
