package stacksapi

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/explorer/internal/adapters/config"
	"go.trai.ch/explorer/internal/core/domain"
	"go.trai.ch/explorer/internal/core/ports"
)

// NodeID is the unique identifier for the chain API Graft node.
const NodeID graft.ID = "adapter.stacksapi"

func init() {
	graft.Register(graft.Node[ports.ChainFetcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID},
		Run: func(ctx context.Context) (ports.ChainFetcher, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg.APIURL, cfg.APITimeout), nil
		},
	})
}
