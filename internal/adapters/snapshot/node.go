package snapshot

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/explorer/internal/adapters/config"
	"go.trai.ch/explorer/internal/core/domain"
	"go.trai.ch/explorer/internal/core/ports"
)

// NodeID is the unique identifier for the state store Graft node.
const NodeID graft.ID = "adapter.state_store"

func init() {
	graft.Register(graft.Node[ports.StateStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID},
		Run: func(ctx context.Context) (ports.StateStore, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(cfg.StatePath), nil
		},
	})
}
