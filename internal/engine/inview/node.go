package inview

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/explorer/internal/adapters/fetchcache" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/explorer/internal/adapters/telemetry"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/explorer/internal/engine/reactive"
)

// NodeID is the unique identifier for the "currently in view" state Graft node.
const NodeID graft.ID = "engine.inview"

var _ EntityCache = (*fetchcache.Cache)(nil)

func init() {
	graft.Register(graft.Node[*State]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			telemetry.GraphNodeID,
			fetchcache.NodeID,
		},
		Run: func(ctx context.Context) (*State, error) {
			g, err := graft.Dep[*reactive.Graph](ctx)
			if err != nil {
				return nil, err
			}

			cache, err := graft.Dep[*fetchcache.Cache](ctx)
			if err != nil {
				return nil, err
			}

			return New(g, cache), nil
		},
	})
}
