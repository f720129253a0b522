package store

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/explorer/internal/adapters/logger"   //nolint:depguard // Wired in store wiring
	"go.trai.ch/explorer/internal/adapters/snapshot" //nolint:depguard // Wired in store wiring
	"go.trai.ch/explorer/internal/core/ports"
)

// NodeID is the unique identifier for the store Graft node.
const NodeID graft.ID = "store.root"

func init() {
	graft.Register(graft.Node[*Store]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			snapshot.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Store, error) {
			persisted, err := graft.Dep[ports.StateStore](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			s, err := Load(persisted)
			if err != nil {
				return nil, err
			}
			Persist(s, persisted, log)
			return s, nil
		},
	})
}
