package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/explorer/internal/adapters/config"     //nolint:depguard // Wired in app layer
	"go.trai.ch/explorer/internal/adapters/fetchcache" //nolint:depguard // Wired in app layer
	"go.trai.ch/explorer/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"go.trai.ch/explorer/internal/adapters/telemetry"  //nolint:depguard // Wired in app layer
	"go.trai.ch/explorer/internal/core/domain"
	"go.trai.ch/explorer/internal/core/ports"
	"go.trai.ch/explorer/internal/engine/inview"
	"go.trai.ch/explorer/internal/store"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.ConfigNodeID,
			fetchcache.NodeID,
			inview.NodeID,
			logger.NodeID,
			store.NodeID,
			telemetry.CounterNodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.ConfigNodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	cache, err := graft.Dep[*fetchcache.Cache](ctx)
	if err != nil {
		return nil, err
	}

	state, err := graft.Dep[*inview.State](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	st, err := graft.Dep[*store.Store](ctx)
	if err != nil {
		return nil, err
	}

	counter, err := graft.Dep[*telemetry.RecomputeCounter](ctx)
	if err != nil {
		return nil, err
	}

	return New(state, cache, st, log, counter, cfg.PageSize), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
		Config: cfg,
	}, nil
}
