package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/explorer/internal/core/ports"
	"go.trai.ch/explorer/internal/engine/reactive"
)

const (
	// TracerNodeID is the unique identifier for the Telemetry adapter Graft node.
	TracerNodeID graft.ID = "adapter.telemetry"
	// CounterNodeID is the unique identifier for the recompute counter Graft node.
	CounterNodeID graft.ID = "adapter.telemetry.counter"
	// GraphNodeID is the unique identifier for the instrumented graph Graft node.
	GraphNodeID graft.ID = "adapter.telemetry.graph"
)

// InstrumentationName names the tracer of the explorer.
const InstrumentationName = "explorer"

func init() {
	graft.Register(graft.Node[*RecomputeCounter]{
		ID:        CounterNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*RecomputeCounter, error) {
			counter := NewRecomputeCounter()
			InstallProvider(counter)
			return counter, nil
		},
	})

	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{CounterNodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			// The provider must be installed before the tracer is obtained.
			if _, err := graft.Dep[*RecomputeCounter](ctx); err != nil {
				return nil, err
			}
			return NewOTelTracer(InstrumentationName), nil
		},
	})

	graft.Register(graft.Node[*reactive.Graph]{
		ID:        GraphNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{TracerNodeID},
		Run: func(ctx context.Context) (*reactive.Graph, error) {
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			observer := NewGraphObserver(context.Background(), tracer)
			return reactive.New(reactive.WithObserver(observer)), nil
		},
	})
}
