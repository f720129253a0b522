package telemetry

import (
	"context"

	"go.trai.ch/explorer/internal/core/ports"
	"go.trai.ch/explorer/internal/engine/reactive"
)

const (
	// RecomputeSpanName is the name of the span emitted for every derived node recomputation.
	RecomputeSpanName = "recompute"
	// AttrNode holds the debug label of the recomputed node.
	AttrNode = "node"
	// AttrChanged reports whether the recomputed value differed from the previous one.
	AttrChanged = "changed"
)

var _ reactive.Observer = (*GraphObserver)(nil)

// GraphObserver turns graph recomputations into spans.
type GraphObserver struct {
	ctx    context.Context
	tracer ports.Tracer
}

// NewGraphObserver creates an observer starting its spans under ctx.
func NewGraphObserver(ctx context.Context, tracer ports.Tracer) *GraphObserver {
	return &GraphObserver{ctx: ctx, tracer: tracer}
}

// OnRecompute emits one span for the recomputation of label.
func (o *GraphObserver) OnRecompute(label string, changed bool, err error) {
	_, span := o.tracer.Start(o.ctx, RecomputeSpanName,
		ports.WithAttribute(AttrNode, label),
		ports.WithAttribute(AttrChanged, changed),
	)
	if err != nil {
		span.RecordError(err)
	}
	span.End()
}
