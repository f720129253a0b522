package telemetry

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// RecomputeStats is what RecomputeCounter knows about one node.
type RecomputeStats struct {
	Recomputes int
	Changes    int
	Failures   int
}

// RecomputeCounter is an sdktrace.SpanProcessor aggregating recompute spans per node.
type RecomputeCounter struct {
	mu    sync.Mutex
	stats map[string]RecomputeStats
}

// NewRecomputeCounter returns an empty RecomputeCounter.
func NewRecomputeCounter() *RecomputeCounter {
	return &RecomputeCounter{stats: make(map[string]RecomputeStats)}
}

// OnStart does nothing.
func (c *RecomputeCounter) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd counts finished recompute spans.
func (c *RecomputeCounter) OnEnd(s sdktrace.ReadOnlySpan) {
	if s.Name() != RecomputeSpanName {
		return
	}

	var (
		node    string
		changed bool
	)
	for _, kv := range s.Attributes() {
		switch string(kv.Key) {
		case AttrNode:
			node = kv.Value.AsString()
		case AttrChanged:
			changed = kv.Value.AsBool()
		}
	}
	if node == "" {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	st := c.stats[node]
	st.Recomputes++
	if changed {
		st.Changes++
	}
	if s.Status().Code == codes.Error {
		st.Failures++
	}
	c.stats[node] = st
}

// Stats returns the counters of one node.
func (c *RecomputeCounter) Stats(node string) RecomputeStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats[node]
}

// ForceFlush does nothing.
func (c *RecomputeCounter) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (c *RecomputeCounter) Shutdown(_ context.Context) error {
	return nil
}

// InstallProvider makes an SDK tracer provider with the given processors the global one.
func InstallProvider(processors ...sdktrace.SpanProcessor) *sdktrace.TracerProvider {
	opts := make([]sdktrace.TracerProviderOption, 0, len(processors))
	for _, p := range processors {
		opts = append(opts, sdktrace.WithSpanProcessor(p))
	}
	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	return tp
}
