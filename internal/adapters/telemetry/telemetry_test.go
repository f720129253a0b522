package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/explorer/internal/adapters/telemetry"
	"go.trai.ch/explorer/internal/core/ports"
	"go.trai.ch/explorer/internal/core/ports/mocks"
	"go.trai.ch/explorer/internal/engine/reactive"
	"go.uber.org/mock/gomock"
)

func TestInterfaceSatisfaction(_ *testing.T) {
	var _ ports.Tracer = (*telemetry.OTelTracer)(nil)
	var _ ports.Span = (*telemetry.OTelSpan)(nil)
	var _ reactive.Observer = (*telemetry.GraphObserver)(nil)
}

func TestOTelTracer_Attributes(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := telemetry.InstallProvider(sr)
	defer func() { _ = tp.Shutdown(context.Background()) }()

	tracer := telemetry.NewOTelTracer("test")
	_, span := tracer.Start(context.Background(), "fetch", ports.WithAttribute("kind", "block"))
	span.SetAttribute("attempt", 2)
	span.SetAttribute("ids", []string{"a", "b"})
	span.SetAttribute("other", struct{ N int }{3})
	span.RecordError(errors.New("boom"))
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	attrs := ended[0].Attributes()
	assert.Contains(t, attrs, attribute.String("kind", "block"))
	assert.Contains(t, attrs, attribute.Int("attempt", 2))
	assert.Contains(t, attrs, attribute.StringSlice("ids", []string{"a", "b"}))
	assert.Contains(t, attrs, attribute.String("other", "{3}"))
	assert.Equal(t, codes.Error, ended[0].Status().Code)
}

func TestGraphObserver_EmitsSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	tracer := mocks.NewMockTracer(ctrl)
	span := mocks.NewMockSpan(ctrl)
	errBoom := errors.New("boom")

	tracer.EXPECT().
		Start(gomock.Any(), telemetry.RecomputeSpanName, gomock.Any(), gomock.Any()).
		Return(context.Background(), span).
		Times(2)
	span.EXPECT().RecordError(errBoom)
	span.EXPECT().End().Times(2)

	obs := telemetry.NewGraphObserver(context.Background(), tracer)
	obs.OnRecompute("[currently in view] block", true, nil)
	obs.OnRecompute("[currently in view] contract info", false, errBoom)
}

func TestRecomputeCounter_CountsGraphRecomputes(t *testing.T) {
	counter := telemetry.NewRecomputeCounter()
	tp := telemetry.InstallProvider(counter)
	defer func() { _ = tp.Shutdown(context.Background()) }()

	obs := telemetry.NewGraphObserver(context.Background(), telemetry.NewOTelTracer("test"))
	g := reactive.New(reactive.WithObserver(obs))
	src := reactive.NewCell(g, "src", 1)
	parity := reactive.Derive(g, "parity", func(r *reactive.Reader) (bool, error) {
		return src.Read(r)%2 == 0, nil
	})
	failing := reactive.Derive(g, "failing", func(r *reactive.Reader) (int, error) {
		return 0, errors.New("always")
	})

	_, _ = parity.Get()
	src.Set(3)
	_, _ = parity.Get()
	_, _ = failing.Get()

	assert.Equal(t, telemetry.RecomputeStats{Recomputes: 2, Changes: 1}, counter.Stats("parity"))
	assert.Equal(t, telemetry.RecomputeStats{Recomputes: 1, Changes: 1, Failures: 1}, counter.Stats("failing"))
	assert.Zero(t, counter.Stats("src"))
}
