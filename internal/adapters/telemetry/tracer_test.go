package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/waypoint/internal/adapters/telemetry"
	"go.trai.ch/waypoint/internal/core/domain"
	"go.trai.ch/waypoint/internal/core/ports"
)

func withRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()

	prev := otel.GetTracerProvider()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		otel.SetTracerProvider(prev)
	})
	return sr
}

func attrMap(kvs []attribute.KeyValue) map[string]attribute.Value {
	m := make(map[string]attribute.Value, len(kvs))
	for _, kv := range kvs {
		m[string(kv.Key)] = kv.Value
	}
	return m
}

func TestOTelTracer_StartAppliesAttributes(t *testing.T) {
	sr := withRecorder(t)
	tracer := telemetry.NewOTelTracer("test")

	_, span := tracer.Start(context.Background(), "query",
		ports.WithAttribute("kind", "distance"),
		ports.WithAttribute("limit", 3),
	)
	span.SetAttribute("found", true)
	span.SetAttribute("node", domain.NewNode("A"))
	span.SetAttribute("fingerprint", uint64(0x2ca1c0246c81081a))
	span.SetAttribute("ratio", 0.5)
	span.SetAttribute("nodes", []string{"A", "B"})
	span.SetAttribute("other", struct{ X int }{X: 1})
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "query", ended[0].Name())

	attrs := attrMap(ended[0].Attributes())
	assert.Equal(t, "distance", attrs["kind"].AsString())
	assert.Equal(t, int64(3), attrs["limit"].AsInt64())
	assert.True(t, attrs["found"].AsBool())
	assert.Equal(t, "A", attrs["node"].AsString())
	assert.Equal(t, "2ca1c0246c81081a", attrs["fingerprint"].AsString())
	assert.InDelta(t, 0.5, attrs["ratio"].AsFloat64(), 0.0001)
	assert.Equal(t, []string{"A", "B"}, attrs["nodes"].AsStringSlice())
	assert.Equal(t, "{1}", attrs["other"].AsString())
}

func TestOTelTracer_RecordError(t *testing.T) {
	sr := withRecorder(t)
	tracer := telemetry.NewOTelTracer("test")

	_, span := tracer.Start(context.Background(), "query")
	span.RecordError(nil)
	span.RecordError(errors.New("boom"))
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "boom", ended[0].Status().Description)
	require.Len(t, ended[0].Events(), 1)
	assert.Equal(t, "exception", ended[0].Events()[0].Name)
}

func TestOTelTracer_EmitPlan(t *testing.T) {
	sr := withRecorder(t)
	tracer := telemetry.NewOTelTracer("test")

	ctx, span := tracer.Start(context.Background(), "report")
	tracer.EmitPlan(ctx, []string{"distance A-B-C", "shortest A->C"})
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	events := ended[0].Events()
	require.Len(t, events, 1)
	assert.Equal(t, "plan_emitted", events[0].Name)

	attrs := attrMap(events[0].Attributes)
	assert.Equal(t, []string{"distance A-B-C", "shortest A->C"}, attrs["queries"].AsStringSlice())
	assert.Equal(t, int64(2), attrs["count"].AsInt64())
}

func TestOTelTracer_EmitPlanWithoutSpan(t *testing.T) {
	sr := withRecorder(t)
	tracer := telemetry.NewOTelTracer("test")

	assert.NotPanics(t, func() {
		tracer.EmitPlan(context.Background(), []string{"distance A-B"})
	})
	assert.Empty(t, sr.Ended())
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()
	ctx := context.Background()

	got, span := tracer.Start(ctx, "query", ports.WithAttribute("kind", "distance"))
	assert.Equal(t, ctx, got)

	assert.NotPanics(t, func() {
		span.SetAttribute("k", "v")
		span.RecordError(errors.New("boom"))
		span.End()
		tracer.EmitPlan(ctx, []string{"q"})
	})
}
