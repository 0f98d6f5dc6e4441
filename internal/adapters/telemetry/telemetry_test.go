package telemetry_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/retro/internal/adapters/telemetry"
)

func setupRecorder(t *testing.T) (*tracetest.SpanRecorder, *sdktrace.TracerProvider) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(t.Context()) })
	return sr, tp
}

func TestOTelTracer_SpanHierarchy(t *testing.T) {
	sr, tp := setupRecorder(t)
	tracer := telemetry.NewOTelTracerWithProvider(tp, "test")

	ctx, parent := tracer.Start(t.Context(), "process-classes")
	_, child := tracer.Start(ctx, "resolve-runtime")
	child.End()
	parent.End()

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "resolve-runtime", spans[0].Name())
	assert.Equal(t, "process-classes", spans[1].Name())
	assert.Equal(t, spans[1].SpanContext().SpanID(), spans[0].Parent().SpanID())
}

func TestOTelSpan_SetAttribute(t *testing.T) {
	sr, tp := setupRecorder(t)
	tracer := telemetry.NewOTelTracerWithProvider(tp, "test")

	_, span := tracer.Start(t.Context(), "invoke")
	span.SetAttribute("backend", "forked")
	span.SetAttribute("bytecode_version", 52)
	span.SetAttribute("size", int64(7))
	span.SetAttribute("ratio", 0.5)
	span.SetAttribute("fork", true)
	span.SetAttribute("classpath", []string{"/a.jar", "/b.jar"})
	span.SetAttribute("target", struct{ V string }{"1.8"})
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range spans[0].Attributes() {
		attrs[kv.Key] = kv.Value
	}
	assert.Equal(t, "forked", attrs["backend"].AsString())
	assert.Equal(t, int64(52), attrs["bytecode_version"].AsInt64())
	assert.Equal(t, int64(7), attrs["size"].AsInt64())
	assert.InDelta(t, 0.5, attrs["ratio"].AsFloat64(), 1e-9)
	assert.True(t, attrs["fork"].AsBool())
	assert.Equal(t, []string{"/a.jar", "/b.jar"}, attrs["classpath"].AsStringSlice())
	assert.Equal(t, "{1.8}", attrs["target"].AsString())
}

func TestOTelSpan_RecordError(t *testing.T) {
	sr, tp := setupRecorder(t)
	tracer := telemetry.NewOTelTracerWithProvider(tp, "test")

	_, span := tracer.Start(t.Context(), "fetch-artifact")
	span.RecordError(errors.New("artifact not found"))
	span.RecordError(nil)
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "artifact not found", spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()
	ctx := t.Context()

	newCtx, span := tracer.Start(ctx, "noop")
	assert.Equal(t, ctx, newCtx)

	span.SetAttribute("key", "value")
	span.RecordError(errors.New("ignored"))
	span.End()
}
