package observability_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/Sumatoshi-tech/tscbridge/pkg/observability"
)

func filteredSpanAttrs(t *testing.T, logger *slog.Logger, attrs ...attribute.KeyValue) map[string]any {
	t.Helper()

	span := exportFiltered(t, func(delegate sdktrace.SpanProcessor) sdktrace.SpanProcessor {
		return observability.NewAttributeFilter(delegate, logger)
	}, attrs...)

	m := make(map[string]any, len(span.Attributes))
	for _, a := range span.Attributes {
		m[string(a.Key)] = a.Value.AsInterface()
	}

	return m
}

func exportFiltered(
	t *testing.T,
	wrap func(sdktrace.SpanProcessor) sdktrace.SpanProcessor,
	attrs ...attribute.KeyValue,
) tracetest.SpanStub {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(wrap(sdktrace.NewSimpleSpanProcessor(exporter))),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	t.Cleanup(func() { require.NoError(t, tp.Shutdown(context.Background())) })

	_, span := tp.Tracer("test").Start(context.Background(), "op")
	span.SetAttributes(attrs...)
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)

	return spans[0]
}

func TestAttributeFilter_AllowsKnownPrefixes(t *testing.T) {
	t.Parallel()

	attrs := filteredSpanAttrs(t, nil,
		attribute.Int("tsc.files", 2),
		attribute.String("mcp.tool", "ts_tree"),
		attribute.String("error.type", "foreign"),
		attribute.Bool("error", true),
	)

	assert.Equal(t, int64(2), attrs["tsc.files"])
	assert.Equal(t, "ts_tree", attrs["mcp.tool"])
	assert.Equal(t, "foreign", attrs["error.type"])
	assert.Equal(t, true, attrs["error"])
}

func TestAttributeFilter_BlocksSourceAndUnknown(t *testing.T) {
	t.Parallel()

	attrs := filteredSpanAttrs(t, nil,
		attribute.String("tsc.source", "let secret = 1;"),
		attribute.String("mcp.code", "let x;"),
		attribute.String("user.id", "42"),
		attribute.String("random", "x"),
		attribute.String("tsc.engine", "typescript.js"),
	)

	assert.Equal(t, map[string]any{"tsc.engine": "typescript.js"}, attrs)
}

func TestAttributeFilter_LogsBlockedKeys(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	filteredSpanAttrs(t, logger, attribute.String("user.secret", "v"))

	assert.Contains(t, buf.String(), "user.secret")
	assert.Contains(t, buf.String(), "blocked")
}

func TestAttributeFilter_CountsDroppedKeys(t *testing.T) {
	t.Parallel()

	span := exportFiltered(t, func(delegate sdktrace.SpanProcessor) sdktrace.SpanProcessor {
		return observability.NewAttributeFilter(delegate, nil)
	},
		attribute.String("tsc.source", "let secret = 1;"),
		attribute.String("random", "x"),
		attribute.Int("tsc.files", 1),
	)

	assert.Len(t, span.Attributes, 1)
	assert.Equal(t, 2, span.DroppedAttributes)
}

func TestAttributePolicy_BlockWinsOverAllow(t *testing.T) {
	t.Parallel()

	policy := observability.AttributePolicy{
		AllowPrefixes: []string{"tsc."},
		BlockKeys:     []string{"tsc.text"},
	}

	assert.True(t, policy.Permits("tsc.kind"))
	assert.False(t, policy.Permits("tsc.text"))
	assert.False(t, policy.Permits("engine.version"))

	span := exportFiltered(t, func(delegate sdktrace.SpanProcessor) sdktrace.SpanProcessor {
		return observability.NewPolicyFilter(delegate, policy, nil)
	},
		attribute.String("tsc.kind", "Identifier"),
		attribute.String("tsc.text", "x"),
	)

	require.Len(t, span.Attributes, 1)
	assert.Equal(t, "tsc.kind", string(span.Attributes[0].Key))

	defaults := observability.DefaultAttributePolicy()
	assert.True(t, defaults.Permits("error"))
	assert.False(t, defaults.Permits("errors"))
	assert.False(t, defaults.Permits("user.id"))
}
