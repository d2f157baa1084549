package observability_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/Sumatoshi-tech/tscbridge/pkg/observability"
)

func TestPrometheusReader_ServesForeignCalls(t *testing.T) {
	t.Parallel()

	reader, handler, err := observability.PrometheusReader()
	require.NoError(t, err)

	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { require.NoError(t, mp.Shutdown(context.Background())) })

	fm, err := observability.NewForeignCallMetrics(mp.Meter("test"))
	require.NoError(t, err)

	fm.RecordForeignCall("createProgram", 0, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, rec.Body.String(), "tscbridge_foreign_calls")
	assert.Contains(t, rec.Body.String(), "target_info")
}

func TestMetricsServer_ServesAndShutsDown(t *testing.T) {
	t.Parallel()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { require.NoError(t, tp.Shutdown(context.Background())) })

	handler := http.HandlerFunc(func(rw http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(rw, "up 1\n")
	})

	ms, err := observability.StartMetricsServer("127.0.0.1:0", handler, tp.Tracer("test"),
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	health, err := http.Get("http://" + ms.Addr() + "/healthz") //nolint:noctx // test request.
	require.NoError(t, err)
	require.NoError(t, health.Body.Close())
	assert.Equal(t, http.StatusOK, health.StatusCode)

	resp, err := http.Get("http://" + ms.Addr() + "/metrics") //nolint:noctx // test request.
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "up 1\n", string(body))

	require.NoError(t, ms.Shutdown(context.Background()))

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "GET /metrics", spans[0].Name)
}

func TestMetricsServer_BadAddr(t *testing.T) {
	t.Parallel()

	_, err := observability.StartMetricsServer("not-an-addr", http.NotFoundHandler(), nil, slog.Default())
	require.Error(t, err)
}

func TestReadyHandler(t *testing.T) {
	t.Parallel()

	errNotLoaded := errors.New("script not loaded")

	tests := []struct {
		name     string
		checks   []observability.ReadyCheck
		wantCode int
		wantBody string
	}{
		{name: "no_checks", wantCode: http.StatusOK, wantBody: `"status":"ok"`},
		{
			name:     "passing",
			checks:   []observability.ReadyCheck{func(context.Context) error { return nil }},
			wantCode: http.StatusOK,
			wantBody: `"status":"ok"`,
		},
		{
			name: "failing",
			checks: []observability.ReadyCheck{
				func(context.Context) error { return nil },
				func(context.Context) error { return errNotLoaded },
			},
			wantCode: http.StatusServiceUnavailable,
			wantBody: `"error":"script not loaded"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			observability.ReadyHandler(tt.checks...).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", http.NoBody))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
