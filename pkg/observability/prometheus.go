package observability

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	metricsPath           = "/metrics"
	metricsReadTimeout    = 5 * time.Second
	metricsShutdownBudget = 2 * time.Second
)

// PrometheusReader returns an OTel metric reader backed by its own Prometheus
// registry, plus the handler that serves that registry.
func PrometheusReader() (sdkmetric.Reader, http.Handler, error) {
	registry := prometheus.NewRegistry()

	exporter, err := promexporter.New(
		promexporter.WithRegisterer(registry),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("create prometheus exporter: %w", err)
	}

	return exporter, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}), nil
}

// MetricsServer serves a metrics handler on /metrics.
type MetricsServer struct {
	srv    *http.Server
	ln     net.Listener
	logger *slog.Logger
	done   chan error
}

// StartMetricsServer listens on addr and serves handler at /metrics in the
// background. Requests to /metrics get a server span from tracer. /healthz
// and /readyz answer probes; readiness runs checks.
func StartMetricsServer(
	addr string, handler http.Handler, tracer trace.Tracer, logger *slog.Logger, checks ...ReadyCheck,
) (*MetricsServer, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", addr, err)
	}

	mux := http.NewServeMux()
	mux.Handle(metricsPath, HTTPMiddleware(tracer, handler))
	mux.Handle(healthPath, HealthHandler())
	mux.Handle(readyPath, ReadyHandler(checks...))

	ms := &MetricsServer{
		srv: &http.Server{
			Handler:           mux,
			ReadHeaderTimeout: metricsReadTimeout,
		},
		ln:     ln,
		logger: logger,
		done:   make(chan error, 1),
	}

	go func() {
		serveErr := ms.srv.Serve(ln)
		if errors.Is(serveErr, http.ErrServerClosed) {
			serveErr = nil
		}

		ms.done <- serveErr
	}()

	logger.Info("metrics endpoint listening", "addr", ms.Addr(), "path", metricsPath)

	return ms, nil
}

// Addr is the bound listen address.
func (ms *MetricsServer) Addr() string {
	return ms.ln.Addr().String()
}

// Shutdown stops the server and waits for the serve loop to exit.
func (ms *MetricsServer) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, metricsShutdownBudget)
	defer cancel()

	shutdownErr := ms.srv.Shutdown(ctx)
	if shutdownErr != nil {
		shutdownErr = fmt.Errorf("shutdown metrics server: %w", shutdownErr)
	}

	return errors.Join(shutdownErr, <-ms.done)
}
