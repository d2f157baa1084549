package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	metricRequestsTotal    = "tscbridge.requests.total"
	metricRequestDuration  = "tscbridge.request.duration.seconds"
	metricErrorsTotal      = "tscbridge.errors.total"
	metricInflightRequests = "tscbridge.inflight.requests"

	metricForeignCalls        = "tscbridge.foreign_calls.total"
	metricForeignCallDuration = "tscbridge.foreign_call.duration.seconds"
	metricForeignCallErrors   = "tscbridge.foreign_call.errors.total"

	attrOp     = "op"
	attrStatus = "status"

	// StatusOK and StatusError are the status values RecordRequest expects.
	StatusOK    = "ok"
	StatusError = "error"
)

// durationBucketBoundaries covers 1ms to 60s: a tool call parses and
// prints one file.
var durationBucketBoundaries = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60}

// foreignCallBucketBoundaries covers 1µs to 1s for single engine calls.
var foreignCallBucketBoundaries = []float64{
	0.000001, 0.00001, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1,
}

// REDMetrics holds the OTel instruments for Rate, Error, Duration metrics.
type REDMetrics struct {
	requestsTotal    metric.Int64Counter
	requestDuration  metric.Float64Histogram
	errorsTotal      metric.Int64Counter
	inflightRequests metric.Int64UpDownCounter
}

// NewREDMetrics creates RED metric instruments from the given meter.
func NewREDMetrics(mt metric.Meter) (*REDMetrics, error) {
	reqTotal, err := mt.Int64Counter(metricRequestsTotal,
		metric.WithDescription("Total number of requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricRequestsTotal, err)
	}

	reqDuration, err := mt.Float64Histogram(metricRequestDuration,
		metric.WithDescription("Request duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(durationBucketBoundaries...),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricRequestDuration, err)
	}

	errTotal, err := mt.Int64Counter(metricErrorsTotal,
		metric.WithDescription("Total number of errors"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricErrorsTotal, err)
	}

	inflight, err := mt.Int64UpDownCounter(metricInflightRequests,
		metric.WithDescription("Number of in-flight requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricInflightRequests, err)
	}

	return &REDMetrics{
		requestsTotal:    reqTotal,
		requestDuration:  reqDuration,
		errorsTotal:      errTotal,
		inflightRequests: inflight,
	}, nil
}

// RecordRequest records a completed request with its operation, status, and duration.
func (rm *REDMetrics) RecordRequest(ctx context.Context, op, status string, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String(attrOp, op),
		attribute.String(attrStatus, status),
	)

	rm.requestsTotal.Add(ctx, 1, attrs)
	rm.requestDuration.Record(ctx, duration.Seconds(), attrs)

	if status == StatusError {
		rm.errorsTotal.Add(ctx, 1, metric.WithAttributes(
			attribute.String(attrOp, op),
		))
	}
}

// TrackInflight increments the in-flight gauge and returns a function to decrement it.
func (rm *REDMetrics) TrackInflight(ctx context.Context, op string) func() {
	attrs := metric.WithAttributes(attribute.String(attrOp, op))
	rm.inflightRequests.Add(ctx, 1, attrs)

	return func() {
		rm.inflightRequests.Add(ctx, -1, attrs)
	}
}

// ForeignCallMetrics counts and times the calls a program makes into the
// compiler engine. It satisfies tsc.CallRecorder.
type ForeignCallMetrics struct {
	calls    metric.Int64Counter
	duration metric.Float64Histogram
	errors   metric.Int64Counter
}

// NewForeignCallMetrics creates the foreign-call instruments from mt.
func NewForeignCallMetrics(mt metric.Meter) (*ForeignCallMetrics, error) {
	calls, err := mt.Int64Counter(metricForeignCalls,
		metric.WithDescription("Calls into the compiler engine"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricForeignCalls, err)
	}

	duration, err := mt.Float64Histogram(metricForeignCallDuration,
		metric.WithDescription("Compiler engine call duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(foreignCallBucketBoundaries...),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricForeignCallDuration, err)
	}

	errs, err := mt.Int64Counter(metricForeignCallErrors,
		metric.WithDescription("Failed calls into the compiler engine"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricForeignCallErrors, err)
	}

	return &ForeignCallMetrics{calls: calls, duration: duration, errors: errs}, nil
}

// RecordForeignCall records one engine call named op.
func (fm *ForeignCallMetrics) RecordForeignCall(op string, took time.Duration, err error) {
	ctx := context.Background()
	attrs := metric.WithAttributes(attribute.String(attrOp, op))

	fm.calls.Add(ctx, 1, attrs)
	fm.duration.Record(ctx, took.Seconds(), attrs)

	if err != nil {
		fm.errors.Add(ctx, 1, attrs)
	}
}
