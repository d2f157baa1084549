package observability

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	attrTraceID = "trace_id"
	attrSpanID  = "span_id"
	attrService = "service"
	attrEnv     = "env"
	attrMode    = "mode"

	// logEventName names span events mirrored from log records.
	logEventName = "log"
)

// Identity names the process that emits log records.
type Identity struct {
	Service string
	Env     string
	Mode    AppMode
}

func (id Identity) attrs() []slog.Attr {
	out := []slog.Attr{
		slog.String(attrService, id.Service),
		slog.String(attrMode, string(id.Mode)),
	}

	if id.Env != "" {
		out = append(out, slog.String(attrEnv, id.Env))
	}

	return out
}

// SpanHandler is an [slog.Handler] that correlates records with the span in
// the record's context. Records gain trace_id and span_id. Records at or above
// the event level are also added to a recording span as "log" events.
type SpanHandler struct {
	next       slog.Handler
	eventLevel slog.Level
}

// NewSpanHandler wraps next. Identity attributes are bound before any group so
// they stay top-level.
func NewSpanHandler(next slog.Handler, id Identity) *SpanHandler {
	return &SpanHandler{
		next:       next.WithAttrs(id.attrs()),
		eventLevel: slog.LevelWarn,
	}
}

// Enabled delegates to the wrapped handler.
func (h *SpanHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle implements [slog.Handler].
func (h *SpanHandler) Handle(ctx context.Context, record slog.Record) error {
	span := trace.SpanFromContext(ctx)

	if sc := span.SpanContext(); sc.IsValid() {
		record.AddAttrs(
			slog.String(attrTraceID, sc.TraceID().String()),
			slog.String(attrSpanID, sc.SpanID().String()),
		)
	}

	if record.Level >= h.eventLevel && span.IsRecording() {
		span.AddEvent(logEventName, trace.WithTimestamp(record.Time), trace.WithAttributes(
			attribute.String("log.severity", record.Level.String()),
			attribute.String("log.message", record.Message),
		))
	}

	if err := h.next.Handle(ctx, record); err != nil {
		return fmt.Errorf("span handler: %w", err)
	}

	return nil
}

// WithAttrs implements [slog.Handler].
func (h *SpanHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.derive(h.next.WithAttrs(attrs))
}

// WithGroup implements [slog.Handler].
func (h *SpanHandler) WithGroup(name string) slog.Handler {
	return h.derive(h.next.WithGroup(name))
}

func (h *SpanHandler) derive(next slog.Handler) *SpanHandler {
	clone := *h
	clone.next = next

	return &clone
}
