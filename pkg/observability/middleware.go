package observability

import (
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

// recordingWriter remembers the status code and body size of a response.
type recordingWriter struct {
	http.ResponseWriter

	status int
	size   int
}

func (rw *recordingWriter) WriteHeader(code int) {
	if rw.status == 0 {
		rw.status = code
	}

	rw.ResponseWriter.WriteHeader(code)
}

func (rw *recordingWriter) Write(buf []byte) (int, error) {
	if rw.status == 0 {
		rw.status = http.StatusOK
	}

	n, err := rw.ResponseWriter.Write(buf)
	rw.size += n

	return n, err //nolint:wrapcheck // passthrough writer.
}

// HTTPMiddleware wraps next with a server span named "METHOD /path". Incoming
// W3C trace headers become the span's parent. 5xx responses mark the span
// as failed.
func HTTPMiddleware(tracer trace.Tracer, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, hr *http.Request) {
		parent := otel.GetTextMapPropagator().Extract(hr.Context(), propagation.HeaderCarrier(hr.Header))

		ctx, span := tracer.Start(parent, hr.Method+" "+hr.URL.Path,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				semconv.HTTPRequestMethodKey.String(hr.Method),
				semconv.URLPath(hr.URL.Path),
			),
		)
		defer span.End()

		rw := &recordingWriter{ResponseWriter: w}
		next.ServeHTTP(rw, hr.WithContext(ctx))

		if rw.status == 0 {
			rw.status = http.StatusOK
		}

		span.SetAttributes(
			semconv.HTTPResponseStatusCode(rw.status),
			semconv.HTTPResponseBodySize(rw.size),
		)

		if rw.status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(rw.status))
		}
	})
}
