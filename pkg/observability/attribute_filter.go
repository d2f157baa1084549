package observability

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// AttributePolicy decides which span attribute keys may be exported.
// Block rules win over Allow rules; keys matching neither are dropped.
type AttributePolicy struct {
	AllowPrefixes []string
	AllowKeys     []string
	BlockPrefixes []string
	BlockKeys     []string
}

// DefaultAttributePolicy exports the bridge's own namespaces and keeps source
// text out of traces.
func DefaultAttributePolicy() AttributePolicy {
	return AttributePolicy{
		AllowPrefixes: []string{
			"tscbridge.", "tsc.", "engine.", "scanner.",
			"cli.", "mcp.", "error.", "http.", "url.",
		},
		AllowKeys:     []string{"error"},
		BlockPrefixes: []string{"user."},
		BlockKeys:     []string{"email", "tsc.source", "mcp.code", "request.body", "response.body"},
	}
}

// Permits reports whether key may be exported.
func (p AttributePolicy) Permits(key string) bool {
	if hasKeyOrPrefix(key, p.BlockKeys, p.BlockPrefixes) {
		return false
	}

	return hasKeyOrPrefix(key, p.AllowKeys, p.AllowPrefixes)
}

func hasKeyOrPrefix(key string, keys, prefixes []string) bool {
	for _, k := range keys {
		if key == k {
			return true
		}
	}

	for _, prefix := range prefixes {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}

	return false
}

// attributeFilter hands its delegate a view of each ended span that carries
// only permitted attributes.
type attributeFilter struct {
	sdktrace.SpanProcessor

	policy AttributePolicy
	logger *slog.Logger
}

// NewAttributeFilter wraps delegate with the default policy. Dropped keys are
// logged at Warn when logger is non-nil.
func NewAttributeFilter(delegate sdktrace.SpanProcessor, logger *slog.Logger) sdktrace.SpanProcessor {
	return NewPolicyFilter(delegate, DefaultAttributePolicy(), logger)
}

// NewPolicyFilter wraps delegate with policy.
func NewPolicyFilter(delegate sdktrace.SpanProcessor, policy AttributePolicy, logger *slog.Logger) sdktrace.SpanProcessor {
	return &attributeFilter{SpanProcessor: delegate, policy: policy, logger: logger}
}

// OnEnd filters once, then delegates.
func (f *attributeFilter) OnEnd(s sdktrace.ReadOnlySpan) {
	orig := s.Attributes()
	kept := make([]attribute.KeyValue, 0, len(orig))

	for _, kv := range orig {
		if f.policy.Permits(string(kv.Key)) {
			kept = append(kept, kv)

			continue
		}

		if f.logger != nil {
			f.logger.Warn("attribute blocked by filter", "key", string(kv.Key), "span", s.Name())
		}
	}

	f.SpanProcessor.OnEnd(&filteredSpan{
		ReadOnlySpan: s,
		attrs:        kept,
		dropped:      len(orig) - len(kept),
	})
}

// Shutdown implements [sdktrace.SpanProcessor].
func (f *attributeFilter) Shutdown(ctx context.Context) error {
	if err := f.SpanProcessor.Shutdown(ctx); err != nil {
		return fmt.Errorf("attribute filter shutdown: %w", err)
	}

	return nil
}

// ForceFlush implements [sdktrace.SpanProcessor].
func (f *attributeFilter) ForceFlush(ctx context.Context) error {
	if err := f.SpanProcessor.ForceFlush(ctx); err != nil {
		return fmt.Errorf("attribute filter flush: %w", err)
	}

	return nil
}

type filteredSpan struct {
	sdktrace.ReadOnlySpan

	attrs   []attribute.KeyValue
	dropped int
}

func (s *filteredSpan) Attributes() []attribute.KeyValue { return s.attrs }

// DroppedAttributes counts both the SDK's limit drops and filtered keys.
func (s *filteredSpan) DroppedAttributes() int {
	return s.ReadOnlySpan.DroppedAttributes() + s.dropped
}
