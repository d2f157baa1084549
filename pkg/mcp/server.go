// Package mcp serves the compiler bridge as Model Context Protocol tools over
// stdio.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Sumatoshi-tech/tscbridge/pkg/observability"
	"github.com/Sumatoshi-tech/tscbridge/pkg/tsc"
	"github.com/Sumatoshi-tech/tscbridge/pkg/tsc/engine"
	"github.com/Sumatoshi-tech/tscbridge/pkg/version"
)

const (
	serverName = "tscbridge"
	toolCount  = 2

	mcpSpanPrefix  = "mcp."
	traceIDMetaKey = "trace_id"
)

// ErrNoEngine is reported by every tool when the server has no engine factory.
var ErrNoEngine = errors.New("no compiler engine configured")

// EngineFactory loads a fresh compiler engine. Each tool call gets its own
// engine because a program owns the engine it runs in.
type EngineFactory func(ctx context.Context) (*engine.Engine, error)

// ServerDeps holds injectable dependencies for the MCP server.
// Zero-value fields use production defaults.
type ServerDeps struct {
	Engines EngineFactory

	// Logger is an optional structured logger. Nil uses slog default.
	Logger *slog.Logger

	// Metrics records per-tool RED metrics when set.
	Metrics *observability.REDMetrics

	// Calls records every engine call made while serving a tool.
	Calls tsc.CallRecorder

	// Tracer creates one span per tool call when set.
	Tracer trace.Tracer
}

// Server wraps the MCP SDK server with the tscbridge tools.
type Server struct {
	inner   *mcpsdk.Server
	mu      sync.RWMutex
	tools   []string
	engines EngineFactory
	logger  *slog.Logger
	metrics *observability.REDMetrics
	calls   tsc.CallRecorder
	tracer  trace.Tracer
}

// NewServer creates an MCP server with ts_tree and ts_tokens registered.
func NewServer(deps ServerDeps) *Server {
	opts := &mcpsdk.ServerOptions{}
	if deps.Logger != nil {
		opts.Logger = deps.Logger
	}

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	inner := mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    serverName,
			Version: version.Resolved(),
		},
		opts,
	)

	srv := &Server{
		inner:   inner,
		tools:   make([]string, 0, toolCount),
		engines: deps.Engines,
		logger:  logger,
		metrics: deps.Metrics,
		calls:   deps.Calls,
		tracer:  deps.Tracer,
	}

	srv.registerTools()

	return srv
}

// ListToolNames returns the sorted names of all registered tools.
func (s *Server) ListToolNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, len(s.tools))
	copy(names, s.tools)
	sort.Strings(names)

	return names
}

// Run serves on stdio until ctx is canceled or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.RunWithTransport(ctx, &mcpsdk.StdioTransport{})
}

// RunWithTransport serves on transport until ctx is canceled or the
// connection closes.
func (s *Server) RunWithTransport(ctx context.Context, transport mcpsdk.Transport) error {
	err := s.inner.Run(ctx, transport)
	if err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}

	return nil
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.inner, &mcpsdk.Tool{
		Name:        ToolNameTree,
		Description: treeToolDescription,
	}, withMetrics(s.metrics, ToolNameTree, withTracing(s.tracer, ToolNameTree, s.handleTree)))

	s.trackTool(ToolNameTree)

	mcpsdk.AddTool(s.inner, &mcpsdk.Tool{
		Name:        ToolNameTokens,
		Description: tokensToolDescription,
	}, withMetrics(s.metrics, ToolNameTokens, withTracing(s.tracer, ToolNameTokens, s.handleTokens)))

	s.trackTool(ToolNameTokens)
}

func (s *Server) trackTool(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tools = append(s.tools, name)
}

// open loads an engine and builds a one-file program over code.
func (s *Server) open(ctx context.Context, name, code string, kind tsc.ScriptKind) (*tsc.Program, error) {
	if s.engines == nil {
		return nil, ErrNoEngine
	}

	eng, err := s.engines(ctx)
	if err != nil {
		return nil, fmt.Errorf("load engine: %w", err)
	}

	opts := []tsc.Option{tsc.WithLogger(s.logger), tsc.WithTracer(s.tracer)}
	if s.calls != nil {
		opts = append(opts, tsc.WithMetrics(s.calls))
	}

	prog, err := tsc.Open(ctx, eng, []tsc.SourceInput{{Name: name, Text: code, Kind: kind}}, opts...)
	if err != nil {
		return nil, fmt.Errorf("open program: %w", err)
	}

	return prog, nil
}

// withTracing wraps a tool handler in a span and appends the trace_id to the
// response when the span is sampled.
func withTracing[Input any](
	tracer trace.Tracer,
	toolName string,
	handler func(context.Context, *mcpsdk.CallToolRequest, Input) (*mcpsdk.CallToolResult, ToolOutput, error),
) func(context.Context, *mcpsdk.CallToolRequest, Input) (*mcpsdk.CallToolResult, ToolOutput, error) {
	if tracer == nil {
		return handler
	}

	return func(ctx context.Context, req *mcpsdk.CallToolRequest, input Input) (*mcpsdk.CallToolResult, ToolOutput, error) {
		ctx, span := tracer.Start(ctx, mcpSpanPrefix+toolName,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(attribute.String("mcp.tool", toolName)),
		)
		defer span.End()

		result, output, err := handler(ctx, req, input)

		if result != nil && result.IsError {
			span.SetAttributes(attribute.Bool("error", true))
		}

		sc := span.SpanContext()
		if sc.IsSampled() && result != nil {
			result.Content = append(result.Content, &mcpsdk.TextContent{
				Text: fmt.Sprintf("%s=%s", traceIDMetaKey, sc.TraceID().String()),
			})
		}

		return result, output, err
	}
}

// withMetrics wraps a tool handler to record RED metrics per invocation.
func withMetrics[Input any](
	metrics *observability.REDMetrics,
	toolName string,
	handler func(context.Context, *mcpsdk.CallToolRequest, Input) (*mcpsdk.CallToolResult, ToolOutput, error),
) func(context.Context, *mcpsdk.CallToolRequest, Input) (*mcpsdk.CallToolResult, ToolOutput, error) {
	if metrics == nil {
		return handler
	}

	op := mcpSpanPrefix + toolName

	return func(ctx context.Context, req *mcpsdk.CallToolRequest, input Input) (*mcpsdk.CallToolResult, ToolOutput, error) {
		start := time.Now()

		decInflight := metrics.TrackInflight(ctx, op)
		defer decInflight()

		result, output, err := handler(ctx, req, input)

		status := observability.StatusOK
		if err != nil || (result != nil && result.IsError) {
			status = observability.StatusError
		}

		metrics.RecordRequest(ctx, op, status, time.Since(start))

		return result, output, err
	}
}
