// Package tsc exposes the syntax tree, checker and scanner of an embedded
// TypeScript compiler as typed Go values.
package tsc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/dop251/goja"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Sumatoshi-tech/tscbridge/pkg/tsc/engine"
)

const tracerName = "tscbridge/tsc"

// Program context errors.
var (
	ErrNoSources        = errors.New("no source files given")
	ErrDuplicateSource  = errors.New("duplicate source file name")
	ErrUnknownSource    = errors.New("unknown source file")
	ErrCallbackReleased = errors.New("callback released")
)

// SourceInput is one in-memory file handed to the compiler.
type SourceInput struct {
	Name string
	Text string
	// Kind overrides detection from Name and Text when set.
	Kind ScriptKind
}

// Program owns one engine, the compiler program built in it, and every
// wrapper handed out for its objects. Wrappers stay valid until Close.
type Program struct {
	mu      sync.Mutex
	closed  bool
	eng     *engine.Engine
	rt      *goja.Runtime
	program *goja.Object
	checker *goja.Object
	reg     *registry
	files   []string

	skipTrivia  bool
	verifyKinds bool
	logger      *slog.Logger
	recorder    CallRecorder
	tracer      trace.Tracer

	callbacks atomic.Int64
}

// Option configures a Program.
type Option func(*Program)

// WithLogger sets the program logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Program) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithMetrics records every foreign call.
func WithMetrics(recorder CallRecorder) Option {
	return func(p *Program) {
		p.recorder = recorder
	}
}

// WithTracer sets the tracer used for program spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(p *Program) {
		if tracer != nil {
			p.tracer = tracer
		}
	}
}

// WithSkipTrivia sets whether scanners skip trivia by default. Defaults to true.
func WithSkipTrivia(skip bool) Option {
	return func(p *Program) {
		p.skipTrivia = skip
	}
}

// WithKindVerification sets whether Open checks the kind table against the
// engine. Defaults to true.
func WithKindVerification(verify bool) Option {
	return func(p *Program) {
		p.verifyKinds = verify
	}
}

// Open builds a compiler program over inputs inside eng. The program takes
// ownership of eng; it must not be shared with another program.
func Open(ctx context.Context, eng *engine.Engine, inputs []SourceInput, opts ...Option) (*Program, error) {
	if len(inputs) == 0 {
		return nil, ErrNoSources
	}

	p := &Program{
		eng:         eng,
		rt:          eng.Runtime(),
		reg:         newRegistry(),
		skipTrivia:  true,
		verifyKinds: true,
		logger:      eng.Logger(),
		tracer:      otel.Tracer(tracerName),
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	for _, opt := range opts {
		opt(p)
	}

	ctx, span := p.tracer.Start(ctx, "tsc.Open", trace.WithAttributes(
		attribute.Int("tsc.files", len(inputs)),
		attribute.String("tsc.engine", eng.Name()),
	))
	defer span.End()

	err := p.open(ctx, inputs)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, err
	}

	p.logger.DebugContext(ctx, "program opened", "files", len(p.files), "engine_version", eng.Version())

	return p, nil
}

func (p *Program) open(ctx context.Context, inputs []SourceInput) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if p.verifyKinds {
		if err := VerifyKindTable(p.eng.KindCode); err != nil {
			return fmt.Errorf("verify kind table against %s: %w", p.eng.Name(), err)
		}

		p.logger.DebugContext(ctx, "kind table verified", "version", TypeScriptVersion)
	}

	seen := make(map[string]bool, len(inputs))
	files := make([]any, 0, len(inputs))

	for _, in := range inputs {
		if seen[in.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicateSource, in.Name)
		}

		seen[in.Name] = true

		kind := in.Kind
		if kind == ScriptKindUnknown {
			kind = DetectScriptKind(in.Name, []byte(in.Text))
		}

		files = append(files, map[string]any{
			"name":       in.Name,
			"text":       in.Text,
			"scriptKind": int(kind),
		})
		p.files = append(p.files, in.Name)
	}

	return p.do("createProgram", func() error {
		v, err := p.eng.Call(engine.HelperCreateProgram, files, map[string]any{})
		if err != nil {
			return err
		}

		p.program = objectValue(v)
		if p.program == nil {
			return &ForeignCallError{Op: "createProgram", Err: fmt.Errorf("returned %s", typeOf(v))}
		}

		return nil
	})
}

// SourceFiles lists the file names the program was opened with.
func (p *Program) SourceFiles() []string {
	return append([]string(nil), p.files...)
}

// SourceFile returns the root node of the named file.
func (p *Program) SourceFile(name string) (*Node, error) {
	var root *Node

	err := p.do("getSourceFile", func() error {
		v, err := invoke(p.program, "getSourceFile", p.rt.ToValue(name))
		if err != nil {
			return err
		}

		obj := objectValue(v)
		if obj == nil {
			return fmt.Errorf("%w: %s", ErrUnknownSource, name)
		}

		root = p.wrapNode(obj)

		return nil
	})

	return root, err
}

// TypeChecker returns the program's checker, creating it on first use.
func (p *Program) TypeChecker() (*Checker, error) {
	err := p.do("getTypeChecker", func() error {
		_, err := p.typeChecker()

		return err
	})
	if err != nil {
		return nil, err
	}

	return &Checker{prog: p}, nil
}

// typeChecker returns the engine checker. Callers hold p.mu.
func (p *Program) typeChecker() (*goja.Object, error) {
	if p.checker != nil {
		return p.checker, nil
	}

	v, err := invoke(p.program, "getTypeChecker")
	if err != nil {
		return nil, err
	}

	p.checker = objectValue(v)
	if p.checker == nil {
		return nil, &ForeignCallError{Op: "getTypeChecker", Err: fmt.Errorf("returned %s", typeOf(v))}
	}

	return p.checker, nil
}

// CreateScannerFunction returns the engine function that builds scanner
// cursors. It takes one argument, whether to skip trivia.
func (p *Program) CreateScannerFunction() (goja.Value, error) {
	var fn goja.Value

	err := p.do("createScanner", func() error {
		fn = p.eng.HelperValue(engine.HelperCreateScanner)
		if _, ok := goja.AssertFunction(fn); !ok {
			return &ForeignCallError{Op: "createScanner", Err: errNotFunction}
		}

		return nil
	})

	return fn, err
}

// AsCallback wraps fn as an engine function. After release is called the
// function throws when invoked.
func (p *Program) AsCallback(fn func(goja.FunctionCall) goja.Value) (goja.Value, func(), error) {
	var (
		cb      goja.Value
		release func()
	)

	err := p.do("asCallback", func() error {
		cb, release = p.asCallback(fn)

		return nil
	})

	return cb, release, err
}

// asCallback is AsCallback for callers that already hold p.mu.
func (p *Program) asCallback(fn func(goja.FunctionCall) goja.Value) (goja.Value, func()) {
	var released atomic.Bool

	rt := p.rt
	p.callbacks.Add(1)

	wrapped := func(call goja.FunctionCall) goja.Value {
		if released.Load() {
			panic(rt.NewTypeError(ErrCallbackReleased.Error()))
		}

		return fn(call)
	}

	release := func() {
		if released.CompareAndSwap(false, true) {
			p.callbacks.Add(-1)
		}
	}

	return rt.ToValue(wrapped), release
}

// LiveCallbacks counts callbacks created but not yet released.
func (p *Program) LiveCallbacks() int {
	return int(p.callbacks.Load())
}

// Stats reports how many wrappers the program has handed out.
func (p *Program) Stats() RegistryStats {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return RegistryStats{}
	}

	return p.reg.stats()
}

// Close releases the program and every wrapper it handed out. Later use of
// any of them fails with ErrContextClosed. Close is idempotent.
func (p *Program) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}

	stats := p.reg.stats()

	p.closed = true
	p.reg = nil
	p.program = nil
	p.checker = nil
	p.eng = nil
	p.rt = nil

	p.logger.Debug("program closed", "nodes", stats.Nodes, "types", stats.Types, "symbols", stats.Symbols)

	return nil
}

// Closed reports whether Close has been called.
func (p *Program) Closed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.closed
}
