// Package engine hosts the JavaScript runtime that runs the TypeScript
// compiler script and the glue the bridge calls into.
package engine

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/dop251/goja"
	"github.com/dustin/go-humanize"

	"github.com/Sumatoshi-tech/tscbridge/pkg/safeconv"
)

//go:embed bootstrap.js
var bootstrapSource string

// Sentinel errors for engine loading.
var (
	ErrNoScript        = errors.New("no compiler script configured")
	ErrNoCompiler      = errors.New("compiler script did not define a ts namespace")
	ErrBadGlue         = errors.New("bootstrap glue is malformed")
	ErrLoadInterrupted = errors.New("engine load interrupted")
	ErrUnknownHelper   = errors.New("unknown glue helper")
)

// Glue helper names.
const (
	HelperCreateProgram    = "createProgram"
	HelperCreateScanner    = "createScanner"
	HelperPropertyNames    = "propertyNames"
	HelperOwnPropertyNames = "ownPropertyNames"
	HelperKindCode         = "kindCode"
	HelperKindNames        = "kindNames"
)

var (
	defaultCacheOnce sync.Once
	defaultCache     *ScriptCache
)

// DefaultCache returns the process-wide compiled-script cache.
func DefaultCache() *ScriptCache {
	defaultCacheOnce.Do(func() {
		defaultCache = NewScriptCache(DefaultCacheEntries)
	})

	return defaultCache
}

// Config controls how an engine is loaded.
type Config struct {
	// Script is the path of the compiler script (typescript.js).
	Script string
	// LoadTimeout bounds script evaluation. Zero means no bound beyond ctx.
	LoadTimeout time.Duration
	// Cache holds compiled scripts. Nil uses [DefaultCache].
	Cache  *ScriptCache
	Logger *slog.Logger
}

// Engine is one JavaScript runtime with the compiler loaded. It is not safe
// for concurrent use; callers serialize access.
type Engine struct {
	rt      *goja.Runtime
	ts      *goja.Object
	glue    *goja.Object
	helpers map[string]goja.Callable
	name    string
	version string
	logger  *slog.Logger
}

// New reads, compiles and runs the compiler script named by cfg.Script.
func New(ctx context.Context, cfg Config) (*Engine, error) {
	if cfg.Script == "" {
		return nil, ErrNoScript
	}

	info, err := os.Stat(cfg.Script)
	if err != nil {
		return nil, fmt.Errorf("stat compiler script: %w", err)
	}

	data, err := os.ReadFile(cfg.Script)
	if err != nil {
		return nil, fmt.Errorf("read compiler script: %w", err)
	}

	cache := cfg.Cache
	if cache == nil {
		cache = DefaultCache()
	}

	key := ScriptKey{Name: cfg.Script, Size: info.Size(), ModTime: info.ModTime().UnixNano()}

	prog, err := cache.Compile(key, string(data))
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", cfg.Script, err)
	}

	if cfg.Logger != nil {
		cfg.Logger.Debug("compiler script ready", "script", cfg.Script, "size", humanize.Bytes(safeconv.MustInt64ToUint64(info.Size())))
	}

	return load(ctx, cfg.Script, prog, cfg)
}

// FromSource compiles and runs an in-memory compiler script. The compiled
// program is not cached.
func FromSource(ctx context.Context, name, src string, cfg Config) (*Engine, error) {
	prog, err := goja.Compile(name, src, false)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", name, err)
	}

	return load(ctx, name, prog, cfg)
}

func load(ctx context.Context, name string, prog *goja.Program, cfg Config) (*Engine, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if cfg.LoadTimeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, cfg.LoadTimeout)
		defer cancel()
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadInterrupted, err)
	}

	rt := goja.New()
	installConsole(rt, logger.With("script", name))

	module := rt.NewObject()
	exports := rt.NewObject()

	if err := module.Set("exports", exports); err != nil {
		return nil, fmt.Errorf("define module: %w", err)
	}

	if err := rt.Set("module", module); err != nil {
		return nil, fmt.Errorf("define module: %w", err)
	}

	if err := rt.Set("exports", exports); err != nil {
		return nil, fmt.Errorf("define exports: %w", err)
	}

	started := time.Now()

	stop := context.AfterFunc(ctx, func() {
		rt.Interrupt(ctx.Err())
	})

	eng, err := evaluate(rt, prog, module)

	stop()
	rt.ClearInterrupt()

	if err != nil {
		var interrupted *goja.InterruptedError
		if errors.As(err, &interrupted) {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadInterrupted, name, context.Cause(ctx))
		}

		return nil, err
	}

	eng.name = name
	eng.logger = logger

	logger.Debug("compiler engine loaded",
		"script", name,
		"version", eng.version,
		"took", time.Since(started),
	)

	return eng, nil
}

func evaluate(rt *goja.Runtime, prog *goja.Program, module *goja.Object) (*Engine, error) {
	if _, err := rt.RunProgram(prog); err != nil {
		return nil, fmt.Errorf("run compiler script: %w", err)
	}

	ts := findCompiler(rt, module)
	if ts == nil {
		return nil, ErrNoCompiler
	}

	fnValue, err := rt.RunScript("bootstrap.js", bootstrapSource)
	if err != nil {
		return nil, fmt.Errorf("run bootstrap: %w", err)
	}

	fn, ok := goja.AssertFunction(fnValue)
	if !ok {
		return nil, fmt.Errorf("%w: bootstrap is not a function", ErrBadGlue)
	}

	glueValue, err := fn(goja.Undefined(), ts)
	if err != nil {
		return nil, fmt.Errorf("run bootstrap: %w", err)
	}

	glue, ok := glueValue.(*goja.Object)
	if !ok {
		return nil, fmt.Errorf("%w: bootstrap returned %s", ErrBadGlue, glueValue)
	}

	helpers := make(map[string]goja.Callable)

	for _, helper := range []string{
		HelperCreateProgram, HelperCreateScanner, HelperPropertyNames,
		HelperOwnPropertyNames, HelperKindCode, HelperKindNames,
	} {
		call, isFunc := goja.AssertFunction(glue.Get(helper))
		if !isFunc {
			return nil, fmt.Errorf("%w: missing %s", ErrBadGlue, helper)
		}

		helpers[helper] = call
	}

	version := ""
	if v := glue.Get("version"); v != nil {
		version = v.String()
	}

	return &Engine{rt: rt, ts: ts, glue: glue, helpers: helpers, version: version}, nil
}

// findCompiler returns the global ts namespace, falling back to module.exports.
func findCompiler(rt *goja.Runtime, module *goja.Object) *goja.Object {
	if obj := namespace(rt.Get("ts")); obj != nil {
		return obj
	}

	return namespace(module.Get("exports"))
}

func namespace(v goja.Value) *goja.Object {
	obj, ok := v.(*goja.Object)
	if !ok {
		return nil
	}

	if kinds, isObj := obj.Get("SyntaxKind").(*goja.Object); !isObj || kinds == nil {
		return nil
	}

	return obj
}

// Runtime returns the underlying runtime.
func (e *Engine) Runtime() *goja.Runtime { return e.rt }

// Compiler returns the ts namespace object.
func (e *Engine) Compiler() *goja.Object { return e.ts }

// Name returns the script name the engine was loaded from.
func (e *Engine) Name() string { return e.name }

// Version returns ts.version, or "" when the script does not declare one.
func (e *Engine) Version() string { return e.version }

// Logger returns the logger the engine was loaded with.
func (e *Engine) Logger() *slog.Logger { return e.logger }

// Helper returns the glue function registered under name.
func (e *Engine) Helper(name string) (goja.Callable, error) {
	call, ok := e.helpers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownHelper, name)
	}

	return call, nil
}

// HelperValue returns the glue function under name as an engine value.
func (e *Engine) HelperValue(name string) goja.Value {
	return e.glue.Get(name)
}

// Call invokes a glue helper with Go arguments converted by the runtime.
func (e *Engine) Call(name string, args ...any) (goja.Value, error) {
	call, err := e.Helper(name)
	if err != nil {
		return nil, err
	}

	values := make([]goja.Value, len(args))
	for i, arg := range args {
		values[i] = e.rt.ToValue(arg)
	}

	return call(goja.Undefined(), values...)
}

// KindCode looks up a SyntaxKind member by name in the loaded compiler.
func (e *Engine) KindCode(name string) (int, bool) {
	v, err := e.Call(HelperKindCode, name)
	if err != nil {
		return 0, false
	}

	code := int(v.ToInteger())
	if code < 0 {
		return 0, false
	}

	return code, true
}

// KindNames lists the SyntaxKind member names the compiler declares.
func (e *Engine) KindNames() ([]string, error) {
	v, err := e.Call(HelperKindNames)
	if err != nil {
		return nil, err
	}

	var names []string
	if err := e.rt.ExportTo(v, &names); err != nil {
		return nil, fmt.Errorf("export kind names: %w", err)
	}

	return names, nil
}

func installConsole(rt *goja.Runtime, logger *slog.Logger) {
	console := rt.NewObject()

	level := func(lvl slog.Level) func(goja.FunctionCall) goja.Value {
		return func(call goja.FunctionCall) goja.Value {
			parts := make([]string, len(call.Arguments))
			for i, arg := range call.Arguments {
				parts[i] = arg.String()
			}

			logger.Log(context.Background(), lvl, strings.Join(parts, " "), "source", "console")

			return goja.Undefined()
		}
	}

	_ = console.Set("log", level(slog.LevelDebug))
	_ = console.Set("debug", level(slog.LevelDebug))
	_ = console.Set("info", level(slog.LevelInfo))
	_ = console.Set("warn", level(slog.LevelWarn))
	_ = console.Set("error", level(slog.LevelError))
	_ = rt.Set("console", console)
}
