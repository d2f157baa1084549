package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/tscbridge/pkg/config"
	"github.com/Sumatoshi-tech/tscbridge/pkg/observability"
	"github.com/Sumatoshi-tech/tscbridge/pkg/safeconv"
	"github.com/Sumatoshi-tech/tscbridge/pkg/tsc"
	"github.com/Sumatoshi-tech/tscbridge/pkg/tsc/engine"
	"github.com/Sumatoshi-tech/tscbridge/pkg/version"
)

// ErrUnsupportedLanguage is returned for an unknown --language value.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// annotationBare marks commands that run without config or telemetry.
const annotationBare = "tscbridge/bare"

// app is the state shared by every command of one invocation.
type app struct {
	configPath  string
	script      string
	metricsAddr string
	verbose     bool
	quiet       bool

	stdin  io.Reader
	stderr io.Writer

	cfg       *config.Config
	providers observability.Providers
	logger    *slog.Logger
	calls     *observability.ForeignCallMetrics
	cache     *engine.ScriptCache
	metrics   *observability.MetricsServer
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if cmd.Annotations[annotationBare] != "" {
		return nil
	}

	cfg, err := config.LoadConfig(a.configPath)
	if err != nil {
		return err
	}

	if a.script != "" {
		cfg.Engine.Script = a.script
	}

	if a.metricsAddr != "" {
		cfg.Observability.MetricsAddr = a.metricsAddr
	}

	mode := observability.ModeCLI
	if cmd.Name() == mcpCommandName {
		mode = observability.ModeMCP
	}

	tel := cfg.Telemetry(version.Resolved(), mode)
	tel.LogOutput = a.stderr

	switch {
	case a.verbose:
		tel.LogLevel = slog.LevelDebug
	case a.quiet:
		tel.LogLevel = slog.LevelError
	}

	providers, err := observability.Init(tel)
	if err != nil {
		return fmt.Errorf("init observability: %w", err)
	}

	calls, err := observability.NewForeignCallMetrics(providers.Meter)
	if err != nil {
		return errors.Join(err, providers.Shutdown(context.Background()))
	}

	a.cfg = cfg
	a.providers = providers
	a.logger = providers.Logger
	a.calls = calls
	a.cache = engine.NewScriptCache(cfg.Engine.CacheEntries)

	if providers.MetricsHandler != nil {
		ms, err := observability.StartMetricsServer(cfg.Observability.MetricsAddr, providers.MetricsHandler,
			providers.Tracer, a.logger, a.scriptReady)
		if err != nil {
			return err
		}

		a.metrics = ms
	}

	return nil
}

// teardown stops the metrics endpoint and flushes telemetry. It is a no-op
// when setup never ran.
func (a *app) teardown() error {
	if a.cfg == nil {
		return nil
	}

	var errs []error

	if a.metrics != nil {
		errs = append(errs, a.metrics.Shutdown(context.Background()))
	}

	stats := a.cache.Stats()
	a.logger.Debug("script cache", "hits", stats.Hits, "misses", stats.Misses)

	errs = append(errs, a.providers.Shutdown(context.Background()))
	a.cfg = nil

	return errors.Join(errs...)
}

// scriptReady reports whether the compiler script can be loaded.
func (a *app) scriptReady(context.Context) error {
	_, err := os.Stat(a.cfg.Engine.Script)

	return err
}

// newEngine loads the configured compiler script into a fresh engine.
func (a *app) newEngine(ctx context.Context) (*engine.Engine, error) {
	eng, err := engine.New(ctx, engine.Config{
		Script:      a.cfg.Engine.Script,
		LoadTimeout: a.cfg.Engine.LoadTimeout,
		Cache:       a.cache,
		Logger:      a.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("load compiler: %w", err)
	}

	return eng, nil
}

// source is one parsed input file.
type source struct {
	prog *tsc.Program
	name string
	text string
	root *tsc.Node
}

func (s *source) Close() error { return s.prog.Close() }

// openSource reads path (or stdin for "-") and parses it in its own program.
// A non-empty lang overrides dialect detection.
func (a *app) openSource(ctx context.Context, path, lang string) (*source, error) {
	forced, ok := tsc.ParseScriptKind(lang)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, lang)
	}

	data, name, err := readInput(path, a.stdin)
	if err != nil {
		return nil, err
	}

	ctx, span := a.providers.Tracer.Start(ctx, "cli.open_source")
	defer span.End()

	eng, err := a.newEngine(ctx)
	if err != nil {
		return nil, err
	}

	kind := forced
	if kind == tsc.ScriptKindUnknown {
		kind = tsc.DetectScriptKind(name, data)
	}

	a.logger.DebugContext(ctx, "parsing source", "file", name, "kind", kind.String(), "size", humanize.Bytes(safeconv.MustInt64ToUint64(int64(len(data)))))

	prog, err := tsc.Open(ctx, eng, []tsc.SourceInput{{Name: name, Text: string(data), Kind: kind}},
		tsc.WithLogger(a.logger),
		tsc.WithTracer(a.providers.Tracer),
		tsc.WithMetrics(a.calls),
		tsc.WithSkipTrivia(a.cfg.Scanner.SkipTrivia),
		tsc.WithKindVerification(a.cfg.Engine.VerifyKinds),
	)
	if err != nil {
		return nil, err
	}

	root, err := prog.SourceFile(name)
	if err != nil {
		return nil, errors.Join(err, prog.Close())
	}

	return &source{prog: prog, name: name, text: string(data), root: root}, nil
}
