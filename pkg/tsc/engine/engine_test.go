package engine_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/tscbridge/pkg/tsc/engine"
)

var fixtureScript = filepath.Join("..", "testdata", "fakets.js")

func TestNew_LoadsCompiler(t *testing.T) {
	t.Parallel()

	eng, err := engine.New(context.Background(), engine.Config{Script: fixtureScript, Cache: engine.NewScriptCache(1)})
	require.NoError(t, err)

	assert.Equal(t, fixtureScript, eng.Name())
	assert.Equal(t, "5.0.4-fixture", eng.Version())
	assert.NotNil(t, eng.Runtime())
	assert.NotNil(t, eng.Compiler())

	code, ok := eng.KindCode("LetKeyword")
	assert.True(t, ok)
	assert.Equal(t, 119, code)

	_, ok = eng.KindCode("NotAKind")
	assert.False(t, ok)

	names, err := eng.KindNames()
	require.NoError(t, err)
	assert.Contains(t, names, "SourceFile")
	assert.Contains(t, names, "FirstKeyword")

	_, err = eng.Helper("nope")
	require.ErrorIs(t, err, engine.ErrUnknownHelper)

	_, err = eng.Call("nope")
	require.ErrorIs(t, err, engine.ErrUnknownHelper)
}

func TestNew_ConfigErrors(t *testing.T) {
	t.Parallel()

	_, err := engine.New(context.Background(), engine.Config{})
	require.ErrorIs(t, err, engine.ErrNoScript)

	_, err = engine.New(context.Background(), engine.Config{Script: filepath.Join(t.TempDir(), "missing.js")})
	require.ErrorIs(t, err, os.ErrNotExist)

	broken := filepath.Join(t.TempDir(), "broken.js")
	require.NoError(t, os.WriteFile(broken, []byte("var ts = {"), 0o600))

	_, err = engine.New(context.Background(), engine.Config{Script: broken})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compile")
}

func TestFromSource(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	tests := []struct {
		name    string
		src     string
		wantErr error
	}{
		{name: "global_ts", src: `var ts = { SyntaxKind: { Unknown: 0 } };`},
		{name: "module_exports", src: `module.exports = { SyntaxKind: { Unknown: 0 } };`},
		{name: "no_namespace", src: `var x = 1;`, wantErr: engine.ErrNoCompiler},
		{name: "namespace_without_kinds", src: `var ts = {};`, wantErr: engine.ErrNoCompiler},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			eng, err := engine.FromSource(ctx, tt.name+".js", tt.src, engine.Config{})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Empty(t, eng.Version())

			code, ok := eng.KindCode("Unknown")
			assert.True(t, ok)
			assert.Zero(t, code)
		})
	}
}

func TestFromSource_ScriptThrows(t *testing.T) {
	t.Parallel()

	_, err := engine.FromSource(context.Background(), "throws.js", `throw new Error("no runtime");`, engine.Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no runtime")
}

func TestLoad_HonoursContext(t *testing.T) {
	t.Parallel()

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.FromSource(cancelled, "loop.js", `var ts = { SyntaxKind: {} };`, engine.Config{})
	require.ErrorIs(t, err, engine.ErrLoadInterrupted)
	require.ErrorIs(t, err, context.Canceled)

	_, err = engine.FromSource(context.Background(), "loop.js", `for (;;) {}`, engine.Config{LoadTimeout: 50 * time.Millisecond})
	require.ErrorIs(t, err, engine.ErrLoadInterrupted)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestConsoleRoutesToLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	src := `console.warn("careful", 42); console.log("chatty"); var ts = { SyntaxKind: {} };`

	_, err := engine.FromSource(context.Background(), "noisy.js", src, engine.Config{Logger: logger})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "level=WARN msg=\"careful 42\"")
	assert.Contains(t, out, "level=DEBUG msg=chatty")
	assert.Contains(t, out, "script=noisy.js")
}

func TestDefaultCache(t *testing.T) {
	t.Parallel()

	assert.Same(t, engine.DefaultCache(), engine.DefaultCache())
}
