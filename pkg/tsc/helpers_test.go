package tsc_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/tscbridge/pkg/tsc"
	"github.com/Sumatoshi-tech/tscbridge/pkg/tsc/engine"
)

var fixtureScript = filepath.Join("testdata", "fakets.js")

func loadEngine(t *testing.T) *engine.Engine {
	t.Helper()

	eng, err := engine.New(context.Background(), engine.Config{Script: fixtureScript})
	require.NoError(t, err)

	return eng
}

func openProgram(t *testing.T, files map[string]string, opts ...tsc.Option) *tsc.Program {
	t.Helper()

	inputs := make([]tsc.SourceInput, 0, len(files))
	for name, text := range files {
		inputs = append(inputs, tsc.SourceInput{Name: name, Text: text})
	}

	prog, err := tsc.Open(context.Background(), loadEngine(t), inputs, opts...)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, prog.Close())
	})

	return prog
}

// openFixture opens main.ts without registering cleanup, for tests that
// close the program themselves.
func openFixture(t *testing.T, text string) (*tsc.Program, error) {
	t.Helper()

	return tsc.Open(context.Background(), loadEngine(t), []tsc.SourceInput{{Name: "main.ts", Text: text}})
}

func parse(t *testing.T, text string) *tsc.Node {
	t.Helper()

	prog := openProgram(t, map[string]string{"main.ts": text})

	root, err := prog.SourceFile("main.ts")
	require.NoError(t, err)

	return root
}

// childrenOf collects the structural children of n.
func childrenOf(t *testing.T, n *tsc.Node) []*tsc.Node {
	t.Helper()

	var out []*tsc.Node

	require.NoError(t, n.ForEachChild(func(child *tsc.Node) error {
		out = append(out, child)

		return nil
	}))

	return out
}

// firstStatement returns statements[0] of root.
func firstStatement(t *testing.T, root *tsc.Node) *tsc.Node {
	t.Helper()

	stmts, err := root.Children("statements")
	require.NoError(t, err)

	stmt, err := stmts.At(0)
	require.NoError(t, err)

	return stmt
}

// firstDeclaration returns the first VariableDeclaration of a variable statement.
func firstDeclaration(t *testing.T, stmt *tsc.Node) *tsc.Node {
	t.Helper()

	list, err := stmt.RequiredChild("declarationList")
	require.NoError(t, err)

	decls, err := list.Children("declarations")
	require.NoError(t, err)

	decl, err := decls.At(0)
	require.NoError(t, err)

	return decl
}
