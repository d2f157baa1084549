package tsc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode_TypeAtLocation(t *testing.T) {
	t.Parallel()

	prog := openProgram(t, map[string]string{"main.ts": "let x = 1; class Box {} let s = 'a';"})

	root, err := prog.SourceFile("main.ts")
	require.NoError(t, err)

	name, err := firstDeclaration(t, firstStatement(t, root)).RequiredChild("name")
	require.NoError(t, err)

	first, err := name.TypeAtLocation()
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := name.TypeAtLocation()
	require.NoError(t, err)
	assert.Same(t, first, second)

	text, err := first.Text()
	require.NoError(t, err)
	assert.Equal(t, "number", text)

	flags, err := first.Flags()
	require.NoError(t, err)
	assert.Equal(t, 8, flags)

	none, err := root.TypeAtLocation()
	require.NoError(t, err)
	assert.Nil(t, none)

	checker, err := prog.TypeChecker()
	require.NoError(t, err)

	viaChecker, err := checker.TypeAtLocation(name)
	require.NoError(t, err)
	assert.Same(t, first, viaChecker)

	stmts, err := root.Children("statements")
	require.NoError(t, err)

	class, err := stmts.At(1)
	require.NoError(t, err)

	classType, err := class.TypeAtLocation()
	require.NoError(t, err)
	require.NotNil(t, classType)

	rendered, err := checker.TypeToString(classType)
	require.NoError(t, err)
	assert.Equal(t, "Box", rendered)

	sym, err := classType.Symbol()
	require.NoError(t, err)
	require.NotNil(t, sym)
	assert.Equal(t, "Box", sym.String())

	primitiveSym, err := first.Symbol()
	require.NoError(t, err)
	assert.Nil(t, primitiveSym)
}

func TestNode_SymbolAtLocation(t *testing.T) {
	t.Parallel()

	root := parse(t, "let total = 1; total;")

	decl := firstDeclaration(t, firstStatement(t, root))

	declName, err := decl.RequiredChild("name")
	require.NoError(t, err)

	sym, err := declName.SymbolAtLocation()
	require.NoError(t, err)
	require.NotNil(t, sym)

	name, err := sym.Name()
	require.NoError(t, err)
	assert.Equal(t, "total", name)

	flags, err := sym.Flags()
	require.NoError(t, err)
	assert.Equal(t, 2, flags)

	decls, err := sym.Declarations()
	require.NoError(t, err)
	require.Len(t, decls, 1)
	assert.Same(t, decl, decls[0])

	stmts, err := root.Children("statements")
	require.NoError(t, err)

	use, err := stmts.At(1)
	require.NoError(t, err)

	ref, err := use.RequiredChild("expression")
	require.NoError(t, err)

	refSym, err := ref.SymbolAtLocation()
	require.NoError(t, err)
	assert.Same(t, sym, refSym)

	init, err := decl.RequiredChild("initializer")
	require.NoError(t, err)

	none, err := init.SymbolAtLocation()
	require.NoError(t, err)
	assert.Nil(t, none)

	stats := root.Program().Stats()
	assert.Equal(t, 1, stats.Symbols)
}
