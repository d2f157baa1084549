package tsc //nolint:testpackage // Tests corrupt engine objects through unexported handles.

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dop251/goja"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/tscbridge/pkg/tsc/engine"
)

func openInternal(t *testing.T, text string) (*Program, *Node) {
	t.Helper()

	eng, err := engine.New(context.Background(), engine.Config{Script: filepath.Join("testdata", "fakets.js")})
	require.NoError(t, err)

	prog, err := Open(context.Background(), eng, []SourceInput{{Name: "main.ts", Text: text}})
	require.NoError(t, err)

	t.Cleanup(func() { _ = prog.Close() })

	root, err := prog.SourceFile("main.ts")
	require.NoError(t, err)

	return prog, root
}

// patch runs fn against the engine object behind n.
func patch(t *testing.T, n *Node, fn func(rt *goja.Runtime, obj *goja.Object) error) {
	t.Helper()

	require.NoError(t, n.prog.do("patch", func() error {
		return fn(n.prog.rt, n.object())
	}))
}

func TestNodeList_NullElementIsMissingProperty(t *testing.T) {
	t.Parallel()

	_, root := openInternal(t, "let a = 1; let b = 2;")

	patch(t, root, func(_ *goja.Runtime, obj *goja.Object) error {
		return obj.Get("statements").(*goja.Object).Set("1", goja.Null())
	})

	stmts, err := root.Children("statements")
	require.NoError(t, err)

	_, err = stmts.At(0)
	require.NoError(t, err)

	_, err = stmts.At(1)
	require.ErrorIs(t, err, ErrMissingProperty)
	assert.Contains(t, err.Error(), "statements[1]")

	_, err = stmts.ToSlice()
	require.ErrorIs(t, err, ErrMissingProperty)

	for range stmts.All() {
	}

	require.ErrorIs(t, stmts.Err(), ErrMissingProperty)
}

func TestNode_EngineExceptionsAreForeignCallErrors(t *testing.T) {
	t.Parallel()

	_, root := openInternal(t, "let a = 1;")

	patch(t, root, func(rt *goja.Runtime, obj *goja.Object) error {
		thrower, err := rt.RunString(`(function () { throw new Error("engine broke"); })`)
		if err != nil {
			return err
		}

		if err := obj.Set("getText", thrower); err != nil {
			return err
		}

		return obj.DefineAccessorProperty("trap", thrower, nil, goja.FLAG_FALSE, goja.FLAG_TRUE)
	})

	_, err := root.Text()
	require.ErrorIs(t, err, ErrForeignCall)
	assert.Contains(t, err.Error(), "engine broke")

	var fce *ForeignCallError
	require.ErrorAs(t, err, &fce)
	assert.Equal(t, "getText", fce.Op)

	_, err = root.StringProperty("trap")
	require.ErrorIs(t, err, ErrForeignCall)
	assert.NotErrorIs(t, err, ErrMissingProperty)

	assert.False(t, root.HasProperty("trap"))
}

func TestNode_MissingMethod(t *testing.T) {
	t.Parallel()

	_, root := openInternal(t, "let a = 1;")

	patch(t, root, func(_ *goja.Runtime, obj *goja.Object) error {
		return obj.Set("getChildCount", 7)
	})

	_, err := root.ChildCount()
	require.ErrorIs(t, err, ErrForeignCall)
	require.ErrorIs(t, err, errNotFunction)
}

func TestNode_KindOutsideTable(t *testing.T) {
	t.Parallel()

	_, root := openInternal(t, "let a = 1;")

	patch(t, root, func(_ *goja.Runtime, obj *goja.Object) error {
		return obj.Set("kind", 9999)
	})

	_, err := root.Kind()
	require.ErrorIs(t, err, ErrUnrecognizedKind)

	code, err := root.KindCode()
	require.NoError(t, err)
	assert.Equal(t, 9999, code)

	_, err = root.BoolProperty("fileName")

	var propErr *PropertyError
	require.ErrorAs(t, err, &propErr)
	assert.Equal(t, KindUnknown, propErr.NodeKind)
}

func TestNode_FractionalNumbersAreNotIntegers(t *testing.T) {
	t.Parallel()

	_, root := openInternal(t, "let a = 1;")

	patch(t, root, func(_ *goja.Runtime, obj *goja.Object) error {
		if err := obj.Set("kind", 8.9); err != nil {
			return err
		}

		return obj.Set("pos", 2.75)
	})

	_, err := root.Kind()
	require.ErrorIs(t, err, ErrTypeMismatch)

	var propErr *PropertyError
	require.ErrorAs(t, err, &propErr)
	assert.Equal(t, "kind", propErr.Property)
	assert.Equal(t, "integer", propErr.Want)
	assert.Equal(t, "number", propErr.Got)

	_, err = root.Start()
	require.ErrorIs(t, err, ErrTypeMismatch)
	require.ErrorAs(t, err, &propErr)
	assert.Equal(t, "pos", propErr.Property)
	assert.Equal(t, KindUnknown, propErr.NodeKind)
}

func TestNode_PropertyNamesExportFailure(t *testing.T) {
	t.Parallel()

	_, root := openInternal(t, "let a = 1;")

	patch(t, root, func(rt *goja.Runtime, _ *goja.Object) error {
		_, err := rt.RunString(`Object.getOwnPropertyNames = function () { return 7; };`)

		return err
	})

	names, err := root.OwnPropertyNames()
	require.ErrorIs(t, err, ErrForeignCall)
	assert.Nil(t, names)

	var fce *ForeignCallError
	require.ErrorAs(t, err, &fce)
	assert.Equal(t, "ownPropertyNames", fce.Op)
}

func TestRegistry_InternsByIdentity(t *testing.T) {
	t.Parallel()

	rt := goja.New()
	a := rt.NewObject()
	b := rt.NewObject()

	ar := newArena[*Node]()
	mk := func(handle int) *Node { return &Node{handle: handle} }

	first := ar.intern(a, mk)
	assert.Same(t, first, ar.intern(a, mk))
	assert.NotSame(t, first, ar.intern(b, mk))
	assert.Equal(t, 2, ar.len())
	assert.Same(t, a, ar.object(first.handle))
	assert.Nil(t, ar.object(5))
	assert.Nil(t, ar.object(-1))
}

func TestTypeOf(t *testing.T) {
	t.Parallel()

	rt := goja.New()

	eval := func(src string) goja.Value {
		v, err := rt.RunString(src)
		require.NoError(t, err)

		return v
	}

	tests := []struct {
		src  string
		want string
	}{
		{src: "undefined", want: "undefined"},
		{src: "null", want: "null"},
		{src: "true", want: "boolean"},
		{src: "'s'", want: "string"},
		{src: "1", want: "number"},
		{src: "1.5", want: "number"},
		{src: "[]", want: "array"},
		{src: "({})", want: "object"},
		{src: "(function () {})", want: "function"},
		{src: "new Boolean(true)", want: "object"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, typeOf(eval(tt.src)), tt.src)
	}

	assert.Equal(t, "undefined", typeOf(nil))

	_, ok := scalar[bool](eval("new Boolean(true)"))
	assert.False(t, ok)

	b, ok := scalar[bool](eval("true"))
	assert.True(t, ok)
	assert.True(t, b)
}
