package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptCache_HitsAndMisses(t *testing.T) {
	t.Parallel()

	c := NewScriptCache(2)
	key := ScriptKey{Name: "a.js", Size: 9, ModTime: 1}

	first, err := c.Compile(key, "var a = 1")
	require.NoError(t, err)

	second, err := c.Compile(key, "var a = 1")
	require.NoError(t, err)
	assert.Same(t, first, second)

	stats := c.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 1, stats.Entries)

	changed := key
	changed.ModTime = 2

	third, err := c.Compile(changed, "var a = 2")
	require.NoError(t, err)
	assert.NotSame(t, first, third)
}

func TestScriptCache_EvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()

	c := NewScriptCache(2)
	a := ScriptKey{Name: "a.js"}
	b := ScriptKey{Name: "b.js"}
	d := ScriptKey{Name: "d.js"}

	for _, key := range []ScriptKey{a, b} {
		_, err := c.Compile(key, "1")
		require.NoError(t, err)
	}

	_, ok := c.get(a)
	require.True(t, ok)

	_, err := c.Compile(d, "1")
	require.NoError(t, err)

	_, ok = c.get(b)
	assert.False(t, ok, "b was least recently used")

	_, ok = c.get(a)
	assert.True(t, ok)

	_, ok = c.get(d)
	assert.True(t, ok)
	assert.Equal(t, 2, c.Stats().Entries)
}

func TestScriptCache_CompileError(t *testing.T) {
	t.Parallel()

	c := NewScriptCache(0)

	_, err := c.Compile(ScriptKey{Name: "bad.js"}, "var = ;")
	require.Error(t, err)
	assert.Zero(t, c.Stats().Entries)
}
