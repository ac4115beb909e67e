package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRootDefaultsToFirst(t *testing.T) {
	rt, _ := newTestRuntime(t)
	r := NewRegistry()
	a, _ := New(rt, "a", "A", 1, nil)
	b, _ := New(rt, "b", "B", 1, nil)
	require.NoError(t, r.Register(a))
	require.NoError(t, r.Register(b))

	root, ok := r.Root()
	require.True(t, ok)
	assert.Same(t, a, root)
	assert.Equal(t, []string{"a", "b"}, r.IDs())

	require.NoError(t, r.SetRoot("b"))
	root, _ = r.Root()
	assert.Same(t, b, root)
	assert.ErrorIs(t, r.SetRoot("zzz"), ErrUnknownMenu)
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	rt, _ := newTestRuntime(t)
	r := NewRegistry()
	a, _ := New(rt, "a", "A", 1, nil)
	again, _ := New(rt, "a", "Again", 1, nil)
	require.NoError(t, r.Register(a))
	assert.ErrorIs(t, r.Register(again), ErrDuplicateMenu)
	assert.Error(t, r.Register(nil))

	found, ok := r.Find("a")
	require.True(t, ok)
	assert.Same(t, a, found)
	_, ok = r.Find("missing")
	assert.False(t, ok)
	assert.Len(t, r.Menus(), 1)
}
