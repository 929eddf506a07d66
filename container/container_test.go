package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juliuskoskela/gdsl/container"
	"github.com/juliuskoskela/gdsl/core"
)

func TestContainerInsertGetContains(t *testing.T) {
	c := container.New[string, struct{}, int]()
	a := core.NewDirectedNode[string, struct{}, int]("A", struct{}{})
	b := core.NewDirectedNode[string, struct{}, int]("B", struct{}{})

	require.NoError(t, c.Insert(a))
	require.NoError(t, c.Insert(b))
	assert.Equal(t, 2, c.Len())
	assert.True(t, c.Contains("A"))

	got, err := c.Get("B")
	require.NoError(t, err)
	assert.Equal(t, "B", got.Key())
}

func TestContainerInsertDuplicateRejected(t *testing.T) {
	c := container.New[string, struct{}, int]()
	a := core.NewDirectedNode[string, struct{}, int]("A", struct{}{})
	require.NoError(t, c.Insert(a))
	assert.ErrorIs(t, c.Insert(a), container.ErrDuplicateKey)
}

func TestContainerRemove(t *testing.T) {
	c := container.New[string, struct{}, int]()
	a := core.NewDirectedNode[string, struct{}, int]("A", struct{}{})
	require.NoError(t, c.Insert(a))
	require.NoError(t, c.Remove("A"))
	assert.False(t, c.Contains("A"))
	assert.ErrorIs(t, c.Remove("A"), container.ErrNotFound)
}

func TestContainerKeysPreservesInsertionOrder(t *testing.T) {
	c := container.New[string, struct{}, int]()
	for _, k := range []string{"C", "A", "B"} {
		require.NoError(t, c.Insert(core.NewDirectedNode[string, struct{}, int](k, struct{}{})))
	}
	assert.Equal(t, []string{"C", "A", "B"}, c.Keys())
}
