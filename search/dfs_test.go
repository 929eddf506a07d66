package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juliuskoskela/gdsl/core"
	"github.com/juliuskoskela/gdsl/search"
)

// TestDFSCycleScenarioE is spec §8 scenario E: A->B->C->A terminates and
// visits each node exactly once.
func TestDFSCycleScenarioE(t *testing.T) {
	a := core.NewDirectedNode[string, struct{}, int]("A", struct{}{})
	b := core.NewDirectedNode[string, struct{}, int]("B", struct{}{})
	c := core.NewDirectedNode[string, struct{}, int]("C", struct{}{})
	a.Connect(b, 0)
	b.Connect(c, 0)
	c.Connect(a, 0)

	visited, err := search.DFS[string, struct{}, int](a).SearchNodes()
	require.NoError(t, err)
	require.Len(t, visited, 3)

	seen := map[string]bool{}
	for _, n := range visited {
		seen[n.Key()] = true
	}
	assert.True(t, seen["A"] && seen["B"] && seen["C"])
}

// TestDFSPreorderPostorderSameNodeSet is spec §8 property 6.
func TestDFSPreorderPostorderSameNodeSet(t *testing.T) {
	a := core.NewDirectedNode[string, struct{}, int]("A", struct{}{})
	b := core.NewDirectedNode[string, struct{}, int]("B", struct{}{})
	c := core.NewDirectedNode[string, struct{}, int]("C", struct{}{})
	d := core.NewDirectedNode[string, struct{}, int]("D", struct{}{})
	a.Connect(b, 0)
	a.Connect(c, 0)
	b.Connect(d, 0)

	pre, err := search.DFS[string, struct{}, int](a).SearchNodes()
	require.NoError(t, err)
	post, err := search.DFS[string, struct{}, int](a).Postorder().SearchNodes()
	require.NoError(t, err)

	require.Equal(t, len(pre), len(post))
	assert.Equal(t, "A", pre[0].Key(), "preorder visits A first")
	assert.Equal(t, "A", post[len(post)-1].Key(), "postorder visits A last")

	toSet := func(ns []core.Node[string, struct{}, int]) map[string]bool {
		m := map[string]bool{}
		for _, n := range ns {
			m[n.Key()] = true
		}
		return m
	}
	assert.Equal(t, toSet(pre), toSet(post))
}

func TestDFSStopsOnTarget(t *testing.T) {
	a := core.NewDirectedNode[string, struct{}, int]("A", struct{}{})
	b := core.NewDirectedNode[string, struct{}, int]("B", struct{}{})
	c := core.NewDirectedNode[string, struct{}, int]("C", struct{}{})
	a.Connect(b, 0)
	a.Connect(c, 0)

	path, err := search.DFS[string, struct{}, int](a).Target("B").SearchPath()
	require.NoError(t, err)
	require.Len(t, path, 1)
	assert.Equal(t, "B", path[0].Target.Key())
}
