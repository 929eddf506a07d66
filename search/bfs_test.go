package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juliuskoskela/gdsl/core"
	"github.com/juliuskoskela/gdsl/search"
)

// buildDirected builds nodes keyed 1..n with no payload and wires the given
// directed edges (weight 0), returning the node for each key.
func buildDirected(t *testing.T, n int, edges [][2]int) map[int]*core.DirectedNode[int, struct{}, int] {
	t.Helper()
	nodes := make(map[int]*core.DirectedNode[int, struct{}, int], n)
	for i := 1; i <= n; i++ {
		nodes[i] = core.NewDirectedNode[int, struct{}, int](i, struct{}{})
	}
	for _, e := range edges {
		nodes[e[0]].Connect(nodes[e[1]], 0)
	}
	return nodes
}

// TestBFSScenarioA is spec §8 scenario A: directed unweighted shortest path.
func TestBFSScenarioA(t *testing.T) {
	nodes := buildDirected(t, 6, [][2]int{{1, 2}, {1, 3}, {2, 3}, {3, 5}, {5, 4}, {4, 6}})

	path, err := search.BFS[int, struct{}, int](nodes[1]).Target(6).SearchPath()
	require.NoError(t, err)
	require.Len(t, path, 4)

	want := [][2]int{{1, 3}, {3, 5}, {5, 4}, {4, 6}}
	for i, e := range path {
		assert.Equal(t, want[i][0], e.Source.Key())
		assert.Equal(t, want[i][1], e.Target.Key())
	}
}

func TestBFSUndirectedScenarioC(t *testing.T) {
	keys := []string{"A", "B", "C", "D", "E"}
	nodes := make(map[string]*core.UndirectedNode[string, struct{}, int], len(keys))
	for _, k := range keys {
		nodes[k] = core.NewUndirectedNode[string, struct{}, int](k, struct{}{})
	}
	edges := [][2]string{{"A", "C"}, {"B", "E"}, {"B", "A"}, {"C", "D"}, {"C", "B"}, {"D", "E"}}
	for _, e := range edges {
		nodes[e[0]].Connect(nodes[e[1]], 0)
	}

	path, err := search.BFS[string, struct{}, int](nodes["A"]).Target("E").SearchPath()
	require.NoError(t, err)
	require.Len(t, path, 2)
	assert.Equal(t, "A", path[0].Source.Key())
	assert.Equal(t, "B", path[0].Target.Key())
	assert.Equal(t, "B", path[1].Source.Key())
	assert.Equal(t, "E", path[1].Target.Key())
}

func TestBFSSelfLoopScenarioF(t *testing.T) {
	a := core.NewDirectedNode[string, struct{}, int]("A", struct{}{})
	b := core.NewDirectedNode[string, struct{}, int]("B", struct{}{})
	a.Connect(a, 0)
	a.Connect(b, 0)

	nodes, err := search.BFS[string, struct{}, int](a).SearchNodes()
	require.NoError(t, err)
	require.Len(t, nodes, 2, "self-loop must not cause A to be visited twice")

	path, err := search.BFS[string, struct{}, int](a).Target("B").SearchPath()
	require.NoError(t, err)
	require.Len(t, path, 1)
}

func TestBFSStartEqualsTarget(t *testing.T) {
	a := core.NewDirectedNode[string, struct{}, int]("A", struct{}{})

	ok, err := search.BFS[string, struct{}, int](a).Target("A").Search()
	require.NoError(t, err)
	assert.True(t, ok)

	path, err := search.BFS[string, struct{}, int](a).Target("A").SearchPath()
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestBFSUnreachableTargetNotFound(t *testing.T) {
	a := core.NewDirectedNode[string, struct{}, int]("A", struct{}{})
	b := core.NewDirectedNode[string, struct{}, int]("B", struct{}{})

	_, err := search.BFS[string, struct{}, int](a).Target(b.Key()).SearchPath()
	assert.ErrorIs(t, err, search.ErrNotFound)
}

func TestBFSVisitsEveryReachableNodeOnce(t *testing.T) {
	nodes := buildDirected(t, 6, [][2]int{{1, 2}, {1, 3}, {2, 3}, {3, 5}, {5, 4}, {4, 6}})

	visited, err := search.BFS[int, struct{}, int](nodes[1]).SearchNodes()
	require.NoError(t, err)

	seen := map[int]bool{}
	for _, n := range visited {
		assert.False(t, seen[n.Key()], "duplicate visit of %v", n.Key())
		seen[n.Key()] = true
	}
	for i := 1; i <= 6; i++ {
		assert.True(t, seen[i], "expected %d reachable from 1", i)
	}
}
