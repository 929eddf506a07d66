package search_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juliuskoskela/gdsl/core"
	"github.com/juliuskoskela/gdsl/search"
)

// distCell is the interior-mutability cell spec §3 describes: N carries a
// pointer so the relaxation Map callback can update it in place.
type distCell struct {
	dist int
}

func lessDist(a, b *distCell) bool { return a.dist < b.dist }

// relax is the classical Dijkstra relaxation step, expressed as a Filter
// rather than a Map: it must gate admission on whether this edge actually
// improves the target's distance, and only Filter's bool return lets it do
// that. A plain Map fires unconditionally and would let a later, worse edge
// into the target still get admitted after a shorter one already arrived,
// corrupting path reconstruction once the target is finalized.
func relax(e core.Edge[string, *distCell, int]) bool {
	u := e.Source.Value()
	v := e.Target.Value()
	if nd := u.dist + e.Weight; nd < v.dist {
		v.dist = nd
		return true
	}
	return false
}

// TestPFSRelaxationProducesShortestDistances is spec §8 property 5, on a
// small weighted diamond: A -2-> B -2-> D, A -1-> C -1-> D.
func TestPFSRelaxationProducesShortestDistances(t *testing.T) {
	a := core.NewDirectedNode[string, *distCell, int]("A", &distCell{dist: 0})
	b := core.NewDirectedNode[string, *distCell, int]("B", &distCell{dist: math.MaxInt32})
	c := core.NewDirectedNode[string, *distCell, int]("C", &distCell{dist: math.MaxInt32})
	d := core.NewDirectedNode[string, *distCell, int]("D", &distCell{dist: math.MaxInt32})
	a.Connect(b, 2)
	a.Connect(c, 1)
	b.Connect(d, 2)
	c.Connect(d, 1)

	ok, err := search.PFS[string, *distCell, int](a, lessDist).Filter(relax).Target("D").Search()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, d.Value().dist)
}

func TestPFSMissingLessFails(t *testing.T) {
	a := core.NewDirectedNode[string, *distCell, int]("A", &distCell{dist: 0})
	_, err := search.PFS[string, *distCell, int](a, nil).Search()
	assert.ErrorIs(t, err, search.ErrMissingLess)
}

func TestPFSPathReconstruction(t *testing.T) {
	a := core.NewDirectedNode[string, *distCell, int]("A", &distCell{dist: 0})
	b := core.NewDirectedNode[string, *distCell, int]("B", &distCell{dist: math.MaxInt32})
	c := core.NewDirectedNode[string, *distCell, int]("C", &distCell{dist: math.MaxInt32})
	d := core.NewDirectedNode[string, *distCell, int]("D", &distCell{dist: math.MaxInt32})
	a.Connect(b, 2)
	a.Connect(c, 1)
	b.Connect(d, 2)
	c.Connect(d, 1)

	path, err := search.PFS[string, *distCell, int](a, lessDist).Filter(relax).Target("D").SearchPath()
	require.NoError(t, err)
	require.Len(t, path, 2)
	assert.Equal(t, "A", path[0].Source.Key())
	assert.Equal(t, "C", path[0].Target.Key())
	assert.Equal(t, "C", path[1].Source.Key())
	assert.Equal(t, "D", path[1].Target.Key())
}
