package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juliuskoskela/gdsl/codec"
	"github.com/juliuskoskela/gdsl/core"
)

func buildDirectedFixture(t *testing.T) ([]core.Node[string, int, int], []core.Edge[string, int, int]) {
	t.Helper()
	a := core.NewDirectedNode[string, int, int]("A", 1)
	b := core.NewDirectedNode[string, int, int]("B", 2)
	c := core.NewDirectedNode[string, int, int]("C", 3)
	a.Connect(b, 4)
	b.Connect(c, 5)

	nodes := []core.Node[string, int, int]{a, b, c}
	var edges []core.Edge[string, int, int]
	for _, n := range []*core.DirectedNode[string, int, int]{a, b, c} {
		for e := range n.Neighbors() {
			edges = append(edges, e)
		}
	}

	return nodes, edges
}

func TestJSONRoundTripDirected(t *testing.T) {
	nodes, edges := buildDirectedFixture(t)

	data, err := codec.EncodeJSON(nodes, edges)
	require.NoError(t, err)

	decoded, err := codec.DecodeJSONDirected[string, int, int](data)
	require.NoError(t, err)
	require.Len(t, decoded, 3)
	assert.True(t, decoded["A"].IsConnected(decoded["B"]))
	assert.True(t, decoded["B"].IsConnected(decoded["C"]))
	assert.False(t, decoded["C"].IsConnected(decoded["A"]))
	assert.Equal(t, 2, decoded["B"].Value())
}

func TestYAMLRoundTripDirected(t *testing.T) {
	nodes, edges := buildDirectedFixture(t)

	data, err := codec.EncodeYAML(nodes, edges)
	require.NoError(t, err)

	decoded, err := codec.DecodeYAMLDirected[string, int, int](data)
	require.NoError(t, err)
	require.Len(t, decoded, 3)
	assert.True(t, decoded["A"].IsConnected(decoded["B"]))
}

func TestJSONRoundTripUndirected(t *testing.T) {
	a := core.NewUndirectedNode[string, int, int]("A", 1)
	b := core.NewUndirectedNode[string, int, int]("B", 2)
	a.Connect(b, 9)

	nodes := []core.Node[string, int, int]{a, b}
	var edges []core.Edge[string, int, int]
	for e := range a.Neighbors() {
		edges = append(edges, e)
	}

	data, err := codec.EncodeJSON(nodes, edges)
	require.NoError(t, err)

	decoded, err := codec.DecodeJSONUndirected[string, int, int](data)
	require.NoError(t, err)
	assert.True(t, decoded["A"].IsConnected(decoded["B"]))
	assert.True(t, decoded["B"].IsConnected(decoded["A"]))
}

func TestDecodeJSONUnknownTargetFails(t *testing.T) {
	data := []byte(`{"nodes":[{"key":"A","value":1}],"edges":[{"source":"A","target":"Z","weight":1}]}`)
	_, err := codec.DecodeJSONDirected[string, int, int](data)
	assert.Error(t, err)
}
