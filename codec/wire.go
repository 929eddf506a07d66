// File: wire.go
// Role: wireGraph — the on-disk shape both json.go and yaml.go marshal,
//       and the conversion to/from literal.NodeLiteral that lets decode
//       reuse literal's two-pass realization instead of repeating it.
package codec

import (
	"github.com/juliuskoskela/gdsl/core"
	"github.com/juliuskoskela/gdsl/literal"
)

type wireNode[K comparable, N any] struct {
	Key   K `json:"key" yaml:"key"`
	Value N `json:"value" yaml:"value"`
}

type wireEdge[K comparable, E any] struct {
	Source K `json:"source" yaml:"source"`
	Target K `json:"target" yaml:"target"`
	Weight E `json:"weight" yaml:"weight"`
}

// wireGraph is the ordered (key, value) node list followed by the ordered
// (source_key, target_key, weight) edge list spec §6 describes. Both
// encoding/json and yaml.v3 read this one struct via their respective
// tags, so EncodeJSON and EncodeYAML never drift against each other.
type wireGraph[K comparable, N any, E any] struct {
	Nodes []wireNode[K, N] `json:"nodes" yaml:"nodes"`
	Edges []wireEdge[K, E] `json:"edges" yaml:"edges"`
}

func toWire[K comparable, N any, E any](nodes []core.Node[K, N, E], edges []core.Edge[K, N, E]) wireGraph[K, N, E] {
	w := wireGraph[K, N, E]{
		Nodes: make([]wireNode[K, N], len(nodes)),
		Edges: make([]wireEdge[K, E], len(edges)),
	}
	for i, n := range nodes {
		w.Nodes[i] = wireNode[K, N]{Key: n.Key(), Value: n.Value()}
	}
	for i, e := range edges {
		w.Edges[i] = wireEdge[K, E]{Source: e.Source.Key(), Target: e.Target.Key(), Weight: e.Weight}
	}

	return w
}

// toLiterals regroups the flat edge list by source key so the wire format
// can be handed to literal.Directed/Undirected, which wants each node's
// outgoing edges attached to it rather than listed separately.
func toLiterals[K comparable, N any, E any](w wireGraph[K, N, E]) []literal.NodeLiteral[K, N, E] {
	bySource := make(map[K][]literal.EdgeLiteral[K, E], len(w.Nodes))
	for _, e := range w.Edges {
		bySource[e.Source] = append(bySource[e.Source], literal.EdgeLiteral[K, E]{Target: e.Target, Weight: e.Weight})
	}

	lits := make([]literal.NodeLiteral[K, N, E], len(w.Nodes))
	for i, n := range w.Nodes {
		lits[i] = literal.NodeLiteral[K, N, E]{Key: n.Key, Value: n.Value, Edges: bySource[n.Key]}
	}

	return lits
}
