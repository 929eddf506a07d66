// File: json.go
// Role: EncodeJSON/DecodeJSONDirected/DecodeJSONUndirected, grounded on
//       loader.go's JSONLoader strategy (encoding/json.Marshal/Unmarshal
//       against a plain Go struct, no custom MarshalJSON).
package codec

import (
	"encoding/json"

	"github.com/juliuskoskela/gdsl/core"
	"github.com/juliuskoskela/gdsl/literal"
)

// EncodeJSON renders nodes and edges as spec §6's ordered node/edge lists
// in JSON. Callers choose the ordering and which edges to include (e.g. a
// container.Container's Nodes() plus every edge reachable from them, or a
// search result tree's edge set) — EncodeJSON does not walk adjacency
// itself, so it never double-counts an undirected edge seen from both ends
// unless the caller's edge slice does.
func EncodeJSON[K comparable, N any, E any](nodes []core.Node[K, N, E], edges []core.Edge[K, N, E]) ([]byte, error) {
	return json.Marshal(toWire(nodes, edges))
}

// DecodeJSONDirected parses EncodeJSON's output back into directed nodes,
// realized via literal.Directed. Returns literal.ErrUnknownTarget if an
// edge names a key absent from the node list.
func DecodeJSONDirected[K comparable, N any, E any](data []byte) (map[K]*core.DirectedNode[K, N, E], error) {
	var w wireGraph[K, N, E]
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, err
	}

	return literal.Directed(toLiterals(w))
}

// DecodeJSONUndirected is DecodeJSONDirected's undirected counterpart.
func DecodeJSONUndirected[K comparable, N any, E any](data []byte) (map[K]*core.UndirectedNode[K, N, E], error) {
	var w wireGraph[K, N, E]
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, err
	}

	return literal.Undirected(toLiterals(w))
}
