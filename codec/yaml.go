// File: yaml.go
// Role: EncodeYAML/DecodeYAMLDirected/DecodeYAMLUndirected, grounded on
//       loader.go's YAMLLoader strategy (gopkg.in/yaml.v3 against the same
//       wireGraph struct json.go uses, via parallel yaml tags).
package codec

import (
	"github.com/juliuskoskela/gdsl/core"
	"github.com/juliuskoskela/gdsl/literal"
	"gopkg.in/yaml.v3"
)

// EncodeYAML is EncodeJSON's YAML counterpart.
func EncodeYAML[K comparable, N any, E any](nodes []core.Node[K, N, E], edges []core.Edge[K, N, E]) ([]byte, error) {
	return yaml.Marshal(toWire(nodes, edges))
}

// DecodeYAMLDirected is DecodeJSONDirected's YAML counterpart.
func DecodeYAMLDirected[K comparable, N any, E any](data []byte) (map[K]*core.DirectedNode[K, N, E], error) {
	var w wireGraph[K, N, E]
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, err
	}

	return literal.Directed(toLiterals(w))
}

// DecodeYAMLUndirected is DecodeJSONUndirected's YAML counterpart.
func DecodeYAMLUndirected[K comparable, N any, E any](data []byte) (map[K]*core.UndirectedNode[K, N, E], error) {
	var w wireGraph[K, N, E]
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, err
	}

	return literal.Undirected(toLiterals(w))
}
