// Package codec serializes a node set as spec §6 describes: an ordered
// list of (key, value) nodes followed by an ordered list of
// (source_key, target_key, weight) edges, round-tripping through either
// JSON or YAML.
//
// core has no graph-object type to serialize wholesale — a Node is a
// complete, self-contained vertex, and there's no canonical container this
// package could reach into (by design: see the matrix Non-goal). Encode
// therefore takes explicit node and edge slices, the same ordered lists
// spec §6 names; a caller assembles them however suits it (a
// container.Container's Nodes(), a search result tree's edges, or a
// hand-built slice). Decode is the inverse, realizing the wire format back
// into a fresh map of concrete nodes via literal's Directed/Undirected —
// the two packages share the "declarative list in, connected nodes out"
// shape on purpose.
//
// Following the loader.go Strategy pattern (one FileLoader per format,
// YAMLLoader/JSONLoader), gopkg.in/yaml.v3 and encoding/json are both
// driven off the same wireGraph struct via parallel json/yaml tags, so
// adding a third format only means adding a third pair of Marshal/
// Unmarshal calls, not a third schema.
package codec
