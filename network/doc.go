// Package network defines the Node, Edge, Point and Network types that the
// shortest-path packages operate on, plus YAML and TOML network files.
//
// A Network is an ordered sequence of nodes; a node's ID is its index.
// Every node keeps its outgoing edges in insertion order. Edges are
// directed: a two-way road is two Edge values.
//
// Lengths:
//
//   - Every edge length must be finite and non-negative. AddEdge rejects
//     anything else, so the shortest-path engine never sees a negative weight.
//   - Connect derives the length from the Euclidean distance between the
//     endpoints' locations. Locations are otherwise opaque to the algorithms.
//
// Files:
//
//	nodes:
//	  - {x: 0, y: 0}
//	  - {x: 3, y: 4}
//	edges:
//	  - {from: 0, to: 1}              # length = distance between locations
//	  - {from: 1, to: 0, length: 7}
//
// The same schema is accepted as TOML ([[nodes]] / [[edges]] tables).
// Load and Save pick the format from the file extension.
//
// Thread safety:
//
//   - A Network is not safe for concurrent mutation. Build it once, then
//     share it read-only.
package network
