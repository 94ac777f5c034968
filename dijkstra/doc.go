// Package dijkstra computes single-source shortest paths over a network.Network
// and reconstructs the concrete route to any destination.
//
// Overview:
//
//   - ShortestPaths runs Dijkstra's relaxation loop from one source, driven by
//     a frontier.Frontier chosen at call time (Linear or Heap). It returns a
//     Tree: predecessor pointers and settled distances for every node.
//   - Tree.PathTo walks predecessor pointers back from a destination and
//     returns the hops in source → destination order with their total cost.
//   - Solver wraps both: it times each run, keeps the latest Tree so that any
//     number of destinations can be queried against one source, logs a debug
//     record per run and reports runs and queries to an optional Observer.
//
// Preconditions:
//
//   - Edge lengths must be non-negative. network.AddEdge enforces this; the
//     engine does not re-check it.
//   - The network must not be mutated while a computation runs.
//
// Results:
//
//   - An unreachable destination is not an error: its Path has Cost == +Inf
//     and no hops. The source itself has Cost 0 and no hops.
//   - When several parallel edges join the same pair of nodes, the shortest one
//     is reported (lowest neighbor index on ties), so the summed hop lengths
//     always equal the settled distance.
//
// Complexity:
//
//   - StrategyLinear: O(V² + E) time.
//   - StrategyHeap:   O((V + E) log V) time.
//   - Space: O(V) for the frontier, predecessors and distances.
//
// Thread safety:
//
//   - Neither Solver nor Tree is safe for concurrent mutation. Use one Solver
//     per goroutine; a finished Tree may be read concurrently.
package dijkstra
