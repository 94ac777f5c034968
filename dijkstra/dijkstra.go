package dijkstra

import (
	"fmt"
	"math"

	"github.com/smartins1234/netroute/frontier"
	"github.com/smartins1234/netroute/network"
)

// Tree is the result of one shortest-path run from Source.
//
//   - Prev[v] is v's predecessor on a shortest path, or NoPredecessor for the
//     source and for unreachable nodes.
//   - Dist[v] is the settled distance from Source, +Inf if unreachable.
//   - Settled counts nodes reached (popped with a finite distance).
type Tree struct {
	Source  int
	Prev    []int
	Dist    []float64
	Settled int
}

// ShortestPaths runs Dijkstra's algorithm on net from source using the given
// frontier strategy.
//
// Preconditions and validation (in order):
//  1. net must be non-nil (ErrNilNetwork).
//  2. source must be a node of net (ErrNodeOutOfRange).
//
// Complexity: O(V² + E) with StrategyLinear, O((V + E) log V) with StrategyHeap.
func ShortestPaths(net *network.Network, source int, strategy frontier.Strategy) (*Tree, error) {
	// 1) Validate inputs.
	if net == nil {
		return nil, ErrNilNetwork
	}
	if !net.Has(source) {
		return nil, fmt.Errorf("%w: source %d (len=%d)", ErrNodeOutOfRange, source, net.Len())
	}

	// 2) Predecessors start empty, distances infinite.
	V := net.Len()
	tree := &Tree{
		Source: source,
		Prev:   make([]int, V),
		Dist:   make([]float64, V),
	}
	for v := 0; v < V; v++ {
		tree.Prev[v] = NoPredecessor
		tree.Dist[v] = math.Inf(1)
	}

	// 3) Build the frontier and drain it.
	r := &runner{
		nodes: net.Nodes(),
		f:     frontier.New(strategy, V, source),
		tree:  tree,
	}
	r.process()

	return tree, nil
}

// runner holds the mutable state for a single execution.
type runner struct {
	nodes []*network.Node   // read-only for the whole run
	f     frontier.Frontier // one live entry per unsettled node
	tree  *Tree
}

// process pops nodes in distance order until the frontier is empty. Once the
// minimum is +Inf, every remaining node is unreachable and the loop stops;
// their predecessors stay NoPredecessor.
func (r *runner) process() {
	for r.f.Len() > 0 {
		u, d := r.f.PopMin()
		if math.IsInf(d, 1) {
			break
		}
		r.tree.Dist[u] = d
		r.tree.Settled++
		r.relax(u, d)
	}
}

// relax tries to shorten the path to each neighbor of u through u.
// Settled neighbors are skipped; an infinite tentative distance always loses.
func (r *runner) relax(u int, d float64) {
	var dv, alt float64
	var ok bool
	for _, e := range r.nodes[u].Neighbors {
		dv, ok = r.f.Distance(e.To)
		if !ok {
			continue
		}

		alt = d + e.Length
		if alt < dv {
			r.tree.Prev[e.To] = u
			r.f.DecreaseKey(e.To, alt)
		}
	}
}
