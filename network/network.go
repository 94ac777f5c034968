package network

import (
	"fmt"
	"math"
)

// Network is an ordered collection of nodes, indexed by node ID.
type Network struct {
	nodes []*Node
	edges int
}

// New returns an empty Network with capacity for n nodes.
func New(n int) *Network {
	if n < 0 {
		n = 0
	}

	return &Network{nodes: make([]*Node, 0, n)}
}

// AddNode appends a node at loc and returns it. Its ID is the previous Len().
// Complexity: O(1) amortized.
func (n *Network) AddNode(loc Point) *Node {
	node := &Node{ID: len(n.nodes), Loc: loc}
	n.nodes = append(n.nodes, node)

	return node
}

// AddEdge appends a directed edge from → to with the given length to
// from's neighbor list. Parallel edges and self-loops are accepted.
//
// Errors: ErrNodeOutOfRange, ErrBadLength, ErrNegativeLength.
// Complexity: O(1) amortized.
func (n *Network) AddEdge(from, to int, length float64) (*Edge, error) {
	if !n.valid(from) || !n.valid(to) {
		return nil, fmt.Errorf("%w: edge %d→%d with %d nodes", ErrNodeOutOfRange, from, to, len(n.nodes))
	}
	if math.IsNaN(length) || math.IsInf(length, 0) {
		return nil, fmt.Errorf("%w: edge %d→%d length=%v", ErrBadLength, from, to, length)
	}
	if length < 0 {
		return nil, fmt.Errorf("%w: edge %d→%d length=%g", ErrNegativeLength, from, to, length)
	}

	e := &Edge{From: from, To: to, Length: length}
	src := n.nodes[from]
	src.Neighbors = append(src.Neighbors, e)
	n.edges++

	return e, nil
}

// Connect adds a directed edge whose length is the Euclidean distance
// between the endpoints' locations.
func (n *Network) Connect(from, to int) (*Edge, error) {
	if !n.valid(from) || !n.valid(to) {
		return nil, fmt.Errorf("%w: edge %d→%d with %d nodes", ErrNodeOutOfRange, from, to, len(n.nodes))
	}

	return n.AddEdge(from, to, n.nodes[from].Loc.Distance(n.nodes[to].Loc))
}

// Node returns the node with the given ID.
func (n *Network) Node(id int) (*Node, error) {
	if !n.valid(id) {
		return nil, fmt.Errorf("%w: %d (len=%d)", ErrNodeOutOfRange, id, len(n.nodes))
	}

	return n.nodes[id], nil
}

// Nodes returns the nodes in ID order. The slice is shared; do not modify it.
func (n *Network) Nodes() []*Node { return n.nodes }

// Len returns the number of nodes.
func (n *Network) Len() int { return len(n.nodes) }

// EdgeCount returns the number of edges.
func (n *Network) EdgeCount() int { return n.edges }

// Has reports whether id names a node in n.
func (n *Network) Has(id int) bool { return n.valid(id) }

func (n *Network) valid(id int) bool {
	return id >= 0 && id < len(n.nodes)
}
