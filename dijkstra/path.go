package dijkstra

import (
	"fmt"
	"math"

	"github.com/smartins1234/netroute/network"
)

// Hop is one traversed edge of a Path.
type Hop struct {
	From    int
	To      int
	FromLoc network.Point
	ToLoc   network.Point
	Length  float64
}

// LengthLabel formats the hop length with no decimal places.
func (h Hop) LengthLabel() string {
	return fmt.Sprintf("%.0f", h.Length)
}

// String renders the hop as "(x,y) → (x,y) length".
func (h Hop) String() string {
	return fmt.Sprintf("%s → %s %s", h.FromLoc, h.ToLoc, h.LengthLabel())
}

// Path is the route from Source to Dest.
//
// Cost is the sum of hop lengths, or +Inf when Dest is unreachable (Hops is
// then empty) or the predecessor chain does not lead back to Source (Hops then
// holds the partial chain that was followed).
type Path struct {
	Source int
	Dest   int
	Cost   float64
	Hops   []Hop
}

// Reachable reports whether the path has a finite cost.
func (p Path) Reachable() bool {
	return !math.IsInf(p.Cost, 1)
}

// Nodes lists the node IDs along a reachable path, Source first.
// It returns nil for an unreachable path.
func (p Path) Nodes() []int {
	if !p.Reachable() {
		return nil
	}
	ids := make([]int, 0, len(p.Hops)+1)
	ids = append(ids, p.Source)
	for _, h := range p.Hops {
		ids = append(ids, h.To)
	}

	return ids
}

// PathTo reconstructs the path from t.Source to dest over net, which must be
// the network t was computed on.
//
// Complexity: O(L·deg) where L is the number of hops.
func (t *Tree) PathTo(net *network.Network, dest int) (Path, error) {
	if net == nil {
		return Path{}, ErrNilNetwork
	}
	if dest < 0 || dest >= len(t.Prev) || !net.Has(dest) {
		return Path{}, fmt.Errorf("%w: destination %d (len=%d)", ErrNodeOutOfRange, dest, len(t.Prev))
	}

	path := Path{Source: t.Source, Dest: dest, Cost: math.Inf(1)}

	// 1) Never reached.
	if t.Prev[dest] == NoPredecessor && dest != t.Source {
		return path, nil
	}

	// 2) Walk back until a node without predecessor. The step bound stops a
	//    corrupted Prev slice from looping forever.
	nodes := net.Nodes()
	var hops []Hop
	cur := dest
	broken := false
	for steps := 0; t.Prev[cur] != NoPredecessor; steps++ {
		p := t.Prev[cur]
		if steps >= len(t.Prev) || p < 0 || p >= len(nodes) {
			broken = true
			break
		}
		e := connectingEdge(nodes[p], cur)
		if e == nil {
			broken = true
			break
		}
		hops = append(hops, Hop{
			From:    p,
			To:      cur,
			FromLoc: nodes[p].Loc,
			ToLoc:   nodes[cur].Loc,
			Length:  e.Length,
		})
		cur = p
	}

	// 3) Source-first order. Summing forward matches the engine's own sums.
	for i, j := 0, len(hops)-1; i < j; i, j = i+1, j-1 {
		hops[i], hops[j] = hops[j], hops[i]
	}
	path.Hops = hops
	if broken || cur != t.Source {
		return path, nil
	}

	total := 0.0
	for _, h := range hops {
		total += h.Length
	}
	path.Cost = total

	return path, nil
}

// connectingEdge returns the shortest edge from → to, the lowest neighbor
// index winning ties, or nil when none exists.
func connectingEdge(from *network.Node, to int) *network.Edge {
	var best *network.Edge
	for _, e := range from.Neighbors {
		if e.To != to {
			continue
		}
		if best == nil || e.Length < best.Length {
			best = e
		}
	}

	return best
}
