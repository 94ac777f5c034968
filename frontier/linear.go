package frontier

import "math"

// removed marks a popped entry in Linear. Real distances are never negative.
const removed = -1.0

// Linear is a Frontier backed by a flat distance array.
type Linear struct {
	dist []float64
	size int
}

// NewLinear returns a Linear frontier over n nodes with source at distance 0.
// Complexity: O(n).
func NewLinear(n, source int) *Linear {
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[source] = 0

	return &Linear{dist: dist, size: n}
}

// Distance returns the node's tentative distance, or ok == false once popped. O(1).
func (l *Linear) Distance(node int) (float64, bool) {
	d := l.dist[node]
	if d == removed {
		return 0, false
	}

	return d, true
}

// DecreaseKey overwrites the node's tentative distance. O(1).
func (l *Linear) DecreaseKey(node int, dist float64) {
	l.dist[node] = dist
}

// PopMin scans every entry for the smallest remaining distance. O(n).
// When only infinite entries remain, the lowest such node ID is returned.
func (l *Linear) PopMin() (int, float64) {
	best := -1
	for i, d := range l.dist {
		if d == removed {
			continue
		}
		if best < 0 || d < l.dist[best] {
			best = i
		}
	}
	if best < 0 {
		panic("frontier: PopMin on empty Linear frontier")
	}

	d := l.dist[best]
	l.dist[best] = removed
	l.size--

	return best, d
}

// Len returns the number of entries not yet popped.
func (l *Linear) Len() int { return l.size }
