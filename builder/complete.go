// SPDX-License-Identifier: MIT
//
// complete.go - Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes).
//   - Node i sits on a circle of diameter extent centred at (extent/2, extent/2),
//     at angle 2πi/n; no RNG needed.
//   - Emits each ordered pair (i, j), i ≠ j, exactly once in lexicographic
//     order, with Euclidean length.
//
// Complexity: O(n²) edges.

package builder

import (
	"fmt"
	"math"

	"github.com/smartins1234/netroute/network"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete builds the complete directed network on n nodes laid out on a
// circle. Dense networks are where the Linear frontier is competitive.
func Complete(n int, opts ...Option) (*network.Network, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewNodes)
	}
	cfg := newConfig(opts)

	net := network.New(n)
	r := cfg.extent / 2
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		net.AddNode(network.Point{X: r + r*math.Cos(theta), Y: r + r*math.Sin(theta)})
	}

	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v {
				continue
			}
			if _, err := net.Connect(u, v); err != nil {
				return nil, fmt.Errorf("%s: Connect(%d→%d): %w", methodComplete, u, v, err)
			}
		}
	}

	return net, nil
}
