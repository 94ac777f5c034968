// SPDX-License-Identifier: MIT
//
// random.go - Random(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes); RNG required (else ErrNeedRandSource).
//   - Nodes are placed first (IDs 0..n-1), then edges are drawn node by node.
//   - Each node gets min(degree, n-1) edges to distinct targets, never itself.
//
// Complexity:
//   - Time: O(n·d) expected (rejection sampling over distinct targets).
//   - Space: O(d) scratch per node.

package builder

import (
	"fmt"

	"github.com/smartins1234/netroute/network"
)

const (
	methodRandom  = "Random"
	minRandomSize = 1
)

// Random builds a random geometric network over n nodes.
func Random(n int, opts ...Option) (*network.Network, error) {
	// 1) Validate parameters before touching the RNG.
	if n < minRandomSize {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandom, n, minRandomSize, ErrTooFewNodes)
	}
	cfg := newConfig(opts)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
	}

	// 2) Scatter nodes over the square.
	net := network.New(n)
	for i := 0; i < n; i++ {
		net.AddNode(network.Point{
			X: cfg.rng.Float64() * cfg.extent,
			Y: cfg.rng.Float64() * cfg.extent,
		})
	}

	// 3) Draw distinct targets for each node.
	degree := cfg.degree
	if degree > n-1 {
		degree = n - 1
	}
	targets := make([]int, 0, degree)
	for u := 0; u < n; u++ {
		targets = targets[:0]
		for len(targets) < degree {
			v := cfg.rng.Intn(n)
			if v == u || containsInt(targets, v) {
				continue
			}
			targets = append(targets, v)
		}
		for _, v := range targets {
			if _, err := net.Connect(u, v); err != nil {
				return nil, fmt.Errorf("%s: Connect(%d→%d): %w", methodRandom, u, v, err)
			}
		}
	}

	return net, nil
}

func containsInt(xs []int, x int) bool {
	for _, y := range xs {
		if y == x {
			return true
		}
	}

	return false
}
