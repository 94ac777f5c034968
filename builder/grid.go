// SPDX-License-Identifier: MIT
//
// grid.go - Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewNodes).
//   - Node r*cols+c sits at (c, r); IDs are row-major.
//   - For each cell emit Right then Down, each as a pair of opposite edges
//     of length 1.

package builder

import (
	"fmt"

	"github.com/smartins1234/netroute/network"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid builds a rows×cols lattice with two-way unit-length edges between
// orthogonal neighbours.
func Grid(rows, cols int) (*network.Network, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
			methodGrid, rows, cols, minGridDim, ErrTooFewNodes)
	}

	net := network.New(rows * cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			net.AddNode(network.Point{X: float64(c), Y: float64(r)})
		}
	}

	link := func(u, v int) error {
		if _, err := net.Connect(u, v); err != nil {
			return fmt.Errorf("%s: Connect(%d→%d): %w", methodGrid, u, v, err)
		}
		if _, err := net.Connect(v, u); err != nil {
			return fmt.Errorf("%s: Connect(%d→%d): %w", methodGrid, v, u, err)
		}
		return nil
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := r*cols + c
			if c+1 < cols {
				if err := link(u, u+1); err != nil {
					return nil, err
				}
			}
			if r+1 < rows {
				if err := link(u, u+cols); err != nil {
					return nil, err
				}
			}
		}
	}

	return net, nil
}
