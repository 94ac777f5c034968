// SPDX-License-Identifier: MIT
// Package builder generates networks for tests, benchmarks and the CLI.
//
// Constructors:
//
//   - Random(n, opts...): n nodes scattered uniformly over an extent×extent
//     square; every node gets `degree` outgoing edges to distinct, randomly
//     chosen other nodes. Edge length is the Euclidean distance between the
//     endpoints. This is the classic "random road network" used to compare
//     frontier strategies.
//   - Grid(rows, cols): a rows×cols lattice with unit spacing and
//     edges in both directions between orthogonal neighbours.
//   - Complete(n, opts...): every ordered pair of distinct nodes linked,
//     nodes evenly spaced on a circle. The dense worst case for Heap.
//
// Determinism:
//
//   - Random requires an RNG (WithSeed or WithRand); a fixed seed always yields
//     the same network.
//   - Node IDs follow generation order (row-major for Grid).
//
// Errors:
//
//   - ErrTooFewNodes    if n < 1 (rows/cols < 1 for Grid).
//   - ErrNeedRandSource if Random is called without an RNG.
//
// Option constructors panic on meaningless input (degree < 1, extent ≤ 0,
// nil RNG); the constructors themselves never panic.
package builder
