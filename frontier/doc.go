// Package frontier provides the priority frontier that drives Dijkstra's
// relaxation loop: the working set of not-yet-settled nodes keyed by their
// tentative distance from the source.
//
// Two strategies implement the same Frontier interface:
//
//   - Linear: a flat distance array indexed by node ID. PopMin scans every
//     entry, O(V); Distance and DecreaseKey are O(1). O(V²) over a full run,
//     which wins on small or dense networks.
//   - Heap: a binary min-heap plus a node → slot position index. Distance is
//     O(1); DecreaseKey and PopMin are O(log V). O((V+E) log V) over a run.
//
// Both start with one entry per node: distance 0 for the source and +Inf for
// everything else. +Inf orders after every finite distance. A popped node is
// settled: Distance reports ok == false for it and it is never re-inserted.
//
// Contract:
//
//   - DecreaseKey must only be called with a distance strictly smaller than
//     the node's current one, on a node that has not been popped.
//   - PopMin on an empty frontier panics. Ties are broken arbitrarily.
//   - Node IDs must lie in [0, n). Out-of-range IDs panic (index out of range).
//
// A Frontier is not safe for concurrent use; it lives for one shortest-path run.
package frontier
