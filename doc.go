// Package netroute computes single-source shortest paths over weighted,
// directed road networks and reconstructs the concrete route and total
// cost to any destination.
//
// The root package holds documentation only. Everything is organized under
// these subpackages:
//
//	network/   Node, Edge, Point and Network; YAML and TOML network files
//	builder/   generators: random geometric networks, grids, complete networks
//	frontier/  the priority frontier: Linear (array scan) and Heap (binary heap)
//	dijkstra/  the relaxation engine, path reconstruction and the timed Solver
//	metrics/   Prometheus collectors fed by a Solver observer
//
// The netroute command (cmd/netroute) wraps the library: route, generate
// and compare.
//
// Quick example:
//
//	net, _ := builder.Random(1000, builder.WithSeed(42))
//	s, _ := dijkstra.NewSolver(net)
//	elapsed, _ := s.ComputeShortestPaths(0, frontier.StrategyHeap)
//	path, _ := s.ShortestPath(999)
//	fmt.Println(path.Cost, len(path.Hops), elapsed)
//
// Edge lengths must be non-negative. Unreachable destinations have cost
// +Inf and no hops.
package netroute
