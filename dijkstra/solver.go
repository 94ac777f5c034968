package dijkstra

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/smartins1234/netroute/frontier"
	"github.com/smartins1234/netroute/network"
)

// Solver answers repeated shortest-path queries against one network. Each
// ComputeShortestPaths call replaces the stored source and predecessors;
// ShortestPath queries always refer to the latest run.
type Solver struct {
	net  *network.Network
	opts Options
	tree *Tree
	run  Run
}

// NewSolver returns a Solver over net.
func NewSolver(net *network.Network, opts ...Option) (*Solver, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Solver{net: net, opts: cfg}, nil
}

// ComputeShortestPaths runs the engine from source with the chosen strategy
// and returns the wall-clock time the run took. On success the previous run's
// state is discarded; on error it is kept.
func (s *Solver) ComputeShortestPaths(source int, strategy frontier.Strategy) (time.Duration, error) {
	start := s.opts.Clock()
	tree, err := ShortestPaths(s.net, source, strategy)
	elapsed := s.opts.Clock().Sub(start)
	if err != nil {
		return 0, err
	}

	s.tree = tree
	s.run = Run{
		ID:       uuid.New(),
		Source:   source,
		Strategy: strategy,
		Nodes:    s.net.Len(),
		Settled:  tree.Settled,
		Elapsed:  elapsed,
	}

	s.opts.Logger.Debug("computed shortest paths",
		"run", s.run.ID,
		"source", source,
		"strategy", strategy,
		"nodes", s.run.Nodes,
		"settled", s.run.Settled,
		"elapsed", elapsed,
	)
	if s.opts.Observer != nil {
		s.opts.Observer.ObserveRun(s.run)
	}

	return elapsed, nil
}

// ShortestPath returns the path from the latest run's source to dest.
// Unreachable destinations yield a Path with Cost +Inf, not an error.
func (s *Solver) ShortestPath(dest int) (Path, error) {
	if s.tree == nil {
		return Path{}, ErrNotComputed
	}
	path, err := s.tree.PathTo(s.net, dest)
	if err != nil {
		return Path{}, err
	}
	if s.opts.Observer != nil {
		s.opts.Observer.ObservePath(path)
	}

	return path, nil
}

// Distance returns the settled distance from the latest run's source to dest
// (+Inf if unreachable).
func (s *Solver) Distance(dest int) (float64, error) {
	if s.tree == nil {
		return 0, ErrNotComputed
	}
	if dest < 0 || dest >= len(s.tree.Dist) {
		return 0, fmt.Errorf("%w: destination %d (len=%d)", ErrNodeOutOfRange, dest, len(s.tree.Dist))
	}

	return s.tree.Dist[dest], nil
}

// Source returns the latest run's source, or NoPredecessor before any run.
func (s *Solver) Source() int {
	if s.tree == nil {
		return NoPredecessor
	}

	return s.tree.Source
}

// Predecessors returns a copy of the latest run's predecessor array, or nil
// before any run.
func (s *Solver) Predecessors() []int {
	if s.tree == nil {
		return nil
	}
	prev := make([]int, len(s.tree.Prev))
	copy(prev, s.tree.Prev)

	return prev
}

// LastRun describes the latest successful run. Its zero value means none yet.
func (s *Solver) LastRun() Run { return s.run }

// Network returns the network the solver operates on.
func (s *Solver) Network() *network.Network { return s.net }
