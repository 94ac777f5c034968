package dijkstra

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/smartins1234/netroute/frontier"
)

// Sentinel errors returned by the dijkstra package.
var (
	// ErrNilNetwork indicates that a nil *network.Network was passed.
	ErrNilNetwork = errors.New("dijkstra: network is nil")

	// ErrNodeOutOfRange indicates a source or destination ID outside the network.
	ErrNodeOutOfRange = errors.New("dijkstra: node id out of range")

	// ErrNotComputed indicates a path query before any ComputeShortestPaths call.
	ErrNotComputed = errors.New("dijkstra: shortest paths not computed")
)

// NoPredecessor marks a node without a predecessor: the source, or a node
// the run never reached.
const NoPredecessor = -1

// Run describes one completed ComputeShortestPaths call.
type Run struct {
	ID       uuid.UUID         // unique per call; correlates logs and metrics
	Source   int               // source node ID
	Strategy frontier.Strategy // frontier used
	Nodes    int               // nodes in the network
	Settled  int               // nodes popped with a finite distance
	Elapsed  time.Duration     // wall-clock time of the engine call
}

// Observer receives notifications from a Solver. metrics.Recorder is the
// Prometheus-backed implementation.
type Observer interface {
	// ObserveRun is called after every successful ComputeShortestPaths.
	ObserveRun(run Run)

	// ObservePath is called after every successful ShortestPath query.
	ObservePath(path Path)
}

// Options configures a Solver.
//
// Logger   – receives one Debug record per run. Default log.Default().
// Observer – optional run/path observer. Default nil.
// Clock    – time source for the run timer. Default time.Now.
type Options struct {
	Logger   *log.Logger
	Observer Observer
	Clock    func() time.Time
}

// Option represents a functional option for configuring a Solver.
type Option func(*Options)

// DefaultOptions returns the Solver defaults.
func DefaultOptions() Options {
	return Options{
		Logger: log.Default(),
		Clock:  time.Now,
	}
}

// WithLogger sets the logger used for per-run debug records. Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("dijkstra: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// WithObserver attaches an Observer. Panics on nil.
func WithObserver(obs Observer) Option {
	if obs == nil {
		panic("dijkstra: WithObserver(nil)")
	}
	return func(o *Options) {
		o.Observer = obs
	}
}

// WithClock replaces the time source used to measure runs. Panics on nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("dijkstra: WithClock(nil)")
	}
	return func(o *Options) {
		o.Clock = now
	}
}
