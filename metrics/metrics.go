// Package metrics exposes Prometheus collectors for shortest-path runs and
// path queries, and a Recorder that feeds them from a dijkstra.Solver.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/smartins1234/netroute/dijkstra"
)

// Path query results used as the "result" label.
const (
	ResultReachable   = "reachable"
	ResultUnreachable = "unreachable"
)

// Collectors are registered with the default registry on package load.
var (
	// RunsTotal counts completed shortest-path runs per frontier strategy.
	RunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "netroute_runs_total",
			Help: "Total number of shortest-path runs",
		},
		[]string{"strategy"},
	)

	// RunDuration measures wall-clock time per run. Buckets span sub-millisecond
	// runs on small networks to the O(V²) linear frontier on large ones.
	RunDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "netroute_run_duration_seconds",
			Help:    "Duration of shortest-path runs in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		},
		[]string{"strategy"},
	)

	// SettledNodes tracks how many nodes the latest run reached.
	SettledNodes = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "netroute_settled_nodes",
			Help: "Nodes reached by the latest shortest-path run",
		},
		[]string{"strategy"},
	)

	// PathQueriesTotal counts path reconstructions by outcome.
	PathQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "netroute_path_queries_total",
			Help: "Total number of path queries",
		},
		[]string{"result"},
	)
)

// Recorder implements dijkstra.Observer on top of the package collectors.
type Recorder struct{}

var _ dijkstra.Observer = Recorder{}

// ObserveRun records a completed run.
func (Recorder) ObserveRun(run dijkstra.Run) {
	label := run.Strategy.String()
	RunsTotal.WithLabelValues(label).Inc()
	RunDuration.WithLabelValues(label).Observe(run.Elapsed.Seconds())
	SettledNodes.WithLabelValues(label).Set(float64(run.Settled))
}

// ObservePath records a path query.
func (Recorder) ObservePath(path dijkstra.Path) {
	if path.Reachable() {
		PathQueriesTotal.WithLabelValues(ResultReachable).Inc()
		return
	}
	PathQueriesTotal.WithLabelValues(ResultUnreachable).Inc()
}
