package cli

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/smartins1234/netroute/builder"
	"github.com/smartins1234/netroute/dijkstra"
	"github.com/smartins1234/netroute/frontier"
	"github.com/smartins1234/netroute/metrics"
	"github.com/smartins1234/netroute/network"
)

var errStrategiesDisagree = errors.New("strategies disagree")

// distanceTolerance absorbs float summation order; both strategies relax
// the same edges, so in practice the results are bit-identical.
const distanceTolerance = 1e-9

type compareOpts struct {
	sizes   []int
	source  int
	metrics string
	dense   bool
	randomFlags
}

func (c *CLI) compareCommand() *cobra.Command {
	var opts compareOpts

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Time the linear and heap frontiers on random networks",
		Long:  `For each size, generate one random network, run every frontier strategy from --source, print the elapsed times and fail if any two strategies produce different distances.`,
		Example: `  netroute compare --sizes 100,1000,10000 --seed 3
  netroute compare --sizes 50,500 --dense`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCompare(cmd, opts)
		},
	}

	cmd.Flags().IntSliceVar(&opts.sizes, "sizes", []int{100, 1000}, "network sizes to compare")
	cmd.Flags().IntVarP(&opts.source, "source", "s", 0, "source node id")
	cmd.Flags().StringVar(&opts.metrics, "metrics-file", "", "write Prometheus metrics to this file")
	cmd.Flags().BoolVar(&opts.dense, "dense", false, "use complete networks instead of random sparse ones")
	opts.randomFlags.register(cmd)

	return cmd
}

func (c *CLI) runCompare(cmd *cobra.Command, opts compareOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	out := cmd.OutOrStdout()

	printTitle(out, "Frontier comparison")
	for _, size := range opts.sizes {
		if err := ctx.Err(); err != nil {
			return err
		}

		net, err := opts.network(size)
		if err != nil {
			return fmt.Errorf("size %d: %w", size, err)
		}

		timings, err := compareStrategies(net, opts.source, logger)
		if err != nil {
			return fmt.Errorf("size %d: %w", size, err)
		}

		parts := make([]string, 0, len(timings))
		for i, s := range frontier.Strategies {
			parts = append(parts, fmt.Sprintf("%s %s", s, timings[i]))
		}
		printKeyValue(out, fmt.Sprintf("n=%d", size), strings.Join(parts, "  "))
	}
	printSuccess(out, "All strategies agree")

	return writeMetrics(opts.metrics)
}

func (o *compareOpts) network(size int) (*network.Network, error) {
	if !o.dense {
		return o.build(size)
	}
	if o.extent <= 0 {
		return nil, fmt.Errorf("--extent must be positive, got %g", o.extent)
	}

	return builder.Complete(size, builder.WithExtent(o.extent))
}

// compareStrategies runs every strategy from source and returns their
// elapsed times in frontier.Strategies order.
func compareStrategies(net *network.Network, source int, logger *log.Logger) ([]time.Duration, error) {
	var (
		timings  = make([]time.Duration, 0, len(frontier.Strategies))
		baseline []float64
	)

	for _, s := range frontier.Strategies {
		solver, err := dijkstra.NewSolver(net,
			dijkstra.WithLogger(logger),
			dijkstra.WithObserver(metrics.Recorder{}),
		)
		if err != nil {
			return nil, err
		}
		elapsed, err := solver.ComputeShortestPaths(source, s)
		if err != nil {
			return nil, err
		}
		timings = append(timings, elapsed)

		dist := make([]float64, net.Len())
		for v := range dist {
			if dist[v], err = solver.Distance(v); err != nil {
				return nil, err
			}
		}
		if baseline == nil {
			baseline = dist
			continue
		}
		if v, ok := firstMismatch(baseline, dist); !ok {
			return nil, fmt.Errorf("%w: node %d: %s=%g, %s=%g", errStrategiesDisagree,
				v, frontier.Strategies[0], baseline[v], s, dist[v])
		}
	}

	return timings, nil
}

// firstMismatch reports the first index where a and b differ, or ok=true
// when they agree everywhere.
func firstMismatch(a, b []float64) (int, bool) {
	for i := range a {
		if math.IsInf(a[i], 1) && math.IsInf(b[i], 1) {
			continue
		}
		if math.Abs(a[i]-b[i]) > distanceTolerance {
			return i, false
		}
	}

	return -1, true
}
