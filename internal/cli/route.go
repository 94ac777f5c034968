package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smartins1234/netroute/dijkstra"
	"github.com/smartins1234/netroute/frontier"
	"github.com/smartins1234/netroute/metrics"
)

type routeOpts struct {
	src      sourceFlags
	source   int
	dests    []int
	strategy string
	metrics  string
}

func (c *CLI) routeCommand() *cobra.Command {
	var opts routeOpts

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Compute shortest paths from a source node",
		Long:  `Compute shortest paths from --source over a network file or a generated network and print the route to every --dest.`,
		Example: `  netroute route --network city.yaml --source 0 --dest 12 --dest 40
  netroute route --random 5000 --seed 7 --source 0 --dest 4999 --strategy linear`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRoute(cmd, opts)
		},
	}

	opts.src.register(cmd)
	cmd.Flags().IntVarP(&opts.source, "source", "s", 0, "source node id")
	cmd.Flags().IntSliceVarP(&opts.dests, "dest", "d", nil, "destination node id (repeatable)")
	cmd.Flags().StringVar(&opts.strategy, "strategy", frontier.StrategyHeap.String(), "frontier strategy: heap or linear")
	cmd.Flags().StringVar(&opts.metrics, "metrics-file", "", "write Prometheus metrics to this file")

	return cmd
}

func (c *CLI) runRoute(cmd *cobra.Command, opts routeOpts) error {
	logger := loggerFromContext(cmd.Context())

	strategy, err := frontier.ParseStrategy(opts.strategy)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	net, err := opts.src.load()
	if err != nil {
		return fmt.Errorf("load network: %w", err)
	}
	prog.done(fmt.Sprintf("Loaded network with %d nodes", net.Len()))

	solver, err := dijkstra.NewSolver(net,
		dijkstra.WithLogger(logger),
		dijkstra.WithObserver(metrics.Recorder{}),
	)
	if err != nil {
		return err
	}

	elapsed, err := solver.ComputeShortestPaths(opts.source, strategy)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printTitle(out, fmt.Sprintf("Shortest paths from node %d", opts.source))
	printKeyValue(out, "Strategy", strategy)
	printKeyValue(out, "Nodes", net.Len())
	printKeyValue(out, "Edges", net.EdgeCount())
	printKeyValue(out, "Reached", solver.LastRun().Settled)
	printKeyValue(out, "Elapsed", elapsed)

	for _, dest := range opts.dests {
		path, err := solver.ShortestPath(dest)
		if err != nil {
			return err
		}
		printPath(out, path)
	}

	return writeMetrics(opts.metrics)
}
