package cli

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/smartins1234/netroute/builder"
	"github.com/smartins1234/netroute/network"
)

var (
	errNoNetwork    = errors.New("one of --network or --random is required")
	errBothNetworks = errors.New("--network and --random are mutually exclusive")
)

// randomFlags configures a generated network.
type randomFlags struct {
	seed   int64
	degree int
	extent float64
}

func (f *randomFlags) register(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&f.seed, "seed", 1, "random seed for generated networks")
	cmd.Flags().IntVar(&f.degree, "degree", builder.DefaultDegree, "outgoing edges per generated node")
	cmd.Flags().Float64Var(&f.extent, "extent", builder.DefaultExtent, "side of the square generated nodes are placed in")
}

func (f *randomFlags) build(nodes int) (*network.Network, error) {
	if f.degree < 1 {
		return nil, fmt.Errorf("--degree must be at least 1, got %d", f.degree)
	}
	if f.extent <= 0 {
		return nil, fmt.Errorf("--extent must be positive, got %g", f.extent)
	}

	return builder.Random(nodes,
		builder.WithSeed(f.seed),
		builder.WithDegree(f.degree),
		builder.WithExtent(f.extent),
	)
}

// sourceFlags selects a network from a file or generates one.
type sourceFlags struct {
	path   string
	random int
	randomFlags
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.path, "network", "n", "", "network file (.yaml, .yml or .toml)")
	cmd.Flags().IntVar(&f.random, "random", 0, "generate a random network with this many nodes")
	f.randomFlags.register(cmd)
}

func (f *sourceFlags) load() (*network.Network, error) {
	switch {
	case f.path != "" && f.random > 0:
		return nil, errBothNetworks
	case f.path != "":
		return network.Load(f.path)
	case f.random > 0:
		return f.build(f.random)
	default:
		return nil, errNoNetwork
	}
}

// writeMetrics dumps the default registry in text exposition format.
// An empty path is a no-op.
func writeMetrics(path string) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}

	return nil
}
