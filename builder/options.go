// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// Defaults applied by newConfig.
const (
	// DefaultDegree is the number of outgoing edges per node in Random.
	DefaultDegree = 3

	// DefaultExtent is the side of the square Random scatters nodes over.
	DefaultExtent = 1000.0
)

// config carries resolved options for a single constructor call.
type config struct {
	rng    *rand.Rand
	degree int
	extent float64
}

// Option customizes a constructor.
type Option func(*config)

func newConfig(opts []Option) config {
	c := config{degree: DefaultDegree, extent: DefaultExtent}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithDegree sets the out-degree used by Random. Panics if d < 1.
// Networks with fewer than d+1 nodes connect every node to all others.
func WithDegree(d int) Option {
	if d < 1 {
		panic("builder: WithDegree(d<1)")
	}
	return func(c *config) {
		c.degree = d
	}
}

// WithExtent sets the side length of the square Random scatters nodes over
// and the diameter of Complete's circle. Grid ignores it. Panics if extent <= 0.
func WithExtent(extent float64) Option {
	if extent <= 0 {
		panic("builder: WithExtent(extent<=0)")
	}
	return func(c *config) {
		c.extent = extent
	}
}
