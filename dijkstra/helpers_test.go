package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smartins1234/netroute/frontier"
	"github.com/smartins1234/netroute/network"
)

// Node IDs of the four-node scenario network.
const (
	A = iota
	B
	C
	D
)

// buildABCD returns the directed network
//
//	A→B(1), B→C(2), A→C(5), C→D(1)
//
// laid out on a line so hop labels are easy to read.
func buildABCD(t testing.TB) *network.Network {
	t.Helper()
	net := network.New(4)
	for i := 0; i < 4; i++ {
		net.AddNode(network.Point{X: float64(10 * i), Y: 0})
	}
	for _, e := range []struct {
		u, v int
		w    float64
	}{
		{A, B, 1},
		{B, C, 2},
		{A, C, 5},
		{C, D, 1},
	} {
		_, err := net.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}

	return net
}

// forEachStrategy runs fn once per frontier strategy as a subtest.
func forEachStrategy(t *testing.T, fn func(t *testing.T, s frontier.Strategy)) {
	t.Helper()
	for _, s := range frontier.Strategies {
		t.Run(s.String(), func(t *testing.T) { fn(t, s) })
	}
}
