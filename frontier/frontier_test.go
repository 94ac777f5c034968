package frontier_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartins1234/netroute/frontier"
)

// forEachStrategy runs fn once per strategy as a subtest.
func forEachStrategy(t *testing.T, fn func(t *testing.T, s frontier.Strategy)) {
	t.Helper()
	for _, s := range frontier.Strategies {
		t.Run(s.String(), func(t *testing.T) { fn(t, s) })
	}
}

func TestNew_InitialState(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, s frontier.Strategy) {
		f := frontier.New(s, 5, 3)
		require.Equal(t, 5, f.Len())

		for v := 0; v < 5; v++ {
			d, ok := f.Distance(v)
			require.True(t, ok)
			if v == 3 {
				assert.Equal(t, 0.0, d)
			} else {
				assert.True(t, math.IsInf(d, 1), "node %d starts at %v", v, d)
			}
		}

		node, d := f.PopMin()
		assert.Equal(t, 3, node)
		assert.Equal(t, 0.0, d)
		assert.Equal(t, 4, f.Len())
	})
}

func TestDecreaseKey_ReordersPops(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, s frontier.Strategy) {
		f := frontier.New(s, 4, 0)
		node, _ := f.PopMin()
		require.Equal(t, 0, node)

		f.DecreaseKey(2, 5)
		f.DecreaseKey(1, 7)
		f.DecreaseKey(3, 9)
		f.DecreaseKey(3, 1)

		d, ok := f.Distance(3)
		require.True(t, ok)
		assert.Equal(t, 1.0, d)

		var order []int
		var dists []float64
		for f.Len() > 0 {
			n, d := f.PopMin()
			order = append(order, n)
			dists = append(dists, d)
		}
		assert.Equal(t, []int{3, 2, 1}, order)
		assert.Equal(t, []float64{1, 5, 7}, dists)
	})
}

func TestDistance_SettledNodes(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, s frontier.Strategy) {
		f := frontier.New(s, 3, 1)
		f.PopMin()

		_, ok := f.Distance(1)
		assert.False(t, ok, "popped node must report settled")

		_, ok = f.Distance(0)
		assert.True(t, ok)
	})
}

func TestPopMin_InfiniteRemainder(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, s frontier.Strategy) {
		f := frontier.New(s, 3, 0)
		f.PopMin()

		seen := make(map[int]bool)
		for f.Len() > 0 {
			n, d := f.PopMin()
			assert.True(t, math.IsInf(d, 1))
			seen[n] = true
		}
		assert.Equal(t, map[int]bool{1: true, 2: true}, seen)
	})
}

func TestLinear_InfiniteTieTakesLowestID(t *testing.T) {
	f := frontier.NewLinear(4, 2)
	f.PopMin()

	n, _ := f.PopMin()
	assert.Equal(t, 0, n)
}

func TestSingleNode(t *testing.T) {
	forEachStrategy(t, func(t *testing.T, s frontier.Strategy) {
		f := frontier.New(s, 1, 0)
		n, d := f.PopMin()
		assert.Equal(t, 0, n)
		assert.Equal(t, 0.0, d)
		assert.Equal(t, 0, f.Len())
	})
}

// TestHeap_InvariantsUnderRandomOperations interleaves decrease-key and
// pop operations and checks heap order and the position index after each.
func TestHeap_InvariantsUnderRandomOperations(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for trial := 0; trial < 50; trial++ {
		n := 1 + r.Intn(60)
		source := r.Intn(n)
		h := frontier.NewHeap(n, source)
		l := frontier.NewLinear(n, source)
		require.NoError(t, frontier.CheckHeap(h))

		for h.Len() > 0 {
			if r.Intn(3) == 0 {
				hn, hd := h.PopMin()
				_, ld := l.PopMin()
				require.Equal(t, ld, hd, "trial %d: heap and linear disagree on minimum", trial)
				_, ok := h.Distance(hn)
				require.False(t, ok)
			} else {
				v := r.Intn(n)
				cur, ok := h.Distance(v)
				_, inLinear := l.Distance(v)
				// Ties may settle different nodes in each frontier.
				if ok && inLinear {
					next := math.Floor(r.Float64() * 1000)
					if next < cur {
						h.DecreaseKey(v, next)
						l.DecreaseKey(v, next)
					}
				}
			}
			require.NoError(t, frontier.CheckHeap(h), "trial %d", trial)
			require.Equal(t, l.Len(), h.Len())
		}
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in   string
		want frontier.Strategy
	}{
		{"linear", frontier.StrategyLinear},
		{"Array", frontier.StrategyLinear},
		{" heap ", frontier.StrategyHeap},
	}
	for _, tt := range tests {
		got, err := frontier.ParseStrategy(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, got.String(), tt.want.String())
	}

	_, err := frontier.ParseStrategy("fibonacci")
	assert.ErrorIs(t, err, frontier.ErrUnknownStrategy)
	assert.Equal(t, "Strategy(9)", frontier.Strategy(9).String())
}
