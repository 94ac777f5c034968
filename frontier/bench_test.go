package frontier_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/smartins1234/netroute/frontier"
)

// BenchmarkFrontier_DrainWithDecreases fills a frontier with random finite
// keys, then drains it. Linear is O(n²), Heap O(n log n).
func BenchmarkFrontier_DrainWithDecreases(b *testing.B) {
	for _, n := range []int{100, 1000, 5000} {
		keys := make([]float64, n)
		r := rand.New(rand.NewSource(int64(n)))
		for i := range keys {
			keys[i] = r.Float64() * 1000
		}
		for _, s := range frontier.Strategies {
			b.Run(fmt.Sprintf("%s/n=%d", s, n), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					f := frontier.New(s, n, 0)
					f.PopMin()
					for v := 1; v < n; v++ {
						f.DecreaseKey(v, keys[v])
					}
					for f.Len() > 0 {
						f.PopMin()
					}
				}
			})
		}
	}
}
