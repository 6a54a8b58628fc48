package waypoint_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/waypath/waypoint"
)

func randomWaypoints(n int, seed int64) []waypoint.Waypoint {
	rng := rand.New(rand.NewSource(seed))
	raw := make([]waypoint.Waypoint, n)
	for i := range raw {
		raw[i] = waypoint.Waypoint{X: rng.Intn(101), Y: rng.Intn(101), Penalty: float64(rng.Intn(100))}
	}

	return waypoint.Augment(raw)
}

// BenchmarkFindMinimumTime measures the search on random fields of growing size.
func BenchmarkFindMinimumTime(b *testing.B) {
	for _, n := range []int{10, 50, 100} {
		wps := randomWaypoints(n, int64(n))
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = waypoint.FindMinimumTime(wps)
			}
		})
	}
}
