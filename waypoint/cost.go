package waypoint

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// hopTime is the time to fly from a to b and dwell once at b.
func hopTime(a, b orb.Point, cfg Options) float64 {
	return planar.Distance(a, b)/cfg.Speed + cfg.DwellTime
}

// backtrackPenalty returns next's penalty when next is not strictly farther
// from the origin than cur, and 0 otherwise. The caller subtracts it.
func backtrackPenalty(wps []Waypoint, reach []float64, cur, next int) float64 {
	if reach[next] <= reach[cur] {
		return wps[next].Penalty
	}

	return 0
}

// skipModifier sums the penalties of indices 0..next that are not on the
// current path, excluding next itself.
func skipModifier(wps []Waypoint, onPath []bool, next int) float64 {
	var skipped float64
	for i := 0; i <= next; i++ {
		if !onPath[i] {
			skipped += wps[i].Penalty
		}
	}

	return skipped - wps[next].Penalty
}

// TotalTime returns the traversal time of path over wps: hop times starting
// from the origin, minus one dwell (the end point is not charged twice), plus
// the penalty of every index of wps absent from path.
//
// A nil or empty path yields -DwellTime plus the sum of all penalties.
func TotalTime(wps []Waypoint, path []int, opts ...Option) float64 {
	cfg := buildOptions(opts)

	return totalTime(wps, path, cfg)
}

func totalTime(wps []Waypoint, path []int, cfg Options) float64 {
	onPath := make([]bool, len(wps))
	var total float64
	cur := Origin.Point()
	for _, idx := range path {
		p := wps[idx].Point()
		total += hopTime(cur, p, cfg)
		cur = p
		onPath[idx] = true
	}
	total -= cfg.DwellTime

	for i, w := range wps {
		if !onPath[i] {
			total += w.Penalty
		}
	}

	return total
}
