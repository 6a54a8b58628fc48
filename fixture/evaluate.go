package fixture

import (
	"math"

	"github.com/katalvlaran/waypath/waypoint"
)

// Evaluate runs the search on every case of f. A case without an expected
// value is reported with Pass=false.
func Evaluate(f File, opts ...waypoint.Option) []Outcome {
	out := make([]Outcome, len(f.Cases))
	for i, c := range f.Cases {
		res := waypoint.Search(c.Waypoints, opts...)
		o := Outcome{
			Index:    i,
			Got:      res.Time,
			Expected: c.Expected,
			Path:     res.Path,
		}
		if c.HasExpected {
			o.Diff = math.Abs(res.Time - c.Expected)
			o.Pass = o.Diff < Tolerance
		}
		out[i] = o
	}

	return out
}

// Passed reports whether every outcome passed.
func Passed(outcomes []Outcome) bool {
	for _, o := range outcomes {
		if !o.Pass {
			return false
		}
	}

	return true
}
