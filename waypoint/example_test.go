// Package waypoint_test provides runnable examples for the waypoint search.
package waypoint_test

import (
	"fmt"

	"github.com/katalvlaran/waypath/waypoint"
)

// ExampleFindMinimumTime visits a single waypoint in the middle of the field.
// Skipping it would cost 20s; visiting costs only one extra dwell.
func ExampleFindMinimumTime() {
	wps := waypoint.Augment([]waypoint.Waypoint{
		{X: 50, Y: 50, Penalty: 20},
	})

	fmt.Printf("%.3f\n", waypoint.FindMinimumTime(wps))
	// Output: 90.711
}

// ExampleSearch shows the recorded path. Waypoint 3 at (10,90) is cheap to
// skip, so the path jumps from (60,60) straight to the destination.
func ExampleSearch() {
	wps := waypoint.Augment([]waypoint.Waypoint{
		{X: 30, Y: 30, Penalty: 90},
		{X: 60, Y: 60, Penalty: 80},
		{X: 10, Y: 90, Penalty: 10},
	})

	res := waypoint.Search(wps)
	fmt.Printf("time=%.3f path=%v reached=%t\n", res.Time, res.Path, res.Reached)
	// Output: time=110.711 path=[0 1 2 4] reached=true
}
