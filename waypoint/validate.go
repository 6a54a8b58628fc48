package waypoint

import "fmt"

// Augment returns a new sequence [Origin, raw..., Destination]. raw is not
// modified.
func Augment(raw []Waypoint) []Waypoint {
	wps := make([]Waypoint, 0, len(raw)+2)
	wps = append(wps, Origin)
	wps = append(wps, raw...)

	return append(wps, Destination)
}

// Validate checks the preconditions Search assumes: at least two waypoints,
// non-negative coordinates and non-negative penalties. Errors wrap one of
// ErrTooFewWaypoints, ErrNegativeCoordinate or ErrNegativePenalty.
//
// Complexity: O(n).
func Validate(wps []Waypoint) error {
	if len(wps) < 2 {
		return fmt.Errorf("%w: got %d", ErrTooFewWaypoints, len(wps))
	}

	for i, w := range wps {
		if w.X < 0 || w.Y < 0 {
			return fmt.Errorf("%w: index %d at (%d,%d)", ErrNegativeCoordinate, i, w.X, w.Y)
		}
		if w.Penalty < 0 {
			return fmt.Errorf("%w: index %d penalty=%g", ErrNegativePenalty, i, w.Penalty)
		}
	}

	return nil
}
