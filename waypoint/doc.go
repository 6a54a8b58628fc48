// Package waypoint computes the minimum traversal time for an agent that flies
// from a fixed start point to a fixed end point through an ordered list of
// 2-D waypoints, where any waypoint may be skipped at the price of its penalty.
//
// Overview:
//
//   - The search is best-first: a min-heap frontier always expands the cheapest
//     partial path, and a per-index best-cost table prunes dominated pushes.
//   - A hop costs distance/Speed + DwellTime. Moving to a waypoint that is not
//     strictly farther from the origin than the current one subtracts that
//     waypoint's penalty (backtrack term). Reaching index i charges the
//     penalties of every lower index absent from the path (skip term).
//   - Because both terms can be negative, edge costs are not monotone. The
//     search is a heuristic and is NOT guaranteed to return the global optimum;
//     it reproduces one fixed exploration order exactly.
//   - Once the end waypoint is finalized, the answer is recomputed from the
//     recorded path: origin-anchored hop times, minus one dwell for the end
//     point, plus the penalty of every waypoint the path never visits.
//
// Input convention:
//
//	[Origin, w1, w2, …, wk, Destination]
//
// Origin is (0,0) and Destination is (100,100), both with zero penalty. Use
// Augment to wrap raw waypoints. FindMinimumTime and Search do not validate
// their input; call Validate first when the source is untrusted.
//
// Complexity:
//
//   - Time:  O(n³ log n) worst case. Each of the n finalized states scans n
//     candidates and computes an O(n) skip term; each push costs O(log n²).
//   - Space: O(n³). Up to n² frontier entries, each owning an O(n) path copy.
//
// Example usage:
//
//	wps := waypoint.Augment([]waypoint.Waypoint{{X: 50, Y: 50, Penalty: 20}})
//	t := waypoint.FindMinimumTime(wps) // 90.711
//
// Thread safety:
//
//   - All state lives inside a single call; concurrent calls are safe as long
//     as the caller does not mutate the input slice during the call.
package waypoint
