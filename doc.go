// Package waypath computes minimum-time routes for an agent flying a fixed
// course of 2-D waypoints, where skipping a waypoint or backtracking toward
// the origin is penalized.
//
// Packages:
//
//	waypoint/       — Waypoint type, cost-model options and the best-first search
//	fixture/        — sample_input/sample_output loader and tolerance checks
//	cmd/waypath     — CLI that evaluates fixture directories or stdin cases
//	internal/config — .env + environment settings for the CLI
//	internal/obs    — key=value operation timing logs
//	internal/report — optional PostgreSQL history of evaluation runs
//
// Quick example:
//
//	wps := waypoint.Augment([]waypoint.Waypoint{{X: 50, Y: 50, Penalty: 20}})
//	fmt.Printf("%.3f\n", waypoint.FindMinimumTime(wps)) // 90.711
//
// The search is a heuristic: its non-monotone skip and backtrack terms mean
// the reported path is not always the true optimum. See package waypoint.
package waypath
