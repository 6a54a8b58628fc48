// Package waypoint implements the best-first waypoint search.
//
// Notes on implementation choices:
//
//   - Lazy decrease-key: a cheaper arrival pushes a duplicate entry and older
//     entries for an already finalized index are discarded when popped.
//   - The best-cost table accepts any strict decrease, regardless of whether
//     the index was pushed earlier with a higher cost. Negative backtrack and
//     skip terms make such decreases possible.
//   - Distances from the origin are computed once per call and reused by the
//     backtrack term.
package waypoint

import (
	"container/heap"

	"github.com/paulmach/orb/planar"
)

// FindMinimumTime returns the total minimum time for the best full path the
// search finds over wps. wps must already contain the synthetic start and end
// waypoints (see Augment) and have length ≥ 2.
func FindMinimumTime(wps []Waypoint, opts ...Option) float64 {
	return Search(wps, opts...).Time
}

// Search runs the best-first exploration over wps and returns the recorded
// path together with its total time. It never returns an error; behavior on a
// sequence shorter than two waypoints is unspecified.
//
// If the frontier empties before the end waypoint is finalized, Result.Path is
// nil and Result.Time is computed over the empty path.
func Search(wps []Waypoint, opts ...Option) Result {
	cfg := buildOptions(opts)

	r := newRunner(wps, cfg)
	r.init()
	r.process()

	return Result{
		Time:     totalTime(wps, r.optimal, cfg),
		Path:     r.optimal,
		Reached:  r.optimal != nil,
		Expanded: r.expanded,
	}
}

// runner holds the mutable state for a single Search call.
type runner struct {
	wps      []Waypoint
	cfg      Options
	reach    []float64       // distance from the origin per index
	visited  []bool          // finalized indices
	best     map[int]float64 // lowest cost seen per index
	pq       frontier
	seq      uint64
	optimal  []int
	expanded int
}

func newRunner(wps []Waypoint, cfg Options) *runner {
	n := len(wps)
	reach := make([]float64, n)
	origin := Origin.Point()
	for i, w := range wps {
		reach[i] = planar.Distance(origin, w.Point())
	}

	return &runner{
		wps:     wps,
		cfg:     cfg,
		reach:   reach,
		visited: make([]bool, n),
		best:    make(map[int]float64, n),
		pq:      make(frontier, 0, n),
	}
}

// init seeds the frontier with the start waypoint at cost 0.
func (r *runner) init() {
	heap.Init(&r.pq)
	r.push(&searchState{
		pos:  r.wps[0].Point(),
		idx:  0,
		cost: 0,
		path: []int{0},
	})
}

// process pops states until the end waypoint is finalized or the frontier is
// exhausted.
func (r *runner) process() {
	end := len(r.wps) - 1
	for r.pq.Len() > 0 {
		// 1) Pop the cheapest partial path.
		cur := heap.Pop(&r.pq).(*searchState)

		// 2) A finalized index is never expanded again, even if this entry is
		//    cheaper than the one that finalized it.
		if r.visited[cur.idx] {
			continue
		}

		// 3) Finalize the index.
		r.visited[cur.idx] = true
		r.expanded++

		// 4) The end waypoint stops the search; its path is the answer.
		if cur.idx == end {
			r.optimal = cur.path
			return
		}

		// 5) Otherwise push successors for every unvisited index.
		r.expand(cur)
	}

	// Frontier exhausted without finalizing the end: r.optimal stays nil.
}

// expand pushes a successor for every unvisited index whose candidate cost
// improves on the best-cost table.
func (r *runner) expand(cur *searchState) {
	// 1) Membership of the current path, for the skip term.
	onPath := make([]bool, len(r.wps))
	for _, idx := range cur.path {
		onPath[idx] = true
	}

	var cost float64
	for i, w := range r.wps {
		// 2) Finalized indices (including cur itself) are never candidates.
		if r.visited[i] {
			continue
		}

		// 3) Candidate cost: hop time, plus penalties of lower indices left
		//    behind, minus the backtrack term, which can make the step negative.
		p := w.Point()
		cost = cur.cost +
			hopTime(cur.pos, p, r.cfg) +
			skipModifier(r.wps, onPath, i) -
			backtrackPenalty(r.wps, r.reach, cur.idx, i)

		// 4) Keep only strict improvements. A decrease is accepted even when
		//    i was already pushed at a higher cost.
		if prev, ok := r.best[i]; ok && cost >= prev {
			continue
		}
		r.best[i] = cost

		// 5) Push the successor with its own copy of the path.
		r.push(&searchState{
			pos:  p,
			idx:  i,
			cost: cost,
			path: extend(cur.path, i),
		})
	}
}

// push stamps s with the next sequence number and adds it to the frontier.
func (r *runner) push(s *searchState) {
	s.seq = r.seq
	r.seq++
	heap.Push(&r.pq, s)
}
