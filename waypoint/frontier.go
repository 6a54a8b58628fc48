package waypoint

import "github.com/paulmach/orb"

// searchState is a candidate partial path. It owns its path slice and is never
// mutated after being pushed.
type searchState struct {
	pos  orb.Point
	idx  int
	cost float64
	path []int
	seq  uint64 // push order, breaks cost ties
}

// extend returns the successor path. The parent's slice is copied so that
// sibling states never share a backing array.
func extend(path []int, i int) []int {
	next := make([]int, len(path), len(path)+1)
	copy(next, path)

	return append(next, i)
}

// frontier is a min-heap of *searchState ordered by cost, then push order.
// Stale entries are left in place and discarded on pop (lazy decrease-key).
type frontier []*searchState

// Len returns the number of items in the heap.
func (f frontier) Len() int { return len(f) }

// Less orders by ascending cost; equal costs pop in push order.
func (f frontier) Less(i, j int) bool {
	if f[i].cost != f[j].cost {
		return f[i].cost < f[j].cost
	}

	return f[i].seq < f[j].seq
}

// Swap swaps two elements in the heap.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push is called by heap.Push; x must be a *searchState.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*searchState)) }

// Pop is called by heap.Pop.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]

	return item
}
