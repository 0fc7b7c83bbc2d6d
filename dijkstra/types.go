package dijkstra

import "github.com/katalvlaran/waypoint/search"

// item is one heap entry: a tentative (predecessor, distance) for id.
type item struct {
	search.Entry
	seq uint64 // insertion order, breaks distance ties
}

// frontier is a min-heap of *item ordered by (Distance, seq) ascending.
// A node improved after being pushed gets a second entry; the outdated one
// stays until popped and is recognized as stale then.
type frontier []*item

// Len returns the number of items in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less orders by distance, then by insertion sequence.
func (pq frontier) Less(i, j int) bool {
	if pq[i].Distance != pq[j].Distance {
		return pq[i].Distance < pq[j].Distance
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be of type *item.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(*item)) }

// Pop is called by heap.Pop and removes the last element.
func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return it
}
