package dijkstra

import (
	"cmp"
	"container/heap"
	"slices"

	"github.com/katalvlaran/spviz/core"
	"github.com/katalvlaran/spviz/trace"
)

// nodeItem is one queue entry. index is its position inside the heap slice
// and is maintained by Swap/Push/Pop so Fix can run in O(log n).
type nodeItem struct {
	id    core.NodeID
	dist  trace.Distance
	index int
}

// nodePQ is a min-heap ordered by (dist, id).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool { return entryLess(pq[i], pq[j]) < 0 }

func (pq nodePQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *nodePQ) Push(x interface{}) {
	item := x.(*nodeItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]

	return item
}

func entryLess(a, b *nodeItem) int {
	if c := cmp.Compare(a.dist, b.dist); c != 0 {
		return c
	}
	return cmp.Compare(a.id, b.id)
}

// queue wraps nodePQ with a NodeID → item lookup for decrease-key.
type queue struct {
	pq    nodePQ
	items map[core.NodeID]*nodeItem
}

func newQueue(capacity int) *queue {
	return &queue{
		pq:    make(nodePQ, 0, capacity),
		items: make(map[core.NodeID]*nodeItem, capacity),
	}
}

func (q *queue) Len() int { return q.pq.Len() }

// upsert inserts id or lowers its key.
func (q *queue) upsert(id core.NodeID, d trace.Distance) {
	if item, ok := q.items[id]; ok {
		item.dist = d
		heap.Fix(&q.pq, item.index)
		return
	}
	item := &nodeItem{id: id, dist: d}
	q.items[id] = item
	heap.Push(&q.pq, item)
}

// pop removes and returns the minimum entry.
func (q *queue) pop() *nodeItem {
	item := heap.Pop(&q.pq).(*nodeItem)
	delete(q.items, item.id)
	return item
}

// snapshot lists the entries in extraction order.
func (q *queue) snapshot() []trace.HeapEntry {
	items := slices.Clone([]*nodeItem(q.pq))
	slices.SortFunc(items, entryLess)
	out := make([]trace.HeapEntry, len(items))
	for i, it := range items {
		out[i] = trace.HeapEntry{ID: it.id, Dist: it.dist}
	}
	return out
}
