package search

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/gridwalk/grid"
)

// cheapestFirst implements Dijkstra and, with a heuristic, A*.
//
// Each step finalizes the unvisited cell with the smallest priority
// (g for Dijkstra, g+h for A*), ties broken by column then row. That is the
// cell a full-grid scan in column-major order would pick first, obtained
// here from a lazy-decrease-key heap: improved distances push a new entry
// and stale entries are skipped when popped.
type cheapestFirst struct {
	dist []int // row-major g-scores; math.MaxInt = unreached
	h    Heuristic
	pq   nodePQ
}

func newCheapestFirst(w *walker, h Heuristic) *cheapestFirst {
	f := &cheapestFirst{
		dist: make([]int, w.g.Size()),
		h:    h,
		pq:   make(nodePQ, 0, w.g.Size()),
	}
	for i := range f.dist {
		f.dist[i] = math.MaxInt
	}
	f.dist[w.idx(w.start)] = 0
	heap.Init(&f.pq)
	f.push(w, w.start, 0)

	return f
}

func (f *cheapestFirst) push(w *walker, c grid.Coordinate, g int) {
	prio := g
	if f.h != nil {
		prio += f.h(c, w.end)
	}
	heap.Push(&f.pq, &nodeItem{at: c, g: g, prio: prio})
}

// expand selects and finalizes one cell, then relaxes its open neighbors
// with unit edge cost. Only strictly shorter distances relink a neighbor.
func (f *cheapestFirst) expand(w *walker) stepKind {
	var cur grid.Coordinate
	for {
		if f.pq.Len() == 0 {
			return stepExhausted
		}
		item := heap.Pop(&f.pq).(*nodeItem)
		if !w.isVisited(item.at) {
			cur = item.at
			break
		}
	}

	w.visit(cur)
	w.expanded++
	if cur == w.end {
		return stepFound
	}

	alt := f.dist[w.idx(cur)] + 1
	for _, n := range w.open(cur) {
		if alt >= f.dist[w.idx(n)] {
			continue
		}
		f.dist[w.idx(n)] = alt
		w.link(n, cur)
		f.push(w, n, alt)
	}

	return stepContinue
}

// nodeItem is a heap entry: a cell with its g-score and priority.
type nodeItem struct {
	at   grid.Coordinate
	g    int
	prio int
}

// nodePQ is a min-heap of *nodeItem ordered by (prio, col, row).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.prio != b.prio {
		return a.prio < b.prio
	}
	if a.at.Col != b.at.Col {
		return a.at.Col < b.at.Col
	}

	return a.at.Row < b.at.Row
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
