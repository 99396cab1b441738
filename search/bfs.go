package search

import "github.com/katalvlaran/gridwalk/grid"

// bfsFrontier is a FIFO queue. Cells are marked visited when enqueued so
// nothing is enqueued twice.
type bfsFrontier struct {
	queue []grid.Coordinate
}

func newBFS(w *walker) *bfsFrontier {
	return &bfsFrontier{queue: []grid.Coordinate{w.start}}
}

// expand dequeues one cell and enqueues its open neighbors. Reaching the
// end as a neighbor finishes the search immediately.
func (f *bfsFrontier) expand(w *walker) stepKind {
	if len(f.queue) == 0 {
		return stepExhausted
	}
	cur := f.queue[0]
	f.queue = f.queue[1:]
	w.visit(cur) // only the start is still unvisited at dequeue time
	w.expanded++

	for _, n := range w.open(cur) {
		w.link(n, cur)
		w.visit(n)
		if n == w.end {
			return stepFound
		}
		f.queue = append(f.queue, n)
	}

	return stepContinue
}
