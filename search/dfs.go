package search

import "github.com/katalvlaran/gridwalk/grid"

// dfsFrontier is a LIFO stack. Visitation is deferred to pop time, so the
// stack may hold duplicates; popping an already-visited cell is a no-op.
type dfsFrontier struct {
	stack []grid.Coordinate
}

func newDFS(w *walker) *dfsFrontier {
	return &dfsFrontier{stack: []grid.Coordinate{w.start}}
}

// expand pops one cell. A stale duplicate yields a step with no visits.
// Otherwise the cell is visited and its open neighbors pushed, each linked
// to it; a later push relinks a cell that is still unvisited.
func (f *dfsFrontier) expand(w *walker) stepKind {
	if len(f.stack) == 0 {
		return stepExhausted
	}
	top := len(f.stack) - 1
	cur := f.stack[top]
	f.stack = f.stack[:top]
	if !w.visit(cur) {
		return stepContinue
	}
	w.expanded++

	for _, n := range w.open(cur) {
		w.link(n, cur)
		if n == w.end {
			return stepFound
		}
		f.stack = append(f.stack, n)
	}

	return stepContinue
}
