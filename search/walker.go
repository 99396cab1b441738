package search

import "github.com/katalvlaran/gridwalk/grid"

// stepKind is what an expander reports after one frontier operation.
type stepKind int

const (
	stepContinue stepKind = iota
	stepFound
	stepExhausted
)

// expander is one frontier discipline. expand performs exactly one
// dequeue, pop or selection against the shared walker state.
type expander interface {
	expand(w *walker) stepKind
}

// walker holds the per-session mutable state shared by every strategy.
type walker struct {
	g          *grid.Grid
	start, end grid.Coordinate
	visited    []bool // row-major, same layout as the grid
	order      []grid.Coordinate
	pred       map[grid.Coordinate]grid.Coordinate
	expanded   int
	onVisit    func(grid.Coordinate)
}

func newWalker(g *grid.Grid, start, end grid.Coordinate, onVisit func(grid.Coordinate)) *walker {
	n := g.Size()

	return &walker{
		g:       g,
		start:   start,
		end:     end,
		visited: make([]bool, n),
		order:   make([]grid.Coordinate, 0, n),
		pred:    make(map[grid.Coordinate]grid.Coordinate, n),
		onVisit: onVisit,
	}
}

func (w *walker) idx(c grid.Coordinate) int {
	return c.Row*w.g.Cols() + c.Col
}

func (w *walker) isVisited(c grid.Coordinate) bool {
	return w.visited[w.idx(c)]
}

// visit marks c visited and records it in the visitation order.
// Returns false if c was already visited.
func (w *walker) visit(c grid.Coordinate) bool {
	i := w.idx(c)
	if w.visited[i] {
		return false
	}
	w.visited[i] = true
	w.order = append(w.order, c)
	w.onVisit(c)

	return true
}

// link records that c was reached from parent.
func (w *walker) link(c, parent grid.Coordinate) {
	w.pred[c] = parent
}

// open returns the passable, unvisited neighbors of c in the fixed order.
func (w *walker) open(c grid.Coordinate) []grid.Coordinate {
	ns := w.g.Neighbors4(c)
	out := ns[:0]
	for _, n := range ns {
		if w.g.IsPassable(n) && !w.isVisited(n) {
			out = append(out, n)
		}
	}

	return out
}
