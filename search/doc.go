// Package search runs graph searches over a grid.Grid one visitation at a
// time, so a render loop can draw exploration as it happens.
//
// What
//
//   - Four strategies behind one entry point:
//   - BFS: FIFO frontier; cells are marked visited when enqueued.
//   - DFS: LIFO frontier; cells are marked visited when popped, stale
//     duplicates are dropped as no-op steps.
//   - Dijkstra: uniform-cost selection of the cheapest unvisited cell.
//   - AStar(h): Dijkstra ordered by g + h(cell, end).
//   - Begin returns a Session whose Step advances exactly one frontier
//     dequeue/pop/selection and reports the cells it newly visited.
//   - Solve is Begin plus Step until the session is terminal.
//   - Reconstruct rebuilds the start→end walk from a predecessor map.
//
// Determinism
//
//	Neighbors are expanded in the grid's fixed order (up, left, down, right).
//	Dijkstra and A* break priority ties by column, then row. The same grid
//	and strategy therefore always produce the same visitation order and path.
//
// Session lifecycle
//
//	Ready → Exploring → {Found | Exhausted}
//
//	A terminal session never changes again; stepping it returns
//	ErrSessionFinished. A session may be abandoned at any time by dropping it.
//	Begin snapshots the grid, so editing the grid mid-session is harmless.
//
// Safety
//
//	A session finalizes each cell at most once, so it expands at most
//	rows×cols cells. Exceeding that bound (or a budget set with
//	WithStepBudget) stops the session with ErrStepBudget.
//
// Complexity (N = rows×cols)
//
//   - BFS, DFS: O(N) time and memory over a whole session.
//   - Dijkstra, A*: O(N log N) time, O(N) memory.
//
// Errors
//
//   - ErrNilGrid:          nil grid passed to Begin or Solve.
//   - ErrMissingEndpoints: start or end not placed.
//   - ErrUnknownStrategy:  zero Strategy value or unknown strategy name.
//   - ErrOptionViolation:  invalid Option.
//   - ErrSessionFinished:  Step on a terminal session.
//   - ErrStepBudget:       expansion bound exceeded.
//   - ErrBrokenChain:      predecessor map does not lead back to start.
package search
