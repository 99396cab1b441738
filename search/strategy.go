package search

import (
	"fmt"
	"strings"
)

type kind int

const (
	kindInvalid kind = iota
	kindBFS
	kindDFS
	kindDijkstra
	kindAStar
)

var kindNames = [...]string{
	kindInvalid:  "invalid",
	kindBFS:      "bfs",
	kindDFS:      "dfs",
	kindDijkstra: "dijkstra",
	kindAStar:    "astar",
}

// Strategy selects the frontier discipline. It is a closed set: the only
// valid values are BFS, DFS, Dijkstra and those returned by AStar.
// The zero value is invalid and rejected with ErrUnknownStrategy.
type Strategy struct {
	kind      kind
	heuristic Heuristic
}

// Built-in strategies.
var (
	BFS      = Strategy{kind: kindBFS}
	DFS      = Strategy{kind: kindDFS}
	Dijkstra = Strategy{kind: kindDijkstra}
)

// AStar returns the A* strategy guided by h. A nil h means Manhattan.
func AStar(h Heuristic) Strategy {
	if h == nil {
		h = Manhattan
	}

	return Strategy{kind: kindAStar, heuristic: h}
}

// Strategies lists every strategy, A* with the Manhattan heuristic.
func Strategies() []Strategy {
	return []Strategy{BFS, DFS, Dijkstra, AStar(nil)}
}

// Name returns "bfs", "dfs", "dijkstra" or "astar".
func (s Strategy) Name() string {
	if s.kind < 0 || int(s.kind) >= len(kindNames) {
		return kindNames[kindInvalid]
	}

	return kindNames[s.kind]
}

// String implements fmt.Stringer.
func (s Strategy) String() string { return s.Name() }

// Valid reports whether s was built by this package.
func (s Strategy) Valid() bool {
	return s.kind > kindInvalid && int(s.kind) < len(kindNames)
}

// ParseStrategy maps a name to a Strategy. Accepted names, case-insensitive:
// bfs, dfs, dijkstra, astar (or "a*"). A* uses the Manhattan heuristic.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs", "breadth-first":
		return BFS, nil
	case "dfs", "depth-first":
		return DFS, nil
	case "dijkstra", "uniform-cost":
		return Dijkstra, nil
	case "astar", "a*":
		return AStar(nil), nil
	}

	return Strategy{}, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// MarshalText encodes the strategy by name.
func (s Strategy) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, ErrUnknownStrategy
	}

	return []byte(s.Name()), nil
}

// UnmarshalText decodes a strategy name via ParseStrategy.
func (s *Strategy) UnmarshalText(text []byte) error {
	v, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = v

	return nil
}

// newExpander builds the per-session frontier for s.
func (s Strategy) newExpander(w *walker) expander {
	switch s.kind {
	case kindBFS:
		return newBFS(w)
	case kindDFS:
		return newDFS(w)
	case kindDijkstra:
		return newCheapestFirst(w, nil)
	case kindAStar:
		return newCheapestFirst(w, s.heuristic)
	}

	return nil
}
