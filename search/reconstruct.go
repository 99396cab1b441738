package search

import (
	"fmt"

	"github.com/katalvlaran/gridwalk/grid"
)

// Reconstruct walks pred backward from end to start and returns the path
// start→end inclusive. The start is the root of the chain and needs no
// entry in pred; start == end yields [start].
//
// Returns ErrBrokenChain if a link is missing before start is reached, or
// if the chain is longer than pred could support (a cycle), so a malformed
// map can never loop forever.
// Complexity: O(len(path)).
func Reconstruct(pred map[grid.Coordinate]grid.Coordinate, start, end grid.Coordinate) ([]grid.Coordinate, error) {
	path := []grid.Coordinate{end}
	for cur := end; cur != start; {
		prev, ok := pred[cur]
		if !ok {
			return nil, fmt.Errorf("%w: no predecessor for %s", ErrBrokenChain, cur)
		}
		if len(path) > len(pred) {
			return nil, fmt.Errorf("%w: cycle through %s", ErrBrokenChain, cur)
		}
		path = append(path, prev)
		cur = prev
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
