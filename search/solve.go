package search

import "github.com/katalvlaran/gridwalk/grid"

// Solve runs strategy s on g to completion without external observation.
// It fails with the same errors as Begin and Step; a NotFound search is not
// an error, it is a Result with Found == false.
func Solve(g *grid.Grid, s Strategy, opts ...Option) (Result, error) {
	sess, err := Begin(g, s, opts...)
	if err != nil {
		return Result{}, err
	}
	for {
		out, err := sess.Step()
		if err != nil {
			return Result{}, err
		}
		if out.Result != nil {
			return *out.Result, nil
		}
	}
}
