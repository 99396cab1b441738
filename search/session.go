package search

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridwalk/grid"
)

// Session is one step-wise search over a snapshot of a grid.
// It is single-threaded: call Step from one goroutine, typically once per
// render tick.
type Session struct {
	id       uuid.UUID
	strategy Strategy
	state    State
	steps    int
	budget   int

	w      *walker
	exp    expander
	result *Result
	log    logrus.FieldLogger
}

// Begin validates its inputs, snapshots g and returns a Ready session.
// Returns ErrNilGrid, ErrUnknownStrategy, ErrOptionViolation or
// ErrMissingEndpoints.
func Begin(g *grid.Grid, s Strategy, opts ...Option) (*Session, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !s.Valid() {
		return nil, ErrUnknownStrategy
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	start, hasStart := g.Start()
	end, hasEnd := g.End()
	if !hasStart || !hasEnd {
		return nil, fmt.Errorf("%w: start placed=%t, end placed=%t", ErrMissingEndpoints, hasStart, hasEnd)
	}

	snap := g.Clone()
	budget := o.StepBudget
	if budget == 0 {
		budget = snap.Size()
	}

	sess := &Session{
		id:       uuid.New(),
		strategy: s,
		state:    Ready,
		budget:   budget,
		w:        newWalker(snap, start, end, o.OnVisit),
	}
	sess.exp = s.newExpander(sess.w)
	sess.log = o.Logger.WithFields(logrus.Fields{
		"session":  sess.id.String(),
		"strategy": s.Name(),
	})
	sess.log.WithFields(logrus.Fields{
		"start": start.String(),
		"end":   end.String(),
		"rows":  snap.Rows(),
		"cols":  snap.Cols(),
	}).Debug("search session created")

	return sess, nil
}

// ID returns the session's unique identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// Strategy returns the strategy the session runs.
func (s *Session) Strategy() Strategy { return s.strategy }

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Steps returns how many times Step has advanced the session.
func (s *Session) Steps() int { return s.steps }

// Grid returns the snapshot being searched. Callers must not modify it.
func (s *Session) Grid() *grid.Grid { return s.w.g }

// Visited returns a copy of the cells visited so far, in order.
func (s *Session) Visited() []grid.Coordinate {
	return append([]grid.Coordinate(nil), s.w.order...)
}

// Result returns the final result once the session is terminal.
func (s *Session) Result() (Result, bool) {
	if s.result == nil {
		return Result{}, false
	}

	return s.result.clone(), true
}

// Step advances the search by exactly one frontier operation and reports
// the cells it newly visited. On the step that reaches the end or drains
// the frontier, the Outcome carries the final Result.
//
// Stepping a terminal session returns ErrSessionFinished. ErrStepBudget and
// ErrBrokenChain end the session as Exhausted; the Outcome returned with
// them still carries the cells visited on that step and the final Result.
func (s *Session) Step() (Outcome, error) {
	if s.state.Terminal() {
		return Outcome{}, fmt.Errorf("%w: state=%s after %d steps", ErrSessionFinished, s.state, s.steps)
	}
	if s.state == Ready {
		s.state = Exploring
		s.log.Debug("search started")
	}

	mark := len(s.w.order)
	kind := s.exp.expand(s.w)
	s.steps++
	out := Outcome{
		Kind:    StepContinue,
		Visited: append([]grid.Coordinate{}, s.w.order[mark:]...),
	}

	if s.w.expanded > s.budget {
		out.Kind = StepExhausted
		out.Result = s.finish(Exhausted, nil)

		return out, fmt.Errorf("%w: %d expansions, budget %d", ErrStepBudget, s.w.expanded, s.budget)
	}

	switch kind {
	case stepFound:
		path, err := Reconstruct(s.w.pred, s.w.start, s.w.end)
		if err != nil {
			out.Kind = StepExhausted
			out.Result = s.finish(Exhausted, nil)

			return out, err
		}
		out.Kind = StepFound
		out.Result = s.finish(Found, path)
	case stepExhausted:
		out.Kind = StepExhausted
		out.Result = s.finish(Exhausted, nil)
	}

	return out, nil
}

// finish moves the session to a terminal state and freezes its Result.
func (s *Session) finish(state State, path []grid.Coordinate) *Result {
	s.state = state
	s.result = &Result{
		Found:    state == Found,
		Path:     path,
		Visited:  append([]grid.Coordinate(nil), s.w.order...),
		Strategy: s.strategy,
		Steps:    s.steps,
	}
	if s.result.Path == nil {
		s.result.Path = []grid.Coordinate{}
	}
	s.log.WithFields(logrus.Fields{
		"state":   state.String(),
		"steps":   s.steps,
		"visited": len(s.w.order),
		"path":    len(s.result.Path),
	}).Debug("search finished")

	// Only the visitation order outlives the search.
	s.exp = nil
	s.w.pred = nil
	s.w.visited = nil

	r := s.result.clone()

	return &r
}

// clone copies the slices so callers cannot mutate session state.
func (r Result) clone() Result {
	r.Path = append([]grid.Coordinate{}, r.Path...)
	r.Visited = append([]grid.Coordinate{}, r.Visited...)

	return r
}
