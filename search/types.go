package search

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridwalk/grid"
)

// Sentinel errors for search execution.
var (
	// ErrNilGrid is returned when a nil grid is passed in.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrMissingEndpoints is returned when start or end is not placed.
	// The caller must place both markers first; it is never retried.
	ErrMissingEndpoints = errors.New("search: start and end must both be placed")

	// ErrUnknownStrategy is returned for a Strategy not built by this package
	// or an unrecognized strategy name.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrSessionFinished is returned when Step is called on a terminal session.
	ErrSessionFinished = errors.New("search: session already finished")

	// ErrStepBudget is returned when a session expands more cells than allowed.
	ErrStepBudget = errors.New("search: expansion budget exceeded")

	// ErrBrokenChain is returned when a predecessor chain does not lead back
	// to the start.
	ErrBrokenChain = errors.New("search: broken predecessor chain")
)

// State is the lifecycle stage of a Session.
type State int

const (
	// Ready means no step has been taken yet.
	Ready State = iota
	// Exploring means steps have been taken and the search is not over.
	Exploring
	// Found means the end was reached. Terminal.
	Found
	// Exhausted means the frontier emptied without reaching the end. Terminal.
	Exhausted
)

var stateNames = [...]string{Ready: "ready", Exploring: "exploring", Found: "found", Exhausted: "exhausted"}

// String returns the lowercase state name.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}

	return stateNames[s]
}

// Terminal reports whether no further steps are allowed.
func (s State) Terminal() bool { return s == Found || s == Exhausted }

// OutcomeKind classifies the result of one Step.
type OutcomeKind int

const (
	// StepContinue means the search is still running.
	StepContinue OutcomeKind = iota
	// StepFound means the end was reached on this step.
	StepFound
	// StepExhausted means the frontier emptied on this step.
	StepExhausted
)

// String returns "continue", "found" or "exhausted".
func (k OutcomeKind) String() string {
	switch k {
	case StepFound:
		return "found"
	case StepExhausted:
		return "exhausted"
	default:
		return "continue"
	}
}

// MarshalText encodes the kind by name for JSON payloads.
func (k OutcomeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Result is the immutable outcome of a finished search.
//   - Path: start→end inclusive, empty when not found.
//   - Visited: every visited cell in visitation order.
//   - Steps: number of Step calls the session took.
type Result struct {
	Found    bool              `json:"found"`
	Path     []grid.Coordinate `json:"path"`
	Visited  []grid.Coordinate `json:"visited"`
	Strategy Strategy          `json:"strategy"`
	Steps    int               `json:"steps"`
}

// Outcome reports one Step. Visited holds the cells newly visited on this
// step (possibly none). Result is set when Kind is StepFound or StepExhausted.
type Outcome struct {
	Kind    OutcomeKind       `json:"kind"`
	Visited []grid.Coordinate `json:"visited"`
	Result  *Result           `json:"result,omitempty"`
}

// Heuristic estimates the remaining cost from a cell to the end.
// It must never overestimate for A* paths to be shortest.
type Heuristic func(from, to grid.Coordinate) int

// Manhattan is the admissible heuristic for a 4-connected unit-cost grid.
func Manhattan(from, to grid.Coordinate) int {
	return grid.Manhattan(from, to)
}

// Option configures a Session via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by Begin.
type Option func(*Options)

// Options holds parameters and hooks for a Session.
type Options struct {
	// Logger receives Debug entries on lifecycle transitions.
	Logger logrus.FieldLogger

	// OnVisit is called once per newly visited cell, in visitation order.
	OnVisit func(c grid.Coordinate)

	// StepBudget caps the number of cells a session may expand.
	// Zero means rows×cols.
	StepBudget int

	err error
}

// DefaultOptions returns Options with a discarding logger, a no-op OnVisit
// hook and the rows×cols budget.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Options{
		Logger:  l,
		OnVisit: func(grid.Coordinate) {},
	}
}

// WithLogger routes lifecycle logging to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnVisit registers a callback run for each newly visited cell.
func WithOnVisit(fn func(c grid.Coordinate)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithStepBudget caps cell expansions per session.
//
//	n > 0: cap at n
//	n == 0: default rows×cols
//	n < 0: invalid → ErrOptionViolation
func WithStepBudget(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: StepBudget cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.StepBudget = n
	}
}
