package api

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridwalk/brush"
	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/search"
)

// Sentinel errors for store lookups and edits.
var (
	ErrGridNotFound    = errors.New("api: grid not found")
	ErrSessionNotFound = errors.New("api: session not found")
	ErrUnknownOp       = errors.New("api: unknown cell op")
	ErrGridTooLarge    = errors.New("api: grid exceeds the cell limit")
)

// Store limits applied when no option overrides them.
const (
	DefaultMaxCells   = 1 << 20
	DefaultSessionTTL = 10 * time.Minute
)

type sessionEntry struct {
	gridID  uuid.UUID
	sess    *search.Session
	touched time.Time
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithMaxCells caps rows×cols for created and imported grids. n ≤ 0 keeps
// the default.
func WithMaxCells(n int) StoreOption {
	return func(s *Store) {
		if n > 0 {
			s.maxCells = n
		}
	}
}

// WithSessionTTL sets how long a session may sit untouched before it is
// dropped. d ≤ 0 keeps the default.
func WithSessionTTL(d time.Duration) StoreOption {
	return func(s *Store) {
		if d > 0 {
			s.ttl = d
		}
	}
}

// WithClock replaces time.Now for session expiry.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// Store keeps grids and sessions in memory. Safe for concurrent use.
// Sessions untouched for longer than the TTL are evicted, finished or not.
type Store struct {
	mu       sync.Mutex
	rows     int
	cols     int
	maxCells int
	ttl      time.Duration
	now      func() time.Time
	strategy search.Strategy
	log      logrus.FieldLogger
	grids    map[uuid.UUID]*grid.Grid
	sessions map[uuid.UUID]*sessionEntry
}

// NewStore returns an empty store. New grids default to rows×cols and
// searches without an explicit strategy use def.
func NewStore(rows, cols int, def search.Strategy, log logrus.FieldLogger, opts ...StoreOption) *Store {
	s := &Store{
		rows:     rows,
		cols:     cols,
		maxCells: DefaultMaxCells,
		ttl:      DefaultSessionTTL,
		now:      time.Now,
		strategy: def,
		log:      log,
		grids:    make(map[uuid.UUID]*grid.Grid),
		sessions: make(map[uuid.UUID]*sessionEntry),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// CreateGrid adds an empty grid. Zero dimensions use the store defaults.
func (s *Store) CreateGrid(rows, cols int) (GridView, error) {
	if rows == 0 {
		rows = s.rows
	}
	if cols == 0 {
		cols = s.cols
	}
	if rows > 0 && cols > 0 && rows > s.maxCells/cols {
		return GridView{}, fmt.Errorf("%w: %d×%d, limit %d cells", ErrGridTooLarge, rows, cols, s.maxCells)
	}
	g, err := grid.New(rows, cols)
	if err != nil {
		return GridView{}, err
	}

	return s.add(g), nil
}

// ImportGrid adds a grid parsed from its ASCII form.
func (s *Store) ImportGrid(ascii string) (GridView, error) {
	g, err := grid.Parse(ascii)
	if err != nil {
		return GridView{}, err
	}
	if g.Size() > s.maxCells {
		return GridView{}, fmt.Errorf("%w: %d×%d, limit %d cells", ErrGridTooLarge, g.Rows(), g.Cols(), s.maxCells)
	}

	return s.add(g), nil
}

func (s *Store) add(g *grid.Grid) GridView {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.grids[id] = g
	s.log.WithFields(logrus.Fields{"grid": id.String(), "rows": g.Rows(), "cols": g.Cols()}).Info("grid created")

	return viewOf(id, g)
}

// Grid returns the current state of grid id.
func (s *Store) Grid(id string) (GridView, error) {
	var v GridView
	err := s.withGrid(id, func(gid uuid.UUID, g *grid.Grid) error {
		v = viewOf(gid, g)
		return nil
	})

	return v, err
}

// EditCell applies op (wall, open, start, end, erase) at c.
// Out-of-bounds coordinates are ignored, as for any grid edit.
func (s *Store) EditCell(id, op string, c grid.Coordinate) (GridView, error) {
	var v GridView
	err := s.withGrid(id, func(gid uuid.UUID, g *grid.Grid) error {
		switch strings.ToLower(op) {
		case "wall":
			g.SetWall(c, true)
		case "open":
			g.SetWall(c, false)
		case "start":
			g.SetStart(c)
		case "end":
			g.SetEnd(c)
		case "erase":
			g.Erase(c)
		default:
			return fmt.Errorf("%w: %q", ErrUnknownOp, op)
		}
		v = viewOf(gid, g)
		return nil
	})

	return v, err
}

// Stroke applies a brush stroke and reports how many cells changed.
func (s *Store) Stroke(id string, b brush.Brush, from *grid.Coordinate, to grid.Coordinate) (StrokeView, error) {
	var v StrokeView
	err := s.withGrid(id, func(gid uuid.UUID, g *grid.Grid) error {
		v.Changed = b.Apply(g, from, to)
		v.Grid = viewOf(gid, g)
		return nil
	})

	return v, err
}

// ClearWalls opens every cell of grid id.
func (s *Store) ClearWalls(id string) (GridView, error) {
	var v GridView
	err := s.withGrid(id, func(gid uuid.UUID, g *grid.Grid) error {
		g.ClearAllWalls()
		v = viewOf(gid, g)
		return nil
	})

	return v, err
}

// Solve runs a full search on grid id. An empty name uses the default.
func (s *Store) Solve(id, strategy string) (search.Result, error) {
	st, err := s.resolve(strategy)
	if err != nil {
		return search.Result{}, err
	}
	var res search.Result
	err = s.withGrid(id, func(_ uuid.UUID, g *grid.Grid) error {
		var serr error
		res, serr = search.Solve(g, st, search.WithLogger(s.log))
		return serr
	})

	return res, err
}

// BeginSession starts a step-wise search over a snapshot of grid id.
func (s *Store) BeginSession(id, strategy string) (SessionView, error) {
	st, err := s.resolve(strategy)
	if err != nil {
		return SessionView{}, err
	}
	var v SessionView
	err = s.withGrid(id, func(gid uuid.UUID, g *grid.Grid) error {
		sess, berr := search.Begin(g, st, search.WithLogger(s.log))
		if berr != nil {
			return berr
		}
		now := s.now()
		s.evictIdle(now)
		e := &sessionEntry{gridID: gid, sess: sess, touched: now}
		s.sessions[sess.ID()] = e
		v = e.view()
		return nil
	})

	return v, err
}

// Session returns the status of session sid.
func (s *Store) Session(sid string) (SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, err := s.lookupSession(sid)
	if err != nil {
		return SessionView{}, err
	}

	return e.view(), nil
}

// Step advances session sid by one step.
func (s *Store) Step(sid string) (StepView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, err := s.lookupSession(sid)
	if err != nil {
		return StepView{}, err
	}
	out, err := e.sess.Step()
	if err != nil {
		return StepView{Session: e.view(), Outcome: out}, err
	}

	return StepView{Session: e.view(), Outcome: out}, nil
}

// DropSession abandons session sid.
func (s *Store) DropSession(sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, err := s.lookupSession(sid)
	if err != nil {
		return err
	}
	delete(s.sessions, e.sess.ID())

	return nil
}

func (s *Store) resolve(name string) (search.Strategy, error) {
	if name == "" {
		return s.strategy, nil
	}

	return search.ParseStrategy(name)
}

// withGrid runs fn on grid id under the store lock.
func (s *Store) withGrid(id string, fn func(uuid.UUID, *grid.Grid) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	gid, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrGridNotFound, id)
	}
	g, ok := s.grids[gid]
	if !ok {
		return fmt.Errorf("%w: %s", ErrGridNotFound, gid)
	}

	return fn(gid, g)
}

// lookupSession finds sid and marks it touched. Expired sessions are
// evicted first. Must be called with s.mu held.
func (s *Store) lookupSession(sid string) (*sessionEntry, error) {
	now := s.now()
	s.evictIdle(now)
	id, err := uuid.Parse(sid)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrSessionNotFound, sid)
	}
	e, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	e.touched = now

	return e, nil
}

// evictIdle drops sessions untouched for longer than the TTL.
// Must be called with s.mu held.
func (s *Store) evictIdle(now time.Time) {
	for id, e := range s.sessions {
		if now.Sub(e.touched) <= s.ttl {
			continue
		}
		delete(s.sessions, id)
		s.log.WithFields(logrus.Fields{
			"session": id.String(),
			"state":   e.sess.State().String(),
			"idle":    now.Sub(e.touched).String(),
		}).Debug("search session expired")
	}
}

// Sessions reports how many sessions are held.
func (s *Store) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictIdle(s.now())

	return len(s.sessions)
}

func (e *sessionEntry) view() SessionView {
	return SessionView{
		ID:       e.sess.ID().String(),
		GridID:   e.gridID.String(),
		Strategy: e.sess.Strategy(),
		State:    e.sess.State().String(),
		Steps:    e.sess.Steps(),
	}
}

func viewOf(id uuid.UUID, g *grid.Grid) GridView {
	v := GridView{
		ID:    id.String(),
		Rows:  g.Rows(),
		Cols:  g.Cols(),
		Walls: g.Walls(),
		ASCII: g.String(),
	}
	if v.Walls == nil {
		v.Walls = []grid.Coordinate{}
	}
	if c, ok := g.Start(); ok {
		v.Start = &c
	}
	if c, ok := g.End(); ok {
		v.End = &c
	}

	return v
}
