package search_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/search"
)

type at = grid.Coordinate

func c(col, row int) at { return grid.At(col, row) }

// drain steps sess to completion and returns each step's newly visited cells.
func drain(t *testing.T, sess *search.Session) ([][]at, search.Outcome) {
	t.Helper()
	var perStep [][]at
	for i := 0; ; i++ {
		require.Less(t, i, 1000, "session did not terminate")
		out, err := sess.Step()
		require.NoError(t, err)
		perStep = append(perStep, out.Visited)
		if out.Kind != search.StepContinue {
			return perStep, out
		}
	}
}

// TestBFS_StepTrace pins BFS on an open 3×3 grid: neighbors are marked
// visited when enqueued, and the end is accepted as soon as it is seen.
func TestBFS_StepTrace(t *testing.T) {
	g := grid.MustParse(`
		S..
		...
		..E
	`)
	sess, err := search.Begin(g, search.BFS)
	require.NoError(t, err)
	assert.Equal(t, search.Ready, sess.State())

	steps, last := drain(t, sess)
	assert.Equal(t, [][]at{
		{c(0, 0), c(0, 1), c(1, 0)},
		{c(0, 2), c(1, 1)},
		{c(2, 0)},
		{c(1, 2)},
		{c(2, 1)},
		{},
		{c(2, 2)},
	}, steps)
	assert.Equal(t, search.StepFound, last.Kind)
	require.NotNil(t, last.Result)
	assert.Equal(t, []at{c(0, 0), c(0, 1), c(0, 2), c(1, 2), c(2, 2)}, last.Result.Path)
	assert.Equal(t, 7, last.Result.Steps)
	assert.Equal(t, search.Found, sess.State())
}

// TestDFS_StepTrace pins DFS: the last pushed neighbor (right) is explored first.
func TestDFS_StepTrace(t *testing.T) {
	g := grid.MustParse(`
		S..
		...
		..E
	`)
	sess, err := search.Begin(g, search.DFS)
	require.NoError(t, err)

	steps, last := drain(t, sess)
	assert.Equal(t, [][]at{{c(0, 0)}, {c(1, 0)}, {c(2, 0)}, {c(2, 1)}}, steps)
	assert.Equal(t, search.StepFound, last.Kind)
	assert.Equal(t, []at{c(0, 0), c(1, 0), c(2, 0), c(2, 1), c(2, 2)}, last.Result.Path)
	// the end is linked on push, never popped
	assert.NotContains(t, last.Result.Visited, c(2, 2))
}

// TestDFS_StaleDuplicateIsNoOp: a cell pushed twice is popped twice; the
// second pop is a Continue step with nothing newly visited.
func TestDFS_StaleDuplicateIsNoOp(t *testing.T) {
	g := grid.MustParse(`
		S.#
		..#
		##E
	`)
	sess, err := search.Begin(g, search.DFS)
	require.NoError(t, err)

	steps, last := drain(t, sess)
	assert.Equal(t, [][]at{{c(0, 0)}, {c(1, 0)}, {c(1, 1)}, {c(0, 1)}, {}, {}}, steps)
	assert.Equal(t, search.StepExhausted, last.Kind)
	assert.False(t, last.Result.Found)
	assert.Empty(t, last.Result.Path)
	assert.Equal(t, 6, sess.Steps())
	assert.Equal(t, search.Exhausted, sess.State())
}

// TestDijkstra_TieOrder: equal distances are finalized by column, then row.
func TestDijkstra_TieOrder(t *testing.T) {
	g, _ := grid.New(3, 3)
	g.SetStart(c(1, 1))
	g.SetEnd(c(2, 2))

	res, err := search.Solve(g, search.Dijkstra)
	require.NoError(t, err)
	assert.Equal(t, []at{
		c(1, 1),
		c(0, 1), c(1, 0), c(1, 2), c(2, 1),
		c(0, 0), c(0, 2), c(2, 0), c(2, 2),
	}, res.Visited)
	assert.Equal(t, []at{c(1, 1), c(1, 2), c(2, 2)}, res.Path)
	assert.Equal(t, 9, res.Steps)
}

// TestAStar_FocusesTowardEnd: same grid as above, Manhattan guidance
// finalizes only the cells on the way.
func TestAStar_FocusesTowardEnd(t *testing.T) {
	g, _ := grid.New(3, 3)
	g.SetStart(c(1, 1))
	g.SetEnd(c(2, 2))

	res, err := search.Solve(g, search.AStar(search.Manhattan))
	require.NoError(t, err)
	assert.Equal(t, []at{c(1, 1), c(1, 2), c(2, 1), c(2, 2)}, res.Visited)
	assert.Equal(t, []at{c(1, 1), c(1, 2), c(2, 2)}, res.Path)
	assert.Equal(t, "astar", res.Strategy.Name())
}

// TestAStar_ZeroHeuristicMatchesDijkstra: h ≡ 0 degenerates to Dijkstra.
func TestAStar_ZeroHeuristicMatchesDijkstra(t *testing.T) {
	g := grid.MustParse(`
		S..#....
		.#.#.##.
		.#...#E.
		.####.#.
		........
	`)
	dj, err := search.Solve(g, search.Dijkstra)
	require.NoError(t, err)
	zero, err := search.Solve(g, search.AStar(func(_, _ grid.Coordinate) int { return 0 }))
	require.NoError(t, err)

	assert.Equal(t, dj.Visited, zero.Visited)
	assert.Equal(t, dj.Path, zero.Path)
}

func TestSession_TerminalStepIsError(t *testing.T) {
	g := grid.MustParse("SE")
	sess, err := search.Begin(g, search.BFS)
	require.NoError(t, err)
	_, ok := sess.Result()
	assert.False(t, ok)

	out, err := sess.Step()
	require.NoError(t, err)
	assert.Equal(t, search.StepFound, out.Kind)

	_, err = sess.Step()
	require.ErrorIs(t, err, search.ErrSessionFinished)
	assert.Equal(t, search.Found, sess.State())
	assert.Equal(t, 1, sess.Steps(), "a rejected step does not count")

	res, ok := sess.Result()
	require.True(t, ok)
	assert.True(t, res.Found)
}

func TestSession_ExploringState(t *testing.T) {
	g := grid.MustParse("S...E")
	sess, err := search.Begin(g, search.BFS)
	require.NoError(t, err)

	out, err := sess.Step()
	require.NoError(t, err)
	assert.Equal(t, search.StepContinue, out.Kind)
	assert.Nil(t, out.Result)
	assert.Equal(t, search.Exploring, sess.State())
	assert.Equal(t, []at{c(0, 0), c(1, 0)}, sess.Visited())
}

// TestSession_SnapshotsGrid: edits after Begin do not affect the session.
func TestSession_SnapshotsGrid(t *testing.T) {
	g := grid.MustParse(`
		S..
		...
		..E
	`)
	sess, err := search.Begin(g, search.Dijkstra)
	require.NoError(t, err)

	for row := 0; row < 3; row++ {
		g.SetWall(c(1, row), true)
	}
	g.ClearEnd()

	_, last := drain(t, sess)
	assert.True(t, last.Result.Found)
	assert.Len(t, last.Result.Path, 5)
	assert.False(t, sess.Grid().IsWall(c(1, 1)))
}

// TestSession_ResultIsImmutable: mutating a returned Result does not leak
// into the session.
func TestSession_ResultIsImmutable(t *testing.T) {
	g := grid.MustParse("S.E")
	sess, _ := search.Begin(g, search.BFS)
	_, last := drain(t, sess)
	last.Result.Path[0] = c(9, 9)
	last.Result.Visited[0] = c(9, 9)

	res, _ := sess.Result()
	assert.Equal(t, c(0, 0), res.Path[0])
	assert.Equal(t, c(0, 0), res.Visited[0])
}

func TestSession_StepBudget(t *testing.T) {
	g, _ := grid.New(5, 5)
	g.SetStart(c(0, 0))
	g.SetEnd(c(4, 4))
	sess, err := search.Begin(g, search.BFS, search.WithStepBudget(2))
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err = sess.Step()
		require.NoError(t, err)
	}
	out, err := sess.Step()
	require.ErrorIs(t, err, search.ErrStepBudget)
	assert.Equal(t, search.Exhausted, sess.State())
	assert.Equal(t, search.StepExhausted, out.Kind)
	assert.Equal(t, []at{c(2, 0)}, out.Visited, "cells visited on the failing step are reported")
	require.NotNil(t, out.Result)
	assert.False(t, out.Result.Found)
	assert.Contains(t, out.Result.Visited, c(2, 0))

	res, ok := sess.Result()
	require.True(t, ok)
	assert.Equal(t, out.Result.Visited, res.Visited)

	_, err = sess.Step()
	require.ErrorIs(t, err, search.ErrSessionFinished)
}

func TestSession_UniqueIDs(t *testing.T) {
	g := grid.MustParse("S.E")
	a, _ := search.Begin(g, search.BFS)
	b, _ := search.Begin(g, search.BFS)
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestOption_OnVisit(t *testing.T) {
	g := grid.MustParse(`
		S.#.
		..#E
		....
	`)
	for _, st := range search.Strategies() {
		var seen []at
		res, err := search.Solve(g, st, search.WithOnVisit(func(x grid.Coordinate) {
			seen = append(seen, x)
		}))
		require.NoError(t, err)
		assert.Equal(t, res.Visited, seen, st.Name())
	}
}

func TestOption_Logger(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	g := grid.MustParse("S.E")
	_, err := search.Solve(g, search.DFS, search.WithLogger(logger))
	require.NoError(t, err)

	var msgs []string
	for _, e := range hook.AllEntries() {
		msgs = append(msgs, e.Message)
		assert.Equal(t, "dfs", e.Data["strategy"])
		assert.NotEmpty(t, e.Data["session"])
	}
	assert.Equal(t, []string{"search session created", "search started", "search finished"}, msgs)
	assert.Equal(t, "found", hook.LastEntry().Data["state"])
}
