package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridwalk/api"
	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/search"
)

const fixture = "S..\n.#.\n..E"

type stepBody struct {
	Session api.SessionView `json:"session"`
	Outcome struct {
		Kind    string            `json:"kind"`
		Visited []grid.Coordinate `json:"visited"`
		Result  *struct {
			Found bool              `json:"found"`
			Path  []grid.Coordinate `json:"path"`
		} `json:"result"`
	} `json:"outcome"`
}

// RouterSuite drives the HTTP surface end to end against a fresh store.
type RouterSuite struct {
	suite.Suite
	router *gin.Engine
	hook   *logtest.Hook
}

func TestRouterSuite(t *testing.T) {
	gin.SetMode(gin.TestMode)
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	logger, hook := logtest.NewNullLogger()
	s.hook = hook
	store := api.NewStore(4, 5, search.BFS, logger)
	s.router = api.NewRouter(api.Config{BaseURL: "/api", Store: store, Logger: logger})
}

func (s *RouterSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		req = httptest.NewRequest(method, "/api/v1"+path, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, "/api/v1"+path, nil)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	return w
}

func (s *RouterSuite) decode(w *httptest.ResponseRecorder, v any) {
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func (s *RouterSuite) importFixture() api.GridView {
	w := s.do(http.MethodPost, "/grids", api.CreateGridRequest{ASCII: fixture})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var view api.GridView
	s.decode(w, &view)

	return view
}

func (s *RouterSuite) TestCreateDefaults() {
	w := s.do(http.MethodPost, "/grids", api.CreateGridRequest{})
	s.Require().Equal(http.StatusCreated, w.Code)

	var view api.GridView
	s.decode(w, &view)
	s.Equal(4, view.Rows)
	s.Equal(5, view.Cols)
	s.Empty(view.Walls)
	s.Nil(view.Start)
	s.Nil(view.End)
	s.Equal(".....\n.....\n.....\n.....\n", view.ASCII)
}

func (s *RouterSuite) TestCreateRejectsBadInput() {
	w := s.do(http.MethodPost, "/grids", api.CreateGridRequest{Rows: -1, Cols: 3})
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/grids", api.CreateGridRequest{ASCII: "S.\n.x"})
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/grids", api.CreateGridRequest{ASCII: "S..\n.E"})
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *RouterSuite) TestCreateRejectsOversizedGrid() {
	huge := map[string]any{"rows": float64(1 << 40), "cols": float64(1 << 40)}
	w := s.do(http.MethodPost, "/grids", huge)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "cell limit")

	w = s.do(http.MethodPost, "/grids", api.CreateGridRequest{Rows: api.DefaultMaxCells + 1, Cols: 1})
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/grids", api.CreateGridRequest{Rows: api.DefaultMaxCells, Cols: 1})
	s.Equal(http.StatusCreated, w.Code)
}

func (s *RouterSuite) TestImportAndGet() {
	created := s.importFixture()
	s.Equal(3, created.Rows)
	s.Require().NotNil(created.Start)
	s.Equal(grid.At(0, 0), *created.Start)
	s.Require().NotNil(created.End)
	s.Equal(grid.At(2, 2), *created.End)
	s.Equal([]grid.Coordinate{grid.At(1, 1)}, created.Walls)

	w := s.do(http.MethodGet, "/grids/"+created.ID, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var got api.GridView
	s.decode(w, &got)
	s.Equal(created, got)
}

func (s *RouterSuite) TestUnknownGrid() {
	for _, id := range []string{"not-a-uuid", "6f1c2b8e-3a4d-4c5e-9f60-7a8b9c0d1e2f"} {
		w := s.do(http.MethodGet, "/grids/"+id, nil)
		s.Equal(http.StatusNotFound, w.Code, id)
		s.Contains(w.Body.String(), "grid not found")
	}
}

func (s *RouterSuite) TestEditCell() {
	g := s.importFixture()

	w := s.do(http.MethodPut, "/grids/"+g.ID+"/cells", api.CellRequest{Col: 2, Row: 0, Op: "wall"})
	s.Require().Equal(http.StatusOK, w.Code)
	var view api.GridView
	s.decode(w, &view)
	s.Equal([]grid.Coordinate{grid.At(2, 0), grid.At(1, 1)}, view.Walls)

	w = s.do(http.MethodPut, "/grids/"+g.ID+"/cells", api.CellRequest{Col: 1, Row: 0, Op: "end"})
	s.Require().Equal(http.StatusOK, w.Code)
	s.decode(w, &view)
	s.Require().NotNil(view.End)
	s.Equal(grid.At(1, 0), *view.End)
	s.Equal("SE#\n.#.\n...\n", view.ASCII)

	w = s.do(http.MethodPut, "/grids/"+g.ID+"/cells", api.CellRequest{Col: 0, Row: 0, Op: "erase"})
	s.Require().Equal(http.StatusOK, w.Code)
	var erased api.GridView
	s.decode(w, &erased)
	s.Nil(erased.Start)
	s.NotContains(w.Body.String(), `"start"`)
	s.Require().NotNil(erased.End)
	s.Equal(grid.At(1, 0), *erased.End)
}

func (s *RouterSuite) TestEditCellRejectsBadOp() {
	g := s.importFixture()

	w := s.do(http.MethodPut, "/grids/"+g.ID+"/cells", api.CellRequest{Op: "paint"})
	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "unknown cell op")

	w = s.do(http.MethodPut, "/grids/"+g.ID+"/cells", map[string]int{"col": 1})
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *RouterSuite) TestStroke() {
	w := s.do(http.MethodPost, "/grids", api.CreateGridRequest{Rows: 3, Cols: 3})
	s.Require().Equal(http.StatusCreated, w.Code)
	var g api.GridView
	s.decode(w, &g)

	from := grid.At(0, 0)
	w = s.do(http.MethodPost, "/grids/"+g.ID+"/strokes", api.StrokeRequest{From: &from, To: grid.At(2, 2), Mode: "wall"})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var stroke api.StrokeView
	s.decode(w, &stroke)
	s.Equal(3, stroke.Changed)
	s.Equal("#..\n.#.\n..#\n", stroke.Grid.ASCII)

	w = s.do(http.MethodPost, "/grids/"+g.ID+"/strokes", api.StrokeRequest{To: grid.At(1, 1), Mode: "wall", Action: "erase"})
	s.Require().Equal(http.StatusOK, w.Code)
	s.decode(w, &stroke)
	s.Equal(1, stroke.Changed)
	s.Equal("#..\n...\n..#\n", stroke.Grid.ASCII)

	w = s.do(http.MethodPost, "/grids/"+g.ID+"/strokes", api.StrokeRequest{To: grid.At(1, 1), Mode: "lava"})
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/grids/"+g.ID+"/strokes", api.StrokeRequest{To: grid.At(1, 1), Mode: "wall", Action: "smudge"})
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *RouterSuite) TestClearWalls() {
	g := s.importFixture()

	w := s.do(http.MethodDelete, "/grids/"+g.ID+"/walls", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var view api.GridView
	s.decode(w, &view)
	s.Empty(view.Walls)
	s.NotNil(view.Start)
	s.NotNil(view.End)
}

func (s *RouterSuite) TestSolve() {
	g := s.importFixture()

	for _, name := range []string{"", "bfs", "dijkstra", "astar"} {
		w := s.do(http.MethodPost, "/grids/"+g.ID+"/solve", api.StrategyRequest{Strategy: name})
		s.Require().Equal(http.StatusOK, w.Code, name)
		var res struct {
			Found    bool              `json:"found"`
			Path     []grid.Coordinate `json:"path"`
			Strategy string            `json:"strategy"`
		}
		s.decode(w, &res)
		s.True(res.Found, name)
		s.Len(res.Path, 5, name)
		if name != "" {
			s.Equal(name, res.Strategy)
		} else {
			s.Equal("bfs", res.Strategy)
		}
	}
}

func (s *RouterSuite) TestSolveErrors() {
	w := s.do(http.MethodPost, "/grids", api.CreateGridRequest{Rows: 2, Cols: 2})
	s.Require().Equal(http.StatusCreated, w.Code)
	var empty api.GridView
	s.decode(w, &empty)

	w = s.do(http.MethodPost, "/grids/"+empty.ID+"/solve", api.StrategyRequest{})
	s.Equal(http.StatusConflict, w.Code)
	s.Contains(w.Body.String(), "start and end")

	g := s.importFixture()
	w = s.do(http.MethodPost, "/grids/"+g.ID+"/solve", api.StrategyRequest{Strategy: "greedy"})
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *RouterSuite) TestSessionLifecycle() {
	g := s.importFixture()

	w := s.do(http.MethodPost, "/grids/"+g.ID+"/sessions", api.StrategyRequest{Strategy: "bfs"})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var sess api.SessionView
	s.decode(w, &sess)
	s.Equal(g.ID, sess.GridID)
	s.Equal("ready", sess.State)
	s.Equal(search.BFS, sess.Strategy)

	// Edits after Begin do not reach the session's snapshot.
	w = s.do(http.MethodPut, "/grids/"+g.ID+"/cells", api.CellRequest{Col: 2, Row: 2, Op: "erase"})
	s.Require().Equal(http.StatusOK, w.Code)

	var (
		last    stepBody
		visited []grid.Coordinate
	)
	for i := 0; i < 9 && last.Outcome.Result == nil; i++ {
		w = s.do(http.MethodPost, "/sessions/"+sess.ID+"/step", nil)
		s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
		last = stepBody{}
		s.decode(w, &last)
		visited = append(visited, last.Outcome.Visited...)
	}
	s.Require().NotNil(last.Outcome.Result)
	s.Equal("found", last.Outcome.Kind)
	s.True(last.Outcome.Result.Found)
	s.Len(last.Outcome.Result.Path, 5)
	s.Equal("found", last.Session.State)
	s.Contains(visited, grid.At(2, 2))

	w = s.do(http.MethodPost, "/sessions/"+sess.ID+"/step", nil)
	s.Equal(http.StatusConflict, w.Code)

	w = s.do(http.MethodGet, "/sessions/"+sess.ID, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var status api.SessionView
	s.decode(w, &status)
	s.Equal("found", status.State)
	s.Equal(last.Session.Steps, status.Steps)

	w = s.do(http.MethodDelete, "/sessions/"+sess.ID, nil)
	s.Equal(http.StatusNoContent, w.Code)

	w = s.do(http.MethodPost, "/sessions/"+sess.ID+"/step", nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *RouterSuite) TestUnknownSession() {
	w := s.do(http.MethodPost, "/sessions/nope/step", nil)
	s.Equal(http.StatusNotFound, w.Code)

	w = s.do(http.MethodDelete, "/sessions/6f1c2b8e-3a4d-4c5e-9f60-7a8b9c0d1e2f", nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *RouterSuite) TestRequestsAreLogged() {
	s.do(http.MethodGet, "/grids/nope", nil)

	entry := s.hook.LastEntry()
	s.Require().NotNil(entry)
	s.Equal("request failed", entry.Message)
	s.Equal(http.StatusNotFound, entry.Data["status"])
	s.Equal("/api/v1/grids/nope", entry.Data["path"])
}

func TestStoreConcurrentUse(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	store := api.NewStore(8, 8, search.BFS, logger)
	g, err := store.ImportGrid(fixture)
	require.NoError(t, err)

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func(i int) {
			defer func() { done <- struct{}{} }()
			sess, err := store.BeginSession(g.ID, "dfs")
			if err != nil {
				return
			}
			for {
				if _, err := store.Step(sess.ID); err != nil {
					return
				}
				_, _ = store.EditCell(g.ID, "wall", grid.At(i%3, 1))
				_, _ = store.EditCell(g.ID, "open", grid.At(i%3, 1))
			}
		}(i)
	}
	for i := 0; i < 8; i++ {
		<-done
	}

	view, err := store.Grid(g.ID)
	require.NoError(t, err)
	require.NotNil(t, view.Start)
}

func TestStoreCellLimit(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	store := api.NewStore(2, 2, search.BFS, logger, api.WithMaxCells(6))

	_, err := store.CreateGrid(0, 0)
	require.NoError(t, err)
	_, err = store.CreateGrid(2, 3)
	require.NoError(t, err)
	_, err = store.CreateGrid(7, 1)
	require.ErrorIs(t, err, api.ErrGridTooLarge)

	_, err = store.ImportGrid("S..\n..E")
	require.NoError(t, err)
	_, err = store.ImportGrid(fixture)
	require.ErrorIs(t, err, api.ErrGridTooLarge)
}

func TestStoreSessionExpiry(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store := api.NewStore(3, 3, search.BFS, logger,
		api.WithSessionTTL(time.Minute),
		api.WithClock(func() time.Time { return now }),
	)
	g, err := store.ImportGrid(fixture)
	require.NoError(t, err)

	finished, err := store.BeginSession(g.ID, "bfs")
	require.NoError(t, err)
	for {
		step, err := store.Step(finished.ID)
		require.NoError(t, err)
		if step.Outcome.Result != nil {
			break
		}
	}
	idle, err := store.BeginSession(g.ID, "dfs")
	require.NoError(t, err)
	require.Equal(t, 2, store.Sessions())

	now = now.Add(45 * time.Second)
	_, err = store.Session(idle.ID)
	require.NoError(t, err, "a lookup refreshes the session")

	now = now.Add(30 * time.Second)
	assert.Equal(t, 1, store.Sessions())
	_, err = store.Step(finished.ID)
	require.ErrorIs(t, err, api.ErrSessionNotFound)
	_, err = store.Step(idle.ID)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	assert.Zero(t, store.Sessions())
}
