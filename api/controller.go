package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/gridwalk/brush"
	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/search"
)

// Controller registers its routes on a group.
type Controller interface {
	Register(route *gin.RouterGroup)
}

// GridController serves grid editing and one-shot solving.
type GridController struct {
	store *Store
}

// NewGridController returns a controller backed by store.
func NewGridController(store *Store) *GridController {
	return &GridController{store: store}
}

// Register adds the /grids routes.
func (c *GridController) Register(route *gin.RouterGroup) {
	grids := route.Group("/grids")
	{
		grids.POST("", c.create)
		grids.GET("/:id", c.get)
		grids.PUT("/:id/cells", c.editCell)
		grids.POST("/:id/strokes", c.stroke)
		grids.DELETE("/:id/walls", c.clearWalls)
		grids.POST("/:id/solve", c.solve)
		grids.POST("/:id/sessions", c.beginSession)
	}
}

// create handles grid creation, either empty or from ASCII.
func (c *GridController) create(ctx *gin.Context) {
	var request CreateGridRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var (
		view GridView
		err  error
	)
	if request.ASCII != "" {
		view, err = c.store.ImportGrid(request.ASCII)
	} else {
		view, err = c.store.CreateGrid(request.Rows, request.Cols)
	}
	if err != nil {
		abort(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, view)
}

func (c *GridController) get(ctx *gin.Context) {
	view, err := c.store.Grid(ctx.Param("id"))
	if err != nil {
		abort(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, view)
}

// editCell handles a single-cell edit.
func (c *GridController) editCell(ctx *gin.Context) {
	var request CellRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := c.store.EditCell(ctx.Param("id"), request.Op, grid.At(request.Col, request.Row))
	if err != nil {
		abort(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, view)
}

// stroke handles a brush stroke between two pointer samples.
func (c *GridController) stroke(ctx *gin.Context) {
	var request StrokeRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mode, err := brush.ParseMode(request.Mode)
	if err != nil {
		abort(ctx, err)
		return
	}
	action := brush.Paint
	if request.Action != "" {
		if action, err = brush.ParseAction(request.Action); err != nil {
			abort(ctx, err)
			return
		}
	}

	view, err := c.store.Stroke(ctx.Param("id"), brush.Brush{Mode: mode, Action: action}, request.From, request.To)
	if err != nil {
		abort(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, view)
}

func (c *GridController) clearWalls(ctx *gin.Context) {
	view, err := c.store.ClearWalls(ctx.Param("id"))
	if err != nil {
		abort(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, view)
}

// solve runs a search to completion and returns its result.
func (c *GridController) solve(ctx *gin.Context) {
	var request StrategyRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := c.store.Solve(ctx.Param("id"), request.Strategy)
	if err != nil {
		abort(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, res)
}

// beginSession starts a step-wise search.
func (c *GridController) beginSession(ctx *gin.Context) {
	var request StrategyRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := c.store.BeginSession(ctx.Param("id"), request.Strategy)
	if err != nil {
		abort(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, view)
}

// SessionController serves step-wise search sessions.
type SessionController struct {
	store *Store
}

// NewSessionController returns a controller backed by store.
func NewSessionController(store *Store) *SessionController {
	return &SessionController{store: store}
}

// Register adds the /sessions routes.
func (c *SessionController) Register(route *gin.RouterGroup) {
	sessions := route.Group("/sessions")
	{
		sessions.GET("/:sid", c.get)
		sessions.POST("/:sid/step", c.step)
		sessions.DELETE("/:sid", c.drop)
	}
}

func (c *SessionController) get(ctx *gin.Context) {
	view, err := c.store.Session(ctx.Param("sid"))
	if err != nil {
		abort(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, view)
}

// step advances a session once; a finished session answers 409.
func (c *SessionController) step(ctx *gin.Context) {
	view, err := c.store.Step(ctx.Param("sid"))
	if err != nil {
		abort(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, view)
}

func (c *SessionController) drop(ctx *gin.Context) {
	if err := c.store.DropSession(ctx.Param("sid")); err != nil {
		abort(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// abort records err on the context and answers with its status.
func abort(ctx *gin.Context, err error) {
	_ = ctx.Error(err)
	ctx.AbortWithStatusJSON(statusOf(err), gin.H{"error": err.Error()})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, ErrGridNotFound), errors.Is(err, ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, search.ErrMissingEndpoints), errors.Is(err, search.ErrSessionFinished):
		return http.StatusConflict
	case errors.Is(err, grid.ErrEmptyGrid), errors.Is(err, grid.ErrNonRectangular),
		errors.Is(err, grid.ErrBadSymbol), errors.Is(err, grid.ErrDuplicateMarker),
		errors.Is(err, grid.ErrTooLarge), errors.Is(err, ErrGridTooLarge),
		errors.Is(err, search.ErrUnknownStrategy), errors.Is(err, ErrUnknownOp),
		errors.Is(err, brush.ErrUnknownMode), errors.Is(err, brush.ErrUnknownAction):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
