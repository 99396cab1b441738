package api

import (
	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/search"
)

// CreateGridRequest creates an empty rows×cols grid, or imports ASCII when
// ASCII is set. Zero dimensions fall back to the store defaults.
type CreateGridRequest struct {
	Rows  int    `json:"rows"`
	Cols  int    `json:"cols"`
	ASCII string `json:"ascii"`
}

// CellRequest edits one cell. Op is one of wall, open, start, end, erase.
type CellRequest struct {
	Col int    `json:"col"`
	Row int    `json:"row"`
	Op  string `json:"op" binding:"required"`
}

// StrokeRequest applies a brush stroke from From (optional) to To.
type StrokeRequest struct {
	From   *grid.Coordinate `json:"from"`
	To     grid.Coordinate  `json:"to"`
	Mode   string           `json:"mode" binding:"required"`
	Action string           `json:"action"`
}

// StrategyRequest names a search strategy; empty means the store default.
type StrategyRequest struct {
	Strategy string `json:"strategy"`
}

// GridView is the JSON form of a grid.
type GridView struct {
	ID    string            `json:"id"`
	Rows  int               `json:"rows"`
	Cols  int               `json:"cols"`
	Walls []grid.Coordinate `json:"walls"`
	Start *grid.Coordinate  `json:"start,omitempty"`
	End   *grid.Coordinate  `json:"end,omitempty"`
	ASCII string            `json:"ascii"`
}

// StrokeView reports a stroke and the grid after it.
type StrokeView struct {
	Changed int      `json:"changed"`
	Grid    GridView `json:"grid"`
}

// SessionView is the JSON form of a search session.
type SessionView struct {
	ID       string          `json:"id"`
	GridID   string          `json:"grid_id"`
	Strategy search.Strategy `json:"strategy"`
	State    string          `json:"state"`
	Steps    int             `json:"steps"`
}

// StepView reports one step of a session.
type StepView struct {
	Session SessionView    `json:"session"`
	Outcome search.Outcome `json:"outcome"`
}
