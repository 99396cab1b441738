package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and parsing.
var (
	// ErrEmptyGrid indicates a grid with fewer than one row or column.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates ASCII rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadSymbol indicates an unknown cell symbol in ASCII input.
	ErrBadSymbol = errors.New("grid: unknown cell symbol")
	// ErrDuplicateMarker indicates more than one start or end in ASCII input.
	ErrDuplicateMarker = errors.New("grid: duplicate start or end marker")
	// ErrTooLarge indicates dimensions whose cell count overflows int.
	ErrTooLarge = errors.New("grid: rows×cols overflows the cell count")
)

// ASCII symbols understood by Parse and produced by String and Render.
const (
	SymbolOpen    = '.'
	SymbolWall    = '#'
	SymbolStart   = 'S'
	SymbolEnd     = 'E'
	SymbolVisited = 'o'
	SymbolPath    = '*'
)

// Coordinate addresses a cell by column and row, both 0-indexed.
type Coordinate struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// At is shorthand for Coordinate{Col: col, Row: row}.
func At(col, row int) Coordinate {
	return Coordinate{Col: col, Row: row}
}

// Add returns c shifted by d.
func (c Coordinate) Add(d Coordinate) Coordinate {
	return Coordinate{Col: c.Col + d.Col, Row: c.Row + d.Row}
}

// String formats c as "(col,row)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Manhattan returns |Δcol| + |Δrow| between a and b.
func Manhattan(a, b Coordinate) int {
	return abs(a.Col-b.Col) + abs(a.Row-b.Row)
}

// Adjacent reports whether a and b are 4-connected neighbors.
func Adjacent(a, b Coordinate) bool {
	return Manhattan(a, b) == 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// neighborOffsets is the fixed expansion order: up, left, down, right.
// Changing it changes which of several equal-cost paths a search reports.
var neighborOffsets = [4]Coordinate{
	{Col: 0, Row: -1},
	{Col: -1, Row: 0},
	{Col: 0, Row: 1},
	{Col: 1, Row: 0},
}

// Overlay marks cells to draw on top of the grid in Render.
// Path takes precedence over Visited; markers and walls take precedence over both.
type Overlay struct {
	Visited []Coordinate
	Path    []Coordinate
}
