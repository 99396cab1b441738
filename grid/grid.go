package grid

import (
	"fmt"
	"math"
)

// Grid is a fixed-size board of open and wall cells with optional start and
// end markers. The zero value is not usable; construct with New or Parse.
//
// Grid is not safe for concurrent use. Search sessions take a snapshot via
// Clone, so editing after a session has begun does not affect it.
type Grid struct {
	rows, cols int
	walls      []bool // row-major: index = row*cols + col

	start, end       Coordinate
	hasStart, hasEnd bool
}

// New returns an open rows×cols grid with no markers.
// Returns ErrEmptyGrid if either dimension is below one, and ErrTooLarge
// if rows×cols does not fit in an int.
// Complexity: O(rows×cols).
func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrEmptyGrid
	}
	if rows > math.MaxInt/cols {
		return nil, fmt.Errorf("%w: %d×%d", ErrTooLarge, rows, cols)
	}

	return &Grid{
		rows:  rows,
		cols:  cols,
		walls: make([]bool, rows*cols),
	}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns rows×cols.
func (g *Grid) Size() int { return g.rows * g.cols }

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Coordinate) bool {
	return c.Col >= 0 && c.Col < g.cols && c.Row >= 0 && c.Row < g.rows
}

// index maps c to its row-major slot. Callers must check InBounds first.
func (g *Grid) index(c Coordinate) int {
	return c.Row*g.cols + c.Col
}

// Coordinate converts a row-major index back to a Coordinate.
func (g *Grid) Coordinate(idx int) Coordinate {
	return Coordinate{Col: idx % g.cols, Row: idx / g.cols}
}

// IsWall reports whether c is an in-bounds wall.
func (g *Grid) IsWall(c Coordinate) bool {
	return g.InBounds(c) && g.walls[g.index(c)]
}

// IsPassable reports whether c is in bounds and not a wall.
func (g *Grid) IsPassable(c Coordinate) bool {
	return g.InBounds(c) && !g.walls[g.index(c)]
}

// Start returns the start marker, if placed.
func (g *Grid) Start() (Coordinate, bool) { return g.start, g.hasStart }

// End returns the end marker, if placed.
func (g *Grid) End() (Coordinate, bool) { return g.end, g.hasEnd }

// IsStart reports whether c carries the start marker.
func (g *Grid) IsStart(c Coordinate) bool { return g.hasStart && g.start == c }

// IsEnd reports whether c carries the end marker.
func (g *Grid) IsEnd(c Coordinate) bool { return g.hasEnd && g.end == c }

// SetWall sets or clears the wall flag of c. Walling a marker cell removes
// that marker. Out-of-bounds c is ignored.
func (g *Grid) SetWall(c Coordinate, value bool) {
	if !g.InBounds(c) {
		return
	}
	g.walls[g.index(c)] = value
	if !value {
		return
	}
	if g.IsStart(c) {
		g.ClearStart()
	}
	if g.IsEnd(c) {
		g.ClearEnd()
	}
}

// SetStart moves the start marker to c, replacing any previous start.
// A wall at c is cleared, and so is the end marker if it sits on c.
// Out-of-bounds c is ignored.
func (g *Grid) SetStart(c Coordinate) {
	if !g.InBounds(c) {
		return
	}
	g.walls[g.index(c)] = false
	if g.IsEnd(c) {
		g.ClearEnd()
	}
	g.start, g.hasStart = c, true
}

// SetEnd moves the end marker to c; it mirrors SetStart.
func (g *Grid) SetEnd(c Coordinate) {
	if !g.InBounds(c) {
		return
	}
	g.walls[g.index(c)] = false
	if g.IsStart(c) {
		g.ClearStart()
	}
	g.end, g.hasEnd = c, true
}

// ClearStart removes the start marker.
func (g *Grid) ClearStart() {
	g.start, g.hasStart = Coordinate{}, false
}

// ClearEnd removes the end marker.
func (g *Grid) ClearEnd() {
	g.end, g.hasEnd = Coordinate{}, false
}

// Erase removes whatever occupies c: a wall, the start or the end.
// Out-of-bounds c is ignored.
func (g *Grid) Erase(c Coordinate) {
	if !g.InBounds(c) {
		return
	}
	g.walls[g.index(c)] = false
	if g.IsStart(c) {
		g.ClearStart()
	}
	if g.IsEnd(c) {
		g.ClearEnd()
	}
}

// ClearAllWalls opens every cell. Markers are kept.
// Complexity: O(rows×cols).
func (g *Grid) ClearAllWalls() {
	for i := range g.walls {
		g.walls[i] = false
	}
}

// Neighbors4 returns the in-bounds 4-connected neighbors of c in the fixed
// order up, left, down, right. Walls are included; use IsPassable to filter.
// Complexity: O(1).
func (g *Grid) Neighbors4(c Coordinate) []Coordinate {
	out := make([]Coordinate, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := c.Add(d)
		if g.InBounds(n) {
			out = append(out, n)
		}
	}

	return out
}

// Walls lists wall cells in row-major order.
func (g *Grid) Walls() []Coordinate {
	var out []Coordinate
	for i, w := range g.walls {
		if w {
			out = append(out, g.Coordinate(i))
		}
	}

	return out
}

// Clone returns a deep copy of g.
// Complexity: O(rows×cols).
func (g *Grid) Clone() *Grid {
	cp := *g
	cp.walls = make([]bool, len(g.walls))
	copy(cp.walls, g.walls)

	return &cp
}
