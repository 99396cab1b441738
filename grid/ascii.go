package grid

import (
	"fmt"
	"strings"
)

// Parse builds a Grid from its ASCII form: one line per row, using
// '.' for open cells, '#' for walls, 'S' for start and 'E' for end.
// Blank leading and trailing lines and surrounding spaces are ignored,
// so raw string literals can be indented in tests.
//
// Returns ErrEmptyGrid, ErrNonRectangular, ErrBadSymbol or ErrDuplicateMarker.
func Parse(text string) (*Grid, error) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}

	cols := len(lines[0])
	for _, line := range lines {
		if len(line) != cols {
			return nil, ErrNonRectangular
		}
	}

	g, err := New(len(lines), cols)
	if err != nil {
		return nil, err
	}
	for row, line := range lines {
		for col, sym := range []byte(line) {
			c := Coordinate{Col: col, Row: row}
			switch sym {
			case SymbolOpen:
			case SymbolWall:
				g.SetWall(c, true)
			case SymbolStart:
				if g.hasStart {
					return nil, fmt.Errorf("%w: second %q at %s", ErrDuplicateMarker, sym, c)
				}
				g.SetStart(c)
			case SymbolEnd:
				if g.hasEnd {
					return nil, fmt.Errorf("%w: second %q at %s", ErrDuplicateMarker, sym, c)
				}
				g.SetEnd(c)
			default:
				return nil, fmt.Errorf("%w: %q at %s", ErrBadSymbol, sym, c)
			}
		}
	}

	return g, nil
}

// MustParse is like Parse but panics on error. Intended for tests and examples.
func MustParse(text string) *Grid {
	g, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return g
}

// String renders g in the ASCII form accepted by Parse.
func (g *Grid) String() string {
	return g.Render(Overlay{})
}

// Render draws g with visited and path cells overlaid ('o' and '*').
// Walls and markers are never overdrawn.
func (g *Grid) Render(o Overlay) string {
	cells := make([]byte, len(g.walls))
	for i, w := range g.walls {
		if w {
			cells[i] = SymbolWall
		} else {
			cells[i] = SymbolOpen
		}
	}
	paint := func(cs []Coordinate, sym byte) {
		for _, c := range cs {
			if g.InBounds(c) && cells[g.index(c)] == SymbolOpen {
				cells[g.index(c)] = sym
			}
		}
	}
	paint(o.Visited, SymbolVisited)
	// path overwrites visited, so clear visited marks first
	for _, c := range o.Path {
		if g.InBounds(c) && cells[g.index(c)] == SymbolVisited {
			cells[g.index(c)] = SymbolOpen
		}
	}
	paint(o.Path, SymbolPath)
	if g.hasStart {
		cells[g.index(g.start)] = SymbolStart
	}
	if g.hasEnd {
		cells[g.index(g.end)] = SymbolEnd
	}

	var sb strings.Builder
	sb.Grow(len(cells) + g.rows)
	for row := 0; row < g.rows; row++ {
		sb.Write(cells[row*g.cols : (row+1)*g.cols])
		sb.WriteByte('\n')
	}

	return sb.String()
}
