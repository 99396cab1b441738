package brush

import (
	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/raster"
)

// Brush is a stroke configuration. The zero value paints walls.
type Brush struct {
	Mode   Mode
	Action Action
}

// Apply edits g along the stroke from prev to cur and returns how many
// cells changed. A nil prev means the stroke begins at cur (a click).
//
// Painting a marker along a segment leaves it on the last in-bounds cell,
// because placing a marker replaces the previous one.
func (b Brush) Apply(g *grid.Grid, prev *grid.Coordinate, cur grid.Coordinate) int {
	cells := []grid.Coordinate{cur}
	if prev != nil {
		cells = raster.Line(*prev, cur)
	}

	changed := 0
	for _, c := range cells {
		if !g.InBounds(c) {
			continue
		}
		if b.apply(g, c) {
			changed++
		}
	}

	return changed
}

// apply edits a single in-bounds cell and reports whether it changed.
func (b Brush) apply(g *grid.Grid, c grid.Coordinate) bool {
	switch b.Mode {
	case Wall:
		want := b.Action == Paint
		if g.IsWall(c) == want {
			return false
		}
		g.SetWall(c, want)
	case Start:
		if b.Action == Erase {
			if !g.IsStart(c) {
				return false
			}
			g.ClearStart()

			return true
		}
		if g.IsStart(c) {
			return false
		}
		g.SetStart(c)
	case End:
		if b.Action == Erase {
			if !g.IsEnd(c) {
				return false
			}
			g.ClearEnd()

			return true
		}
		if g.IsEnd(c) {
			return false
		}
		g.SetEnd(c)
	default:
		return false
	}

	return true
}
