package raster

import "github.com/katalvlaran/gridwalk/grid"

// Line returns the cells on the Bresenham segment from p1 to p2, starting at
// p1 and ending at p2. Pure function of its inputs.
func Line(p1, p2 grid.Coordinate) []grid.Coordinate {
	if less(p2, p1) {
		pts := bresenham(p2, p1)
		reverse(pts)

		return pts
	}

	return bresenham(p1, p2)
}

// bresenham walks the segment from a to b using the all-octant error form.
func bresenham(a, b grid.Coordinate) []grid.Coordinate {
	dx := abs(b.Col - a.Col)
	dy := abs(b.Row - a.Row)
	sx, sy := 1, 1
	if a.Col > b.Col {
		sx = -1
	}
	if a.Row > b.Row {
		sy = -1
	}

	pts := make([]grid.Coordinate, 0, max(dx, dy)+1)
	x, y := a.Col, a.Row
	e := dx - dy
	for {
		pts = append(pts, grid.Coordinate{Col: x, Row: y})
		if x == b.Col && y == b.Row {
			return pts
		}
		e2 := 2 * e
		if e2 > -dy {
			e -= dy
			x += sx
		}
		if e2 < dx {
			e += dx
			y += sy
		}
	}
}

// less orders coordinates by row, then column.
func less(a, b grid.Coordinate) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}

	return a.Col < b.Col
}

func reverse(s []grid.Coordinate) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
