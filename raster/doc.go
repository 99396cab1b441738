// Package raster converts straight segments between grid cells into the
// ordered list of cells they cross.
//
// Line is the integer Bresenham algorithm, inclusive of both endpoints.
// Editors use it to fill the gaps between sampled drag positions, so a
// fast stroke still paints a contiguous line of walls.
//
// Guarantees:
//
//   - Line(p, p) == [p].
//   - Consecutive cells are 8-adjacent (no gaps).
//   - Line(b, a) is exactly Line(a, b) reversed: the segment is always
//     traced from its lower endpoint (by row, then column).
//
// Complexity: O(max(|Δcol|, |Δrow|)) time and memory.
package raster
