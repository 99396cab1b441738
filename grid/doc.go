// Package grid models the editable, fixed-size board that gridwalk searches.
//
// What:
//
//   - Grid is a rows×cols matrix of cells; each cell is either open or a wall.
//   - At most one start and at most one end marker are placed on the grid.
//     They are grid-level designations, not cell flags, so "exactly one of
//     each" is enforced by construction.
//   - Neighbors4 enumerates the 4-connected neighbors of a cell in a fixed
//     order: up, left, down, right. Search strategies depend on this order
//     for reproducible tie-breaking.
//   - Parse and String convert to and from a compact ASCII form used by
//     tests, the CLI and the HTTP API.
//
// Editing rules:
//
//   - Every mutator silently ignores out-of-bounds coordinates. Interactive
//     editing produces near-boundary coordinates all the time.
//   - Last write wins. Walling the start or end cell clears that marker;
//     placing a marker on a wall clears the wall; placing the start on the
//     end (or vice versa) clears the other marker.
//
// Complexity:
//
//   - Edits, InBounds, IsPassable, Neighbors4: O(1).
//   - ClearAllWalls, Clone, Walls, String: O(rows×cols).
//
// Errors:
//
//   - ErrEmptyGrid: non-positive dimensions.
//   - ErrNonRectangular: ASCII rows of differing lengths.
//   - ErrBadSymbol: unknown ASCII cell symbol.
//   - ErrDuplicateMarker: more than one S or E in ASCII input.
package grid
