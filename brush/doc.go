// Package brush applies drag strokes to a grid.Grid.
//
// A Brush pairs a Mode (what to draw: walls, the start or the end) with an
// Action (Paint or Erase, i.e. the primary or secondary mouse button).
// Apply rasterizes the segment between the previous and current drag
// samples with raster.Line so that coarse mouse sampling never leaves gaps,
// then edits every covered cell.
//
// Translating pixels to cells is the caller's job; Apply takes grid
// coordinates and inherits the grid's silent clipping of out-of-bounds cells.
package brush
