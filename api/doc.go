// Package api exposes grids and step-wise search sessions over HTTP, for
// renderers that live outside the process (a browser canvas, a game client).
//
// All state is held in memory by a Store. A single mutex serializes every
// edit and every step, so a grid is never edited while one of its searches
// is advancing; sessions also search a snapshot taken when they begin.
//
// Routes (under <base>/v1):
//
//	POST   /grids                 create {rows, cols} or import {ascii}
//	GET    /grids/:id             fetch
//	PUT    /grids/:id/cells       edit one cell {col, row, op}
//	POST   /grids/:id/strokes     brush stroke {from?, to, mode, action}
//	DELETE /grids/:id/walls       clear all walls
//	POST   /grids/:id/solve       one-shot search {strategy}
//	POST   /grids/:id/sessions    begin a step-wise search {strategy}
//	GET    /sessions/:sid         session status
//	POST   /sessions/:sid/step    advance one step
//	DELETE /sessions/:sid         abandon a session
package api
