// Package gridwalk is an interactive grid path-finding engine: a
// rectangular board of open and wall cells with a start and an end, and
// four search strategies that explore it one step at a time so a renderer
// can animate the frontier.
//
// What is inside?
//
//	grid/    the board: walls, start/end markers, neighbors, ASCII codec
//	raster/  integer Bresenham lines, so pointer drags paint without gaps
//	brush/   wall/start/end strokes built on raster
//	search/  BFS, DFS, Dijkstra and A* as step-wise sessions, plus Solve
//	config/  environment and .env settings
//	api/     HTTP surface (gin) for grids and sessions
//
// Commands:
//
//	cmd/gridwalk   solve an ASCII grid from a file or stdin, optionally animated
//	cmd/gridwalkd  serve the api over HTTP
//
// Quick start:
//
//	g := grid.MustParse("S..\n.#.\n..E")
//	res, err := search.Solve(g, search.BFS)
//	// res.Path == [(0,0) (0,1) (0,2) (1,2) (2,2)]
//
// Step-wise:
//
//	sess, err := search.Begin(g, search.AStar(nil))
//	for !sess.State().Terminal() {
//		out, err := sess.Step()
//		// draw out.Visited
//	}
package gridwalk
