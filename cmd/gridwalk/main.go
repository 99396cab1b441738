// Command gridwalk solves an ASCII grid and prints the explored cells and
// the path found.
//
//	gridwalk [-strategy bfs|dfs|dijkstra|astar] [-animate] [-tick hz] [file]
//
// The grid is read from file, or from stdin when no file is given. Settings
// default to the environment (see package config); flags override them.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridwalk/config"
	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/search"
)

// clearScreen homes the cursor and clears the terminal between frames.
const clearScreen = "\x1b[H\x1b[2J"

// errNoPath is returned when the search exhausts without reaching the end.
var errNoPath = errors.New("gridwalk: no path")

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stderr)

	if err := run(os.Args[1:], os.Stdin, os.Stdout, log); err != nil {
		if errors.Is(err, errNoPath) {
			os.Exit(2)
		}
		log.WithError(err).Error("gridwalk failed")
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer, log *logrus.Logger) error {
	cfg, err := config.Load(log)
	if err != nil {
		return err
	}
	log.SetLevel(cfg.LogLevel)

	fs := flag.NewFlagSet("gridwalk", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	strategy := fs.String("strategy", cfg.Strategy.Name(), "search strategy: bfs, dfs, dijkstra or astar")
	animate := fs.Bool("animate", false, "print one frame per search step")
	tick := fs.Int("tick", cfg.TickRate, "frames per second when animating")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *tick < 1 {
		return fmt.Errorf("%w: -tick must be at least 1, got %d", config.ErrInvalidValue, *tick)
	}
	st, err := search.ParseStrategy(*strategy)
	if err != nil {
		return err
	}

	g, err := readGrid(fs.Arg(0), stdin)
	if err != nil {
		return err
	}

	var res search.Result
	if *animate {
		res, err = animateSearch(g, st, time.Second/time.Duration(*tick), stdout, log)
	} else {
		res, err = search.Solve(g, st, search.WithLogger(log))
	}
	if err != nil {
		return err
	}

	if *animate {
		fmt.Fprint(stdout, clearScreen)
	}
	fmt.Fprint(stdout, g.Render(grid.Overlay{Visited: res.Visited, Path: res.Path}))
	if !res.Found {
		fmt.Fprintf(stdout, "%s: no path after %d steps, %d cells visited\n", res.Strategy, res.Steps, len(res.Visited))
		return errNoPath
	}
	fmt.Fprintf(stdout, "%s: path of %d cells after %d steps, %d cells visited\n",
		res.Strategy, len(res.Path), res.Steps, len(res.Visited))

	return nil
}

// readGrid parses the grid in path, or stdin when path is empty or "-".
func readGrid(path string, stdin io.Reader) (*grid.Grid, error) {
	r := stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return grid.Parse(string(raw))
}

// animateSearch steps a session once per tick, printing a frame each time.
func animateSearch(g *grid.Grid, st search.Strategy, every time.Duration, w io.Writer, log logrus.FieldLogger) (search.Result, error) {
	sess, err := search.Begin(g, st, search.WithLogger(log))
	if err != nil {
		return search.Result{}, err
	}

	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for range ticker.C {
		out, err := sess.Step()
		if err != nil {
			return search.Result{}, err
		}
		if out.Result != nil {
			return *out.Result, nil
		}
		fmt.Fprint(w, clearScreen, g.Render(grid.Overlay{Visited: sess.Visited()}))
	}

	return search.Result{}, nil
}
