package scenario

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/katalvlaran/searchkit/astar"
	"github.com/katalvlaran/searchkit/bfs"
	"github.com/katalvlaran/searchkit/dfs"
	"github.com/katalvlaran/searchkit/internal/ctxlog"
	"github.com/katalvlaran/searchkit/npuzzle"
	"github.com/katalvlaran/searchkit/search"
	"github.com/katalvlaran/searchkit/vacuum"
)

// Report is the outcome of one scenario run.
type Report struct {
	RunID    string
	Scenario string
	Strategy string
	Plan     []string
	Found    bool
	Visited  int
	Cost     float64
	Elapsed  time.Duration
}

// Run builds the scenario's problem, dispatches its strategy, and
// returns a Report tagged with a fresh run ID.
func Run(ctx context.Context, sc *Scenario) (*Report, error) {
	logger := ctxlog.FromContext(ctx)
	report := &Report{
		RunID:    uuid.New().String(),
		Scenario: sc.Name,
		Strategy: sc.Strategy,
	}
	logger.Debug("Running scenario.", "scenario", sc.Name, "run_id", report.RunID)

	started := time.Now()
	var err error
	switch sc.Problem {
	case "vacuum":
		var w *vacuum.World
		if w, err = buildVacuum(sc); err == nil {
			err = runStrategy(ctx, sc, w, report)
		}
	case "puzzle":
		var p *npuzzle.Puzzle
		if p, err = buildPuzzle(sc); err == nil {
			err = runStrategy(ctx, sc, p, report)
		}
	default:
		err = errors.Wrapf(ErrUnknownProblem, "%q", sc.Problem)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "scenario %q", sc.Name)
	}
	report.Elapsed = time.Since(started)

	return report, nil
}

// buildVacuum assembles a vacuum world from the scenario's knobs.
func buildVacuum(sc *Scenario) (*vacuum.World, error) {
	switch sc.Heuristic {
	case "", "dirt":
		// the world's only heuristic
	default:
		return nil, errors.Wrapf(ErrUnknownHeuristic, "%q", sc.Heuristic)
	}

	rooms := 2
	if sc.Rooms != nil {
		rooms = *sc.Rooms
	}
	opts := make([]vacuum.Option, 0, 3)
	if sc.Start != nil {
		opts = append(opts, vacuum.WithStart(*sc.Start))
	}
	if sc.Dirty != nil {
		opts = append(opts, vacuum.WithDirty(uint8(*sc.Dirty)))
	}
	if sc.Weight != nil {
		opts = append(opts, vacuum.WithHeuristicWeight(*sc.Weight))
	}

	return vacuum.New(rooms, opts...)
}

// buildPuzzle assembles an 8-puzzle from the scenario's knobs.
func buildPuzzle(sc *Scenario) (*npuzzle.Puzzle, error) {
	if len(sc.Board) != npuzzle.Cells {
		return nil, errors.Wrapf(ErrBadBoard, "got %d cells", len(sc.Board))
	}
	var start npuzzle.State
	for i, t := range sc.Board {
		if t < 0 || t >= npuzzle.Cells {
			return nil, errors.Wrapf(ErrBadBoard, "cell %d holds %d", i, t)
		}
		start.Board[i] = uint8(t)
	}

	opts := make([]npuzzle.Option, 0, 1)
	switch sc.Heuristic {
	case "", "manhattan":
		// package default
	case "misplaced":
		opts = append(opts, npuzzle.WithHeuristic(npuzzle.Misplaced))
	default:
		return nil, errors.Wrapf(ErrUnknownHeuristic, "%q", sc.Heuristic)
	}

	return npuzzle.New(start, opts...)
}

// runStrategy dispatches the scenario's strategy over any informed
// problem and fills the report's plan and diagnostics.
func runStrategy[S comparable, A comparable](ctx context.Context, sc *Scenario, p search.Informed[S, A], report *Report) error {
	switch sc.Strategy {
	case "bfs":
		res, err := bfs.BFS[S, A](p, bfs.WithContext(ctx))
		if err != nil {
			return err
		}
		report.Plan, report.Found, report.Visited = stringify(res.Plan), res.Found, res.Visited
	case "dfs":
		opts := []dfs.Option{dfs.WithContext(ctx)}
		if sc.DepthBound != nil {
			opts = append(opts, dfs.WithDepthBound(*sc.DepthBound))
		}
		res, err := dfs.DFS[S, A](p, opts...)
		if err != nil {
			return err
		}
		report.Plan, report.Found, report.Visited = stringify(res.Plan), res.Found, res.Visited
	case "astar":
		opts := []astar.Option{astar.WithContext(ctx)}
		if sc.MaxCost != nil {
			opts = append(opts, astar.WithMaxCost(*sc.MaxCost))
		}
		res, err := astar.AStar(p, opts...)
		if err != nil {
			return err
		}
		report.Plan, report.Found, report.Visited = stringify(res.Plan), res.Found, res.Visited
		report.Cost = res.Cost
	default:
		return errors.Wrapf(ErrUnknownStrategy, "%q", sc.Strategy)
	}

	return nil
}

// stringify renders a typed plan for logging. A found-but-empty plan
// stays as an empty, non-nil slice.
func stringify[A comparable](plan []A) []string {
	if plan == nil {
		return nil
	}
	out := make([]string, len(plan))
	for i, a := range plan {
		out[i] = fmt.Sprint(a)
	}

	return out
}
