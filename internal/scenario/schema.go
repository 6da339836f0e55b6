package scenario

import "errors"

// Sentinel errors for scenario validation and dispatch.
var (
	// ErrUnknownProblem indicates a problem name other than "vacuum" or "puzzle".
	ErrUnknownProblem = errors.New("scenario: unknown problem")

	// ErrUnknownStrategy indicates a strategy name other than "bfs", "dfs", or "astar".
	ErrUnknownStrategy = errors.New("scenario: unknown strategy")

	// ErrUnknownHeuristic indicates a heuristic name the problem does not offer.
	ErrUnknownHeuristic = errors.New("scenario: unknown heuristic")

	// ErrBadBoard indicates a puzzle board of the wrong shape.
	ErrBadBoard = errors.New("scenario: puzzle board must have 9 cells")
)

// File is the root HCL schema: a list of scenario blocks.
type File struct {
	Scenarios []*Scenario `hcl:"scenario,block"`
}

// Scenario describes one search run: which problem to build, which
// strategy to apply, and the knobs for both. Optional attributes fall
// back to the problem's defaults.
type Scenario struct {
	Name     string `hcl:"name,label"`
	Problem  string `hcl:"problem"`
	Strategy string `hcl:"strategy"`

	// Vacuum-world knobs.
	Rooms *int `hcl:"rooms,optional"`
	Dirty *int `hcl:"dirty,optional"` // bitmask; default all rooms dirty
	Start *int `hcl:"start,optional"`

	// Puzzle knobs.
	Board []int `hcl:"board,optional"`

	// Strategy knobs.
	Heuristic  string   `hcl:"heuristic,optional"` // dirt | manhattan | misplaced
	Weight     *float64 `hcl:"weight,optional"`    // vacuum heuristic weight
	DepthBound *int     `hcl:"depth_bound,optional"`
	MaxCost    *float64 `hcl:"max_cost,optional"`
}
