package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/searchkit/dfs"
	"github.com/katalvlaran/searchkit/search"
	"github.com/katalvlaran/searchkit/vacuum"
)

// graphProblem is a tiny explicit-graph Problem: actions are the labels
// of destination states.
type graphProblem struct {
	start string
	edges map[string][]string
	goal  string
}

func (g graphProblem) Start() string { return g.start }

func (g graphProblem) Actions(s string) []string { return g.edges[s] }

func (g graphProblem) Apply(_, a string) string { return a }

func (g graphProblem) IsGoal(s string) bool { return s == g.goal }

// counterProblem is an infinite chain 0→1→2→… with no goal.
type counterProblem struct{}

func (counterProblem) Start() int { return 0 }

func (counterProblem) Actions(int) []int { return []int{1} }

func (counterProblem) Apply(s, _ int) int { return s + 1 }

func (counterProblem) IsGoal(int) bool { return false }

func TestDFS_NilProblem(t *testing.T) {
	res, err := dfs.DFS[string, string](nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrNilProblem)
}

func TestDFS_BadDepthBound(t *testing.T) {
	p := graphProblem{start: "A", goal: "A"}
	res, err := dfs.DFS[string, string](p, dfs.WithDepthBound(0))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrOptionViolation)
}

func TestDFS_GoalAtStart(t *testing.T) {
	p := graphProblem{start: "A", goal: "A"}
	res, err := dfs.DFS[string, string](p)
	assert.NoError(t, err)
	assert.True(t, res.Found)
	assert.NotNil(t, res.Plan)
	assert.Empty(t, res.Plan)
	assert.Equal(t, 1, res.Visited)
}

func TestDFS_NoActions(t *testing.T) {
	p := graphProblem{start: "A", goal: "Z"}
	res, err := dfs.DFS[string, string](p)
	assert.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, 1, res.Visited)
}

func TestDFS_Chain(t *testing.T) {
	p := graphProblem{
		start: "A",
		edges: map[string][]string{"A": {"B"}, "B": {"C"}, "C": {"D"}},
		goal:  "D",
	}
	res, err := dfs.DFS[string, string](p)
	assert.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []string{"B", "C", "D"}, res.Plan)
	assert.Equal(t, 4, res.Visited)
}

func TestDFS_DepthBoundFailsBranch(t *testing.T) {
	p := graphProblem{
		start: "A",
		edges: map[string][]string{"A": {"B"}, "B": {"C"}, "C": {"D"}},
		goal:  "D",
	}
	// goal at depth 3, bound 2: branch failure, not an error
	res, err := dfs.DFS[string, string](p, dfs.WithDepthBound(2))
	assert.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Plan)
}

func TestDFS_CycleTermination(t *testing.T) {
	p := graphProblem{
		start: "A",
		edges: map[string][]string{"A": {"B"}, "B": {"C"}, "C": {"A"}},
		goal:  "Z",
	}
	res, err := dfs.DFS[string, string](p)
	assert.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, 3, res.Visited)
}

// TestDFS_SharedVisitedSet pins the documented trade-off: a state
// consumed by a failed branch is never reconsidered, so DFS can miss a
// plan that exists. S→A→M dead-ends under the bound, and the direct
// S→M→G route is then blocked because M is already visited.
func TestDFS_SharedVisitedSet(t *testing.T) {
	p := graphProblem{
		start: "S",
		edges: map[string][]string{
			"S": {"A", "M"},
			"A": {"M"},
			"M": {"G"},
		},
		goal: "G",
	}
	res, err := dfs.DFS[string, string](p, dfs.WithDepthBound(2))
	assert.NoError(t, err)
	assert.False(t, res.Found, "M was consumed by the failed S→A→M branch")

	// A generous bound finds the goal through the first branch instead.
	res, err = dfs.DFS[string, string](p, dfs.WithDepthBound(10))
	assert.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []string{"A", "M", "G"}, res.Plan)
}

func TestDFS_DepthBoundTerminatesInfiniteSpace(t *testing.T) {
	res, err := dfs.DFS[int, int](counterProblem{}, dfs.WithDepthBound(16))
	assert.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, 17, res.Visited) // start plus 16 levels
}

func TestDFS_OnVisitHook(t *testing.T) {
	p := graphProblem{
		start: "A",
		edges: map[string][]string{"A": {"B"}, "B": {"C"}},
		goal:  "C",
	}
	var depths []int
	res, err := dfs.DFS[string, string](p, dfs.WithOnVisit(func(_ any, d int) error {
		depths = append(depths, d)

		return nil
	}))
	assert.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []int{1, 2}, depths)
}

func TestDFS_OnVisitAbort(t *testing.T) {
	p := graphProblem{
		start: "A",
		edges: map[string][]string{"A": {"B"}, "B": {"C"}},
		goal:  "C",
	}
	boom := errors.New("boom")
	res, err := dfs.DFS[string, string](p, dfs.WithOnVisit(func(any, int) error { return boom }))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, boom)
}

func TestDFS_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := dfs.DFS[int, int](counterProblem{}, dfs.WithContext(ctx))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDFS_Vacuum(t *testing.T) {
	w, err := vacuum.New(2)
	assert.NoError(t, err)

	res, err := dfs.DFS[vacuum.State, vacuum.Action](w)
	assert.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []vacuum.Action{vacuum.Suck, vacuum.Right, vacuum.Suck}, res.Plan)
	assert.True(t, search.Solves[vacuum.State, vacuum.Action](w, res.Plan))
}

func TestDFS_Determinism(t *testing.T) {
	w, err := vacuum.New(4)
	assert.NoError(t, err)

	first, err := dfs.DFS[vacuum.State, vacuum.Action](w)
	assert.NoError(t, err)
	second, err := dfs.DFS[vacuum.State, vacuum.Action](w)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}
