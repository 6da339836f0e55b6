package scenario_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/searchkit/internal/scenario"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestRun_VacuumAStar(t *testing.T) {
	sc := &scenario.Scenario{
		Name:     "two_rooms",
		Problem:  "vacuum",
		Strategy: "astar",
		Rooms:    intPtr(2),
	}
	report, err := scenario.Run(context.Background(), sc)
	assert.NoError(t, err)
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, "two_rooms", report.Scenario)
	assert.True(t, report.Found)
	assert.Equal(t, []string{"Suck", "Right", "Suck"}, report.Plan)
	assert.Equal(t, 7, report.Visited)
	assert.Equal(t, 3.0, report.Cost)
}

func TestRun_VacuumAStarWeighted(t *testing.T) {
	sc := &scenario.Scenario{
		Name:     "two_rooms_overestimate",
		Problem:  "vacuum",
		Strategy: "astar",
		Rooms:    intPtr(2),
		Weight:   floatPtr(10),
	}
	report, err := scenario.Run(context.Background(), sc)
	assert.NoError(t, err)
	assert.True(t, report.Found)
	assert.Equal(t, []string{"Suck", "Right", "Suck"}, report.Plan)
	assert.Equal(t, 5, report.Visited)
}

func TestRun_VacuumBFS(t *testing.T) {
	sc := &scenario.Scenario{
		Name:     "bfs",
		Problem:  "vacuum",
		Strategy: "bfs",
		Rooms:    intPtr(2),
	}
	report, err := scenario.Run(context.Background(), sc)
	assert.NoError(t, err)
	assert.True(t, report.Found)
	assert.Len(t, report.Plan, 3)
}

func TestRun_PuzzleDFS(t *testing.T) {
	sc := &scenario.Scenario{
		Name:       "one_slide",
		Problem:    "puzzle",
		Strategy:   "dfs",
		Board:      []int{1, 2, 3, 4, 5, 6, 7, 0, 8},
		DepthBound: intPtr(8),
	}
	report, err := scenario.Run(context.Background(), sc)
	assert.NoError(t, err)
	assert.True(t, report.Found)
}

func TestRun_ValidationErrors(t *testing.T) {
	_, err := scenario.Run(context.Background(), &scenario.Scenario{
		Name: "p", Problem: "chess", Strategy: "bfs",
	})
	assert.ErrorIs(t, err, scenario.ErrUnknownProblem)

	_, err = scenario.Run(context.Background(), &scenario.Scenario{
		Name: "s", Problem: "vacuum", Strategy: "ids",
	})
	assert.ErrorIs(t, err, scenario.ErrUnknownStrategy)

	_, err = scenario.Run(context.Background(), &scenario.Scenario{
		Name: "h", Problem: "vacuum", Strategy: "astar", Heuristic: "oracle",
	})
	assert.ErrorIs(t, err, scenario.ErrUnknownHeuristic)

	_, err = scenario.Run(context.Background(), &scenario.Scenario{
		Name: "b", Problem: "puzzle", Strategy: "bfs", Board: []int{1, 2, 3},
	})
	assert.ErrorIs(t, err, scenario.ErrBadBoard)
}
