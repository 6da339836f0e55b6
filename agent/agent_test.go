package agent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/searchkit/agent"
	"github.com/katalvlaran/searchkit/bfs"
	"github.com/katalvlaran/searchkit/vacuum"
)

func TestAgent_ConsumesPlanInOrder(t *testing.T) {
	w, err := vacuum.New(2)
	assert.NoError(t, err)

	res, err := bfs.BFS[vacuum.State, vacuum.Action](w)
	assert.NoError(t, err)
	assert.True(t, res.Found)

	a := agent.New[vacuum.State, vacuum.Action](w, res.Plan)
	var handed []vacuum.Action
	for {
		act, ok := a.Next()
		if !ok {
			break
		}
		handed = append(handed, act)
	}
	assert.Equal(t, res.Plan, handed)
	assert.True(t, w.IsGoal(a.State()))
	assert.True(t, a.Done())
}

func TestAgent_StopsAtGoalBeforePlanEnds(t *testing.T) {
	w, err := vacuum.New(1)
	assert.NoError(t, err)

	// One Suck solves the single-room world; the surplus actions must
	// never be handed out.
	plan := []vacuum.Action{vacuum.Suck, vacuum.Right, vacuum.Suck}
	a := agent.New[vacuum.State, vacuum.Action](w, plan)

	act, ok := a.Next()
	assert.True(t, ok)
	assert.Equal(t, vacuum.Suck, act)

	_, ok = a.Next()
	assert.False(t, ok, "goal reached, nothing further to offer")
	assert.True(t, a.Done())
	assert.Equal(t, 2, a.Remaining())
}

func TestAgent_EmptyPlan(t *testing.T) {
	w, err := vacuum.New(2)
	assert.NoError(t, err)

	a := agent.New[vacuum.State, vacuum.Action](w, nil)
	_, ok := a.Next()
	assert.False(t, ok)
	assert.True(t, a.Done())
	assert.Equal(t, w.Start(), a.State())
}

func TestAgent_GoalAtStart(t *testing.T) {
	w, err := vacuum.New(2, vacuum.WithDirty(0))
	assert.NoError(t, err)

	a := agent.New[vacuum.State, vacuum.Action](w, []vacuum.Action{vacuum.Right})
	_, ok := a.Next()
	assert.False(t, ok, "a satisfied goal needs no actions")
	assert.Equal(t, 1, a.Remaining())
}
