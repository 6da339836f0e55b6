package search

import (
	"fmt"
	"slices"
)

// Replay applies plan action-by-action from p's start state and returns
// the final state reached. Unlike Problem.Apply, Replay checks each
// action against Actions before applying it, so it is safe to feed it
// untrusted plans; an action missing from its state yields
// ErrIllegalAction and the state reached so far.
func Replay[S comparable, A comparable](p Problem[S, A], plan []A) (S, error) {
	state := p.Start()
	for i, act := range plan {
		if !slices.Contains(p.Actions(state), act) {
			return state, fmt.Errorf("%w: plan[%d]=%v", ErrIllegalAction, i, act)
		}
		state = p.Apply(state, act)
	}

	return state, nil
}

// Solves reports whether plan, replayed from p's start state, ends in a
// goal state. Invalid plans never solve.
func Solves[S comparable, A comparable](p Problem[S, A], plan []A) bool {
	end, err := Replay(p, plan)
	if err != nil {
		return false
	}

	return p.IsGoal(end)
}
