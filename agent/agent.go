package agent

import "github.com/katalvlaran/searchkit/search"

// Agent consumes a plan against a Problem, one action per Next call.
// It tracks the state reached so far and goes quiet once the goal holds
// or the plan runs out.
type Agent[S comparable, A comparable] struct {
	problem search.Problem[S, A]
	plan    []A
	state   S
	pos     int
}

// New returns an Agent positioned at p's start state, ready to hand out
// plan's actions in order. The plan is typically the output of one of
// the search strategies; it is not validated up front.
func New[S comparable, A comparable](p search.Problem[S, A], plan []A) *Agent[S, A] {
	return &Agent[S, A]{problem: p, plan: plan, state: p.Start()}
}

// Next returns the next action of the plan and advances the tracked
// state by applying it. It reports false, with the zero action, once
// the goal has been reached or the plan is exhausted.
func (a *Agent[S, A]) Next() (A, bool) {
	var zero A
	if a.Done() {
		return zero, false
	}
	act := a.plan[a.pos]
	a.pos++
	a.state = a.problem.Apply(a.state, act)

	return act, true
}

// State returns the state reached by the actions handed out so far.
func (a *Agent[S, A]) State() S { return a.state }

// Done reports whether the agent has nothing further to offer: either
// the tracked state satisfies the goal or the plan is exhausted.
func (a *Agent[S, A]) Done() bool {
	return a.problem.IsGoal(a.state) || a.pos >= len(a.plan)
}

// Remaining returns the number of actions not yet handed out.
func (a *Agent[S, A]) Remaining() int { return len(a.plan) - a.pos }
