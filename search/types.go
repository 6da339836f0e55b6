// Package search defines the core Problem and Informed interfaces.
package search

import "errors"

// ErrIllegalAction is returned by Replay when a plan contains an action
// that was not offered by Actions in the state it was applied from.
var ErrIllegalAction = errors.New("search: action not available in state")

// Problem describes an implicit, lazily expanded state graph.
//
// S is the state type: an immutable, value-comparable token. Two
// structurally equal states denote the same node, so S must be usable
// as a map key (enforced by the comparable constraint).
//
// A is the action type: a comparable label meaningful only in the
// context of the state it was offered from.
type Problem[S comparable, A comparable] interface {
	// Start returns the initial state of the search.
	Start() S

	// Actions returns the ordered sequence of actions available in s.
	// The same s always yields the same sequence. A goal state may
	// return an empty sequence.
	Actions(s S) []A

	// Apply returns the state reached by taking action a in state s.
	// It must be a pure function of its inputs. Calling Apply with an
	// action absent from Actions(s) is a caller error; implementations
	// may panic.
	Apply(s S, a A) S

	// IsGoal reports whether s is a terminal (goal) state.
	IsGoal(s S) bool
}

// Informed extends Problem with the cost and heuristic operations
// required by informed strategies.
type Informed[S comparable, A comparable] interface {
	Problem[S, A]

	// Cost returns the non-negative cost of taking action a in state s.
	Cost(s S, a A) float64

	// Heuristic estimates the non-negative remaining cost from s to the
	// nearest goal. A heuristic that never overestimates (admissible)
	// makes astar.AStar return minimum-cost plans.
	Heuristic(s S) float64
}
