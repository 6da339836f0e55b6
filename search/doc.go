// Package search defines the Problem abstraction shared by every
// strategy in searchkit: an implicit, lazily expanded directed graph
// described by a start state, an ordered action enumeration, a pure
// transition function, and a goal predicate.
//
// What:
//
//   - Problem[S, A]: the four-operation contract every concrete world
//     implements (Start, Actions, Apply, IsGoal).
//   - Informed[S, A]: Problem plus a non-negative action cost and a
//     non-negative heuristic estimate of remaining cost, required by
//     informed strategies such as astar.
//   - Replay: applies a plan action-by-action from the start state,
//     validating that each action was actually offered.
//
// Why:
//
//   - Strategies are written once against the interface; worlds
//     (vacuum, npuzzle, or your own) plug in at construction time.
//   - The graph is never materialized: states are generated on demand,
//     so state spaces may be arbitrarily large or infinite.
//
// Contracts:
//
//   - States must be value-comparable: two structurally equal states
//     are the same node. The comparable constraint enforces this and
//     lets strategies use states as map keys directly.
//   - Actions(s) returns the same ordered sequence for the same s; a
//     goal state may legally offer no actions at all.
//   - Apply must be pure and must only be called with an action
//     present in Actions(s); anything else is a caller error.
//   - No operation may have observable side effects.
//
// Errors:
//
//   - ErrIllegalAction  a replayed plan contained an action that was
//     not offered in the state it was applied from.
package search
