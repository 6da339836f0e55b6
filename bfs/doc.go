// Package bfs implements breadth-first search over a search.Problem,
// returning the plan with the fewest actions from the start state to a
// goal state.
//
// What:
//
//   - BFS(p, opts...): expand states in non-decreasing depth order
//     until a goal is dequeued or the reachable frontier is exhausted.
//     Supports cancellation, depth limiting, and enqueue/dequeue/visit
//     hooks.
//
// Why:
//
//   - When every action counts the same, the first goal found by
//     breadth-first expansion is reached by a minimum-length plan.
//   - "No plan exists" is an expected outcome: BFS reports it as
//     Found=false with a nil Plan, never as an error.
//
// Key types:
//
//   - Option / Options: functional options (context, MaxDepth, hooks)
//   - Result: Plan, Found, Visited (distinct states discovered)
//
// Guarantees and caveats:
//
//   - The returned plan is shortest by action count (BFS is not
//     cost-aware; see package astar for weighted search).
//   - A visited set seeded with the start state guards against cycles;
//     a state is recorded exactly once, at first discovery.
//   - If the state space is infinite and no goal is reachable, BFS
//     does not terminate unless cancelled or depth-limited.
//
// Complexity:
//
//   - Time:   O(b^d) for branching factor b and goal depth d.
//   - Memory: O(b^d) for the frontier and visited set.
//
// Errors:
//
//   - ErrNilProblem       p is nil
//   - ErrOptionViolation  an invalid Option was supplied
//   - context.Canceled    the context was cancelled mid-search
//   - hook errors         propagated from OnVisit
package bfs
