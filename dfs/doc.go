// Package dfs implements depth-bounded depth-first search over a
// search.Problem using an explicit frame stack, so the bound — not the
// host call stack — is the only limit on exploration depth.
//
// What:
//
//   - DFS(p, opts...): from the current state, try each available
//     action in order; explore a successor only if it has never been
//     seen and the current plan is shorter than the depth bound.
//     The first goal discovered ends the search.
//
// Why:
//
//   - The fixed depth bound guarantees termination even on cyclic or
//     infinite state spaces, at the price of completeness: a goal
//     deeper than the bound is simply not found.
//
// Behavioral trade-off (deliberate, not a bug):
//
//   - The visited set is shared across all sibling branches and never
//     rolled back on backtrack. A state rejected once is never
//     reconsidered via a different path during the same search, so a
//     shorter route to a state first reached on a failed branch can be
//     missed. This trades completeness and optimality for a hard
//     termination guarantee; use bfs or astar when optimality matters.
//
// Key types:
//
//   - Option / Options: context, DepthBound, OnVisit hook
//   - Result: Plan, Found, Visited (distinct states discovered)
//
// Complexity:
//
//   - Time:   O(b^m) for branching factor b and bound m, worst case.
//   - Memory: O(m·b) frames plus the visited set.
//
// Errors:
//
//   - ErrNilProblem       p is nil
//   - ErrOptionViolation  DepthBound < 1
//   - context.Canceled    the context was cancelled mid-search
//   - hook errors         propagated from OnVisit
package dfs
