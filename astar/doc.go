// Package astar implements A* best-first search over a search.Informed
// problem: a min-heap frontier ordered by estimated total cost
// f = g + h, where g is the accumulated path cost and h the heuristic
// estimate of remaining cost.
//
// What:
//
//   - AStar(p, opts...): repeatedly extract the lowest-f frontier
//     entry; if its state is a goal, its plan is the answer. Otherwise
//     every applicable action spawns a new entry with an extended plan,
//     updated cost, and its own visited-set snapshot.
//
// Why:
//
//   - With an admissible heuristic (never overestimates) and tree-like
//     expansion — or additionally a consistent heuristic when multiple
//     paths reach the same state — the first goal extracted has
//     minimum total cost among all reachable goals.
//   - With h ≡ 0 the search degenerates to uniform-cost exploration.
//
// Tie-breaking:
//
//   - Entries with equal f are popped in frontier insertion order
//     (a monotonic sequence number, FIFO among equals), so runs are
//     deterministic for a deterministic problem.
//
// Visited-set semantics:
//
//   - Each frontier entry carries its own snapshot of the states on
//     and around its path; cloning on expansion keeps sibling branches
//     independent, at a deliberate memory cost (simplicity over
//     sharing). Result.Visited reports the number of distinct states
//     generated across the whole search, for comparing heuristics.
//
// Heuristic validation:
//
//   - Inadmissible or inconsistent heuristics are tolerated, never
//     detected: the search stays well-defined and terminates the same
//     way, it just greedily favors the heuristic and may return a
//     suboptimal plan. Only negative costs and negative heuristic
//     values are rejected, as collaborator contract violations.
//
// Complexity:
//
//   - Time:   O(N log N) heap operations for N generated entries.
//   - Memory: O(N·|path|) due to per-entry snapshots.
//
// Errors:
//
//   - ErrNilProblem          p is nil
//   - ErrOptionViolation     an invalid Option was supplied
//   - ErrNegativeCost        Cost returned a negative value
//   - ErrNegativeHeuristic   Heuristic returned a negative value
//   - context.Canceled       the context was cancelled mid-search
//   - hook errors            propagated from OnPop
package astar
