// Package astar implements A* search with a container/heap frontier,
// per-entry visited snapshots, and deterministic FIFO tie-breaking.
package astar

import (
	"container/heap"
	"fmt"
	"maps"
	"slices"

	"github.com/katalvlaran/searchkit/search"
)

// AStar computes a plan from p's start state to a goal, expanding
// frontier entries in order of estimated total cost f = g + h(state).
// Ties on f are broken by insertion order. Each entry owns its own plan
// and visited-set snapshot, so sibling branches never interfere.
//
// Returns:
//
//   - Result.Plan/Cost: the first goal extracted; minimum-cost when h
//     is admissible (and consistent, if states are reachable by more
//     than one path). Found=false with a nil Plan when the frontier is
//     exhausted — an expected outcome, not an error.
//   - Result.Visited: distinct states generated across the search.
//
// Preconditions and validation (in order):
//  1. p must be non-nil (ErrNilProblem).
//  2. Options must be well-formed (ErrOptionViolation).
//  3. Heuristic must never return a negative value (ErrNegativeHeuristic).
//  4. Cost must never return a negative value (ErrNegativeCost).
//
// The last two are collaborator contract violations: they abort the
// search the moment they are observed rather than being silently
// clamped.
func AStar[S comparable, A comparable](p search.Informed[S, A], opts ...Option) (*Result[A], error) {
	// 1) Build and validate Options
	if p == nil {
		return nil, ErrNilProblem
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Seed the frontier with the start state: g=0, f=h(start),
	//    snapshot containing only the start state.
	start := p.Start()
	h0 := p.Heuristic(start)
	if h0 < 0 {
		return nil, fmt.Errorf("%w: h(start)=%g", ErrNegativeHeuristic, h0)
	}

	r := &runner[S, A]{
		problem:    p,
		options:    cfg,
		discovered: map[S]struct{}{start: {}},
	}
	heap.Init(&r.pq)
	r.push(&entry[S, A]{
		f:     h0,
		g:     0,
		state: start,
		plan:  []A{},
		seen:  map[S]struct{}{start: {}},
	})

	// 3) Run the extract-expand loop.
	return r.process()
}

// runner holds the mutable state for a single A* execution.
type runner[S comparable, A comparable] struct {
	problem    search.Informed[S, A]
	options    Options
	pq         frontier[S, A]
	seq        uint64         // insertion counter for FIFO tie-breaking
	discovered map[S]struct{} // every distinct state generated so far
	expanded   int
}

// push stamps e with the next sequence number and adds it to the heap,
// honoring MaxCost.
func (r *runner[S, A]) push(e *entry[S, A]) {
	if e.f > r.options.MaxCost {
		return
	}
	e.seq = r.seq
	r.seq++
	r.options.OnPush(e.state, e.f)
	heap.Push(&r.pq, e)
}

// process is the core loop: extract the minimum-f entry, test for goal,
// otherwise expand it. Terminates when the heap empties or a goal pops.
func (r *runner[S, A]) process() (*Result[A], error) {
	for r.pq.Len() > 0 {
		// Cancellation check, once per extraction.
		select {
		case <-r.options.Ctx.Done():
			return nil, r.options.Ctx.Err()
		default:
		}

		e := heap.Pop(&r.pq).(*entry[S, A])
		if err := r.options.OnPop(e.state, e.f); err != nil {
			return nil, fmt.Errorf("astar: OnPop hook: %w", err)
		}
		r.expanded++

		if r.problem.IsGoal(e.state) {
			return &Result[A]{
				Plan:     e.plan,
				Found:    true,
				Cost:     e.g,
				Visited:  len(r.discovered),
				Expanded: r.expanded,
			}, nil
		}

		if err := r.expand(e); err != nil {
			return nil, err
		}
	}

	// Frontier exhausted without extracting a goal.
	return &Result[A]{Found: false, Visited: len(r.discovered), Expanded: r.expanded}, nil
}

// expand applies every action available in e.state. A successor already
// in e's snapshot is skipped; otherwise the snapshot is cloned, the
// successor added, and a new frontier entry pushed with
// f = g + cost + h(successor).
func (r *runner[S, A]) expand(e *entry[S, A]) error {
	for _, act := range r.problem.Actions(e.state) {
		succ := r.problem.Apply(e.state, act)
		if _, ok := e.seen[succ]; ok {
			continue
		}

		c := r.problem.Cost(e.state, act)
		if c < 0 {
			return fmt.Errorf("%w: cost(%v)=%g", ErrNegativeCost, act, c)
		}
		h := r.problem.Heuristic(succ)
		if h < 0 {
			return fmt.Errorf("%w: h=%g", ErrNegativeHeuristic, h)
		}

		seen := maps.Clone(e.seen)
		seen[succ] = struct{}{}
		r.discovered[succ] = struct{}{}

		g := e.g + c
		r.push(&entry[S, A]{
			f:     g + h,
			g:     g,
			state: succ,
			plan:  append(slices.Clip(e.plan), act),
			seen:  seen,
		})
	}

	return nil
}

// entry is one frontier element: estimated total cost, accumulated
// actual cost, the state, the plan that reached it, and the entry's own
// visited-set snapshot.
type entry[S comparable, A comparable] struct {
	f     float64
	g     float64
	seq   uint64
	state S
	plan  []A
	seen  map[S]struct{}
}

// frontier is a min-heap of *entry ordered by f ascending, with ties
// broken by insertion sequence (FIFO among equal estimates).
type frontier[S comparable, A comparable] []*entry[S, A]

// Len returns the number of items in the heap.
func (pq frontier[S, A]) Len() int { return len(pq) }

// Less orders by estimate, then by insertion sequence.
func (pq frontier[S, A]) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq frontier[S, A]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be of type *entry.
func (pq *frontier[S, A]) Push(x any) { *pq = append(*pq, x.(*entry[S, A])) }

// Pop removes and returns the minimum element from the heap.
func (pq *frontier[S, A]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
