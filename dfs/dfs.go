// Package dfs performs depth-bounded depth-first search over a
// search.Problem on an explicit frame stack.
package dfs

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/searchkit/search"
)

// frame is one level of the simulated recursion: a state, its ordered
// actions, and a cursor over the actions not yet tried.
type frame[S comparable, A comparable] struct {
	state   S
	actions []A
	next    int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker[S comparable, A comparable] struct {
	problem search.Problem[S, A]
	opts    Options
	stack   []frame[S, A]
	path    []A // actions along the current stack, one per frame past the root
	visited map[S]struct{}
}

// DFS performs depth-first search on problem p. Actions are tried in
// the order Actions returns them; a successor is explored only if it
// has never been seen and the current plan is shorter than DepthBound.
// The visited set is shared across branches and never rolled back, so
// a branch failure permanently rules its states out (see package doc).
//
// Exceeding the depth bound fails the branch exactly like exhausting
// its actions; only a nil problem, a bad option, cancellation, or a
// hook error produce a non-nil error.
func DFS[S comparable, A comparable](p search.Problem[S, A], opts ...Option) (*Result[A], error) {
	// 1. Validate input problem
	if p == nil {
		return nil, ErrNilProblem
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if dopts.err != nil {
		return nil, dopts.err
	}

	// 3. Seed visited with the start state; it may already be the goal.
	start := p.Start()
	w := &dfsWalker[S, A]{
		problem: p,
		opts:    dopts,
		visited: map[S]struct{}{start: {}},
	}
	if p.IsGoal(start) {
		return &Result[A]{Plan: []A{}, Found: true, Visited: 1}, nil
	}
	w.stack = []frame[S, A]{{state: start, actions: p.Actions(start)}}

	// 4. Run the explicit-stack traversal.
	return w.run()
}

// run drives the frame stack until a goal is discovered or every branch
// within the depth bound is exhausted.
func (w *dfsWalker[S, A]) run() (*Result[A], error) {
	for len(w.stack) > 0 {
		// Cancellation check, once per step
		select {
		case <-w.opts.Ctx.Done():
			return nil, w.opts.Ctx.Err()
		default:
		}

		top := &w.stack[len(w.stack)-1]

		// Backtrack: all actions tried. Visited entries stay in place.
		if top.next >= len(top.actions) {
			w.stack = w.stack[:len(w.stack)-1]
			if len(w.path) > 0 {
				w.path = w.path[:len(w.path)-1]
			}
			continue
		}

		act := top.actions[top.next]
		top.next++

		// Depth bound: extending the plan would exceed it.
		if len(w.path) >= w.opts.DepthBound {
			continue
		}

		succ := w.problem.Apply(top.state, act)
		if _, seen := w.visited[succ]; seen {
			continue
		}
		w.visited[succ] = struct{}{}

		w.path = append(w.path, act)
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(succ, len(w.path)); err != nil {
				return nil, fmt.Errorf("dfs: OnVisit hook at depth %d: %w", len(w.path), err)
			}
		}

		if w.problem.IsGoal(succ) {
			return &Result[A]{Plan: slices.Clone(w.path), Found: true, Visited: len(w.visited)}, nil
		}

		w.stack = append(w.stack, frame[S, A]{state: succ, actions: w.problem.Actions(succ)})
	}

	return &Result[A]{Found: false, Visited: len(w.visited)}, nil
}
