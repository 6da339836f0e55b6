// Package bfs provides breadth-first search over a search.Problem,
// returning minimum-length plans with a visited-set cycle guard.
package bfs

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/searchkit/search"
)

// queueItem pairs a state with the plan that first reached it.
type queueItem[S comparable, A comparable] struct {
	state S
	plan  []A
}

// walker encapsulates mutable BFS state.
type walker[S comparable, A comparable] struct {
	problem search.Problem[S, A]
	opts    Options
	ctx     context.Context
	queue   []queueItem[S, A]
	visited map[S]struct{}
}

// BFS runs breadth-first search on p, applying any number of functional
// Options. The frontier is a FIFO queue seeded with the start state and
// an empty plan; the goal test runs when a state is dequeued, so the
// start state itself may satisfy it. Successors are recorded in the
// visited set at first discovery and never enqueued twice.
//
// Returns ErrNilProblem or ErrOptionViolation for invalid input, the
// context error on cancellation, or any user-supplied hook error. A
// frontier exhausted without reaching a goal is not an error: the
// Result carries Found=false and a nil Plan.
func BFS[S comparable, A comparable](p search.Problem[S, A], opts ...Option) (*Result[A], error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Prepare walker, seeding queue and visited set with the start state
	start := p.Start()
	w := &walker[S, A]{
		problem: p,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem[S, A], 0, 1),
		visited: map[S]struct{}{start: {}},
	}
	w.opts.OnEnqueue(start, 0)
	w.queue = append(w.queue, queueItem[S, A]{state: start, plan: []A{}})

	return w.loop()
}

// loop processes the queue until a goal is dequeued, the queue empties,
// an error occurs, or the context is cancelled.
func (w *walker[S, A]) loop() (*Result[A], error) {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return nil, w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if w.problem.IsGoal(item.state) {
			return &Result[A]{Plan: item.plan, Found: true, Visited: len(w.visited)}, nil
		}
		if err := w.opts.OnVisit(item.state, len(item.plan)); err != nil {
			return nil, fmt.Errorf("bfs: OnVisit error at depth %d: %w", len(item.plan), err)
		}
		w.enqueueSuccessors(item)
	}

	// Frontier exhausted: no goal reachable within the explored set.
	return &Result[A]{Found: false, Visited: len(w.visited)}, nil
}

// dequeue pops the queue head and invokes OnDequeue.
func (w *walker[S, A]) dequeue() queueItem[S, A] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.state, len(item.plan))

	return item
}

// enqueueSuccessors applies each available action, honoring MaxDepth,
// and enqueues each first-seen successor with its extended plan.
func (w *walker[S, A]) enqueueSuccessors(item queueItem[S, A]) {
	nextDepth := len(item.plan) + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, act := range w.problem.Actions(item.state) {
		succ := w.problem.Apply(item.state, act)

		// first time seen?
		if _, seen := w.visited[succ]; seen {
			continue
		}
		w.visited[succ] = struct{}{}
		w.opts.OnEnqueue(succ, nextDepth)

		// each queue entry owns its own plan copy
		plan := append(slices.Clip(item.plan), act)
		w.queue = append(w.queue, queueItem[S, A]{state: succ, plan: plan})
	}
}
