// Package bfs provides tunable options and error definitions
// for breadth-first search over a search.Problem.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilProblem is returned if a nil Problem is passed.
	ErrNilProblem = errors.New("bfs: problem is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
// Hooks receive the state as an untyped value so Options stays free of
// the strategy's type parameters.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a state is first discovered and queued.
	// Receives the state and its depth (plan length) from the start.
	OnEnqueue func(state any, depth int)

	// OnDequeue is called immediately before expanding a state.
	OnDequeue func(state any, depth int)

	// OnVisit is called when expanding a state. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(state any, depth int) error

	// MaxDepth, if > 0, stops exploring beyond plans of this length.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(any, int) {},
		OnDequeue: func(any, int) {},
		OnVisit:   func(any, int) error { return nil },
		MaxDepth:  0,
		err:       nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on first discovery.
func WithOnEnqueue(fn func(state any, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(state any, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on expansion; returning an
// error from this callback stops the search.
func WithOnVisit(fn func(state any, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given plan length (inclusive).
//
//	d > 0: successors beyond depth d are not enqueued
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// Result holds the outcome of a breadth-first search:
//   - Plan: the shortest action sequence from start to a goal, nil if
//     none was found. A goal start state yields an empty, non-nil Plan.
//   - Found: whether a goal was reached. Exhausting the frontier is an
//     expected outcome, reported here rather than as an error.
//   - Visited: number of distinct states discovered during the search.
type Result[A comparable] struct {
	Plan    []A
	Found   bool
	Visited int
}
