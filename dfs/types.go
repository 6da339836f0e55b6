// Package dfs defines types and options for depth-bounded depth-first
// search, including cancellation, a visit hook, and the depth bound
// that guarantees termination.
package dfs

import (
	"context"
	"errors"
	"fmt"
)

// DefaultDepthBound is the plan-length ceiling used when no
// WithDepthBound option is supplied. It exists so that DFS terminates
// on cyclic and unbounded state spaces out of the box.
const DefaultDepthBound = 64

var (
	// ErrNilProblem is returned when a nil Problem is passed to DFS.
	ErrNilProblem = errors.New("dfs: problem is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(p, opts...).
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context will abort DFS early.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a successor is first
	// discovered and committed to the visited set. Receives the state
	// and its depth (plan length). Returning an error aborts the search.
	OnVisit func(state any, depth int) error

	// DepthBound limits plan length. Exceeding it fails the branch,
	// never the search. Must be >= 1; defaults to DefaultDepthBound.
	DepthBound int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with context.Background(), no hook,
// and DepthBound = DefaultDepthBound.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnVisit:    nil,
		DepthBound: DefaultDepthBound,
		err:        nil,
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

// WithOnVisit registers a callback fired at each first discovery;
// returning an error from this callback stops the search.
func WithOnVisit(fn func(state any, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithDepthBound caps plan length at d actions.
//
//	d >= 1: plans longer than d are not explored
//	d < 1:  invalid option → ErrOptionViolation
//
// There is no "unbounded" setting: the bound is what guarantees
// termination in the presence of cycles.
func WithDepthBound(d int) Option {
	return func(o *Options) {
		if d < 1 {
			o.err = fmt.Errorf("%w: DepthBound must be >= 1 (%d)", ErrOptionViolation, d)

			return
		}
		o.DepthBound = d
	}
}

// Result holds the outcome of a depth-first search:
//   - Plan: the first action sequence found within the bound, nil if
//     none. Not guaranteed shortest.
//   - Found: whether a goal was reached within the bound.
//   - Visited: number of distinct states discovered during the search.
type Result[A comparable] struct {
	Plan    []A
	Found   bool
	Visited int
}
