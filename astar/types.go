// Package astar defines configuration options and sentinel errors for
// A* best-first search over informed problems.
package astar

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the A* implementation.
var (
	// ErrNilProblem indicates that a nil Informed problem was passed.
	ErrNilProblem = errors.New("astar: problem is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrNegativeCost indicates the problem's Cost returned a negative
	// value, which breaks the non-negative edge-cost contract.
	ErrNegativeCost = errors.New("astar: negative action cost encountered")

	// ErrNegativeHeuristic indicates the problem's Heuristic returned a
	// negative value, which breaks the non-negative heuristic contract.
	ErrNegativeHeuristic = errors.New("astar: negative heuristic encountered")
)

// Option represents a functional option for configuring AStar.
type Option func(*Options)

// Options configures the behavior of the A* search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnPush is called when an entry joins the frontier, with its
	// estimated total cost f.
	OnPush func(state any, f float64)

	// OnPop is called when an entry is extracted for expansion, with
	// its estimated total cost f. Returning an error aborts the search.
	OnPop func(state any, f float64) error

	// MaxCost caps the frontier: entries whose estimate f would exceed
	// it are never enqueued. Default +Inf (no cap).
	MaxCost float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with context.Background(), no-op
// hooks, and no cost cap.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnPush:  func(any, float64) {},
		OnPop:   func(any, float64) error { return nil },
		MaxCost: math.Inf(1),
		err:     nil,
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

// WithOnPush registers a callback fired when an entry joins the frontier.
func WithOnPush(fn func(state any, f float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// WithOnPop registers a callback fired on extraction; returning an
// error from this callback stops the search.
func WithOnPop(fn func(state any, f float64) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPop = fn
		}
	}
}

// WithMaxCost skips frontier entries whose estimated total cost exceeds
// max. Vertices beyond the cap are simply not explored; the search
// reports Found=false if no goal lies within it.
//
//	max >= 0: cap estimates at max
//	max < 0:  invalid option → ErrOptionViolation
func WithMaxCost(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%g)", ErrOptionViolation, max)

			return
		}
		o.MaxCost = max
	}
}

// Result holds the outcome of an A* search:
//   - Plan: the action sequence of the first goal extracted, nil if the
//     frontier was exhausted. Minimum-cost under an admissible,
//     consistent heuristic.
//   - Found: whether a goal was reached.
//   - Cost: accumulated actual cost of Plan (0 when not found).
//   - Visited: distinct states generated across the whole search, for
//     comparing heuristic guidance.
//   - Expanded: frontier entries extracted (diagnostic).
type Result[A comparable] struct {
	Plan     []A
	Found    bool
	Cost     float64
	Visited  int
	Expanded int
}
