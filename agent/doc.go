// Package agent executes a precomputed plan against a search.Problem,
// one action per invocation.
//
// The agent is a thin collaborator around a plan: it hands out actions
// strictly left to right, tracks the state reached by applying each
// one, and stops offering actions as soon as the goal predicate holds
// or the plan is exhausted. There is no re-planning and no way to
// re-request a past action.
package agent
