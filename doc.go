// Package searchkit is a toolkit for classical AI search over implicit,
// lazily generated state graphs — from the Problem abstraction up to
// informed best-first planning.
//
// 🚀 What is searchkit?
//
//	A small, focused library that brings together:
//		• Problem abstraction: a start state, ordered actions, a pure
//		  transition function, and a goal test — the graph is never stored
//		• Uninformed strategies: breadth-first (shortest plans) and
//		  depth-first with a fixed depth bound (guaranteed termination)
//		• Informed strategy: A* over a min-heap frontier with per-entry
//		  visited snapshots and deterministic tie-breaking
//		• Concrete worlds: the linear vacuum world and the 3×3 sliding puzzle
//		• A plan-consuming agent and an HCL scenario runner CLI
//
// ✨ Why choose searchkit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Honest failure semantics – "no plan" is a value, never an error
//   - Observable – every search reports how many distinct states it visited
//   - Extensible – implement search.Problem once, run every strategy on it
//
// Everything is organized under small, single-purpose packages:
//
//	search/  — Problem and Informed interfaces, plan replay helpers
//	bfs/     — breadth-first search (fewest actions)
//	dfs/     — depth-bounded depth-first search (explicit stack)
//	astar/   — A* best-first search (cost + heuristic)
//	vacuum/  — N-room vacuum world
//	npuzzle/ — 3×3 sliding-tile puzzle
//	agent/   — executes a plan one action at a time
//
// Quick ASCII example (two-room vacuum world):
//
//	    [R ✸]───[ ✸]        robot in room 0, both rooms dirty
//	     Suck → Right → Suck
//
// See each package's doc.go for tutorials, contracts, and complexity notes.
package searchkit
