// Package npuzzle implements the 3×3 sliding-tile puzzle (8-puzzle) as
// a search.Informed problem.
//
// What:
//
//   - Puzzle: tiles 1..8 and a blank on a 3×3 board; a move slides the
//     blank Up, Down, Left, or Right, swapping it with the adjacent
//     tile. The goal is tiles 1..8 in row-major order with the blank
//     in the last cell:
//
//	    1 2 3
//	    4 5 6
//	    7 8 ·
//
// Heuristics (selected with WithHeuristic):
//
//   - Manhattan (default): sum over tiles of the row+column distance to
//     the tile's goal cell. Admissible and consistent.
//   - Misplaced: number of tiles not in their goal cell. Admissible and
//     consistent, but weaker guidance than Manhattan.
//
// Solvability:
//
//   - Exactly half of all 9! boards can reach the goal: those whose
//     tile sequence (ignoring the blank) has an even number of
//     inversions. Solvable reports this; New does not reject
//     unsolvable boards, since exhausting the frontier on one is
//     legitimate (if slow) search behavior.
//
// Errors:
//
//   - ErrBadBoard      the board is not a permutation of 0..8
//   - ErrBadHeuristic  an unknown heuristic kind was selected
package npuzzle
