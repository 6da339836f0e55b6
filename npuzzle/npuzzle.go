// Package npuzzle provides the 8-puzzle, the classical benchmark for
// comparing heuristic guidance in informed search.
package npuzzle

import (
	"errors"
	"fmt"
)

// Side is the board edge length; Cells is the number of board cells.
const (
	Side  = 3
	Cells = Side * Side
)

// Blank is the tile value marking the empty cell.
const Blank uint8 = 0

// Sentinel errors for puzzle construction.
var (
	// ErrBadBoard indicates the board is not a permutation of 0..8.
	ErrBadBoard = errors.New("npuzzle: board must contain each of 0..8 exactly once")

	// ErrBadHeuristic indicates an unknown heuristic kind.
	ErrBadHeuristic = errors.New("npuzzle: unknown heuristic")
)

// Move slides the blank in one of four directions. Moves are offered in
// the fixed order Up, Down, Left, Right, filtered by the blank's
// position.
type Move string

// The blank's moves.
const (
	Up    Move = "Up"
	Down  Move = "Down"
	Left  Move = "Left"
	Right Move = "Right"
)

// moveOrder fixes the enumeration order of candidate moves.
var moveOrder = []Move{Up, Down, Left, Right}

// State is one board configuration in row-major order, Blank marking
// the empty cell. A fixed-size array keeps it value-comparable.
type State struct {
	Board [Cells]uint8
}

// BlankIndex returns the cell index currently holding the blank.
func (s State) BlankIndex() int {
	for i, t := range s.Board {
		if t == Blank {
			return i
		}
	}
	// Unreachable for states produced by New/Apply.
	panic("npuzzle: state has no blank cell")
}

// Goal is the solved configuration: tiles 1..8 row-major, blank last.
func Goal() State {
	var g State
	for i := 0; i < Cells-1; i++ {
		g.Board[i] = uint8(i + 1)
	}
	g.Board[Cells-1] = Blank

	return g
}

// Solvable reports whether s can reach the goal: the tile sequence
// (blank excluded) must have an even number of inversions.
func Solvable(s State) bool {
	inversions := 0
	for i := 0; i < Cells; i++ {
		if s.Board[i] == Blank {
			continue
		}
		for j := i + 1; j < Cells; j++ {
			if s.Board[j] != Blank && s.Board[j] < s.Board[i] {
				inversions++
			}
		}
	}

	return inversions%2 == 0
}

// Heuristic selects the distance estimate used by the puzzle.
type Heuristic int

const (
	// Manhattan sums each tile's row+column distance to its goal cell.
	Manhattan Heuristic = iota

	// Misplaced counts tiles not in their goal cell.
	Misplaced
)

// Option configures a Puzzle at construction time.
type Option func(*Puzzle)

// WithHeuristic selects the heuristic kind (default Manhattan).
func WithHeuristic(h Heuristic) Option {
	return func(p *Puzzle) { p.heuristic = h }
}

// Puzzle is an 8-puzzle instance implementing search.Informed over
// State and Move. The zero value is not usable; use New.
type Puzzle struct {
	start     State
	heuristic Heuristic
}

// New builds a puzzle with the given start board. The board must be a
// permutation of 0..8; unsolvable permutations are accepted (see
// Solvable).
func New(start State, opts ...Option) (*Puzzle, error) {
	var present [Cells]bool
	for _, t := range start.Board {
		if int(t) >= Cells || present[t] {
			return nil, fmt.Errorf("%w: got %v", ErrBadBoard, start.Board)
		}
		present[t] = true
	}
	p := &Puzzle{start: start, heuristic: Manhattan}
	for _, opt := range opts {
		opt(p)
	}
	if p.heuristic != Manhattan && p.heuristic != Misplaced {
		return nil, fmt.Errorf("%w: %d", ErrBadHeuristic, p.heuristic)
	}

	return p, nil
}

// Start returns the initial board.
func (p *Puzzle) Start() State { return p.start }

// Actions returns the moves available to the blank in s, in the fixed
// order Up, Down, Left, Right, filtered by the blank's position.
func (p *Puzzle) Actions(s State) []Move {
	blank := s.BlankIndex()
	moves := make([]Move, 0, len(moveOrder))
	for _, m := range moveOrder {
		if _, ok := target(blank, m); ok {
			moves = append(moves, m)
		}
	}

	return moves
}

// Apply slides the blank in direction m, swapping it with the adjacent
// tile. A move off the board is a caller error and panics.
func (p *Puzzle) Apply(s State, m Move) State {
	blank := s.BlankIndex()
	to, ok := target(blank, m)
	if !ok {
		panic(fmt.Sprintf("npuzzle: move %q not available at cell %d", m, blank))
	}
	s.Board[blank], s.Board[to] = s.Board[to], s.Board[blank]

	return s
}

// IsGoal reports whether s is the solved configuration.
func (p *Puzzle) IsGoal(s State) bool { return s == Goal() }

// Cost returns 1 for every move.
func (p *Puzzle) Cost(State, Move) float64 { return 1 }

// Heuristic returns the configured estimate of remaining moves.
func (p *Puzzle) Heuristic(s State) float64 {
	switch p.heuristic {
	case Misplaced:
		return float64(misplaced(s))
	default:
		return float64(manhattan(s))
	}
}

// target computes the cell the blank lands in after move m, reporting
// false for moves off the board.
func target(blank int, m Move) (int, bool) {
	row, col := blank/Side, blank%Side
	switch m {
	case Up:
		row--
	case Down:
		row++
	case Left:
		col--
	case Right:
		col++
	default:
		return 0, false
	}
	if row < 0 || row >= Side || col < 0 || col >= Side {
		return 0, false
	}

	return row*Side + col, true
}

// manhattan sums each tile's row+column distance to its goal cell.
func manhattan(s State) int {
	sum := 0
	for i, t := range s.Board {
		if t == Blank {
			continue
		}
		goal := int(t) - 1
		dr := i/Side - goal/Side
		dc := i%Side - goal%Side
		if dr < 0 {
			dr = -dr
		}
		if dc < 0 {
			dc = -dc
		}
		sum += dr + dc
	}

	return sum
}

// misplaced counts tiles out of place, blank excluded.
func misplaced(s State) int {
	n := 0
	for i, t := range s.Board {
		if t != Blank && int(t) != i+1 {
			n++
		}
	}

	return n
}
