// Package vacuum provides the linear vacuum world, a small concrete
// search.Informed problem used throughout searchkit's tests and docs.
package vacuum

import (
	"errors"
	"fmt"
	"math/bits"
)

// MaxRooms bounds the row length so dirt flags fit one byte.
const MaxRooms = 8

// Sentinel errors for world construction.
var (
	// ErrBadRoomCount indicates a room count outside [1, MaxRooms].
	ErrBadRoomCount = errors.New("vacuum: room count must be between 1 and 8")

	// ErrBadStart indicates a start position outside the row.
	ErrBadStart = errors.New("vacuum: start position outside the row")

	// ErrBadWeight indicates a non-positive heuristic weight.
	ErrBadWeight = errors.New("vacuum: heuristic weight must be positive")
)

// Action is one of the robot's three moves, offered in every state in
// the fixed order Left, Suck, Right.
type Action string

// The robot's actions.
const (
	Left  Action = "Left"
	Suck  Action = "Suck"
	Right Action = "Right"
)

// actions is the ordered action sequence shared by every state.
var actions = []Action{Left, Suck, Right}

// State is a node of the vacuum world graph: the robot's room and a
// bitmask of dirty rooms (bit i set means room i is dirty). It is a
// plain comparable value, so structurally equal states coincide.
type State struct {
	Pos   int
	Dirty uint8
}

// DirtyCount returns the number of dirty rooms in s.
func (s State) DirtyCount() int { return bits.OnesCount8(s.Dirty) }

// Option configures a World at construction time.
type Option func(*World)

// WithStart places the robot at room pos instead of room 0.
func WithStart(pos int) Option {
	return func(w *World) { w.start.Pos = pos }
}

// WithDirty sets the initial dirt mask; by default every room is dirty.
func WithDirty(mask uint8) Option {
	return func(w *World) { w.start.Dirty = mask; w.maskSet = true }
}

// WithHeuristicWeight scales the dirt-count heuristic by weight.
// Weights above 1 make the heuristic an inadmissible overestimate,
// useful for studying how astar degrades. Non-positive weights are
// rejected at construction.
func WithHeuristicWeight(weight float64) Option {
	return func(w *World) { w.hWeight = weight }
}

// World is a linear row of rooms implementing search.Informed over
// State and Action. The zero value is not usable; use New.
type World struct {
	rooms   int
	start   State
	hWeight float64
	maskSet bool
}

// New builds a vacuum world with the given number of rooms. Defaults:
// robot in room 0, every room dirty, heuristic weight 1.
func New(rooms int, opts ...Option) (*World, error) {
	if rooms < 1 || rooms > MaxRooms {
		return nil, fmt.Errorf("%w: got %d", ErrBadRoomCount, rooms)
	}
	w := &World{rooms: rooms, hWeight: 1}
	for _, opt := range opts {
		opt(w)
	}
	if !w.maskSet {
		w.start.Dirty = uint8(1<<rooms) - 1
	}
	if w.start.Pos < 0 || w.start.Pos >= rooms {
		return nil, fmt.Errorf("%w: got %d of %d rooms", ErrBadStart, w.start.Pos, rooms)
	}
	if w.hWeight <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrBadWeight, w.hWeight)
	}
	// Ignore dirt bits beyond the last room.
	w.start.Dirty &= uint8(1<<rooms) - 1

	return w, nil
}

// Rooms returns the row length.
func (w *World) Rooms() int { return w.rooms }

// Start returns the initial state.
func (w *World) Start() State { return w.start }

// Actions returns [Left, Suck, Right] in every state, including goals.
func (w *World) Actions(State) []Action { return actions }

// Apply performs a in s. Left and Right clamp at the ends of the row;
// Suck clears the dirt bit of the current room. Unknown actions are a
// caller error and panic.
func (w *World) Apply(s State, a Action) State {
	switch a {
	case Left:
		if s.Pos > 0 {
			s.Pos--
		}
	case Right:
		if s.Pos < w.rooms-1 {
			s.Pos++
		}
	case Suck:
		s.Dirty &^= 1 << s.Pos
	default:
		panic(fmt.Sprintf("vacuum: unknown action %q", a))
	}

	return s
}

// IsGoal reports whether every room is clean.
func (w *World) IsGoal(s State) bool { return s.Dirty == 0 }

// Cost returns 1 for every action.
func (w *World) Cost(State, Action) float64 { return 1 }

// Heuristic estimates remaining cost as weight × dirty-room count.
func (w *World) Heuristic(s State) float64 {
	return w.hWeight * float64(s.DirtyCount())
}
