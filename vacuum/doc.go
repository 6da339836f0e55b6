// Package vacuum implements the linear vacuum world: a robot in a row
// of rooms, each clean or dirty, that can move left, move right, or
// suck up the dirt where it stands.
//
// What:
//
//   - World: a search.Informed problem over State{Pos, Dirty}. Every
//     state offers the same ordered actions [Left, Suck, Right]; moves
//     clamp at the ends of the row, Suck cleans the current room, and
//     the goal is a fully clean row. Every action costs 1.
//
// Heuristic:
//
//   - h(s) = weight × (number of dirty rooms). With the default weight
//     of 1 it is admissible and consistent (each dirty room needs at
//     least one Suck). WithHeuristicWeight scales it; weights above 1
//     overestimate, which astar tolerates but no longer rewards with
//     optimality guarantees.
//
// Canonical two-room scenario (robot in room 0, both rooms dirty):
//
//	    [R ✸][ ✸]  →  Suck, Right, Suck
//
// Errors:
//
//   - ErrBadRoomCount  rooms outside [1, 8]
//   - ErrBadStart      start position outside the row
//   - ErrBadWeight     non-positive heuristic weight
package vacuum
