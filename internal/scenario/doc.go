// Package scenario loads search scenarios from HCL files and runs them
// against the library's strategies.
//
// A scenario file holds any number of scenario blocks:
//
//	scenario "two_rooms" {
//	  problem   = "vacuum"
//	  strategy  = "astar"
//	  rooms     = 2
//	  heuristic = "dirt"
//	  weight    = 1
//	}
//
//	scenario "eight_puzzle" {
//	  problem   = "puzzle"
//	  strategy  = "astar"
//	  board     = [1, 2, 3, 4, 5, 6, 7, 0, 8]
//	  heuristic = "manhattan"
//	}
//
// Load decodes a file into Scenario values; Run builds the concrete
// problem, dispatches the requested strategy, and returns a Report
// with a unique run ID, the stringified plan, the visited-state count,
// and the wall-clock duration.
package scenario
