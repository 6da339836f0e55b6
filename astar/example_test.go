package astar_test

import (
	"fmt"

	"github.com/katalvlaran/searchkit/astar"
	"github.com/katalvlaran/searchkit/npuzzle"
	"github.com/katalvlaran/searchkit/vacuum"
)

// ExampleAStar solves the canonical two-room vacuum world with the
// dirt-count heuristic and reports how many distinct states the search
// generated.
func ExampleAStar() {
	w, _ := vacuum.New(2)

	res, _ := astar.AStar[vacuum.State, vacuum.Action](w)
	fmt.Println("plan:", res.Plan)
	fmt.Println("cost:", res.Cost)
	fmt.Println("visited:", res.Visited)
	// Output:
	// plan: [Suck Right Suck]
	// cost: 3
	// visited: 7
}

// ExampleAStar_puzzle solves an 8-puzzle one slide away from the goal.
func ExampleAStar_puzzle() {
	start := npuzzle.State{Board: [9]uint8{1, 2, 3, 4, 5, 6, 7, 0, 8}}
	p, _ := npuzzle.New(start)

	res, _ := astar.AStar[npuzzle.State, npuzzle.Move](p)
	fmt.Println("plan:", res.Plan)
	// Output:
	// plan: [Right]
}
