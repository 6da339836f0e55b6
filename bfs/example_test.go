package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/searchkit/bfs"
	"github.com/katalvlaran/searchkit/vacuum"
)

// ExampleBFS demonstrates solving the two-room vacuum world: the robot
// starts in room 0 with both rooms dirty and must clean everything.
func ExampleBFS() {
	w, _ := vacuum.New(2)

	res, _ := bfs.BFS[vacuum.State, vacuum.Action](w)
	fmt.Println("found:", res.Found)
	fmt.Println("plan:", res.Plan)
	// Output:
	// found: true
	// plan: [Suck Right Suck]
}

// ExampleBFS_noPlan shows that an unreachable goal is an ordinary
// result, not an error: cleaning three rooms needs five actions, so a
// depth limit of two leaves no plan to find.
func ExampleBFS_noPlan() {
	w, _ := vacuum.New(3)

	// With MaxDepth 2 the 3-room world cannot be fully cleaned.
	res, err := bfs.BFS[vacuum.State, vacuum.Action](w, bfs.WithMaxDepth(2))
	fmt.Println("err:", err)
	fmt.Println("found:", res.Found)
	// Output:
	// err: <nil>
	// found: false
}
