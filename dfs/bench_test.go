package dfs_test

import (
	"testing"

	"github.com/katalvlaran/searchkit/dfs"
	"github.com/katalvlaran/searchkit/vacuum"
)

// BenchmarkDFS_Vacuum measures depth-first search over an N-room
// vacuum world under the default depth bound.
func BenchmarkDFS_Vacuum(b *testing.B) {
	const rooms = 8
	w, err := vacuum.New(rooms)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err = dfs.DFS[vacuum.State, vacuum.Action](w); err != nil {
			b.Fatal(err)
		}
	}
}
