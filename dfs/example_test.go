package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/meteobn/core"
	"github.com/katalvlaran/meteobn/dfs"
)

// ExampleTopologicalSort orders weather variables parents-first, breaking
// ties by column order.
func ExampleTopologicalSort() {
	g, _ := core.FromEdges([]string{"SLP", "DEWP", "TEMP"}, []core.Edge{
		{From: "TEMP", To: "SLP"},
	})
	order, _ := dfs.TopologicalSort(g, dfs.WithPriority([]string{"SLP", "DEWP", "TEMP"}))
	fmt.Println(order)
	// Output:
	// [TEMP SLP DEWP]
}

// ExampleDetectCycles explains why an edge list cannot form a network.
func ExampleDetectCycles() {
	has, cycles, _ := dfs.DetectCycles(nil, []core.Edge{
		{From: "MAX", To: "MIN"},
		{From: "MIN", To: "TEMP"},
		{From: "TEMP", To: "MAX"},
	})
	fmt.Println(has, cycles)
	// Output:
	// true [[MAX MIN TEMP MAX]]
}
