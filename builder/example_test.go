package builder_test

import (
	"fmt"

	"github.com/katalvlaran/meteobn/builder"
)

// ExampleChain builds a chain whose states never change along a row.
func ExampleChain() {
	d, _ := builder.Chain(2, 3, 2, 1, builder.WithSeed(1))
	fmt.Println(d.Columns, d.Rows[0][0] == d.Rows[0][2])
	// Output:
	// [X0 X1 X2] true
}
