package search_test

import (
	"fmt"

	"github.com/katalvlaran/subtraj/search"
)

// ExampleIntDoubleSearch finds the largest index below a hidden
// threshold: the probe sequence grows exponentially past it, then a
// binary search pins down the boundary.
func ExampleIntDoubleSearch() {
	threshold := 37
	f := func(k int) bool { return k < threshold }

	fmt.Println(search.IntDoubleSearch(f, 0, 100, 2, 1))

	// Output:
	// 36
}
