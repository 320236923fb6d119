package cdf_test

import (
	"fmt"

	"github.com/katalvlaran/subtraj/cdf"
	"github.com/katalvlaran/subtraj/trajectory"
)

// ExampleSolver_DecidePlain decides whether a zig-zag path stays within
// a leash of the straight segment it oscillates around. The peaks sit
// exactly 1 unit off the segment, so the decision flips between
// delta=0.9 and delta=1.1.
func ExampleSolver_DecidePlain() {
	zigzag, _ := trajectory.New("zigzag", 0, [][2]float64{
		{0, 0}, {1, 1}, {2, 0}, {3, 1}, {4, 0},
	})
	straight, _ := trajectory.New("straight", 1, [][2]float64{{0, 0}, {4, 0}})

	s := cdf.NewSolver()
	fmt.Println(s.DecidePlain(zigzag, straight, 0.9))
	fmt.Println(s.DecidePlain(zigzag, straight, 1.1))

	// Output:
	// false
	// true
}
