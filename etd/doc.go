// Package etd implements the equal-time-distance (ETD) evaluator: an
// upper bound on continuous Fréchet distance obtained by walking two
// polylines at proportional arc-length speed and tracking the worst
// pointwise separation encountered.
//
// ETD is the feasibility oracle for the Agarwal simplifiers (package
// simplify) and the cheapest of the four pruning stages in the query
// pipeline (package query).
package etd
