// Package geom provides the 2D geometric primitives shared by every layer
// of the sub-trajectory similarity engine: points, a bounding-box
// accumulator, and the segment-point interval solver that underlies both
// the equal-time-distance evaluator and the free-space diagram used by
// the decision-Fréchet solver.
//
// Point and Interval are small, immutable-after-construction values;
// BoundingBox is a mutable accumulator (AddPoint, Merge) with no internal
// locking. Concurrency safety for the structures built on top of
// them (trajectory, spatialhash) is documented in those packages.
package geom
