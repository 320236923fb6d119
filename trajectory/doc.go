// Package trajectory defines the Trajectory record shared by every stage
// of the pipeline: loaded originals, their Agarwal simplification
// ladders, and the freespace "portal" shortcuts collected while building
// those ladders.
//
// A Trajectory doubles as both "original" and "simplification": a
// simplification is simply a Trajectory whose Source field points back
// (non-owning) at the original trajectory its SourceIndex refers to. The
// owning container is always the parent Trajectory's Simplifications
// slice, or the dataset slice for originals — there is no cyclic
// ownership graph, only that back-reference.
package trajectory
