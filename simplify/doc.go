// Package simplify implements the Agarwal and Progressive Agarwal
// trajectory simplifiers and the simplification-ladder builder that
// drives them at fixed vertex-count ratios.
//
// The plain Agarwal simplifier (Simplifier.Simplify) builds a
// simplification of an original trajectory directly and records no
// portals. The progressive variant (Simplifier.SimplifyProgressive)
// builds a simplification of an already-simplified parent while judging
// feasibility against the ultimate source trajectory, and records every
// probed (source, destination) pair as a Portal — this is the only path
// that populates a trajectory's shortcut map. Dataset ladders use the
// plain variant, so dataset trajectories carry no shortcuts; query
// ladders use the progressive variant at every level, and those
// shortcuts are the ones the decision-Fréchet solver jumps through.
package simplify
