// Package query wires the four pruning stages that decide, for a query
// trajectory and distance threshold, which dataset trajectories are
// within that threshold under the continuous Fréchet distance:
//
//  1. a spatial-hash gate on start/end point proximity (spatialhash)
//  2. a simplification-ladder pass using triangle-inequality-tightened
//     CDF calls at increasing fidelity (simplify, cdf)
//  3. an equal-time-distance upper bound on the original polylines (etd)
//  4. a full decision-Fréchet computation as the final, conclusive step
//     (cdf)
//
// Each stage can resolve a candidate as a definite match, a definite
// non-match, or pass it on to the next stage; only the last stage is
// guaranteed conclusive.
package query
