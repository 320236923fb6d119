// Package cdf decides the continuous (decision) Fréchet distance
// question "is dF(P, Q) <= delta?" by sweeping the free-space diagram
// column by column, tracking only the reachable row intervals at each
// column boundary via a pair of swapped queues.
//
// Solver.DecidePlain is the shortcut-free variant, kept for parity
// testing against ShortcutSolver.Decide, which is the one the query
// pipeline actually uses: it additionally consults P's shortcut map to
// jump the row cursor ahead whenever a freespace portal closes out a
// reachable run early.
package cdf
