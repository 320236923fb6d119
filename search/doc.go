// Package search implements the double-and-search primitives shared by
// the Agarwal simplifiers: an exponential probe followed by binary
// refinement over an integer vertex range, and a bounded binary search
// over a real interval used to pick simplification epsilons.
//
// Predicates are plain Go closures rather than a bespoke callable type;
// the buffer mutations a predicate performs as a side effect (writing a
// tentative candidate vertex before testing it) are intentional, and a
// closure carries them naturally.
package search
