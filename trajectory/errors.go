package trajectory

import "errors"

// Sentinel errors for the trajectory package.
var (
	// ErrDegenerate indicates a trajectory retained fewer than 2 vertices
	// after duplicate removal. The constructor reports it so callers can
	// decide: the dataset loader turns it into a skipped (nil) dataset
	// slot rather than a fatal error.
	ErrDegenerate = errors.New("trajectory: fewer than 2 vertices after deduplication")

	// ErrLevelOutOfRange indicates a requested simplification-ladder
	// level index is outside [0, len(Simplifications)).
	ErrLevelOutOfRange = errors.New("trajectory: simplification level out of range")
)
