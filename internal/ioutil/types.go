package ioutil

import "github.com/katalvlaran/subtraj/trajectory"

// Query is one (filename, delta) pair of a query file: the trajectory to
// load and solve, the decision-Fréchet threshold to solve it at, and its
// position in the query file (used to name the result-NNNNN.txt output).
type Query struct {
	TrajectoryFilename string
	Delta              float64
	Number             int
}

// TrajectoryLoader loads a trajectory's vertices from disk and builds a
// ready-to-use trajectory.Trajectory. id is the dataset slot (pass a
// negative number for a query trajectory that is not part of the
// dataset).
type TrajectoryLoader interface {
	LoadTrajectory(path string, id int) (*trajectory.Trajectory, error)
}

// DatasetParser reads a dataset file: one trajectory filename per
// whitespace-separated token.
type DatasetParser interface {
	ParseDatasetFile(path string) ([]string, error)
}

// QueryParser reads a query file: whitespace-separated
// (trajectory filename, delta) token pairs.
type QueryParser interface {
	ParseQueryFile(path string) ([]Query, error)
}

// ResultWriter persists one query's matches.
type ResultWriter interface {
	WriteResult(queryIndex int, names []string) error
}
