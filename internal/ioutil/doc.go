// Package ioutil implements the thin file-format collaborators of the
// pipeline: loading a trajectory's vertices, parsing a dataset file
// (whitespace-separated trajectory filenames) and a query file
// (whitespace-separated "<trajectory filename> <delta>" token pairs),
// and writing a query's matches to a result-NNNNN.txt file. All four
// are interfaces so cmd/subtraj can swap implementations without
// touching the pipeline.
//
// Two TrajectoryLoader implementations are provided: ScannerLoader (a
// bufio.Scanner-based reader, the default) and FastLoader (a
// bufio.Reader-based reader that tokenizes each line by hand to avoid
// the allocation overhead of strings.Fields). Both skip the file's
// first line as a header, then read "x y ..." per remaining line,
// keeping only the first two fields; duplicate-vertex dropping and the
// "too few vertices" check live in trajectory.New, not here.
package ioutil
