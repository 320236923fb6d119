package ioutil

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/subtraj/trajectory"
)

// ScannerLoader is the default TrajectoryLoader, built on bufio.Scanner:
// robust to ragged whitespace, one allocation-bearing strings.Fields
// call per line.
type ScannerLoader struct {
	DirPrefix string
}

// LoadTrajectory implements TrajectoryLoader.
func (l ScannerLoader) LoadTrajectory(path string, id int) (*trajectory.Trajectory, error) {
	f, err := os.Open(l.DirPrefix + path)
	if err != nil {
		return nil, fmt.Errorf("ioutil: open %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !sc.Scan() {
		return nil, fmt.Errorf("ioutil: %s: %w", path, ErrEmptyFile)
	}

	var raw [][2]float64
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 2 {
			continue
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("ioutil: %s: %w", path, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("ioutil: %s: %w", path, err)
		}
		raw = append(raw, [2]float64{x, y})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ioutil: read %s: %w", path, err)
	}

	return trajectory.New(path, id, raw)
}

// FastLoader is the --fast-io TrajectoryLoader: a bufio.Reader with a
// hand-rolled two-float-per-line tokenizer, avoiding strings.Fields'
// per-line slice allocation.
type FastLoader struct {
	DirPrefix string
}

// LoadTrajectory implements TrajectoryLoader.
func (l FastLoader) LoadTrajectory(path string, id int) (*trajectory.Trajectory, error) {
	f, err := os.Open(l.DirPrefix + path)
	if err != nil {
		return nil, fmt.Errorf("ioutil: open %s: %w", path, err)
	}
	defer f.Close()

	r := bufio.NewReaderSize(f, 5*1024*1024)

	if _, err := r.ReadSlice('\n'); err != nil {
		return nil, fmt.Errorf("ioutil: %s: %w", path, ErrEmptyFile)
	}

	var raw [][2]float64
	for {
		line, err := r.ReadSlice('\n')
		if len(line) > 0 {
			x, y, ok := parseFirstTwoFloats(line)
			if ok {
				raw = append(raw, [2]float64{x, y})
			}
		}
		if err != nil {
			break
		}
	}

	return trajectory.New(path, id, raw)
}

// parseFirstTwoFloats extracts the first two whitespace-separated
// float tokens from line, ignoring anything after. Returns ok=false
// for a blank or malformed line rather than erroring; such lines are
// skipped.
func parseFirstTwoFloats(line []byte) (x, y float64, ok bool) {
	s := strings.TrimSpace(string(line))
	if s == "" {
		return 0, 0, false
	}
	space := strings.IndexAny(s, " \t\r\v\f")
	if space < 0 {
		return 0, 0, false
	}
	xv, err := strconv.ParseFloat(s[:space], 64)
	if err != nil {
		return 0, 0, false
	}
	rest := strings.TrimSpace(s[space+1:])
	if sp := strings.IndexAny(rest, " \t\r\v\f"); sp >= 0 {
		rest = rest[:sp]
	}
	yv, err := strconv.ParseFloat(rest, 64)
	if err != nil {
		return 0, 0, false
	}

	return xv, yv, true
}
