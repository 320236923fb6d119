package ioutil

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
)

// FileQueryParser implements QueryParser by reading whitespace-separated
// (trajectory filename, delta) token pairs, numbering queries by pair
// order. Pairs can span or share lines freely. Reading stops at the
// first missing or non-numeric delta token rather than erroring, so a
// trailing unpaired filename is silently ignored.
type FileQueryParser struct{}

// ParseQueryFile implements QueryParser.
func (FileQueryParser) ParseQueryFile(path string) ([]Query, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ioutil: open %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Split(bufio.ScanWords)

	var queries []Query
	number := 0
	for sc.Scan() {
		name := sc.Text()
		if !sc.Scan() {
			break
		}
		delta, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			break
		}
		queries = append(queries, Query{TrajectoryFilename: name, Delta: delta, Number: number})
		number++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ioutil: read %s: %w", path, err)
	}

	return queries, nil
}
