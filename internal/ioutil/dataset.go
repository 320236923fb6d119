package ioutil

import (
	"bufio"
	"fmt"
	"os"
)

// FileDatasetParser implements DatasetParser by reading one trajectory
// filename per whitespace-separated token; tokens can span or share
// lines freely. Filenames are returned verbatim; any dataset-directory
// prefix is applied by the TrajectoryLoader, not here.
type FileDatasetParser struct{}

// ParseDatasetFile implements DatasetParser.
func (FileDatasetParser) ParseDatasetFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ioutil: open %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Split(bufio.ScanWords)

	var names []string
	for sc.Scan() {
		names = append(names, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ioutil: read %s: %w", path, err)
	}

	return names, nil
}
