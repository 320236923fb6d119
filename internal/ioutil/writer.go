package ioutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileResultWriter implements ResultWriter by writing one
// result-NNNNN.txt file per query under Dir (5-digit zero-padded query
// number), one matching trajectory name per line.
type FileResultWriter struct {
	Dir string
}

// WriteResult implements ResultWriter.
func (w FileResultWriter) WriteResult(queryIndex int, names []string) error {
	path := filepath.Join(w.Dir, fmt.Sprintf("result-%05d.txt", queryIndex))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ioutil: create %s: %w", path, err)
	}
	defer f.Close()

	for _, name := range names {
		if _, err := fmt.Fprintln(f, name); err != nil {
			return fmt.Errorf("ioutil: write %s: %w", path, err)
		}
	}

	return nil
}
