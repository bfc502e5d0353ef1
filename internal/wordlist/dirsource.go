package wordlist

import (
	"fmt"
	"os"
	"path/filepath"
)

// dirSource loads <name>.txt files from a directory on disk.
type dirSource struct {
	dir string
}

// Dir returns a Source reading one-word-per-line .txt lists from dir.
func Dir(dir string) Source {
	return dirSource{dir: dir}
}

// Load implements Source.
func (s dirSource) Load(name string) ([]string, error) {
	path := filepath.Join(s.dir, name+".txt")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dictionary %q: %w", name, err)
	}
	return splitLines(string(data)), nil
}
