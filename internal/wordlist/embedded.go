package wordlist

import (
	"embed"
	"fmt"
)

//go:embed data/*.txt
var embeddedLists embed.FS

// embeddedSource serves the word lists compiled into the binary.
type embeddedSource struct{}

// Embedded returns the Source backed by the built-in word lists.
func Embedded() Source {
	return embeddedSource{}
}

// Load implements Source.
func (embeddedSource) Load(name string) ([]string, error) {
	data, err := embeddedLists.ReadFile("data/" + name + ".txt")
	if err != nil {
		return nil, fmt.Errorf("no embedded dictionary %q: %w", name, err)
	}
	return splitLines(string(data)), nil
}
