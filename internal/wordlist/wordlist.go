// Package wordlist provides the ranked frequency dictionaries the
// dictionary matchers search, and the Source collaborator that loads
// them: embedded defaults, plain-text directories, or a compiled
// SQLite database.
//
// List format: UTF-8 text, one lowercase word per line, sorted by
// decreasing frequency. No header, no comments. Rank 1 is the most
// common word; duplicates keep their first (lowest) rank.
package wordlist

import (
	"fmt"
	"strings"
)

// Default dictionary names shipped with the engine, in factory order.
const (
	NamePasswords   = "passwords"
	NameEnglish     = "english_wikipedia"
	NameMaleNames   = "male_names"
	NameFemaleNames = "female_names"
	NameSurnames    = "surnames"
	NameUSTVAndFilm = "us_tv_and_film"
)

// DefaultNames lists the dictionaries the default matcher factory
// loads, in order.
func DefaultNames() []string {
	return []string{
		NamePasswords,
		NameEnglish,
		NameMaleNames,
		NameFemaleNames,
		NameSurnames,
		NameUSTVAndFilm,
	}
}

// Source yields the words of a named dictionary in decreasing
// frequency order. Implementations must return words lowercased.
type Source interface {
	Load(name string) ([]string, error)
}

// RankedDictionary maps each word of a frequency list to its rank.
type RankedDictionary struct {
	name  string
	ranks map[string]int
	size  int
}

// NewRanked builds a ranked dictionary from words in decreasing
// frequency order. The first word gets rank 1; a word seen twice keeps
// its first rank, and ranks stay gapless.
func NewRanked(name string, words []string) *RankedDictionary {
	d := &RankedDictionary{
		name:  name,
		ranks: make(map[string]int, len(words)),
	}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, dup := d.ranks[w]; dup {
			continue
		}
		d.size++
		d.ranks[w] = d.size
	}
	return d
}

// Name returns the dictionary name.
func (d *RankedDictionary) Name() string { return d.name }

// Len returns the number of distinct ranked words.
func (d *RankedDictionary) Len() int { return d.size }

// Rank returns the rank of word (which must already be lowercase) and
// whether the word is present.
func (d *RankedDictionary) Rank(word string) (int, bool) {
	r, ok := d.ranks[word]
	return r, ok
}

// LoadRanked loads a named list through src and ranks it.
func LoadRanked(src Source, name string) (*RankedDictionary, error) {
	words, err := src.Load(name)
	if err != nil {
		return nil, fmt.Errorf("load dictionary %q: %w", name, err)
	}
	return NewRanked(name, words), nil
}

// splitLines splits raw list text into words, dropping blank lines and
// surrounding whitespace.
func splitLines(data string) []string {
	lines := strings.Split(data, "\n")
	words := make([]string, 0, len(lines))
	for _, line := range lines {
		w := strings.TrimSpace(line)
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	return words
}
