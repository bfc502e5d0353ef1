// Package matcher implements the pattern matchers of the strength
// estimator: ranked-dictionary lookup (forward and reversed),
// leet-speak substitution, keyboard runs, repeats, sequences, generic
// regex patterns, and dates. The factory assembles the default set and
// adds per-request user-input matchers.
//
// All matchers share one contract: given a password they return every
// candidate match they can explain, each with its span, token, and
// entropy estimate. Overlap between candidates is fine; the scoring
// engine picks the cheapest non-overlapping cover.
package matcher

import (
	"unicode"

	"passrank/internal/match"
)

// Matcher finds candidate matches in a password.
type Matcher interface {
	MatchPassword(password string) []match.Match
}

// lowerRunes returns the password as runes alongside a per-rune
// lowercased copy. Lowercasing rune by rune keeps the two slices
// index-aligned.
func lowerRunes(password string) (runes, lower []rune) {
	runes = []rune(password)
	lower = make([]rune, len(runes))
	for i, r := range runes {
		lower[i] = unicode.ToLower(r)
	}
	return runes, lower
}
