package matcher

import (
	"passrank/internal/entropymath"
	"passrank/internal/match"
)

// Candidate sequences. The digit sequence carries the historical
// trailing zero; lookups take the first occurrence.
var sequences = []struct {
	name  string
	chars string
}{
	{"lower", "abcdefghijklmnopqrstuvwxyz"},
	{"upper", "ABCDEFGHIJKLMNOPQRSTUVWXYZ"},
	{"digits", "01234567890"},
}

// SequenceMatcher finds ascending and descending runs like "abcdef",
// "FEDCBA" or "4567".
type SequenceMatcher struct{}

// NewSequence returns a sequence matcher.
func NewSequence() *SequenceMatcher {
	return &SequenceMatcher{}
}

// MatchPassword implements Matcher.
func (m *SequenceMatcher) MatchPassword(password string) []match.Match {
	runes := []rune(password)
	var results []match.Match

	i := 0
	for i < len(runes)-1 {
		runLen, name, size, ascending := runAt(runes, i)
		if runLen > 2 {
			token := string(runes[i : i+runLen])
			results = append(results, &match.SequenceMatch{
				Base: match.Base{
					I:       i,
					J:       i + runLen - 1,
					Token:   token,
					Entropy: sequenceEntropy(token, ascending),
				},
				SequenceName: name,
				SequenceSize: size,
				Ascending:    ascending,
			})
			// Advance to the run end so overlapping slices of the same
			// run are not emitted again.
			i += runLen
			continue
		}
		i++
	}
	return results
}

// runAt finds the longest sequence run starting at position i: the
// first sequence (or its reversal) in which each next character sits
// exactly one position after the current one.
func runAt(runes []rune, i int) (runLen int, name string, size int, ascending bool) {
	for _, seq := range sequences {
		for _, asc := range []bool{true, false} {
			chars := []rune(seq.chars)
			if !asc {
				chars = reverseRunes(chars)
			}
			p := indexOf(chars, runes[i])
			if p < 0 {
				continue
			}
			j := i
			for j+1 < len(runes) && indexOf(chars, runes[j+1]) == p+1 {
				j++
				p++
			}
			if j > i {
				return j - i + 1, seq.name, len(chars), asc
			}
		}
	}
	return 1, "", 0, false
}

// sequenceEntropy scores a run: a cheap base for the "obvious"
// starting points 'a' and '1', the alphabet size otherwise, one extra
// bit for descending, plus the length.
func sequenceEntropy(token string, ascending bool) float64 {
	runes := []rune(token)
	first := runes[0]

	var base float64
	switch {
	case first == 'a' || first == '1':
		base = 1
	case first >= '0' && first <= '9':
		base = entropymath.Log2(10)
	case first >= 'a' && first <= 'z':
		base = entropymath.Log2(26)
	default:
		base = entropymath.Log2(26) + 1
	}
	if !ascending {
		base++
	}
	return base + entropymath.Log2(float64(len(runes)))
}

func indexOf(chars []rune, r rune) int {
	for i, c := range chars {
		if c == r {
			return i
		}
	}
	return -1
}

func reverseRunes(chars []rune) []rune {
	out := make([]rune, len(chars))
	for i, c := range chars {
		out[len(chars)-1-i] = c
	}
	return out
}
