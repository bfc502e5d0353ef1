// Package scoring turns a pile of candidate matches into the final
// strength estimate: a dynamic-programming pass selects the cheapest
// non-overlapping decomposition of the password, brute-force matches
// fill the gaps no matcher explained, and the resulting entropy is
// translated into guess counts, crack times, a 0-4 score, and
// feedback.
package scoring

import (
	"math"

	"passrank/internal/entropymath"
	"passrank/internal/match"
)

// Analysis is the outcome of the minimum-entropy search.
type Analysis struct {
	// Entropy is the total bits of the cheapest decomposition.
	Entropy float64

	// Sequence is the chosen decomposition: non-overlapping matches
	// covering the whole password, brute-force gap fill included. The
	// matches are clones owned by the analysis.
	Sequence []match.Match
}

// MinimumEntropySequence computes the lowest-entropy decomposition of
// password over the candidate matches.
//
// minEntropy[k] is the cheapest way to cover the prefix ending at rune
// k; each position starts from the brute-force bound (previous prefix
// plus one brute-forced character) and is then improved by every match
// ending at k.
func MinimumEntropySequence(password string, matches []match.Match) Analysis {
	runes := []rune(password)
	n := len(runes)
	if n == 0 {
		return Analysis{}
	}

	bf := entropymath.Cardinality(password)
	lgBf := entropymath.Log2(float64(bf))

	minEntropy := make([]float64, n)
	bestMatch := make([]match.Match, n)

	for k := 0; k < n; k++ {
		if k == 0 {
			minEntropy[k] = lgBf
		} else {
			minEntropy[k] = minEntropy[k-1] + lgBf
		}
		for _, m := range matches {
			mb := m.Common()
			if mb.J != k {
				continue
			}
			candidate := mb.Entropy
			if mb.I > 0 {
				candidate += minEntropy[mb.I-1]
			}
			if candidate < minEntropy[k] {
				minEntropy[k] = candidate
				bestMatch[k] = m
			}
		}
	}

	// Walk back through the best matches.
	var chosen []match.Match
	for k := n - 1; k >= 0; {
		if m := bestMatch[k]; m != nil {
			chosen = append(chosen, m)
			k = m.Common().I - 1
		} else {
			k--
		}
	}
	for left, right := 0, len(chosen)-1; left < right; left, right = left+1, right-1 {
		chosen[left], chosen[right] = chosen[right], chosen[left]
	}

	return Analysis{
		Entropy:  minEntropy[n-1],
		Sequence: fillGaps(runes, chosen, bf),
	}
}

// fillGaps clones the chosen matches and inserts brute-force matches
// over every stretch of the password none of them covers.
func fillGaps(runes []rune, chosen []match.Match, bf int) []match.Match {
	n := len(runes)
	if len(chosen) == 0 {
		return []match.Match{bruteforceMatch(runes, 0, n-1, bf)}
	}

	var sequence []match.Match
	prevEnd := -1
	for _, m := range chosen {
		mb := m.Common()
		if mb.I > prevEnd+1 {
			sequence = append(sequence, bruteforceMatch(runes, prevEnd+1, mb.I-1, bf))
		}
		sequence = append(sequence, m.Clone())
		prevEnd = mb.J
	}
	if prevEnd < n-1 {
		sequence = append(sequence, bruteforceMatch(runes, prevEnd+1, n-1, bf))
	}
	return sequence
}

// bruteforceMatch covers [i, j] at full alphabet cost. Overflow of the
// underlying power collapses to +Inf.
func bruteforceMatch(runes []rune, i, j, bf int) *match.BruteforceMatch {
	length := j - i + 1
	return &match.BruteforceMatch{
		Base: match.Base{
			I:       i,
			J:       j,
			Token:   string(runes[i : j+1]),
			Entropy: entropymath.Log2(math.Pow(float64(bf), float64(length))),
		},
		Cardinality: bf,
	}
}

// SelectFeedback picks the advice for a scored decomposition: nothing
// above score 2, otherwise the feedback of the longest match (earliest
// on ties).
func SelectFeedback(sequence []match.Match, score int) match.Feedback {
	if score > 2 {
		return match.Feedback{}
	}
	if len(sequence) == 0 {
		return match.Feedback{Suggestions: []string{match.SuggestFewWords}}
	}

	longest := sequence[0]
	for _, m := range sequence[1:] {
		if m.Common().Length() > longest.Common().Length() {
			longest = m
		}
	}
	return longest.Feedback(len(sequence) == 1, score)
}
