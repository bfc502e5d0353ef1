package matcher

import (
	"passrank/internal/entropymath"
	"passrank/internal/match"
)

// RepeatMatcher finds tokens built by repeating a unit, like "aaaa" or
// "abcabcabc".
//
// The search emulates the two classic backtracking passes over
// `(.+)\1+` — greedy and lazy — without backreferences (Go's regexp
// engine has none): at the leftmost position where any repeat starts,
// the greedy pass takes the largest repeating unit and the lazy pass
// the smallest, and whichever covers more of the password wins.
type RepeatMatcher struct{}

// NewRepeat returns a repeat matcher.
func NewRepeat() *RepeatMatcher {
	return &RepeatMatcher{}
}

// MatchPassword implements Matcher.
func (m *RepeatMatcher) MatchPassword(password string) []match.Match {
	runes := []rune(password)
	var results []match.Match

	pos := 0
	for pos < len(runes) {
		start, greedyUnit, lazyUnit := findRepeat(runes, pos)
		if start < 0 {
			break
		}

		greedyLen := greedyUnit * repeatCount(runes, start, greedyUnit)
		lazyLen := lazyUnit * repeatCount(runes, start, lazyUnit)

		var unit, total int
		if greedyLen > lazyLen {
			total = greedyLen
			// The greedy text may itself be a tighter repetition;
			// report the minimal unit that spans it exactly.
			unit = minimalUnit(runes[start : start+total])
		} else {
			unit = lazyUnit
			total = lazyLen
		}

		baseToken := string(runes[start : start+unit])
		count := total / unit
		results = append(results, &match.RepeatMatch{
			Base: match.Base{
				I:       start,
				J:       start + total - 1,
				Token:   string(runes[start : start+total]),
				Entropy: entropymath.Log2(float64(entropymath.Cardinality(baseToken) * count)),
			},
			BaseToken:   baseToken,
			RepeatCount: count,
		})
		pos = start + total
	}
	return results
}

// findRepeat locates the leftmost position at or after pos where some
// unit repeats at least twice. It returns that position together with
// the largest and smallest repeating unit lengths there, or -1 when no
// repeat remains.
func findRepeat(runes []rune, pos int) (start, greedyUnit, lazyUnit int) {
	for s := pos; s < len(runes)-1; s++ {
		greedy, lazy := 0, 0
		for u := (len(runes) - s) / 2; u >= 1; u-- {
			if !equalRunes(runes[s:s+u], runes[s+u:s+2*u]) {
				continue
			}
			if greedy == 0 {
				greedy = u
			}
			lazy = u
		}
		if greedy > 0 {
			return s, greedy, lazy
		}
	}
	return -1, 0, 0
}

// repeatCount counts how many consecutive copies of the unit of the
// given length sit at start.
func repeatCount(runes []rune, start, unit int) int {
	count := 1
	for {
		next := start + count*unit
		if next+unit > len(runes) || !equalRunes(runes[start:start+unit], runes[next:next+unit]) {
			return count
		}
		count++
	}
}

// minimalUnit returns the length of the smallest prefix unit that
// tiles text exactly, mirroring an anchored `^(.+?)\1+$` pass.
func minimalUnit(text []rune) int {
	n := len(text)
	for u := 1; u <= n/2; u++ {
		if n%u != 0 {
			continue
		}
		tiled := true
		for k := u; k < n; k += u {
			if !equalRunes(text[:u], text[k:k+u]) {
				tiled = false
				break
			}
		}
		if tiled {
			return u
		}
	}
	return n
}

func equalRunes(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
