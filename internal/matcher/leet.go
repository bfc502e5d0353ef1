package matcher

import (
	"sort"
	"unicode"

	"passrank/internal/entropymath"
	"passrank/internal/match"
)

// leetTable maps each base letter to the leet glyphs that can stand in
// for it. The table is fixed and ordered so enumeration is
// deterministic.
var leetTable = []struct {
	base  rune
	leets string
}{
	{'a', "4@"},
	{'b', "86"},
	{'c', "({[<"},
	{'e', "3"},
	{'g', "69"},
	{'i', "1!|"},
	{'l', "1|7"},
	{'o', "0"},
	{'q', "9"},
	{'s', "$5"},
	{'t', "+7"},
	{'x', "%"},
	{'z', "2"},
}

// LeetMatcher translates leet-speak passwords back to letters and
// re-runs the dictionary matchers over every translation.
//
// A glyph like '1' can stand for 'i' or 'l', so the matcher enumerates
// every distinct mapping from the leet glyphs present in the password
// to a single base letter, and tries each one. The enumeration is
// combinatorial in the number of distinct leet glyphs; passwords made
// entirely of substitution glyphs are the hot path.
type LeetMatcher struct {
	dictMatchers []*DictionaryMatcher
}

// NewLeet returns a leet matcher that re-scores hits from the given
// dictionary matchers.
func NewLeet(dictMatchers []*DictionaryMatcher) *LeetMatcher {
	return &LeetMatcher{dictMatchers: dictMatchers}
}

// MatchPassword implements Matcher.
func (m *LeetMatcher) MatchPassword(password string) []match.Match {
	runes := []rune(password)

	var results []match.Match
	var lastI, lastJ = -1, -1
	lastToken := ""

	for _, mapping := range enumerateLeetMaps(runes) {
		if len(mapping) == 0 {
			continue
		}
		translated := translate(runes, mapping)
		for _, dm := range m.dictMatchers {
			for _, hit := range dm.MatchPassword(translated) {
				d := hit.(*match.DictionaryMatch)
				token := string(runes[d.I : d.J+1])

				used := usedSubs(mapping, token)
				if len(used) == 0 {
					// The hit does not touch any substituted glyph;
					// the plain dictionary matcher already found it.
					continue
				}
				if d.I == lastI && d.J == lastJ && token == lastToken {
					// A different mapping produced the same span with
					// the same glyphs actually used.
					continue
				}
				lastI, lastJ, lastToken = d.I, d.J, token

				results = append(results, newLeetMatch(d, token, used))
			}
		}
	}
	return results
}

// enumerateLeetMaps yields every distinct mapping from the leet glyphs
// present in the password back to a single base letter. Starting from
// the empty mapping, each (base, glyph) pair either extends a mapping
// without an entry for the glyph, or forks a copy of one that has.
func enumerateLeetMaps(runes []rune) []map[rune]rune {
	present := make(map[rune]bool, len(runes))
	for _, r := range runes {
		present[r] = true
	}

	maps := []map[rune]rune{{}}
	for _, entry := range leetTable {
		for _, leet := range entry.leets {
			if !present[leet] {
				continue
			}
			n := len(maps)
			for i := 0; i < n; i++ {
				if _, taken := maps[i][leet]; !taken {
					maps[i][leet] = entry.base
					continue
				}
				fork := make(map[rune]rune, len(maps[i])+1)
				for k, v := range maps[i] {
					fork[k] = v
				}
				fork[leet] = entry.base
				maps = append(maps, fork)
			}
		}
	}
	return maps
}

// translate applies a substitution mapping to the password.
func translate(runes []rune, mapping map[rune]rune) string {
	out := make([]rune, len(runes))
	for i, r := range runes {
		if base, ok := mapping[r]; ok {
			out[i] = base
		} else {
			out[i] = r
		}
	}
	return string(out)
}

// usedSubs filters a mapping down to the glyphs that actually occur in
// the matched token.
func usedSubs(mapping map[rune]rune, token string) map[rune]rune {
	used := make(map[rune]rune)
	for _, r := range token {
		if base, ok := mapping[r]; ok {
			used[r] = base
		}
	}
	return used
}

// newLeetMatch re-scores a dictionary hit found through substitutions.
func newLeetMatch(d *match.DictionaryMatch, token string, subs map[rune]rune) *match.LeetMatch {
	leetBits := leetEntropy(token, subs)
	upper := entropymath.UppercaseEntropy(token)

	lm := &match.LeetMatch{
		DictionaryMatch: *d,
		Subs:            subs,
		LeetEntropy:     leetBits,
	}
	lm.Token = token
	// Rebase the capitalization bits onto the original glyph string,
	// then add the substitution bits.
	lm.Entropy = d.Entropy - d.UppercaseEntropy + upper + leetBits
	lm.UppercaseEntropy = upper
	return lm
}

// leetEntropy estimates the bits contributed by the substitutions.
//
// The subbed/unsubbed counters deliberately accumulate across
// substitution pairs instead of resetting. Published scores depend on
// the accumulated counts; keep them when touching this loop.
func leetEntropy(token string, subs map[rune]rune) float64 {
	glyphs := make([]rune, 0, len(subs))
	for g := range subs {
		glyphs = append(glyphs, g)
	}
	sort.Slice(glyphs, func(a, b int) bool { return glyphs[a] < glyphs[b] })

	possibilities := 0.0
	subbed, unsubbed := 0, 0
	for _, g := range glyphs {
		base := subs[g]
		for _, r := range token {
			if r == g {
				subbed++
			} else if unicode.ToLower(r) == base {
				unsubbed++
			}
		}
		limit := subbed
		if unsubbed < limit {
			limit = unsubbed
		}
		for i := 0; i <= limit+1; i++ {
			possibilities += entropymath.Binomial(subbed+unsubbed, i)
		}
	}

	bits := entropymath.Log2(possibilities)
	if bits < 1 {
		return 1
	}
	return bits
}
