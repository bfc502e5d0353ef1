package matcher

import (
	"math"
	"regexp"

	"passrank/internal/entropymath"
	"passrank/internal/match"
)

// RegexMatcher is a generic matcher configured with a pattern, the
// cardinality of the character space it draws from, and whether that
// cardinality applies per character or per match.
type RegexMatcher struct {
	name        string
	re          *regexp.Regexp
	cardinality int
	perChar     bool
}

// NewRegex builds a regex matcher. The pattern must compile; the
// factory only instantiates fixed patterns.
func NewRegex(name, pattern string, cardinality int, perChar bool) *RegexMatcher {
	return &RegexMatcher{
		name:        name,
		re:          regexp.MustCompile(pattern),
		cardinality: cardinality,
		perChar:     perChar,
	}
}

// NewDigitsRegex matches runs of three or more digits, scored per
// character.
func NewDigitsRegex() *RegexMatcher {
	return NewRegex("digits", `\d{3,}`, 10, true)
}

// NewYearRegex matches plausible recent years, scored per match. The
// pattern is frozen; widening it shifts established scores.
func NewYearRegex() *RegexMatcher {
	return NewRegex("year", `19\d\d|200\d|201\d`, 119, false)
}

// MatchPassword implements Matcher.
func (m *RegexMatcher) MatchPassword(password string) []match.Match {
	indices := m.re.FindAllStringIndex(password, -1)
	if indices == nil {
		return nil
	}

	byteToRune := runeOffsets(password)
	results := make([]match.Match, 0, len(indices))
	for _, span := range indices {
		i := byteToRune[span[0]]
		j := byteToRune[span[1]] - 1
		token := password[span[0]:span[1]]

		entropy := entropymath.Log2(float64(m.cardinality))
		if m.perChar {
			entropy = entropymath.Log2(math.Pow(float64(m.cardinality), float64(j-i+1)))
		}
		results = append(results, &match.RegexMatch{
			Base: match.Base{
				I:       i,
				J:       j,
				Token:   token,
				Entropy: entropy,
			},
			Name: m.name,
		})
	}
	return results
}

// runeOffsets maps each byte offset of s (plus the end offset) to its
// rune index, so regexp byte spans can address the rune-indexed match
// contract.
func runeOffsets(s string) map[int]int {
	offsets := make(map[int]int, len(s)+1)
	n := 0
	for b := range s {
		offsets[b] = n
		n++
	}
	offsets[len(s)] = n
	return offsets
}
