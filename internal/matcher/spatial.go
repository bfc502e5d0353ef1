package matcher

import (
	"math"

	"passrank/internal/entropymath"
	"passrank/internal/layout"
	"passrank/internal/match"
)

// SpatialMatcher finds runs of adjacent keys on the configured
// keyboard layouts: "qwerty", "zxcvfr", keypad swipes, and the like.
type SpatialMatcher struct {
	graphs []*layout.Graph
}

// NewSpatial returns a matcher over the given adjacency graphs.
func NewSpatial(graphs []*layout.Graph) *SpatialMatcher {
	return &SpatialMatcher{graphs: graphs}
}

// MatchPassword implements Matcher.
func (m *SpatialMatcher) MatchPassword(password string) []match.Match {
	runes := []rune(password)
	var results []match.Match
	for _, g := range m.graphs {
		results = append(results, matchGraph(runes, g)...)
	}
	return results
}

// matchGraph walks the password against one layout. A run extends as
// long as each next character is adjacent to the previous one; a run
// of length three or more becomes a match. No backtracking: the cursor
// jumps to the end of each attempted run.
func matchGraph(runes []rune, g *layout.Graph) []match.Match {
	var results []match.Match
	i := 0
	for i < len(runes)-1 {
		j := i + 1
		turns := 0
		shifted := 0
		lastDirection := -1

		for j < len(runes) {
			direction, isShifted, ok := g.Step(runes[j-1], runes[j])
			if !ok {
				break
			}
			if direction != lastDirection {
				turns++
				lastDirection = direction
			}
			if isShifted {
				shifted++
			}
			j++
		}

		if j-i > 2 {
			length := j - i
			results = append(results, &match.SpatialMatch{
				Base: match.Base{
					I:       i,
					J:       j - 1,
					Token:   string(runes[i:j]),
					Entropy: spatialEntropy(g, length, turns, shifted),
				},
				Graph:        g.Name(),
				Turns:        turns,
				ShiftedCount: shifted,
			})
		}
		i = j
	}
	return results
}

// spatialEntropy estimates the bits of a keyboard run: the number of
// runs of up to the same length with up to the same number of turns an
// attacker would enumerate, plus a shift-distribution term when any
// step was shifted.
func spatialEntropy(g *layout.Graph, length, turns, shifted int) float64 {
	s := float64(g.StartingPositions())
	d := g.AverageDegree()

	possibilities := 0.0
	for i := 2; i <= length; i++ {
		maxTurns := turns
		if i-1 < maxTurns {
			maxTurns = i - 1
		}
		for j := 1; j <= maxTurns; j++ {
			possibilities += s * math.Pow(d, float64(j)) * entropymath.Binomial(i-1, j-1)
		}
	}
	entropy := entropymath.Log2(possibilities)

	if shifted > 0 {
		unshifted := length - shifted
		limit := shifted
		if unshifted < limit {
			limit = unshifted
		}
		shiftPossibilities := 0.0
		for i := 0; i <= limit+1; i++ {
			shiftPossibilities += entropymath.Binomial(length, i)
		}
		entropy += entropymath.Log2(shiftPossibilities)
	}
	return entropy
}
