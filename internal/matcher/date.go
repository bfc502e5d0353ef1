package matcher

import (
	"regexp"
	"strconv"

	"passrank/internal/entropymath"
	"passrank/internal/match"
)

// Date bounds. Candidate years outside [dateMinYear, dateMaxYear] are
// rejected; candidates are ranked by distance from the reference year.
const (
	dateMinYear   = 1000
	dateMaxYear   = 2050
	referenceYear = 2017
	minYearSpace  = 10
)

// dateSplits maps a digit-substring length to the ways it can be cut
// into three integer fields: a split (k, l) means s[0:k], s[k:l],
// s[l:].
var dateSplits = map[int][][2]int{
	4: {{1, 2}, {2, 3}},
	5: {{1, 3}, {2, 3}},
	6: {{1, 2}, {2, 4}, {4, 5}},
	7: {{1, 3}, {2, 3}, {4, 5}, {4, 6}},
	8: {{2, 4}, {4, 6}},
}

// separatorDateRe recognizes day/month/year triples with a separator.
// Go's regexp has no backreferences, so equal separators are checked
// after the fact.
var separatorDateRe = regexp.MustCompile(
	`^(\d{1,4})([\s/\\_.-])(\d{1,2})([\s/\\_.-])(\d{1,4})$`)

// DateMatcher finds 4-8 digit and separator-delimited dates, keeping
// for each candidate substring the (day, month, year) reading whose
// year lies nearest the reference year.
type DateMatcher struct{}

// NewDate returns a date matcher.
func NewDate() *DateMatcher {
	return &DateMatcher{}
}

// dmy is a resolved day/month/year triple.
type dmy struct {
	day, month, year int
}

// MatchPassword implements Matcher.
func (m *DateMatcher) MatchPassword(password string) []match.Match {
	runes := []rune(password)
	var results []match.Match
	results = append(results, matchDatesWithoutSeparator(runes)...)
	results = append(results, matchDatesWithSeparator(runes)...)
	return pruneSubmatches(results)
}

// matchDatesWithoutSeparator scans every all-digit substring of length
// 4-8 and tries each split for that length.
func matchDatesWithoutSeparator(runes []rune) []match.Match {
	var results []match.Match
	for i := 0; i <= len(runes)-4; i++ {
		for length := 4; length <= 8 && i+length <= len(runes); length++ {
			sub := runes[i : i+length]
			if !allDigits(sub) {
				continue
			}

			var best *dmy
			bestMetric := 0
			for _, split := range dateSplits[length] {
				k, l := split[0], split[1]
				a := atoiRunes(sub[:k])
				b := atoiRunes(sub[k:l])
				c := atoiRunes(sub[l:])
				candidate, ok := mapToDMY(a, b, c)
				if !ok {
					continue
				}
				metric := abs(candidate.year - referenceYear)
				if best == nil || metric < bestMetric {
					d := candidate
					best = &d
					bestMetric = metric
				}
			}
			if best == nil {
				continue
			}
			results = append(results, newDateMatch(i, i+length-1, string(sub), *best, ""))
		}
	}
	return results
}

// matchDatesWithSeparator scans substrings of length 6-10 for
// separator-delimited triples with matching separators.
func matchDatesWithSeparator(runes []rune) []match.Match {
	var results []match.Match
	for i := 0; i <= len(runes)-6; i++ {
		for length := 6; length <= 10 && i+length <= len(runes); length++ {
			sub := string(runes[i : i+length])
			groups := separatorDateRe.FindStringSubmatch(sub)
			if groups == nil || groups[2] != groups[4] {
				continue
			}
			a, _ := strconv.Atoi(groups[1])
			b, _ := strconv.Atoi(groups[3])
			c, _ := strconv.Atoi(groups[5])
			candidate, ok := mapToDMY(a, b, c)
			if !ok {
				continue
			}
			results = append(results, newDateMatch(i, i+length-1, sub, candidate, groups[2]))
		}
	}
	return results
}

func newDateMatch(i, j int, token string, d dmy, separator string) *match.DateMatch {
	yearSpace := abs(d.year - referenceYear)
	if yearSpace < minYearSpace {
		yearSpace = minYearSpace
	}
	entropy := entropymath.Log2(float64(yearSpace) * 365)
	if separator != "" {
		entropy += 2
	}
	return &match.DateMatch{
		Base: match.Base{
			I:       i,
			J:       j,
			Token:   token,
			Entropy: entropy,
		},
		Year:      d.year,
		Month:     d.month,
		Day:       d.day,
		Separator: separator,
	}
}

// mapToDMY decides whether the integer triple (a, b, c) reads as a
// plausible date, trying the year at either end and two-digit year
// expansion as a last resort.
func mapToDMY(a, b, c int) (dmy, bool) {
	// The middle field can only be a day or a month.
	if b > 31 || b <= 0 {
		return dmy{}, false
	}

	var over31, over12, under1 int
	for _, v := range [3]int{a, b, c} {
		if (v > 99 && v < dateMinYear) || v > dateMaxYear {
			return dmy{}, false
		}
		if v > 31 {
			over31++
		}
		if v > 12 {
			over12++
		}
		if v <= 0 {
			under1++
		}
	}
	if over31 >= 2 || over12 == 3 || under1 >= 2 {
		return dmy{}, false
	}

	yearSplits := [2]struct {
		year int
		rest [2]int
	}{
		{c, [2]int{a, b}},
		{a, [2]int{b, c}},
	}

	for _, split := range yearSplits {
		if split.year < dateMinYear || split.year > dateMaxYear {
			continue
		}
		if d, m, ok := mapToDM(split.rest); ok {
			return dmy{day: d, month: m, year: split.year}, true
		}
		// A full four-digit year whose remaining fields make no
		// day/month is not a date at all.
		return dmy{}, false
	}

	for _, split := range yearSplits {
		if d, m, ok := mapToDM(split.rest); ok {
			return dmy{day: d, month: m, year: expandYear(split.year)}, true
		}
	}
	return dmy{}, false
}

// mapToDM reads the pair as day/month in either order.
func mapToDM(rest [2]int) (day, month int, ok bool) {
	for _, pair := range [2][2]int{rest, {rest[1], rest[0]}} {
		d, m := pair[0], pair[1]
		if d >= 1 && d <= 31 && m >= 1 && m <= 12 {
			return d, m, true
		}
	}
	return 0, 0, false
}

// expandYear widens a two-digit year, pivoting at 50.
func expandYear(y int) int {
	if y > 50 {
		return y + 1900
	}
	return y + 2000
}

// pruneSubmatches drops any match lying strictly inside another.
func pruneSubmatches(matches []match.Match) []match.Match {
	kept := matches[:0]
	for _, m := range matches {
		mb := m.Common()
		contained := false
		for _, o := range matches {
			ob := o.Common()
			if ob.I <= mb.I && ob.J >= mb.J && (ob.I != mb.I || ob.J != mb.J) {
				contained = true
				break
			}
		}
		if !contained {
			kept = append(kept, m)
		}
	}
	return kept
}

func allDigits(runes []rune) bool {
	for _, r := range runes {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func atoiRunes(runes []rune) int {
	n := 0
	for _, r := range runes {
		n = n*10 + int(r-'0')
	}
	return n
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
