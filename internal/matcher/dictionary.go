package matcher

import (
	"passrank/internal/entropymath"
	"passrank/internal/match"
	"passrank/internal/wordlist"
)

// DictionaryMatcher finds every substring of the password present in
// one ranked word list. The scan is exhaustive over all (i, j) pairs,
// quadratic in the password length.
type DictionaryMatcher struct {
	dict *wordlist.RankedDictionary
}

// NewDictionary returns a matcher over the given ranked dictionary.
func NewDictionary(dict *wordlist.RankedDictionary) *DictionaryMatcher {
	return &DictionaryMatcher{dict: dict}
}

// DictionaryName returns the name of the underlying word list.
func (m *DictionaryMatcher) DictionaryName() string {
	return m.dict.Name()
}

// MatchPassword implements Matcher.
func (m *DictionaryMatcher) MatchPassword(password string) []match.Match {
	var results []match.Match
	runes, lower := lowerRunes(password)
	for i := 0; i < len(runes); i++ {
		for j := i; j < len(runes); j++ {
			word := string(lower[i : j+1])
			rank, ok := m.dict.Rank(word)
			if !ok {
				continue
			}
			results = append(results, m.makeMatch(i, j, string(runes[i:j+1]), word, rank))
		}
	}
	return results
}

// makeMatch builds a dictionary match for a hit at [i, j].
func (m *DictionaryMatcher) makeMatch(i, j int, token, word string, rank int) *match.DictionaryMatch {
	base := entropymath.Log2(float64(rank))
	upper := entropymath.UppercaseEntropy(token)
	return &match.DictionaryMatch{
		Base: match.Base{
			I:       i,
			J:       j,
			Token:   token,
			Entropy: base + upper,
		},
		MatchedWord:      word,
		Rank:             rank,
		DictionaryName:   m.dict.Name(),
		BaseEntropy:      base,
		UppercaseEntropy: upper,
	}
}

// ReverseDictionaryMatcher finds dictionary words typed backwards: it
// scans the reversed password and maps hits back onto the original
// indices. Reversal is worth one extra bit.
type ReverseDictionaryMatcher struct {
	inner *DictionaryMatcher
}

// NewReverseDictionary returns a reversed matcher over dict.
func NewReverseDictionary(dict *wordlist.RankedDictionary) *ReverseDictionaryMatcher {
	return &ReverseDictionaryMatcher{inner: NewDictionary(dict)}
}

// MatchPassword implements Matcher.
func (m *ReverseDictionaryMatcher) MatchPassword(password string) []match.Match {
	runes := []rune(password)
	n := len(runes)
	if n == 0 {
		return nil
	}
	reversed := make([]rune, n)
	for i, r := range runes {
		reversed[n-1-i] = r
	}

	hits := m.inner.MatchPassword(string(reversed))
	results := make([]match.Match, 0, len(hits))
	for _, h := range hits {
		dm := h.(*match.DictionaryMatch)
		i := n - 1 - dm.J
		j := n - 1 - dm.I
		token := string(runes[i : j+1])

		upper := entropymath.UppercaseEntropy(token)
		dm.I, dm.J = i, j
		dm.Token = token
		dm.Reversed = true
		dm.UppercaseEntropy = upper
		dm.Entropy = dm.BaseEntropy + upper + 1
		results = append(results, dm)
	}
	return results
}
