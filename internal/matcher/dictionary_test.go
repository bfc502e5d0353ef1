package matcher

import (
	"math"
	"testing"

	"passrank/internal/match"
	"passrank/internal/wordlist"
)

func testDict(name string, words ...string) *wordlist.RankedDictionary {
	return wordlist.NewRanked(name, words)
}

func dictionaryMatches(ms []match.Match) []*match.DictionaryMatch {
	out := make([]*match.DictionaryMatch, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.(*match.DictionaryMatch))
	}
	return out
}

// =============================================================================
// Tests for DictionaryMatcher
// =============================================================================

func TestDictionaryMatchWholeWord(t *testing.T) {
	m := NewDictionary(testDict("passwords", "password", "123456"))
	hits := dictionaryMatches(m.MatchPassword("password"))

	var whole *match.DictionaryMatch
	for _, h := range hits {
		if h.I == 0 && h.J == 7 {
			whole = h
		}
	}
	if whole == nil {
		t.Fatal("no whole-string match for 'password'")
	}
	if whole.MatchedWord != "password" || whole.Rank != 1 {
		t.Errorf("matched %q rank %d, want password rank 1", whole.MatchedWord, whole.Rank)
	}
	if whole.DictionaryName != "passwords" {
		t.Errorf("DictionaryName = %q", whole.DictionaryName)
	}
	// Rank 1, all lowercase: zero entropy.
	if whole.Entropy != 0 {
		t.Errorf("Entropy = %v, want 0", whole.Entropy)
	}
}

func TestDictionaryMatchSubstrings(t *testing.T) {
	m := NewDictionary(testDict("english", "pass", "word", "password"))
	hits := dictionaryMatches(m.MatchPassword("password"))

	spans := map[[2]int]string{}
	for _, h := range hits {
		spans[[2]int{h.I, h.J}] = h.MatchedWord
	}
	if spans[[2]int{0, 3}] != "pass" {
		t.Errorf("missing substring match 'pass': %v", spans)
	}
	if spans[[2]int{4, 7}] != "word" {
		t.Errorf("missing substring match 'word': %v", spans)
	}
	if spans[[2]int{0, 7}] != "password" {
		t.Errorf("missing whole match 'password': %v", spans)
	}
}

func TestDictionaryMatchCaseInsensitive(t *testing.T) {
	m := NewDictionary(testDict("passwords", "other", "password"))
	hits := dictionaryMatches(m.MatchPassword("PassWord"))

	if len(hits) != 1 {
		t.Fatalf("got %d matches, want 1", len(hits))
	}
	h := hits[0]
	if h.Token != "PassWord" || h.MatchedWord != "password" {
		t.Errorf("token %q matched %q", h.Token, h.MatchedWord)
	}
	// log2(2) rank bits plus the mixed-capitalization bits.
	if h.BaseEntropy != 1 {
		t.Errorf("BaseEntropy = %v, want 1", h.BaseEntropy)
	}
	if h.UppercaseEntropy <= 0 {
		t.Errorf("UppercaseEntropy = %v, want > 0", h.UppercaseEntropy)
	}
	if got := h.BaseEntropy + h.UppercaseEntropy; math.Abs(got-h.Entropy) > 1e-9 {
		t.Errorf("Entropy = %v, want %v", h.Entropy, got)
	}
}

func TestDictionaryMatchRankEntropy(t *testing.T) {
	m := NewDictionary(testDict("passwords", "first", "second", "third", "fourth"))
	hits := dictionaryMatches(m.MatchPassword("fourth"))

	if len(hits) != 1 {
		t.Fatalf("got %d matches, want 1", len(hits))
	}
	if got, want := hits[0].Entropy, math.Log2(4); math.Abs(got-want) > 1e-9 {
		t.Errorf("Entropy = %v, want log2(4) = %v", got, want)
	}
}

func TestDictionaryMatchNone(t *testing.T) {
	m := NewDictionary(testDict("passwords", "password"))
	if hits := m.MatchPassword("zzqqkjh"); len(hits) != 0 {
		t.Errorf("got %d matches, want 0", len(hits))
	}
	if hits := m.MatchPassword(""); len(hits) != 0 {
		t.Errorf("empty password: got %d matches, want 0", len(hits))
	}
}

// =============================================================================
// Tests for ReverseDictionaryMatcher
// =============================================================================

func TestReverseDictionaryMatch(t *testing.T) {
	m := NewReverseDictionary(testDict("passwords", "password"))
	hits := dictionaryMatches(m.MatchPassword("drowssap"))

	if len(hits) != 1 {
		t.Fatalf("got %d matches, want 1", len(hits))
	}
	h := hits[0]
	if !h.Reversed {
		t.Error("match not flagged reversed")
	}
	if h.Pattern() != match.PatternReverse {
		t.Errorf("Pattern() = %q, want %q", h.Pattern(), match.PatternReverse)
	}
	if h.I != 0 || h.J != 7 {
		t.Errorf("span [%d, %d], want [0, 7]", h.I, h.J)
	}
	if h.Token != "drowssap" || h.MatchedWord != "password" {
		t.Errorf("token %q matched %q", h.Token, h.MatchedWord)
	}
	// Rank 1 and lowercase: just the reversal bit.
	if h.Entropy != 1 {
		t.Errorf("Entropy = %v, want 1", h.Entropy)
	}
}

func TestReverseDictionaryMatchEmbedded(t *testing.T) {
	m := NewReverseDictionary(testDict("english", "horse"))
	hits := dictionaryMatches(m.MatchPassword("xxesrohxx"))

	if len(hits) != 1 {
		t.Fatalf("got %d matches, want 1", len(hits))
	}
	h := hits[0]
	if h.I != 2 || h.J != 6 {
		t.Errorf("span [%d, %d], want [2, 6]", h.I, h.J)
	}
	if h.Token != "esroh" {
		t.Errorf("Token = %q, want esroh", h.Token)
	}
}

func TestReverseDictionaryPalindromeStillMatches(t *testing.T) {
	// A palindromic word matches both ways; the reverse matcher reports
	// it too, one bit more expensive.
	m := NewReverseDictionary(testDict("english", "level"))
	hits := dictionaryMatches(m.MatchPassword("level"))
	if len(hits) != 1 {
		t.Fatalf("got %d matches, want 1", len(hits))
	}
	if hits[0].Entropy != 1 {
		t.Errorf("Entropy = %v, want 1", hits[0].Entropy)
	}
}
