package matcher

import (
	"math"
	"testing"

	"passrank/internal/match"
)

func sequenceMatches(ms []match.Match) []*match.SequenceMatch {
	out := make([]*match.SequenceMatch, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.(*match.SequenceMatch))
	}
	return out
}

// =============================================================================
// Tests for SequenceMatcher
// =============================================================================

func TestSequenceMatchAscendingLower(t *testing.T) {
	m := NewSequence()
	hits := sequenceMatches(m.MatchPassword("abcdef"))

	if len(hits) != 1 {
		t.Fatalf("got %d matches, want 1", len(hits))
	}
	h := hits[0]
	if h.Token != "abcdef" || !h.Ascending || h.SequenceName != "lower" {
		t.Errorf("match %+v", h)
	}
	if h.SequenceSize != 26 {
		t.Errorf("SequenceSize = %d, want 26", h.SequenceSize)
	}
	// Obvious start 'a': 1 bit, plus log2 of the length.
	if got, want := h.Entropy, 1+math.Log2(6); math.Abs(got-want) > 1e-9 {
		t.Errorf("Entropy = %v, want %v", got, want)
	}
}

func TestSequenceMatchDescending(t *testing.T) {
	m := NewSequence()
	hits := sequenceMatches(m.MatchPassword("fedcba"))

	if len(hits) != 1 {
		t.Fatalf("got %d matches, want 1", len(hits))
	}
	h := hits[0]
	if h.Ascending {
		t.Error("descending run flagged ascending")
	}
	// log2(26) base, one extra bit for descending, plus the length.
	want := math.Log2(26) + 1 + math.Log2(6)
	if math.Abs(h.Entropy-want) > 1e-9 {
		t.Errorf("Entropy = %v, want %v", h.Entropy, want)
	}
}

func TestSequenceMatchDigits(t *testing.T) {
	m := NewSequence()
	hits := sequenceMatches(m.MatchPassword("456789"))

	if len(hits) != 1 {
		t.Fatalf("got %d matches, want 1", len(hits))
	}
	h := hits[0]
	if h.SequenceName != "digits" {
		t.Errorf("SequenceName = %q, want digits", h.SequenceName)
	}
	want := math.Log2(10) + math.Log2(6)
	if math.Abs(h.Entropy-want) > 1e-9 {
		t.Errorf("Entropy = %v, want %v", h.Entropy, want)
	}
}

func TestSequenceMatchObviousDigitStart(t *testing.T) {
	m := NewSequence()
	hits := sequenceMatches(m.MatchPassword("1234"))

	if len(hits) != 1 {
		t.Fatalf("got %d matches, want 1", len(hits))
	}
	want := 1 + math.Log2(4)
	if math.Abs(hits[0].Entropy-want) > 1e-9 {
		t.Errorf("Entropy = %v, want %v", hits[0].Entropy, want)
	}
}

func TestSequenceMatchUpper(t *testing.T) {
	m := NewSequence()
	hits := sequenceMatches(m.MatchPassword("JKLMN"))

	if len(hits) != 1 {
		t.Fatalf("got %d matches, want 1", len(hits))
	}
	if hits[0].SequenceName != "upper" || !hits[0].Ascending {
		t.Errorf("match %+v", hits[0])
	}
}

func TestSequenceMatchEmbedded(t *testing.T) {
	m := NewSequence()
	hits := sequenceMatches(m.MatchPassword("xx789xx"))

	if len(hits) != 1 {
		t.Fatalf("got %d matches, want 1: %v", len(hits), hits)
	}
	h := hits[0]
	if h.Token != "789" || h.I != 2 || h.J != 4 {
		t.Errorf("match %q [%d, %d], want 789 [2, 4]", h.Token, h.I, h.J)
	}
}

func TestSequenceMatchTooShort(t *testing.T) {
	m := NewSequence()
	for _, pw := range []string{"", "a", "ab", "xy12za"} {
		if hits := m.MatchPassword(pw); len(hits) != 0 {
			t.Errorf("%q: got %d matches, want 0", pw, len(hits))
		}
	}
}

func TestSequenceMatchNoOverlapEmission(t *testing.T) {
	// One run yields one match, not one per suffix.
	m := NewSequence()
	hits := sequenceMatches(m.MatchPassword("abcdefgh"))
	if len(hits) != 1 {
		t.Errorf("got %d matches, want 1", len(hits))
	}
}

func TestSequenceMatchHistoricalDigitWrap(t *testing.T) {
	// The digit sequence carries a trailing zero, so its reversal starts
	// "09..." and "0987" reads as a descending run.
	m := NewSequence()
	hits := sequenceMatches(m.MatchPassword("0987"))
	if len(hits) != 1 {
		t.Fatalf("got %d matches, want 1", len(hits))
	}
	h := hits[0]
	if h.Token != "0987" || h.Ascending {
		t.Errorf("match %+v, want descending 0987", h)
	}
}
