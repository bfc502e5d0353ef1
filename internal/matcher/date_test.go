package matcher

import (
	"testing"

	"passrank/internal/match"
)

func dateMatches(ms []match.Match) []*match.DateMatch {
	out := make([]*match.DateMatch, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.(*match.DateMatch))
	}
	return out
}

// =============================================================================
// Tests for DateMatcher, separator form
// =============================================================================

func TestDateMatchWithSeparator(t *testing.T) {
	m := NewDate()
	hits := dateMatches(m.MatchPassword("11/24/1985"))

	if len(hits) != 1 {
		t.Fatalf("got %d matches, want 1: %v", len(hits), hits)
	}
	h := hits[0]
	if h.Token != "11/24/1985" {
		t.Errorf("Token = %q", h.Token)
	}
	if h.Day != 24 || h.Month != 11 || h.Year != 1985 {
		t.Errorf("date = %d/%d/%d, want 24/11/1985", h.Day, h.Month, h.Year)
	}
	if h.Separator != "/" {
		t.Errorf("Separator = %q, want /", h.Separator)
	}
}

func TestDateMatchSeparatorVariants(t *testing.T) {
	m := NewDate()
	for _, pw := range []string{"24.11.1985", "24-11-1985", "24_11_1985", `24\11\1985`, "24 11 1985"} {
		hits := dateMatches(m.MatchPassword(pw))
		if len(hits) != 1 {
			t.Errorf("%q: got %d matches, want 1", pw, len(hits))
			continue
		}
		if hits[0].Year != 1985 {
			t.Errorf("%q: year = %d, want 1985", pw, hits[0].Year)
		}
	}
}

func TestDateMatchMismatchedSeparators(t *testing.T) {
	m := NewDate()
	hits := dateMatches(m.MatchPassword("24/11-1985"))

	// No separator-form match; the bare "1985" still reads as a date
	// fragment on its own.
	for _, h := range hits {
		if h.Separator != "" {
			t.Errorf("unexpected separator match %+v", h)
		}
	}
}

func TestDateMatchTwoDigitYearSeparated(t *testing.T) {
	m := NewDate()
	hits := dateMatches(m.MatchPassword("1/2/85"))

	if len(hits) != 1 {
		t.Fatalf("got %d matches, want 1: %v", len(hits), hits)
	}
	h := hits[0]
	if h.Year != 1985 {
		t.Errorf("Year = %d, want 1985", h.Year)
	}
	if h.Day != 1 || h.Month != 2 {
		t.Errorf("day/month = %d/%d, want 1/2", h.Day, h.Month)
	}
}

func TestDateMatchSeparatorEntropy(t *testing.T) {
	m := NewDate()
	sep := dateMatches(m.MatchPassword("24.11.1985"))[0]
	bare := dateMatches(m.MatchPassword("24111985"))[0]

	// The separator form costs two extra bits.
	if diff := sep.Entropy - bare.Entropy; diff != 2 {
		t.Errorf("separator entropy difference = %v, want 2", diff)
	}
}

// =============================================================================
// Tests for DateMatcher, digits-only form
// =============================================================================

func TestDateMatchEightDigits(t *testing.T) {
	m := NewDate()
	hits := dateMatches(m.MatchPassword("11241985"))

	if len(hits) != 1 {
		t.Fatalf("got %d matches, want 1: %v", len(hits), hits)
	}
	h := hits[0]
	if h.Day != 24 || h.Month != 11 || h.Year != 1985 {
		t.Errorf("date = %d/%d/%d, want 24/11/1985", h.Day, h.Month, h.Year)
	}
	if h.I != 0 || h.J != 7 {
		t.Errorf("span [%d, %d], want [0, 7]", h.I, h.J)
	}
	if h.Separator != "" {
		t.Errorf("Separator = %q, want empty", h.Separator)
	}
}

func TestDateMatchYearFirst(t *testing.T) {
	m := NewDate()
	hits := dateMatches(m.MatchPassword("19851124"))

	if len(hits) != 1 {
		t.Fatalf("got %d matches, want 1: %v", len(hits), hits)
	}
	h := hits[0]
	if h.Year != 1985 {
		t.Errorf("Year = %d, want 1985", h.Year)
	}
}

func TestDateMatchNearestReferenceYearWins(t *testing.T) {
	// "772015" could read several ways; the kept reading has the year
	// closest to the reference year.
	m := NewDate()
	hits := dateMatches(m.MatchPassword("772015"))

	if len(hits) == 0 {
		t.Fatal("no match")
	}
	for _, h := range hits {
		if h.Year != 2015 {
			t.Errorf("Year = %d, want 2015", h.Year)
		}
	}
}

func TestDateMatchRejectsNonDates(t *testing.T) {
	m := NewDate()
	for _, pw := range []string{"", "degas", "ab1cd", "0000"} {
		hits := m.MatchPassword(pw)
		if len(hits) != 0 {
			t.Errorf("%q: got %d matches, want 0: %v", pw, len(hits), hits)
		}
	}
}

func TestDateMatchYearBounds(t *testing.T) {
	m := NewDate()

	hits := dateMatches(m.MatchPassword("1/1/2050"))
	if len(hits) != 1 || hits[0].Year != 2050 {
		t.Errorf("got %v, want one match for year 2050", hits)
	}

	// 2051 is past the ceiling: shorter fragments may still read as
	// dates, but never with that year.
	for _, h := range dateMatches(m.MatchPassword("1/1/2051")) {
		if h.Year == 2051 {
			t.Errorf("match reported out-of-range year: %+v", h)
		}
	}
}

func TestDateMatchPrunesSubmatches(t *testing.T) {
	// The full eight-digit date must not coexist with its shorter
	// substrings.
	m := NewDate()
	hits := dateMatches(m.MatchPassword("11241985"))
	for _, h := range hits {
		if h.J-h.I+1 != 8 {
			t.Errorf("unpruned submatch %q [%d, %d]", h.Token, h.I, h.J)
		}
	}
}

func TestDateMatchEmbedded(t *testing.T) {
	m := NewDate()
	hits := dateMatches(m.MatchPassword("pw11/24/1985pw"))

	if len(hits) != 1 {
		t.Fatalf("got %d matches, want 1: %v", len(hits), hits)
	}
	if hits[0].I != 2 || hits[0].J != 11 {
		t.Errorf("span [%d, %d], want [2, 11]", hits[0].I, hits[0].J)
	}
}

// =============================================================================
// Tests for mapToDMY
// =============================================================================

func TestMapToDMY(t *testing.T) {
	tests := []struct {
		a, b, c int
		ok      bool
		year    int
	}{
		{24, 11, 1985, true, 1985},
		{1985, 11, 24, true, 1985},
		{1, 2, 85, true, 1985},
		{1, 2, 15, true, 2015},
		{99, 32, 1, false, 0},  // middle field too large
		{45, 11, 46, false, 0}, // two fields over 31
		{13, 13, 13, false, 0}, // every field over 12
		{0, 1, 0, false, 0},    // two fields under 1
		{1, 1, 999, false, 0},  // year in the dead zone (99, 1000)
		{1, 1, 2051, false, 0}, // year past the ceiling
	}
	for _, tt := range tests {
		d, ok := mapToDMY(tt.a, tt.b, tt.c)
		if ok != tt.ok {
			t.Errorf("mapToDMY(%d, %d, %d) ok = %v, want %v", tt.a, tt.b, tt.c, ok, tt.ok)
			continue
		}
		if ok && d.year != tt.year {
			t.Errorf("mapToDMY(%d, %d, %d) year = %d, want %d", tt.a, tt.b, tt.c, d.year, tt.year)
		}
	}
}

func TestMapToDMYFullYearWithBadRest(t *testing.T) {
	// A real four-digit year whose companions cannot form a day/month
	// poisons the candidate entirely.
	if _, ok := mapToDMY(31, 31, 1985); ok {
		t.Error("expected rejection for 31/31/1985")
	}
}

func TestExpandYear(t *testing.T) {
	tests := []struct{ in, want int }{
		{85, 1985},
		{51, 1951},
		{50, 2050},
		{15, 2015},
		{0, 2000},
	}
	for _, tt := range tests {
		if got := expandYear(tt.in); got != tt.want {
			t.Errorf("expandYear(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
