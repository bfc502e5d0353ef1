package scoring

import (
	"strings"
	"testing"
)

func english(s string) string { return s }

// =============================================================================
// Tests for CrackTimesFromGuesses
// =============================================================================

func TestCrackTimesFromGuesses(t *testing.T) {
	times := CrackTimesFromGuesses(1e6)

	if got, want := times.OnlineThrottledSeconds, 1e6*36.0; got != want {
		t.Errorf("OnlineThrottledSeconds = %v, want %v", got, want)
	}
	if got, want := times.OnlineUnthrottledSeconds, 1e4; got != want {
		t.Errorf("OnlineUnthrottledSeconds = %v, want %v", got, want)
	}
	if got, want := times.OfflineSlowSeconds, 100.0; got != want {
		t.Errorf("OfflineSlowSeconds = %v, want %v", got, want)
	}
	if got, want := times.OfflineFastSeconds, 1e-4; got != want {
		t.Errorf("OfflineFastSeconds = %v, want %v", got, want)
	}
}

func TestCrackTimesOrdering(t *testing.T) {
	times := CrackTimesFromGuesses(12345)
	if !(times.OnlineThrottledSeconds > times.OnlineUnthrottledSeconds &&
		times.OnlineUnthrottledSeconds > times.OfflineSlowSeconds &&
		times.OfflineSlowSeconds > times.OfflineFastSeconds) {
		t.Errorf("budgets out of order: %+v", times)
	}
}

// =============================================================================
// Tests for DisplayTime
// =============================================================================

func TestDisplayTimeBuckets(t *testing.T) {
	tests := []struct {
		seconds float64
		unit    string
	}{
		{0, UnitInstant},
		{59, UnitInstant},
		{60, UnitMinutes},
		{3599, UnitMinutes},
		{3600, UnitHours},
		{86399, UnitHours},
		{86400, UnitDays},
		{86400 * 40, UnitMonths},
		{86400 * 400, UnitYears},
		{86400 * 365 * 150, UnitCenturies},
		{1e30, UnitCenturies},
	}
	for _, tt := range tests {
		got := DisplayTime(tt.seconds, english)
		if !strings.Contains(got, tt.unit) {
			t.Errorf("DisplayTime(%v) = %q, want unit %q", tt.seconds, got, tt.unit)
		}
	}
}

func TestDisplayTimeQuantity(t *testing.T) {
	// 90 seconds: ceil(90/60) = 2, plus the rounding bump.
	if got := DisplayTime(90, english); got != "3 minutes" {
		t.Errorf("DisplayTime(90) = %q, want \"3 minutes\"", got)
	}
}

func TestDisplayTimeCenturiesHasNoQuantity(t *testing.T) {
	got := DisplayTime(1e30, english)
	if got != UnitCenturies {
		t.Errorf("DisplayTime(1e30) = %q, want bare %q", got, UnitCenturies)
	}
}

func TestDisplayTimeTranslates(t *testing.T) {
	upper := func(s string) string { return strings.ToUpper(s) }
	if got := DisplayTime(0, upper); got != "INSTANT" {
		t.Errorf("DisplayTime(0, upper) = %q", got)
	}
	got := DisplayTime(90, upper)
	if !strings.HasSuffix(got, "MINUTES") {
		t.Errorf("DisplayTime(90, upper) = %q", got)
	}
}

// =============================================================================
// Tests for score labels
// =============================================================================

func TestScoreLabel(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "Very weak"},
		{1, "Weak"},
		{2, "Fair"},
		{3, "Strong"},
		{4, "Very strong"},
		{-1, "Very weak"},
		{7, "Very strong"},
	}
	for _, tt := range tests {
		if got := ScoreLabel(tt.score); got != tt.want {
			t.Errorf("ScoreLabel(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestScoreLabelsOrder(t *testing.T) {
	labels := ScoreLabels()
	if len(labels) != 5 {
		t.Fatalf("got %d labels, want 5", len(labels))
	}
	if labels[0] != "Very weak" || labels[4] != "Very strong" {
		t.Errorf("labels = %v", labels)
	}
}
