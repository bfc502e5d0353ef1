// Package match defines the tagged match variants produced by the
// pattern matchers and consumed by the scoring engine.
//
// Every matcher emits values implementing Match. The common fields live
// in Base (span, token, entropy); each variant carries its own payload
// (rank and dictionary for dictionary hits, turns and shifts for
// keyboard runs, and so on). Feedback is dispatched per variant.
package match

// Pattern identifies the matcher that produced a match.
type Pattern string

// Pattern tags.
const (
	PatternDictionary Pattern = "dictionary"
	PatternReverse    Pattern = "reverse_dictionary"
	PatternLeet       Pattern = "l33t"
	PatternSpatial    Pattern = "spatial"
	PatternRepeat     Pattern = "repeat"
	PatternSequence   Pattern = "sequence"
	PatternRegex      Pattern = "regex"
	PatternDate       Pattern = "date"
	PatternBruteforce Pattern = "bruteforce"
)

// Base holds the fields shared by all match variants.
//
// I and J are inclusive rune indices into the password; Token is the
// exact substring password[i..=j]. Entropy is the estimated bits this
// match contributes to a decomposition containing it.
type Base struct {
	I       int     `json:"i"`
	J       int     `json:"j"`
	Token   string  `json:"token"`
	Entropy float64 `json:"entropy"`
}

// Length returns the match length in runes.
func (b *Base) Length() int {
	return b.J - b.I + 1
}

// Match is the interface shared by all match variants.
type Match interface {
	// Pattern returns the variant tag.
	Pattern() Pattern

	// Common returns the shared fields for in-place inspection and
	// update by the scoring engine.
	Common() *Base

	// Clone returns an independent deep copy.
	Clone() Match

	// Feedback returns the canonical English warning and suggestions
	// for this match. sole reports whether the match covers the whole
	// decomposition by itself; score is the overall 0-4 score.
	Feedback(sole bool, score int) Feedback

	// Scrub overwrites token-bearing fields so cleartext fragments do
	// not outlive the result that owns the match.
	Scrub()
}

// Feedback is a canonical-English warning plus improvement suggestions.
// Localization happens at the engine boundary.
type Feedback struct {
	Warning     string   `json:"warning,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Merge appends any suggestions from other that f does not already
// carry, and adopts other's warning if f has none.
func (f *Feedback) Merge(other Feedback) {
	if f.Warning == "" {
		f.Warning = other.Warning
	}
	for _, s := range other.Suggestions {
		if !containsString(f.Suggestions, s) {
			f.Suggestions = append(f.Suggestions, s)
		}
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
