package match

// Well-known dictionary names used by feedback dispatch.
const (
	DictPasswords   = "passwords"
	DictEnglish     = "english_wikipedia"
	DictMaleNames   = "male_names"
	DictFemaleNames = "female_names"
	DictSurnames    = "surnames"
	DictUSTVAndFilm = "us_tv_and_film"
	DictUserInputs  = "user_inputs"
)

// DictionaryMatch is a substring found in a ranked word list.
type DictionaryMatch struct {
	Base
	MatchedWord    string `json:"matched_word"`
	Rank           int    `json:"rank"`
	DictionaryName string `json:"dictionary_name"`
	// Reversed marks a hit found by scanning the reversed password.
	Reversed bool `json:"reversed,omitempty"`

	BaseEntropy      float64 `json:"base_entropy"`
	UppercaseEntropy float64 `json:"uppercase_entropy"`
}

// Pattern implements Match.
func (m *DictionaryMatch) Pattern() Pattern {
	if m.Reversed {
		return PatternReverse
	}
	return PatternDictionary
}

// Common implements Match.
func (m *DictionaryMatch) Common() *Base { return &m.Base }

// Clone implements Match.
func (m *DictionaryMatch) Clone() Match {
	c := *m
	return &c
}

// Scrub implements Match.
func (m *DictionaryMatch) Scrub() {
	m.Token = ""
	m.MatchedWord = ""
}

// LeetMatch is a dictionary hit reached through leet-speak
// substitutions. Subs maps each leet glyph actually present in the
// token to the base letter it stood for.
type LeetMatch struct {
	DictionaryMatch
	Subs        map[rune]rune `json:"-"`
	LeetEntropy float64       `json:"l33t_entropy"`
}

// Pattern implements Match.
func (m *LeetMatch) Pattern() Pattern { return PatternLeet }

// Clone implements Match.
func (m *LeetMatch) Clone() Match {
	c := *m
	c.Subs = make(map[rune]rune, len(m.Subs))
	for k, v := range m.Subs {
		c.Subs[k] = v
	}
	return &c
}

// SpatialMatch is a run of adjacent keys on a keyboard layout.
type SpatialMatch struct {
	Base
	Graph        string `json:"graph"`
	Turns        int    `json:"turns"`
	ShiftedCount int    `json:"shifted_count"`
}

// Pattern implements Match.
func (m *SpatialMatch) Pattern() Pattern { return PatternSpatial }

// Common implements Match.
func (m *SpatialMatch) Common() *Base { return &m.Base }

// Clone implements Match.
func (m *SpatialMatch) Clone() Match {
	c := *m
	return &c
}

// Scrub implements Match.
func (m *SpatialMatch) Scrub() { m.Token = "" }

// RepeatMatch is a token consisting of a unit repeated two or more
// times, e.g. "abcabcabc" with base token "abc".
type RepeatMatch struct {
	Base
	BaseToken   string `json:"base_token"`
	RepeatCount int    `json:"repeat_count"`
}

// Pattern implements Match.
func (m *RepeatMatch) Pattern() Pattern { return PatternRepeat }

// Common implements Match.
func (m *RepeatMatch) Common() *Base { return &m.Base }

// Clone implements Match.
func (m *RepeatMatch) Clone() Match {
	c := *m
	return &c
}

// Scrub implements Match.
func (m *RepeatMatch) Scrub() {
	m.Token = ""
	m.BaseToken = ""
}

// SequenceMatch is an ascending or descending run in one of the known
// alphabets (lowercase, uppercase, digits).
type SequenceMatch struct {
	Base
	SequenceName string `json:"sequence_name"`
	SequenceSize int    `json:"sequence_size"`
	Ascending    bool   `json:"ascending"`
}

// Pattern implements Match.
func (m *SequenceMatch) Pattern() Pattern { return PatternSequence }

// Common implements Match.
func (m *SequenceMatch) Common() *Base { return &m.Base }

// Clone implements Match.
func (m *SequenceMatch) Clone() Match {
	c := *m
	return &c
}

// Scrub implements Match.
func (m *SequenceMatch) Scrub() { m.Token = "" }

// RegexMatch is a hit from one of the configured generic regex
// matchers ("digits", "year").
type RegexMatch struct {
	Base
	Name string `json:"regex_name"`
}

// Pattern implements Match.
func (m *RegexMatch) Pattern() Pattern { return PatternRegex }

// Common implements Match.
func (m *RegexMatch) Common() *Base { return &m.Base }

// Clone implements Match.
func (m *RegexMatch) Clone() Match {
	c := *m
	return &c
}

// Scrub implements Match.
func (m *RegexMatch) Scrub() { m.Token = "" }

// DateMatch is a digit string (optionally separator-delimited) that
// parses as a plausible calendar date.
type DateMatch struct {
	Base
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	Day       int    `json:"day"`
	Separator string `json:"separator"`
}

// Pattern implements Match.
func (m *DateMatch) Pattern() Pattern { return PatternDate }

// Common implements Match.
func (m *DateMatch) Common() *Base { return &m.Base }

// Clone implements Match.
func (m *DateMatch) Clone() Match {
	c := *m
	return &c
}

// Scrub implements Match.
func (m *DateMatch) Scrub() { m.Token = "" }

// BruteforceMatch is the synthetic match the scoring engine inserts to
// cover spans no pattern matcher explains.
type BruteforceMatch struct {
	Base
	Cardinality int `json:"cardinality"`
}

// Pattern implements Match.
func (m *BruteforceMatch) Pattern() Pattern { return PatternBruteforce }

// Common implements Match.
func (m *BruteforceMatch) Common() *Base { return &m.Base }

// Clone implements Match.
func (m *BruteforceMatch) Clone() Match {
	c := *m
	return &c
}

// Scrub implements Match.
func (m *BruteforceMatch) Scrub() { m.Token = "" }
