package strength

import (
	"math"

	"passrank/internal/entropymath"
	"passrank/internal/match"
	"passrank/internal/scoring"
)

// CrackTimeSeconds holds the projected seconds-to-crack under the four
// attacker budgets.
type CrackTimeSeconds struct {
	OnlineThrottled   float64 `json:"online_throttled"`
	OnlineUnthrottled float64 `json:"online_unthrottled"`
	OfflineSlow       float64 `json:"offline_slow"`
	OfflineFast       float64 `json:"offline_fast"`
}

// CrackTimeDisplay holds the same projections as rough, localized
// human durations.
type CrackTimeDisplay struct {
	OnlineThrottled   string `json:"online_throttled"`
	OnlineUnthrottled string `json:"online_unthrottled"`
	OfflineSlow       string `json:"offline_slow"`
	OfflineFast       string `json:"offline_fast"`
}

// Result is a full password evaluation.
type Result struct {
	Password     string  `json:"password"`
	Entropy      float64 `json:"entropy"`
	Guesses      float64 `json:"guesses"`
	GuessesLog10 float64 `json:"guesses_log10"`

	CrackTimeSeconds CrackTimeSeconds `json:"crack_time_seconds"`
	CrackTimeDisplay CrackTimeDisplay `json:"crack_time_display"`

	Score     int    `json:"score"`
	ScoreText string `json:"score_text"`

	MatchSequence []Match `json:"match_sequence"`

	Warning     string   `json:"warning,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Scrub overwrites the password-bearing fields of the result.
func (r *Result) Scrub() {
	r.Password = ""
	for i := range r.MatchSequence {
		r.MatchSequence[i].Token = ""
		r.MatchSequence[i].MatchedWord = ""
		r.MatchSequence[i].BaseToken = ""
	}
}

// Match is the public view of one element of the decomposition. The
// variant-specific fields are populated according to Pattern.
type Match struct {
	Pattern string  `json:"pattern"`
	I       int     `json:"i"`
	J       int     `json:"j"`
	Token   string  `json:"token"`
	Entropy float64 `json:"entropy"`

	// dictionary, reverse_dictionary, l33t
	MatchedWord      string  `json:"matched_word,omitempty"`
	Rank             int     `json:"rank,omitempty"`
	DictionaryName   string  `json:"dictionary_name,omitempty"`
	BaseEntropy      float64 `json:"base_entropy,omitempty"`
	UppercaseEntropy float64 `json:"uppercase_entropy,omitempty"`

	// l33t
	Subs        map[string]string `json:"subs,omitempty"`
	LeetEntropy float64           `json:"l33t_entropy,omitempty"`

	// spatial
	Graph        string `json:"graph,omitempty"`
	Turns        int    `json:"turns,omitempty"`
	ShiftedCount int    `json:"shifted_count,omitempty"`

	// repeat
	BaseToken   string `json:"base_token,omitempty"`
	RepeatCount int    `json:"repeat_count,omitempty"`

	// sequence
	SequenceName string `json:"sequence_name,omitempty"`
	SequenceSize int    `json:"sequence_size,omitempty"`
	Ascending    bool   `json:"ascending,omitempty"`

	// regex
	RegexName string `json:"regex_name,omitempty"`

	// date
	Year      int    `json:"year,omitempty"`
	Month     int    `json:"month,omitempty"`
	Day       int    `json:"day,omitempty"`
	Separator string `json:"separator,omitempty"`

	// bruteforce
	Cardinality int `json:"cardinality,omitempty"`
}

// Evaluate estimates the strength of password. The optional userInputs
// are strings an attacker targeting this user would try first: names,
// email fragments, known identifiers.
func (e *Engine) Evaluate(password string, userInputs ...string) *Result {
	matches := e.factory.Omnimatch(password, userInputs)
	analysis := scoring.MinimumEntropySequence(password, matches)

	guesses := entropymath.EntropyToGuesses(analysis.Entropy)
	score := entropymath.EntropyToScore(analysis.Entropy)
	times := scoring.CrackTimesFromGuesses(guesses)
	feedback := scoring.SelectFeedback(analysis.Sequence, score)

	result := &Result{
		Password:     password,
		Entropy:      analysis.Entropy,
		Guesses:      guesses,
		GuessesLog10: guessesLog10(analysis.Entropy),
		CrackTimeSeconds: CrackTimeSeconds{
			OnlineThrottled:   times.OnlineThrottledSeconds,
			OnlineUnthrottled: times.OnlineUnthrottledSeconds,
			OfflineSlow:       times.OfflineSlowSeconds,
			OfflineFast:       times.OfflineFastSeconds,
		},
		CrackTimeDisplay: CrackTimeDisplay{
			OnlineThrottled:   scoring.DisplayTime(times.OnlineThrottledSeconds, e.translate),
			OnlineUnthrottled: scoring.DisplayTime(times.OnlineUnthrottledSeconds, e.translate),
			OfflineSlow:       scoring.DisplayTime(times.OfflineSlowSeconds, e.translate),
			OfflineFast:       scoring.DisplayTime(times.OfflineFastSeconds, e.translate),
		},
		Score:         score,
		ScoreText:     e.translate(scoring.ScoreLabel(score)),
		MatchSequence: make([]Match, 0, len(analysis.Sequence)),
	}

	if feedback.Warning != "" {
		result.Warning = e.translate(feedback.Warning)
	}
	for _, s := range feedback.Suggestions {
		result.Suggestions = append(result.Suggestions, e.translate(s))
	}
	for _, m := range analysis.Sequence {
		result.MatchSequence = append(result.MatchSequence, publicMatch(m))
	}
	return result
}

// guessesLog10 computes log10(0.5 * 2^entropy) without overflowing at
// high entropies.
func guessesLog10(entropy float64) float64 {
	if math.IsInf(entropy, 1) {
		return math.Inf(1)
	}
	return (entropy - 1) * math.Log10(2)
}

// publicMatch flattens an internal match variant into the public view.
func publicMatch(m match.Match) Match {
	base := m.Common()
	out := Match{
		Pattern: string(m.Pattern()),
		I:       base.I,
		J:       base.J,
		Token:   base.Token,
		Entropy: base.Entropy,
	}

	switch v := m.(type) {
	case *match.LeetMatch:
		out.MatchedWord = v.MatchedWord
		out.Rank = v.Rank
		out.DictionaryName = v.DictionaryName
		out.BaseEntropy = v.BaseEntropy
		out.UppercaseEntropy = v.UppercaseEntropy
		out.LeetEntropy = v.LeetEntropy
		out.Subs = make(map[string]string, len(v.Subs))
		for leet, base := range v.Subs {
			out.Subs[string(leet)] = string(base)
		}
	case *match.DictionaryMatch:
		out.MatchedWord = v.MatchedWord
		out.Rank = v.Rank
		out.DictionaryName = v.DictionaryName
		out.BaseEntropy = v.BaseEntropy
		out.UppercaseEntropy = v.UppercaseEntropy
	case *match.SpatialMatch:
		out.Graph = v.Graph
		out.Turns = v.Turns
		out.ShiftedCount = v.ShiftedCount
	case *match.RepeatMatch:
		out.BaseToken = v.BaseToken
		out.RepeatCount = v.RepeatCount
	case *match.SequenceMatch:
		out.SequenceName = v.SequenceName
		out.SequenceSize = v.SequenceSize
		out.Ascending = v.Ascending
	case *match.RegexMatch:
		out.RegexName = v.Name
	case *match.DateMatch:
		out.Year = v.Year
		out.Month = v.Month
		out.Day = v.Day
		out.Separator = v.Separator
	case *match.BruteforceMatch:
		out.Cardinality = v.Cardinality
	}
	return out
}
