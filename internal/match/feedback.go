package match

import (
	"strings"
	"unicode"
)

// Canonical English warning strings. The localizer keys its catalogs on
// these exact values.
const (
	WarnTop10             = "This is a top-10 common password"
	WarnTop100            = "This is a top-100 common password"
	WarnVeryCommon        = "This is a very common password"
	WarnSimilarToCommon   = "This is similar to a commonly used password"
	WarnWordByItself      = "A word by itself is easy to guess"
	WarnNamesByThemselves = "Names and surnames by themselves are easy to guess"
	WarnCommonNames       = "Common names and surnames are easy to guess"
	WarnStraightRow       = "Straight rows of keys are easy to guess"
	WarnShortKeyboard     = "Short keyboard patterns are easy to guess"
	WarnRepeatChar        = `Repeats like "aaa" are easy to guess`
	WarnRepeatGroup       = `Repeats like "abcabcabc" are only slightly harder to guess than "abc"`
	WarnSequence          = "Sequences like abc or 6543 are easy to guess"
	WarnRecentYears       = "Recent years are easy to guess"
	WarnDates             = "Dates are often easy to guess"
	WarnReversed          = "Reversed words aren't much harder to guess"
)

// Canonical English suggestion strings.
const (
	SuggestFewWords         = "Use a few words, avoid common phrases"
	SuggestAddWord          = "Add another word or two. Uncommon words are better."
	SuggestLongerKeyboard   = "Use a longer keyboard pattern with more turns"
	SuggestAvoidRepeats     = "Avoid repeated words and characters"
	SuggestAvoidSequences   = "Avoid sequences"
	SuggestAvoidRecentYears = "Avoid recent years"
	SuggestAvoidYears       = "Avoid years that are associated with you"
	SuggestAvoidDates       = "Avoid dates and years that are associated with you"
	SuggestCapsDontHelp     = "Capitalization doesn't help very much"
	SuggestAllCaps          = "All-uppercase is almost as easy to guess as all-lowercase"
	SuggestPredictableSubs  = "Predictable substitutions like '@' instead of 'a' don't help very much"
)

// Warnings lists every canonical warning, in catalog order.
func Warnings() []string {
	return []string{
		WarnTop10, WarnTop100, WarnVeryCommon, WarnSimilarToCommon,
		WarnWordByItself, WarnNamesByThemselves, WarnCommonNames,
		WarnStraightRow, WarnShortKeyboard, WarnRepeatChar,
		WarnRepeatGroup, WarnSequence, WarnRecentYears, WarnDates,
		WarnReversed,
	}
}

// Suggestions lists every canonical suggestion, in catalog order.
func Suggestions() []string {
	return []string{
		SuggestFewWords, SuggestAddWord, SuggestLongerKeyboard,
		SuggestAvoidRepeats, SuggestAvoidSequences,
		SuggestAvoidRecentYears, SuggestAvoidYears, SuggestAvoidDates,
		SuggestCapsDontHelp, SuggestAllCaps, SuggestPredictableSubs,
	}
}

// Feedback implements Match.
func (m *DictionaryMatch) Feedback(sole bool, score int) Feedback {
	fb := m.dictionaryFeedback(sole, score, false)
	fb.Merge(capitalizationAdvice(m.Token))
	return fb
}

// dictionaryFeedback holds the rules shared between plain dictionary
// hits and their leet-speak extension.
func (m *DictionaryMatch) dictionaryFeedback(sole bool, score int, leet bool) Feedback {
	var fb Feedback
	fb.Suggestions = []string{SuggestAddWord}

	if m.Reversed {
		if sole {
			fb.Warning = WarnReversed
		}
		return fb
	}

	switch m.DictionaryName {
	case DictPasswords:
		switch {
		case sole && !leet:
			switch {
			case m.Rank <= 10:
				fb.Warning = WarnTop10
			case m.Rank <= 100:
				fb.Warning = WarnTop100
			default:
				fb.Warning = WarnVeryCommon
			}
		case score <= 1:
			fb.Warning = WarnSimilarToCommon
		}
	case DictEnglish, "english":
		if sole {
			fb.Warning = WarnWordByItself
		}
	case DictMaleNames, DictFemaleNames, DictSurnames:
		if sole {
			fb.Warning = WarnNamesByThemselves
		} else {
			fb.Warning = WarnCommonNames
		}
	}
	return fb
}

// Feedback implements Match.
func (m *LeetMatch) Feedback(sole bool, score int) Feedback {
	fb := m.dictionaryFeedback(sole, score, true)
	fb.Suggestions = append(fb.Suggestions, SuggestPredictableSubs)
	fb.Merge(capitalizationAdvice(m.Token))
	return fb
}

// Feedback implements Match.
func (m *SpatialMatch) Feedback(sole bool, score int) Feedback {
	warning := WarnShortKeyboard
	if m.Turns == 1 {
		warning = WarnStraightRow
	}
	return Feedback{
		Warning:     warning,
		Suggestions: []string{SuggestLongerKeyboard},
	}
}

// Feedback implements Match.
func (m *RepeatMatch) Feedback(sole bool, score int) Feedback {
	warning := WarnRepeatGroup
	if len([]rune(m.BaseToken)) == 1 {
		warning = WarnRepeatChar
	}
	return Feedback{
		Warning:     warning,
		Suggestions: []string{SuggestAvoidRepeats},
	}
}

// Feedback implements Match.
func (m *SequenceMatch) Feedback(sole bool, score int) Feedback {
	return Feedback{
		Warning:     WarnSequence,
		Suggestions: []string{SuggestAvoidSequences},
	}
}

// Feedback implements Match.
func (m *RegexMatch) Feedback(sole bool, score int) Feedback {
	if m.Name == "year" {
		return Feedback{
			Warning:     WarnRecentYears,
			Suggestions: []string{SuggestAvoidRecentYears},
		}
	}
	return Feedback{}
}

// Feedback implements Match.
func (m *DateMatch) Feedback(sole bool, score int) Feedback {
	return Feedback{
		Warning:     WarnDates,
		Suggestions: []string{SuggestAvoidDates},
	}
}

// Feedback implements Match.
func (m *BruteforceMatch) Feedback(sole bool, score int) Feedback {
	return Feedback{}
}

// capitalizationAdvice flags the two easy capitalization habits:
// leading capital, and all-caps.
func capitalizationAdvice(token string) Feedback {
	runes := []rune(token)
	if len(runes) == 0 {
		return Feedback{}
	}

	if unicode.IsUpper(runes[0]) {
		rest := runes[1:]
		restLower := true
		for _, r := range rest {
			if unicode.IsUpper(r) {
				restLower = false
				break
			}
		}
		if restLower && len(rest) > 0 {
			return Feedback{Suggestions: []string{SuggestCapsDontHelp}}
		}
	}

	if token != strings.ToLower(token) {
		allUpper := true
		for _, r := range runes {
			if unicode.IsLower(r) {
				allUpper = false
				break
			}
		}
		if allUpper {
			return Feedback{Suggestions: []string{SuggestAllCaps}}
		}
	}
	return Feedback{}
}
