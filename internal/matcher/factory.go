package matcher

import (
	"passrank/internal/layout"
	"passrank/internal/match"
	"passrank/internal/wordlist"
)

// Factory holds the long-lived matchers (dictionaries, keyboard
// graphs, the fixed tables) and assembles the per-request matcher
// list. The long-lived state is immutable after construction, so a
// Factory is safe for concurrent use.
type Factory struct {
	dictMatchers []*DictionaryMatcher
	matchers     []Matcher
}

// NewFactory loads the named dictionaries through src and builds the
// default matcher set over the given keyboard layouts. Loading fails
// if any named dictionary cannot be served.
func NewFactory(src wordlist.Source, names []string, graphs []*layout.Graph) (*Factory, error) {
	f := &Factory{}

	var reverse []Matcher
	for _, name := range names {
		dict, err := wordlist.LoadRanked(src, name)
		if err != nil {
			return nil, err
		}
		f.dictMatchers = append(f.dictMatchers, NewDictionary(dict))
		reverse = append(reverse, NewReverseDictionary(dict))
	}

	for _, dm := range f.dictMatchers {
		f.matchers = append(f.matchers, dm)
	}
	f.matchers = append(f.matchers, reverse...)
	f.matchers = append(f.matchers,
		NewLeet(f.dictMatchers),
		NewSpatial(graphs),
		NewRepeat(),
		NewSequence(),
		NewDigitsRegex(),
		NewYearRegex(),
		NewDate(),
	)
	return f, nil
}

// CreateMatchers returns the matcher list for one request: the cached
// default set, plus a fresh user-inputs dictionary matcher and a leet
// matcher scoped to it when userInputs is non-empty.
func (f *Factory) CreateMatchers(userInputs []string) []Matcher {
	if len(userInputs) == 0 {
		return f.matchers
	}

	userDict := wordlist.NewRanked(match.DictUserInputs, userInputs)
	userMatcher := NewDictionary(userDict)

	matchers := make([]Matcher, 0, len(f.matchers)+2)
	matchers = append(matchers, f.matchers...)
	matchers = append(matchers, userMatcher, NewLeet([]*DictionaryMatcher{userMatcher}))
	return matchers
}

// Omnimatch runs every matcher for the request and returns the union
// of their candidate matches.
func (f *Factory) Omnimatch(password string, userInputs []string) []match.Match {
	var results []match.Match
	for _, m := range f.CreateMatchers(userInputs) {
		results = append(results, m.MatchPassword(password)...)
	}
	return results
}
