// Package entropymath holds the shared numeric primitives of the
// strength estimator: alphabet cardinality, binomial coefficients, the
// upper/lowercase variation entropy of a token, and the mapping from
// entropy bits to the 0-4 score.
//
// Entropy throughout the estimator follows the guessing convention
// guesses = 0.5 * 2^entropy: on average an attacker searches half the
// space before hitting the password.
package entropymath

import (
	"math"
	"unicode"
)

// Character-class alphabet sizes. A password's brute-force alphabet is
// the sum of the sizes of the classes present in it.
const (
	LowerCardinality   = 26
	UpperCardinality   = 26
	DigitCardinality   = 10
	SymbolCardinality  = 33
	UnicodeCardinality = 100
)

// class bits, one per alphabet.
const (
	classLower = 1 << iota
	classUpper
	classDigit
	classSymbol
	classUnicode
)

// Cardinality returns the size of the alphabet a brute-force attacker
// would have to draw from to cover the password: the sum of the present
// character-class sizes. ASCII characters that are neither letters nor
// digits count as symbols; anything past U+007F counts as a flat
// 100-character unicode class.
func Cardinality(password string) int {
	var classes int
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			classes |= classLower
		case r >= 'A' && r <= 'Z':
			classes |= classUpper
		case r >= '0' && r <= '9':
			classes |= classDigit
		case r <= unicode.MaxASCII:
			classes |= classSymbol
		default:
			classes |= classUnicode
		}
	}

	n := 0
	if classes&classLower != 0 {
		n += LowerCardinality
	}
	if classes&classUpper != 0 {
		n += UpperCardinality
	}
	if classes&classDigit != 0 {
		n += DigitCardinality
	}
	if classes&classSymbol != 0 {
		n += SymbolCardinality
	}
	if classes&classUnicode != 0 {
		n += UnicodeCardinality
	}
	return n
}

// Binomial returns C(n, k) as an exact float64 for the ranges the
// matchers use (token lengths, so n stays small). k > n yields 0 and
// k == 0 yields 1.
func Binomial(n, k int) float64 {
	if k > n {
		return 0
	}
	if k == 0 {
		return 1
	}
	if k > n-k {
		k = n - k
	}
	r := 1.0
	for d := 0; d < k; d++ {
		r *= float64(n - d)
		r /= float64(d + 1)
	}
	return r
}

// Log2 is a convenience wrapper kept for call-site readability.
func Log2(x float64) float64 {
	return math.Log2(x)
}

// UppercaseEntropy returns the extra bits contributed by the
// capitalization of word. The three "obvious" capitalizations (initial
// cap, trailing cap, all caps) cost a single bit; anything else costs
// the log of the number of ways to distribute that many uppercase
// letters among the word's letters.
func UppercaseEntropy(word string) float64 {
	runes := []rune(word)

	allLower := true
	for _, r := range runes {
		if unicode.IsUpper(r) {
			allLower = false
			break
		}
	}
	if allLower {
		return 0
	}

	if startUpper(runes) || endUpper(runes) || allUpper(runes) {
		return 1
	}

	var uppers, lowers int
	for _, r := range runes {
		if unicode.IsUpper(r) {
			uppers++
		} else if unicode.IsLower(r) {
			lowers++
		}
	}

	possibilities := 0.0
	limit := uppers
	if lowers < limit {
		limit = lowers
	}
	for i := 0; i <= limit; i++ {
		possibilities += Binomial(uppers+lowers, i)
	}
	if possibilities <= 0 {
		return 0
	}
	return math.Log2(possibilities)
}

func startUpper(runes []rune) bool {
	if len(runes) == 0 || !unicode.IsUpper(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

func endUpper(runes []rune) bool {
	n := len(runes)
	if n == 0 || !unicode.IsUpper(runes[n-1]) {
		return false
	}
	for _, r := range runes[:n-1] {
		if unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

func allUpper(runes []rune) bool {
	for _, r := range runes {
		if unicode.IsLower(r) {
			return false
		}
	}
	return true
}

// Guess-count thresholds between adjacent scores. These are the source
// constants 10e3 through 10e10.
var scoreThresholds = [...]float64{1e4, 1e7, 1e9, 1e11}

// EntropyToGuesses converts entropy bits to the expected guess count,
// guesses = 0.5 * 2^entropy. Overflow saturates to +Inf.
func EntropyToGuesses(entropy float64) float64 {
	return 0.5 * math.Pow(2, entropy)
}

// EntropyToScore buckets entropy into the 0-4 strength score.
func EntropyToScore(entropy float64) int {
	guesses := EntropyToGuesses(entropy)
	for score, threshold := range scoreThresholds {
		if guesses < threshold {
			return score
		}
	}
	return 4
}
