package scoring

import (
	"fmt"
	"math"
)

// Attacker budgets, in guesses per second.
const (
	// SpeedOnlineThrottled models a rate-limited online attack at 100
	// guesses per hour.
	SpeedOnlineThrottled = 100.0 / 3600.0
	// SpeedOnlineUnthrottled models an unthrottled online attack.
	SpeedOnlineUnthrottled = 100.0
	// SpeedOfflineSlow models offline attack on a slow hash.
	SpeedOfflineSlow = 1e4
	// SpeedOfflineFast models offline attack on a fast hash.
	SpeedOfflineFast = 10e9
)

// Display time units, in seconds.
const (
	secondsPerMinute  = 60.0
	secondsPerHour    = 60.0 * secondsPerMinute
	secondsPerDay     = 24.0 * secondsPerHour
	secondsPerYear    = 365.2425 * secondsPerDay
	secondsPerMonth   = secondsPerYear / 12.0
	secondsPerCentury = 100.0 * secondsPerYear
)

// CrackTimes holds the projected seconds-to-crack under the four
// attacker budgets.
type CrackTimes struct {
	OnlineThrottledSeconds   float64 `json:"online_throttled_seconds"`
	OnlineUnthrottledSeconds float64 `json:"online_unthrottled_seconds"`
	OfflineSlowSeconds       float64 `json:"offline_slow_seconds"`
	OfflineFastSeconds       float64 `json:"offline_fast_seconds"`
}

// CrackTimesFromGuesses derives the four projections.
func CrackTimesFromGuesses(guesses float64) CrackTimes {
	return CrackTimes{
		OnlineThrottledSeconds:   guesses / SpeedOnlineThrottled,
		OnlineUnthrottledSeconds: guesses / SpeedOnlineUnthrottled,
		OfflineSlowSeconds:       guesses / SpeedOfflineSlow,
		OfflineFastSeconds:       guesses / SpeedOfflineFast,
	}
}

// Canonical display unit strings, localizable through the engine's
// catalog.
const (
	UnitInstant   = "instant"
	UnitMinutes   = "minutes"
	UnitHours     = "hours"
	UnitDays      = "days"
	UnitMonths    = "months"
	UnitYears     = "years"
	UnitCenturies = "centuries"
)

// DisplayUnits lists the canonical duration strings, smallest first.
func DisplayUnits() []string {
	return []string{
		UnitInstant, UnitMinutes, UnitHours, UnitDays,
		UnitMonths, UnitYears, UnitCenturies,
	}
}

// DisplayTime renders a seconds estimate as a rough human duration.
// translate localizes the unit word; pass an identity function for
// canonical English.
func DisplayTime(seconds float64, translate func(string) string) string {
	switch {
	case seconds < secondsPerMinute:
		return translate(UnitInstant)
	case seconds < secondsPerHour:
		return displayQuantity(seconds, secondsPerMinute, UnitMinutes, translate)
	case seconds < secondsPerDay:
		return displayQuantity(seconds, secondsPerHour, UnitHours, translate)
	case seconds < secondsPerMonth:
		return displayQuantity(seconds, secondsPerDay, UnitDays, translate)
	case seconds < secondsPerYear:
		return displayQuantity(seconds, secondsPerMonth, UnitMonths, translate)
	case seconds < secondsPerCentury:
		return displayQuantity(seconds, secondsPerYear, UnitYears, translate)
	default:
		return translate(UnitCenturies)
	}
}

func displayQuantity(seconds, unit float64, name string, translate func(string) string) string {
	return fmt.Sprintf("%d %s", 1+int64(math.Ceil(seconds/unit)), translate(name))
}
