// Package streak tracks the learner's daily activity streak.
//
// The tracker is a pure function of (last activity, now, grace window):
// "now" is always passed in so every transition is replayable in tests.
package streak

import "time"

// Info is the streak state after evaluating an activity event.
type Info struct {
	Count              int
	IsGracePeriod      bool
	GraceDaysRemaining int
}

// Advance evaluates one activity event against the previous streak.
//
// Branches, on the calendar-day gap between lastActivity and now:
// same day keeps the streak; exactly one day increments it; a gap
// within the grace window keeps the count but reports the grace state;
// anything longer resets to 1. A zero lastActivity means first-ever
// activity and initializes the streak to 1.
func Advance(lastActivity, now time.Time, current, graceDays int) Info {
	if lastActivity.IsZero() {
		return Info{Count: 1}
	}

	gap := DaysBetween(lastActivity, now)
	switch {
	case gap <= 0:
		return Info{Count: current}
	case gap == 1:
		return Info{Count: current + 1}
	case gap <= graceDays:
		return Info{
			Count:              current,
			IsGracePeriod:      true,
			GraceDaysRemaining: graceDays - gap,
		}
	default:
		return Info{Count: 1}
	}
}

// DaysBetween returns the number of calendar days from a to b,
// ignoring time of day.
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	aDay := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	bDay := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(bDay.Sub(aDay).Hours() / 24)
}
