package xp

import (
	"errors"
	"math"
)

// ErrInvalidAttempt is returned when an attempt number below 1 is
// passed to a retake multiplier. Attempt numbers are 1-indexed; a zero
// must never silently turn into 0 XP through arithmetic.
var ErrInvalidAttempt = errors.New("attempt number must be >= 1")

// StreakMultiplier returns the XP multiplier for a streak length in days.
func StreakMultiplier(streakDays int) float64 {
	switch {
	case streakDays <= 3:
		return 1.0
	case streakDays <= 7:
		return 1.1
	case streakDays <= 14:
		return 1.2
	case streakDays <= 30:
		return 1.3
	default:
		return 1.5
	}
}

// AccuracyMultiplier returns the XP multiplier for a score percentage.
func AccuracyMultiplier(accuracyPct float64) float64 {
	switch {
	case accuracyPct >= 100:
		return 1.5
	case accuracyPct >= 90:
		return 1.3
	case accuracyPct >= 80:
		return 1.1
	case accuracyPct >= 70:
		return 1.0
	case accuracyPct >= 60:
		return 0.8
	default:
		return 0.5
	}
}

// RetakeMultiplier returns the XP multiplier for the given 1-indexed
// attempt number. Later attempts on the same unit earn steeply less.
func RetakeMultiplier(attempt int) (float64, error) {
	switch {
	case attempt < 1:
		return 0, ErrInvalidAttempt
	case attempt == 1:
		return 1.0, nil
	case attempt == 2:
		return 0.5, nil
	case attempt == 3:
		return 0.25, nil
	default:
		return 0.1, nil
	}
}

// MasteryRetakeMultiplier returns the performance discount for the
// given 1-indexed attempt number. A gentler tier than the XP retake
// multiplier: retakes still count toward mastery, just less.
func MasteryRetakeMultiplier(attempt int) (float64, error) {
	switch {
	case attempt < 1:
		return 0, ErrInvalidAttempt
	case attempt == 1:
		return 1.0, nil
	case attempt == 2:
		return 0.75, nil
	case attempt == 3:
		return 0.5, nil
	default:
		return 0.25, nil
	}
}

// Award computes the rounded XP for a completion event. baseXP comes
// from the content catalog (usually the content type's default).
// accuracyPct is ignored for content types without a score (lectures);
// pass the pre-event streak so the multiplier can't feed back into the
// same event.
func Award(content ContentType, baseXP int, difficulty Difficulty, accuracyPct float64, streakDays, attempt int) (int, error) {
	retake, err := RetakeMultiplier(attempt)
	if err != nil {
		return 0, err
	}

	amount := float64(baseXP) * difficulty.Multiplier() * StreakMultiplier(streakDays) * retake
	if content.HasAccuracy() {
		amount *= AccuracyMultiplier(accuracyPct)
	}
	return int(math.Round(amount)), nil
}
