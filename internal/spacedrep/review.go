// Package spacedrep schedules quiz reviews with the SM-2 algorithm.
//
// There is no named state enum; the state is the (repetitions,
// ease factor, interval) triple and the update rule is the transition
// function. Items are never deleted — a well-retained unit simply
// acquires a long interval.
package spacedrep

import (
	"math"
	"time"
)

const (
	// MinEaseFactor is the SM-2 floor; below this, intervals stop
	// shrinking no matter how often the learner fails.
	MinEaseFactor = 1.3

	// InitialEaseFactor seeds newly scheduled units.
	InitialEaseFactor = 2.5
)

// ReviewItem is the spaced-repetition state for one (learner, unit) pair.
type ReviewItem struct {
	UnitID         string     `json:"unit_id"`
	DueDate        time.Time  `json:"due_date"`
	EaseFactor     float64    `json:"ease_factor"`
	IntervalDays   int        `json:"interval_days"`
	Repetitions    int        `json:"repetitions"`
	LastReviewedAt *time.Time `json:"last_reviewed_at,omitempty"`
}

// NewReviewItem schedules a unit for its first review one day from now.
func NewReviewItem(unitID string, now time.Time) *ReviewItem {
	return &ReviewItem{
		UnitID:       unitID,
		DueDate:      now.AddDate(0, 0, 1),
		EaseFactor:   InitialEaseFactor,
		IntervalDays: 1,
		Repetitions:  0,
	}
}

// Apply advances the SM-2 state machine by one review outcome.
//
// Failing recall (quality < 3) resets repetitions and the interval;
// passing grows the interval on the 1/6/interval×ease ladder. The ease
// factor moves by the standard SM-2 adjustment either way, floored at
// MinEaseFactor.
func (ri *ReviewItem) Apply(quality Quality, now time.Time) {
	if quality < QualityBlackout {
		quality = QualityBlackout
	}
	if quality > QualityPerfect {
		quality = QualityPerfect
	}

	if quality.Passed() {
		switch ri.Repetitions {
		case 0:
			ri.IntervalDays = 1
		case 1:
			ri.IntervalDays = 6
		default:
			ri.IntervalDays = int(math.Round(float64(ri.IntervalDays) * ri.EaseFactor))
		}
		ri.Repetitions++
	} else {
		ri.Repetitions = 0
		ri.IntervalDays = 1
	}

	q := float64(quality)
	ri.EaseFactor += 0.1 - (5-q)*(0.08+(5-q)*0.02)
	if ri.EaseFactor < MinEaseFactor {
		ri.EaseFactor = MinEaseFactor
	}

	ri.DueDate = now.AddDate(0, 0, ri.IntervalDays)
	reviewed := now
	ri.LastReviewedAt = &reviewed
}

// IsDue reports whether the unit is due for review at now.
func (ri *ReviewItem) IsDue(now time.Time) bool {
	return !now.Before(ri.DueDate)
}

// OverdueDays returns how many days past due the unit is, 0 if not due.
func (ri *ReviewItem) OverdueDays(now time.Time) float64 {
	if now.Before(ri.DueDate) {
		return 0
	}
	return now.Sub(ri.DueDate).Hours() / 24.0
}

// DaysUntilDue returns whole days until the next review, 0 if due now.
func (ri *ReviewItem) DaysUntilDue(now time.Time) int {
	if ri.IsDue(now) {
		return 0
	}
	return int(math.Ceil(ri.DueDate.Sub(now).Hours() / 24.0))
}
