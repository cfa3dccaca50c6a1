package mastery

import (
	"errors"
	"math"
	"time"

	"github.com/questline-dev/questline/internal/streak"
)

const (
	// LearningRate blends a new performance sample into the score.
	LearningRate = 0.25

	// DecayRate is the per-day exponential decay during inactivity.
	DecayRate = 0.05

	// FloorScore is the lowest a positive score can sink through decay
	// alone. A bad performance sample can still pull it lower.
	FloorScore = 0.30
)

// ErrInvalidPerformance is returned when a performance sample falls
// outside [0,1]. Out-of-range values are rejected rather than clamped
// so a caller bug can't hide behind a silently saturated score.
var ErrInvalidPerformance = errors.New("performance must be in [0,1]")

// Update blends a performance sample into the record's score using an
// exponential moving average and stamps the update time.
func (r *Record) Update(performance float64, now time.Time) error {
	if performance < 0 || performance > 1 || math.IsNaN(performance) {
		return ErrInvalidPerformance
	}
	r.Score = clamp01(r.Score + LearningRate*(performance-r.Score))
	r.LastUpdatedAt = now
	return nil
}

// Decay applies inactivity decay as of now. Days inside the grace
// window are free; beyond it the score shrinks by e^(-DecayRate·days),
// never below FloorScore. The update timestamp is left alone so
// repeated reads keep decaying from the original activity date.
func (r *Record) Decay(now time.Time, graceDays int) {
	daysInactive := streak.DaysBetween(r.LastUpdatedAt, now) - graceDays
	if daysInactive <= 0 {
		return
	}
	// Scores already at or below the floor have nothing to decay toward;
	// flooring them would raise the score, and decay never raises.
	if r.Score <= FloorScore {
		return
	}
	decayed := r.Score * math.Exp(-DecayRate*float64(daysInactive))
	r.Score = math.Max(FloorScore, decayed)
}

// Sample applies decay and then the EMA update, in that order. This is
// the entry point the orchestrator uses when a performance event
// arrives after a gap: decaying after the update would overstate the
// penalty.
func (r *Record) Sample(performance float64, now time.Time, graceDays int) error {
	if performance < 0 || performance > 1 || math.IsNaN(performance) {
		return ErrInvalidPerformance
	}
	r.Decay(now, graceDays)
	return r.Update(performance, now)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
