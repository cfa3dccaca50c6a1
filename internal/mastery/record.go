// Package mastery maintains per-skill mastery scores.
//
// A score is an exponential moving average over performance samples in
// [0,1], with exponential decay during inactivity. Both rules are pure:
// "now" is a parameter, never a clock read.
package mastery

import "time"

// Record holds the mastery state for a single (learner, skill) pair.
// A skill the learner has never practiced has score 0; the record is
// created lazily on the first performance sample.
type Record struct {
	SkillID       string    `json:"skill_id"`
	Score         float64   `json:"score"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
}

// NewRecord creates a zero-score record for a skill first seen at now.
func NewRecord(skillID string, now time.Time) *Record {
	return &Record{SkillID: skillID, LastUpdatedAt: now}
}

// LevelDescription buckets the score into a coarse label for display.
func (r *Record) LevelDescription() string {
	switch {
	case r.Score >= 0.9:
		return "Master"
	case r.Score >= 0.7:
		return "Proficient"
	case r.Score >= 0.5:
		return "Competent"
	case r.Score >= 0.3:
		return "Familiar"
	default:
		return "Novice"
	}
}
