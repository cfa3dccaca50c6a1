package engine

import (
	"time"

	"github.com/questline-dev/questline/internal/streak"
)

// MasteryDelta reports one skill's mastery movement during a step.
type MasteryDelta struct {
	SkillID string
	Before  float64
	After   float64
}

// Effects reports everything a progression step changed, for display
// and for the event log. Slices are sorted so output is deterministic.
type Effects struct {
	XPEarned            int
	Attempt             int
	LeveledUp           bool
	NewLevel            int
	Streak              streak.Info
	MasteryDeltas       []MasteryDelta
	ReviewScheduled     bool
	NextReviewDue       time.Time
	NewlyUnlockedBadges []string
}
