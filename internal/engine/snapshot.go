package engine

import (
	"time"

	"github.com/questline-dev/questline/internal/badges"
	"github.com/questline-dev/questline/internal/mastery"
	"github.com/questline-dev/questline/internal/spacedrep"
)

// Profile is the learner's headline progression state.
type Profile struct {
	TotalXP        int       `json:"total_xp"`
	Level          int       `json:"level"`
	StreakDays     int       `json:"streak_days"`
	LastActivityAt time.Time `json:"last_activity_at"`
}

// Counters are lifetime completion tallies, kept for badge evaluation
// and the stats view.
type Counters struct {
	Lectures       int `json:"lectures"`
	Quizzes        int `json:"quizzes"`
	Challenges     int `json:"challenges"`
	Checkpoints    int `json:"checkpoints"`
	PerfectQuizzes int `json:"perfect_quizzes"`
}

// Total returns the total number of completed units of any type.
func (c Counters) Total() int {
	return c.Lectures + c.Quizzes + c.Challenges + c.Checkpoints
}

// Snapshot is the complete progression state for one learner. Maps are
// keyed by skill ID (Mastery), unit ID (Reviews, Attempts), and badge
// ID (Badges).
type Snapshot struct {
	Profile  Profile                          `json:"profile"`
	Mastery  map[string]*mastery.Record       `json:"mastery"`
	Reviews  map[string]*spacedrep.ReviewItem `json:"reviews"`
	Badges   map[string]*badges.Progress      `json:"badges"`
	Attempts map[string]int                   `json:"attempts"`
	Counters Counters                         `json:"counters"`
}

// NewSnapshot returns the state of a learner who has done nothing yet.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Profile:  Profile{Level: 1},
		Mastery:  make(map[string]*mastery.Record),
		Reviews:  make(map[string]*spacedrep.ReviewItem),
		Badges:   make(map[string]*badges.Progress),
		Attempts: make(map[string]int),
	}
}

// Clone deep-copies the snapshot. Apply mutates only a clone so a
// failed step leaves the caller's snapshot untouched.
func (s *Snapshot) Clone() *Snapshot {
	next := &Snapshot{
		Profile:  s.Profile,
		Counters: s.Counters,
		Mastery:  make(map[string]*mastery.Record, len(s.Mastery)),
		Reviews:  make(map[string]*spacedrep.ReviewItem, len(s.Reviews)),
		Badges:   make(map[string]*badges.Progress, len(s.Badges)),
		Attempts: make(map[string]int, len(s.Attempts)),
	}
	for k, v := range s.Mastery {
		cp := *v
		next.Mastery[k] = &cp
	}
	for k, v := range s.Reviews {
		cp := *v
		if v.LastReviewedAt != nil {
			at := *v.LastReviewedAt
			cp.LastReviewedAt = &at
		}
		next.Reviews[k] = &cp
	}
	for k, v := range s.Badges {
		cp := *v
		if v.EarnedAt != nil {
			at := *v.EarnedAt
			cp.EarnedAt = &at
		}
		next.Badges[k] = &cp
	}
	for k, v := range s.Attempts {
		next.Attempts[k] = v
	}
	return next
}

// Normalize replaces nil maps left behind by JSON decoding with empty
// ones so Apply can assume they exist.
func (s *Snapshot) Normalize() {
	if s.Mastery == nil {
		s.Mastery = make(map[string]*mastery.Record)
	}
	if s.Reviews == nil {
		s.Reviews = make(map[string]*spacedrep.ReviewItem)
	}
	if s.Badges == nil {
		s.Badges = make(map[string]*badges.Progress)
	}
	if s.Attempts == nil {
		s.Attempts = make(map[string]int)
	}
}

// MaxMasteryScore returns the highest mastery score across all skills.
func (s *Snapshot) MaxMasteryScore() float64 {
	var max float64
	for _, rec := range s.Mastery {
		if rec.Score > max {
			max = rec.Score
		}
	}
	return max
}

// Stats projects the snapshot into the counters badges evaluate
// against.
func (s *Snapshot) Stats() *badges.Stats {
	return &badges.Stats{
		StreakDays:          s.Profile.StreakDays,
		Level:               s.Profile.Level,
		TotalXP:             s.Profile.TotalXP,
		CompletedLectures:   s.Counters.Lectures,
		CompletedQuizzes:    s.Counters.Quizzes,
		CompletedChallenges: s.Counters.Challenges,
		TotalCompletions:    s.Counters.Total(),
		PerfectQuizCount:    s.Counters.PerfectQuizzes,
		MaxMasteryScore:     s.MaxMasteryScore(),
	}
}
