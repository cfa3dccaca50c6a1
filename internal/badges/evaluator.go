package badges

import (
	"sort"
	"time"
)

// Stats are the aggregate counters badges evaluate against.
type Stats struct {
	StreakDays          int
	Level               int
	TotalXP             int
	CompletedLectures   int
	CompletedQuizzes    int
	CompletedChallenges int
	TotalCompletions    int
	PerfectQuizCount    int
	MaxMasteryScore     float64
}

// Value returns the counter a definition tracks.
func (s *Stats) Value(def *Definition) float64 {
	switch def.Category {
	case CategoryStreak:
		return float64(s.StreakDays)
	case CategoryLevel:
		return float64(s.Level)
	case CategoryXP:
		return float64(s.TotalXP)
	case CategoryCompletion:
		switch def.Metric {
		case MetricLectures:
			return float64(s.CompletedLectures)
		case MetricQuizzes:
			return float64(s.CompletedQuizzes)
		case MetricPerfectQuizzes:
			return float64(s.PerfectQuizCount)
		default:
			return float64(s.TotalCompletions)
		}
	case CategoryMastery:
		return s.MaxMasteryScore
	default:
		return 0
	}
}

// Evaluate refreshes every badge's progress against stats and returns
// the IDs of badges newly earned at now, sorted.
//
// The pass is idempotent (an earned badge is never re-earned) and
// order-independent across badges: progress is keyed by badge ID and
// no badge reads another's state. Missing progress records are created
// in place.
func Evaluate(defs []Definition, stats *Stats, progress map[string]*Progress, now time.Time) []string {
	var unlocked []string

	for i := range defs {
		def := &defs[i]
		p, ok := progress[def.ID]
		if !ok {
			p = &Progress{BadgeID: def.ID}
			progress[def.ID] = p
		}

		p.CurrentValue = stats.Value(def)
		if p.Earned() {
			continue
		}
		if p.CurrentValue >= def.Threshold {
			earned := now
			p.EarnedAt = &earned
			unlocked = append(unlocked, def.ID)
		}
	}

	sort.Strings(unlocked)
	return unlocked
}
