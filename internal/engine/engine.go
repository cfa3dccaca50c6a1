package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/questline-dev/questline/internal/badges"
	"github.com/questline-dev/questline/internal/config"
	"github.com/questline-dev/questline/internal/content"
	"github.com/questline-dev/questline/internal/mastery"
	"github.com/questline-dev/questline/internal/spacedrep"
	"github.com/questline-dev/questline/internal/streak"
	"github.com/questline-dev/questline/internal/xp"
)

// Engine applies learning events to progression snapshots. It holds
// only read-only collaborators and carries no mutable state, so one
// Engine serves any number of snapshots.
type Engine struct {
	catalog *content.Catalog
	defs    []badges.Definition
	cfg     config.ProgressionConfig
}

// New builds an engine over a content catalog, badge definitions, and
// progression tuning.
func New(catalog *content.Catalog, defs []badges.Definition, cfg config.ProgressionConfig) *Engine {
	return &Engine{catalog: catalog, defs: defs, cfg: cfg}
}

// Apply runs one progression step and returns the updated snapshot
// plus the effects of the step. The input snapshot is never mutated:
// on error the returned snapshot and effects are nil and snap is
// exactly as it was.
//
// Step order is fixed: validate, attempt increment, XP award (using
// the pre-event streak), streak advance, level recompute, mastery
// samples, review scheduling, counters, badge evaluation.
func (e *Engine) Apply(snap *Snapshot, ev Event) (*Snapshot, *Effects, error) {
	ct, err := ev.Kind.ContentType()
	if err != nil {
		return nil, nil, stepErr("validate", err)
	}
	unit := e.catalog.Unit(ev.UnitID)
	if unit == nil {
		return nil, nil, stepErr("validate", fmt.Errorf("%w: %q", ErrUnknownUnit, ev.UnitID))
	}
	if unit.Type != ct {
		return nil, nil, stepErr("validate", fmt.Errorf("%w: unit %q is a %s", ErrKindMismatch, ev.UnitID, unit.Type))
	}
	if ct.HasAccuracy() {
		if ev.ScorePct < 0 || ev.ScorePct > 100 || math.IsNaN(ev.ScorePct) {
			return nil, nil, stepErr("validate", fmt.Errorf("%w: got %v", ErrInvalidScore, ev.ScorePct))
		}
	}

	next := snap.Clone()
	fx := &Effects{}

	// Lectures have no retake tracking; every completion is attempt 1.
	attempt := 1
	if ct != xp.ContentLecture {
		attempt = next.Attempts[ev.UnitID] + 1
		next.Attempts[ev.UnitID] = attempt
	}
	fx.Attempt = attempt

	// XP uses the streak as it stood before this event, so an event
	// can't lift its own multiplier.
	earned, err := xp.Award(ct, unit.BaseXP(), unit.Difficulty, ev.ScorePct, snap.Profile.StreakDays, attempt)
	if err != nil {
		return nil, nil, stepErr("xp", err)
	}
	if earned < 0 {
		return nil, nil, stepErr("xp", ErrNegativeXPDelta)
	}
	fx.XPEarned = earned

	info := streak.Advance(next.Profile.LastActivityAt, ev.OccurredAt, next.Profile.StreakDays, e.cfg.StreakGraceDays)
	next.Profile.StreakDays = info.Count
	next.Profile.LastActivityAt = ev.OccurredAt
	fx.Streak = info

	next.Profile.TotalXP += earned
	newLevel := xp.CalculateLevel(next.Profile.TotalXP)
	fx.LeveledUp = newLevel > next.Profile.Level
	next.Profile.Level = newLevel
	fx.NewLevel = newLevel

	if ct.HasAccuracy() {
		discount, err := xp.MasteryRetakeMultiplier(attempt)
		if err != nil {
			return nil, nil, stepErr("mastery", err)
		}
		performance := ev.ScorePct / 100 * discount

		skills := append([]string(nil), unit.Skills...)
		sort.Strings(skills)
		for _, skill := range skills {
			rec := next.Mastery[skill]
			if rec == nil {
				rec = mastery.NewRecord(skill, ev.OccurredAt)
				next.Mastery[skill] = rec
			}
			before := rec.Score
			if err := rec.Sample(performance, ev.OccurredAt, e.cfg.MasteryGraceDays); err != nil {
				return nil, nil, stepErr("mastery", err)
			}
			fx.MasteryDeltas = append(fx.MasteryDeltas, MasteryDelta{
				SkillID: skill,
				Before:  before,
				After:   rec.Score,
			})
		}
	}

	if ct == xp.ContentQuiz {
		item := next.Reviews[ev.UnitID]
		if item == nil {
			item = spacedrep.NewReviewItem(ev.UnitID, ev.OccurredAt)
			next.Reviews[ev.UnitID] = item
		}
		item.Apply(spacedrep.QualityFromScore(ev.ScorePct), ev.OccurredAt)
		fx.ReviewScheduled = true
		fx.NextReviewDue = item.DueDate
	}

	switch ct {
	case xp.ContentLecture:
		next.Counters.Lectures++
	case xp.ContentQuiz:
		next.Counters.Quizzes++
		if ev.ScorePct >= 100 {
			next.Counters.PerfectQuizzes++
		}
	case xp.ContentChallenge:
		next.Counters.Challenges++
	case xp.ContentCheckpoint:
		next.Counters.Checkpoints++
	}

	fx.NewlyUnlockedBadges = badges.Evaluate(e.defs, next.Stats(), next.Badges, ev.OccurredAt)

	return next, fx, nil
}
