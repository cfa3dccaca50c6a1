package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/questline-dev/questline/internal/badges"
	"github.com/questline-dev/questline/internal/config"
	"github.com/questline-dev/questline/internal/content"
	"github.com/questline-dev/questline/internal/xp"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	cat, err := content.NewCatalog([]content.Unit{
		{ID: "lec-1", Title: "Intro", Type: xp.ContentLecture, Difficulty: xp.DifficultyEasy, Skills: []string{"ownership"}},
		{ID: "quiz-1", Title: "Basics", Type: xp.ContentQuiz, Difficulty: xp.DifficultyEasy, Skills: []string{"ownership"}},
		{ID: "quiz-med", Title: "Deeper", Type: xp.ContentQuiz, Difficulty: xp.DifficultyMedium, Skills: []string{"ownership", "borrowing"}},
		{ID: "chal-1", Title: "Puzzle", Type: xp.ContentChallenge, Difficulty: xp.DifficultyHard, Skills: []string{"lifetimes"}, BaseXPOverride: 150},
	})
	require.NoError(t, err)
	return New(cat, badges.BuiltinDefinitions(), config.Default().Progression)
}

var day0 = time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

func TestApply_FirstQuizPerfect(t *testing.T) {
	eng := testEngine(t)
	snap := NewSnapshot()

	next, fx, err := eng.Apply(snap, Event{Kind: KindQuizSubmitted, UnitID: "quiz-1", ScorePct: 100, OccurredAt: day0})
	require.NoError(t, err)

	// 50 * 1.0 difficulty * 1.5 accuracy, no streak, first attempt.
	assert.Equal(t, 75, fx.XPEarned)
	assert.Equal(t, 75, next.Profile.TotalXP)
	assert.Equal(t, 1, fx.NewLevel)
	assert.False(t, fx.LeveledUp)

	assert.Equal(t, 1, fx.Streak.Count)
	assert.Equal(t, 1, next.Profile.StreakDays)
	assert.Equal(t, day0, next.Profile.LastActivityAt)

	require.Len(t, fx.MasteryDeltas, 1)
	assert.Equal(t, "ownership", fx.MasteryDeltas[0].SkillID)
	assert.InDelta(t, 0.25, fx.MasteryDeltas[0].After, 1e-9)

	assert.True(t, fx.ReviewScheduled)
	assert.Equal(t, day0.AddDate(0, 0, 1), fx.NextReviewDue)
	require.NotNil(t, next.Reviews["quiz-1"])
	assert.Equal(t, 1, next.Reviews["quiz-1"].Repetitions)

	assert.Equal(t, 1, next.Counters.Quizzes)
	assert.Equal(t, 1, next.Counters.PerfectQuizzes)
	assert.Equal(t, []string{"perfect_score"}, fx.NewlyUnlockedBadges)
}

func TestApply_MediumQuizWithStreak(t *testing.T) {
	eng := testEngine(t)
	snap := NewSnapshot()
	snap.Profile.StreakDays = 10
	snap.Profile.LastActivityAt = day0.AddDate(0, 0, -1)

	next, fx, err := eng.Apply(snap, Event{Kind: KindQuizSubmitted, UnitID: "quiz-med", ScorePct: 90, OccurredAt: day0})
	require.NoError(t, err)

	// 50 * 1.5 difficulty * 1.3 accuracy * 1.2 streak = 117.
	assert.Equal(t, 117, fx.XPEarned)
	assert.Equal(t, 11, next.Profile.StreakDays)
	assert.False(t, fx.Streak.IsGracePeriod)

	// Deltas come out sorted by skill ID.
	require.Len(t, fx.MasteryDeltas, 2)
	assert.Equal(t, "borrowing", fx.MasteryDeltas[0].SkillID)
	assert.Equal(t, "ownership", fx.MasteryDeltas[1].SkillID)
}

func TestApply_PreEventStreakMultiplier(t *testing.T) {
	eng := testEngine(t)
	snap := NewSnapshot()
	// Day 3 -> 4 crosses the multiplier boundary; the award must still
	// use the pre-event value of 3 (multiplier 1.0).
	snap.Profile.StreakDays = 3
	snap.Profile.LastActivityAt = day0.AddDate(0, 0, -1)

	next, fx, err := eng.Apply(snap, Event{Kind: KindQuizSubmitted, UnitID: "quiz-1", ScorePct: 100, OccurredAt: day0})
	require.NoError(t, err)
	assert.Equal(t, 75, fx.XPEarned)
	assert.Equal(t, 4, next.Profile.StreakDays)
}

func TestApply_RetakeDiscounts(t *testing.T) {
	eng := testEngine(t)
	snap := NewSnapshot()
	ev := Event{Kind: KindQuizSubmitted, UnitID: "quiz-1", ScorePct: 100, OccurredAt: day0}

	var fx *Effects
	var err error
	for i := 0; i < 3; i++ {
		snap, fx, err = eng.Apply(snap, ev)
		require.NoError(t, err)
	}

	// Third attempt: XP at 0.25, mastery performance at 0.5.
	assert.Equal(t, 19, fx.XPEarned) // round(75 * 0.25)
	assert.Equal(t, 3, fx.Attempt)
	assert.Equal(t, 3, snap.Attempts["quiz-1"])

	// EMA over performances 1.0, 0.75, 0.5.
	require.NotNil(t, snap.Mastery["ownership"])
	assert.InDelta(t, 0.40625, snap.Mastery["ownership"].Score, 1e-9)
}

func TestApply_LectureHasNoScoreOrReview(t *testing.T) {
	eng := testEngine(t)
	snap := NewSnapshot()

	next, fx, err := eng.Apply(snap, Event{Kind: KindLectureCompleted, UnitID: "lec-1", OccurredAt: day0})
	require.NoError(t, err)

	assert.Equal(t, 25, fx.XPEarned)
	// Lectures skip the retake counter but still report attempt 1, so
	// the event log (which requires attempt >= 1) can record them.
	assert.Equal(t, 1, fx.Attempt)
	assert.Empty(t, fx.MasteryDeltas)
	assert.False(t, fx.ReviewScheduled)
	assert.Empty(t, next.Reviews)
	assert.Empty(t, next.Attempts)
	assert.Equal(t, 1, next.Counters.Lectures)
	assert.Contains(t, fx.NewlyUnlockedBadges, "first_steps")
}

func TestApply_ChallengeBaseXPOverride(t *testing.T) {
	eng := testEngine(t)
	snap := NewSnapshot()

	next, fx, err := eng.Apply(snap, Event{Kind: KindChallengeCompleted, UnitID: "chal-1", ScorePct: 100, OccurredAt: day0})
	require.NoError(t, err)

	// 150 override * 2.0 difficulty * 1.5 accuracy = 450.
	assert.Equal(t, 450, fx.XPEarned)
	assert.Equal(t, 2, fx.NewLevel) // 450 >= 283
	assert.True(t, fx.LeveledUp)
	assert.Equal(t, 1, next.Counters.Challenges)
}

func TestApply_StreakGraceWindow(t *testing.T) {
	eng := testEngine(t)
	snap := NewSnapshot()
	snap.Profile.StreakDays = 5
	snap.Profile.LastActivityAt = day0.AddDate(0, 0, -2)

	next, fx, err := eng.Apply(snap, Event{Kind: KindQuizSubmitted, UnitID: "quiz-1", ScorePct: 100, OccurredAt: day0})
	require.NoError(t, err)

	assert.True(t, fx.Streak.IsGracePeriod)
	assert.Equal(t, 5, fx.Streak.Count)
	assert.Equal(t, 3, fx.Streak.GraceDaysRemaining)
	assert.Equal(t, 5, next.Profile.StreakDays)

	// Pre-event streak of 5 puts the award in the 1.1 band.
	assert.Equal(t, 83, fx.XPEarned) // round(50 * 1.5 * 1.1)
}

func TestApply_UnknownUnit(t *testing.T) {
	eng := testEngine(t)
	snap := NewSnapshot()

	next, fx, err := eng.Apply(snap, Event{Kind: KindQuizSubmitted, UnitID: "quiz-missing", ScorePct: 100, OccurredAt: day0})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownUnit))
	assert.Nil(t, next)
	assert.Nil(t, fx)

	var step *StepError
	require.True(t, errors.As(err, &step))
	assert.Equal(t, "validate", step.Step)
}

func TestApply_KindMismatch(t *testing.T) {
	eng := testEngine(t)
	_, _, err := eng.Apply(NewSnapshot(), Event{Kind: KindQuizSubmitted, UnitID: "lec-1", ScorePct: 100, OccurredAt: day0})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrKindMismatch))
}

func TestApply_InvalidScoreLeavesSnapshotAlone(t *testing.T) {
	eng := testEngine(t)
	snap := NewSnapshot()

	for _, score := range []float64{-1, 101} {
		next, fx, err := eng.Apply(snap, Event{Kind: KindQuizSubmitted, UnitID: "quiz-1", ScorePct: score, OccurredAt: day0})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidScore))
		assert.Nil(t, next)
		assert.Nil(t, fx)
	}

	assert.Equal(t, 0, snap.Profile.TotalXP)
	assert.Empty(t, snap.Attempts)
	assert.Empty(t, snap.Mastery)
	assert.Empty(t, snap.Reviews)
}

func TestApply_InputSnapshotIsNotMutated(t *testing.T) {
	eng := testEngine(t)
	snap := NewSnapshot()

	next, _, err := eng.Apply(snap, Event{Kind: KindQuizSubmitted, UnitID: "quiz-1", ScorePct: 100, OccurredAt: day0})
	require.NoError(t, err)
	require.NotSame(t, snap, next)

	assert.Equal(t, 0, snap.Profile.TotalXP)
	assert.Empty(t, snap.Mastery)
	assert.Empty(t, snap.Reviews)
	assert.Empty(t, snap.Attempts)

	// Mutating the returned snapshot must not leak back either.
	next.Mastery["ownership"].Score = 0.99
	assert.Empty(t, snap.Mastery)
}

func TestApply_BadgeNotReearned(t *testing.T) {
	eng := testEngine(t)
	snap := NewSnapshot()
	ev := Event{Kind: KindQuizSubmitted, UnitID: "quiz-1", ScorePct: 100, OccurredAt: day0}

	snap, fx, err := eng.Apply(snap, ev)
	require.NoError(t, err)
	assert.Contains(t, fx.NewlyUnlockedBadges, "perfect_score")

	_, fx, err = eng.Apply(snap, ev)
	require.NoError(t, err)
	assert.NotContains(t, fx.NewlyUnlockedBadges, "perfect_score")
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("quiz_submitted")
	require.NoError(t, err)
	assert.Equal(t, KindQuizSubmitted, k)

	_, err = ParseKind("nap_taken")
	require.Error(t, err)
}

func TestSnapshotClone_DeepCopiesPointers(t *testing.T) {
	snap := NewSnapshot()
	eng := testEngine(t)
	snap, _, err := eng.Apply(snap, Event{Kind: KindQuizSubmitted, UnitID: "quiz-1", ScorePct: 100, OccurredAt: day0})
	require.NoError(t, err)

	clone := snap.Clone()
	clone.Reviews["quiz-1"].EaseFactor = 9.9
	clone.Badges["perfect_score"].EarnedAt = nil

	assert.NotEqual(t, 9.9, snap.Reviews["quiz-1"].EaseFactor)
	assert.NotNil(t, snap.Badges["perfect_score"].EarnedAt)
}
