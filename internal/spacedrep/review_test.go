package spacedrep

import (
	"math"
	"testing"
	"time"
)

const epsilon = 0.0001

var now = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestNewReviewItem(t *testing.T) {
	ri := NewReviewItem("quiz-ownership-1", now)
	if ri.IntervalDays != 1 || ri.Repetitions != 0 {
		t.Errorf("initial state = interval %d, reps %d, want 1, 0", ri.IntervalDays, ri.Repetitions)
	}
	if !almostEqual(ri.EaseFactor, 2.5) {
		t.Errorf("initial ease = %f, want 2.5", ri.EaseFactor)
	}
	if !ri.DueDate.Equal(now.AddDate(0, 0, 1)) {
		t.Errorf("initial due date = %v, want tomorrow", ri.DueDate)
	}
	if ri.LastReviewedAt != nil {
		t.Error("fresh item has LastReviewedAt set")
	}
}

func TestApply_PassingLadder(t *testing.T) {
	ri := NewReviewItem("quiz-1", now)

	ri.Apply(QualityGood, now)
	if ri.Repetitions != 1 || ri.IntervalDays != 1 {
		t.Fatalf("after 1st pass: reps %d interval %d, want 1, 1", ri.Repetitions, ri.IntervalDays)
	}

	ri.Apply(QualityGood, now.AddDate(0, 0, 1))
	if ri.Repetitions != 2 || ri.IntervalDays != 6 {
		t.Fatalf("after 2nd pass: reps %d interval %d, want 2, 6", ri.Repetitions, ri.IntervalDays)
	}

	// Third pass grows by the ease factor.
	easeBefore := ri.EaseFactor
	ri.Apply(QualityGood, now.AddDate(0, 0, 7))
	want := int(math.Round(6 * easeBefore))
	if ri.Repetitions != 3 || ri.IntervalDays != want {
		t.Fatalf("after 3rd pass: reps %d interval %d, want 3, %d", ri.Repetitions, ri.IntervalDays, want)
	}
}

func TestApply_FailureResets(t *testing.T) {
	ri := NewReviewItem("quiz-1", now)
	ri.Repetitions = 5
	ri.IntervalDays = 30
	ri.EaseFactor = 2.0

	ri.Apply(QualityHard, now)
	if ri.Repetitions != 0 {
		t.Errorf("repetitions = %d, want 0 after failure", ri.Repetitions)
	}
	if ri.IntervalDays != 1 {
		t.Errorf("interval = %d, want 1 after failure", ri.IntervalDays)
	}
	if !ri.DueDate.Equal(now.AddDate(0, 0, 1)) {
		t.Errorf("due date = %v, want tomorrow after failure", ri.DueDate)
	}
}

func TestApply_FailureNeverGrowsInterval(t *testing.T) {
	for q := QualityBlackout; q < QualityDifficult; q++ {
		ri := NewReviewItem("quiz-1", now)
		ri.Repetitions = 8
		ri.IntervalDays = 120
		ri.Apply(q, now)
		if ri.IntervalDays > 1 {
			t.Errorf("quality %d grew interval to %d", q, ri.IntervalDays)
		}
	}
}

func TestApply_EaseFactorFloor(t *testing.T) {
	ri := NewReviewItem("quiz-1", now)
	for i := 0; i < 20; i++ {
		ri.Apply(QualityBlackout, now.AddDate(0, 0, i))
		if ri.EaseFactor < MinEaseFactor-epsilon {
			t.Fatalf("ease factor %f fell below floor after %d failures", ri.EaseFactor, i+1)
		}
	}
	if !almostEqual(ri.EaseFactor, MinEaseFactor) {
		t.Errorf("ease factor = %f, want pinned at %f", ri.EaseFactor, MinEaseFactor)
	}
}

func TestApply_EaseFactorAdjustment(t *testing.T) {
	// Perfect recall raises ease by exactly 0.1; Good leaves it down
	// slightly; anything below Good lowers it.
	perfect := NewReviewItem("quiz-1", now)
	perfect.Apply(QualityPerfect, now)
	if !almostEqual(perfect.EaseFactor, 2.6) {
		t.Errorf("ease after Perfect = %f, want 2.6", perfect.EaseFactor)
	}

	good := NewReviewItem("quiz-2", now)
	good.Apply(QualityGood, now)
	if !almostEqual(good.EaseFactor, 2.5) {
		t.Errorf("ease after Good = %f, want 2.5", good.EaseFactor)
	}

	difficult := NewReviewItem("quiz-3", now)
	difficult.Apply(QualityDifficult, now)
	if !almostEqual(difficult.EaseFactor, 2.36) {
		t.Errorf("ease after Difficult = %f, want 2.36", difficult.EaseFactor)
	}
}

func TestApply_InvariantsUnderRandomishSequence(t *testing.T) {
	ri := NewReviewItem("quiz-1", now)
	qualities := []Quality{5, 4, 2, 5, 5, 0, 3, 4, 5, 1, 4, 4, 5, 5, 5}

	cur := now
	for i, q := range qualities {
		cur = cur.AddDate(0, 0, 1)
		ri.Apply(q, cur)
		if ri.EaseFactor < MinEaseFactor-epsilon {
			t.Fatalf("step %d: ease %f below floor", i, ri.EaseFactor)
		}
		if ri.IntervalDays < 1 {
			t.Fatalf("step %d: interval %d below 1", i, ri.IntervalDays)
		}
		if ri.Repetitions < 0 {
			t.Fatalf("step %d: repetitions %d negative", i, ri.Repetitions)
		}
		if !ri.DueDate.Equal(cur.AddDate(0, 0, ri.IntervalDays)) {
			t.Fatalf("step %d: due date %v inconsistent with interval %d", i, ri.DueDate, ri.IntervalDays)
		}
	}
}

func TestIsDueAndOverdue(t *testing.T) {
	ri := NewReviewItem("quiz-1", now)
	if ri.IsDue(now) {
		t.Error("fresh item due immediately")
	}
	if !ri.IsDue(now.AddDate(0, 0, 1)) {
		t.Error("item not due at its due date")
	}
	if d := ri.OverdueDays(now.AddDate(0, 0, 3)); !almostEqual(d, 2) {
		t.Errorf("OverdueDays = %f, want 2", d)
	}
	if d := ri.OverdueDays(now); d != 0 {
		t.Errorf("OverdueDays before due = %f, want 0", d)
	}
}

func TestDaysUntilDue(t *testing.T) {
	ri := NewReviewItem("quiz-1", now)
	ri.DueDate = now.AddDate(0, 0, 5)
	if d := ri.DaysUntilDue(now); d != 5 {
		t.Errorf("DaysUntilDue = %d, want 5", d)
	}
	if d := ri.DaysUntilDue(now.AddDate(0, 0, 6)); d != 0 {
		t.Errorf("DaysUntilDue past due = %d, want 0", d)
	}
}
