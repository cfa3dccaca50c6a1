package mastery

import (
	"errors"
	"math"
	"testing"
	"time"
)

const (
	graceDays = 3
	epsilon   = 0.0001
)

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestUpdate_EMASequence(t *testing.T) {
	r := NewRecord("ownership", now)

	// First sample: 0.0 + 0.25*(0.8-0.0) = 0.20
	if err := r.Update(0.8, now); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !almostEqual(r.Score, 0.20) {
		t.Errorf("score after first sample = %f, want 0.20", r.Score)
	}

	// Second sample: 0.20 + 0.25*(0.9-0.20) = 0.375
	if err := r.Update(0.9, now); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !almostEqual(r.Score, 0.375) {
		t.Errorf("score after second sample = %f, want 0.375", r.Score)
	}
}

func TestUpdate_PerfectFromMidpoint(t *testing.T) {
	r := NewRecord("lifetimes", now)
	r.Score = 0.5
	if err := r.Update(1.0, now); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !almostEqual(r.Score, 0.625) {
		t.Errorf("score = %f, want 0.625", r.Score)
	}
}

func TestUpdate_RejectsOutOfRange(t *testing.T) {
	r := NewRecord("ownership", now)
	for _, p := range []float64{-0.01, 1.01, 2.0, math.NaN()} {
		if err := r.Update(p, now); !errors.Is(err, ErrInvalidPerformance) {
			t.Errorf("Update(%f) error = %v, want ErrInvalidPerformance", p, err)
		}
	}
	if r.Score != 0 {
		t.Errorf("rejected sample mutated score: %f", r.Score)
	}
}

func TestDecay_WithinGracePeriod(t *testing.T) {
	r := NewRecord("ownership", now)
	r.Score = 0.8
	r.Decay(now.AddDate(0, 0, 2), graceDays)
	if !almostEqual(r.Score, 0.8) {
		t.Errorf("score decayed inside grace window: %f", r.Score)
	}
}

func TestDecay_AfterGracePeriod(t *testing.T) {
	r := NewRecord("ownership", now)
	r.Score = 0.8
	r.Decay(now.AddDate(0, 0, 10), graceDays)

	// 7 effective days: 0.8 * e^(-0.05*7)
	want := 0.8 * math.Exp(-0.05*7)
	if !almostEqual(r.Score, want) {
		t.Errorf("score = %f, want %f", r.Score, want)
	}
}

func TestDecay_NeverBelowFloor(t *testing.T) {
	r := NewRecord("ownership", now)
	r.Score = 0.8
	r.Decay(now.AddDate(0, 0, 365), graceDays)
	if !almostEqual(r.Score, FloorScore) {
		t.Errorf("score = %f, want floor %f", r.Score, FloorScore)
	}
}

func TestDecay_MonotonicInDaysInactive(t *testing.T) {
	prev := 1.0
	for days := 0; days <= 120; days += 5 {
		r := NewRecord("ownership", now)
		r.Score = 1.0
		r.Decay(now.AddDate(0, 0, days), graceDays)
		if r.Score > prev+epsilon {
			t.Fatalf("decay increased score at %d days: %f > %f", days, r.Score, prev)
		}
		prev = r.Score
	}
}

func TestDecay_DoesNotLiftLowScores(t *testing.T) {
	// A score pushed below the floor by bad samples stays put; decay
	// must never raise it to the floor.
	r := NewRecord("ownership", now)
	r.Score = 0.1
	r.Decay(now.AddDate(0, 0, 30), graceDays)
	if !almostEqual(r.Score, 0.1) {
		t.Errorf("decay changed sub-floor score: %f", r.Score)
	}
}

func TestSample_DecayThenUpdateOrdering(t *testing.T) {
	later := now.AddDate(0, 0, 13) // 10 effective decay days

	decayFirst := NewRecord("ownership", now)
	decayFirst.Score = 0.8
	if err := decayFirst.Sample(0.9, later, graceDays); err != nil {
		t.Fatalf("Sample: %v", err)
	}

	// Hand-computed: decay to 0.8*e^-0.5, then EMA toward 0.9.
	base := 0.8 * math.Exp(-0.05*10)
	want := base + LearningRate*(0.9-base)
	if !almostEqual(decayFirst.Score, want) {
		t.Errorf("Sample = %f, want decay-then-update %f", decayFirst.Score, want)
	}

	// The reversed order gives a different (wrong) number; make sure we
	// are not accidentally producing it.
	updated := 0.8 + LearningRate*(0.9-0.8)
	wrong := math.Max(FloorScore, updated*math.Exp(-0.05*10))
	if almostEqual(decayFirst.Score, wrong) {
		t.Errorf("Sample produced update-then-decay result %f", wrong)
	}
}

func TestSample_RejectsWithoutMutation(t *testing.T) {
	r := NewRecord("ownership", now)
	r.Score = 0.8
	last := r.LastUpdatedAt

	if err := r.Sample(1.5, now.AddDate(0, 0, 30), graceDays); !errors.Is(err, ErrInvalidPerformance) {
		t.Fatalf("Sample error = %v, want ErrInvalidPerformance", err)
	}
	if r.Score != 0.8 || !r.LastUpdatedAt.Equal(last) {
		t.Errorf("rejected sample mutated record: score %f, at %v", r.Score, r.LastUpdatedAt)
	}
}

func TestLevelDescription(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0.95, "Master"},
		{0.75, "Proficient"},
		{0.55, "Competent"},
		{0.35, "Familiar"},
		{0.1, "Novice"},
	}

	for _, tt := range tests {
		r := &Record{Score: tt.score}
		if got := r.LevelDescription(); got != tt.want {
			t.Errorf("LevelDescription(%f) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
