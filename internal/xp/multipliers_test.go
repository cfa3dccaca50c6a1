package xp

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 0.0001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestDifficultyMultipliers(t *testing.T) {
	tests := []struct {
		difficulty Difficulty
		want       float64
	}{
		{DifficultyEasy, 1.0},
		{DifficultyMedium, 1.5},
		{DifficultyHard, 2.0},
		{DifficultyVeryHard, 3.0},
	}

	for _, tt := range tests {
		if got := tt.difficulty.Multiplier(); !almostEqual(got, tt.want) {
			t.Errorf("%s.Multiplier() = %f, want %f", tt.difficulty, got, tt.want)
		}
	}
}

func TestStreakMultiplier(t *testing.T) {
	tests := []struct {
		days int
		want float64
	}{
		{0, 1.0},
		{3, 1.0},
		{4, 1.1},
		{7, 1.1},
		{8, 1.2},
		{14, 1.2},
		{15, 1.3},
		{30, 1.3},
		{31, 1.5},
		{100, 1.5},
	}

	for _, tt := range tests {
		if got := StreakMultiplier(tt.days); !almostEqual(got, tt.want) {
			t.Errorf("StreakMultiplier(%d) = %f, want %f", tt.days, got, tt.want)
		}
	}
}

func TestAccuracyMultiplier(t *testing.T) {
	tests := []struct {
		pct  float64
		want float64
	}{
		{100, 1.5},
		{99.9, 1.3},
		{90, 1.3},
		{89.9, 1.1},
		{80, 1.1},
		{75, 1.0},
		{70, 1.0},
		{65, 0.8},
		{60, 0.8},
		{59.9, 0.5},
		{0, 0.5},
	}

	for _, tt := range tests {
		if got := AccuracyMultiplier(tt.pct); !almostEqual(got, tt.want) {
			t.Errorf("AccuracyMultiplier(%f) = %f, want %f", tt.pct, got, tt.want)
		}
	}
}

func TestRetakeMultiplier(t *testing.T) {
	tests := []struct {
		attempt int
		want    float64
	}{
		{1, 1.0},
		{2, 0.5},
		{3, 0.25},
		{4, 0.1},
		{10, 0.1},
	}

	for _, tt := range tests {
		got, err := RetakeMultiplier(tt.attempt)
		if err != nil {
			t.Errorf("RetakeMultiplier(%d): unexpected error %v", tt.attempt, err)
			continue
		}
		if !almostEqual(got, tt.want) {
			t.Errorf("RetakeMultiplier(%d) = %f, want %f", tt.attempt, got, tt.want)
		}
	}
}

func TestRetakeMultiplier_RejectsInvalidAttempt(t *testing.T) {
	for _, attempt := range []int{0, -1} {
		if _, err := RetakeMultiplier(attempt); !errors.Is(err, ErrInvalidAttempt) {
			t.Errorf("RetakeMultiplier(%d) error = %v, want ErrInvalidAttempt", attempt, err)
		}
		if _, err := MasteryRetakeMultiplier(attempt); !errors.Is(err, ErrInvalidAttempt) {
			t.Errorf("MasteryRetakeMultiplier(%d) error = %v, want ErrInvalidAttempt", attempt, err)
		}
	}
}

func TestMasteryRetakeMultiplier(t *testing.T) {
	tests := []struct {
		attempt int
		want    float64
	}{
		{1, 1.0},
		{2, 0.75},
		{3, 0.5},
		{4, 0.25},
		{9, 0.25},
	}

	for _, tt := range tests {
		got, err := MasteryRetakeMultiplier(tt.attempt)
		if err != nil {
			t.Errorf("MasteryRetakeMultiplier(%d): unexpected error %v", tt.attempt, err)
			continue
		}
		if !almostEqual(got, tt.want) {
			t.Errorf("MasteryRetakeMultiplier(%d) = %f, want %f", tt.attempt, got, tt.want)
		}
	}
}

func TestAward_QuizScenarios(t *testing.T) {
	tests := []struct {
		name       string
		content    ContentType
		difficulty Difficulty
		accuracy   float64
		streak     int
		attempt    int
		want       int
	}{
		{"easy quiz, perfect, no streak", ContentQuiz, DifficultyEasy, 100, 0, 1, 75},
		{"medium quiz, 90%, 10-day streak", ContentQuiz, DifficultyMedium, 90, 10, 1, 117},
		{"hard quiz, 75%, no streak", ContentQuiz, DifficultyHard, 75, 0, 1, 100},
		{"easy quiz, third attempt", ContentQuiz, DifficultyEasy, 100, 0, 3, 19}, // 75 * 0.25
		{"easy lecture, no streak", ContentLecture, DifficultyEasy, 0, 0, 1, 25},
		{"medium lecture, 10-day streak", ContentLecture, DifficultyMedium, 0, 10, 1, 45},
		{"hard lecture, 31-day streak", ContentLecture, DifficultyHard, 0, 31, 1, 75},
		{"checkpoint, very hard, perfect", ContentCheckpoint, DifficultyVeryHard, 100, 0, 1, 900},
	}

	for _, tt := range tests {
		got, err := Award(tt.content, tt.content.BaseXP(), tt.difficulty, tt.accuracy, tt.streak, tt.attempt)
		if err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: Award = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestAward_BaseXPOverride(t *testing.T) {
	got, err := Award(ContentChallenge, 150, DifficultyHard, 100, 0, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 450 { // 150 * 2.0 * 1.5
		t.Errorf("Award with overridden base = %d, want 450", got)
	}
}

func TestAward_InvalidAttempt(t *testing.T) {
	if _, err := Award(ContentQuiz, ContentQuiz.BaseXP(), DifficultyEasy, 100, 0, 0); !errors.Is(err, ErrInvalidAttempt) {
		t.Errorf("Award with attempt 0: error = %v, want ErrInvalidAttempt", err)
	}
}

func TestParseDifficulty(t *testing.T) {
	if _, err := ParseDifficulty("impossible"); err == nil {
		t.Error("ParseDifficulty accepted unknown tier")
	}
	d, err := ParseDifficulty("very_hard")
	if err != nil || d != DifficultyVeryHard {
		t.Errorf("ParseDifficulty(very_hard) = %v, %v", d, err)
	}
}

func TestParseContentType(t *testing.T) {
	if _, err := ParseContentType("podcast"); err == nil {
		t.Error("ParseContentType accepted unknown type")
	}
	c, err := ParseContentType("quiz")
	if err != nil || c != ContentQuiz {
		t.Errorf("ParseContentType(quiz) = %v, %v", c, err)
	}
}
