package xp

import "fmt"

// Difficulty is the difficulty tier of a content unit.
type Difficulty string

const (
	DifficultyEasy     Difficulty = "easy"
	DifficultyMedium   Difficulty = "medium"
	DifficultyHard     Difficulty = "hard"
	DifficultyVeryHard Difficulty = "very_hard"
)

// AllDifficulties returns all difficulty tiers from lowest to highest.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyVeryHard}
}

// ParseDifficulty converts a string to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyVeryHard:
		return Difficulty(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q", s)
	}
}

// DisplayName returns a human-readable label for the difficulty.
func (d Difficulty) DisplayName() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	case DifficultyVeryHard:
		return "Very Hard"
	default:
		return string(d)
	}
}

// Multiplier returns the XP multiplier for the difficulty tier.
func (d Difficulty) Multiplier() float64 {
	switch d {
	case DifficultyEasy:
		return 1.0
	case DifficultyMedium:
		return 1.5
	case DifficultyHard:
		return 2.0
	case DifficultyVeryHard:
		return 3.0
	default:
		return 1.0
	}
}

// ContentType is the kind of learning activity that earns XP.
type ContentType string

const (
	ContentLecture    ContentType = "lecture"
	ContentQuiz       ContentType = "quiz"
	ContentChallenge  ContentType = "challenge"
	ContentCheckpoint ContentType = "checkpoint"
)

// AllContentTypes returns all content types in display order.
func AllContentTypes() []ContentType {
	return []ContentType{ContentLecture, ContentQuiz, ContentChallenge, ContentCheckpoint}
}

// ParseContentType converts a string to a ContentType.
func ParseContentType(s string) (ContentType, error) {
	switch ContentType(s) {
	case ContentLecture, ContentQuiz, ContentChallenge, ContentCheckpoint:
		return ContentType(s), nil
	default:
		return "", fmt.Errorf("unknown content type %q", s)
	}
}

// DisplayName returns a human-readable label for the content type.
func (c ContentType) DisplayName() string {
	switch c {
	case ContentLecture:
		return "Lecture"
	case ContentQuiz:
		return "Quiz"
	case ContentChallenge:
		return "Challenge"
	case ContentCheckpoint:
		return "Checkpoint"
	default:
		return string(c)
	}
}

// BaseXP returns the base XP awarded for completing a unit of this type.
func (c ContentType) BaseXP() int {
	switch c {
	case ContentLecture:
		return 25
	case ContentQuiz:
		return 50
	case ContentChallenge:
		return 100
	case ContentCheckpoint:
		return 200
	default:
		return 0
	}
}

// HasAccuracy reports whether this content type carries a score
// percentage. Lectures are completion-only; everything else is graded.
func (c ContentType) HasAccuracy() bool {
	return c != ContentLecture
}
