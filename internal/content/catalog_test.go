package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/questline-dev/questline/internal/xp"
)

const sampleCatalog = `{
	"units": [
		{"id": "lec-ownership-1", "title": "Intro to Ownership", "type": "lecture", "difficulty": "easy", "skills": ["ownership"]},
		{"id": "quiz-ownership-1", "title": "Ownership Basics Quiz", "type": "quiz", "difficulty": "medium", "skills": ["ownership", "borrowing"]},
		{"id": "chal-lifetimes-1", "title": "Lifetime Puzzle", "type": "challenge", "difficulty": "hard", "skills": ["lifetimes"], "base_xp": 150}
	]
}`

func TestParse_Valid(t *testing.T) {
	cat, err := Parse([]byte(sampleCatalog))
	require.NoError(t, err)
	assert.Equal(t, 3, cat.Len())

	quiz := cat.Unit("quiz-ownership-1")
	require.NotNil(t, quiz)
	assert.Equal(t, xp.ContentQuiz, quiz.Type)
	assert.Equal(t, xp.DifficultyMedium, quiz.Difficulty)
	assert.Equal(t, []string{"ownership", "borrowing"}, quiz.Skills)
	assert.Equal(t, 50, quiz.BaseXP())
}

func TestParse_BaseXPOverride(t *testing.T) {
	cat, err := Parse([]byte(sampleCatalog))
	require.NoError(t, err)

	chal := cat.Unit("chal-lifetimes-1")
	require.NotNil(t, chal)
	assert.Equal(t, 150, chal.BaseXP())
}

func TestParse_UnknownUnitIsNil(t *testing.T) {
	cat, err := Parse([]byte(sampleCatalog))
	require.NoError(t, err)
	assert.Nil(t, cat.Unit("quiz-does-not-exist"))
}

func TestParse_RejectsBadDifficulty(t *testing.T) {
	_, err := Parse([]byte(`{"units": [{"id": "x", "type": "quiz", "difficulty": "brutal", "skills": ["a"]}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestParse_RejectsBadType(t *testing.T) {
	_, err := Parse([]byte(`{"units": [{"id": "x", "type": "webinar", "difficulty": "easy", "skills": ["a"]}]}`))
	require.Error(t, err)
}

func TestParse_RejectsDuplicateIDs(t *testing.T) {
	_, err := Parse([]byte(`{"units": [
		{"id": "x", "type": "quiz", "difficulty": "easy", "skills": ["a"]},
		{"id": "x", "type": "quiz", "difficulty": "easy", "skills": ["b"]}
	]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate unit ID")
}

func TestParse_RejectsInvalidJSON(t *testing.T) {
	_, err := Parse([]byte(`{"units": [`))
	require.Error(t, err)
}
