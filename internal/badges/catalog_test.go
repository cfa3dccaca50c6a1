package badges

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "badges.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCatalog_Valid(t *testing.T) {
	path := writeCatalog(t, `{
		"badges": [
			{"id": "marathon", "name": "Marathon", "description": "365-day streak", "icon": "🏃", "threshold": 365, "category": "streak"},
			{"id": "challenge_ace", "name": "Challenge Ace", "threshold": 25, "category": "completion", "metric": "quizzes"}
		]
	}`)

	defs, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, defs, 2)
	assert.Equal(t, "marathon", defs[0].ID)
	assert.Equal(t, CategoryStreak, defs[0].Category)
	assert.Equal(t, MetricQuizzes, defs[1].Metric)
}

func TestLoadCatalog_RejectsUnknownCategory(t *testing.T) {
	path := writeCatalog(t, `{"badges": [{"id": "x", "name": "X", "threshold": 1, "category": "swagger"}]}`)
	_, err := LoadCatalog(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestLoadCatalog_RejectsNonPositiveThreshold(t *testing.T) {
	path := writeCatalog(t, `{"badges": [{"id": "x", "name": "X", "threshold": 0, "category": "xp"}]}`)
	_, err := LoadCatalog(path)
	require.Error(t, err)
}

func TestLoadCatalog_RejectsDuplicateIDs(t *testing.T) {
	path := writeCatalog(t, `{"badges": [
		{"id": "x", "name": "X", "threshold": 1, "category": "xp"},
		{"id": "x", "name": "X again", "threshold": 2, "category": "xp"}
	]}`)
	_, err := LoadCatalog(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate badge ID")
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
