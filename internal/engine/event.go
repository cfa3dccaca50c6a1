// Package engine orchestrates a progression step: one learning event
// in, one updated snapshot plus a report of everything that changed
// out. All collaborators are pure; the engine never reads a clock, so
// a step is replayable from its inputs alone.
package engine

import (
	"fmt"
	"time"

	"github.com/questline-dev/questline/internal/xp"
)

// Kind identifies what sort of learning event occurred.
type Kind string

const (
	KindLectureCompleted   Kind = "lecture_completed"
	KindQuizSubmitted      Kind = "quiz_submitted"
	KindChallengeCompleted Kind = "challenge_completed"
	KindCheckpointGraded   Kind = "checkpoint_graded"
)

// ContentType maps the event kind to the content type it must carry.
func (k Kind) ContentType() (xp.ContentType, error) {
	switch k {
	case KindLectureCompleted:
		return xp.ContentLecture, nil
	case KindQuizSubmitted:
		return xp.ContentQuiz, nil
	case KindChallengeCompleted:
		return xp.ContentChallenge, nil
	case KindCheckpointGraded:
		return xp.ContentCheckpoint, nil
	default:
		return "", fmt.Errorf("unknown event kind %q", string(k))
	}
}

// ParseKind converts a stored string back into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, err := k.ContentType(); err != nil {
		return "", err
	}
	return k, nil
}

// Event is one learning activity as reported by the caller. ScorePct
// is a percentage in [0,100] and is ignored for lecture events.
// OccurredAt is the event's timestamp; the engine has no clock of its
// own.
type Event struct {
	Kind       Kind      `json:"kind"`
	UnitID     string    `json:"unit_id"`
	ScorePct   float64   `json:"score_pct"`
	OccurredAt time.Time `json:"occurred_at"`
}
