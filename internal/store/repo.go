package store

import (
	"context"
	"time"

	"github.com/questline-dev/questline/internal/engine"
)

// SnapshotData is the persisted form of the learner's progression
// state. Version guards the JSON layout across schema changes.
type SnapshotData struct {
	Version int             `json:"version"`
	State   engine.Snapshot `json:"state"`
}

// SnapshotDataVersion is the current SnapshotData layout version.
const SnapshotDataVersion = 1

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// ProgressEventData captures one applied learning event and its outcome.
type ProgressEventData struct {
	EventID     string
	Kind        string
	UnitID      string
	ScorePct    float64
	Attempt     int
	XPEarned    int
	LevelAfter  int
	StreakAfter int
	Timestamp   time.Time
}

// BadgeEventData captures one badge unlock.
type BadgeEventData struct {
	BadgeID        string
	Name           string
	TriggerEventID string
	Timestamp      time.Time
}

// EventRepo provides append access to the progression event log.
type EventRepo interface {
	// AppendProgress records an applied learning event and returns its
	// global sequence number.
	AppendProgress(ctx context.Context, data ProgressEventData) (int64, error)

	// AppendBadge records a badge unlock.
	AppendBadge(ctx context.Context, data BadgeEventData) error
}
