package store

import (
	"context"
	"testing"
	"time"

	"github.com/questline-dev/questline/internal/engine"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	state := engine.NewSnapshot()
	state.Profile.TotalXP = 75
	state.Profile.StreakDays = 1

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data:      SnapshotData{Version: SnapshotDataVersion, State: *state},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.State.Profile.TotalXP != 75 {
		t.Errorf("total XP = %d, want 75", snap.Data.State.Profile.TotalXP)
	}
	if snap.Data.State.Profile.StreakDays != 1 {
		t.Errorf("streak = %d, want 1", snap.Data.State.Profile.StreakDays)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		state := engine.NewSnapshot()
		state.Profile.TotalXP = (i + 1) * 100
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: SnapshotDataVersion, State: *state},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
	if snap.Data.State.Profile.TotalXP != 300 {
		t.Errorf("total XP = %d, want 300", snap.Data.State.Profile.TotalXP)
	}
}

func TestSnapshotLatestBreaksTimestampTiesBySequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// Two events inside the same clock tick share a timestamp; the
	// global sequence still orders them.
	now := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		state := engine.NewSnapshot()
		state.Profile.TotalXP = (i + 1) * 50
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: now,
			Data:      SnapshotData{Version: SnapshotDataVersion, State: *state},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 2 {
		t.Errorf("sequence = %d, want 2", snap.Sequence)
	}
	if snap.Data.State.Profile.TotalXP != 100 {
		t.Errorf("total XP = %d, want 100", snap.Data.State.Profile.TotalXP)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: SnapshotDataVersion, State: *engine.NewSnapshot()},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune to keep 5.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	// Latest should still be sequence 7.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: SnapshotDataVersion, State: *engine.NewSnapshot()},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAppendProgressAssignsSequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	data := ProgressEventData{
		EventID:     "evt-1",
		Kind:        "quiz_submitted",
		UnitID:      "quiz-1",
		ScorePct:    100,
		Attempt:     1,
		XPEarned:    75,
		LevelAfter:  1,
		StreakAfter: 1,
		Timestamp:   now,
	}
	seq1, err := repo.AppendProgress(ctx, data)
	if err != nil {
		t.Fatalf("append 1: %v", err)
	}

	data.EventID = "evt-2"
	data.Attempt = 2
	seq2, err := repo.AppendProgress(ctx, data)
	if err != nil {
		t.Fatalf("append 2: %v", err)
	}
	if seq2 <= seq1 {
		t.Errorf("sequences not increasing: %d then %d", seq1, seq2)
	}

	count, err := s.Client().ProgressEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("progress events = %d, want 2", count)
	}
}

func TestAppendProgressLectureEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// Lectures have no retakes; they are always logged as attempt 1,
	// which the schema's attempt floor requires.
	if _, err := repo.AppendProgress(ctx, ProgressEventData{
		EventID:     "evt-lec",
		Kind:        "lecture_completed",
		UnitID:      "lec-1",
		Attempt:     1,
		XPEarned:    25,
		LevelAfter:  1,
		StreakAfter: 1,
		Timestamp:   time.Now().UTC(),
	}); err != nil {
		t.Fatalf("append lecture event: %v", err)
	}

	row, err := s.Client().ProgressEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query lecture event: %v", err)
	}
	if row.Attempt != 1 {
		t.Errorf("attempt = %d, want 1", row.Attempt)
	}
	if row.Kind != "lecture_completed" {
		t.Errorf("kind = %q, want lecture_completed", row.Kind)
	}
}

func TestAppendProgressRejectsDuplicateEventID(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := ProgressEventData{
		EventID:     "evt-dup",
		Kind:        "lecture_completed",
		UnitID:      "lec-1",
		Attempt:     1,
		XPEarned:    25,
		LevelAfter:  1,
		StreakAfter: 1,
		Timestamp:   time.Now().UTC(),
	}
	if _, err := repo.AppendProgress(ctx, data); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := repo.AppendProgress(ctx, data); err == nil {
		t.Fatal("expected duplicate event_id to be rejected")
	}
}

func TestAppendBadgeSharesSequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	seq, err := repo.AppendProgress(ctx, ProgressEventData{
		EventID: "evt-1", Kind: "quiz_submitted", UnitID: "quiz-1",
		ScorePct: 100, Attempt: 1, XPEarned: 75, LevelAfter: 1, StreakAfter: 1,
		Timestamp: now,
	})
	if err != nil {
		t.Fatalf("append progress: %v", err)
	}

	err = repo.AppendBadge(ctx, BadgeEventData{
		BadgeID: "perfect_score", Name: "Perfect Score",
		TriggerEventID: "evt-1", Timestamp: now,
	})
	if err != nil {
		t.Fatalf("append badge: %v", err)
	}

	badge, err := s.Client().BadgeEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query badge event: %v", err)
	}
	if badge.Sequence <= seq {
		t.Errorf("badge sequence %d should come after progress sequence %d", badge.Sequence, seq)
	}
	if badge.TriggerEventID != "evt-1" {
		t.Errorf("trigger = %q, want evt-1", badge.TriggerEventID)
	}
}

func TestResetWipesEverything(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	if _, err := s.EventRepo().AppendProgress(ctx, ProgressEventData{
		EventID: "evt-1", Kind: "lecture_completed", UnitID: "lec-1",
		Attempt: 1, XPEarned: 25, LevelAfter: 1, StreakAfter: 1, Timestamp: now,
	}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.SnapshotRepo().Save(ctx, &Snapshot{
		Sequence: 1, Timestamp: now,
		Data: SnapshotData{Version: SnapshotDataVersion, State: *engine.NewSnapshot()},
	}); err != nil {
		t.Fatalf("save snapshot: %v", err)
	}

	if err := s.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	if n, _ := s.Client().ProgressEvent.Query().Count(ctx); n != 0 {
		t.Errorf("progress events after reset = %d, want 0", n)
	}
	snap, err := s.SnapshotRepo().Latest(ctx)
	if err != nil {
		t.Fatalf("latest after reset: %v", err)
	}
	if snap != nil {
		t.Error("expected no snapshot after reset")
	}

	// Counter restarts at 1.
	seq, err := s.seq.Next(ctx)
	if err != nil {
		t.Fatalf("next after reset: %v", err)
	}
	if seq != 1 {
		t.Errorf("sequence after reset = %d, want 1", seq)
	}
}

func TestAutoMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	// Check that the snapshots table exists.
	var name string
	err := db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='snapshots'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "snapshots" {
		t.Errorf("table name = %q, want 'snapshots'", name)
	}
}
