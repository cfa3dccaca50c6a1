package store

import (
	"context"
	"fmt"

	"github.com/questline-dev/questline/ent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendProgress(ctx context.Context, data ProgressEventData) (int64, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ProgressEvent.Create().
		SetSequence(seqNum).
		SetTimestamp(data.Timestamp).
		SetEventID(data.EventID).
		SetKind(data.Kind).
		SetUnitID(data.UnitID).
		SetScorePct(data.ScorePct).
		SetAttempt(data.Attempt).
		SetXpEarned(data.XPEarned).
		SetLevelAfter(data.LevelAfter).
		SetStreakAfter(data.StreakAfter).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("save progress event: %w", err)
	}
	return seqNum, nil
}
