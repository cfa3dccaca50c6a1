package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendBadge(ctx context.Context, data BadgeEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.BadgeEvent.Create().
		SetSequence(seqNum).
		SetTimestamp(data.Timestamp).
		SetBadgeID(data.BadgeID).
		SetName(data.Name)

	if data.TriggerEventID != "" {
		builder = builder.SetTriggerEventID(data.TriggerEventID)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save badge event: %w", err)
	}
	return nil
}
