package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendUnitEvent(ctx context.Context, data UnitEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.UnitEvent.Create().
		SetSequence(seqNum).
		SetTopic(data.Topic).
		SetBand(data.Band).
		SetTier(data.Tier).
		SetStatus(data.Status).
		SetAttempts(data.Attempts).
		SetBlockCount(data.BlockCount).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save unit event: %w", err)
	}

	return nil
}
