package store

import (
	"context"
	"fmt"

	"github.com/abhisek/hearwise/ent"
	"github.com/abhisek/hearwise/ent/trialevent"
)

func (r *eventRepo) AppendTrialEvent(ctx context.Context, data TrialEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.TrialEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetFrequency(data.FrequencyHz).
		SetEar(data.Ear).
		SetLevel(data.LevelDB).
		SetHeard(data.Heard).
		SetTrial(data.Trial).
		SetResponseMs(data.ResponseMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save trial event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryTrialEvents(ctx context.Context, sessionID string, opts QueryOpts) ([]TrialEventRecord, error) {
	q := r.client.TrialEvent.Query()
	if sessionID != "" {
		q = q.Where(trialevent.SessionID(sessionID))
	}
	if opts.After > 0 {
		q = q.Where(trialevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(trialevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(trialevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(trialevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.Order(ent.Asc(trialevent.FieldSequence)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query trial events: %w", err)
	}

	out := make([]TrialEventRecord, 0, len(rows))
	for _, e := range rows {
		out = append(out, TrialEventRecord{
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			TrialEventData: TrialEventData{
				SessionID:   e.SessionID,
				FrequencyHz: e.Frequency,
				Ear:         e.Ear,
				LevelDB:     e.Level,
				Heard:       e.Heard,
				Trial:       e.Trial,
				ResponseMs:  e.ResponseMs,
			},
		})
	}
	return out, nil
}
