package store

import (
	"context"
	"fmt"

	"github.com/abhisek/hearwise/ent"
	"github.com/abhisek/hearwise/ent/sessionevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetUserID(data.UserID).
		SetAction(data.Action).
		SetTrials(data.Trials).
		SetCompletedPairs(data.CompletedPairs).
		SetRecordID(data.RecordID).
		SetDetail(data.Detail).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionEvents(ctx context.Context, sessionID string, opts QueryOpts) ([]SessionEventRecord, error) {
	q := r.client.SessionEvent.Query()
	if sessionID != "" {
		q = q.Where(sessionevent.SessionID(sessionID))
	}
	if opts.After > 0 {
		q = q.Where(sessionevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(sessionevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(sessionevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(sessionevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.Order(ent.Asc(sessionevent.FieldSequence)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}

	out := make([]SessionEventRecord, 0, len(rows))
	for _, e := range rows {
		out = append(out, SessionEventRecord{
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			SessionEventData: SessionEventData{
				SessionID:      e.SessionID,
				UserID:         e.UserID,
				Action:         e.Action,
				Trials:         e.Trials,
				CompletedPairs: e.CompletedPairs,
				RecordID:       e.RecordID,
				Detail:         e.Detail,
			},
		})
	}
	return out, nil
}
