package store

import (
	"context"
	"fmt"

	"github.com/abhisek/hearwise/ent"
	"github.com/abhisek/hearwise/ent/hearingrecord"
	entschema "github.com/abhisek/hearwise/ent/schema"
	"github.com/abhisek/hearwise/internal/audiometry"
)

type recordRepo struct {
	client *ent.Client
}

func (r *recordRepo) Save(ctx context.Context, rec audiometry.Record) error {
	if err := rec.Validate(); err != nil {
		return fmt.Errorf("save record: %w", err)
	}
	_, err := r.client.HearingRecord.Create().
		SetRecordID(rec.ID()).
		SetUserID(rec.UserID()).
		SetTakenAt(rec.TakenAt()).
		SetResults(toEntries(rec.Results())).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save record: %w", err)
	}
	return nil
}

func (r *recordRepo) Get(ctx context.Context, id string) (audiometry.Record, error) {
	row, err := r.client.HearingRecord.Query().
		Where(hearingrecord.RecordID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return audiometry.Record{}, fmt.Errorf("record %s: %w", id, ErrNotFound)
		}
		return audiometry.Record{}, fmt.Errorf("query record: %w", err)
	}
	return fromEnt(row)
}

func (r *recordRepo) LoadHistory(ctx context.Context, userID string, limit int) ([]audiometry.Record, error) {
	q := r.client.HearingRecord.Query().
		Where(hearingrecord.UserID(userID)).
		Order(ent.Desc(hearingrecord.FieldTakenAt), ent.Desc(hearingrecord.FieldID))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	out := make([]audiometry.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := fromEnt(row)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func toEntries(results []audiometry.Result) []entschema.ThresholdEntry {
	out := make([]entschema.ThresholdEntry, 0, len(results))
	for _, res := range results {
		e := entschema.ThresholdEntry{
			FrequencyHz: int(res.Frequency),
			Ear:         res.Ear.String(),
		}
		if db, ok := res.Threshold.DB(); ok {
			e.Detected = true
			e.LevelDB = db
		}
		out = append(out, e)
	}
	return out
}

func fromEnt(row *ent.HearingRecord) (audiometry.Record, error) {
	results := make([]audiometry.Result, 0, len(row.Results))
	for _, e := range row.Results {
		ear, err := audiometry.ParseEar(e.Ear)
		if err != nil {
			return audiometry.Record{}, fmt.Errorf("decode record %s: %w", row.RecordID, err)
		}
		th := audiometry.NotDetected()
		if e.Detected {
			lvl, ok := audiometry.LevelForDB(e.LevelDB)
			if !ok {
				return audiometry.Record{}, fmt.Errorf("decode record %s: unknown level %d dB", row.RecordID, e.LevelDB)
			}
			th = audiometry.Heard(lvl)
		}
		results = append(results, audiometry.Result{
			Frequency: audiometry.Frequency(e.FrequencyHz),
			Ear:       ear,
			Threshold: th,
		})
	}
	return audiometry.NewRecord(row.RecordID, row.UserID, row.TakenAt, results), nil
}
