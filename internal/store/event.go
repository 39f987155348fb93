package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

var sequenceSetup = []string{
	`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`,
	`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`,
}

const sequenceNext = `UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`

// sequenceCounter numbers events across the session, trial and LLM tables
// so they merge into one ordered log. ent has no counter primitive, so the
// single-row table is driven with raw SQL.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	for _, stmt := range sequenceSetup {
		if _, err := db.Exec(stmt); err != nil {
			return nil, fmt.Errorf("prepare sequence table: %w", err)
		}
	}
	return &sequenceCounter{db: db}, nil
}

// Next reserves the next number. Numbers start at 1 and never repeat.
func (sc *sequenceCounter) Next(ctx context.Context) (seq int64, err error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if err = sc.db.QueryRowContext(ctx, sequenceNext).Scan(&seq); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}
