package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	entsql "entgo.io/ent/dialect/sql"
)

// sequenceCounter numbers events independently of wall-clock time. The
// single global_sequence row holds the next value to hand out.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	seed := builder.Insert(sequenceTable.Name).
		Columns("id", "next_val").
		Values(1, 1).
		OnConflict(entsql.ConflictColumns("id"), entsql.DoNothing())
	if _, err := execBuilt(context.Background(), db, seed); err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}
	return &sequenceCounter{db: db}, nil
}

// Next returns the next sequence number, starting at 1.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	query, args := builder.Update(sequenceTable.Name).
		Add("next_val", 1).
		Where(entsql.EQ("id", 1)).
		Returning("next_val").
		Query()

	var next int64
	if err := sc.db.QueryRowContext(ctx, query, args...).Scan(&next); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return next - 1, nil
}
