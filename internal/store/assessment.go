package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

type assessmentRepo struct {
	db *sql.DB
}

var assessmentColumnNames = []string{
	"id", "created_at", "catalog_version", "responses", "recommendations", "insights",
}

func (r *assessmentRepo) Save(ctx context.Context, rec *AssessmentRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	ins := builder.Insert(assessmentsTable.Name).
		Columns(assessmentColumnNames...).
		Values(rec.ID, rec.CreatedAt.UTC(), rec.CatalogVersion,
			jsonOrNull(rec.Responses), jsonOrNull(rec.Recommendations), jsonOrNull(rec.Insights))
	if _, err := execBuilt(ctx, r.db, ins); err != nil {
		return fmt.Errorf("save assessment: %w", err)
	}
	return nil
}

func (r *assessmentRepo) Get(ctx context.Context, id string) (*AssessmentRecord, error) {
	sel := builder.Select(assessmentColumnNames...).
		From(entsql.Table(assessmentsTable.Name)).
		Where(entsql.EQ("id", id))

	query, args := sel.Query()
	rec, err := scanAssessment(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("assessment %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get assessment %s: %w", id, err)
	}
	return rec, nil
}

func (r *assessmentRepo) List(ctx context.Context, opts QueryOpts) ([]AssessmentRecord, error) {
	sel := builder.Select(assessmentColumnNames...).From(entsql.Table(assessmentsTable.Name))
	rows, err := queryBuilt(ctx, r.db, applyOpts(sel, "created_at", opts))
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	defer rows.Close()

	var out []AssessmentRecord
	for rows.Next() {
		rec, err := scanAssessment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan assessment: %w", err)
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

func scanAssessment(s scanner) (*AssessmentRecord, error) {
	var rec AssessmentRecord
	var responses, recs, insights []byte
	if err := s.Scan(&rec.ID, &rec.CreatedAt, &rec.CatalogVersion, &responses, &recs, &insights); err != nil {
		return nil, err
	}
	rec.Responses = json.RawMessage(responses)
	rec.Recommendations = json.RawMessage(recs)
	rec.Insights = json.RawMessage(insights)
	return &rec, nil
}

// jsonOrNull stores empty payloads as JSON null so the column always holds
// valid JSON.
func jsonOrNull(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "null"
	}
	return string(raw)
}
