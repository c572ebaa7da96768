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

type quizRepo struct {
	db *sql.DB
}

var (
	questionSetColumnNames = []string{"id", "created_at", "title", "source", "payload"}
	quizResultColumnNames  = []string{"id", "question_set_id", "created_at", "score", "total", "percentage", "result"}
)

func (r *quizRepo) SaveQuestionSet(ctx context.Context, rec *QuestionSetRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	ins := builder.Insert(questionSetsTable.Name).
		Columns(questionSetColumnNames...).
		Values(rec.ID, rec.CreatedAt.UTC(), rec.Title, rec.Source, jsonOrNull(rec.Payload))
	if _, err := execBuilt(ctx, r.db, ins); err != nil {
		return fmt.Errorf("save question set: %w", err)
	}
	return nil
}

func (r *quizRepo) GetQuestionSet(ctx context.Context, id string) (*QuestionSetRecord, error) {
	sel := builder.Select(questionSetColumnNames...).
		From(entsql.Table(questionSetsTable.Name)).
		Where(entsql.EQ("id", id))

	query, args := sel.Query()
	rec, err := scanQuestionSet(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("question set %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get question set %s: %w", id, err)
	}
	return rec, nil
}

func (r *quizRepo) ListQuestionSets(ctx context.Context, opts QueryOpts) ([]QuestionSetRecord, error) {
	sel := builder.Select(questionSetColumnNames...).From(entsql.Table(questionSetsTable.Name))
	rows, err := queryBuilt(ctx, r.db, applyOpts(sel, "created_at", opts))
	if err != nil {
		return nil, fmt.Errorf("list question sets: %w", err)
	}
	defer rows.Close()

	var out []QuestionSetRecord
	for rows.Next() {
		rec, err := scanQuestionSet(rows)
		if err != nil {
			return nil, fmt.Errorf("scan question set: %w", err)
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

func (r *quizRepo) SaveResult(ctx context.Context, rec *QuizResultRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	ins := builder.Insert(quizResultsTable.Name).
		Columns(quizResultColumnNames...).
		Values(rec.ID, rec.QuestionSetID, rec.CreatedAt.UTC(), rec.Score, rec.Total, rec.Percentage, jsonOrNull(rec.Result))
	if _, err := execBuilt(ctx, r.db, ins); err != nil {
		return fmt.Errorf("save quiz result: %w", err)
	}
	return nil
}

func (r *quizRepo) ListResults(ctx context.Context, setID string, opts QueryOpts) ([]QuizResultRecord, error) {
	sel := builder.Select(quizResultColumnNames...).From(entsql.Table(quizResultsTable.Name))
	if setID != "" {
		sel.Where(entsql.EQ("question_set_id", setID))
	}
	rows, err := queryBuilt(ctx, r.db, applyOpts(sel, "created_at", opts))
	if err != nil {
		return nil, fmt.Errorf("list quiz results: %w", err)
	}
	defer rows.Close()

	var out []QuizResultRecord
	for rows.Next() {
		var rec QuizResultRecord
		var result []byte
		err := rows.Scan(&rec.ID, &rec.QuestionSetID, &rec.CreatedAt, &rec.Score, &rec.Total, &rec.Percentage, &result)
		if err != nil {
			return nil, fmt.Errorf("scan quiz result: %w", err)
		}
		rec.Result = json.RawMessage(result)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func scanQuestionSet(s scanner) (*QuestionSetRecord, error) {
	var rec QuestionSetRecord
	var payload []byte
	if err := s.Scan(&rec.ID, &rec.CreatedAt, &rec.Title, &rec.Source, &payload); err != nil {
		return nil, err
	}
	rec.Payload = json.RawMessage(payload)
	return &rec, nil
}
