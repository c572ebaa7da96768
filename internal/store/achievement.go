package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

type achievementRepo struct {
	db *sql.DB
}

var achievementColumnNames = []string{"id", "kind", "title", "points", "reference", "awarded_at"}

func (r *achievementRepo) Append(ctx context.Context, rec *AchievementRecord) (bool, error) {
	if rec.AwardedAt.IsZero() {
		rec.AwardedAt = time.Now().UTC()
	}

	ins := builder.Insert(achievementsTable.Name).
		Columns(achievementColumnNames[1:]...).
		Values(rec.Kind, rec.Title, rec.Points, rec.Reference, rec.AwardedAt.UTC()).
		OnConflict(entsql.ConflictColumns("kind", "reference"), entsql.DoNothing())

	res, err := execBuilt(ctx, r.db, ins)
	if err != nil {
		return false, fmt.Errorf("append achievement %s: %w", rec.Kind, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("append achievement %s: %w", rec.Kind, err)
	}
	if n == 0 {
		return false, nil
	}
	if id, err := res.LastInsertId(); err == nil {
		rec.ID = int(id)
	}
	return true, nil
}

func (r *achievementRepo) List(ctx context.Context) ([]AchievementRecord, error) {
	sel := builder.Select(achievementColumnNames...).
		From(entsql.Table(achievementsTable.Name)).
		OrderBy(entsql.Asc("id"))

	rows, err := queryBuilt(ctx, r.db, sel)
	if err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}
	defer rows.Close()

	var out []AchievementRecord
	for rows.Next() {
		var rec AchievementRecord
		if err := rows.Scan(&rec.ID, &rec.Kind, &rec.Title, &rec.Points, &rec.Reference, &rec.AwardedAt); err != nil {
			return nil, fmt.Errorf("scan achievement: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
