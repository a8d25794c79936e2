package db

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"krishisahay/internal/models"
)

// InsertQueryRecord stores an answered query. ID is assigned by the database
// and CreatedAt is kept when already set.
func (d *DB) InsertQueryRecord(ctx context.Context, rec *models.QueryRecord) error {
	query := `
		INSERT INTO query_history (user_id, category, query, answer, entity, intent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7, NOW()))
		RETURNING id, created_at
	`

	var createdAt any
	if !rec.CreatedAt.IsZero() {
		createdAt = rec.CreatedAt
	}

	return d.Pool.QueryRow(ctx, query,
		rec.UserID,
		string(rec.Category),
		rec.Query,
		rec.Answer,
		rec.Entity,
		rec.Intent,
		createdAt,
	).Scan(&rec.ID, &rec.CreatedAt)
}

// ListQueryRecordsByUser returns a user's records, newest first.
func (d *DB) ListQueryRecordsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.QueryRecord, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT id, user_id, category, query, answer, entity, intent, created_at
		FROM query_history
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.QueryRecord
	for rows.Next() {
		var r models.QueryRecord
		var category string
		if err := rows.Scan(&r.ID, &r.UserID, &category, &r.Query, &r.Answer, &r.Entity, &r.Intent, &r.CreatedAt); err != nil {
			return nil, err
		}
		r.Category = models.Category(category)
		records = append(records, r)
	}
	return records, rows.Err()
}

// GetQueryRecord returns a single record owned by userID.
func (d *DB) GetQueryRecord(ctx context.Context, userID, id uuid.UUID) (*models.QueryRecord, error) {
	var r models.QueryRecord
	var category string
	err := d.Pool.QueryRow(ctx, `
		SELECT id, user_id, category, query, answer, entity, intent, created_at
		FROM query_history
		WHERE id = $1 AND user_id = $2
	`, id, userID).Scan(&r.ID, &r.UserID, &category, &r.Query, &r.Answer, &r.Entity, &r.Intent, &r.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrQueryRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	r.Category = models.Category(category)
	return &r, nil
}

// GetQueryStats returns record counts grouped by category and intent for
// metrics export.
func (d *DB) GetQueryStats(ctx context.Context) ([]models.QueryStat, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT category, intent, COUNT(*)
		FROM query_history
		GROUP BY category, intent
		ORDER BY category, intent
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []models.QueryStat
	for rows.Next() {
		var s models.QueryStat
		var category string
		if err := rows.Scan(&category, &s.Intent, &s.Count); err != nil {
			return nil, err
		}
		s.Category = models.Category(category)
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// DeleteQueryRecordsBefore removes records created before cutoff and returns
// how many were deleted.
func (d *DB) DeleteQueryRecordsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := d.Pool.Exec(ctx, `DELETE FROM query_history WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
