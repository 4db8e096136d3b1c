package activities

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/moodtrack/internal/common"
	"github.com/dmitrijs2005/moodtrack/internal/dbx"
	"github.com/dmitrijs2005/moodtrack/internal/server/models"
)

const selectColumns = `id, user_id, to_char(date, 'YYYY-MM-DD'), activity, duration_minutes, notes, created_at, updated_at, deleted_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, activity *models.Activity) (*models.Activity, error) {
	activity.ID = uuid.NewString()

	query :=
		`INSERT INTO activities (id, user_id, date, activity, duration_minutes, notes)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at, updated_at
		 `

	var duration sql.NullInt64
	if activity.DurationMinutes != nil {
		duration = sql.NullInt64{Int64: int64(*activity.DurationMinutes), Valid: true}
	}
	var notes sql.NullString
	if activity.Notes != nil {
		notes = sql.NullString{String: *activity.Notes, Valid: true}
	}

	err := r.db.QueryRowContext(ctx, query,
		activity.ID, activity.UserID, activity.Date, activity.Activity, duration, notes).
		Scan(&activity.CreatedAt, &activity.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return activity, nil
}

// GetAll returns the user's non-deleted activities, newest date first.
func (r *PostgresRepository) GetAll(ctx context.Context, userID string) ([]*models.Activity, error) {
	query :=
		`SELECT ` + selectColumns + `
		 FROM activities
		 WHERE user_id = $1 AND deleted_at IS NULL
		 ORDER BY date DESC
		 `

	return r.queryMany(ctx, query, userID)
}

// GetByID returns the activity only when it belongs to userID.
func (r *PostgresRepository) GetByID(ctx context.Context, id string, userID string) (*models.Activity, error) {
	query :=
		`SELECT ` + selectColumns + `
		 FROM activities
		 WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
		 `

	activity, err := scanActivity(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return activity, nil
}

// GetByDateRange returns activities with startDate <= date <= endDate,
// ascending by date.
func (r *PostgresRepository) GetByDateRange(ctx context.Context, userID string, startDate, endDate string) ([]*models.Activity, error) {
	query :=
		`SELECT ` + selectColumns + `
		 FROM activities
		 WHERE user_id = $1 AND deleted_at IS NULL AND date >= $2 AND date <= $3
		 ORDER BY date ASC
		 `

	return r.queryMany(ctx, query, userID, startDate, endDate)
}

// GetRecent returns at most limit activities, newest date first.
func (r *PostgresRepository) GetRecent(ctx context.Context, userID string, limit int) ([]*models.Activity, error) {
	query :=
		`SELECT ` + selectColumns + `
		 FROM activities
		 WHERE user_id = $1 AND deleted_at IS NULL
		 ORDER BY date DESC
		 LIMIT $2
		 `

	return r.queryMany(ctx, query, userID, limit)
}

// SoftDelete stamps deleted_at on the user's activity.
func (r *PostgresRepository) SoftDelete(ctx context.Context, id string, userID string) error {
	query :=
		`UPDATE activities
		 SET deleted_at = now(), updated_at = now()
		 WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
		 `

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) queryMany(ctx context.Context, query string, args ...any) ([]*models.Activity, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Activity, 0)
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, activity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanActivity(row rowScanner) (*models.Activity, error) {
	activity := &models.Activity{}
	var duration sql.NullInt64
	var notes sql.NullString

	err := row.Scan(&activity.ID, &activity.UserID, &activity.Date, &activity.Activity,
		&duration, &notes, &activity.CreatedAt, &activity.UpdatedAt, &activity.DeletedAt)
	if err != nil {
		return nil, err
	}

	if duration.Valid {
		d := int(duration.Int64)
		activity.DurationMinutes = &d
	}
	if notes.Valid {
		n := notes.String
		activity.Notes = &n
	}

	return activity, nil
}
