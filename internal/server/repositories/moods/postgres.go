package moods

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/moodtrack/internal/common"
	"github.com/dmitrijs2005/moodtrack/internal/dbx"
	"github.com/dmitrijs2005/moodtrack/internal/server/models"
)

const selectColumns = `id, user_id, to_char(date, 'YYYY-MM-DD'), mood_score, emotions, created_at, updated_at, deleted_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a mood log. The composite unique constraint on
// (user_id, date) resolves concurrent creates for the same day; the loser
// gets common.ErrorAlreadyExists.
func (r *PostgresRepository) Create(ctx context.Context, mood *models.Mood) (*models.Mood, error) {
	mood.ID = uuid.NewString()

	emotions, err := json.Marshal(mood.Emotions)
	if err != nil {
		return nil, fmt.Errorf("marshaling emotions: %w", err)
	}

	query :=
		`INSERT INTO moods (id, user_id, date, mood_score, emotions)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at, updated_at
		 `

	err = r.db.QueryRowContext(ctx, query,
		mood.ID, mood.UserID, mood.Date, mood.MoodScore, emotions).
		Scan(&mood.CreatedAt, &mood.UpdatedAt)

	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return mood, nil
}

// GetAll returns the user's non-deleted moods, newest date first.
func (r *PostgresRepository) GetAll(ctx context.Context, userID string) ([]*models.Mood, error) {
	query :=
		`SELECT ` + selectColumns + `
		 FROM moods
		 WHERE user_id = $1 AND deleted_at IS NULL
		 ORDER BY date DESC
		 `

	return r.queryMany(ctx, query, userID)
}

// GetByID returns the mood only when it belongs to userID. A record owned
// by somebody else is indistinguishable from a missing one.
func (r *PostgresRepository) GetByID(ctx context.Context, id string, userID string) (*models.Mood, error) {
	query :=
		`SELECT ` + selectColumns + `
		 FROM moods
		 WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
		 `

	mood, err := scanMood(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return mood, nil
}

// GetByDateRange returns moods with startDate <= date <= endDate, ascending
// by date. Range reads sort ascending while GetAll sorts descending; both
// orders are part of the API contract.
func (r *PostgresRepository) GetByDateRange(ctx context.Context, userID string, startDate, endDate string) ([]*models.Mood, error) {
	query :=
		`SELECT ` + selectColumns + `
		 FROM moods
		 WHERE user_id = $1 AND deleted_at IS NULL AND date >= $2 AND date <= $3
		 ORDER BY date ASC
		 `

	return r.queryMany(ctx, query, userID, startDate, endDate)
}

// GetRecent returns at most limit moods, newest date first.
func (r *PostgresRepository) GetRecent(ctx context.Context, userID string, limit int) ([]*models.Mood, error) {
	query :=
		`SELECT ` + selectColumns + `
		 FROM moods
		 WHERE user_id = $1 AND deleted_at IS NULL
		 ORDER BY date DESC
		 LIMIT $2
		 `

	return r.queryMany(ctx, query, userID, limit)
}

// AverageScoreSince returns the mean mood score for dates >= sinceDate, or
// nil when no qualifying rows exist. The nil is deliberate: zero would look
// like a (invalid) score.
func (r *PostgresRepository) AverageScoreSince(ctx context.Context, userID string, sinceDate string) (*float64, error) {
	query :=
		`SELECT AVG(mood_score)
		 FROM moods
		 WHERE user_id = $1 AND deleted_at IS NULL AND date >= $2
		 `

	var avg sql.NullFloat64
	if err := r.db.QueryRowContext(ctx, query, userID, sinceDate).Scan(&avg); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}

// SoftDelete stamps deleted_at on the user's mood. The row keeps occupying
// the (user_id, date) uniqueness namespace.
func (r *PostgresRepository) SoftDelete(ctx context.Context, id string, userID string) error {
	query :=
		`UPDATE moods
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

func (r *PostgresRepository) queryMany(ctx context.Context, query string, args ...any) ([]*models.Mood, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Mood, 0)
	for rows.Next() {
		mood, err := scanMood(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, mood)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMood(row rowScanner) (*models.Mood, error) {
	mood := &models.Mood{}
	var emotions []byte

	err := row.Scan(&mood.ID, &mood.UserID, &mood.Date, &mood.MoodScore, &emotions,
		&mood.CreatedAt, &mood.UpdatedAt, &mood.DeletedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(emotions, &mood.Emotions); err != nil {
		return nil, fmt.Errorf("unmarshaling emotions: %w", err)
	}

	return mood, nil
}
