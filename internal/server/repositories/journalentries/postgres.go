package journalentries

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

const selectColumns = `id, user_id, to_char(date, 'YYYY-MM-DD'), entry, sentiment, created_at, updated_at, deleted_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a journal entry. One entry per (user_id, date); the loser
// of a same-day race gets common.ErrorAlreadyExists.
func (r *PostgresRepository) Create(ctx context.Context, entry *models.JournalEntry) (*models.JournalEntry, error) {
	entry.ID = uuid.NewString()

	query :=
		`INSERT INTO journal_entries (id, user_id, date, entry, sentiment)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		entry.ID, entry.UserID, entry.Date, entry.Entry, entry.Sentiment).
		Scan(&entry.CreatedAt, &entry.UpdatedAt)

	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return entry, nil
}

// GetAll returns the user's non-deleted entries, newest date first.
func (r *PostgresRepository) GetAll(ctx context.Context, userID string) ([]*models.JournalEntry, error) {
	query :=
		`SELECT ` + selectColumns + `
		 FROM journal_entries
		 WHERE user_id = $1 AND deleted_at IS NULL
		 ORDER BY date DESC
		 `

	return r.queryMany(ctx, query, userID)
}

// GetByID returns the entry only when it belongs to userID.
func (r *PostgresRepository) GetByID(ctx context.Context, id string, userID string) (*models.JournalEntry, error) {
	query :=
		`SELECT ` + selectColumns + `
		 FROM journal_entries
		 WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
		 `

	entry, err := scanEntry(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return entry, nil
}

// GetByDateRange returns entries with startDate <= date <= endDate,
// ascending by date.
func (r *PostgresRepository) GetByDateRange(ctx context.Context, userID string, startDate, endDate string) ([]*models.JournalEntry, error) {
	query :=
		`SELECT ` + selectColumns + `
		 FROM journal_entries
		 WHERE user_id = $1 AND deleted_at IS NULL AND date >= $2 AND date <= $3
		 ORDER BY date ASC
		 `

	return r.queryMany(ctx, query, userID, startDate, endDate)
}

// GetRecent returns at most limit entries, newest date first.
func (r *PostgresRepository) GetRecent(ctx context.Context, userID string, limit int) ([]*models.JournalEntry, error) {
	query :=
		`SELECT ` + selectColumns + `
		 FROM journal_entries
		 WHERE user_id = $1 AND deleted_at IS NULL
		 ORDER BY date DESC
		 LIMIT $2
		 `

	return r.queryMany(ctx, query, userID, limit)
}

// AverageSentimentSince returns the mean sentiment for dates >= sinceDate,
// or nil when no qualifying rows exist.
func (r *PostgresRepository) AverageSentimentSince(ctx context.Context, userID string, sinceDate string) (*float64, error) {
	query :=
		`SELECT AVG(sentiment)
		 FROM journal_entries
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

// SoftDelete stamps deleted_at on the user's entry.
func (r *PostgresRepository) SoftDelete(ctx context.Context, id string, userID string) error {
	query :=
		`UPDATE journal_entries
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

func (r *PostgresRepository) queryMany(ctx context.Context, query string, args ...any) ([]*models.JournalEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.JournalEntry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*models.JournalEntry, error) {
	entry := &models.JournalEntry{}
	err := row.Scan(&entry.ID, &entry.UserID, &entry.Date, &entry.Entry, &entry.Sentiment,
		&entry.CreatedAt, &entry.UpdatedAt, &entry.DeletedAt)
	if err != nil {
		return nil, err
	}
	return entry, nil
}
