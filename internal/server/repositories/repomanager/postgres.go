package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/dmitrijs2005/moodtrack/internal/dbx"
	"github.com/dmitrijs2005/moodtrack/internal/server/migrations"
	"github.com/dmitrijs2005/moodtrack/internal/server/repositories/activities"
	"github.com/dmitrijs2005/moodtrack/internal/server/repositories/journalentries"
	"github.com/dmitrijs2005/moodtrack/internal/server/repositories/moods"
	"github.com/dmitrijs2005/moodtrack/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/moodtrack/internal/server/repositories/users"
)

// PostgresRepositoryManager is the production RepositoryManager over the
// pgx stdlib driver.
type PostgresRepositoryManager struct{}

func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

// OpenDB opens a pooled connection to PostgreSQL using the pgx driver.
// Requests borrow connections from this pool per operation.
func OpenDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	return db, nil
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return migrations.Up(ctx, db)
}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Moods(db dbx.DBTX) moods.Repository {
	return moods.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) JournalEntries(db dbx.DBTX) journalentries.Repository {
	return journalentries.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Activities(db dbx.DBTX) activities.Repository {
	return activities.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return refreshtokens.NewPostgresRepository(db)
}
