// Package repomanager wires the per-table repositories behind one factory.
// Every accessor takes an explicit dbx.DBTX, so the same manager serves
// pooled reads and transactional flows; there is no ambient global handle.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/moodtrack/internal/dbx"
	"github.com/dmitrijs2005/moodtrack/internal/server/repositories/activities"
	"github.com/dmitrijs2005/moodtrack/internal/server/repositories/journalentries"
	"github.com/dmitrijs2005/moodtrack/internal/server/repositories/moods"
	"github.com/dmitrijs2005/moodtrack/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/moodtrack/internal/server/repositories/users"
)

// RepositoryManager produces repositories bound to a given DB handle.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Moods(db dbx.DBTX) moods.Repository
	JournalEntries(db dbx.DBTX) journalentries.Repository
	Activities(db dbx.DBTX) activities.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
}
