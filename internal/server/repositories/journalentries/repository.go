package journalentries

import (
	"context"

	"github.com/dmitrijs2005/moodtrack/internal/server/models"
)

// Repository is the persistence contract for journal entries. All reads
// exclude soft-deleted rows and are scoped to a single owner.
type Repository interface {
	Create(ctx context.Context, entry *models.JournalEntry) (*models.JournalEntry, error)
	GetAll(ctx context.Context, userID string) ([]*models.JournalEntry, error)
	GetByID(ctx context.Context, id string, userID string) (*models.JournalEntry, error)
	GetByDateRange(ctx context.Context, userID string, startDate, endDate string) ([]*models.JournalEntry, error)
	GetRecent(ctx context.Context, userID string, limit int) ([]*models.JournalEntry, error)
	AverageSentimentSince(ctx context.Context, userID string, sinceDate string) (*float64, error)
	SoftDelete(ctx context.Context, id string, userID string) error
}
