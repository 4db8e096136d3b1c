package moods

import (
	"context"

	"github.com/dmitrijs2005/moodtrack/internal/server/models"
)

// Repository is the persistence contract for mood logs. All reads exclude
// soft-deleted rows and are scoped to a single owner.
type Repository interface {
	Create(ctx context.Context, mood *models.Mood) (*models.Mood, error)
	GetAll(ctx context.Context, userID string) ([]*models.Mood, error)
	GetByID(ctx context.Context, id string, userID string) (*models.Mood, error)
	GetByDateRange(ctx context.Context, userID string, startDate, endDate string) ([]*models.Mood, error)
	GetRecent(ctx context.Context, userID string, limit int) ([]*models.Mood, error)
	AverageScoreSince(ctx context.Context, userID string, sinceDate string) (*float64, error)
	SoftDelete(ctx context.Context, id string, userID string) error
}
