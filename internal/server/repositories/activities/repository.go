package activities

import (
	"context"

	"github.com/dmitrijs2005/moodtrack/internal/server/models"
)

// Repository is the persistence contract for activity logs. Activities have
// no per-day uniqueness; a user may log several per date.
type Repository interface {
	Create(ctx context.Context, activity *models.Activity) (*models.Activity, error)
	GetAll(ctx context.Context, userID string) ([]*models.Activity, error)
	GetByID(ctx context.Context, id string, userID string) (*models.Activity, error)
	GetByDateRange(ctx context.Context, userID string, startDate, endDate string) ([]*models.Activity, error)
	GetRecent(ctx context.Context, userID string, limit int) ([]*models.Activity, error)
	SoftDelete(ctx context.Context, id string, userID string) error
}
