package users

import (
	"context"

	"github.com/dmitrijs2005/moodtrack/internal/server/models"
)

// Repository is the persistence contract for user accounts.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	UpdatePasswordHash(ctx context.Context, id string, passwordHash string) error
	SoftDelete(ctx context.Context, id string) error
}
