// Package refreshtokens provides the server-side repository for refresh
// tokens backing session renewal.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/moodtrack/internal/server/models"
)

// Repository defines operations for issuing, retrieving, and revoking
// refresh tokens.
type Repository interface {
	// Create stores a new refresh token for userID expiring at now+validity.
	Create(ctx context.Context, userID string, token string, validity time.Duration) error

	// Find looks up a refresh token by its opaque token string.
	// Returns common.ErrorNotFound when absent.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	// Delete removes a refresh token. Deleting a non-existent token is not
	// an error.
	Delete(ctx context.Context, token string) error

	// DeleteForUser revokes every refresh token belonging to userID, used
	// on password change and account deletion.
	DeleteForUser(ctx context.Context, userID string) error
}
