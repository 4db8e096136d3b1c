// Package httpapi exposes the tracker over a JSON HTTP API built on gin.
// Handlers stay thin: bind, call the service, translate the error. All
// domain rules live in the services package.
package httpapi

import (
	"context"

	"github.com/dmitrijs2005/moodtrack/internal/logging"
	"github.com/dmitrijs2005/moodtrack/internal/server/config"
	"github.com/dmitrijs2005/moodtrack/internal/server/models"
	"github.com/dmitrijs2005/moodtrack/internal/server/services"
)

// UserService is the account-facing surface the API depends on.
type UserService interface {
	Register(ctx context.Context, email, username, password string) (*models.PublicUser, *services.TokenPair, error)
	Login(ctx context.Context, email, password string) (*models.PublicUser, *services.TokenPair, error)
	GetUserByID(ctx context.Context, id string) (*models.PublicUser, error)
	ChangePassword(ctx context.Context, id, oldPassword, newPassword string) (bool, error)
	DeleteUser(ctx context.Context, id string) error
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
}

// MoodService is the mood-tracking surface the API depends on.
type MoodService interface {
	Create(ctx context.Context, userID string, input services.CreateMoodInput) (*models.Mood, error)
	GetAll(ctx context.Context, userID string) ([]*models.Mood, error)
	GetByID(ctx context.Context, id, userID string) (*models.Mood, error)
	GetByDateRange(ctx context.Context, userID, startDate, endDate string) ([]*models.Mood, error)
	Delete(ctx context.Context, id, userID string) error
}

// JournalService is the journaling surface the API depends on.
type JournalService interface {
	Create(ctx context.Context, userID string, input services.CreateJournalEntryInput) (*models.JournalEntry, error)
	GetAll(ctx context.Context, userID string) ([]*models.JournalEntry, error)
	GetByID(ctx context.Context, id, userID string) (*models.JournalEntry, error)
	GetByDateRange(ctx context.Context, userID, startDate, endDate string) ([]*models.JournalEntry, error)
	Delete(ctx context.Context, id, userID string) error
}

// ActivityService is the activity-logging surface the API depends on.
type ActivityService interface {
	Create(ctx context.Context, userID string, input services.CreateActivityInput) (*models.Activity, error)
	GetAll(ctx context.Context, userID string) ([]*models.Activity, error)
	GetByID(ctx context.Context, id, userID string) (*models.Activity, error)
	GetByDateRange(ctx context.Context, userID, startDate, endDate string) ([]*models.Activity, error)
	Delete(ctx context.Context, id, userID string) error
}

// DashboardService assembles the summary view.
type DashboardService interface {
	GetSummary(ctx context.Context, userID string) (*models.DashboardSummary, error)
}

// ExportService produces downloadable data snapshots.
type ExportService interface {
	Export(ctx context.Context, userID string) (string, error)
}

// Server holds the handler dependencies.
type Server struct {
	users      UserService
	moods      MoodService
	journal    JournalService
	activities ActivityService
	dashboard  DashboardService
	export     ExportService
	config     *config.Config
	log        logging.Logger
}

func NewServer(
	users UserService,
	moods MoodService,
	journal JournalService,
	activities ActivityService,
	dashboard DashboardService,
	export ExportService,
	cfg *config.Config,
	log logging.Logger,
) *Server {
	return &Server{
		users:      users,
		moods:      moods,
		journal:    journal,
		activities: activities,
		dashboard:  dashboard,
		export:     export,
		config:     cfg,
		log:        log,
	}
}
