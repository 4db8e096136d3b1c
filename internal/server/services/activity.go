package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/moodtrack/internal/server/config"
	"github.com/dmitrijs2005/moodtrack/internal/server/models"
	"github.com/dmitrijs2005/moodtrack/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/moodtrack/internal/server/validation"
)

// CreateActivityInput carries the writable fields of an activity log.
// DurationMinutes and Notes are optional.
type CreateActivityInput struct {
	Date            string  `json:"date"`
	Activity        string  `json:"activity"`
	DurationMinutes *int    `json:"duration_minutes,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// ActivityService implements activity logging. Unlike moods and journal
// entries there is no per-day uniqueness.
type ActivityService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewActivityService(db *sql.DB, m repomanager.RepositoryManager, _ *config.Config) *ActivityService {
	return &ActivityService{db: db, repomanager: m}
}

// Create validates input and inserts the activity.
func (s *ActivityService) Create(ctx context.Context, userID string, input CreateActivityInput) (*models.Activity, error) {
	var v validation.Violations
	if _, err := validation.ParseDate("date", input.Date); err != nil {
		var dateViolations validation.Violations
		if errors.As(err, &dateViolations) {
			v = append(v, dateViolations...)
		}
	}
	if strings.TrimSpace(input.Activity) == "" {
		v.Add("activity", "is required")
	}
	if input.DurationMinutes != nil && *input.DurationMinutes <= 0 {
		v.Add("duration_minutes", "must be positive")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	activity, err := s.repomanager.Activities(s.db).Create(ctx, &models.Activity{
		UserID:          userID,
		Date:            input.Date,
		Activity:        input.Activity,
		DurationMinutes: input.DurationMinutes,
		Notes:           input.Notes,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating activity: %w", err)
	}

	return activity, nil
}

// GetAll returns the user's activities, newest date first.
func (s *ActivityService) GetAll(ctx context.Context, userID string) ([]*models.Activity, error) {
	return s.repomanager.Activities(s.db).GetAll(ctx, userID)
}

// GetByID returns the activity only when it belongs to userID.
func (s *ActivityService) GetByID(ctx context.Context, id, userID string) (*models.Activity, error) {
	return s.repomanager.Activities(s.db).GetByID(ctx, id, userID)
}

// GetByDateRange returns activities with startDate <= date <= endDate,
// ascending by date.
func (s *ActivityService) GetByDateRange(ctx context.Context, userID, startDate, endDate string) ([]*models.Activity, error) {
	if err := validation.CheckDateRange(startDate, endDate); err != nil {
		return nil, err
	}
	return s.repomanager.Activities(s.db).GetByDateRange(ctx, userID, startDate, endDate)
}

// Delete soft-deletes the user's activity.
func (s *ActivityService) Delete(ctx context.Context, id, userID string) error {
	return s.repomanager.Activities(s.db).SoftDelete(ctx, id, userID)
}
