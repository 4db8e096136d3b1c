package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/moodtrack/internal/common"
	"github.com/dmitrijs2005/moodtrack/internal/server/config"
	"github.com/dmitrijs2005/moodtrack/internal/server/models"
	"github.com/dmitrijs2005/moodtrack/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/moodtrack/internal/server/validation"
)

// CreateMoodInput is the caller-supplied part of a mood log. Timestamps are
// always set server-side.
type CreateMoodInput struct {
	Date      string   `json:"date"`
	MoodScore int      `json:"mood_score"`
	Emotions  []string `json:"emotions"`
}

// MoodService implements mood logging: one score per user per day, with a
// non-empty list of emotion labels.
type MoodService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewMoodService(db *sql.DB, m repomanager.RepositoryManager, _ *config.Config) *MoodService {
	return &MoodService{db: db, repomanager: m}
}

// Create validates input and inserts the mood. A second mood for the same
// day — including one lost to a concurrent create — comes back as
// common.ErrorAlreadyExists.
func (s *MoodService) Create(ctx context.Context, userID string, input CreateMoodInput) (*models.Mood, error) {
	var v validation.Violations
	if _, err := validation.ParseDate("date", input.Date); err != nil {
		var dateViolations validation.Violations
		if errors.As(err, &dateViolations) {
			v = append(v, dateViolations...)
		}
	}
	validation.CheckIntRange(&v, "mood_score", input.MoodScore, 1, 10)
	if len(input.Emotions) == 0 {
		v.Add("emotions", "must contain at least one emotion")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	repo := s.repomanager.Moods(s.db)
	mood, err := repo.Create(ctx, &models.Mood{
		UserID:    userID,
		Date:      input.Date,
		MoodScore: input.MoodScore,
		Emotions:  input.Emotions,
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating mood: %w", err)
	}

	return mood, nil
}

// GetAll returns the user's moods, newest date first.
func (s *MoodService) GetAll(ctx context.Context, userID string) ([]*models.Mood, error) {
	return s.repomanager.Moods(s.db).GetAll(ctx, userID)
}

// GetByID returns the mood only when it belongs to userID; another user's
// record yields common.ErrorNotFound, never the record itself.
func (s *MoodService) GetByID(ctx context.Context, id, userID string) (*models.Mood, error) {
	return s.repomanager.Moods(s.db).GetByID(ctx, id, userID)
}

// GetByDateRange returns moods with startDate <= date <= endDate, ascending
// by date. Bounds must be canonical calendar dates.
func (s *MoodService) GetByDateRange(ctx context.Context, userID, startDate, endDate string) ([]*models.Mood, error) {
	if err := validation.CheckDateRange(startDate, endDate); err != nil {
		return nil, err
	}
	return s.repomanager.Moods(s.db).GetByDateRange(ctx, userID, startDate, endDate)
}

// Delete soft-deletes the user's mood.
func (s *MoodService) Delete(ctx context.Context, id, userID string) error {
	return s.repomanager.Moods(s.db).SoftDelete(ctx, id, userID)
}
