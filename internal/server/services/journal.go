package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/dmitrijs2005/moodtrack/internal/common"
	"github.com/dmitrijs2005/moodtrack/internal/server/config"
	"github.com/dmitrijs2005/moodtrack/internal/server/models"
	"github.com/dmitrijs2005/moodtrack/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/moodtrack/internal/server/sentiment"
	"github.com/dmitrijs2005/moodtrack/internal/server/validation"
)

// CreateJournalEntryInput carries the writable fields of a journal entry.
// Sentiment is never part of the input; it is always computed server-side.
type CreateJournalEntryInput struct {
	Date  string `json:"date"`
	Entry string `json:"entry"`
}

// JournalService implements journaling: one free-text entry per user per
// day, scored for sentiment at creation time.
type JournalService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	analyzer    sentiment.Analyzer
}

func NewJournalService(db *sql.DB, m repomanager.RepositoryManager, a sentiment.Analyzer, _ *config.Config) *JournalService {
	return &JournalService{db: db, repomanager: m, analyzer: a}
}

// Create validates input, scores the text, and inserts the entry. A second
// entry for the same day surfaces as common.ErrorAlreadyExists.
func (s *JournalService) Create(ctx context.Context, userID string, input CreateJournalEntryInput) (*models.JournalEntry, error) {
	var v validation.Violations
	if _, err := validation.ParseDate("date", input.Date); err != nil {
		var dateViolations validation.Violations
		if errors.As(err, &dateViolations) {
			v = append(v, dateViolations...)
		}
	}
	if strings.TrimSpace(input.Entry) == "" {
		v.Add("entry", "is required")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	repo := s.repomanager.JournalEntries(s.db)
	entry, err := repo.Create(ctx, &models.JournalEntry{
		UserID:    userID,
		Date:      input.Date,
		Entry:     input.Entry,
		Sentiment: scoreSentiment(s.analyzer, input.Entry),
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating journal entry: %w", err)
	}

	return entry, nil
}

// GetAll returns the user's journal entries, newest date first.
func (s *JournalService) GetAll(ctx context.Context, userID string) ([]*models.JournalEntry, error) {
	return s.repomanager.JournalEntries(s.db).GetAll(ctx, userID)
}

// GetByID returns the entry only when it belongs to userID.
func (s *JournalService) GetByID(ctx context.Context, id, userID string) (*models.JournalEntry, error) {
	return s.repomanager.JournalEntries(s.db).GetByID(ctx, id, userID)
}

// GetByDateRange returns entries with startDate <= date <= endDate,
// ascending by date.
func (s *JournalService) GetByDateRange(ctx context.Context, userID, startDate, endDate string) ([]*models.JournalEntry, error) {
	if err := validation.CheckDateRange(startDate, endDate); err != nil {
		return nil, err
	}
	return s.repomanager.JournalEntries(s.db).GetByDateRange(ctx, userID, startDate, endDate)
}

// Delete soft-deletes the user's journal entry.
func (s *JournalService) Delete(ctx context.Context, id, userID string) error {
	return s.repomanager.JournalEntries(s.db).SoftDelete(ctx, id, userID)
}

// scoreSentiment maps the analyzer's raw score (zero-centered, roughly
// -5..+5 for the bundled lexicon) onto the persisted 1.0..10.0 scale, with
// neutral text landing on 5.5. The result is clamped to the bounds and
// rounded to one decimal place, matching the column precision.
func scoreSentiment(a sentiment.Analyzer, text string) float64 {
	score := 5.5 + 0.9*a.Analyze(text)
	if score < 1.0 {
		score = 1.0
	}
	if score > 10.0 {
		score = 10.0
	}
	return math.Round(score*10) / 10
}
