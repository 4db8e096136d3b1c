package services

import (
	"context"
	"database/sql"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/moodtrack/internal/server/config"
	"github.com/dmitrijs2005/moodtrack/internal/server/models"
	"github.com/dmitrijs2005/moodtrack/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/moodtrack/internal/server/validation"
)

const (
	dashboardRecentLimit = 5
	dashboardWindowDays  = 7
)

// seam for tests
var timeNow = time.Now

// DashboardService assembles the summary view: recent records of each kind
// plus trailing averages over the last week.
type DashboardService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewDashboardService(db *sql.DB, m repomanager.RepositoryManager, _ *config.Config) *DashboardService {
	return &DashboardService{db: db, repomanager: m}
}

// GetSummary runs the five reads concurrently and fails as a whole if any of
// them fails: a partially populated summary is never returned. The averaging
// window covers today and the six preceding days.
func (s *DashboardService) GetSummary(ctx context.Context, userID string) (*models.DashboardSummary, error) {
	since := timeNow().AddDate(0, 0, -(dashboardWindowDays - 1)).Format(validation.DateLayout)

	summary := &models.DashboardSummary{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		moods, err := s.repomanager.Moods(s.db).GetRecent(ctx, userID, dashboardRecentLimit)
		if err != nil {
			return err
		}
		summary.RecentMoods = moods
		return nil
	})
	g.Go(func() error {
		entries, err := s.repomanager.JournalEntries(s.db).GetRecent(ctx, userID, dashboardRecentLimit)
		if err != nil {
			return err
		}
		summary.RecentEntries = entries
		return nil
	})
	g.Go(func() error {
		activities, err := s.repomanager.Activities(s.db).GetRecent(ctx, userID, dashboardRecentLimit)
		if err != nil {
			return err
		}
		summary.RecentActivities = activities
		return nil
	})
	g.Go(func() error {
		avg, err := s.repomanager.Moods(s.db).AverageScoreSince(ctx, userID, since)
		if err != nil {
			return err
		}
		summary.AverageMoodLastWeek = avg
		return nil
	})
	g.Go(func() error {
		avg, err := s.repomanager.JournalEntries(s.db).AverageSentimentSince(ctx, userID, since)
		if err != nil {
			return err
		}
		summary.AverageSentimentLastWeek = avg
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summary, nil
}
