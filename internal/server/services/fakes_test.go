package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/dmitrijs2005/moodtrack/internal/dbx"
	"github.com/dmitrijs2005/moodtrack/internal/server/models"
	activitiesrepo "github.com/dmitrijs2005/moodtrack/internal/server/repositories/activities"
	journalrepo "github.com/dmitrijs2005/moodtrack/internal/server/repositories/journalentries"
	moodsrepo "github.com/dmitrijs2005/moodtrack/internal/server/repositories/moods"
	refreshrepo "github.com/dmitrijs2005/moodtrack/internal/server/repositories/refreshtokens"
	usersrepo "github.com/dmitrijs2005/moodtrack/internal/server/repositories/users"
)

// --- shared helpers for service tests ---

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	byEmailOut *models.User
	byEmailErr error

	byIDOut *models.User
	byIDErr error

	updateHashErr error
	softDeleteErr error

	updatedHash     string
	softDeletedID   string
	softDeleteCalls int
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.byEmailErr != nil {
		return nil, f.byEmailErr
	}
	return f.byEmailOut, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

func (f *fakeUsersRepo) UpdatePasswordHash(ctx context.Context, id string, hash string) error {
	f.updatedHash = hash
	return f.updateHashErr
}

func (f *fakeUsersRepo) SoftDelete(ctx context.Context, id string) error {
	f.softDeletedID = id
	f.softDeleteCalls++
	return f.softDeleteErr
}

type fakeRefreshRepo struct {
	createErr error

	findOut *models.RefreshToken
	findErr error

	delErr error

	delForUserErr   error
	delForUserCalls int
}

func (f *fakeRefreshRepo) Create(ctx context.Context, userID string, token string, validity time.Duration) error {
	return f.createErr
}

func (f *fakeRefreshRepo) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeRefreshRepo) Delete(ctx context.Context, token string) error { return f.delErr }

func (f *fakeRefreshRepo) DeleteForUser(ctx context.Context, userID string) error {
	f.delForUserCalls++
	return f.delForUserErr
}

type fakeMoodsRepo struct {
	createdIn *models.Mood
	createOut *models.Mood
	createErr error

	listOut []*models.Mood
	listErr error

	byIDOut *models.Mood
	byIDErr error

	avgOut *float64
	avgErr error

	softDeleteErr error

	lastRangeStart string
	lastRangeEnd   string
	lastSince      string
	lastLimit      int
}

func (f *fakeMoodsRepo) Create(ctx context.Context, m *models.Mood) (*models.Mood, error) {
	f.createdIn = m
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeMoodsRepo) GetAll(ctx context.Context, userID string) ([]*models.Mood, error) {
	return f.listOut, f.listErr
}

func (f *fakeMoodsRepo) GetByID(ctx context.Context, id string, userID string) (*models.Mood, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

func (f *fakeMoodsRepo) GetByDateRange(ctx context.Context, userID string, startDate, endDate string) ([]*models.Mood, error) {
	f.lastRangeStart, f.lastRangeEnd = startDate, endDate
	return f.listOut, f.listErr
}

func (f *fakeMoodsRepo) GetRecent(ctx context.Context, userID string, limit int) ([]*models.Mood, error) {
	f.lastLimit = limit
	return f.listOut, f.listErr
}

func (f *fakeMoodsRepo) AverageScoreSince(ctx context.Context, userID string, sinceDate string) (*float64, error) {
	f.lastSince = sinceDate
	return f.avgOut, f.avgErr
}

func (f *fakeMoodsRepo) SoftDelete(ctx context.Context, id string, userID string) error {
	return f.softDeleteErr
}

type fakeJournalRepo struct {
	createdIn *models.JournalEntry
	createOut *models.JournalEntry
	createErr error

	listOut []*models.JournalEntry
	listErr error

	byIDOut *models.JournalEntry
	byIDErr error

	avgOut *float64
	avgErr error

	softDeleteErr error

	lastSince string
	lastLimit int
}

func (f *fakeJournalRepo) Create(ctx context.Context, e *models.JournalEntry) (*models.JournalEntry, error) {
	f.createdIn = e
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeJournalRepo) GetAll(ctx context.Context, userID string) ([]*models.JournalEntry, error) {
	return f.listOut, f.listErr
}

func (f *fakeJournalRepo) GetByID(ctx context.Context, id string, userID string) (*models.JournalEntry, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

func (f *fakeJournalRepo) GetByDateRange(ctx context.Context, userID string, startDate, endDate string) ([]*models.JournalEntry, error) {
	return f.listOut, f.listErr
}

func (f *fakeJournalRepo) GetRecent(ctx context.Context, userID string, limit int) ([]*models.JournalEntry, error) {
	f.lastLimit = limit
	return f.listOut, f.listErr
}

func (f *fakeJournalRepo) AverageSentimentSince(ctx context.Context, userID string, sinceDate string) (*float64, error) {
	f.lastSince = sinceDate
	return f.avgOut, f.avgErr
}

func (f *fakeJournalRepo) SoftDelete(ctx context.Context, id string, userID string) error {
	return f.softDeleteErr
}

type fakeActivitiesRepo struct {
	createdIn *models.Activity
	createOut *models.Activity
	createErr error

	listOut []*models.Activity
	listErr error

	byIDOut *models.Activity
	byIDErr error

	softDeleteErr error

	lastLimit int
}

func (f *fakeActivitiesRepo) Create(ctx context.Context, a *models.Activity) (*models.Activity, error) {
	f.createdIn = a
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeActivitiesRepo) GetAll(ctx context.Context, userID string) ([]*models.Activity, error) {
	return f.listOut, f.listErr
}

func (f *fakeActivitiesRepo) GetByID(ctx context.Context, id string, userID string) (*models.Activity, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

func (f *fakeActivitiesRepo) GetByDateRange(ctx context.Context, userID string, startDate, endDate string) ([]*models.Activity, error) {
	return f.listOut, f.listErr
}

func (f *fakeActivitiesRepo) GetRecent(ctx context.Context, userID string, limit int) ([]*models.Activity, error) {
	f.lastLimit = limit
	return f.listOut, f.listErr
}

func (f *fakeActivitiesRepo) SoftDelete(ctx context.Context, id string, userID string) error {
	return f.softDeleteErr
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	r *fakeRefreshRepo
	m *fakeMoodsRepo
	j *fakeJournalRepo
	a *fakeActivitiesRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error      { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository            { return m.u }
func (m *fakeRepoManager) Moods(db dbx.DBTX) moodsrepo.Repository            { return m.m }
func (m *fakeRepoManager) JournalEntries(db dbx.DBTX) journalrepo.Repository { return m.j }
func (m *fakeRepoManager) Activities(db dbx.DBTX) activitiesrepo.Repository  { return m.a }
func (m *fakeRepoManager) RefreshTokens(db dbx.DBTX) refreshrepo.Repository  { return m.r }
