package activities

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/dmitrijs2005/moodtrack/internal/common"
	"github.com/dmitrijs2005/moodtrack/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

var activityColumns = []string{"id", "user_id", "date", "activity", "duration_minutes", "notes", "created_at", "updated_at", "deleted_at"}

func TestCreate_WithOptionalFields(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+activities\s*\(id,\s*user_id,\s*date,\s*activity,\s*duration_minutes,\s*notes\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5,\s*\$6\)\s*RETURNING\s+created_at,\s*updated_at\s*$`

	now := time.Now()
	mock.ExpectQuery(q).
		WithArgs(sqlmock.AnyArg(), "u-1", "2024-08-01", "running", int64(30), "morning run").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	duration := 30
	notes := "morning run"
	a := &models.Activity{UserID: "u-1", Date: "2024-08-01", Activity: "running", DurationMinutes: &duration, Notes: &notes}
	got, err := repo.Create(context.Background(), a)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID == "" {
		t.Fatalf("unexpected activity: %+v", got)
	}
}

func TestCreate_WithoutOptionalFields(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`INSERT\s+INTO\s+activities`).
		WithArgs(sqlmock.AnyArg(), "u-1", "2024-08-01", "reading", nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	a := &models.Activity{UserID: "u-1", Date: "2024-08-01", Activity: "reading"}
	got, err := repo.Create(context.Background(), a)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.DurationMinutes != nil || got.Notes != nil {
		t.Fatalf("optional fields should stay nil: %+v", got)
	}
}

func TestGetAll_DecodesNullableColumns(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(activityColumns).
		AddRow("a-2", "u-1", "2024-08-02", "yoga", int64(45), "evening", now, now, nil).
		AddRow("a-1", "u-1", "2024-08-01", "reading", nil, nil, now, now, nil)
	mock.ExpectQuery(`(?s)FROM\s+activities\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+deleted_at\s+IS\s+NULL\s+ORDER\s+BY\s+date\s+DESC`).
		WithArgs("u-1").WillReturnRows(rows)

	got, err := repo.GetAll(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("GetAll error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("unexpected activities: %+v", got)
	}
	if got[0].DurationMinutes == nil || *got[0].DurationMinutes != 45 {
		t.Fatalf("duration not decoded: %+v", got[0])
	}
	if got[1].DurationMinutes != nil || got[1].Notes != nil {
		t.Fatalf("null columns should map to nil: %+v", got[1])
	}
}

func TestGetByID_OtherUsersRecord(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM\s+activities`).WithArgs("a-1", "u-2").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "a-1", "u-2")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestGetByDateRange_OrdersAscending(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(activityColumns).
		AddRow("a-1", "u-1", "2024-08-01", "running", int64(30), nil, now, now, nil)
	mock.ExpectQuery(`(?s)date\s*>=\s*\$2\s+AND\s+date\s*<=\s*\$3\s+ORDER\s+BY\s+date\s+ASC`).
		WithArgs("u-1", "2024-08-01", "2024-08-31").WillReturnRows(rows)

	got, err := repo.GetByDateRange(context.Background(), "u-1", "2024-08-01", "2024-08-31")
	if err != nil {
		t.Fatalf("GetByDateRange error: %v", err)
	}
	if len(got) != 1 || got[0].Date != "2024-08-01" {
		t.Fatalf("unexpected activities: %+v", got)
	}
}

func TestGetRecent_PassesLimit(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(activityColumns).
		AddRow("a-1", "u-1", "2024-08-01", "running", nil, nil, now, now, nil)
	mock.ExpectQuery(`(?s)ORDER\s+BY\s+date\s+DESC\s+LIMIT\s+\$2`).
		WithArgs("u-1", 5).WillReturnRows(rows)

	got, err := repo.GetRecent(context.Background(), "u-1", 5)
	if err != nil {
		t.Fatalf("GetRecent error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("unexpected activities: %+v", got)
	}
}

func TestSoftDelete_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE\s+activities\s+SET\s+deleted_at`).
		WithArgs("ghost", "u-1").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SoftDelete(context.Background(), "ghost", "u-1")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}
