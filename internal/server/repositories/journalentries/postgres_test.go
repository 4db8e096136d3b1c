package journalentries

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

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

var entryColumns = []string{"id", "user_id", "date", "entry", "sentiment", "created_at", "updated_at", "deleted_at"}

func entryRow(rows *sqlmock.Rows, id, date, text string, sentiment float64) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(id, "u-1", date, text, sentiment, now, now, nil)
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+journal_entries\s*\(id,\s*user_id,\s*date,\s*entry,\s*sentiment\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5\)\s*RETURNING\s+created_at,\s*updated_at\s*$`

	now := time.Now()
	mock.ExpectQuery(q).
		WithArgs(sqlmock.AnyArg(), "u-1", "2024-08-01", "Good day", 7.3).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	e := &models.JournalEntry{UserID: "u-1", Date: "2024-08-01", Entry: "Good day", Sentiment: 7.3}
	got, err := repo.Create(context.Background(), e)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID == "" || got.Sentiment != 7.3 {
		t.Fatalf("unexpected entry: %+v", got)
	}
}

func TestCreate_DuplicateDay(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+journal_entries`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "journal_entries_user_id_date_key"})

	_, err := repo.Create(context.Background(), &models.JournalEntry{UserID: "u-1", Date: "2024-08-01", Entry: "x", Sentiment: 5.5})
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("want common.ErrorAlreadyExists, got %v", err)
	}
}

func TestGetAll_OrdersDescending(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)FROM\s+journal_entries\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+deleted_at\s+IS\s+NULL\s+ORDER\s+BY\s+date\s+DESC`
	rows := sqlmock.NewRows(entryColumns)
	entryRow(rows, "j-2", "2024-08-02", "ok", 6.0)
	entryRow(rows, "j-1", "2024-08-01", "good", 7.5)
	mock.ExpectQuery(q).WithArgs("u-1").WillReturnRows(rows)

	got, err := repo.GetAll(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("GetAll error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "j-2" {
		t.Fatalf("unexpected entries: %+v", got)
	}
}

func TestGetByID_OtherUsersRecord(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM\s+journal_entries`).WithArgs("j-1", "u-2").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "j-1", "u-2")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestGetByDateRange_InclusiveBoundsAscending(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)date\s*>=\s*\$2\s+AND\s+date\s*<=\s*\$3\s+ORDER\s+BY\s+date\s+ASC`
	rows := sqlmock.NewRows(entryColumns)
	entryRow(rows, "j-1", "2024-08-01", "start boundary", 5.0)
	entryRow(rows, "j-2", "2024-08-31", "end boundary", 6.0)
	mock.ExpectQuery(q).WithArgs("u-1", "2024-08-01", "2024-08-31").WillReturnRows(rows)

	got, err := repo.GetByDateRange(context.Background(), "u-1", "2024-08-01", "2024-08-31")
	if err != nil {
		t.Fatalf("GetByDateRange error: %v", err)
	}
	if len(got) != 2 || got[0].Date != "2024-08-01" || got[1].Date != "2024-08-31" {
		t.Fatalf("unexpected entries: %+v", got)
	}
}

func TestGetRecent_PassesLimit(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)ORDER\s+BY\s+date\s+DESC\s+LIMIT\s+\$2`
	rows := sqlmock.NewRows(entryColumns)
	entryRow(rows, "j-1", "2024-08-01", "good", 7.5)
	mock.ExpectQuery(q).WithArgs("u-1", 5).WillReturnRows(rows)

	got, err := repo.GetRecent(context.Background(), "u-1", 5)
	if err != nil {
		t.Fatalf("GetRecent error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("unexpected entries: %+v", got)
	}
}

func TestAverageSentimentSince_NullWhenNoRows(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+AVG\(sentiment\)`).WithArgs("u-1", "2024-07-25").
		WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(nil))

	avg, err := repo.AverageSentimentSince(context.Background(), "u-1", "2024-07-25")
	if err != nil {
		t.Fatalf("AverageSentimentSince error: %v", err)
	}
	if avg != nil {
		t.Fatalf("want nil average, got %v", *avg)
	}
}

func TestAverageSentimentSince_Value(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+AVG\(sentiment\)`).WithArgs("u-1", "2024-07-25").
		WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(6.8))

	avg, err := repo.AverageSentimentSince(context.Background(), "u-1", "2024-07-25")
	if err != nil {
		t.Fatalf("AverageSentimentSince error: %v", err)
	}
	if avg == nil || *avg != 6.8 {
		t.Fatalf("unexpected average: %v", avg)
	}
}

func TestSoftDelete_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE\s+journal_entries\s+SET\s+deleted_at`).
		WithArgs("j-1", "u-1").WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SoftDelete(context.Background(), "j-1", "u-1"); err != nil {
		t.Fatalf("SoftDelete error: %v", err)
	}
}
