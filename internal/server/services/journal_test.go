package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/moodtrack/internal/common"
	"github.com/dmitrijs2005/moodtrack/internal/server/models"
)

type fixedAnalyzer struct{ score float64 }

func (a fixedAnalyzer) Analyze(string) float64 { return a.score }

func TestJournalCreate_Success(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeJournalRepo{createOut: &models.JournalEntry{ID: "j1"}}
	s := NewJournalService(db, &fakeRepoManager{j: repo}, fixedAnalyzer{score: 2}, nil)

	entry, err := s.Create(context.Background(), "u1", CreateJournalEntryInput{
		Date: "2024-08-01", Entry: "a good day",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if entry.ID != "j1" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if repo.createdIn.Sentiment != 7.3 {
		t.Fatalf("sentiment not computed server-side: %v", repo.createdIn.Sentiment)
	}
}

func TestJournalCreate_Validation(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()
	s := NewJournalService(db, &fakeRepoManager{j: &fakeJournalRepo{}}, fixedAnalyzer{}, nil)

	cases := []struct {
		name  string
		input CreateJournalEntryInput
	}{
		{"bad date", CreateJournalEntryInput{Date: "2024/08/01", Entry: "text"}},
		{"empty entry", CreateJournalEntryInput{Date: "2024-08-01", Entry: ""}},
		{"whitespace entry", CreateJournalEntryInput{Date: "2024-08-01", Entry: "   "}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Create(context.Background(), "u1", tc.input)
			if !errors.Is(err, common.ErrorValidation) {
				t.Fatalf("want ErrorValidation, got %v", err)
			}
		})
	}
}

func TestJournalCreate_SameDayConflict(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := NewJournalService(db, &fakeRepoManager{j: &fakeJournalRepo{createErr: common.ErrorAlreadyExists}}, fixedAnalyzer{}, nil)

	_, err := s.Create(context.Background(), "u1", CreateJournalEntryInput{Date: "2024-08-01", Entry: "again"})
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("want ErrorAlreadyExists, got %v", err)
	}
}

func TestScoreSentiment_Mapping(t *testing.T) {
	cases := []struct {
		name string
		raw  float64
		want float64
	}{
		{"neutral maps to midpoint", 0, 5.5},
		{"positive shifts up", 3, 8.2},
		{"negative shifts down", -2, 3.7},
		{"clamped at upper bound", 100, 10.0},
		{"clamped at lower bound", -100, 1.0},
		{"rounded to one decimal", 1.234, 6.6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := scoreSentiment(fixedAnalyzer{score: tc.raw}, "whatever")
			if got != tc.want {
				t.Fatalf("raw %v: want %v, got %v", tc.raw, tc.want, got)
			}
		})
	}
}
