package models

import "time"

// Mood is a single mood log. At most one mood exists per (user, date);
// the moods table enforces this with a composite unique constraint.
type Mood struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	// Date is the calendar day the mood refers to, canonical YYYY-MM-DD.
	Date string `json:"date"`
	// MoodScore is in 1..10 inclusive.
	MoodScore int `json:"mood_score"`
	// Emotions is a non-empty ordered list of free-text labels.
	Emotions  []string   `json:"emotions"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}
