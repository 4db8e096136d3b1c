package models

import "time"

// Activity is a logged activity. Unlike moods and journal entries there is
// no per-day uniqueness: a user may log any number of activities per date.
type Activity struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	Date     string `json:"date"`
	Activity string `json:"activity"`
	// DurationMinutes is optional; when present it must be positive.
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	DeletedAt       *time.Time `json:"deleted_at,omitempty"`
}
