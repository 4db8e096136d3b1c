package models

import "time"

// JournalEntry is a free-text diary record, one per (user, date).
// Sentiment is computed by the analyzer at creation time and is never
// accepted from the caller.
type JournalEntry struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Date   string `json:"date"`
	Entry  string `json:"entry"`
	// Sentiment is in 1.0..10.0, rounded to one decimal place.
	Sentiment float64    `json:"sentiment"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}
