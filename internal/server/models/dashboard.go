package models

// DashboardSummary is a derived, non-persisted view: the five most recent
// records of each kind plus trailing 7-day averages. The averages are nil,
// not zero, when no qualifying rows exist.
type DashboardSummary struct {
	RecentMoods              []*Mood         `json:"recent_moods"`
	RecentEntries            []*JournalEntry `json:"recent_entries"`
	RecentActivities         []*Activity     `json:"recent_activities"`
	AverageMoodLastWeek      *float64        `json:"average_mood_last_week"`
	AverageSentimentLastWeek *float64        `json:"average_sentiment_last_week"`
}
