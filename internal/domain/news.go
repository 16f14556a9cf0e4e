package domain

import "time"

// News represents a public news item. News is world-readable and not
// owned by any user; its date is a calendar date, distinct from comment
// timestamps, and drives the newest-first home page ordering.
type News struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}
