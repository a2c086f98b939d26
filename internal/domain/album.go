package domain

import "time"

// Album groups gallery images, optionally tied to an event.
type Album struct {
	ID            string
	Title         string
	Description   string
	EventID       *string
	CoverImageURL string
	ImageURLs     []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
