package domain

import "time"

// Event is a festival or club event shown on the site.
type Event struct {
	ID            string
	Title         string
	Description   string
	StartsAt      time.Time
	Venue         string
	CoverImageURL string
	Published     bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
