package domain

import "time"

// Club distinguishes which organization a member belongs to.
type Club string

const (
	ClubTechFest Club = "techfest"
	ClubFICMH    Club = "ficmh"
)

// TeamMember is an organizer shown on the team page.
type TeamMember struct {
	ID           string
	Name         string
	Position     string
	Club         Club
	PhotoURL     string
	LinkedInURL  string
	InstagramURL string
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
