package dto

import (
	"time"

	"github.com/ficmh/techfest-api/internal/domain"
)

// EventRequest payload for creating or updating an event.
type EventRequest struct {
	Title         string    `json:"title" validate:"required"`
	Description   string    `json:"description"`
	StartsAt      time.Time `json:"starts_at" validate:"required"`
	Venue         string    `json:"venue"`
	CoverImageURL string    `json:"cover_image_url" validate:"omitempty,url"`
	Published     bool      `json:"published"`
}

// AlbumRequest payload for creating or updating a gallery album.
type AlbumRequest struct {
	Title         string   `json:"title" validate:"required"`
	Description   string   `json:"description"`
	EventID       *string  `json:"event_id"`
	CoverImageURL string   `json:"cover_image_url" validate:"omitempty,url"`
	ImageURLs     []string `json:"image_urls" validate:"dive,url"`
}

// SponsorRequest payload for creating or updating a sponsor.
type SponsorRequest struct {
	Name       string `json:"name" validate:"required"`
	Tier       string `json:"tier" validate:"required,oneof=platinum gold silver partner"`
	WebsiteURL string `json:"website_url" validate:"omitempty,url"`
	LogoURL    string `json:"logo_url" validate:"omitempty,url"`
}

// TeamMemberRequest payload for creating or updating a team member.
type TeamMemberRequest struct {
	Name         string `json:"name" validate:"required"`
	Position     string `json:"position" validate:"required"`
	Club         string `json:"club" validate:"required,oneof=techfest ficmh"`
	PhotoURL     string `json:"photo_url" validate:"omitempty,url"`
	LinkedInURL  string `json:"linkedin_url" validate:"omitempty,url"`
	InstagramURL string `json:"instagram_url" validate:"omitempty,url"`
	DisplayOrder int    `json:"display_order"`
}

// PublicationRequest payload for creating or updating a publication.
type PublicationRequest struct {
	Title       string    `json:"title" validate:"required"`
	Kind        string    `json:"kind" validate:"required,oneof=article podcast"`
	Summary     string    `json:"summary"`
	ContentURL  string    `json:"content_url" validate:"omitempty,url"`
	PublishedAt time.Time `json:"published_at"`
}

// EventView is the API representation of an event.
type EventView struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	StartsAt      time.Time `json:"starts_at"`
	Venue         string    `json:"venue"`
	CoverImageURL string    `json:"cover_image_url"`
	Published     bool      `json:"published"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewEventView maps a domain event for API responses.
func NewEventView(event *domain.Event) EventView {
	return EventView{
		ID:            event.ID,
		Title:         event.Title,
		Description:   event.Description,
		StartsAt:      event.StartsAt,
		Venue:         event.Venue,
		CoverImageURL: event.CoverImageURL,
		Published:     event.Published,
		CreatedAt:     event.CreatedAt,
		UpdatedAt:     event.UpdatedAt,
	}
}

// NewEventViews maps a slice of events.
func NewEventViews(events []domain.Event) []EventView {
	views := make([]EventView, 0, len(events))
	for i := range events {
		views = append(views, NewEventView(&events[i]))
	}
	return views
}

// AlbumView is the API representation of a gallery album.
type AlbumView struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	EventID       *string   `json:"event_id"`
	CoverImageURL string    `json:"cover_image_url"`
	ImageURLs     []string  `json:"image_urls"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewAlbumView maps a domain album for API responses.
func NewAlbumView(album *domain.Album) AlbumView {
	return AlbumView{
		ID:            album.ID,
		Title:         album.Title,
		Description:   album.Description,
		EventID:       album.EventID,
		CoverImageURL: album.CoverImageURL,
		ImageURLs:     album.ImageURLs,
		CreatedAt:     album.CreatedAt,
		UpdatedAt:     album.UpdatedAt,
	}
}

// NewAlbumViews maps a slice of albums.
func NewAlbumViews(albums []domain.Album) []AlbumView {
	views := make([]AlbumView, 0, len(albums))
	for i := range albums {
		views = append(views, NewAlbumView(&albums[i]))
	}
	return views
}

// SponsorView is the API representation of a sponsor.
type SponsorView struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Tier       domain.SponsorTier `json:"tier"`
	WebsiteURL string             `json:"website_url"`
	LogoURL    string             `json:"logo_url"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

// NewSponsorView maps a domain sponsor for API responses.
func NewSponsorView(sponsor *domain.Sponsor) SponsorView {
	return SponsorView{
		ID:         sponsor.ID,
		Name:       sponsor.Name,
		Tier:       sponsor.Tier,
		WebsiteURL: sponsor.WebsiteURL,
		LogoURL:    sponsor.LogoURL,
		CreatedAt:  sponsor.CreatedAt,
		UpdatedAt:  sponsor.UpdatedAt,
	}
}

// NewSponsorViews maps a slice of sponsors.
func NewSponsorViews(sponsors []domain.Sponsor) []SponsorView {
	views := make([]SponsorView, 0, len(sponsors))
	for i := range sponsors {
		views = append(views, NewSponsorView(&sponsors[i]))
	}
	return views
}

// TeamMemberView is the API representation of a team member.
type TeamMemberView struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Position     string      `json:"position"`
	Club         domain.Club `json:"club"`
	PhotoURL     string      `json:"photo_url"`
	LinkedInURL  string      `json:"linkedin_url"`
	InstagramURL string      `json:"instagram_url"`
	DisplayOrder int         `json:"display_order"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// NewTeamMemberView maps a domain team member for API responses.
func NewTeamMemberView(member *domain.TeamMember) TeamMemberView {
	return TeamMemberView{
		ID:           member.ID,
		Name:         member.Name,
		Position:     member.Position,
		Club:         member.Club,
		PhotoURL:     member.PhotoURL,
		LinkedInURL:  member.LinkedInURL,
		InstagramURL: member.InstagramURL,
		DisplayOrder: member.DisplayOrder,
		CreatedAt:    member.CreatedAt,
		UpdatedAt:    member.UpdatedAt,
	}
}

// NewTeamMemberViews maps a slice of team members.
func NewTeamMemberViews(members []domain.TeamMember) []TeamMemberView {
	views := make([]TeamMemberView, 0, len(members))
	for i := range members {
		views = append(views, NewTeamMemberView(&members[i]))
	}
	return views
}

// PublicationView is the API representation of an article or podcast.
type PublicationView struct {
	ID          string                 `json:"id"`
	Title       string                 `json:"title"`
	Kind        domain.PublicationKind `json:"kind"`
	Summary     string                 `json:"summary"`
	ContentURL  string                 `json:"content_url"`
	PublishedAt time.Time              `json:"published_at"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// NewPublicationView maps a domain publication for API responses.
func NewPublicationView(pub *domain.Publication) PublicationView {
	return PublicationView{
		ID:          pub.ID,
		Title:       pub.Title,
		Kind:        pub.Kind,
		Summary:     pub.Summary,
		ContentURL:  pub.ContentURL,
		PublishedAt: pub.PublishedAt,
		CreatedAt:   pub.CreatedAt,
		UpdatedAt:   pub.UpdatedAt,
	}
}

// NewPublicationViews maps a slice of publications.
func NewPublicationViews(pubs []domain.Publication) []PublicationView {
	views := make([]PublicationView, 0, len(pubs))
	for i := range pubs {
		views = append(views, NewPublicationView(&pubs[i]))
	}
	return views
}
