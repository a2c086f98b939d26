package domain

import "time"

// PublicationKind separates written articles from podcast episodes.
type PublicationKind string

const (
	KindArticle PublicationKind = "article"
	KindPodcast PublicationKind = "podcast"
)

// Publication is an article or podcast episode published by the club.
type Publication struct {
	ID          string
	Title       string
	Kind        PublicationKind
	Summary     string
	ContentURL  string
	PublishedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
