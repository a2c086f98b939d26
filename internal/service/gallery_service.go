package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/ficmh/techfest-api/internal/domain"
	"github.com/ficmh/techfest-api/internal/repository"
	apperrors "github.com/ficmh/techfest-api/pkg/util"
)

// GalleryService coordinates gallery album CRUD.
type GalleryService struct {
	albums repository.AlbumRepository
	events repository.EventRepository
}

// NewGalleryService constructs the service.
func NewGalleryService(albums repository.AlbumRepository, events repository.EventRepository) *GalleryService {
	return &GalleryService{albums: albums, events: events}
}

// AlbumInput describes the create/update payload.
type AlbumInput struct {
	Title         string
	Description   string
	EventID       *string
	CoverImageURL string
	ImageURLs     []string
}

// List returns albums, newest first.
func (s *GalleryService) List(ctx context.Context, limit, offset int) ([]domain.Album, error) {
	albums, err := s.albums.List(ctx, limit, offset)
	if err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	return albums, nil
}

// Get fetches one album by id.
func (s *GalleryService) Get(ctx context.Context, id string) (*domain.Album, error) {
	album, err := s.albums.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("album", map[string]any{"id": id})
		}
		return nil, apperrors.NewStoreUnavailable(err)
	}
	return album, nil
}

// Create stores a new album. A referenced event must exist.
func (s *GalleryService) Create(ctx context.Context, input AlbumInput) (*domain.Album, error) {
	if err := s.checkEvent(ctx, input.EventID); err != nil {
		return nil, err
	}

	album := &domain.Album{
		Title:         strings.TrimSpace(input.Title),
		Description:   strings.TrimSpace(input.Description),
		EventID:       input.EventID,
		CoverImageURL: input.CoverImageURL,
		ImageURLs:     input.ImageURLs,
	}
	if err := s.albums.Create(ctx, album); err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	return album, nil
}

// Update overwrites an album.
func (s *GalleryService) Update(ctx context.Context, id string, input AlbumInput) (*domain.Album, error) {
	album, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkEvent(ctx, input.EventID); err != nil {
		return nil, err
	}

	album.Title = strings.TrimSpace(input.Title)
	album.Description = strings.TrimSpace(input.Description)
	album.EventID = input.EventID
	album.CoverImageURL = input.CoverImageURL
	album.ImageURLs = input.ImageURLs

	if err := s.albums.Update(ctx, album); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("album", map[string]any{"id": id})
		}
		return nil, apperrors.NewStoreUnavailable(err)
	}
	return album, nil
}

// Delete removes an album.
func (s *GalleryService) Delete(ctx context.Context, id string) error {
	if err := s.albums.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("album", map[string]any{"id": id})
		}
		return apperrors.NewStoreUnavailable(err)
	}
	return nil
}

func (s *GalleryService) checkEvent(ctx context.Context, eventID *string) error {
	if eventID == nil {
		return nil
	}
	if _, err := s.events.GetByID(ctx, *eventID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("event", map[string]any{"id": *eventID})
		}
		return apperrors.NewStoreUnavailable(err)
	}
	return nil
}
