package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ficmh/techfest-api/internal/domain"
	"github.com/ficmh/techfest-api/internal/repository"
	apperrors "github.com/ficmh/techfest-api/pkg/util"
)

// PublicationService coordinates article and podcast CRUD.
type PublicationService struct {
	pubs repository.PublicationRepository
}

// NewPublicationService constructs the service.
func NewPublicationService(pubs repository.PublicationRepository) *PublicationService {
	return &PublicationService{pubs: pubs}
}

// PublicationInput describes the create/update payload.
type PublicationInput struct {
	Title       string
	Kind        domain.PublicationKind
	Summary     string
	ContentURL  string
	PublishedAt time.Time
}

// List returns publications, newest first, optionally filtered by kind.
func (s *PublicationService) List(ctx context.Context, kind *domain.PublicationKind, limit, offset int) ([]domain.Publication, error) {
	pubs, err := s.pubs.List(ctx, repository.PublicationFilter{Kind: kind, Limit: limit, Offset: offset})
	if err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	return pubs, nil
}

// Get fetches one publication by id.
func (s *PublicationService) Get(ctx context.Context, id string) (*domain.Publication, error) {
	pub, err := s.pubs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("publication", map[string]any{"id": id})
		}
		return nil, apperrors.NewStoreUnavailable(err)
	}
	return pub, nil
}

// Create stores a new publication.
func (s *PublicationService) Create(ctx context.Context, input PublicationInput) (*domain.Publication, error) {
	pub := &domain.Publication{
		Title:       strings.TrimSpace(input.Title),
		Kind:        input.Kind,
		Summary:     strings.TrimSpace(input.Summary),
		ContentURL:  input.ContentURL,
		PublishedAt: input.PublishedAt,
	}
	if pub.PublishedAt.IsZero() {
		pub.PublishedAt = time.Now()
	}
	if err := s.pubs.Create(ctx, pub); err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	return pub, nil
}

// Update overwrites a publication.
func (s *PublicationService) Update(ctx context.Context, id string, input PublicationInput) (*domain.Publication, error) {
	pub, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	pub.Title = strings.TrimSpace(input.Title)
	pub.Kind = input.Kind
	pub.Summary = strings.TrimSpace(input.Summary)
	pub.ContentURL = input.ContentURL
	if !input.PublishedAt.IsZero() {
		pub.PublishedAt = input.PublishedAt
	}

	if err := s.pubs.Update(ctx, pub); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("publication", map[string]any{"id": id})
		}
		return nil, apperrors.NewStoreUnavailable(err)
	}
	return pub, nil
}

// Delete removes a publication.
func (s *PublicationService) Delete(ctx context.Context, id string) error {
	if err := s.pubs.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("publication", map[string]any{"id": id})
		}
		return apperrors.NewStoreUnavailable(err)
	}
	return nil
}
