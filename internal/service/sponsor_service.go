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

// SponsorService coordinates sponsor CRUD.
type SponsorService struct {
	sponsors repository.SponsorRepository
}

// NewSponsorService constructs the service.
func NewSponsorService(sponsors repository.SponsorRepository) *SponsorService {
	return &SponsorService{sponsors: sponsors}
}

// SponsorInput describes the create/update payload.
type SponsorInput struct {
	Name       string
	Tier       domain.SponsorTier
	WebsiteURL string
	LogoURL    string
}

// List returns sponsors ordered by tier.
func (s *SponsorService) List(ctx context.Context) ([]domain.Sponsor, error) {
	sponsors, err := s.sponsors.List(ctx)
	if err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	return sponsors, nil
}

// Create stores a new sponsor.
func (s *SponsorService) Create(ctx context.Context, input SponsorInput) (*domain.Sponsor, error) {
	sponsor := &domain.Sponsor{
		Name:       strings.TrimSpace(input.Name),
		Tier:       input.Tier,
		WebsiteURL: input.WebsiteURL,
		LogoURL:    input.LogoURL,
	}
	if err := s.sponsors.Create(ctx, sponsor); err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	return sponsor, nil
}

// Update overwrites a sponsor.
func (s *SponsorService) Update(ctx context.Context, id string, input SponsorInput) (*domain.Sponsor, error) {
	sponsor, err := s.sponsors.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("sponsor", map[string]any{"id": id})
		}
		return nil, apperrors.NewStoreUnavailable(err)
	}

	sponsor.Name = strings.TrimSpace(input.Name)
	sponsor.Tier = input.Tier
	sponsor.WebsiteURL = input.WebsiteURL
	sponsor.LogoURL = input.LogoURL

	if err := s.sponsors.Update(ctx, sponsor); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("sponsor", map[string]any{"id": id})
		}
		return nil, apperrors.NewStoreUnavailable(err)
	}
	return sponsor, nil
}

// Delete removes a sponsor.
func (s *SponsorService) Delete(ctx context.Context, id string) error {
	if err := s.sponsors.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("sponsor", map[string]any{"id": id})
		}
		return apperrors.NewStoreUnavailable(err)
	}
	return nil
}
