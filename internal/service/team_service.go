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

// TeamService coordinates team member CRUD.
type TeamService struct {
	members repository.TeamRepository
}

// NewTeamService constructs the service.
func NewTeamService(members repository.TeamRepository) *TeamService {
	return &TeamService{members: members}
}

// TeamMemberInput describes the create/update payload.
type TeamMemberInput struct {
	Name         string
	Position     string
	Club         domain.Club
	PhotoURL     string
	LinkedInURL  string
	InstagramURL string
	DisplayOrder int
}

// List returns team members in display order, optionally filtered by club.
func (s *TeamService) List(ctx context.Context, club *domain.Club) ([]domain.TeamMember, error) {
	members, err := s.members.List(ctx, repository.TeamFilter{Club: club})
	if err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	return members, nil
}

// Create stores a new team member.
func (s *TeamService) Create(ctx context.Context, input TeamMemberInput) (*domain.TeamMember, error) {
	member := &domain.TeamMember{
		Name:         strings.TrimSpace(input.Name),
		Position:     strings.TrimSpace(input.Position),
		Club:         input.Club,
		PhotoURL:     input.PhotoURL,
		LinkedInURL:  input.LinkedInURL,
		InstagramURL: input.InstagramURL,
		DisplayOrder: input.DisplayOrder,
	}
	if err := s.members.Create(ctx, member); err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	return member, nil
}

// Update overwrites a team member.
func (s *TeamService) Update(ctx context.Context, id string, input TeamMemberInput) (*domain.TeamMember, error) {
	member, err := s.members.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("team member", map[string]any{"id": id})
		}
		return nil, apperrors.NewStoreUnavailable(err)
	}

	member.Name = strings.TrimSpace(input.Name)
	member.Position = strings.TrimSpace(input.Position)
	member.Club = input.Club
	member.PhotoURL = input.PhotoURL
	member.LinkedInURL = input.LinkedInURL
	member.InstagramURL = input.InstagramURL
	member.DisplayOrder = input.DisplayOrder

	if err := s.members.Update(ctx, member); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("team member", map[string]any{"id": id})
		}
		return nil, apperrors.NewStoreUnavailable(err)
	}
	return member, nil
}

// Delete removes a team member.
func (s *TeamService) Delete(ctx context.Context, id string) error {
	if err := s.members.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("team member", map[string]any{"id": id})
		}
		return apperrors.NewStoreUnavailable(err)
	}
	return nil
}
