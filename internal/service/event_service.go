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

// EventCache caches the public event listing. Implementations must treat
// every failure as a miss; the database stays authoritative.
type EventCache interface {
	GetPublished(ctx context.Context) ([]domain.Event, bool)
	SetPublished(ctx context.Context, events []domain.Event)
	Invalidate(ctx context.Context)
}

// EventService coordinates event CRUD and the public listing cache.
type EventService struct {
	events repository.EventRepository
	cache  EventCache
}

// NewEventService constructs the service. cache may be nil.
func NewEventService(events repository.EventRepository, cache EventCache) *EventService {
	return &EventService{events: events, cache: cache}
}

// EventInput describes the create/update payload.
type EventInput struct {
	Title         string
	Description   string
	StartsAt      time.Time
	Venue         string
	CoverImageURL string
	Published     bool
}

// ListPublished returns published events for the public site, newest first.
func (s *EventService) ListPublished(ctx context.Context) ([]domain.Event, error) {
	if s.cache != nil {
		if cached, ok := s.cache.GetPublished(ctx); ok {
			return cached, nil
		}
	}

	events, err := s.events.List(ctx, repository.EventFilter{PublishedOnly: true})
	if err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	if s.cache != nil {
		s.cache.SetPublished(ctx, events)
	}
	return events, nil
}

// ListAll returns every event, drafts included, for the admin panel.
func (s *EventService) ListAll(ctx context.Context, limit, offset int) ([]domain.Event, error) {
	events, err := s.events.List(ctx, repository.EventFilter{Limit: limit, Offset: offset})
	if err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	return events, nil
}

// Get fetches one event by id.
func (s *EventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("event", map[string]any{"id": id})
		}
		return nil, apperrors.NewStoreUnavailable(err)
	}
	return event, nil
}

// Create stores a new event and drops the public cache.
func (s *EventService) Create(ctx context.Context, input EventInput) (*domain.Event, error) {
	event := &domain.Event{
		Title:         strings.TrimSpace(input.Title),
		Description:   strings.TrimSpace(input.Description),
		StartsAt:      input.StartsAt,
		Venue:         strings.TrimSpace(input.Venue),
		CoverImageURL: input.CoverImageURL,
		Published:     input.Published,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	s.invalidate(ctx)
	return event, nil
}

// Update overwrites an event and drops the public cache.
func (s *EventService) Update(ctx context.Context, id string, input EventInput) (*domain.Event, error) {
	event, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	event.Title = strings.TrimSpace(input.Title)
	event.Description = strings.TrimSpace(input.Description)
	event.StartsAt = input.StartsAt
	event.Venue = strings.TrimSpace(input.Venue)
	event.CoverImageURL = input.CoverImageURL
	event.Published = input.Published

	if err := s.events.Update(ctx, event); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("event", map[string]any{"id": id})
		}
		return nil, apperrors.NewStoreUnavailable(err)
	}
	s.invalidate(ctx)
	return event, nil
}

// Delete removes an event and drops the public cache.
func (s *EventService) Delete(ctx context.Context, id string) error {
	if err := s.events.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("event", map[string]any{"id": id})
		}
		return apperrors.NewStoreUnavailable(err)
	}
	s.invalidate(ctx)
	return nil
}

func (s *EventService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}
