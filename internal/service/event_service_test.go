package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/ficmh/techfest-api/pkg/util"
)

func eventInput(title string, published bool) EventInput {
	return EventInput{
		Title:     title,
		StartsAt:  time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC),
		Venue:     "main auditorium",
		Published: published,
	}
}

func TestListPublishedFiltersDrafts(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, eventInput("hackathon", true))
	require.NoError(t, err)
	_, err = svc.Create(ctx, eventInput("draft plan", false))
	require.NoError(t, err)

	published, err := svc.ListPublished(ctx)
	require.NoError(t, err)
	require.Len(t, published, 1)
	assert.Equal(t, "hackathon", published[0].Title)

	all, err := svc.ListAll(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestListPublishedUsesCache(t *testing.T) {
	repo := newFakeEventRepo()
	cache := &fakeEventCache{}
	svc := NewEventService(repo, cache)
	ctx := context.Background()

	_, err := svc.Create(ctx, eventInput("hackathon", true))
	require.NoError(t, err)

	// First read misses and fills the cache, second read is served from it.
	_, err = svc.ListPublished(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)

	_, err = svc.ListPublished(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)
}

func TestEventWritesInvalidateCache(t *testing.T) {
	repo := newFakeEventRepo()
	cache := &fakeEventCache{}
	svc := NewEventService(repo, cache)
	ctx := context.Background()

	created, err := svc.Create(ctx, eventInput("hackathon", true))
	require.NoError(t, err)
	assert.Equal(t, 1, cache.invalidated)

	_, err = svc.Update(ctx, created.ID, eventInput("hackathon v2", true))
	require.NoError(t, err)
	assert.Equal(t, 2, cache.invalidated)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.Equal(t, 3, cache.invalidated)
}

func TestEventNotFound(t *testing.T) {
	svc := NewEventService(newFakeEventRepo(), nil)

	_, err := svc.Get(context.Background(), "missing")
	var de *apperrors.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "NOT_FOUND", de.Code)

	err = svc.Delete(context.Background(), "missing")
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "NOT_FOUND", de.Code)
}
