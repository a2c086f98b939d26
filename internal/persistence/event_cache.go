package persistence

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ficmh/techfest-api/internal/domain"
)

const eventListKey = "cache:events:published"

// EventListCache keeps the public event listing in Redis so the landing
// page does not hit Postgres on every request.
type EventListCache struct {
	redis *Redis
	ttl   time.Duration
}

// NewEventListCache builds the cache with the given TTL.
func NewEventListCache(r *Redis, ttl time.Duration) *EventListCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &EventListCache{redis: r, ttl: ttl}
}

// GetPublished returns the cached listing, reporting a miss on any error.
func (c *EventListCache) GetPublished(ctx context.Context) ([]domain.Event, bool) {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return nil, false
	}
	payload, err := c.redis.Client.Get(ctx, eventListKey).Bytes()
	if err != nil {
		// redis.Nil and transport errors alike count as a miss.
		return nil, false
	}
	var events []domain.Event
	if err := json.Unmarshal(payload, &events); err != nil {
		return nil, false
	}
	return events, true
}

// SetPublished stores the listing; cache failures are silent.
func (c *EventListCache) SetPublished(ctx context.Context, events []domain.Event) {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return
	}
	payload, err := json.Marshal(events)
	if err != nil {
		return
	}
	_ = c.redis.Client.Set(ctx, eventListKey, payload, c.ttl).Err()
}

// Invalidate drops the listing after any event write.
func (c *EventListCache) Invalidate(ctx context.Context) {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return
	}
	_ = c.redis.Client.Del(ctx, eventListKey).Err()
}
