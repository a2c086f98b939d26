package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ficmh/techfest-api/internal/domain"
	"github.com/ficmh/techfest-api/internal/repository"
)

// fakeAdminRepo is an in-memory credential store. updateRoleErr lets tests
// fail a specific role update to exercise the handover's partial states.
type fakeAdminRepo struct {
	mu            sync.Mutex
	admins        map[string]*domain.Admin
	updateRoleErr func(id string) error
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: make(map[string]*domain.Admin)}
}

func (f *fakeAdminRepo) seed(admin domain.Admin) *domain.Admin {
	f.mu.Lock()
	defer f.mu.Unlock()
	if admin.ID == "" {
		admin.ID = uuid.NewString()
	}
	now := time.Now()
	admin.CreatedAt = now
	admin.UpdatedAt = now
	stored := admin
	f.admins[stored.ID] = &stored
	return &stored
}

func (f *fakeAdminRepo) Create(_ context.Context, admin *domain.Admin) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	admin.ID = uuid.NewString()
	admin.CreatedAt = time.Now()
	admin.UpdatedAt = admin.CreatedAt
	stored := *admin
	f.admins[admin.ID] = &stored
	return nil
}

func (f *fakeAdminRepo) Update(_ context.Context, admin *domain.Admin) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.admins[admin.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	*existing = *admin
	existing.UpdatedAt = time.Now()
	return nil
}

func (f *fakeAdminRepo) UpdateRole(_ context.Context, id string, role domain.AdminRole) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateRoleErr != nil {
		if err := f.updateRoleErr(id); err != nil {
			return err
		}
	}
	admin, ok := f.admins[id]
	if !ok {
		return pgx.ErrNoRows
	}
	admin.Role = role
	admin.UpdatedAt = time.Now()
	return nil
}

func (f *fakeAdminRepo) GetByID(_ context.Context, id string) (*domain.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	admin, ok := f.admins[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *admin
	return &cp, nil
}

func (f *fakeAdminRepo) GetByEmail(_ context.Context, email string) (*domain.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, admin := range f.admins {
		if strings.EqualFold(admin.Email, email) {
			cp := *admin
			return &cp, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeAdminRepo) List(_ context.Context) ([]domain.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]domain.Admin, 0, len(f.admins))
	for _, admin := range f.admins {
		result = append(result, *admin)
	}
	return result, nil
}

func (f *fakeAdminRepo) CountByRole(_ context.Context, role domain.AdminRole) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, admin := range f.admins {
		if admin.Role == role {
			count++
		}
	}
	return count, nil
}

func (f *fakeAdminRepo) roleOf(id string) domain.AdminRole {
	f.mu.Lock()
	defer f.mu.Unlock()
	if admin, ok := f.admins[id]; ok {
		return admin.Role
	}
	return ""
}

// fakeEventRepo is an in-memory event store.
type fakeEventRepo struct {
	mu     sync.Mutex
	events map[string]*domain.Event
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[string]*domain.Event)}
}

func (f *fakeEventRepo) Create(_ context.Context, event *domain.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	event.ID = uuid.NewString()
	event.CreatedAt = time.Now()
	event.UpdatedAt = event.CreatedAt
	stored := *event
	f.events[event.ID] = &stored
	return nil
}

func (f *fakeEventRepo) Update(_ context.Context, event *domain.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.events[event.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	*existing = *event
	existing.UpdatedAt = time.Now()
	return nil
}

func (f *fakeEventRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.events[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.events, id)
	return nil
}

func (f *fakeEventRepo) GetByID(_ context.Context, id string) (*domain.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	event, ok := f.events[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *event
	return &cp, nil
}

func (f *fakeEventRepo) List(_ context.Context, filter repository.EventFilter) ([]domain.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []domain.Event
	for _, event := range f.events {
		if filter.PublishedOnly && !event.Published {
			continue
		}
		result = append(result, *event)
	}
	return result, nil
}

// fakeEventCache records cache traffic for assertions.
type fakeEventCache struct {
	mu          sync.Mutex
	stored      []domain.Event
	hasValue    bool
	invalidated int
	sets        int
}

func (f *fakeEventCache) GetPublished(_ context.Context) ([]domain.Event, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.hasValue {
		return nil, false
	}
	return f.stored, true
}

func (f *fakeEventCache) SetPublished(_ context.Context, events []domain.Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stored = events
	f.hasValue = true
	f.sets++
}

func (f *fakeEventCache) Invalidate(_ context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stored = nil
	f.hasValue = false
	f.invalidated++
}
