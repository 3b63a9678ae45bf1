package event_types

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	eventTypeRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/event_type"
	userRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/user"
	"github.com/m04kA/SMC-SchedulerService/internal/service/event_types/models"
	"github.com/m04kA/SMC-SchedulerService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type mockUserRepository struct{ mock.Mock }

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

// memoryEventTypes хранилище в памяти с уникальностью slug, как в БД
type memoryEventTypes struct {
	mu     sync.Mutex
	nextID int64
	items  []*domain.EventType
	owner  *domain.User
}

func (m *memoryEventTypes) Create(_ context.Context, eventType *domain.EventType) (*domain.EventType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, item := range m.items {
		if item.Slug == eventType.Slug {
			return nil, eventTypeRepo.ErrDuplicateSlug
		}
	}
	m.nextID++
	eventType.ID = m.nextID
	eventType.Owner = m.owner
	m.items = append(m.items, eventType)
	return eventType, nil
}

func (m *memoryEventTypes) GetBySlug(_ context.Context, slug string) (*domain.EventType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, item := range m.items {
		if item.Slug == slug {
			return item, nil
		}
	}
	return nil, eventTypeRepo.ErrEventTypeNotFound
}

func (m *memoryEventTypes) ListByUserID(_ context.Context, userID int64) ([]*domain.EventType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]*domain.EventType, 0)
	for _, item := range m.items {
		if item.UserID == userID {
			result = append(result, item)
		}
	}
	return result, nil
}

// racingEventTypes имитирует конкурентную вставку: slug свободен при проверке, но занят при вставке
type racingEventTypes struct{ memoryEventTypes }

func (r *racingEventTypes) GetBySlug(context.Context, string) (*domain.EventType, error) {
	return nil, eventTypeRepo.ErrEventTypeNotFound
}

var admin = &domain.User{ID: 1, Username: "kavya", Email: "admin@cal.com"}

func validRequest() *models.CreateEventTypeRequest {
	return &models.CreateEventTypeRequest{
		Title:           "Intro Call",
		Slug:            "intro-call",
		DurationMinutes: 20,
		Description:     ptr.Ptr("  Say hello.  "),
	}
}

func TestCreate_Success(t *testing.T) {
	repo := &memoryEventTypes{owner: admin}
	svc := NewService(repo, &mockUserRepository{}, 1, nopLogger{})

	resp, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "intro-call", resp.Slug)
	require.Len(t, repo.items, 1)
	assert.Equal(t, int64(1), repo.items[0].UserID)
	assert.Equal(t, "Say hello.", *repo.items[0].Description)
}

func TestCreate_DuplicateSlug(t *testing.T) {
	repo := &memoryEventTypes{owner: admin}
	svc := NewService(repo, &mockUserRepository{}, 1, nopLogger{})

	_, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlugTaken)
	assert.Len(t, repo.items, 1)
}

func TestCreate_DuplicateSlugRace(t *testing.T) {
	repo := &racingEventTypes{memoryEventTypes{owner: admin}}
	svc := NewService(repo, &mockUserRepository{}, 1, nopLogger{})

	_, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlugTaken)
	assert.Len(t, repo.items, 1)
}

func TestCreate_Validation(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(r *models.CreateEventTypeRequest)
	}{
		{"empty title", func(r *models.CreateEventTypeRequest) { r.Title = "   " }},
		{"empty slug", func(r *models.CreateEventTypeRequest) { r.Slug = "" }},
		{"zero duration", func(r *models.CreateEventTypeRequest) { r.DurationMinutes = 0 }},
		{"negative duration", func(r *models.CreateEventTypeRequest) { r.DurationMinutes = -5 }},
		{"slug over column size", func(r *models.CreateEventTypeRequest) { r.Slug = strings.Repeat("s", 101) }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &memoryEventTypes{owner: admin}
			svc := NewService(repo, &mockUserRepository{}, 1, nopLogger{})

			req := validRequest()
			tc.mutate(req)

			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, repo.items)
		})
	}
}

func TestCreate_FreeFormSlugAndLongDuration(t *testing.T) {
	repo := &memoryEventTypes{owner: admin}
	svc := NewService(repo, &mockUserRepository{}, 1, nopLogger{})

	req := validRequest()
	req.Slug = "Intro Call"
	req.DurationMinutes = 600

	resp, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Intro Call", resp.Slug)
	assert.Equal(t, 600, resp.DurationMinutes)
}

func TestOverview(t *testing.T) {
	repo := &memoryEventTypes{owner: admin}
	users := &mockUserRepository{}
	users.On("GetByID", mock.Anything, int64(1)).Return(admin, nil)
	svc := NewService(repo, users, 1, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateEventTypeRequest{Title: "15 Min Meeting", Slug: "15min", DurationMinutes: 15})
	require.NoError(t, err)

	resp, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "kavya", resp.User.Username)
	require.Len(t, resp.EventTypes, 1)
	assert.Equal(t, "/kavya/15min", resp.EventTypes[0].Link)
	assert.Nil(t, resp.EventTypes[0].Description)
}

func TestOverview_UserMissing(t *testing.T) {
	users := &mockUserRepository{}
	users.On("GetByID", mock.Anything, int64(1)).Return(nil, userRepo.ErrUserNotFound)
	svc := NewService(&memoryEventTypes{}, users, 1, nopLogger{})

	_, err := svc.Overview(context.Background())
	assert.ErrorIs(t, err, ErrUserNotFound)

	users2 := &mockUserRepository{}
	users2.On("GetByID", mock.Anything, int64(1)).Return(nil, errors.New("db down"))
	_, err = NewService(&memoryEventTypes{}, users2, 1, nopLogger{}).Overview(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetPublic(t *testing.T) {
	repo := &memoryEventTypes{owner: admin}
	svc := NewService(repo, &mockUserRepository{}, 1, nopLogger{})

	_, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	eventType, err := svc.GetPublic(context.Background(), "kavya", "intro-call")
	require.NoError(t, err)
	assert.Equal(t, "Intro Call", eventType.Title)

	_, err = svc.GetPublic(context.Background(), "someone", "intro-call")
	assert.ErrorIs(t, err, ErrEventTypeNotFound)

	_, err = svc.GetPublic(context.Background(), "kavya", "missing")
	assert.ErrorIs(t, err, ErrEventTypeNotFound)
}
