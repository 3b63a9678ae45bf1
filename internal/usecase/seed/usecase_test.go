package seed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	eventTypeRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/event_type"
)

func TestExecute_FreshDatabase(t *testing.T) {
	users := &mockUserRepository{}
	availabilities := &mockAvailabilityRepository{}
	eventTypes := &mockEventTypeRepository{}

	admin := &domain.User{ID: 1, Username: "kavya", Email: "admin@cal.com"}
	users.On("CreateIfNotExists", mock.Anything, mock.Anything).Return(admin, true, nil)
	availabilities.On("ListByUserID", mock.Anything, int64(1)).Return([]domain.Availability{}, nil)
	availabilities.On("CreateBatch", mock.Anything, mock.MatchedBy(func(items []domain.Availability) bool {
		if len(items) != 5 {
			return false
		}
		return items[0].DayOfWeek == time.Monday && items[4].DayOfWeek == time.Friday &&
			items[0].StartTime == "09:00" && items[0].EndTime == "17:00"
	})).Return(nil)
	eventTypes.On("GetBySlug", mock.Anything, mock.Anything).Return(nil, eventTypeRepo.ErrEventTypeNotFound)
	eventTypes.On("Create", mock.Anything, mock.MatchedBy(func(et *domain.EventType) bool {
		return et.UserID == 1 && et.Description != nil
	})).Return(&domain.EventType{}, nil)

	uc := NewUseCase(users, availabilities, eventTypes, passthroughTx{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), DefaultRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.UserID)
	assert.True(t, resp.UserCreated)
	assert.Equal(t, 5, resp.WindowsCreated)
	assert.Equal(t, 2, resp.EventTypesCreated)
	eventTypes.AssertNumberOfCalls(t, "Create", 2)
	availabilities.AssertExpectations(t)
}

func TestExecute_AlreadySeeded(t *testing.T) {
	users := &mockUserRepository{}
	availabilities := &mockAvailabilityRepository{}
	eventTypes := &mockEventTypeRepository{}

	users.On("CreateIfNotExists", mock.Anything, mock.Anything).
		Return(&domain.User{ID: 1, Username: "kavya"}, false, nil)
	availabilities.On("ListByUserID", mock.Anything, int64(1)).
		Return([]domain.Availability{{ID: 1, UserID: 1, DayOfWeek: time.Monday}}, nil)
	eventTypes.On("GetBySlug", mock.Anything, mock.Anything).Return(&domain.EventType{ID: 3}, nil)

	uc := NewUseCase(users, availabilities, eventTypes, passthroughTx{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), DefaultRequest())
	require.NoError(t, err)

	assert.False(t, resp.UserCreated)
	assert.Zero(t, resp.WindowsCreated)
	assert.Zero(t, resp.EventTypesCreated)
	availabilities.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
	eventTypes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestExecute_ExistingUserWithoutWindows(t *testing.T) {
	users := &mockUserRepository{}
	availabilities := &mockAvailabilityRepository{}
	eventTypes := &mockEventTypeRepository{}

	users.On("CreateIfNotExists", mock.Anything, mock.Anything).
		Return(&domain.User{ID: 1, Username: "kavya"}, false, nil)
	availabilities.On("ListByUserID", mock.Anything, int64(1)).Return([]domain.Availability{}, nil)
	availabilities.On("CreateBatch", mock.Anything, mock.Anything).Return(nil)
	eventTypes.On("GetBySlug", mock.Anything, mock.Anything).Return(&domain.EventType{ID: 3}, nil)

	uc := NewUseCase(users, availabilities, eventTypes, passthroughTx{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), DefaultRequest())
	require.NoError(t, err)

	assert.False(t, resp.UserCreated)
	assert.Equal(t, 5, resp.WindowsCreated)
	availabilities.AssertExpectations(t)
}

func TestExecute_RepositoryError(t *testing.T) {
	users := &mockUserRepository{}
	users.On("CreateIfNotExists", mock.Anything, mock.Anything).Return(nil, false, errors.New("connection refused"))

	uc := NewUseCase(users, &mockAvailabilityRepository{}, &mockEventTypeRepository{}, passthroughTx{}, nopLogger{})

	_, err := uc.Execute(context.Background(), DefaultRequest())
	assert.ErrorIs(t, err, ErrInternal)
}
