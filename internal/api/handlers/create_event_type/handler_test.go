package create_event_type

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	eventTypes "github.com/m04kA/SMC-SchedulerService/internal/service/event_types"
	"github.com/m04kA/SMC-SchedulerService/internal/service/event_types/models"
)

type mockEventTypeService struct{ mock.Mock }

func (m *mockEventTypeService) Create(ctx context.Context, req *models.CreateEventTypeRequest) (*models.EventTypeResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.EventTypeResponse)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	body := `{"title":"Intro","slug":"intro","duration":20,"description":null}`

	testCases := []struct {
		name           string
		body           string
		setup          func(m *mockEventTypeService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			body: body,
			setup: func(m *mockEventTypeService) {
				m.On("Create", mock.Anything, &models.CreateEventTypeRequest{Title: "Intro", Slug: "intro", DurationMinutes: 20}).
					Return(&models.EventTypeResponse{ID: 3, Title: "Intro", Slug: "intro", DurationMinutes: 20}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"success":true,"eventType":{"id":3,"title":"Intro","slug":"intro","duration":20}}`,
		},
		{
			name: "Duplicate slug",
			body: body,
			setup: func(m *mockEventTypeService) {
				m.On("Create", mock.Anything, mock.Anything).Return(nil, eventTypes.ErrSlugTaken)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"success":false,"error":"A event type with this slug already exists. Please choose a different slug."}`,
		},
		{
			name: "Validation",
			body: body,
			setup: func(m *mockEventTypeService) {
				m.On("Create", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("%w: %v", eventTypes.ErrInvalidInput, "duration must be at least 1"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"error":"duration must be at least 1"}`,
		},
		{
			name: "Failure",
			body: body,
			setup: func(m *mockEventTypeService) {
				m.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"success":false,"error":"Failed to create event type. Please try again."}`,
		},
		{
			name:           "Unknown field",
			body:           `{"title":"Intro","userId":7}`,
			setup:          func(m *mockEventTypeService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"error":"invalid request body"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service := &mockEventTypeService{}
			tc.setup(service)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/event-types", bytes.NewBufferString(tc.body))
			rec := httptest.NewRecorder()
			NewHandler(service, nopLogger{}).Handle(rec, req)

			assert.Equal(t, tc.expectedStatus, rec.Code)
			assert.JSONEq(t, tc.expectedBody, rec.Body.String())
			service.AssertExpectations(t)
		})
	}
}
