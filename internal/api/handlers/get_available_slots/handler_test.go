package get_available_slots

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	getAvailableSlots "github.com/m04kA/SMC-SchedulerService/internal/usecase/get_available_slots"
)

type mockUseCase struct{ mock.Mock }

func (m *mockUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*getAvailableSlots.Response)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name           string
		eventTypeID    string
		query          string
		setup          func(m *mockUseCase)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			eventTypeID: "2",
			query:       "?date=2026-03-10",
			setup: func(m *mockUseCase) {
				m.On("Execute", mock.Anything, &getAvailableSlots.Request{EventTypeID: 2, Date: date}).
					Return(&getAvailableSlots.Response{
						Date:            date,
						EventTypeID:     2,
						DurationMinutes: 30,
						Slots: []getAvailableSlots.Slot{
							{StartTime: "09:00", Available: true},
							{StartTime: "09:30", Available: false},
						},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"date":"2026-03-10","eventTypeId":2,"durationMinutes":30,
				"slots":[{"startTime":"09:00","available":true},{"startTime":"09:30","available":false}]}`,
		},
		{
			name:           "Invalid event type id",
			eventTypeID:    "abc",
			query:          "?date=2026-03-10",
			setup:          func(m *mockUseCase) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"error":"invalid event type id"}`,
		},
		{
			name:           "Missing date",
			eventTypeID:    "2",
			setup:          func(m *mockUseCase) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"error":"date is required"}`,
		},
		{
			name:           "Invalid date",
			eventTypeID:    "2",
			query:          "?date=10.03.2026",
			setup:          func(m *mockUseCase) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"error":"invalid date format, expected YYYY-MM-DD"}`,
		},
		{
			name:        "Event type not found",
			eventTypeID: "9",
			query:       "?date=2026-03-10",
			setup: func(m *mockUseCase) {
				m.On("Execute", mock.Anything, mock.Anything).Return(nil, getAvailableSlots.ErrEventTypeNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"success":false,"error":"event type not found"}`,
		},
		{
			name:        "Internal error",
			eventTypeID: "2",
			query:       "?date=2026-03-10",
			setup: func(m *mockUseCase) {
				m.On("Execute", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"success":false,"error":"internal server error"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			useCase := &mockUseCase{}
			tc.setup(useCase)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/event-types/"+tc.eventTypeID+"/slots"+tc.query, nil)
			req = mux.SetURLVars(req, map[string]string{"eventTypeId": tc.eventTypeID})
			rec := httptest.NewRecorder()

			NewHandler(useCase, time.UTC, nopLogger{}).Handle(rec, req)

			assert.Equal(t, tc.expectedStatus, rec.Code)
			assert.JSONEq(t, tc.expectedBody, rec.Body.String())
			useCase.AssertExpectations(t)
		})
	}
}
