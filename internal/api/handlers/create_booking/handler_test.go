package create_booking

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	createBooking "github.com/m04kA/SMC-SchedulerService/internal/usecase/create_booking"
)

type mockUseCase struct{ mock.Mock }

func (m *mockUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*createBooking.Response)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	start := time.Date(2025, 6, 2, 15, 0, 0, 0, time.UTC)
	validBody := `{"eventTypeId":2,"name":"Ada","email":"ada@example.com","startTime":"2025-06-02T15:00:00Z","duration":30}`

	testCases := []struct {
		name           string
		body           string
		setup          func(m *mockUseCase)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			body: validBody,
			setup: func(m *mockUseCase) {
				m.On("Execute", mock.Anything, mock.MatchedBy(func(r *createBooking.Request) bool {
					return r.EventTypeID == 2 && r.StartTime.Equal(start) && r.DurationMinutes == 30
				})).Return(&createBooking.Response{
					ID: 11, EventTypeID: 2, StartTime: start, EndTime: start.Add(30 * time.Minute),
				}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"success":true,"bookingId":11,"startTime":"2025-06-02T15:00:00Z","endTime":"2025-06-02T15:30:00Z"}`,
		},
		{
			name:           "Invalid JSON",
			body:           `not json`,
			setup:          func(m *mockUseCase) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"error":"invalid request body"}`,
		},
		{
			name:           "Invalid start time",
			body:           `{"eventTypeId":2,"name":"Ada","email":"ada@example.com","startTime":"14:00","duration":30}`,
			setup:          func(m *mockUseCase) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"error":"invalid startTime, expected RFC3339 timestamp"}`,
		},
		{
			name: "Slot already booked",
			body: validBody,
			setup: func(m *mockUseCase) {
				m.On("Execute", mock.Anything, mock.Anything).Return(nil, createBooking.ErrSlotConflict)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"success":false,"error":"This time slot is already booked. Please select another time."}`,
		},
		{
			name: "Event type not found",
			body: validBody,
			setup: func(m *mockUseCase) {
				m.On("Execute", mock.Anything, mock.Anything).Return(nil, createBooking.ErrEventTypeNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"success":false,"error":"event type not found"}`,
		},
		{
			name: "Unexpected failure",
			body: validBody,
			setup: func(m *mockUseCase) {
				m.On("Execute", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"success":false,"error":"Failed to create booking. Please try again."}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			useCase := &mockUseCase{}
			tc.setup(useCase)
			handler := NewHandler(useCase, nopLogger{})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewBufferString(tc.body))
			rec := httptest.NewRecorder()

			handler.Handle(rec, req)

			assert.Equal(t, tc.expectedStatus, rec.Code)
			assert.JSONEq(t, tc.expectedBody, rec.Body.String())
			useCase.AssertExpectations(t)
		})
	}
}
