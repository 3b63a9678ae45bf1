package create_booking

import (
	"time"

	createBooking "github.com/m04kA/SMC-SchedulerService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	EventTypeID     int64  `json:"eventTypeId"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	StartTime       string `json:"startTime"` // RFC3339, "2025-06-02T14:00:00Z"
	DurationMinutes int    `json:"duration"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Success   bool   `json:"success"`
	BookingID int64  `json:"bookingId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		EventTypeID:     r.EventTypeID,
		BookerName:      r.Name,
		BookerEmail:     r.Email,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		Success:   true,
		BookingID: resp.ID,
		StartTime: resp.StartTime.Format(time.RFC3339),
		EndTime:   resp.EndTime.Format(time.RFC3339),
	}
}
