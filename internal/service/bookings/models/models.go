package models

import (
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

// BookingResponse бронирование для отображения
type BookingResponse struct {
	ID             int64     `json:"id"`
	EventTypeID    int64     `json:"eventTypeId"`
	EventTypeTitle string    `json:"eventTypeTitle"`
	BookerName     string    `json:"name"`
	BookerEmail    string    `json:"email"`
	StartTime      time.Time `json:"startTime"`
	EndTime        time.Time `json:"endTime"`
	CreatedAt      time.Time `json:"createdAt"`
}

// BookingListResponse бронирования, разделённые на предстоящие и прошедшие
type BookingListResponse struct {
	Upcoming []BookingResponse `json:"upcoming"` // start >= now, по возрастанию
	Past     []BookingResponse `json:"past"`     // start < now, по убыванию
}

// FromDomainBooking конвертирует domain.Booking в BookingResponse
func FromDomainBooking(booking *domain.Booking) *BookingResponse {
	if booking == nil {
		return nil
	}

	return &BookingResponse{
		ID:             booking.ID,
		EventTypeID:    booking.EventTypeID,
		EventTypeTitle: booking.EventTypeTitle,
		BookerName:     booking.BookerName,
		BookerEmail:    booking.BookerEmail,
		StartTime:      booking.StartTime,
		EndTime:        booking.EndTime,
		CreatedAt:      booking.CreatedAt,
	}
}

// SplitByTime делит бронирования (отсортированные по возрастанию start) на предстоящие и прошедшие
func SplitByTime(bookings []*domain.Booking, now time.Time) *BookingListResponse {
	resp := &BookingListResponse{
		Upcoming: make([]BookingResponse, 0),
		Past:     make([]BookingResponse, 0),
	}

	for _, booking := range bookings {
		if booking.IsUpcoming(now) {
			resp.Upcoming = append(resp.Upcoming, *FromDomainBooking(booking))
		} else {
			resp.Past = append(resp.Past, *FromDomainBooking(booking))
		}
	}

	// Прошедшие: самые недавние первыми
	for i, j := 0, len(resp.Past)-1; i < j; i, j = i+1, j-1 {
		resp.Past[i], resp.Past[j] = resp.Past[j], resp.Past[i]
	}

	return resp
}
