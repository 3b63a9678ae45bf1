package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	EventTypeID     int64     `json:"eventTypeId" validate:"required,gt=0"`
	BookerName      string    `json:"name" validate:"required,max=200"`
	BookerEmail     string    `json:"email" validate:"required,email,max=255"`
	StartTime       time.Time `json:"startTime" validate:"required"`
	DurationMinutes int       `json:"duration" validate:"gte=0"` // 0 - взять длительность типа встречи
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID             int64
	EventTypeID    int64
	EventTypeTitle string
	BookerName     string
	BookerEmail    string
	StartTime      time.Time
	EndTime        time.Time
	CreatedAt      time.Time
}
