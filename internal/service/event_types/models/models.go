package models

import (
	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

// CreateEventTypeRequest запрос на создание типа встречи
type CreateEventTypeRequest struct {
	Title           string  `json:"title" validate:"required,max=200"`
	Slug            string  `json:"slug" validate:"required,max=100"`
	DurationMinutes int     `json:"duration" validate:"gte=1"`
	Description     *string `json:"description,omitempty" validate:"omitempty,max=2000"`
}

// UserResponse владелец типов встреч
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// EventTypeResponse тип встречи для отображения
type EventTypeResponse struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	Slug            string  `json:"slug"`
	DurationMinutes int     `json:"duration"`
	Description     *string `json:"description,omitempty"`
	Link            string  `json:"link,omitempty"` // /{username}/{slug}
}

// OverviewResponse администратор и его типы встреч (главная страница)
type OverviewResponse struct {
	User       UserResponse        `json:"user"`
	EventTypes []EventTypeResponse `json:"eventTypes"`
}

// FromDomainEventType конвертирует domain.EventType в EventTypeResponse
func FromDomainEventType(eventType *domain.EventType, username string) EventTypeResponse {
	resp := EventTypeResponse{
		ID:              eventType.ID,
		Title:           eventType.Title,
		Slug:            eventType.Slug,
		DurationMinutes: eventType.DurationMinutes,
		Description:     eventType.Description,
	}
	if username != "" {
		resp.Link = eventType.PublicPath(username)
	}
	return resp
}

// FromDomainUser конвертирует domain.User в UserResponse
func FromDomainUser(user *domain.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}
