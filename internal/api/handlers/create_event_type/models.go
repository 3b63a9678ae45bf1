package create_event_type

import (
	"github.com/m04kA/SMC-SchedulerService/internal/service/event_types/models"
)

// CreateEventTypeRequest HTTP request model
type CreateEventTypeRequest struct {
	Title       string  `json:"title"`
	Slug        string  `json:"slug"`
	Duration    int     `json:"duration"`
	Description *string `json:"description"`
}

// CreateEventTypeResponse HTTP response model
type CreateEventTypeResponse struct {
	Success   bool                     `json:"success"`
	EventType models.EventTypeResponse `json:"eventType"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateEventTypeRequest) ToServiceRequest() *models.CreateEventTypeRequest {
	return &models.CreateEventTypeRequest{
		Title:           r.Title,
		Slug:            r.Slug,
		DurationMinutes: r.Duration,
		Description:     r.Description,
	}
}
