package list_event_types

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
	eventTypes "github.com/m04kA/SMC-SchedulerService/internal/service/event_types"
)

const msgUserNotFound = "user not found"

type Handler struct {
	service EventTypeService
	logger  Logger
}

func NewHandler(service EventTypeService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/event-types
// Администратор и его типы встреч со ссылками на страницы бронирования
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Overview(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, eventTypes.ErrUserNotFound):
			h.logger.Warn("GET /event-types - Admin user not found")
			handlers.RespondNotFound(w, msgUserNotFound)
		default:
			h.logger.Error("GET /event-types - Failed to list event types: %v", err)
			handlers.RespondInternalError(w, "")
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
