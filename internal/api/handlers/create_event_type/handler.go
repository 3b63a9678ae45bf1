package create_event_type

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
	eventTypes "github.com/m04kA/SMC-SchedulerService/internal/service/event_types"
)

const (
	MsgSlugTaken    = "A event type with this slug already exists. Please choose a different slug."
	MsgCreateFailed = "Failed to create event type. Please try again."
	msgInvalidBody  = "invalid request body"
)

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

// Handle POST /api/v1/event-types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateEventTypeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /event-types - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, eventTypes.ErrSlugTaken):
			h.logger.Warn("POST /event-types - Slug taken: slug=%s", req.Slug)
			handlers.RespondConflict(w, MsgSlugTaken)

		case errors.Is(err, eventTypes.ErrInvalidInput):
			h.logger.Warn("POST /event-types - Invalid input: %v", err)
			handlers.RespondBadRequest(w, ValidationMessage(err))

		default:
			h.logger.Error("POST /event-types - Failed to create event type: slug=%s, error=%v", req.Slug, err)
			handlers.RespondInternalError(w, MsgCreateFailed)
		}
		return
	}

	h.logger.Info("POST /event-types - Event type created successfully: id=%d, slug=%s", result.ID, result.Slug)
	handlers.RespondJSON(w, http.StatusCreated, CreateEventTypeResponse{Success: true, EventType: *result})
}

// ValidationMessage возвращает текст ошибки валидации без префикса пакета
func ValidationMessage(err error) string {
	msg := err.Error()
	prefix := eventTypes.ErrInvalidInput.Error() + ": "
	if idx := strings.Index(msg, prefix); idx >= 0 {
		return msg[idx+len(prefix):]
	}
	return msg
}
