package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SchedulerService/internal/usecase/get_available_slots"
)

const (
	msgInvalidEventTypeID = "invalid event type id"
	msgMissingDate        = "date is required"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgEventTypeNotFound  = "event type not found"
	msgInvalidInput       = "invalid slot request"
)

type Handler struct {
	useCase  GetAvailableSlotsUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, location *time.Location, logger Logger) *Handler {
	if location == nil {
		location = time.UTC
	}
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/event-types/{eventTypeId}/slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	eventTypeID, err := strconv.ParseInt(vars["eventTypeId"], 10, 64)
	if err != nil || eventTypeID <= 0 {
		h.logger.Warn("GET /event-types/{id}/slots - Invalid event type ID: %s", vars["eventTypeId"])
		handlers.RespondBadRequest(w, msgInvalidEventTypeID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /event-types/%d/slots - Missing date", eventTypeID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.ParseInLocation(domain.DateFormat, dateStr, h.location)
	if err != nil {
		h.logger.Warn("GET /event-types/%d/slots - Invalid date: %s", eventTypeID, dateStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		EventTypeID: eventTypeID,
		Date:        date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrEventTypeNotFound):
			h.logger.Warn("GET /event-types/%d/slots - Event type not found", eventTypeID)
			handlers.RespondNotFound(w, msgEventTypeNotFound)
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /event-types/%d/slots - Invalid input: %v", eventTypeID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("GET /event-types/%d/slots - Failed to get slots: %v", eventTypeID, err)
			handlers.RespondInternalError(w, "")
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
