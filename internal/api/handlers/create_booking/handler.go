package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-SchedulerService/internal/usecase/create_booking"
)

const (
	MsgSlotBooked      = "This time slot is already booked. Please select another time."
	MsgCreateFailed    = "Failed to create booking. Please try again."
	msgInvalidBody     = "invalid request body"
	msgInvalidStart    = "invalid startTime, expected RFC3339 timestamp"
	msgInvalidInput    = "invalid booking details, check name, email and duration"
	msgEventTypeAbsent = "event type not found"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid startTime %q: %v", req.StartTime, err)
		handlers.RespondBadRequest(w, msgInvalidStart)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: event_type_id=%d, start=%s", req.EventTypeID, req.StartTime)
			handlers.RespondConflict(w, MsgSlotBooked)

		case errors.Is(err, createBooking.ErrEventTypeNotFound):
			h.logger.Warn("POST /bookings - Event type not found: event_type_id=%d", req.EventTypeID)
			handlers.RespondNotFound(w, msgEventTypeAbsent)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: event_type_id=%d, error=%v", req.EventTypeID, err)
			handlers.RespondInternalError(w, MsgCreateFailed)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, event_type_id=%d",
		result.ID, result.EventTypeID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
