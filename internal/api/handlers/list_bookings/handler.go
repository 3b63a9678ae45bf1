package list_bookings

import (
	"net/http"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
)

type Handler struct {
	service     BookingService
	adminUserID int64
	logger      Logger
}

func NewHandler(service BookingService, adminUserID int64, logger Logger) *Handler {
	return &Handler{
		service:     service,
		adminUserID: adminUserID,
		logger:      logger,
	}
}

// Handle GET /api/v1/bookings
// Бронирования типов встреч администратора: {"upcoming": [...], "past": [...]}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListForUser(r.Context(), h.adminUserID)
	if err != nil {
		h.logger.Error("GET /bookings - Failed to get bookings: user_id=%d, error=%v", h.adminUserID, err)
		handlers.RespondInternalError(w, "")
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
