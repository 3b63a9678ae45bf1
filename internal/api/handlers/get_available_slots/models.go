package get_available_slots

import (
	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SchedulerService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string         `json:"date"`
	EventTypeID     int64          `json:"eventTypeId"`
	DurationMinutes int            `json:"durationMinutes"`
	Slots           []SlotResponse `json:"slots"`
}

type SlotResponse struct {
	StartTime string `json:"startTime"` // HH:MM
	Available bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP модель
func FromUseCaseResponse(resp *getAvailableSlots.Response) AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime: string(slot.StartTime),
			Available: slot.Available,
		})
	}

	return AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		EventTypeID:     resp.EventTypeID,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}
