package pages

import (
	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	bookingModels "github.com/m04kA/SMC-SchedulerService/internal/service/bookings/models"
	eventTypeModels "github.com/m04kA/SMC-SchedulerService/internal/service/event_types/models"
	getAvailableSlots "github.com/m04kA/SMC-SchedulerService/internal/usecase/get_available_slots"
)

const (
	navEventTypes = "event-types"
	navBookings   = "bookings"
)

// pageData общие поля layout.html
type pageData struct {
	Title  string
	Active string
}

type homeData struct {
	pageData
	Overview    *eventTypeModels.OverviewResponse
	UserMissing bool
	AdminUserID int64
}

type eventTypeForm struct {
	Title       string
	Slug        string
	Duration    string
	Description string
}

type newEventTypeData struct {
	pageData
	Form  eventTypeForm
	Error string
}

type bookingsData struct {
	pageData
	Bookings *bookingModels.BookingListResponse
	Error    string
}

type bookingForm struct {
	Time  string
	Name  string
	Email string
}

type bookingPageData struct {
	pageData
	Path      string
	EventType *domain.EventType
	Date      string
	Slots     []getAvailableSlots.Slot
	Form      bookingForm
	Success   bool
	Error     string
}

type errorData struct {
	pageData
	Error string
}
