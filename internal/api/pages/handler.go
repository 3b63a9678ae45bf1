package pages

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/create_booking"
	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers/create_event_type"
	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	bookingsService "github.com/m04kA/SMC-SchedulerService/internal/service/bookings"
	eventTypesService "github.com/m04kA/SMC-SchedulerService/internal/service/event_types"
	eventTypeModels "github.com/m04kA/SMC-SchedulerService/internal/service/event_types/models"
	createBooking "github.com/m04kA/SMC-SchedulerService/internal/usecase/create_booking"
	getAvailableSlots "github.com/m04kA/SMC-SchedulerService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SchedulerService/pkg/types"
)

const (
	msgSelectDateTime  = "Please select both date and time."
	msgInvalidDate     = "Invalid date, expected YYYY-MM-DD."
	msgInvalidBooking  = "Please enter your name and a valid email address."
	msgEventTypeAbsent = "This event type no longer exists."
	msgLoadFailed      = "Failed to load page. Please try again."
)

type Handler struct {
	eventTypes    EventTypeService
	bookings      BookingService
	slots         GetAvailableSlotsUseCase
	createBooking CreateBookingUseCase
	renderer      *Renderer
	adminUserID   int64
	location      *time.Location
	now           func() time.Time
	logger        Logger
}

func NewHandler(
	eventTypes EventTypeService,
	bookings BookingService,
	slots GetAvailableSlotsUseCase,
	createBooking CreateBookingUseCase,
	adminUserID int64,
	location *time.Location,
	logger Logger,
) (*Handler, error) {
	if location == nil {
		location = time.UTC
	}

	renderer, err := NewRenderer(location)
	if err != nil {
		return nil, err
	}

	return &Handler{
		eventTypes:    eventTypes,
		bookings:      bookings,
		slots:         slots,
		createBooking: createBooking,
		renderer:      renderer,
		adminUserID:   adminUserID,
		location:      location,
		now:           time.Now,
		logger:        logger,
	}, nil
}

// Home GET /
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	data := homeData{
		pageData:    pageData{Title: "Event Types", Active: navEventTypes},
		AdminUserID: h.adminUserID,
	}

	overview, err := h.eventTypes.Overview(r.Context())
	switch {
	case err == nil:
		data.Overview = overview
	case errors.Is(err, eventTypesService.ErrUserNotFound):
		data.UserMissing = true
	default:
		h.logger.Error("GET / - Failed to load overview: %v", err)
		h.renderError(w, http.StatusInternalServerError, msgLoadFailed)
		return
	}

	h.render(w, http.StatusOK, pageHome, data)
}

// NewEventType GET /event-types/new
func (h *Handler) NewEventType(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, pageNewEventType, newEventTypeData{
		pageData: pageData{Title: "New Event Type", Active: navEventTypes},
	})
}

// CreateEventType POST /event-types/new
// Успех - 303 на главную, ошибка - форма с сообщением
func (h *Handler) CreateEventType(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("POST /event-types/new - Invalid form: %v", err)
		h.renderError(w, http.StatusBadRequest, create_event_type.MsgCreateFailed)
		return
	}

	form := eventTypeForm{
		Title:       r.PostFormValue("title"),
		Slug:        r.PostFormValue("slug"),
		Duration:    r.PostFormValue("duration"),
		Description: r.PostFormValue("description"),
	}
	// нечисловая длительность остаётся 0 и отклоняется валидацией
	duration, _ := strconv.Atoi(strings.TrimSpace(form.Duration))

	req := &eventTypeModels.CreateEventTypeRequest{
		Title:           form.Title,
		Slug:            form.Slug,
		DurationMinutes: duration,
	}
	if form.Description != "" {
		description := form.Description
		req.Description = &description
	}

	_, err := h.eventTypes.Create(r.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		message := create_event_type.MsgCreateFailed

		switch {
		case errors.Is(err, eventTypesService.ErrSlugTaken):
			h.logger.Warn("POST /event-types/new - Slug taken: slug=%s", form.Slug)
			status, message = http.StatusConflict, create_event_type.MsgSlugTaken
		case errors.Is(err, eventTypesService.ErrInvalidInput):
			h.logger.Warn("POST /event-types/new - Invalid input: %v", err)
			status, message = http.StatusBadRequest, create_event_type.ValidationMessage(err)
		default:
			h.logger.Error("POST /event-types/new - Failed to create event type: %v", err)
		}

		h.render(w, status, pageNewEventType, newEventTypeData{
			pageData: pageData{Title: "New Event Type", Active: navEventTypes},
			Form:     form,
			Error:    message,
		})
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Bookings GET /bookings
func (h *Handler) Bookings(w http.ResponseWriter, r *http.Request) {
	h.renderBookings(w, r, http.StatusOK, "")
}

// CancelBooking POST /bookings/{bookingId}/cancel
func (h *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("POST /bookings/{id}/cancel - Invalid booking ID: %s", mux.Vars(r)["bookingId"])
		h.renderBookings(w, r, http.StatusBadRequest, cancel_booking.MsgCancelFailed)
		return
	}

	if err := h.bookings.Cancel(r.Context(), bookingID); err != nil {
		if !errors.Is(err, bookingsService.ErrBookingNotFound) {
			h.logger.Error("POST /bookings/%d/cancel - Failed to cancel booking: %v", bookingID, err)
			h.renderBookings(w, r, http.StatusInternalServerError, cancel_booking.MsgCancelFailed)
			return
		}
		// уже отменено, список всё равно актуален
		h.logger.Warn("POST /bookings/%d/cancel - Booking not found", bookingID)
	}

	http.Redirect(w, r, "/bookings", http.StatusSeeOther)
}

// BookingPage GET /{username}/{slug}?date=YYYY-MM-DD
func (h *Handler) BookingPage(w http.ResponseWriter, r *http.Request) {
	eventType, ok := h.resolveEventType(w, r)
	if !ok {
		return
	}

	data := h.newBookingPageData(r, eventType)
	status := http.StatusOK

	date, err := h.parseDate(r.URL.Query().Get("date"))
	if err != nil {
		data.Error = msgInvalidDate
		status = http.StatusBadRequest
		date = h.today()
	}
	data.Date = date.Format(domain.DateFormat)

	if !h.loadSlots(w, r, &data, date) {
		return
	}

	h.render(w, status, pageBookingPage, data)
}

// Book POST /{username}/{slug}
// Form: date, time, name, email. Страница перерисовывается с результатом
func (h *Handler) Book(w http.ResponseWriter, r *http.Request) {
	eventType, ok := h.resolveEventType(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		h.logger.Warn("POST %s - Invalid form: %v", r.URL.Path, err)
		h.renderError(w, http.StatusBadRequest, createBookingHandler.MsgCreateFailed)
		return
	}

	data := h.newBookingPageData(r, eventType)
	data.Form = bookingForm{
		Time:  r.PostFormValue("time"),
		Name:  r.PostFormValue("name"),
		Email: r.PostFormValue("email"),
	}

	date, startTime, err := h.parseSlot(r.PostFormValue("date"), data.Form.Time)
	if err != nil {
		if date.IsZero() {
			date = h.today()
		}
		data.Date = date.Format(domain.DateFormat)
		data.Error = msgSelectDateTime
		if h.loadSlots(w, r, &data, date) {
			h.render(w, http.StatusBadRequest, pageBookingPage, data)
		}
		return
	}
	data.Date = date.Format(domain.DateFormat)

	status := http.StatusOK
	result, err := h.createBooking.Execute(r.Context(), &createBooking.Request{
		EventTypeID:     eventType.ID,
		BookerName:      data.Form.Name,
		BookerEmail:     data.Form.Email,
		StartTime:       startTime,
		DurationMinutes: eventType.DurationMinutes,
	})
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST %s - Slot conflict: start=%s", r.URL.Path, startTime.Format(time.RFC3339))
			status, data.Error = http.StatusConflict, createBookingHandler.MsgSlotBooked
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST %s - Invalid booking: %v", r.URL.Path, err)
			status, data.Error = http.StatusBadRequest, msgInvalidBooking
		case errors.Is(err, createBooking.ErrEventTypeNotFound):
			h.logger.Warn("POST %s - Event type disappeared: id=%d", r.URL.Path, eventType.ID)
			status, data.Error = http.StatusNotFound, msgEventTypeAbsent
		default:
			h.logger.Error("POST %s - Failed to create booking: %v", r.URL.Path, err)
			status, data.Error = http.StatusInternalServerError, createBookingHandler.MsgCreateFailed
		}
	} else {
		h.logger.Info("POST %s - Booking created: id=%d", r.URL.Path, result.ID)
		data.Success = true
		data.Form = bookingForm{}
	}

	if !h.loadSlots(w, r, &data, date) {
		return
	}

	h.render(w, status, pageBookingPage, data)
}

// NotFound страница 404 для неизвестных маршрутов
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusNotFound, pageNotFound, pageData{Title: "Not Found"})
}

func (h *Handler) resolveEventType(w http.ResponseWriter, r *http.Request) (*domain.EventType, bool) {
	vars := mux.Vars(r)

	eventType, err := h.eventTypes.GetPublic(r.Context(), vars["username"], vars["slug"])
	if err != nil {
		if errors.Is(err, eventTypesService.ErrEventTypeNotFound) {
			h.NotFound(w, r)
			return nil, false
		}
		h.logger.Error("%s %s - Failed to resolve event type: %v", r.Method, r.URL.Path, err)
		h.renderError(w, http.StatusInternalServerError, msgLoadFailed)
		return nil, false
	}

	return eventType, true
}

func (h *Handler) newBookingPageData(r *http.Request, eventType *domain.EventType) bookingPageData {
	return bookingPageData{
		pageData:  pageData{Title: eventType.Title},
		Path:      r.URL.Path,
		EventType: eventType,
	}
}

// loadSlots заполняет слоты, при ошибке сам отвечает клиенту и возвращает false
func (h *Handler) loadSlots(w http.ResponseWriter, r *http.Request, data *bookingPageData, date time.Time) bool {
	result, err := h.slots.Execute(r.Context(), &getAvailableSlots.Request{
		EventTypeID: data.EventType.ID,
		Date:        date,
	})
	if err != nil {
		if errors.Is(err, getAvailableSlots.ErrEventTypeNotFound) {
			h.NotFound(w, r)
			return false
		}
		h.logger.Error("%s %s - Failed to load slots: %v", r.Method, r.URL.Path, err)
		h.renderError(w, http.StatusInternalServerError, msgLoadFailed)
		return false
	}

	data.Slots = result.Slots
	return true
}

func (h *Handler) renderBookings(w http.ResponseWriter, r *http.Request, status int, message string) {
	list, err := h.bookings.ListForUser(r.Context(), h.adminUserID)
	if err != nil {
		h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
		h.renderError(w, http.StatusInternalServerError, msgLoadFailed)
		return
	}

	h.render(w, status, pageBookings, bookingsData{
		pageData: pageData{Title: "Bookings", Active: navBookings},
		Bookings: list,
		Error:    message,
	})
}

func (h *Handler) parseDate(value string) (time.Time, error) {
	if value == "" {
		return h.today(), nil
	}
	return time.ParseInLocation(domain.DateFormat, value, h.location)
}

// parseSlot собирает момент начала из даты и времени слота в часовом поясе сервиса
func (h *Handler) parseSlot(dateValue, timeValue string) (time.Time, time.Time, error) {
	date, err := time.ParseInLocation(domain.DateFormat, dateValue, h.location)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	slot, err := types.NewTimeStringFromString(strings.TrimSpace(timeValue))
	if err != nil {
		return date, time.Time{}, err
	}

	startTime, err := slot.On(date, h.location)
	if err != nil {
		return date, time.Time{}, err
	}

	return date, startTime, nil
}

func (h *Handler) today() time.Time {
	now := h.now().In(h.location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, h.location)
}

func (h *Handler) render(w http.ResponseWriter, status int, name string, data interface{}) {
	if err := h.renderer.Render(w, status, name, data); err != nil {
		h.logger.Error("Failed to render %s: %v", name, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (h *Handler) renderError(w http.ResponseWriter, status int, message string) {
	h.render(w, status, pageError, errorData{
		pageData: pageData{Title: "Error"},
		Error:    message,
	})
}
