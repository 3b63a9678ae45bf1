package domain

import "time"

// Booking confirmed reservation of [StartTime, EndTime) against an event type
type Booking struct {
	ID          int64
	EventTypeID int64
	BookerName  string
	BookerEmail string
	StartTime   time.Time
	EndTime     time.Time
	CreatedAt   time.Time

	// EventTypeTitle is filled by listing queries that join event_types
	EventTypeTitle string
}

// Overlaps reports whether the booking intersects the half-open interval [start, end).
// Touching intervals (one ends exactly where the other starts) do not overlap.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return IntervalsOverlap(b.StartTime, b.EndTime, start, end)
}

// IsUpcoming reports whether the booking starts at or after now
func (b *Booking) IsUpcoming(now time.Time) bool {
	return !b.StartTime.Before(now)
}

// IntervalsOverlap half-open interval test: aStart < bEnd AND aEnd > bStart
func IntervalsOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	EventTypeID *int64     // Фильтр по типу встречи
	UserID      *int64     // Фильтр по владельцу типа встречи
	From        *time.Time // Бронирования, заканчивающиеся после From
	To          *time.Time // Бронирования, начинающиеся до To
}
