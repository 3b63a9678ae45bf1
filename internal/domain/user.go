package domain

import "time"

// User owner of event types. The service runs with a single admin user.
type User struct {
	ID        int64
	Username  string
	Email     string
	CreatedAt time.Time
}

// Availability weekly working window of a user.
// Seeded together with the admin user; slot generation uses the fixed day window instead.
type Availability struct {
	ID        int64
	UserID    int64
	DayOfWeek time.Weekday
	StartTime string // HH:MM
	EndTime   string // HH:MM
}
