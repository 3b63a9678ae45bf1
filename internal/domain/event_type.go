package domain

import (
	"fmt"
	"time"
)

// EventType bookable meeting template owned by a user
type EventType struct {
	ID              int64
	UserID          int64
	Title           string
	Slug            string
	DurationMinutes int
	Description     *string
	CreatedAt       time.Time

	// Owner is filled by queries that join the owning user
	Owner *User
}

// Duration returns the meeting length
func (e *EventType) Duration() time.Duration {
	return time.Duration(e.DurationMinutes) * time.Minute
}

// PublicPath returns the public booking page path /{username}/{slug}
func (e *EventType) PublicPath(username string) string {
	return fmt.Sprintf("/%s/%s", username, e.Slug)
}

// BelongsTo reports whether the event type is owned by the user with the given username
func (e *EventType) BelongsTo(username string) bool {
	return e.Owner != nil && e.Owner.Username == username
}
