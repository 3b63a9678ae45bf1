package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, 6, 2, hour, minute, 0, 0, time.UTC)
}

func TestIntervalsOverlap(t *testing.T) {
	tests := []struct {
		name       string
		aStart     time.Time
		aEnd       time.Time
		bStart     time.Time
		bEnd       time.Time
		wantResult bool
	}{
		{"partial overlap", at(14, 0), at(14, 30), at(14, 15), at(14, 45), true},
		{"contained", at(14, 0), at(15, 0), at(14, 15), at(14, 30), true},
		{"identical", at(14, 0), at(14, 30), at(14, 0), at(14, 30), true},
		{"disjoint", at(15, 0), at(15, 30), at(14, 0), at(14, 30), false},
		{"touching end", at(14, 0), at(14, 30), at(14, 30), at(15, 0), false},
		{"touching start", at(14, 30), at(15, 0), at(14, 0), at(14, 30), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantResult, IntervalsOverlap(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			assert.Equal(t, tt.wantResult, IntervalsOverlap(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestBooking_IsUpcoming(t *testing.T) {
	b := &Booking{StartTime: at(10, 0), EndTime: at(10, 30)}

	assert.True(t, b.IsUpcoming(at(10, 0)))
	assert.True(t, b.IsUpcoming(at(9, 0)))
	assert.False(t, b.IsUpcoming(at(10, 1)))
}

func TestEventType_Ownership(t *testing.T) {
	et := &EventType{Slug: "30min", Owner: &User{Username: "kavya"}}

	assert.True(t, et.BelongsTo("kavya"))
	assert.False(t, et.BelongsTo("someone"))
	assert.Equal(t, "/kavya/30min", et.PublicPath("kavya"))
	assert.False(t, (&EventType{}).BelongsTo("kavya"))
}
