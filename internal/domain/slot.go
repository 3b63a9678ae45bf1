package domain

import (
	"fmt"

	"github.com/m04kA/SMC-SchedulerService/pkg/types"
)

// DayWindow daily window slots are generated in
type DayWindow struct {
	Start types.TimeString
	End   types.TimeString
}

// DefaultDayWindow returns the 09:00-17:00 window
func DefaultDayWindow() DayWindow {
	return DayWindow{Start: DefaultDayStart, End: DefaultDayEnd}
}

// Validate checks both bounds and their order
func (w DayWindow) Validate() error {
	if err := w.Start.Validate(); err != nil {
		return fmt.Errorf("window start: %w", err)
	}
	if err := w.End.Validate(); err != nil {
		return fmt.Errorf("window end: %w", err)
	}
	if w.End.IsBefore(w.Start) {
		return fmt.Errorf("window end %s is before start %s", w.End, w.Start)
	}
	return nil
}

// AvailableSlot candidate start time offered to a visitor
type AvailableSlot struct {
	StartTime       types.TimeString
	DurationMinutes int
	Available       bool // false if the slot overlaps an existing booking
}

// GenerateSlots returns start times window.Start + k*duration for every k
// such that the start is not later than window.End.
//
// A slot starting exactly at window.End is emitted, and slots are not
// clipped when they end after window.End: with 09:00-17:00 and 15 minutes
// this yields 33 slots from 09:00 to 17:00 inclusive.
// A non-positive duration yields no slots.
func GenerateSlots(window DayWindow, durationMinutes int) ([]types.TimeString, error) {
	if durationMinutes <= 0 {
		return []types.TimeString{}, nil
	}

	start, err := window.Start.Minutes()
	if err != nil {
		return nil, err
	}
	end, err := window.End.Minutes()
	if err != nil {
		return nil, err
	}

	slots := make([]types.TimeString, 0, (end-start)/durationMinutes+1)
	for current := start; current <= end; current += durationMinutes {
		slot, err := types.NewTimeStringFromMinutes(current)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	return slots, nil
}
