package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulerService/pkg/types"
)

func TestGenerateSlots_FifteenMinutes(t *testing.T) {
	slots, err := GenerateSlots(DefaultDayWindow(), 15)
	require.NoError(t, err)

	require.Len(t, slots, 33)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("17:00"), slots[len(slots)-1])

	for i := 1; i < len(slots); i++ {
		prev, err := slots[i-1].Minutes()
		require.NoError(t, err)
		cur, err := slots[i].Minutes()
		require.NoError(t, err)
		assert.Equal(t, 15, cur-prev, "slot %d", i)
	}
}

func TestGenerateSlots_ThirtyMinutes(t *testing.T) {
	slots, err := GenerateSlots(DefaultDayWindow(), 30)
	require.NoError(t, err)

	require.Len(t, slots, 17)
	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00"}, slots[:3])
	assert.Equal(t, types.TimeString("17:00"), slots[16])
}

func TestGenerateSlots_UnevenDuration(t *testing.T) {
	slots, err := GenerateSlots(DefaultDayWindow(), 45)
	require.NoError(t, err)

	// 09:00 + 10*45m = 16:30, 17:15 is past the window
	require.Len(t, slots, 11)
	assert.Equal(t, types.TimeString("09:45"), slots[1])
	assert.Equal(t, types.TimeString("16:30"), slots[10])
}

func TestGenerateSlots_Deterministic(t *testing.T) {
	a, err := GenerateSlots(DefaultDayWindow(), 20)
	require.NoError(t, err)
	b, err := GenerateSlots(DefaultDayWindow(), 20)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestGenerateSlots_NonPositiveDuration(t *testing.T) {
	for _, d := range []int{0, -15} {
		slots, err := GenerateSlots(DefaultDayWindow(), d)
		require.NoError(t, err)
		assert.Empty(t, slots)
	}
}

func TestGenerateSlots_InvalidWindow(t *testing.T) {
	_, err := GenerateSlots(DayWindow{Start: "9am", End: "17:00"}, 30)
	assert.Error(t, err)
}

func TestDayWindow_Validate(t *testing.T) {
	assert.NoError(t, DefaultDayWindow().Validate())
	assert.Error(t, DayWindow{Start: "17:00", End: "09:00"}.Validate())
	assert.Error(t, DayWindow{Start: "09:00", End: ""}.Validate())
}
