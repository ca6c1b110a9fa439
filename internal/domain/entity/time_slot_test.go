package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeGrid(t *testing.T) {
	grid := TimeGrid()
	require.Len(t, grid, 96)

	assert.Equal(t, "00:00", grid[0].Label)
	assert.Equal(t, "09:15", grid[37].Label)
	assert.Equal(t, "23:45", grid[95].Label)

	for _, slot := range grid {
		assert.Equal(t, slot.Index%4 == 0, slot.IsHourStart, "slot %d", slot.Index)
	}
}

func TestSlotLabelRoundTrip(t *testing.T) {
	for i := 0; i < SlotsPerDay; i++ {
		index, ok := SlotIndexForLabel(SlotLabel(i))
		require.True(t, ok, "label %s", SlotLabel(i))
		assert.Equal(t, i, index)
	}
}

func TestSlotIndexForLabelRejectsOffGrid(t *testing.T) {
	for _, label := range []string{"09:07", "9am", "25:00", "", "12:61"} {
		_, ok := SlotIndexForLabel(label)
		assert.False(t, ok, "label %q", label)
	}
}

func TestSlotIndexForTime(t *testing.T) {
	base := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, 36, SlotIndexForTime(base))
	// Mid-slot instants map to the row containing them.
	assert.Equal(t, 36, SlotIndexForTime(base.Add(14*time.Minute)))
	assert.Equal(t, 37, SlotIndexForTime(base.Add(15*time.Minute)))
}

func TestSameCalendarDay(t *testing.T) {
	a := time.Date(2025, 1, 15, 0, 0, 1, 0, time.UTC)
	b := time.Date(2025, 1, 15, 23, 59, 59, 0, time.UTC)
	c := time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameCalendarDay(a, b))
	assert.False(t, SameCalendarDay(b, c))
}
