package entity

import (
	"fmt"
	"time"
)

const (
	// SlotMinutes is the fixed width of one grid slot.
	SlotMinutes = 15

	// SlotsPerDay is the number of grid slots in a 24-hour day (96).
	SlotsPerDay = 24 * 60 / SlotMinutes
)

// TimeSlot is one fixed 15-minute increment of the day grid.
type TimeSlot struct {
	Index       int    `json:"index"`
	Label       string `json:"label"`
	IsHourStart bool   `json:"is_hour_start"`
}

var timeGrid = buildTimeGrid()

func buildTimeGrid() []TimeSlot {
	slots := make([]TimeSlot, SlotsPerDay)
	for i := range slots {
		slots[i] = TimeSlot{
			Index:       i,
			Label:       fmt.Sprintf("%02d:%02d", i/4, (i%4)*SlotMinutes),
			IsHourStart: i%4 == 0,
		}
	}
	return slots
}

// TimeGrid returns the fixed 96-slot day grid. The backing array is generated
// once; callers must not mutate the returned slice.
func TimeGrid() []TimeSlot {
	return timeGrid
}

// SlotLabel returns the "HH:MM" label for a slot index.
// Panics on an out-of-range index; the domain is fixed at construction.
func SlotLabel(index int) string {
	return timeGrid[index].Label
}

// SlotIndexForLabel is the inverse of SlotLabel. Returns false for a label
// that is not a valid grid boundary ("09:07") or not a time at all.
func SlotIndexForLabel(label string) (int, bool) {
	t, err := time.Parse("15:04", label)
	if err != nil {
		return 0, false
	}
	if t.Minute()%SlotMinutes != 0 {
		return 0, false
	}
	return t.Hour()*4 + t.Minute()/SlotMinutes, true
}

// SlotIndexForTime maps an instant onto the grid row containing it.
func SlotIndexForTime(t time.Time) int {
	return t.Hour()*4 + t.Minute()/SlotMinutes
}

// SameCalendarDay reports calendar-day equality (not a range check).
func SameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// MinuteOfDay returns the minute offset used for the current-time indicator.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
