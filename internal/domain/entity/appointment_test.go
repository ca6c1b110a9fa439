package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placementFixture() ([]Booking, *StaffDirectory, time.Time) {
	day := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	directory := NewStaffDirectory([]StaffMember{
		{ID: "emp-1", DisplayName: "Ana Silva"},
		{ID: "emp-2", DisplayName: "Bo Chen"},
	})

	emp1, emp2 := "emp-1", "emp-2"
	svc := "svc-1"
	bookings := []Booking{
		{
			ID:              "b-1",
			AppointmentDate: day.Add(9 * time.Hour),
			Client:          &Client{FirstName: "Mia", LastName: "Wong"},
			Segments: []ServiceSegment{
				{
					EmployeeID:  &emp1,
					ServiceID:   &svc,
					ServiceName: "Haircut",
					StartTime:   day.Add(9 * time.Hour),
					EndTime:     day.Add(9*time.Hour + 30*time.Minute),
					Price:       40,
					DurationMin: 30,
				},
				{
					EmployeeID: &emp2,
					StartTime:  day.Add(10 * time.Hour),
					EndTime:    day.Add(10*time.Hour + 15*time.Minute),
				},
			},
		},
		{
			// Different day, dropped entirely.
			ID:              "b-2",
			AppointmentDate: day.AddDate(0, 0, 1),
			Segments: []ServiceSegment{
				{EmployeeID: &emp1, StartTime: day.AddDate(0, 0, 1).Add(9 * time.Hour)},
			},
		},
		{
			// Unknown staff and missing staff, both dropped silently.
			ID:              "b-3",
			AppointmentDate: day.Add(11 * time.Hour),
			Segments: []ServiceSegment{
				{EmployeeID: ptr("emp-ghost"), StartTime: day.Add(11 * time.Hour)},
				{EmployeeID: nil, StartTime: day.Add(11 * time.Hour)},
			},
		},
	}
	return bookings, directory, day
}

func ptr(s string) *string { return &s }

func TestBuildPlacementIndex(t *testing.T) {
	bookings, directory, day := placementFixture()

	index := BuildPlacementIndex(bookings, directory, day, nil)
	require.Len(t, index, 2)

	entry, ok := index[PlacementKey{StaffID: "emp-1", SlotIndex: 36}]
	require.True(t, ok)
	assert.Equal(t, "b-1", entry.BookingID)
	assert.Equal(t, "Mia Wong", entry.ClientName)
	assert.Equal(t, "Haircut", entry.ServiceName)
	assert.Equal(t, "svc-1", entry.ServiceID)
	assert.Equal(t, 40.0, entry.Price)

	// A segment with no service reference falls back to a generic name.
	entry, ok = index[PlacementKey{StaffID: "emp-2", SlotIndex: 40}]
	require.True(t, ok)
	assert.Equal(t, "Service", entry.ServiceName)
	assert.Empty(t, entry.ServiceID)
}

func TestBuildPlacementIndexIsIdempotent(t *testing.T) {
	bookings, directory, day := placementFixture()

	first := BuildPlacementIndex(bookings, directory, day, nil)
	second := BuildPlacementIndex(bookings, directory, day, nil)
	assert.Equal(t, first, second)
}

func TestBuildPlacementIndexSkipsUnselectedStaff(t *testing.T) {
	bookings, directory, day := placementFixture()
	directory.Toggle("emp-1")

	index := BuildPlacementIndex(bookings, directory, day, nil)
	require.Len(t, index, 1)
	_, ok := index[PlacementKey{StaffID: "emp-2", SlotIndex: 40}]
	assert.True(t, ok)
}

func TestBuildPlacementIndexMergeStrategies(t *testing.T) {
	day := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	directory := NewStaffDirectory([]StaffMember{{ID: "emp-1"}})
	emp := "emp-1"

	colliding := []Booking{
		{
			ID:              "b-early",
			AppointmentDate: day,
			Segments:        []ServiceSegment{{EmployeeID: &emp, StartTime: day.Add(9 * time.Hour)}},
		},
		{
			ID:              "b-late",
			AppointmentDate: day,
			Segments:        []ServiceSegment{{EmployeeID: &emp, StartTime: day.Add(9 * time.Hour)}},
		},
	}
	key := PlacementKey{StaffID: "emp-1", SlotIndex: 36}

	last := BuildPlacementIndex(colliding, directory, day, LastWriteWins)
	require.Len(t, last, 1)
	assert.Equal(t, "b-late", last[key].BookingID)

	first := BuildPlacementIndex(colliding, directory, day, FirstWriteWins)
	require.Len(t, first, 1)
	assert.Equal(t, "b-early", first[key].BookingID)
}
