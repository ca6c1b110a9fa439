package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCategorizeBookings(t *testing.T) {
	now := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

	future := Booking{ID: "b-future", AppointmentDate: now.Add(2 * time.Hour), Status: BookingStatusConfirmed}
	past := Booking{ID: "b-past", AppointmentDate: now.Add(-2 * time.Hour), Status: BookingStatusBooked}
	done := Booking{ID: "b-done", AppointmentDate: now.Add(3 * time.Hour), Status: BookingStatusCompleted}
	cancelled := Booking{ID: "b-cancelled", AppointmentDate: now.Add(4 * time.Hour), Status: BookingStatusCancelled}
	cancelledPast := Booking{ID: "b-cancelled-past", AppointmentDate: now.Add(-4 * time.Hour), Status: BookingStatusCancelled}

	buckets := CategorizeBookings([]Booking{future, past, done, cancelled, cancelledPast}, now)

	assert.Equal(t, []Booking{future}, buckets.Upcoming)
	// Cancelled bookings land in no bucket, even past ones.
	assert.Equal(t, []Booking{past, done}, buckets.Completed)
	// A future confirmed booking appears in both Upcoming and Booked.
	assert.Equal(t, []Booking{future, past}, buckets.Booked)
}

func TestCategorizeBookingsClockMovesBookingsToCompleted(t *testing.T) {
	at := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	booking := Booking{ID: "b-1", AppointmentDate: at, Status: BookingStatusPending}

	before := CategorizeBookings([]Booking{booking}, at.Add(-time.Hour))
	assert.Len(t, before.Upcoming, 1)
	assert.Empty(t, before.Completed)

	after := CategorizeBookings([]Booking{booking}, at.Add(time.Hour))
	assert.Empty(t, after.Upcoming)
	assert.Len(t, after.Completed, 1)
}

func TestCategorizeBookingsEmpty(t *testing.T) {
	buckets := CategorizeBookings(nil, time.Now())
	assert.Empty(t, buckets.Upcoming)
	assert.Empty(t, buckets.Completed)
	assert.Empty(t, buckets.Booked)
}
