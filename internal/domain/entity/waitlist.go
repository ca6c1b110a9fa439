package entity

import "time"

// WaitlistBuckets partitions fetched bookings relative to a point in time.
// The buckets are not mutually exclusive: a future confirmed booking appears
// in both Upcoming and Booked. That overlap is intentional.
type WaitlistBuckets struct {
	Upcoming  []Booking
	Completed []Booking
	Booked    []Booking
}

// CategorizeBookings buckets bookings against now. Callers must pass the
// evaluation-time clock, not the fetch-time clock, so an upcoming booking
// migrates to completed as real time passes. Cancelled bookings appear in
// no bucket.
func CategorizeBookings(bookings []Booking, now time.Time) WaitlistBuckets {
	var buckets WaitlistBuckets
	for _, b := range bookings {
		if b.IsCancelled() {
			continue
		}
		if !b.AppointmentDate.Before(now) && (b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed) {
			buckets.Upcoming = append(buckets.Upcoming, b)
		}
		if b.AppointmentDate.Before(now) || b.Status == BookingStatusCompleted {
			buckets.Completed = append(buckets.Completed, b)
		}
		switch b.Status {
		case BookingStatusConfirmed, BookingStatusPending, BookingStatusBooked:
			buckets.Booked = append(buckets.Booked, b)
		}
	}
	return buckets
}
