package converter

import (
	"time"

	"salon-scheduler/internal/delivery/dto"
	"salon-scheduler/internal/domain/entity"
)

// BookingToWaitlistEntry converts a Booking entity to a WaitlistEntryResponse DTO
func BookingToWaitlistEntry(booking *entity.Booking) *dto.WaitlistEntryResponse {
	if booking == nil {
		return nil
	}

	return &dto.WaitlistEntryResponse{
		ID:          booking.ID,
		Ref:         booking.Ref,
		ClientName:  booking.ClientName(),
		TeamMembers: booking.TeamMembers(),
		Date:        booking.AppointmentDate.Format("2006-01-02"),
		Time:        booking.AppointmentDate.Format("15:04"),
		Status:      string(booking.Status),
		FinalAmount: booking.FinalAmount,
		Duration:    booking.TotalDurationMin,
	}
}

// BookingsToWaitlistEntries converts a slice of Booking entities to WaitlistEntryResponse DTOs
func BookingsToWaitlistEntries(bookings []entity.Booking) []dto.WaitlistEntryResponse {
	responses := make([]dto.WaitlistEntryResponse, len(bookings))
	for i, booking := range bookings {
		response := BookingToWaitlistEntry(&booking)
		if response != nil {
			responses[i] = *response
		}
	}
	return responses
}

// BucketsToResponse converts categorized waitlist buckets to the response DTO
func BucketsToResponse(buckets *entity.WaitlistBuckets) *dto.WaitlistResponse {
	if buckets == nil {
		return nil
	}

	return &dto.WaitlistResponse{
		Upcoming:  BookingsToWaitlistEntries(buckets.Upcoming),
		Completed: BookingsToWaitlistEntries(buckets.Completed),
		Booked:    BookingsToWaitlistEntries(buckets.Booked),
	}
}

// BookingToAppointmentRow converts a Booking entity to an AppointmentRowResponse DTO
func BookingToAppointmentRow(booking *entity.Booking) *dto.AppointmentRowResponse {
	if booking == nil {
		return nil
	}

	return &dto.AppointmentRowResponse{
		ID:          booking.ID,
		Ref:         booking.Ref,
		CreatedBy:   booking.ClientName(),
		CreatedAt:   booking.CreatedAt.Format(time.RFC3339),
		ScheduledAt: booking.AppointmentDate.Format(time.RFC3339),
		Duration:    booking.TotalDurationMin,
		TeamMember:  booking.TeamMembers(),
		Price:       booking.FinalAmount,
		Status:      string(booking.Status),
	}
}

// BookingsToAppointmentRows converts a slice of Booking entities to AppointmentRowResponse DTOs
func BookingsToAppointmentRows(bookings []entity.Booking) []dto.AppointmentRowResponse {
	responses := make([]dto.AppointmentRowResponse, len(bookings))
	for i, booking := range bookings {
		response := BookingToAppointmentRow(&booking)
		if response != nil {
			responses[i] = *response
		}
	}
	return responses
}
