package repository

import (
	"context"

	"salon-scheduler/internal/domain/entity"
)

// BookingRepository reads and creates bookings against the salon backend.
// The backend returns the full unfiltered booking list; date filtering is a
// client-side projection.
type BookingRepository interface {
	FindAll(ctx context.Context) ([]entity.Booking, error)
	Create(ctx context.Context, submission *entity.BookingSubmission) (string, error)
}
