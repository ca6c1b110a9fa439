package usecase

import (
	"context"
	"time"

	"salon-scheduler/internal/converter"
	"salon-scheduler/internal/delivery/dto"
	"salon-scheduler/internal/domain/entity"
	"salon-scheduler/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type WaitlistUsecase interface {
	GetWaitlist(ctx context.Context) (*dto.WaitlistResponse, error)
}

type waitlistUsecase struct {
	log         *logrus.Logger
	bookingRepo repository.BookingRepository
	clock       func() time.Time
}

func NewWaitlistUsecase(log *logrus.Logger, bookingRepo repository.BookingRepository) WaitlistUsecase {
	return &waitlistUsecase{
		log:         log,
		bookingRepo: bookingRepo,
		clock:       time.Now,
	}
}

// GetWaitlist fetches all bookings and buckets them against the wall clock at
// the moment of the call. The buckets overlap: a confirmed future booking is
// both upcoming and booked.
func (u *waitlistUsecase) GetWaitlist(ctx context.Context) (*dto.WaitlistResponse, error) {
	bookings, err := u.bookingRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to fetch bookings for waitlist: %+v", err)
		return nil, err
	}

	buckets := entity.CategorizeBookings(bookings, u.clock())
	return converter.BucketsToResponse(&buckets), nil
}
