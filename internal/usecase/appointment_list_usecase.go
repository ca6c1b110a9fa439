package usecase

import (
	"context"
	"sort"
	"strings"

	"salon-scheduler/internal/converter"
	"salon-scheduler/internal/delivery/dto"
	"salon-scheduler/internal/domain/entity"
	"salon-scheduler/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type AppointmentListUsecase interface {
	GetAppointments(ctx context.Context, req *dto.AppointmentListRequest) (*dto.AppointmentListResponse, error)
}

type appointmentListUsecase struct {
	log         *logrus.Logger
	bookingRepo repository.BookingRepository
}

func NewAppointmentListUsecase(log *logrus.Logger, bookingRepo repository.BookingRepository) AppointmentListUsecase {
	return &appointmentListUsecase{
		log:         log,
		bookingRepo: bookingRepo,
	}
}

// GetAppointments returns the flat appointment table: fetched bookings run
// through search, filters and sort in that order.
func (u *appointmentListUsecase) GetAppointments(ctx context.Context, req *dto.AppointmentListRequest) (*dto.AppointmentListResponse, error) {
	bookings, err := u.bookingRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to fetch bookings for appointment list: %+v", err)
		return nil, err
	}

	filtered := filterBookings(bookings, req)
	sortBookings(filtered, req.SortBy, req.SortDir)

	rows := converter.BookingsToAppointmentRows(filtered)
	return &dto.AppointmentListResponse{
		Appointments: rows,
		Total:        len(rows),
	}, nil
}

func filterBookings(bookings []entity.Booking, req *dto.AppointmentListRequest) []entity.Booking {
	search := strings.ToLower(strings.TrimSpace(req.Search))
	teamMember := strings.ToLower(strings.TrimSpace(req.TeamMember))

	filtered := make([]entity.Booking, 0, len(bookings))
	for _, b := range bookings {
		if req.Status != "" && string(b.Status) != req.Status {
			continue
		}
		if teamMember != "" && !strings.Contains(strings.ToLower(b.TeamMembers()), teamMember) {
			continue
		}
		if search != "" && !matchesSearch(&b, search) {
			continue
		}
		filtered = append(filtered, b)
	}
	return filtered
}

func matchesSearch(b *entity.Booking, search string) bool {
	return strings.Contains(strings.ToLower(b.Ref), search) ||
		strings.Contains(strings.ToLower(b.ClientName()), search) ||
		strings.Contains(strings.ToLower(b.TeamMembers()), search)
}

// sortBookings orders in place. Default is scheduled date, newest first.
func sortBookings(bookings []entity.Booking, sortBy, sortDir string) {
	asc := sortDir == "asc"

	var less func(a, b *entity.Booking) bool
	switch sortBy {
	case "created_date":
		less = func(a, b *entity.Booking) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case "price":
		less = func(a, b *entity.Booking) bool { return a.FinalAmount < b.FinalAmount }
	case "duration":
		less = func(a, b *entity.Booking) bool { return a.TotalDurationMin < b.TotalDurationMin }
	default:
		less = func(a, b *entity.Booking) bool { return a.AppointmentDate.Before(b.AppointmentDate) }
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		if asc {
			return less(&bookings[i], &bookings[j])
		}
		return less(&bookings[j], &bookings[i])
	})
}
