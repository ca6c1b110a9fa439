package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"salon-scheduler/internal/converter"
	"salon-scheduler/internal/delivery/dto"
	"salon-scheduler/internal/domain/entity"
	"salon-scheduler/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrUnknownStaff = errors.New("staff member not found")
	ErrInvalidDate  = errors.New("invalid date")
)

type ScheduleGridUsecase interface {
	Grid(ctx context.Context) (*dto.GridResponse, error)
	LoadStaff(ctx context.Context) (*dto.StaffListResponse, error)
	Staff(ctx context.Context) (*dto.StaffListResponse, error)
	ToggleStaff(ctx context.Context, staffID string) (*dto.StaffListResponse, error)
	SelectDate(ctx context.Context, req *dto.SelectDateRequest) (*dto.DateResponse, error)
	StepDate(ctx context.Context, req *dto.StepDateRequest) (*dto.DateResponse, error)
	Today(ctx context.Context) (*dto.DateResponse, error)
	RefreshBookings(ctx context.Context) error
}

// scheduleGridUsecase owns the day view: the staff directory with its
// selection set, the selected date and the placement index built from the
// latest booking fetch. Every booking fetch is tagged with a generation
// number; a response that comes back after a newer fetch started is
// discarded so a slow response never overwrites fresher data.
type scheduleGridUsecase struct {
	log          *logrus.Logger
	employeeRepo repository.EmployeeRepository
	bookingRepo  repository.BookingRepository

	mu           sync.Mutex
	directory    *entity.StaffDirectory
	bookings     []entity.Booking
	placement    entity.PlacementIndex
	selectedDate time.Time
	generation   uint64

	merge entity.MergeStrategy
	clock func() time.Time
}

func NewScheduleGridUsecase(
	log *logrus.Logger,
	employeeRepo repository.EmployeeRepository,
	bookingRepo repository.BookingRepository,
) ScheduleGridUsecase {
	now := time.Now().UTC()
	return &scheduleGridUsecase{
		log:          log,
		employeeRepo: employeeRepo,
		bookingRepo:  bookingRepo,
		selectedDate: now.Truncate(24 * time.Hour),
		merge:        entity.LastWriteWins,
		clock:        time.Now,
	}
}

// Grid returns the current day view. The first call loads the staff
// directory and bookings before rendering.
func (u *scheduleGridUsecase) Grid(ctx context.Context) (*dto.GridResponse, error) {
	u.mu.Lock()
	loaded := u.directory != nil
	u.mu.Unlock()

	if !loaded {
		if _, err := u.LoadStaff(ctx); err != nil {
			return nil, err
		}
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	response := &dto.GridResponse{
		Date:  u.selectedDate.Format("2006-01-02"),
		Slots: converter.TimeGridToResponses(),
		Cells: converter.PlacementToCells(u.placement),
	}
	if u.directory != nil {
		response.Staff = converter.StaffMembersToResponses(u.directory.VisibleMembers())
	}

	now := u.clock()
	if entity.SameCalendarDay(u.selectedDate, now) {
		idx := entity.SlotIndexForTime(now)
		minute := entity.MinuteOfDay(now)
		response.CurrentSlotIndex = &idx
		response.CurrentMinute = &minute
	}
	return response, nil
}

// LoadStaff refetches the staff directory. Selection always resets to
// everyone selected, then bookings are refetched for the current date.
func (u *scheduleGridUsecase) LoadStaff(ctx context.Context) (*dto.StaffListResponse, error) {
	members, err := u.employeeRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load staff directory: %+v", err)
		return nil, err
	}

	for i := range members {
		members[i].ColorToken = entity.ColorTokenFor(i)
	}

	u.mu.Lock()
	u.directory = entity.NewStaffDirectory(members)
	response := u.staffListLocked()
	u.mu.Unlock()

	if err := u.RefreshBookings(ctx); err != nil {
		return nil, err
	}
	return response, nil
}

// Staff returns the directory without refetching.
func (u *scheduleGridUsecase) Staff(ctx context.Context) (*dto.StaffListResponse, error) {
	u.mu.Lock()
	loaded := u.directory != nil
	u.mu.Unlock()

	if !loaded {
		return u.LoadStaff(ctx)
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	return u.staffListLocked(), nil
}

// ToggleStaff flips one member's selection and rebuilds the placement index
// from the cached bookings. No refetch: hiding a column is a local concern.
func (u *scheduleGridUsecase) ToggleStaff(ctx context.Context, staffID string) (*dto.StaffListResponse, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.directory == nil || !u.directory.Contains(staffID) {
		return nil, ErrUnknownStaff
	}

	u.directory.Toggle(staffID)
	u.rebuildPlacementLocked()
	return u.staffListLocked(), nil
}

func (u *scheduleGridUsecase) SelectDate(ctx context.Context, req *dto.SelectDateRequest) (*dto.DateResponse, error) {
	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	return u.moveTo(ctx, day)
}

func (u *scheduleGridUsecase) StepDate(ctx context.Context, req *dto.StepDateRequest) (*dto.DateResponse, error) {
	days := 1
	if req.Direction == "prev" {
		days = -1
	}

	u.mu.Lock()
	day := u.selectedDate.AddDate(0, 0, days)
	u.mu.Unlock()

	return u.moveTo(ctx, day)
}

func (u *scheduleGridUsecase) Today(ctx context.Context) (*dto.DateResponse, error) {
	now := u.clock().UTC()
	return u.moveTo(ctx, now.Truncate(24*time.Hour))
}

func (u *scheduleGridUsecase) moveTo(ctx context.Context, day time.Time) (*dto.DateResponse, error) {
	u.mu.Lock()
	u.selectedDate = day
	u.mu.Unlock()

	if err := u.RefreshBookings(ctx); err != nil {
		return nil, err
	}
	return &dto.DateResponse{Date: day.Format("2006-01-02")}, nil
}

// RefreshBookings refetches bookings and rebuilds the placement index. The
// lock is not held across the network call; the generation check on
// re-acquire drops responses a newer refresh has already superseded.
func (u *scheduleGridUsecase) RefreshBookings(ctx context.Context) error {
	u.mu.Lock()
	u.generation++
	gen := u.generation
	u.mu.Unlock()

	bookings, err := u.bookingRepo.FindAll(ctx)

	u.mu.Lock()
	defer u.mu.Unlock()

	if gen != u.generation {
		u.log.Debugf("Dropping stale booking fetch (generation %d, current %d)", gen, u.generation)
		return nil
	}
	if err != nil {
		u.log.Warnf("Failed to refresh bookings: %+v", err)
		return err
	}

	u.bookings = bookings
	u.rebuildPlacementLocked()
	return nil
}

func (u *scheduleGridUsecase) rebuildPlacementLocked() {
	if u.directory == nil {
		u.placement = nil
		return
	}
	u.placement = entity.BuildPlacementIndex(u.bookings, u.directory, u.selectedDate, u.merge)
}

func (u *scheduleGridUsecase) staffListLocked() *dto.StaffListResponse {
	staff := converter.DirectoryToResponses(u.directory)
	return &dto.StaffListResponse{
		Staff: staff,
		Total: len(staff),
	}
}
