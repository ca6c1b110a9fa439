package repository

import (
	"strings"
	"time"

	"salon-scheduler/internal/domain/entity"
)

// Wire shapes for the salon backend's duck-typed JSON records. Optional
// fields are explicit pointers; presence checks happen once, here, instead
// of being scattered through rendering code.

type userWire struct {
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	ProfileImage *string `json:"profileImage,omitempty"`
}

type employeeWire struct {
	ID       string    `json:"_id"`
	User     *userWire `json:"user,omitempty"`
	Position string    `json:"position"`
	IsActive bool      `json:"isActive"`
}

type serviceWire struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	Duration int     `json:"duration"`
	Price    float64 `json:"price"`
}

type clientWire struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type segmentWire struct {
	Service   *serviceWire  `json:"service,omitempty"`
	Employee  *employeeWire `json:"employee,omitempty"`
	StartTime string        `json:"startTime"`
	EndTime   string        `json:"endTime"`
	Price     float64       `json:"price"`
	Duration  int           `json:"duration"`
}

type bookingWire struct {
	ID              string        `json:"_id"`
	BookingNumber   string        `json:"bookingNumber,omitempty"`
	AppointmentDate string        `json:"appointmentDate"`
	Status          string        `json:"status"`
	CreatedAt       string        `json:"createdAt,omitempty"`
	Client          *clientWire   `json:"client,omitempty"`
	Services        []segmentWire `json:"services"`
	FinalAmount     float64       `json:"finalAmount"`
	TotalDuration   int           `json:"totalDuration"`
	PaymentMethod   string        `json:"paymentMethod,omitempty"`
}

type timeSlotWire struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Available bool   `json:"available"`
}

func (w *employeeWire) toEntity() entity.StaffMember {
	member := entity.StaffMember{
		ID:       w.ID,
		Position: w.Position,
		IsActive: w.IsActive,
	}
	if member.Position == "" {
		member.Position = "Staff"
	}
	if w.User != nil {
		member.DisplayName = strings.TrimSpace(w.User.FirstName + " " + w.User.LastName)
		member.AvatarInitials = entity.AvatarInitials(w.User.FirstName, w.User.LastName)
		member.ProfileImage = w.User.ProfileImage
	}
	return member
}

func (w *serviceWire) toEntity() entity.Service {
	return entity.Service{
		ID:          w.ID,
		Name:        w.Name,
		DurationMin: w.Duration,
		Price:       w.Price,
	}
}

func (w *clientWire) toEntity() entity.Client {
	return entity.Client{
		ID:        w.ID,
		FirstName: w.FirstName,
		LastName:  w.LastName,
		Email:     w.Email,
		Phone:     w.Phone,
	}
}

func (w *bookingWire) toEntity() entity.Booking {
	booking := entity.Booking{
		ID:               w.ID,
		Ref:              w.BookingNumber,
		AppointmentDate:  parseInstant(w.AppointmentDate),
		Status:           entity.BookingStatus(strings.ToLower(w.Status)),
		FinalAmount:      w.FinalAmount,
		TotalDurationMin: w.TotalDuration,
		PaymentMethod:    w.PaymentMethod,
		CreatedAt:        parseInstant(w.CreatedAt),
	}
	if booking.Ref == "" {
		booking.Ref = w.ID
	}
	if w.Client != nil {
		client := w.Client.toEntity()
		booking.Client = &client
	}
	booking.Segments = make([]entity.ServiceSegment, 0, len(w.Services))
	for _, seg := range w.Services {
		segment := entity.ServiceSegment{
			StartTime:   parseInstant(seg.StartTime),
			EndTime:     parseInstant(seg.EndTime),
			Price:       seg.Price,
			DurationMin: seg.Duration,
		}
		if seg.Employee != nil {
			id := seg.Employee.ID
			segment.EmployeeID = &id
			if seg.Employee.User != nil {
				segment.EmployeeName = strings.TrimSpace(seg.Employee.User.FirstName + " " + seg.Employee.User.LastName)
			}
		}
		if seg.Service != nil {
			id := seg.Service.ID
			segment.ServiceID = &id
			segment.ServiceName = seg.Service.Name
		}
		booking.Segments = append(booking.Segments, segment)
	}
	return booking
}

// parseInstant tolerates the backend's mix of RFC3339 timestamps; anything
// unparseable becomes the zero time and falls out of day-scoped projections.
func parseInstant(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t
	}
	return time.Time{}
}
