package entity

import (
	"strings"
	"time"
)

// BookingStatus represents the status of a booking as reported by the backend.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusBooked    BookingStatus = "booked"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// ServiceSegment is one (service, employee, time range) leg of a booking.
// Employee and service references are optional: the backend can return
// partially populated records, and unresolved segments are tolerated.
type ServiceSegment struct {
	EmployeeID   *string
	EmployeeName string
	ServiceID    *string
	ServiceName  string
	StartTime    time.Time
	EndTime      time.Time
	Price        float64
	DurationMin  int
}

// Booking is the engine's read-only view of a fetched booking. The backend is
// authoritative; this projection is discarded and rebuilt on every fetch.
type Booking struct {
	ID               string
	Ref              string
	AppointmentDate  time.Time
	Status           BookingStatus
	Client           *Client
	Segments         []ServiceSegment
	FinalAmount      float64
	TotalDurationMin int
	PaymentMethod    string
	CreatedAt        time.Time
}

// ClientName returns the booking client's display name, or "Guest" when the
// record carries no client.
func (b *Booking) ClientName() string {
	if b.Client == nil {
		return "Guest"
	}
	name := strings.TrimSpace(b.Client.FirstName + " " + b.Client.LastName)
	if name == "" {
		return "Guest"
	}
	return name
}

// TeamMembers joins the employee names across all segments, "-" when none.
func (b *Booking) TeamMembers() string {
	names := make([]string, 0, len(b.Segments))
	for _, seg := range b.Segments {
		if seg.EmployeeName != "" {
			names = append(names, seg.EmployeeName)
		} else {
			names = append(names, "-")
		}
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}

func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}

// PaymentMethod is the wizard's payment selection.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

// ParsePaymentMethod validates a raw payment method value.
func ParsePaymentMethod(raw string) (PaymentMethod, bool) {
	switch PaymentMethod(raw) {
	case PaymentCash, PaymentCard:
		return PaymentMethod(raw), true
	}
	return "", false
}

// SubmissionSegment is one service leg of a booking submission payload.
type SubmissionSegment struct {
	ServiceID   string
	EmployeeID  string
	DurationMin int
	Price       float64
	StartTime   time.Time
	EndTime     time.Time
}

// BookingSubmission is the payload composed by the wizard's final step.
type BookingSubmission struct {
	Segments         []SubmissionSegment
	AppointmentDate  time.Time
	FinalAmount      float64
	TotalDurationMin int
	Notes            string
	PaymentMethod    PaymentMethod
	Client           ClientRecord
}
