package repository

import (
	"context"
	"time"

	"salon-scheduler/internal/domain/entity"
	domainRepo "salon-scheduler/internal/domain/repository"
)

type bookingRepository struct {
	client *APIClient
}

func NewBookingRepository(client *APIClient) domainRepo.BookingRepository {
	return &bookingRepository{client: client}
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]entity.Booking, error) {
	var data struct {
		Bookings []bookingWire `json:"bookings"`
	}
	if err := r.client.get(ctx, "/bookings/admin/all", nil, &data); err != nil {
		return nil, err
	}

	bookings := make([]entity.Booking, 0, len(data.Bookings))
	for _, wire := range data.Bookings {
		bookings = append(bookings, wire.toEntity())
	}
	return bookings, nil
}

type submissionSegmentPayload struct {
	Service   string  `json:"service"`
	Employee  string  `json:"employee"`
	Duration  int     `json:"duration"`
	Price     float64 `json:"price"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
}

type submissionClientPayload struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type submissionPayload struct {
	Services        []submissionSegmentPayload `json:"services"`
	AppointmentDate string                     `json:"appointmentDate"`
	FinalAmount     float64                    `json:"finalAmount"`
	TotalDuration   int                        `json:"totalDuration"`
	Notes           string                     `json:"notes"`
	PaymentMethod   string                     `json:"paymentMethod"`
	Client          submissionClientPayload    `json:"client"`
}

// Create posts a composed booking and returns the id the backend assigned.
func (r *bookingRepository) Create(ctx context.Context, submission *entity.BookingSubmission) (string, error) {
	payload := submissionPayload{
		Services:        make([]submissionSegmentPayload, 0, len(submission.Segments)),
		AppointmentDate: submission.AppointmentDate.UTC().Format(time.RFC3339),
		FinalAmount:     submission.FinalAmount,
		TotalDuration:   submission.TotalDurationMin,
		Notes:           submission.Notes,
		PaymentMethod:   string(submission.PaymentMethod),
		Client: submissionClientPayload{
			FirstName: submission.Client.FirstName,
			LastName:  submission.Client.LastName,
			Email:     submission.Client.Email,
			Phone:     submission.Client.Phone,
		},
	}
	for _, seg := range submission.Segments {
		payload.Services = append(payload.Services, submissionSegmentPayload{
			Service:   seg.ServiceID,
			Employee:  seg.EmployeeID,
			Duration:  seg.DurationMin,
			Price:     seg.Price,
			StartTime: seg.StartTime.UTC().Format(time.RFC3339),
			EndTime:   seg.EndTime.UTC().Format(time.RFC3339),
		})
	}

	var data struct {
		Booking *bookingWire `json:"booking,omitempty"`
	}
	if err := r.client.post(ctx, "/bookings", payload, &data); err != nil {
		return "", err
	}
	if data.Booking != nil {
		return data.Booking.ID, nil
	}
	return "", nil
}
