package repository

import (
	"context"
	"net/url"
	"time"

	"salon-scheduler/internal/domain/entity"
	domainRepo "salon-scheduler/internal/domain/repository"
)

type catalogRepository struct {
	client *APIClient
}

func NewCatalogRepository(client *APIClient) domainRepo.CatalogRepository {
	return &catalogRepository{client: client}
}

func (r *catalogRepository) Services(ctx context.Context) ([]entity.Service, error) {
	var data struct {
		Services []serviceWire `json:"services"`
	}
	if err := r.client.get(ctx, "/bookings/services", nil, &data); err != nil {
		return nil, err
	}

	services := make([]entity.Service, 0, len(data.Services))
	for _, wire := range data.Services {
		services = append(services, wire.toEntity())
	}
	return services, nil
}

func (r *catalogRepository) Professionals(ctx context.Context, serviceID string, date time.Time) ([]entity.StaffMember, error) {
	query := url.Values{}
	query.Set("service", serviceID)
	query.Set("date", date.Format("2006-01-02"))

	var data struct {
		Professionals []employeeWire `json:"professionals"`
	}
	if err := r.client.get(ctx, "/bookings/professionals", query, &data); err != nil {
		return nil, err
	}

	professionals := make([]entity.StaffMember, 0, len(data.Professionals))
	for _, wire := range data.Professionals {
		professionals = append(professionals, wire.toEntity())
	}
	return professionals, nil
}

func (r *catalogRepository) TimeSlots(ctx context.Context, employeeID, serviceID string, date time.Time) ([]entity.AvailabilitySlot, error) {
	query := url.Values{}
	query.Set("employeeId", employeeID)
	query.Set("serviceId", serviceID)
	query.Set("date", date.Format("2006-01-02"))

	var data struct {
		TimeSlots []timeSlotWire `json:"timeSlots"`
	}
	if err := r.client.get(ctx, "/bookings/time-slots", query, &data); err != nil {
		return nil, err
	}

	slots := make([]entity.AvailabilitySlot, 0, len(data.TimeSlots))
	for _, wire := range data.TimeSlots {
		slots = append(slots, entity.AvailabilitySlot{
			StartTime: parseInstant(wire.StartTime),
			EndTime:   parseInstant(wire.EndTime),
			Available: wire.Available,
		})
	}
	return slots, nil
}
