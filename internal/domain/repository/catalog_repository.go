package repository

import (
	"context"
	"time"

	"salon-scheduler/internal/domain/entity"
)

// CatalogRepository serves the wizard's per-step option lists. Each list is
// filtered server-side by the selections committed in earlier steps.
type CatalogRepository interface {
	Services(ctx context.Context) ([]entity.Service, error)
	Professionals(ctx context.Context, serviceID string, date time.Time) ([]entity.StaffMember, error)
	TimeSlots(ctx context.Context, employeeID, serviceID string, date time.Time) ([]entity.AvailabilitySlot, error)
}
