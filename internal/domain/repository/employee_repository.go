package repository

import (
	"context"

	"salon-scheduler/internal/domain/entity"
)

// EmployeeRepository fetches the staff directory. Color tokens are not part
// of the backend record; the caller assigns them by list position.
type EmployeeRepository interface {
	FindAll(ctx context.Context) ([]entity.StaffMember, error)
}
