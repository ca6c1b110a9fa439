package repository

import (
	"context"

	"salon-scheduler/internal/domain/entity"
	domainRepo "salon-scheduler/internal/domain/repository"
)

type employeeRepository struct {
	client *APIClient
}

func NewEmployeeRepository(client *APIClient) domainRepo.EmployeeRepository {
	return &employeeRepository{client: client}
}

func (r *employeeRepository) FindAll(ctx context.Context) ([]entity.StaffMember, error) {
	var data struct {
		Employees []employeeWire `json:"employees"`
	}
	if err := r.client.get(ctx, "/employees", nil, &data); err != nil {
		return nil, err
	}

	members := make([]entity.StaffMember, 0, len(data.Employees))
	for _, wire := range data.Employees {
		members = append(members, wire.toEntity())
	}
	return members, nil
}
