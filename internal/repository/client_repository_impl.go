package repository

import (
	"context"

	"salon-scheduler/internal/domain/entity"
	domainRepo "salon-scheduler/internal/domain/repository"
)

type clientRepository struct {
	client *APIClient
}

func NewClientRepository(client *APIClient) domainRepo.ClientRepository {
	return &clientRepository{client: client}
}

func (r *clientRepository) FindAll(ctx context.Context) ([]entity.Client, error) {
	var data struct {
		Clients []clientWire `json:"clients"`
	}
	if err := r.client.get(ctx, "/admin/clients", nil, &data); err != nil {
		return nil, err
	}

	clients := make([]entity.Client, 0, len(data.Clients))
	for _, wire := range data.Clients {
		clients = append(clients, wire.toEntity())
	}
	return clients, nil
}
