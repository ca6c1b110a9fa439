package repository

import (
	"context"

	"salon-scheduler/internal/domain/entity"
)

// ClientRepository fetches the full client directory for local search.
type ClientRepository interface {
	FindAll(ctx context.Context) ([]entity.Client, error)
}
