package repository

import (
	"context"

	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain/entity"
)

// ClientRepository is the persistence port for clients.
type ClientRepository interface {
	Create(ctx context.Context, c *entity.Client) error
	GetByID(ctx context.Context, id string) (*entity.Client, error)
	Update(ctx context.Context, c *entity.Client) error
	List(ctx context.Context, q ListQuery) ([]*entity.Client, int, error)
}
