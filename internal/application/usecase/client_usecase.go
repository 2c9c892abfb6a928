package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cindychcheng/paintpro-manager-sub001/internal/application/dto"
	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain"
	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain/entity"
	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain/repository"
	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain/validate"
)

// ClientUseCase applies the business rules for the client roster.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase builds the use case with the persistence port.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create validates and persists a new client.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	c := &entity.Client{
		ID:      uuid.New().String(),
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Address: in.Address,
		Notes:   in.Notes,
	}
	if errs := validate.Client(*c); !errs.OK() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, errs.Join())
	}
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return entityToClientResponse(c), nil
}

// GetByID returns a client, or nil when it does not exist.
func (uc *ClientUseCase) GetByID(ctx context.Context, id string) (*dto.ClientResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return entityToClientResponse(c), nil
}

// Update replaces the client's contact fields.
func (uc *ClientUseCase) Update(ctx context.Context, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	c.Name = in.Name
	c.Email = in.Email
	c.Phone = in.Phone
	c.Address = in.Address
	c.Notes = in.Notes
	if errs := validate.Client(*c); !errs.OK() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, errs.Join())
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return entityToClientResponse(c), nil
}

// List returns one page of clients plus pagination metadata. Search matches
// name, email and phone.
func (uc *ClientUseCase) List(ctx context.Context, req dto.PageRequest) (*dto.ClientListResponse, error) {
	req.DefaultPage()
	list, total, err := uc.repo.List(ctx, repository.ListQuery{
		Search: req.Search,
		Limit:  req.Limit,
		Offset: req.Offset(),
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToClientResponse(c))
	}
	return &dto.ClientListResponse{
		Clients:    items,
		Pagination: dto.NewPagination(req, total),
	}, nil
}

func entityToClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
}
