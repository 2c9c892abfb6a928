package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain"
	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain/entity"
	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implements ClientRepository (usable with pool or tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository builds the adapter. Pass a pool or a tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persists a new client.
func (r *ClientRepo) Create(ctx context.Context, c *entity.Client) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	query := `
		INSERT INTO clients (id, name, email, phone, address, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Name, nullIfEmpty(c.Email), nullIfEmpty(c.Phone),
		nullIfEmpty(c.Address), nullIfEmpty(c.Notes),
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID loads one client, or (nil, nil) when absent.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	query := `
		SELECT id, name, email, phone, address, notes, created_at, updated_at
		FROM clients WHERE id = $1`
	var c entity.Client
	var email, phone, address, notes *string
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &email, &phone, &address, &notes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	c.Email = derefStr(email)
	c.Phone = derefStr(phone)
	c.Address = derefStr(address)
	c.Notes = derefStr(notes)
	return &c, nil
}

// Update rewrites the client's contact fields.
func (r *ClientRepo) Update(ctx context.Context, c *entity.Client) error {
	query := `
		UPDATE clients
		SET name = $2, email = $3, phone = $4, address = $5, notes = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		c.ID, c.Name, nullIfEmpty(c.Email), nullIfEmpty(c.Phone),
		nullIfEmpty(c.Address), nullIfEmpty(c.Notes), c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List returns one page plus the total match count. Search covers name,
// email and phone.
func (r *ClientRepo) List(ctx context.Context, q repository.ListQuery) ([]*entity.Client, int, error) {
	where := `
		FROM clients
		WHERE ($1 = ''
		   OR name ILIKE '%' || $1 || '%'
		   OR email ILIKE '%' || $1 || '%'
		   OR phone ILIKE '%' || $1 || '%')`

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) `+where, q.Search).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count clients: %w", err)
	}

	query := `
		SELECT id, name, email, phone, address, notes, created_at, updated_at ` + where + `
		ORDER BY name
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, q.Search, q.Limit, q.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Client, 0, q.Limit)
	for rows.Next() {
		var c entity.Client
		var email, phone, address, notes *string
		if err := rows.Scan(&c.ID, &c.Name, &email, &phone, &address, &notes, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan client: %w", err)
		}
		c.Email = derefStr(email)
		c.Phone = derefStr(phone)
		c.Address = derefStr(address)
		c.Notes = derefStr(notes)
		list = append(list, &c)
	}
	return list, total, rows.Err()
}
