package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain"
	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain/entity"
	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain/repository"
)

var _ repository.EstimateRepository = (*EstimateRepo)(nil)

// EstimateRepo implements EstimateRepository (usable with pool or tx).
type EstimateRepo struct {
	q Querier
}

// NewEstimateRepository builds the adapter. Pass a pool or a tx (Querier).
func NewEstimateRepository(q Querier) *EstimateRepo {
	return &EstimateRepo{q: q}
}

// Create persists the estimate header and its areas. Assigns the ID and the
// yearly estimate number when they are empty.
func (r *EstimateRepo) Create(ctx context.Context, est *entity.Estimate) error {
	if est.ID == "" {
		est.ID = uuid.New().String()
	}
	if est.EstimateNumber == "" {
		number, err := nextDocumentNumber(ctx, r.q, "estimates", "estimate_number", "EST")
		if err != nil {
			return err
		}
		est.EstimateNumber = number
	}
	query := `
		INSERT INTO estimates (
			id, estimate_number, client_id, title, description, status,
			valid_until, total_labor, total_material, total_amount, manual_total,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		est.ID, est.EstimateNumber, est.ClientID, est.Title, nullIfEmpty(est.Description), est.Status,
		est.ValidUntil, est.TotalLabor, est.TotalMaterial, est.TotalAmount, est.ManualTotal,
		est.CreatedAt, est.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: estimate number %s already assigned", domain.ErrDuplicate, est.EstimateNumber)
		}
		return fmt.Errorf("insert estimate: %w", err)
	}
	return insertAreas(ctx, r.q, areaParentEstimate, est.ID, est.Areas)
}

// GetByID loads the full estimate with its areas and the client name join.
func (r *EstimateRepo) GetByID(ctx context.Context, id string) (*entity.Estimate, error) {
	query := `
		SELECT e.id, e.estimate_number, e.client_id, COALESCE(c.name, ''),
		       e.title, e.description, e.status, e.valid_until,
		       e.total_labor, e.total_material, e.total_amount, e.manual_total,
		       e.converted_invoice_id, e.created_at, e.updated_at
		FROM estimates e
		LEFT JOIN clients c ON c.id = e.client_id
		WHERE e.id = $1`
	var est entity.Estimate
	var description, convertedID *string
	err := r.q.QueryRow(ctx, query, id).Scan(
		&est.ID, &est.EstimateNumber, &est.ClientID, &est.ClientName,
		&est.Title, &description, &est.Status, &est.ValidUntil,
		&est.TotalLabor, &est.TotalMaterial, &est.TotalAmount, &est.ManualTotal,
		&convertedID, &est.CreatedAt, &est.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get estimate: %w", err)
	}
	est.Description = derefStr(description)
	est.ConvertedInvoiceID = derefStr(convertedID)

	areas, err := loadAreas(ctx, r.q, areaParentEstimate, est.ID)
	if err != nil {
		return nil, err
	}
	est.Areas = areas
	return &est, nil
}

// Update rewrites the editable header fields and replaces the area list.
func (r *EstimateRepo) Update(ctx context.Context, est *entity.Estimate) error {
	query := `
		UPDATE estimates
		SET title          = $2,
		    description    = $3,
		    status         = $4,
		    valid_until    = $5,
		    total_labor    = $6,
		    total_material = $7,
		    total_amount   = $8,
		    manual_total   = $9,
		    updated_at     = $10
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		est.ID,
		est.Title, nullIfEmpty(est.Description), est.Status, est.ValidUntil,
		est.TotalLabor, est.TotalMaterial, est.TotalAmount, est.ManualTotal,
		est.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update estimate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return replaceAreas(ctx, r.q, areaParentEstimate, est.ID, est.Areas)
}

// List returns one header page plus the total match count. Search covers
// the estimate number, the title and the client name.
func (r *EstimateRepo) List(ctx context.Context, q repository.ListQuery) ([]*entity.Estimate, int, error) {
	where := `
		FROM estimates e
		LEFT JOIN clients c ON c.id = e.client_id
		WHERE ($1 = ''
		   OR e.estimate_number ILIKE '%' || $1 || '%'
		   OR e.title ILIKE '%' || $1 || '%'
		   OR c.name ILIKE '%' || $1 || '%')`

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) `+where, q.Search).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count estimates: %w", err)
	}

	query := `
		SELECT e.id, e.estimate_number, e.client_id, COALESCE(c.name, ''),
		       e.title, e.status, e.valid_until, e.total_amount,
		       e.created_at, e.updated_at ` + where + `
		ORDER BY e.created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, q.Search, q.Limit, q.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list estimates: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Estimate, 0, q.Limit)
	for rows.Next() {
		var est entity.Estimate
		if err := rows.Scan(
			&est.ID, &est.EstimateNumber, &est.ClientID, &est.ClientName,
			&est.Title, &est.Status, &est.ValidUntil, &est.TotalAmount,
			&est.CreatedAt, &est.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan estimate: %w", err)
		}
		list = append(list, &est)
	}
	return list, total, rows.Err()
}

// MarkConverted stores the produced invoice ID and approves the estimate.
func (r *EstimateRepo) MarkConverted(ctx context.Context, id, invoiceID string) error {
	query := `
		UPDATE estimates
		SET converted_invoice_id = $2,
		    status               = $3,
		    updated_at           = $4
		WHERE id = $1 AND converted_invoice_id IS NULL`
	tag, err := r.q.Exec(ctx, query, id, invoiceID, entity.EstimateStatusApproved, time.Now())
	if err != nil {
		return fmt.Errorf("mark estimate converted: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: estimate already converted or missing", domain.ErrConflict)
	}
	return nil
}
