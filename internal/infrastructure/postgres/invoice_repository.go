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

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implements InvoiceRepository (usable with pool or tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository builds the adapter. Pass a pool or a tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persists the invoice header and its areas. Assigns the ID and the
// yearly invoice number when they are empty.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	if inv.InvoiceNumber == "" {
		number, err := nextDocumentNumber(ctx, r.q, "invoices", "invoice_number", "INV")
		if err != nil {
			return err
		}
		inv.InvoiceNumber = number
	}
	query := `
		INSERT INTO invoices (
			id, invoice_number, client_id, title, description, status,
			due_date, payment_terms, terms_and_notes,
			total_labor, total_material, total_amount, manual_total,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		inv.ID, inv.InvoiceNumber, inv.ClientID, inv.Title, nullIfEmpty(inv.Description), inv.Status,
		inv.DueDate, nullIfEmpty(inv.PaymentTerms), nullIfEmpty(inv.TermsAndNotes),
		inv.TotalLabor, inv.TotalMaterial, inv.TotalAmount, inv.ManualTotal,
		inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: invoice number %s already assigned", domain.ErrDuplicate, inv.InvoiceNumber)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return insertAreas(ctx, r.q, areaParentInvoice, inv.ID, inv.Areas)
}

// GetByID loads the full invoice with its areas and the client name join.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	query := `
		SELECT i.id, i.invoice_number, i.client_id, COALESCE(c.name, ''),
		       i.title, i.description, i.status, i.due_date,
		       i.payment_terms, i.terms_and_notes,
		       i.total_labor, i.total_material, i.total_amount, i.manual_total,
		       i.created_at, i.updated_at
		FROM invoices i
		LEFT JOIN clients c ON c.id = i.client_id
		WHERE i.id = $1`
	var inv entity.Invoice
	var description, paymentTerms, termsAndNotes *string
	err := r.q.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.InvoiceNumber, &inv.ClientID, &inv.ClientName,
		&inv.Title, &description, &inv.Status, &inv.DueDate,
		&paymentTerms, &termsAndNotes,
		&inv.TotalLabor, &inv.TotalMaterial, &inv.TotalAmount, &inv.ManualTotal,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	inv.Description = derefStr(description)
	inv.PaymentTerms = derefStr(paymentTerms)
	inv.TermsAndNotes = derefStr(termsAndNotes)

	areas, err := loadAreas(ctx, r.q, areaParentInvoice, inv.ID)
	if err != nil {
		return nil, err
	}
	inv.Areas = areas
	return &inv, nil
}

// Update rewrites the editable header fields and replaces the area list.
func (r *InvoiceRepo) Update(ctx context.Context, inv *entity.Invoice) error {
	query := `
		UPDATE invoices
		SET title           = $2,
		    description     = $3,
		    status          = $4,
		    due_date        = $5,
		    payment_terms   = $6,
		    terms_and_notes = $7,
		    total_labor     = $8,
		    total_material  = $9,
		    total_amount    = $10,
		    manual_total    = $11,
		    updated_at      = $12
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		inv.ID,
		inv.Title, nullIfEmpty(inv.Description), inv.Status, inv.DueDate,
		nullIfEmpty(inv.PaymentTerms), nullIfEmpty(inv.TermsAndNotes),
		inv.TotalLabor, inv.TotalMaterial, inv.TotalAmount, inv.ManualTotal,
		inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return replaceAreas(ctx, r.q, areaParentInvoice, inv.ID, inv.Areas)
}

// List returns one header page plus the total match count. Search covers
// the invoice number, the title and the client name.
func (r *InvoiceRepo) List(ctx context.Context, q repository.ListQuery) ([]*entity.Invoice, int, error) {
	where := `
		FROM invoices i
		LEFT JOIN clients c ON c.id = i.client_id
		WHERE ($1 = ''
		   OR i.invoice_number ILIKE '%' || $1 || '%'
		   OR i.title ILIKE '%' || $1 || '%'
		   OR c.name ILIKE '%' || $1 || '%')`

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) `+where, q.Search).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count invoices: %w", err)
	}

	query := `
		SELECT i.id, i.invoice_number, i.client_id, COALESCE(c.name, ''),
		       i.title, i.status, i.due_date, i.total_amount,
		       i.created_at, i.updated_at ` + where + `
		ORDER BY i.created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, q.Search, q.Limit, q.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Invoice, 0, q.Limit)
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(
			&inv.ID, &inv.InvoiceNumber, &inv.ClientID, &inv.ClientName,
			&inv.Title, &inv.Status, &inv.DueDate, &inv.TotalAmount,
			&inv.CreatedAt, &inv.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, total, rows.Err()
}
