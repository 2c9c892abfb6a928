package repository

import (
	"context"

	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain/entity"
)

// ListQuery is the common shape of paginated, searchable listings. Search
// is a case-insensitive substring filter applied server-side.
type ListQuery struct {
	Search string
	Limit  int
	Offset int
}

// InvoiceRepository is the persistence port for invoices and their project
// areas. Implementations live in infrastructure. Lookups return (nil, nil)
// when the record does not exist.
type InvoiceRepository interface {
	// Create persists the invoice and its areas. An empty InvoiceNumber is
	// assigned by the store ("INV-YYYY-NNNN").
	Create(ctx context.Context, inv *entity.Invoice) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	// Update rewrites the editable fields and replaces the area list in the
	// stored order.
	Update(ctx context.Context, inv *entity.Invoice) error
	// List returns one page plus the total match count. Areas are not
	// hydrated on listings; totals are stored denormalized on the header.
	List(ctx context.Context, q ListQuery) ([]*entity.Invoice, int, error)
}
