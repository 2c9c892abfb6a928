package repository

import (
	"context"

	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain/entity"
)

// EstimateRepository is the persistence port for estimates. Same contracts
// as InvoiceRepository: (nil, nil) on missing records, numbers assigned on
// create ("EST-YYYY-NNNN"), areas replaced wholesale on update.
type EstimateRepository interface {
	Create(ctx context.Context, est *entity.Estimate) error
	GetByID(ctx context.Context, id string) (*entity.Estimate, error)
	Update(ctx context.Context, est *entity.Estimate) error
	List(ctx context.Context, q ListQuery) ([]*entity.Estimate, int, error)
	// MarkConverted records the invoice produced from this estimate and
	// moves it to the approved status.
	MarkConverted(ctx context.Context, id, invoiceID string) error
}
