package usecase

import (
	"context"
	"io"

	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain/entity"
	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain/repository"
)

// ConversionTxRunner runs a function inside one transaction spanning the
// estimate and invoice repositories, so approving an estimate and creating
// its invoice commit or roll back together.
type ConversionTxRunner interface {
	RunConversion(ctx context.Context, fn func(
		estRepo repository.EstimateRepository,
		invRepo repository.InvoiceRepository,
	) error) error
}

// InvoicePDFGenerator renders the printable representation of an invoice.
// settings may be nil when the company profile was never saved.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(inv *entity.Invoice, client *entity.Client, settings *entity.CompanySettings) ([]byte, error)
}

// LogoStore persists uploaded logo images and returns the public URL the
// stored file is served under.
type LogoStore interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
}
