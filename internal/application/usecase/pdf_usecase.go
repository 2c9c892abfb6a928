package usecase

import (
	"context"
	"fmt"

	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain"
	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain/repository"
)

// PDFUseCase renders the printable representation of an invoice.
type PDFUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	clientRepo   repository.ClientRepository
	settingsRepo repository.SettingsRepository
	generator    InvoicePDFGenerator
}

// NewPDFUseCase builds the use case with its dependencies.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	clientRepo repository.ClientRepository,
	settingsRepo repository.SettingsRepository,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceRepo:  invoiceRepo,
		clientRepo:   clientRepo,
		settingsRepo: settingsRepo,
		generator:    generator,
	}
}

// DownloadInvoicePDF loads the invoice with its areas, the client and the
// company profile, and renders the document.
//
// Returns:
//   - (pdfBytes, filename, nil) on success.
//   - domain.ErrNotFound when the invoice does not exist.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID string) (pdfBytes []byte, filename string, err error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load invoice: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}

	client, err := uc.clientRepo.GetByID(ctx, inv.ClientID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load client: %w", err)
	}

	// Settings may be absent on a fresh install; the generator falls back
	// to a bare header.
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load settings: %w", err)
	}

	pdfBytes, err = uc.generator.GenerateInvoicePDF(inv, client, settings)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: render: %w", err)
	}
	return pdfBytes, fmt.Sprintf("%s.pdf", inv.InvoiceNumber), nil
}
