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

// InvoiceUseCase applies the business rules for invoices: validation,
// total derivation and the manual price override.
type InvoiceUseCase struct {
	invoiceRepo repository.InvoiceRepository
	clientRepo  repository.ClientRepository
}

// NewInvoiceUseCase builds the use case with its persistence ports.
func NewInvoiceUseCase(invoiceRepo repository.InvoiceRepository, clientRepo repository.ClientRepository) *InvoiceUseCase {
	return &InvoiceUseCase{invoiceRepo: invoiceRepo, clientRepo: clientRepo}
}

// Create validates and persists a new draft invoice. The invoice number is
// assigned by the store. Returns domain.ErrNotFound when the client does
// not exist and domain.ErrInvalidInput with field messages on bad input.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.ClientID == "" {
		return nil, fmt.Errorf("%w: client_id: is required", domain.ErrInvalidInput)
	}
	client, err := uc.clientRepo.GetByID(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}

	areas := areasFromPayload(in.Areas)
	if errs := validate.Document(validate.DocumentEdit{
		Title:       in.Title,
		Areas:       areas,
		ManualTotal: in.ManualTotal,
		TotalAmount: in.TotalAmount,
	}); !errs.OK() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, errs.Join())
	}
	if in.PaymentTerms != "" && !entity.ValidPaymentTerms(in.PaymentTerms) {
		return nil, fmt.Errorf("%w: payment_terms: unknown value %q", domain.ErrInvalidInput, in.PaymentTerms)
	}
	due, err := parseDate("due_date", in.DueDate)
	if err != nil {
		return nil, err
	}

	terms := in.PaymentTerms
	if terms == "" {
		terms = entity.TermsNet30
	}
	totals := resolveTotals(areas, in.ManualTotal, in.TotalAmount)
	now := time.Now()
	inv := &entity.Invoice{
		ID:            uuid.New().String(),
		ClientID:      in.ClientID,
		ClientName:    client.Name,
		Title:         in.Title,
		Description:   in.Description,
		Status:        entity.InvoiceStatusDraft,
		DueDate:       due,
		PaymentTerms:  terms,
		TermsAndNotes: in.TermsAndNotes,
		TotalLabor:    totals.Labor,
		TotalMaterial: totals.Material,
		TotalAmount:   totals.Total,
		ManualTotal:   in.ManualTotal,
		Areas:         areas,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.invoiceRepo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return entityToInvoiceResponse(inv), nil
}

// GetByID returns the full invoice record, or nil when it does not exist.
func (uc *InvoiceUseCase) GetByID(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, nil
	}
	return entityToInvoiceResponse(inv), nil
}

// Update replaces the editable fields of an invoice with the submitted set,
// rewrites the area list and recomputes or pins the totals. Returns the
// canonical record as stored.
func (uc *InvoiceUseCase) Update(ctx context.Context, id string, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}

	areas := areasFromPayload(in.Areas)
	if errs := validate.Document(validate.DocumentEdit{
		Title:       in.Title,
		Areas:       areas,
		ManualTotal: in.ManualTotal,
		TotalAmount: in.TotalAmount,
	}); !errs.OK() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, errs.Join())
	}
	if in.Status != "" {
		if !entity.ValidInvoiceStatus(in.Status) {
			return nil, fmt.Errorf("%w: status: unknown value %q", domain.ErrInvalidInput, in.Status)
		}
		inv.Status = in.Status
	}
	if in.PaymentTerms != "" {
		if !entity.ValidPaymentTerms(in.PaymentTerms) {
			return nil, fmt.Errorf("%w: payment_terms: unknown value %q", domain.ErrInvalidInput, in.PaymentTerms)
		}
		inv.PaymentTerms = in.PaymentTerms
	}
	due, err := parseDate("due_date", in.DueDate)
	if err != nil {
		return nil, err
	}

	totals := resolveTotals(areas, in.ManualTotal, in.TotalAmount)
	inv.Title = in.Title
	inv.Description = in.Description
	inv.DueDate = due
	inv.TermsAndNotes = in.TermsAndNotes
	inv.TotalLabor = totals.Labor
	inv.TotalMaterial = totals.Material
	inv.TotalAmount = totals.Total
	inv.ManualTotal = in.ManualTotal
	inv.Areas = areas
	inv.UpdatedAt = time.Now()

	if err := uc.invoiceRepo.Update(ctx, inv); err != nil {
		return nil, err
	}
	return entityToInvoiceResponse(inv), nil
}

// List returns one page of invoice headers plus pagination metadata.
func (uc *InvoiceUseCase) List(ctx context.Context, req dto.PageRequest) (*dto.InvoiceListResponse, error) {
	req.DefaultPage()
	list, total, err := uc.invoiceRepo.List(ctx, repository.ListQuery{
		Search: req.Search,
		Limit:  req.Limit,
		Offset: req.Offset(),
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceListItem, 0, len(list))
	for _, inv := range list {
		items = append(items, dto.InvoiceListItem{
			ID:            inv.ID,
			InvoiceNumber: inv.InvoiceNumber,
			ClientID:      inv.ClientID,
			ClientName:    inv.ClientName,
			Title:         inv.Title,
			Status:        inv.Status,
			DueDate:       formatDate(inv.DueDate),
			TotalAmount:   inv.TotalAmount,
			CreatedAt:     inv.CreatedAt.Format(time.RFC3339),
		})
	}
	return &dto.InvoiceListResponse{
		Invoices:   items,
		Pagination: dto.NewPagination(req, total),
	}, nil
}

func entityToInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	if inv == nil {
		return nil
	}
	return &dto.InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		ClientID:      inv.ClientID,
		ClientName:    inv.ClientName,
		Title:         inv.Title,
		Description:   inv.Description,
		Status:        inv.Status,
		DueDate:       formatDate(inv.DueDate),
		PaymentTerms:  inv.PaymentTerms,
		TermsAndNotes: inv.TermsAndNotes,
		TotalLabor:    inv.TotalLabor,
		TotalMaterial: inv.TotalMaterial,
		TotalAmount:   inv.TotalAmount,
		ManualTotal:   inv.ManualTotal,
		Adjustment:    adjustmentDTO(inv.ManualTotal, inv.Areas, inv.TotalAmount),
		Areas:         areasToPayload(inv.Areas),
		CreatedAt:     inv.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     inv.UpdatedAt.Format(time.RFC3339),
	}
}
