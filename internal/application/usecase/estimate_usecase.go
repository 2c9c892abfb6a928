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

// EstimateUseCase applies the business rules for estimates, including the
// one-way conversion into an invoice.
type EstimateUseCase struct {
	estimateRepo repository.EstimateRepository
	clientRepo   repository.ClientRepository
	txRunner     ConversionTxRunner
}

// NewEstimateUseCase builds the use case with its ports.
func NewEstimateUseCase(
	estimateRepo repository.EstimateRepository,
	clientRepo repository.ClientRepository,
	txRunner ConversionTxRunner,
) *EstimateUseCase {
	return &EstimateUseCase{estimateRepo: estimateRepo, clientRepo: clientRepo, txRunner: txRunner}
}

// Create validates and persists a new draft estimate.
func (uc *EstimateUseCase) Create(ctx context.Context, in dto.CreateEstimateRequest) (*dto.EstimateResponse, error) {
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
	validUntil, err := parseDate("valid_until", in.ValidUntil)
	if err != nil {
		return nil, err
	}

	totals := resolveTotals(areas, in.ManualTotal, in.TotalAmount)
	now := time.Now()
	est := &entity.Estimate{
		ID:            uuid.New().String(),
		ClientID:      in.ClientID,
		ClientName:    client.Name,
		Title:         in.Title,
		Description:   in.Description,
		Status:        entity.EstimateStatusDraft,
		ValidUntil:    validUntil,
		TotalLabor:    totals.Labor,
		TotalMaterial: totals.Material,
		TotalAmount:   totals.Total,
		ManualTotal:   in.ManualTotal,
		Areas:         areas,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.estimateRepo.Create(ctx, est); err != nil {
		return nil, err
	}
	return entityToEstimateResponse(est), nil
}

// GetByID returns the full estimate record, or nil when it does not exist.
func (uc *EstimateUseCase) GetByID(ctx context.Context, id string) (*dto.EstimateResponse, error) {
	est, err := uc.estimateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if est == nil {
		return nil, nil
	}
	return entityToEstimateResponse(est), nil
}

// Update replaces the editable fields, rewrites the areas and recomputes or
// pins the totals. Converted estimates stay editable except for their link.
func (uc *EstimateUseCase) Update(ctx context.Context, id string, in dto.UpdateEstimateRequest) (*dto.EstimateResponse, error) {
	est, err := uc.estimateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if est == nil {
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
		if !entity.ValidEstimateStatus(in.Status) {
			return nil, fmt.Errorf("%w: status: unknown value %q", domain.ErrInvalidInput, in.Status)
		}
		est.Status = in.Status
	}
	validUntil, err := parseDate("valid_until", in.ValidUntil)
	if err != nil {
		return nil, err
	}

	totals := resolveTotals(areas, in.ManualTotal, in.TotalAmount)
	est.Title = in.Title
	est.Description = in.Description
	est.ValidUntil = validUntil
	est.TotalLabor = totals.Labor
	est.TotalMaterial = totals.Material
	est.TotalAmount = totals.Total
	est.ManualTotal = in.ManualTotal
	est.Areas = areas
	est.UpdatedAt = time.Now()

	if err := uc.estimateRepo.Update(ctx, est); err != nil {
		return nil, err
	}
	return entityToEstimateResponse(est), nil
}

// List returns one page of estimate headers plus pagination metadata.
// Search matches number, title and client name.
func (uc *EstimateUseCase) List(ctx context.Context, req dto.PageRequest) (*dto.EstimateListResponse, error) {
	req.DefaultPage()
	list, total, err := uc.estimateRepo.List(ctx, repository.ListQuery{
		Search: req.Search,
		Limit:  req.Limit,
		Offset: req.Offset(),
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.EstimateListItem, 0, len(list))
	for _, est := range list {
		items = append(items, dto.EstimateListItem{
			ID:             est.ID,
			EstimateNumber: est.EstimateNumber,
			ClientID:       est.ClientID,
			ClientName:     est.ClientName,
			Title:          est.Title,
			Status:         est.Status,
			ValidUntil:     formatDate(est.ValidUntil),
			TotalAmount:    est.TotalAmount,
			CreatedAt:      est.CreatedAt.Format(time.RFC3339),
		})
	}
	return &dto.EstimateListResponse{
		Estimates:  items,
		Pagination: dto.NewPagination(req, total),
	}, nil
}

// ConvertToInvoice turns an accepted estimate into a draft invoice. The new
// invoice and the estimate's converted link are written in one transaction.
// Returns domain.ErrConflict when the estimate was already converted or was
// declined.
func (uc *EstimateUseCase) ConvertToInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	est, err := uc.estimateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if est == nil {
		return nil, domain.ErrNotFound
	}
	if est.ConvertedInvoiceID != "" {
		return nil, fmt.Errorf("%w: estimate %s is already converted", domain.ErrConflict, est.EstimateNumber)
	}
	if est.Status == entity.EstimateStatusDeclined {
		return nil, fmt.Errorf("%w: estimate %s was declined", domain.ErrConflict, est.EstimateNumber)
	}

	now := time.Now()
	inv := &entity.Invoice{
		ID:            uuid.New().String(),
		ClientID:      est.ClientID,
		ClientName:    est.ClientName,
		Title:         est.Title,
		Description:   est.Description,
		Status:        entity.InvoiceStatusDraft,
		PaymentTerms:  entity.TermsNet30,
		TotalLabor:    est.TotalLabor,
		TotalMaterial: est.TotalMaterial,
		TotalAmount:   est.TotalAmount,
		ManualTotal:   est.ManualTotal,
		Areas:         est.Areas,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = uc.txRunner.RunConversion(ctx, func(
		estRepo repository.EstimateRepository,
		invRepo repository.InvoiceRepository,
	) error {
		if err := invRepo.Create(ctx, inv); err != nil {
			return fmt.Errorf("convert: create invoice: %w", err)
		}
		if err := estRepo.MarkConverted(ctx, est.ID, inv.ID); err != nil {
			return fmt.Errorf("convert: mark estimate: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entityToInvoiceResponse(inv), nil
}

func entityToEstimateResponse(est *entity.Estimate) *dto.EstimateResponse {
	if est == nil {
		return nil
	}
	return &dto.EstimateResponse{
		ID:                 est.ID,
		EstimateNumber:     est.EstimateNumber,
		ClientID:           est.ClientID,
		ClientName:         est.ClientName,
		Title:              est.Title,
		Description:        est.Description,
		Status:             est.Status,
		ValidUntil:         formatDate(est.ValidUntil),
		TotalLabor:         est.TotalLabor,
		TotalMaterial:      est.TotalMaterial,
		TotalAmount:        est.TotalAmount,
		ManualTotal:        est.ManualTotal,
		Adjustment:         adjustmentDTO(est.ManualTotal, est.Areas, est.TotalAmount),
		ConvertedInvoiceID: est.ConvertedInvoiceID,
		Areas:              areasToPayload(est.Areas),
		CreatedAt:          est.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          est.UpdatedAt.Format(time.RFC3339),
	}
}
