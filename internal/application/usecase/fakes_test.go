package usecase_test

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain/entity"
	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain/repository"
)

// In-memory fakes for the persistence ports. They keep insertion order so
// listing tests are deterministic.

type fakeClientRepo struct {
	byID  map[string]*entity.Client
	order []string
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{byID: map[string]*entity.Client{}}
}

func (f *fakeClientRepo) Create(_ context.Context, c *entity.Client) error {
	f.byID[c.ID] = c
	f.order = append(f.order, c.ID)
	return nil
}

func (f *fakeClientRepo) GetByID(_ context.Context, id string) (*entity.Client, error) {
	return f.byID[id], nil
}

func (f *fakeClientRepo) Update(_ context.Context, c *entity.Client) error {
	f.byID[c.ID] = c
	return nil
}

func (f *fakeClientRepo) List(_ context.Context, q repository.ListQuery) ([]*entity.Client, int, error) {
	var all []*entity.Client
	for _, id := range f.order {
		c := f.byID[id]
		if q.Search == "" || containsFold(c.Name, q.Search) || containsFold(c.Email, q.Search) {
			all = append(all, c)
		}
	}
	return page(all, q), len(all), nil
}

type fakeInvoiceRepo struct {
	byID  map[string]*entity.Invoice
	order []string
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{byID: map[string]*entity.Invoice{}}
}

func (f *fakeInvoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	if inv.InvoiceNumber == "" {
		inv.InvoiceNumber = fmt.Sprintf("INV-%d-%04d", time.Now().Year(), len(f.order)+1)
	}
	f.byID[inv.ID] = inv
	f.order = append(f.order, inv.ID)
	return nil
}

func (f *fakeInvoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	return f.byID[id], nil
}

func (f *fakeInvoiceRepo) Update(_ context.Context, inv *entity.Invoice) error {
	f.byID[inv.ID] = inv
	return nil
}

func (f *fakeInvoiceRepo) List(_ context.Context, q repository.ListQuery) ([]*entity.Invoice, int, error) {
	var all []*entity.Invoice
	for _, id := range f.order {
		inv := f.byID[id]
		if q.Search == "" || containsFold(inv.Title, q.Search) ||
			containsFold(inv.InvoiceNumber, q.Search) || containsFold(inv.ClientName, q.Search) {
			all = append(all, inv)
		}
	}
	return page(all, q), len(all), nil
}

type fakeEstimateRepo struct {
	byID  map[string]*entity.Estimate
	order []string
}

func newFakeEstimateRepo() *fakeEstimateRepo {
	return &fakeEstimateRepo{byID: map[string]*entity.Estimate{}}
}

func (f *fakeEstimateRepo) Create(_ context.Context, est *entity.Estimate) error {
	if est.EstimateNumber == "" {
		est.EstimateNumber = fmt.Sprintf("EST-%d-%04d", time.Now().Year(), len(f.order)+1)
	}
	f.byID[est.ID] = est
	f.order = append(f.order, est.ID)
	return nil
}

func (f *fakeEstimateRepo) GetByID(_ context.Context, id string) (*entity.Estimate, error) {
	return f.byID[id], nil
}

func (f *fakeEstimateRepo) Update(_ context.Context, est *entity.Estimate) error {
	f.byID[est.ID] = est
	return nil
}

func (f *fakeEstimateRepo) List(_ context.Context, q repository.ListQuery) ([]*entity.Estimate, int, error) {
	var all []*entity.Estimate
	for _, id := range f.order {
		est := f.byID[id]
		if q.Search == "" || containsFold(est.Title, q.Search) ||
			containsFold(est.EstimateNumber, q.Search) || containsFold(est.ClientName, q.Search) {
			all = append(all, est)
		}
	}
	return page(all, q), len(all), nil
}

func (f *fakeEstimateRepo) MarkConverted(_ context.Context, id, invoiceID string) error {
	est, ok := f.byID[id]
	if !ok {
		return fmt.Errorf("estimate %s not found", id)
	}
	est.Status = entity.EstimateStatusApproved
	est.ConvertedInvoiceID = invoiceID
	est.UpdatedAt = time.Now()
	return nil
}

// fakeTxRunner hands the repos straight to the callback; failWith simulates
// a transaction that cannot start.
type fakeTxRunner struct {
	est      *fakeEstimateRepo
	inv      *fakeInvoiceRepo
	failWith error
}

func (f *fakeTxRunner) RunConversion(ctx context.Context, fn func(
	estRepo repository.EstimateRepository,
	invRepo repository.InvoiceRepository,
) error) error {
	if f.failWith != nil {
		return f.failWith
	}
	return fn(f.est, f.inv)
}

type fakeSettingsRepo struct {
	saved *entity.CompanySettings
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*entity.CompanySettings, error) {
	return f.saved, nil
}

func (f *fakeSettingsRepo) Upsert(_ context.Context, s *entity.CompanySettings) error {
	f.saved = s
	return nil
}

type fakeLogoStore struct {
	savedName string
	savedSize int64
	failWith  error
}

func (f *fakeLogoStore) Save(_ context.Context, filename string, r io.Reader) (string, error) {
	if f.failWith != nil {
		return "", f.failWith
	}
	n, err := io.Copy(io.Discard, r)
	if err != nil {
		return "", err
	}
	f.savedName = filename
	f.savedSize = n
	return "/uploads/" + filename, nil
}

type fakeAnalyticsRepo struct {
	counts  repository.DashboardCounts
	revenue repository.RevenueSummary
}

func (f *fakeAnalyticsRepo) GetCounts(_ context.Context) (*repository.DashboardCounts, error) {
	c := f.counts
	return &c, nil
}

func (f *fakeAnalyticsRepo) GetRevenue(_ context.Context, _, _ time.Time) (*repository.RevenueSummary, error) {
	r := f.revenue
	return &r, nil
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func page[T any](all []T, q repository.ListQuery) []T {
	if q.Offset >= len(all) {
		return nil
	}
	end := q.Offset + q.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[q.Offset:end]
}
