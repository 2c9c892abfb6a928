package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain/entity"
	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo implements the read-only dashboard queries.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository builds the adapter.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetCounts aggregates the pipeline counters in a single round trip.
func (r *AnalyticsRepo) GetCounts(ctx context.Context) (*repository.DashboardCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM clients),
			(SELECT COUNT(*) FROM invoices  WHERE status = $1),
			(SELECT COUNT(*) FROM invoices  WHERE status = $2),
			(SELECT COUNT(*) FROM invoices  WHERE status = $3),
			(SELECT COUNT(*) FROM estimates WHERE status IN ($4, $5))`
	var c repository.DashboardCounts
	err := r.q.QueryRow(ctx, query,
		entity.InvoiceStatusDraft, entity.InvoiceStatusSent, entity.InvoiceStatusPaid,
		entity.EstimateStatusDraft, entity.EstimateStatusSent,
	).Scan(&c.Clients, &c.DraftInvoices, &c.SentInvoices, &c.PaidInvoices, &c.PendingEstimates)
	if err != nil {
		return nil, fmt.Errorf("dashboard counts: %w", err)
	}
	return &c, nil
}

// GetRevenue sums invoice and estimate money. Paid revenue is windowed on
// updated_at, which is when the status flip to paid was recorded.
func (r *AnalyticsRepo) GetRevenue(ctx context.Context, from, to time.Time) (*repository.RevenueSummary, error) {
	var rs repository.RevenueSummary

	invoiceQuery := `
		SELECT
			COALESCE(SUM(total_amount) FILTER (WHERE status = $1 AND updated_at BETWEEN $3 AND $4), 0),
			COALESCE(SUM(total_amount) FILTER (WHERE status = $2), 0)
		FROM invoices`
	err := r.q.QueryRow(ctx, invoiceQuery,
		entity.InvoiceStatusPaid, entity.InvoiceStatusSent, from, to,
	).Scan(&rs.PaidThisPeriod, &rs.Outstanding)
	if err != nil {
		return nil, fmt.Errorf("dashboard invoice revenue: %w", err)
	}

	estimateQuery := `
		SELECT COALESCE(SUM(total_amount), 0)
		FROM estimates
		WHERE status IN ($1, $2)`
	err = r.q.QueryRow(ctx, estimateQuery,
		entity.EstimateStatusDraft, entity.EstimateStatusSent,
	).Scan(&rs.EstimateValue)
	if err != nil {
		return nil, fmt.Errorf("dashboard estimate value: %w", err)
	}
	return &rs, nil
}
