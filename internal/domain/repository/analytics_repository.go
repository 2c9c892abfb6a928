package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DashboardCounts is the raw count row behind the dashboard summary.
// Produced by the DB; the use case turns it into a DTO.
type DashboardCounts struct {
	Clients          int
	DraftInvoices    int
	SentInvoices     int
	PaidInvoices     int
	PendingEstimates int // draft + sent
}

// RevenueSummary aggregates invoice money for the dashboard.
type RevenueSummary struct {
	PaidThisPeriod decimal.Decimal // paid invoices updated inside the window
	Outstanding    decimal.Decimal // sent, unpaid invoice value
	EstimateValue  decimal.Decimal // open estimate value (draft + sent)
}

// AnalyticsRepository defines the read-only queries behind the dashboard.
type AnalyticsRepository interface {
	GetCounts(ctx context.Context) (*DashboardCounts, error)
	GetRevenue(ctx context.Context, from, to time.Time) (*RevenueSummary, error)
}
