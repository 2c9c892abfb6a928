package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO response of GET /api/dashboard. KPIs for the landing
// screen: pipeline counts plus money in, money owed and money quoted.
type DashboardSummaryDTO struct {
	Clients          int `json:"clients"`
	DraftInvoices    int `json:"draft_invoices"`
	SentInvoices     int `json:"sent_invoices"`
	PaidInvoices     int `json:"paid_invoices"`
	PendingEstimates int `json:"pending_estimates"`

	// Money for the current month (day 1 through today)
	PaidThisMonth decimal.Decimal `json:"paid_this_month"`
	Outstanding   decimal.Decimal `json:"outstanding"`
	EstimateValue decimal.Decimal `json:"estimate_value"`

	DateLabel string `json:"date_label"` // e.g. "August 2026"
}
