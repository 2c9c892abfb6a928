package dto

import "github.com/shopspring/decimal"

// CreateEstimateRequest body for POST /api/estimates.
type CreateEstimateRequest struct {
	ClientID    string          `json:"client_id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	ValidUntil  string          `json:"valid_until,omitempty"` // YYYY-MM-DD
	Areas       []AreaPayload   `json:"areas"`
	ManualTotal bool            `json:"manual_total,omitempty"`
	TotalAmount decimal.Decimal `json:"total_amount,omitempty"`
}

// UpdateEstimateRequest body for PATCH /api/estimates/:id. Full editable
// field set, same replacement semantics as invoices.
type UpdateEstimateRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Status      string          `json:"status,omitempty"`
	ValidUntil  string          `json:"valid_until,omitempty"` // YYYY-MM-DD
	Areas       []AreaPayload   `json:"areas"`
	ManualTotal bool            `json:"manual_total,omitempty"`
	TotalAmount decimal.Decimal `json:"total_amount,omitempty"`
}

// EstimateResponse canonical estimate record.
type EstimateResponse struct {
	ID                 string          `json:"id"`
	EstimateNumber     string          `json:"estimate_number"`
	ClientID           string          `json:"client_id"`
	ClientName         string          `json:"client_name,omitempty"`
	Title              string          `json:"title"`
	Description        string          `json:"description,omitempty"`
	Status             string          `json:"status"`
	ValidUntil         string          `json:"valid_until,omitempty"`
	TotalLabor         decimal.Decimal `json:"total_labor"`
	TotalMaterial      decimal.Decimal `json:"total_material"`
	TotalAmount        decimal.Decimal `json:"total_amount"`
	ManualTotal        bool            `json:"manual_total"`
	Adjustment         *AdjustmentDTO  `json:"adjustment,omitempty"`
	ConvertedInvoiceID string          `json:"converted_invoice_id,omitempty"`
	Areas              []AreaPayload   `json:"areas"`
	CreatedAt          string          `json:"created_at"`
	UpdatedAt          string          `json:"updated_at"`
}

// EstimateListItem header row for GET /api/estimates.
type EstimateListItem struct {
	ID             string          `json:"id"`
	EstimateNumber string          `json:"estimate_number"`
	ClientID       string          `json:"client_id"`
	ClientName     string          `json:"client_name,omitempty"`
	Title          string          `json:"title"`
	Status         string          `json:"status"`
	ValidUntil     string          `json:"valid_until,omitempty"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	CreatedAt      string          `json:"created_at"`
}

// EstimateListResponse payload of GET /api/estimates.
type EstimateListResponse struct {
	Estimates  []EstimateListItem `json:"estimates"`
	Pagination Pagination         `json:"pagination"`
}
