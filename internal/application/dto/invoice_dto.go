package dto

import "github.com/shopspring/decimal"

// AreaPayload is one project area as it travels over the wire, in both
// requests and responses. IDs in requests are ignored: saving a document
// replaces its area list wholesale.
type AreaPayload struct {
	ID               string          `json:"id,omitempty"`
	AreaName         string          `json:"area_name"`
	AreaType         string          `json:"area_type"`
	SurfaceType      string          `json:"surface_type"`
	SquareFootage    float64         `json:"square_footage"`
	CeilingHeight    float64         `json:"ceiling_height"`
	PrepRequirements string          `json:"prep_requirements,omitempty"`
	PaintType        string          `json:"paint_type,omitempty"`
	PaintBrand       string          `json:"paint_brand,omitempty"`
	PaintColor       string          `json:"paint_color,omitempty"`
	PaintFinish      string          `json:"paint_finish"`
	NumberOfCoats    int             `json:"number_of_coats"`
	LaborCost        decimal.Decimal `json:"labor_cost"`
	MaterialCost     decimal.Decimal `json:"material_cost"`
	Notes            string          `json:"notes,omitempty"`
}

// CreateInvoiceRequest body for POST /api/invoices.
type CreateInvoiceRequest struct {
	ClientID      string          `json:"client_id"`
	Title         string          `json:"title"`
	Description   string          `json:"description,omitempty"`
	DueDate       string          `json:"due_date,omitempty"` // YYYY-MM-DD
	PaymentTerms  string          `json:"payment_terms,omitempty"`
	TermsAndNotes string          `json:"terms_and_notes,omitempty"`
	Areas         []AreaPayload   `json:"areas"`
	ManualTotal   bool            `json:"manual_total,omitempty"`
	TotalAmount   decimal.Decimal `json:"total_amount,omitempty"`
}

// UpdateInvoiceRequest body for PATCH /api/invoices/:id. The client sends
// the full editable-field set; totals are recomputed from the areas unless
// manual_total asks to pin total_amount.
type UpdateInvoiceRequest struct {
	Title         string          `json:"title"`
	Description   string          `json:"description,omitempty"`
	Status        string          `json:"status,omitempty"`
	DueDate       string          `json:"due_date,omitempty"` // YYYY-MM-DD
	PaymentTerms  string          `json:"payment_terms,omitempty"`
	TermsAndNotes string          `json:"terms_and_notes,omitempty"`
	Areas         []AreaPayload   `json:"areas"`
	ManualTotal   bool            `json:"manual_total,omitempty"`
	TotalAmount   decimal.Decimal `json:"total_amount,omitempty"`
}

// AdjustmentDTO difference between the computed and the pinned total,
// present on manually priced documents only.
type AdjustmentDTO struct {
	Kind   string          `json:"kind"` // discount|increase
	Amount decimal.Decimal `json:"amount"`
}

// InvoiceResponse canonical invoice record for GET/POST/PATCH responses.
type InvoiceResponse struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	ClientID      string          `json:"client_id"`
	ClientName    string          `json:"client_name,omitempty"`
	Title         string          `json:"title"`
	Description   string          `json:"description,omitempty"`
	Status        string          `json:"status"`
	DueDate       string          `json:"due_date,omitempty"`
	PaymentTerms  string          `json:"payment_terms,omitempty"`
	TermsAndNotes string          `json:"terms_and_notes,omitempty"`
	TotalLabor    decimal.Decimal `json:"total_labor"`
	TotalMaterial decimal.Decimal `json:"total_material"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	ManualTotal   bool            `json:"manual_total"`
	Adjustment    *AdjustmentDTO  `json:"adjustment,omitempty"`
	Areas         []AreaPayload   `json:"areas"`
	CreatedAt     string          `json:"created_at"`
	UpdatedAt     string          `json:"updated_at"`
}

// InvoiceListItem header row for listings; areas are not hydrated.
type InvoiceListItem struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	ClientID      string          `json:"client_id"`
	ClientName    string          `json:"client_name,omitempty"`
	Title         string          `json:"title"`
	Status        string          `json:"status"`
	DueDate       string          `json:"due_date,omitempty"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	CreatedAt     string          `json:"created_at"`
}

// InvoiceListResponse payload of GET /api/invoices.
type InvoiceListResponse struct {
	Invoices   []InvoiceListItem `json:"invoices"`
	Pagination Pagination        `json:"pagination"`
}
