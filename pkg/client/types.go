package client

import (
	"io"

	"github.com/shopspring/decimal"
)

// Wire records of the PaintPro Manager API. They are defined here rather
// than shared with the server so importers of this package get a stable,
// public boundary type for every payload.

// ProjectArea is one paintable surface within an invoice or estimate.
type ProjectArea struct {
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

// Adjustment is the delta a manually priced document shows against its
// computed total.
type Adjustment struct {
	Kind   string          `json:"kind"` // discount|increase
	Amount decimal.Decimal `json:"amount"`
}

// Totals is the cost breakdown of a draft's areas.
type Totals struct {
	Labor    decimal.Decimal
	Material decimal.Decimal
	Total    decimal.Decimal
}

// Invoice is the canonical invoice record as the server returns it.
type Invoice struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	ClientID      string          `json:"client_id"`
	ClientName    string          `json:"client_name,omitempty"`
	Title         string          `json:"title"`
	Description   string          `json:"description,omitempty"`
	Status        string          `json:"status"`
	DueDate       string          `json:"due_date,omitempty"` // YYYY-MM-DD
	PaymentTerms  string          `json:"payment_terms,omitempty"`
	TermsAndNotes string          `json:"terms_and_notes,omitempty"`
	TotalLabor    decimal.Decimal `json:"total_labor"`
	TotalMaterial decimal.Decimal `json:"total_material"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	ManualTotal   bool            `json:"manual_total"`
	Adjustment    *Adjustment     `json:"adjustment,omitempty"`
	Areas         []ProjectArea   `json:"areas"`
	CreatedAt     string          `json:"created_at"`
	UpdatedAt     string          `json:"updated_at"`
}

// InvoiceDraft is the full editable field set sent on every invoice save.
// The server recomputes the totals from the areas unless ManualTotal pins
// TotalAmount.
type InvoiceDraft struct {
	Title         string          `json:"title"`
	Description   string          `json:"description,omitempty"`
	Status        string          `json:"status,omitempty"`
	DueDate       string          `json:"due_date,omitempty"` // YYYY-MM-DD
	PaymentTerms  string          `json:"payment_terms,omitempty"`
	TermsAndNotes string          `json:"terms_and_notes,omitempty"`
	Areas         []ProjectArea   `json:"areas"`
	ManualTotal   bool            `json:"manual_total,omitempty"`
	TotalAmount   decimal.Decimal `json:"total_amount,omitempty"`
}

// Estimate is a header row of GET /api/estimates.
type Estimate struct {
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

// Pagination describes the page a listing belongs to.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// EstimatePage is one page of estimate search results.
type EstimatePage struct {
	Estimates  []Estimate `json:"estimates"`
	Pagination Pagination `json:"pagination"`
}

// ClientRecord is a customer of the painting business.
type ClientRecord struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	Notes     string `json:"notes,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// CompanySettings is the business profile shown on documents.
type CompanySettings struct {
	ID             string `json:"id,omitempty"`
	CompanyName    string `json:"company_name"`
	CompanyAddress string `json:"company_address"`
	CompanyPhone   string `json:"company_phone"`
	CompanyEmail   string `json:"company_email"`
	LogoURL        string `json:"logo_url,omitempty"`
	UpdatedAt      string `json:"updated_at,omitempty"`
}

// LogoUpload is the image sent ahead of a settings save.
type LogoUpload struct {
	Filename string
	Reader   io.Reader
}
