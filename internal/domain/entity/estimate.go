package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estimate lifecycle states. An approved estimate is normally the result of
// converting it into an invoice.
const (
	EstimateStatusDraft    = "draft"
	EstimateStatusSent     = "sent"
	EstimateStatusApproved = "approved"
	EstimateStatusDeclined = "declined"
)

// Estimate is a pre-invoice proposal. Structurally it mirrors Invoice minus
// the payment terms, which are set when the estimate converts.
type Estimate struct {
	ID                 string
	EstimateNumber     string
	ClientID           string
	ClientName         string // read-only, filled from the clients join on loads
	Title              string
	Description        string
	Status             string
	ValidUntil         *time.Time
	TotalLabor         decimal.Decimal
	TotalMaterial      decimal.Decimal
	TotalAmount        decimal.Decimal
	ManualTotal        bool
	ConvertedInvoiceID string // set once the estimate has been converted
	Areas              []ProjectArea
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ValidEstimateStatus reports whether s is a known estimate status.
func ValidEstimateStatus(s string) bool {
	switch s {
	case EstimateStatusDraft, EstimateStatusSent, EstimateStatusApproved, EstimateStatusDeclined:
		return true
	}
	return false
}
