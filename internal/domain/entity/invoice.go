package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice lifecycle states.
const (
	InvoiceStatusDraft = "draft"
	InvoiceStatusSent  = "sent"
	InvoiceStatusPaid  = "paid"
	InvoiceStatusVoid  = "void"
)

// Payment terms attached to an invoice. "Custom" defers to the free-text
// terms_and_notes field.
const (
	TermsNet30        = "Net 30"
	TermsNet15        = "Net 15"
	TermsDueOnReceipt = "Due on Receipt"
	TermsNet60        = "Net 60"
	TermsCustom       = "Custom"
)

// Invoice is a billable document composed of project areas. TotalAmount is
// derived from the areas unless ManualTotal is set, in which case it holds
// the override entered by the user and the derived figure is kept in
// TotalLabor+TotalMaterial for comparison.
type Invoice struct {
	ID            string
	InvoiceNumber string
	ClientID      string
	ClientName    string // read-only, filled from the clients join on loads
	Title         string
	Description   string
	Status        string
	DueDate       *time.Time
	PaymentTerms  string
	TermsAndNotes string
	TotalLabor    decimal.Decimal
	TotalMaterial decimal.Decimal
	TotalAmount   decimal.Decimal
	ManualTotal   bool
	Areas         []ProjectArea
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ValidPaymentTerms reports whether s is one of the enumerated terms.
func ValidPaymentTerms(s string) bool {
	switch s {
	case TermsNet30, TermsNet15, TermsDueOnReceipt, TermsNet60, TermsCustom:
		return true
	}
	return false
}

// ValidInvoiceStatus reports whether s is a known invoice status.
func ValidInvoiceStatus(s string) bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusVoid:
		return true
	}
	return false
}
