package client

import (
	"context"
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain/entity"
	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain/estimating"
	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain/validate"
)

// ErrSubmitInProgress is returned when Submit is called while an earlier
// submission is still in flight. Submissions are not abortable; the caller
// waits for the outcome and may then resubmit.
var ErrSubmitInProgress = errors.New("a submission is already in progress")

// ValidationError blocks a submit before any network call is attempted.
type ValidationError struct {
	Fields map[string]string // field -> message
}

func (e *ValidationError) Error() string {
	return "validation failed: " + validate.Errors(e.Fields).Join()
}

// SubmitState is the editor's submission state. Success and failure both
// return the editor to idle; the outcome travels in Submit's return values.
type SubmitState int

const (
	StateIdle SubmitState = iota
	StateSubmitting
)

// AreaPatch updates single fields of one draft area. Nil fields are left
// unchanged.
type AreaPatch struct {
	AreaName         *string
	AreaType         *string
	SurfaceType      *string
	SquareFootage    *float64
	CeilingHeight    *float64
	PrepRequirements *string
	PaintType        *string
	PaintBrand       *string
	PaintColor       *string
	PaintFinish      *string
	NumberOfCoats    *int
	LaborCost        *decimal.Decimal
	MaterialCost     *decimal.Decimal
	Notes            *string
}

func (p AreaPatch) toDomain() estimating.AreaPatch {
	return estimating.AreaPatch{
		AreaName:         p.AreaName,
		AreaType:         p.AreaType,
		SurfaceType:      p.SurfaceType,
		SquareFootage:    p.SquareFootage,
		CeilingHeight:    p.CeilingHeight,
		PrepRequirements: p.PrepRequirements,
		PaintType:        p.PaintType,
		PaintBrand:       p.PaintBrand,
		PaintColor:       p.PaintColor,
		PaintFinish:      p.PaintFinish,
		NumberOfCoats:    p.NumberOfCoats,
		LaborCost:        p.LaborCost,
		MaterialCost:     p.MaterialCost,
		Notes:            p.Notes,
	}
}

// InvoiceEditor holds a local draft of one invoice and submits it as the
// full editable field set. The server stays the source of truth: a
// successful submit replaces the draft with the canonical returned record.
// All methods are safe for concurrent use; exactly one submission runs at a
// time and there are no retries.
type InvoiceEditor struct {
	api *Client

	mu      sync.Mutex
	id      string
	current Invoice
	draft   InvoiceDraft
	state   SubmitState
}

// NewInvoiceEditor seeds an editor from the canonical record, usually the
// result of Client.GetInvoice.
func NewInvoiceEditor(api *Client, inv *Invoice) *InvoiceEditor {
	e := &InvoiceEditor{api: api}
	e.replace(inv)
	return e
}

// replace installs inv as the canonical record and rebuilds the draft from
// it. Callers hold mu (or are the constructor).
func (e *InvoiceEditor) replace(inv *Invoice) {
	e.id = inv.ID
	e.current = *inv
	e.current.Areas = append([]ProjectArea(nil), inv.Areas...)
	e.draft = InvoiceDraft{
		Title:         inv.Title,
		Description:   inv.Description,
		Status:        inv.Status,
		DueDate:       inv.DueDate,
		PaymentTerms:  inv.PaymentTerms,
		TermsAndNotes: inv.TermsAndNotes,
		Areas:         append([]ProjectArea(nil), inv.Areas...),
		ManualTotal:   inv.ManualTotal,
		TotalAmount:   inv.TotalAmount,
	}
}

// Invoice returns the last canonical record received from the server.
func (e *InvoiceEditor) Invoice() Invoice {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := e.current
	out.Areas = append([]ProjectArea(nil), e.current.Areas...)
	return out
}

// Draft returns a copy of the current draft.
func (e *InvoiceEditor) Draft() InvoiceDraft {
	e.mu.Lock()
	defer e.mu.Unlock()
	return copyDraft(e.draft)
}

// State reports whether a submission is in flight.
func (e *InvoiceEditor) State() SubmitState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// SetTitle updates the draft title.
func (e *InvoiceEditor) SetTitle(title string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft.Title = title
}

// SetDescription updates the draft description.
func (e *InvoiceEditor) SetDescription(description string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft.Description = description
}

// SetStatus updates the draft status.
func (e *InvoiceEditor) SetStatus(status string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft.Status = status
}

// SetDueDate updates the draft due date (YYYY-MM-DD, empty clears it).
func (e *InvoiceEditor) SetDueDate(dueDate string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft.DueDate = dueDate
}

// SetPaymentTerms updates the draft payment terms.
func (e *InvoiceEditor) SetPaymentTerms(terms string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft.PaymentTerms = terms
}

// SetTermsAndNotes updates the draft terms-and-notes block.
func (e *InvoiceEditor) SetTermsAndNotes(notes string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft.TermsAndNotes = notes
}

// SetManualTotal pins the draft total to amount instead of the computed sum.
func (e *InvoiceEditor) SetManualTotal(amount decimal.Decimal) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft.ManualTotal = true
	e.draft.TotalAmount = amount
}

// UseComputedTotal returns the draft to derived pricing.
func (e *InvoiceEditor) UseComputedTotal() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft.ManualTotal = false
	e.draft.TotalAmount = estimating.ComputeTotals(areasFromWire(e.draft.Areas)).Total
}

// AddArea appends a default-initialized project area to the draft.
func (e *InvoiceEditor) AddArea() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft.Areas = areasToWire(areasFromWire(e.draft.Areas).Add())
}

// RemoveArea deletes the area at index i. The draft never drops below one
// area; that removal, like an out-of-range index, is ignored.
func (e *InvoiceEditor) RemoveArea(i int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft.Areas = areasToWire(areasFromWire(e.draft.Areas).Remove(i))
}

// UpdateArea patches single fields of the area at index i. Out-of-range
// indexes are ignored.
func (e *InvoiceEditor) UpdateArea(i int, patch AreaPatch) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft.Areas = areasToWire(areasFromWire(e.draft.Areas).Apply(i, patch.toDomain()))
}

// Totals computes the cost breakdown of the draft areas. The grand total
// reflects a manual override when one is set.
func (e *InvoiceEditor) Totals() Totals {
	e.mu.Lock()
	defer e.mu.Unlock()
	t := estimating.ComputeTotals(areasFromWire(e.draft.Areas))
	out := Totals{Labor: t.Labor, Material: t.Material, Total: t.Total}
	if e.draft.ManualTotal {
		out.Total = e.draft.TotalAmount
	}
	return out
}

// Adjustment returns the discount or increase a manual total produces
// against the computed one, or nil when the draft is derived (or the
// override matches the computed total exactly).
func (e *InvoiceEditor) Adjustment() *Adjustment {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.draft.ManualTotal {
		return nil
	}
	derived := estimating.ComputeTotals(areasFromWire(e.draft.Areas)).Total
	adj := estimating.AdjustmentFor(derived, e.draft.TotalAmount)
	if adj.IsZero() {
		return nil
	}
	return &Adjustment{Kind: adj.Kind, Amount: adj.Amount}
}

// Validate re-runs the form rules over the draft. An empty map means the
// draft is submittable.
func (e *InvoiceEditor) Validate() map[string]string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.validateLocked()
}

func (e *InvoiceEditor) validateLocked() map[string]string {
	errs := validate.Document(validate.DocumentEdit{
		Title:       e.draft.Title,
		Areas:       areasFromWire(e.draft.Areas),
		ManualTotal: e.draft.ManualTotal,
		TotalAmount: e.draft.TotalAmount,
	})
	return map[string]string(errs)
}

// Submit validates the draft and sends it as one PATCH. On success the
// draft is replaced by the server's canonical record. A submission already
// in flight is reported with ErrSubmitInProgress; a failed submission
// leaves the draft untouched so the user can resubmit.
func (e *InvoiceEditor) Submit(ctx context.Context) (*Invoice, error) {
	e.mu.Lock()
	if e.state == StateSubmitting {
		e.mu.Unlock()
		return nil, ErrSubmitInProgress
	}
	if errs := e.validateLocked(); len(errs) > 0 {
		e.mu.Unlock()
		return nil, &ValidationError{Fields: errs}
	}
	e.state = StateSubmitting
	id := e.id
	draft := copyDraft(e.draft)
	e.mu.Unlock()

	inv, err := e.api.UpdateInvoice(ctx, id, draft)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = StateIdle
	if err != nil {
		return nil, err
	}
	e.replace(inv)
	return inv, nil
}

func copyDraft(d InvoiceDraft) InvoiceDraft {
	d.Areas = append([]ProjectArea(nil), d.Areas...)
	return d
}

func areaFromWire(a ProjectArea) entity.ProjectArea {
	return entity.ProjectArea{
		ID:               a.ID,
		AreaName:         a.AreaName,
		AreaType:         a.AreaType,
		SurfaceType:      a.SurfaceType,
		SquareFootage:    a.SquareFootage,
		CeilingHeight:    a.CeilingHeight,
		PrepRequirements: a.PrepRequirements,
		PaintType:        a.PaintType,
		PaintBrand:       a.PaintBrand,
		PaintColor:       a.PaintColor,
		PaintFinish:      a.PaintFinish,
		NumberOfCoats:    a.NumberOfCoats,
		LaborCost:        a.LaborCost,
		MaterialCost:     a.MaterialCost,
		Notes:            a.Notes,
	}
}

func areaToWire(a entity.ProjectArea) ProjectArea {
	return ProjectArea{
		ID:               a.ID,
		AreaName:         a.AreaName,
		AreaType:         a.AreaType,
		SurfaceType:      a.SurfaceType,
		SquareFootage:    a.SquareFootage,
		CeilingHeight:    a.CeilingHeight,
		PrepRequirements: a.PrepRequirements,
		PaintType:        a.PaintType,
		PaintBrand:       a.PaintBrand,
		PaintColor:       a.PaintColor,
		PaintFinish:      a.PaintFinish,
		NumberOfCoats:    a.NumberOfCoats,
		LaborCost:        a.LaborCost,
		MaterialCost:     a.MaterialCost,
		Notes:            a.Notes,
	}
}

func areasFromWire(in []ProjectArea) estimating.AreaList {
	out := make(estimating.AreaList, 0, len(in))
	for _, a := range in {
		out = append(out, areaFromWire(a))
	}
	return out
}

func areasToWire(in estimating.AreaList) []ProjectArea {
	out := make([]ProjectArea, 0, len(in))
	for _, a := range in {
		out = append(out, areaToWire(a))
	}
	return out
}
