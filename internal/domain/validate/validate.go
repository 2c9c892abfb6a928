// Package validate holds the field-level validation rules shared by the API
// handlers and the client library. Rules run synchronously before every
// submission; a submission only proceeds when the returned mapping is empty.
package validate

import (
	"fmt"
	"mime"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain"
	"github.com/cindychcheng/paintpro-manager-sub001/internal/domain/entity"
)

// Errors maps a form field to its validation message. An empty map means
// the record is submittable.
type Errors map[string]string

// OK reports whether validation passed.
func (e Errors) OK() bool { return len(e) == 0 }

// Add records a message for a field unless one is already present, so the
// first failing rule per field wins.
func (e Errors) Add(field, message string) {
	if _, dup := e[field]; !dup {
		e[field] = message
	}
}

// Join flattens the mapping into a single "field: message" list, ordered by
// field name. Handlers embed it in the response envelope's error string.
func (e Errors) Join() string {
	if len(e) == 0 {
		return ""
	}
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return strings.Join(parts, "; ")
}

// emailPattern accepts local@domain.tld shapes: no whitespace, exactly one
// @, and at least one dot in the domain. Intentionally loose beyond that.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email reports whether s looks like a deliverable address.
func Email(s string) bool {
	return emailPattern.MatchString(s)
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

// DocumentEdit carries the editable fields common to invoice and estimate
// drafts that validation cares about.
type DocumentEdit struct {
	Title       string
	Areas       []entity.ProjectArea
	ManualTotal bool
	TotalAmount decimal.Decimal
}

// Document checks an invoice or estimate draft. Titles must be non-blank and
// every area needs a name. When the manual-total variant is in use the
// override must be positive; the area rules still apply.
func Document(in DocumentEdit) Errors {
	errs := Errors{}
	if blank(in.Title) {
		errs.Add("title", "Title is required")
	}
	for i, a := range in.Areas {
		key := fmt.Sprintf("areas[%d].", i)
		if blank(a.AreaName) {
			errs.Add(key+"area_name", "Area name is required")
		}
		if !entity.ValidAreaType(a.AreaType) {
			errs.Add(key+"area_type", "Area type must be indoor or outdoor")
		}
		if !entity.ValidSurfaceType(a.SurfaceType) {
			errs.Add(key+"surface_type", "Unknown surface type")
		}
		if a.PaintFinish != "" && !entity.ValidPaintFinish(a.PaintFinish) {
			errs.Add(key+"paint_finish", "Unknown paint finish")
		}
		if a.NumberOfCoats < entity.MinCoats || a.NumberOfCoats > entity.MaxCoats {
			errs.Add(key+"number_of_coats", fmt.Sprintf("Number of coats must be between %d and %d", entity.MinCoats, entity.MaxCoats))
		}
		if a.SquareFootage < 0 {
			errs.Add(key+"square_footage", "Square footage cannot be negative")
		}
		if a.CeilingHeight < 0 {
			errs.Add(key+"ceiling_height", "Ceiling height cannot be negative")
		}
		if a.LaborCost.IsNegative() {
			errs.Add(key+"labor_cost", "Labor cost cannot be negative")
		}
		if a.MaterialCost.IsNegative() {
			errs.Add(key+"material_cost", "Material cost cannot be negative")
		}
	}
	if in.ManualTotal && !in.TotalAmount.IsPositive() {
		errs.Add("total_amount", "Total amount must be greater than 0")
	}
	return errs
}

// CompanySettings checks the business profile form.
func CompanySettings(in entity.CompanySettings) Errors {
	errs := Errors{}
	if blank(in.CompanyName) {
		errs.Add("company_name", "Company name is required")
	}
	if blank(in.CompanyAddress) {
		errs.Add("company_address", "Address is required")
	}
	if blank(in.CompanyPhone) {
		errs.Add("company_phone", "Phone is required")
	}
	if blank(in.CompanyEmail) {
		errs.Add("company_email", "Email is required")
	} else if !Email(in.CompanyEmail) {
		errs.Add("company_email", "Please enter a valid email address")
	}
	return errs
}

// Client checks a client intake form. Only the name is mandatory; contact
// fields are validated when present.
func Client(in entity.Client) Errors {
	errs := Errors{}
	if blank(in.Name) {
		errs.Add("name", "Name is required")
	}
	if !blank(in.Email) && !Email(in.Email) {
		errs.Add("email", "Please enter a valid email address")
	}
	return errs
}

// MaxLogoBytes caps logo uploads at 5MB.
const MaxLogoBytes = 5 << 20

var allowedLogoTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
}

// Logo rejects disallowed file types and oversized uploads before any byte
// is stored. The content type wins when present; otherwise the filename
// extension decides.
func Logo(filename, contentType string, size int64) error {
	if size > MaxLogoBytes {
		return fmt.Errorf("%w: limit is %d bytes", domain.ErrLogoTooLarge, int64(MaxLogoBytes))
	}
	ct := contentType
	if ct == "" {
		ct = mime.TypeByExtension(strings.ToLower(filepath.Ext(filename)))
	}
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	if !allowedLogoTypes[ct] {
		return fmt.Errorf("%w: got %q, want jpeg, png or gif", domain.ErrLogoBadType, ct)
	}
	return nil
}
